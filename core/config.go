package core

import (
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Host     string
	Port     int
	Debug    bool
	PageFile string
}

var LoadConfig = func(path string) *Config {
	cfg := &Config{
		Host:  "0.0.0.0",
		Port:  5000,
		Debug: true,
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg
	}

	var raw struct {
		Host  string `yaml:"host"`
		Port  int    `yaml:"port"`
		Debug *bool  `yaml:"debug"`
		Page  string `yaml:"page"`
	}
	yaml.Unmarshal(data, &raw)

	if raw.Host != "" {
		cfg.Host = raw.Host
	}
	if raw.Port != 0 {
		cfg.Port = raw.Port
	}
	if raw.Debug != nil {
		cfg.Debug = *raw.Debug
	}
	cfg.PageFile = raw.Page

	return cfg
}
