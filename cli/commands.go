package cli

import (
	"github.com/go-placard/placard"

	"github.com/urfave/cli/v2"
)

// ServeFlags are shared by the serve commands and the bare `placard` run.
var ServeFlags = []cli.Flag{
	&cli.StringFlag{Name: "host", Usage: "interface to bind"},
	&cli.IntFlag{Name: "port", Usage: "TCP port to listen on"},
	&cli.StringFlag{Name: "config", Value: "placard.config.yml", Usage: "path to the config file"},
}

var DevCommand = &cli.Command{
	Name:  "dev",
	Usage: "Serve the page in dev mode (live reload, verbose errors)",
	Flags: ServeFlags,
	Action: func(c *cli.Context) error {
		placard.Start(placard.RuntimeConfig{
			Env:        "dev",
			Host:       c.String("host"),
			Port:       c.Int("port"),
			ConfigFile: c.String("config"),
		})
		return nil
	},
}

var ProdCommand = &cli.Command{
	Name:  "prod",
	Usage: "Serve the page in production mode (minified, gzip)",
	Flags: ServeFlags,
	Action: func(c *cli.Context) error {
		placard.Start(placard.RuntimeConfig{
			Env:        "prod",
			Host:       c.String("host"),
			Port:       c.Int("port"),
			ConfigFile: c.String("config"),
		})
		return nil
	},
}
