package placard

import (
	"fmt"
	"net/http"
	"os"

	"github.com/go-placard/placard/core"
)

type RuntimeConfig struct {
	Env        string
	Host       string
	Port       int
	ConfigFile string
}

var ListenAndServe = http.ListenAndServe
var Exit = os.Exit

func BuildServer(cfg RuntimeConfig) (string, http.Handler) {
	configFile := cfg.ConfigFile
	if configFile == "" {
		configFile = "placard.config.yml"
	}
	config := core.LoadConfig(configFile)

	if cfg.Host != "" {
		config.Host = cfg.Host
	}
	if cfg.Port != 0 {
		config.Port = cfg.Port
	}

	env := cfg.Env
	if env == "" {
		if config.Debug {
			env = "dev"
		} else {
			env = "prod"
		}
	}

	fmt.Println("Starting Placard in", env, "mode...")

	mux := http.NewServeMux()

	if env == "dev" {
		reloader := core.NewLiveReloader()
		mux.HandleFunc(core.ReloadEndpoint, reloader.Handler)

		if config.PageFile != "" {
			if _, err := core.WatchFile(config.PageFile, reloader.BroadcastReload); err != nil {
				fmt.Fprintf(os.Stderr, "⚠️  Watch failed for %s: %v\n", config.PageFile, err)
			}
		}
	}

	mux.Handle("/", core.NewPage(env, config.PageFile))

	return fmt.Sprintf("%s:%d", config.Host, config.Port), mux
}

var Start = func(cfg RuntimeConfig) {
	addr, handler := BuildServer(cfg)

	fmt.Printf("✅ Placard running at http://%s\n", addr)
	if err := ListenAndServe(addr, handler); err != nil {
		fmt.Fprintf(os.Stderr, "❌ Server failed: %v\n", err)
		Exit(1)
	}
}
