package cli

import (
	"fmt"
	"os"

	"github.com/go-placard/placard/core"
	"github.com/urfave/cli/v2"
)

var InfoCommand = &cli.Command{
	Name:  "info",
	Usage: "Print the resolved configuration and page summary",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "placard.config.yml", Usage: "path to the config file"},
	},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		fmt.Println("🌐 Host:", config.Host)
		fmt.Println("🔌 Port:", config.Port)
		fmt.Println("🐛 Debug:", config.Debug)

		source := "built-in document"
		size := len(core.Document)
		if config.PageFile != "" {
			source = config.PageFile
			if content, err := os.ReadFile(config.PageFile); err == nil {
				size = len(content)
			} else {
				size = 0
			}
		}

		fmt.Println("📄 Page:", source)
		fmt.Println("📏 Size:", size, "bytes")

		return nil
	},
}
