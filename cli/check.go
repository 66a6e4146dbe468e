package cli

import (
	"bytes"
	"fmt"
	"html/template"
	"os"

	"github.com/go-placard/placard/core"
	"github.com/urfave/cli/v2"
)

var CheckCommand = &cli.Command{
	Name:  "check",
	Usage: "Validate that the page parses and renders",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "config", Value: "placard.config.yml", Usage: "path to the config file"},
	},
	Action: func(c *cli.Context) error {
		config := core.LoadConfig(c.String("config"))

		source := "built-in document"
		doc := core.Document

		if config.PageFile != "" {
			content, err := os.ReadFile(config.PageFile)
			if err != nil {
				return cli.Exit(fmt.Sprintf("❌ %s → %v", config.PageFile, err), 1)
			}
			doc = string(content)
			source = config.PageFile
		}

		tmpl, err := template.New("page").Parse(doc)
		if err != nil {
			return cli.Exit(fmt.Sprintf("❌ %s → parse error: %v", source, err), 1)
		}

		var buf bytes.Buffer
		if err := tmpl.Execute(&buf, nil); err != nil {
			return cli.Exit(fmt.Sprintf("❌ %s → exec error: %v", source, err), 1)
		}

		fmt.Printf("✅ %s (%d bytes)\n", source, buf.Len())
		return nil
	},
}
