package main

import (
	"fmt"
	"log"
	"os"

	"github.com/go-placard/placard"
	placardcli "github.com/go-placard/placard/cli"
	clilib "github.com/urfave/cli/v2"
)

func runApp(args []string) error {
	app := &clilib.App{
		Name:  "placard",
		Usage: "A single-page HTML server powered by Go",
		Commands: []*clilib.Command{
			placardcli.DevCommand,
			placardcli.ProdCommand,
			placardcli.CheckCommand,
			placardcli.InfoCommand,
		},
		Flags: placardcli.ServeFlags,
		Action: func(c *clilib.Context) error {
			if c.Args().Present() {
				return fmt.Errorf("unknown command %q", c.Args().First())
			}
			placard.Start(placard.RuntimeConfig{
				Host:       c.String("host"),
				Port:       c.Int("port"),
				ConfigFile: c.String("config"),
			})
			return nil
		},
	}

	return app.Run(args)
}

func main() {
	if err := runApp(os.Args); err != nil {
		log.Fatal(err)
	}
}
