package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/valleedgar085-rgb/Smart-shopping-list/pkg/interfaces/cli/commands"
)

func main() {
	app := &cli.App{
		Name:  "shoplist",
		Usage: "Merge office supply requests and find the cheapest store",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "scenario",
				Aliases:  []string{"s"},
				Usage:    "Path to a YAML scenario file with offices and stores",
				Required: true,
			},
			&cli.StringFlag{
				Name:    "format",
				Aliases: []string{"f"},
				Value:   "text",
				Usage:   "Output format: text, json",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "Enable verbose output with an audit trail",
			},
		},
		Action: func(c *cli.Context) error {
			cmd := commands.NewCompareCommand(commands.Config{
				ScenarioFile: c.String("scenario"),
				Format:       c.String("format"),
				Verbose:      c.Bool("verbose"),
			})
			return cmd.Execute(c.Context)
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
