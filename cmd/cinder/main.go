// SPDX-License-Identifier: Apache-2.0
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"
	"github.com/urfave/cli/v2"
	"github.com/ztrue/tracerr"

	"cinder/internal/config"
)

var cfg = config.Default()

func main() {
	app := &cli.App{
		Name:  "cinder",
		Usage: "cinder front end: tokenize, parse and type-check declarations",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Usage: "configuration file (default: ./" + config.DefaultFile + ")",
			},
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log at debug level",
			},
			&cli.BoolFlag{
				Name:  "no-color",
				Usage: "disable colored output",
			},
		},
		Before: setup,
		Commands: []*cli.Command{
			{
				Name:      "check",
				Usage:     "check a file and print its declarations",
				ArgsUsage: "<file>",
				Action:    checkCommand,
			},
			{
				Name:      "tokens",
				Usage:     "print the token stream of a file",
				ArgsUsage: "<file>",
				Action:    tokensCommand,
			},
			{
				Name:      "ast",
				Usage:     "dump the analysed syntax tree of a file",
				ArgsUsage: "<file>",
				Action:    astCommand,
			},
			{
				Name:      "grammar",
				Usage:     "parse a file with the reference grammar",
				ArgsUsage: "<file>",
				Action:    grammarCommand,
			},
			{
				Name:   "repl",
				Usage:  "start an interactive session",
				Action: replCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		tracerr.PrintSourceColor(err)
		os.Exit(1)
	}
}

// setup loads the configuration and lets flags override it.
func setup(c *cli.Context) error {
	loaded, err := config.Load(c.String("config"))
	if err != nil {
		return tracerr.Wrap(err)
	}
	cfg = loaded

	if c.Bool("verbose") {
		cfg.Verbosity = 2
	}
	if c.Bool("no-color") {
		noColor := false
		cfg.Color = &noColor
	}

	color.NoColor = !cfg.UseColor()
	commonlog.Configure(cfg.Verbosity, cfg.LogPath())
	return nil
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}
