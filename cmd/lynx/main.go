package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/erazemk/lynx/internal/config"
)

// Populated at build time via -ldflags.
var version = "dev"

func main() {
	cfg := &config.Config{}

	app := &cli.Command{
		Name:      "lynx",
		Usage:     "Warehouse pick lists for wall-mounted displays",
		UsageText: "lynx [options]",
		Description: `Lynx serves an admin page for creating and activating pick orders and a
storage display showing the active order with found toggles and progress.

All state is held in memory and discarded when the server stops.`,
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "addr",
				Aliases:     []string{"a"},
				Usage:       "listen address",
				Sources:     cli.EnvVars("LYNX_ADDR"),
				Value:       config.DefaultAddr,
				Destination: &cfg.Addr,
			},
			&cli.StringFlag{
				Name:        "templates",
				Aliases:     []string{"t"},
				Usage:       "YAML file with order templates (defaults to the built-in templates)",
				Sources:     cli.EnvVars("LYNX_TEMPLATES"),
				Destination: &cfg.TemplatesPath,
			},
			&cli.StringFlag{
				Name:        "log",
				Aliases:     []string{"l"},
				Usage:       "also write logs to this file",
				Sources:     cli.EnvVars("LYNX_LOG_FILE"),
				Destination: &cfg.LogFile,
			},
			&cli.StringFlag{
				Name:        "log-level",
				Usage:       "log level (debug, info, warn, error)",
				Sources:     cli.EnvVars("LYNX_LOG_LEVEL"),
				Value:       config.DefaultLogLevel,
				Destination: &cfg.LogLevel,
			},
			&cli.StringFlag{
				Name:        "ids",
				Usage:       "identifier strategy (uuid, sequence)",
				Sources:     cli.EnvVars("LYNX_ID_STRATEGY"),
				Value:       "uuid",
				Destination: &cfg.IDStrategy,
			},
			&cli.DurationFlag{
				Name:        "display-refresh",
				Usage:       "how often the storage display reloads",
				Sources:     cli.EnvVars("LYNX_DISPLAY_REFRESH"),
				Value:       config.DefaultDisplayRefresh,
				Destination: &cfg.DisplayRefresh,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() > 0 {
				return fmt.Errorf("unexpected argument %q. Run 'lynx --help' for usage", c.Args().First())
			}
			if err := cfg.Validate(); err != nil {
				return fmt.Errorf("invalid configuration: %w", err)
			}

			closeLog, err := setupLogger(cfg.LogFile, cfg.LogLevel)
			if err != nil {
				return err
			}
			if closeLog != nil {
				defer closeLog()
			}

			return serve(ctx, cfg)
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}
