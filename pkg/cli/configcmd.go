package cli

import (
	"fmt"
	"log/slog"

	"github.com/urfave/cli/v2"

	"github.com/lseu-open/modelscore/pkg/config"
)

var (
	configOutFlag = &cli.StringFlag{
		Name:     "out",
		Usage:    "Path of the config file to write",
		Required: true,
	}

	configCmd = &cli.Command{
		Name:            "config",
		Usage:           "Scoring configuration operations",
		HideHelpCommand: true,
		Subcommands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Write the default scoring configuration to a file for customization",
				Action: cmdConfigInit,
				Flags: []cli.Flag{
					configOutFlag,
				},
			},
			{
				Name:   "show",
				Usage:  "Print the effective scoring configuration",
				Action: cmdConfigShow,
				Flags: []cli.Flag{
					configFileFlag,
					formatFlag,
				},
			},
		},
	}
)

func cmdConfigInit(c *cli.Context) error {
	out := c.String(configOutFlag.Name)
	if err := config.Save(out, config.Default()); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	slog.Info("config written", "path", out)
	return nil
}

func cmdConfigShow(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)
	if err := encode(cfg.Scoring); err != nil {
		return fmt.Errorf("error encoding config: %w", err)
	}
	return nil
}
