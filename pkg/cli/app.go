// Package cli wires the scoring engine, result store, and report writers
// into the modelscore command line application.
package cli

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"time"

	urfave "github.com/urfave/cli/v2"
	"gopkg.in/yaml.v3"

	"github.com/lseu-open/modelscore/pkg/config"
	"github.com/lseu-open/modelscore/pkg/data"
	"github.com/lseu-open/modelscore/pkg/logging"
)

const (
	dirMode      = 0700
	appConfigKey = "app-config"

	formatJSON = "json"
	formatYAML = "yaml"
)

var (
	version = "v0.0.1-default"
	commit  = ""
	date    = ""

	outputFormat = formatJSON

	debugFlag = &urfave.BoolFlag{
		Name:  "debug",
		Usage: "Prints verbose logs (optional, default: false)",
	}

	quietFlag = &urfave.BoolFlag{
		Name:    "quiet",
		Aliases: []string{"q"},
		Usage:   "Suppresses all output except errors and results",
	}

	dbFilePathFlag = &urfave.StringFlag{
		Name:  "db",
		Usage: "Path to the Sqlite database file",
	}

	configFileFlag = &urfave.StringFlag{
		Name:    "config",
		Aliases: []string{"c"},
		Usage:   "Path to an alternate scoring configuration file (YAML)",
	}

	formatFlag = &urfave.StringFlag{
		Name:  "format",
		Usage: "Output format [json, yaml]",
		Value: formatJSON,
	}
)

// Execute creates and runs the CLI application.
func Execute() {
	logging.SetDefaultCLILogger("info", false)

	app := newApp()
	if err := app.Run(os.Args); err != nil {
		slog.Error("fatal error", "error", err)
		os.Exit(1)
	}
}

type appConfig struct {
	DBPath  string
	Debug   bool
	DB      *sql.DB
	Scoring *config.Config
}

func getConfig(c *urfave.Context) *appConfig {
	return c.App.Metadata[appConfigKey].(*appConfig)
}

func newApp() *urfave.App {
	return &urfave.App{
		Name:                 "modelscore",
		Version:              fmt.Sprintf("%s (%s - %s)", version, commit, date),
		Compiled:             time.Now(),
		EnableBashCompletion: true,
		HideHelpCommand:      true,
		Usage:                "CLI for scoring open LLMs on benchmarks, community, and technical specs",
		Flags: []urfave.Flag{
			debugFlag,
			quietFlag,
			dbFilePathFlag,
			configFileFlag,
			formatFlag,
		},
		Commands: []*urfave.Command{
			scoreCmd,
			leaderboardCmd,
			reportCmd,
			configCmd,
			serverCmd,
		},
		Before: func(c *urfave.Context) error {
			level := "info"
			if c.Bool(debugFlag.Name) {
				level = "debug"
			}
			logging.SetDefaultCLILogger(level, c.Bool(quietFlag.Name))

			f := c.String(formatFlag.Name)
			if f == formatYAML || f == "yml" {
				outputFormat = formatYAML
			}

			scoring, err := loadScoringConfig(c.String(configFileFlag.Name))
			if err != nil {
				return err
			}

			dbPath := c.String(dbFilePathFlag.Name)
			if dbPath == "" {
				dbPath = path.Join(getHomeDir(), data.DataFileName)
			}

			if err := data.Init(dbPath); err != nil {
				return fmt.Errorf("initializing database: %w", err)
			}

			db, err := data.GetDB(dbPath)
			if err != nil {
				return fmt.Errorf("opening database: %w", err)
			}

			c.App.Metadata[appConfigKey] = &appConfig{
				DBPath:  dbPath,
				Debug:   c.Bool(debugFlag.Name),
				DB:      db,
				Scoring: scoring,
			}
			return nil
		},
		After: func(c *urfave.Context) error {
			if cfg, ok := c.App.Metadata[appConfigKey].(*appConfig); ok && cfg.DB != nil {
				cfg.DB.Close()
			}
			return nil
		},
	}
}

// applyFlags re-applies logging and format flags that commands declare
// locally, so they work both before and after the command name.
func applyFlags(c *urfave.Context) {
	level := "info"
	if c.Bool(debugFlag.Name) {
		level = "debug"
	}
	logging.SetDefaultCLILogger(level, c.Bool(quietFlag.Name))

	if f := c.String(formatFlag.Name); f == formatYAML || f == "yml" {
		outputFormat = formatYAML
	}
}

func loadScoringConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, fmt.Errorf("loading scoring config: %w", err)
	}
	slog.Debug("loaded scoring config", "path", path)
	return cfg, nil
}

func getHomeDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		slog.Debug("error getting home dir, using current dir instead", "error", err)
		return "."
	}

	dirName := ".modelscore"
	dirPath := filepath.Join(home, dirName)
	if _, err := os.Stat(dirPath); errors.Is(err, os.ErrNotExist) {
		slog.Debug("creating dir", "path", dirPath)
		if err := os.Mkdir(dirPath, dirMode); err != nil {
			slog.Debug("error creating dir", "path", dirPath, "home", home, "error", err)
			return home
		}
	}
	return dirPath
}

func encode(v any) error {
	if outputFormat == formatYAML {
		return yaml.NewEncoder(os.Stdout).Encode(v)
	}
	e := json.NewEncoder(os.Stdout)
	e.SetIndent("", "  ")
	return e.Encode(v)
}
