package cli

import (
	"fmt"
	"log/slog"
	"runtime"

	"github.com/urfave/cli/v2"

	"github.com/lseu-open/modelscore/pkg/model"
)

const (
	modelsDirDefault  = "Models"
	resultsDirDefault = "Results"
)

var (
	allModelsFlag = &cli.BoolFlag{
		Name:    "all",
		Aliases: []string{"a"},
		Usage:   "Score every model found in the models directory",
	}

	modelsDirFlag = &cli.StringFlag{
		Name:  "models-dir",
		Usage: "Directory holding model JSON files",
		Value: modelsDirDefault,
	}

	resultsDirFlag = &cli.StringFlag{
		Name:  "results-dir",
		Usage: "Directory where result files are written",
		Value: resultsDirDefault,
	}

	concurrencyFlag = &cli.IntFlag{
		Name:  "concurrency",
		Usage: "Maximum number of models scored in parallel",
		Value: runtime.NumCPU(),
	}

	noSaveFlag = &cli.BoolFlag{
		Name:  "no-save",
		Usage: "Print scores without writing result files or database rows",
	}

	scoreCmd = &cli.Command{
		Name:      "score",
		Aliases:   []string{"s"},
		Usage:     "Score one or more models",
		ArgsUsage: "[model names]",
		UsageText: `modelscore score gemma-3-4b                  # score a single model
   modelscore score gemma-3-4b phi-4            # score several models
   modelscore score --all                       # score everything in the models dir`,
		HideHelpCommand: true,
		Action:          cmdScore,
		Flags: []cli.Flag{
			allModelsFlag,
			modelsDirFlag,
			resultsDirFlag,
			concurrencyFlag,
			noSaveFlag,
			configFileFlag,
			formatFlag,
			quietFlag,
		},
	}
)

func cmdScore(c *cli.Context) error {
	applyFlags(c)

	names := c.Args().Slice()
	modelsDir := c.String(modelsDirFlag.Name)

	if c.Bool(allModelsFlag.Name) {
		found, err := model.ListModels(modelsDir)
		if err != nil {
			return fmt.Errorf("listing models in %s: %w", modelsDir, err)
		}
		names = found
	}
	if len(names) == 0 {
		return cli.ShowSubcommandHelp(c)
	}

	cfg := getConfig(c)
	if p := c.String(configFileFlag.Name); p != "" {
		scoring, err := loadScoringConfig(p)
		if err != nil {
			return err
		}
		cfg.Scoring = scoring
	}

	opts := batchOptions{
		ModelsDir:   modelsDir,
		ResultsDir:  c.String(resultsDirFlag.Name),
		Concurrency: c.Int(concurrencyFlag.Name),
		Save:        !c.Bool(noSaveFlag.Name),
	}

	outcomes := runBatch(c.Context, cfg, names, opts)

	quiet := c.Bool(quietFlag.Name)

	succeeded := 0
	for _, o := range outcomes {
		if o.Err != nil {
			slog.Error("scoring failed", "model", o.Model, "error", o.Err)
			continue
		}
		succeeded++
		if quiet {
			fmt.Printf("%s: %.4f\n", o.Model, o.Result.Scores.Final)
			continue
		}
		if err := encode(o.Result); err != nil {
			return fmt.Errorf("error encoding result for %s: %w", o.Model, err)
		}
	}

	slog.Info("scoring done", "requested", len(names), "succeeded", succeeded)
	if succeeded == 0 {
		return fmt.Errorf("no model scored successfully")
	}
	return nil
}
