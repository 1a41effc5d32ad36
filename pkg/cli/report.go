package cli

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/lseu-open/modelscore/pkg/data"
	"github.com/lseu-open/modelscore/pkg/report"
	"github.com/lseu-open/modelscore/pkg/scoring"
)

var (
	reportOutFlag = &cli.StringFlag{
		Name:  "out",
		Usage: "Directory where the CSV report is written ('-' for stdout)",
		Value: resultsDirDefault,
	}

	reportCmd = &cli.Command{
		Name:            "report",
		Aliases:         []string{"r"},
		Usage:           "Export stored results as a CSV report",
		HideHelpCommand: true,
		Action:          cmdReport,
		Flags: []cli.Flag{
			reportOutFlag,
		},
	}
)

func cmdReport(c *cli.Context) error {
	applyFlags(c)
	cfg := getConfig(c)

	rows, err := data.GetLeaderboard(cfg.DB, 0)
	if err != nil {
		return fmt.Errorf("failed to query results: %w", err)
	}
	if len(rows) == 0 {
		return fmt.Errorf("no stored results, run score first")
	}

	results := make([]*report.ModelResult, 0, len(rows))
	for _, r := range rows {
		results = append(results, &report.ModelResult{
			ModelName: r.ModelName,
			Scores: scoring.Breakdown{
				Entity:    r.EntityScore,
				Dev:       r.DevScore,
				Community: r.CommunityScore,
				Technical: r.TechnicalScore,
				Final:     r.FinalScore,
			},
		})
	}

	out := c.String(reportOutFlag.Name)
	if out == "-" {
		return report.WriteCSV(os.Stdout, results)
	}

	path, err := report.SaveCSV(out, report.ReportFileName(time.Now()), results)
	if err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	slog.Info("report written", "path", path, "models", len(results))
	return nil
}
