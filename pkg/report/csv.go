package report

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
)

var csvHeader = []string{
	"model_name",
	"entity_score",
	"dev_score",
	"community_score",
	"technical_score",
	"final_score",
}

// WriteCSV writes a batch of results as CSV: category scores with 2
// decimal places, final score with 4.
func WriteCSV(w io.Writer, results []*ModelResult) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("failed to write csv header: %w", err)
	}

	for _, r := range results {
		row := []string{
			r.ModelName,
			fmt.Sprintf("%.2f", r.Scores.Entity),
			fmt.Sprintf("%.2f", r.Scores.Dev),
			fmt.Sprintf("%.2f", r.Scores.Community),
			fmt.Sprintf("%.2f", r.Scores.Technical),
			fmt.Sprintf("%.4f", r.Scores.Final),
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("failed to write csv row for %s: %w", r.ModelName, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("failed to flush csv: %w", err)
	}
	return nil
}

// SaveCSV writes the batch report to a file under dir and returns the
// written path.
func SaveCSV(dir, name string, results []*ModelResult) (string, error) {
	if dir == "" {
		dir = "."
	}
	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("failed to create results dir %s: %w", dir, err)
	}

	path := filepath.Join(dir, name)
	file, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, fileMode)
	if err != nil {
		return "", fmt.Errorf("failed to create csv file %s: %w", path, err)
	}
	defer file.Close()

	if err := WriteCSV(file, results); err != nil {
		return "", err
	}
	return path, nil
}
