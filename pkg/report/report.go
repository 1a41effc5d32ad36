// Package report writes scoring outcomes to files: per-model JSON result
// envelopes and CSV summaries across a batch.
package report

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/lseu-open/modelscore/pkg/scoring"
)

const (
	dirMode  = 0700
	fileMode = 0600
)

// ModelResult is the per-model result envelope: the score breakdown plus
// the raw input record it was computed from, so a result file is
// self-contained.
type ModelResult struct {
	ModelName string            `json:"model_name" yaml:"model_name"`
	Scores    scoring.Breakdown `json:"scores" yaml:"scores"`
	InputData map[string]any    `json:"input_data,omitempty" yaml:"input_data,omitempty"`
}

// Save writes the envelope as pretty-printed JSON to
// <dir>/<model>_results.json, creating dir when needed. Returns the
// written path.
func (r *ModelResult) Save(dir string) (string, error) {
	if r.ModelName == "" {
		return "", fmt.Errorf("result model name not specified")
	}
	if dir == "" {
		dir = "."
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return "", fmt.Errorf("failed to create results dir %s: %w", dir, err)
	}

	b, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize result for %s: %w", r.ModelName, err)
	}

	path := filepath.Join(dir, r.ModelName+"_results.json")
	if err := os.WriteFile(path, b, fileMode); err != nil {
		return "", fmt.Errorf("failed to write result file %s: %w", path, err)
	}

	slog.Debug("result saved", "model", r.ModelName, "path", path)
	return path, nil
}

// ReportFileName returns a timestamped CSV file name for a batch report.
func ReportFileName(now time.Time) string {
	return fmt.Sprintf("scores_%s.csv", now.UTC().Format("20060102T150405"))
}
