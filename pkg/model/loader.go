package model

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lseu-open/modelscore/pkg/config"
)

const recordFileExt = ".json"

// FindModelFile locates the JSON file for a model in the given directory,
// trying an exact "<name>.json" match first and a case-insensitive match
// as a fallback.
func FindModelFile(modelName, dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("error reading models directory %s: %w", dir, err)
	}

	exact := modelName + recordFileExt
	for _, e := range entries {
		if !e.IsDir() && e.Name() == exact {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	lower := strings.ToLower(exact)
	for _, e := range entries {
		if !e.IsDir() && strings.ToLower(e.Name()) == lower {
			return filepath.Join(dir, e.Name()), nil
		}
	}

	return "", fmt.Errorf("no record file found for model %q in %s", modelName, dir)
}

// LoadRecord reads and parses a model record file.
func LoadRecord(path string) (Record, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading record file %s: %w", path, err)
	}

	var rec Record
	if err := json.Unmarshal(b, &rec); err != nil {
		return nil, fmt.Errorf("invalid JSON in record file %s: %w", path, err)
	}

	return rec, nil
}

// LoadAndValidate finds, parses, and validates a model record. The
// returned record is normalized and ready for scoring.
func LoadAndValidate(modelName, dir string, cfg *config.Config) (Record, error) {
	path, err := FindModelFile(modelName, dir)
	if err != nil {
		return nil, err
	}

	rec, err := LoadRecord(path)
	if err != nil {
		return nil, err
	}

	if err := Validate(rec, modelName, cfg); err != nil {
		return nil, err
	}

	slog.Debug("record validated", "model", modelName, "path", path)
	return rec, nil
}

// ListModels returns the model names (file base names) of all record files
// in a directory, sorted for deterministic batch ordering.
func ListModels(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("error reading models directory %s: %w", dir, err)
	}

	names := make([]string, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), recordFileExt) {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
	}
	sort.Strings(names)

	return names, nil
}
