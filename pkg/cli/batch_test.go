package cli

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lseu-open/modelscore/pkg/config"
	"github.com/lseu-open/modelscore/pkg/data"
	"github.com/lseu-open/modelscore/pkg/model"
)

func setupAppConfig(t *testing.T) *appConfig {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	require.NoError(t, data.Init(dbPath))
	db, err := data.GetDB(dbPath)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return &appConfig{
		DBPath:  dbPath,
		DB:      db,
		Scoring: config.Default(),
	}
}

// writeModelFile writes a minimal valid model record: every required
// field present, benchmarks null except Open VLM.
func writeModelFile(t *testing.T, dir, name string) {
	t.Helper()

	rec := map[string]any{}
	for _, section := range []string{model.SectionEntityBenchmarks, model.SectionDevBenchmarks} {
		scores := map[string]any{}
		for _, field := range model.RequiredFields(section) {
			scores[field] = nil
		}
		rec[section] = scores
	}
	rec[model.SectionEntityBenchmarks].(map[string]any)["Open VLM"] = 90.0

	rec[model.SectionModelSpecs] = map[string]any{
		model.SpecPrice:         1.5,
		model.SpecContextWindow: 131072.0,
		model.SpecParamCount:    7e9,
		model.SpecArchitecture:  "dense",
	}
	rec[model.SectionCommunityScore] = map[string]any{
		config.MetricArenaScore: 1250.0,
		config.MetricHFScore:    8.2,
	}

	b, err := json.Marshal(rec)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, name+".json"), b, 0600))
}

func TestRunBatch(t *testing.T) {
	cfg := setupAppConfig(t)
	modelsDir := t.TempDir()
	resultsDir := t.TempDir()

	writeModelFile(t, modelsDir, "gemma-3-4b")
	writeModelFile(t, modelsDir, "phi-4")

	opts := batchOptions{
		ModelsDir:   modelsDir,
		ResultsDir:  resultsDir,
		Concurrency: 2,
		Save:        true,
	}
	outcomes := runBatch(context.Background(), cfg, []string{"gemma-3-4b", "phi-4"}, opts)

	require.Len(t, outcomes, 2)
	for _, o := range outcomes {
		require.NoError(t, o.Err)
		assert.Greater(t, o.Result.Scores.Final, 0.0)
	}

	// Input order is preserved regardless of completion order.
	assert.Equal(t, "gemma-3-4b", outcomes[0].Model)
	assert.Equal(t, "phi-4", outcomes[1].Model)

	// Result files and database rows were written.
	_, err := os.Stat(filepath.Join(resultsDir, "gemma-3-4b_results.json"))
	assert.NoError(t, err)
	row, err := data.GetResult(cfg.DB, "phi-4")
	require.NoError(t, err)
	assert.Equal(t, outcomes[1].Result.Scores.Final, row.FinalScore)
}

func TestRunBatchContinuesPastFailure(t *testing.T) {
	cfg := setupAppConfig(t)
	modelsDir := t.TempDir()

	writeModelFile(t, modelsDir, "good")

	opts := batchOptions{ModelsDir: modelsDir, Concurrency: 1, Save: false}
	outcomes := runBatch(context.Background(), cfg, []string{"missing", "good"}, opts)

	require.Len(t, outcomes, 2)
	assert.Error(t, outcomes[0].Err)
	assert.NoError(t, outcomes[1].Err)
	assert.Equal(t, "good", outcomes[1].Model)
}

func TestRunBatchNoSave(t *testing.T) {
	cfg := setupAppConfig(t)
	modelsDir := t.TempDir()
	resultsDir := t.TempDir()

	writeModelFile(t, modelsDir, "m")

	opts := batchOptions{ModelsDir: modelsDir, ResultsDir: resultsDir, Concurrency: 1, Save: false}
	outcomes := runBatch(context.Background(), cfg, []string{"m"}, opts)

	require.Len(t, outcomes, 1)
	require.NoError(t, outcomes[0].Err)

	entries, err := os.ReadDir(resultsDir)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = data.GetResult(cfg.DB, "m")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestScoreModelValidationFailure(t *testing.T) {
	cfg := setupAppConfig(t)
	modelsDir := t.TempDir()

	// Record missing whole sections fails validation, not scoring.
	require.NoError(t, os.WriteFile(filepath.Join(modelsDir, "bad.json"), []byte(`{}`), 0600))

	_, err := scoreModel(cfg, "bad", batchOptions{ModelsDir: modelsDir})
	require.Error(t, err)
	assert.True(t, model.IsValidationError(err))
}
