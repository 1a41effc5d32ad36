package cli

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lseu-open/modelscore/pkg/config"
)

func TestNewApp(t *testing.T) {
	app := newApp()
	require.NotNil(t, app)
	assert.Equal(t, "modelscore", app.Name)
	assert.NotEmpty(t, app.Version)

	names := make([]string, 0, len(app.Commands))
	for _, cmd := range app.Commands {
		names = append(names, cmd.Name)
	}
	assert.ElementsMatch(t, []string{"score", "leaderboard", "report", "config", "server"}, names)
}

func TestLoadScoringConfigDefault(t *testing.T) {
	cfg, err := loadScoringConfig("")
	require.NoError(t, err)
	assert.Equal(t, config.Default().Scale, cfg.Scale)
}

func TestLoadScoringConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf.yaml")
	custom := config.Default()
	custom.Weights = config.CategoryWeights{
		EntityBenchmarks: 40,
		DevBenchmarks:    20,
		CommunityScore:   20,
		TechnicalScore:   20,
	}
	require.NoError(t, config.Save(path, custom))

	cfg, err := loadScoringConfig(path)
	require.NoError(t, err)
	assert.Equal(t, 40.0, cfg.Weights.EntityBenchmarks)
}

func TestLoadScoringConfigMissingFile(t *testing.T) {
	_, err := loadScoringConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
