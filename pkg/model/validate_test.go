package model

import (
	"errors"
	"testing"

	"github.com/lseu-open/modelscore/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testModelName = "Test Model"

// validRecord builds a record that satisfies the full schema, with every
// benchmark marked as not evaluated.
func validRecord() Record {
	bench := func(section string) map[string]any {
		m := make(map[string]any, len(requiredFields[section]))
		for _, name := range requiredFields[section] {
			m[name] = nil
		}
		return m
	}
	return Record{
		SectionEntityBenchmarks: bench(SectionEntityBenchmarks),
		SectionDevBenchmarks:    bench(SectionDevBenchmarks),
		SectionModelSpecs: map[string]any{
			SpecPrice:         1.5,
			SpecContextWindow: 131072.0,
			SpecParamCount:    7e9,
			SpecArchitecture:  "dense",
		},
		SectionCommunityScore: map[string]any{
			config.MetricArenaScore: 1250.0,
			config.MetricHFScore:    8.2,
		},
	}
}

func TestValidate_ValidRecord(t *testing.T) {
	rec := validRecord()
	assert.NoError(t, Validate(rec, testModelName, config.Default()))
}

func TestValidate_NormalizesScoresInPlace(t *testing.T) {
	rec := validRecord()
	rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = 88.0
	rec[SectionDevBenchmarks].(map[string]any)["DROP"] = 0.0
	rec[SectionEntityBenchmarks].(map[string]any)["Open VLM"] = 100.0

	require.NoError(t, Validate(rec, testModelName, config.Default()))

	assert.Equal(t, 0.88, rec[SectionDevBenchmarks].(map[string]any)["MMLU"])
	assert.Equal(t, 0.0, rec[SectionDevBenchmarks].(map[string]any)["DROP"])
	assert.Equal(t, 1.0, rec[SectionEntityBenchmarks].(map[string]any)["Open VLM"])
}

func TestValidate_NormalizationIsExact(t *testing.T) {
	for _, raw := range []float64{0, 1, 12.5, 50, 73.25, 99.99, 100} {
		rec := validRecord()
		rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = raw
		require.NoError(t, Validate(rec, testModelName, config.Default()))
		assert.Equal(t, raw/100, rec[SectionDevBenchmarks].(map[string]any)["MMLU"])
	}
}

func TestValidate_MissingSection(t *testing.T) {
	rec := validRecord()
	delete(rec, SectionModelSpecs)

	err := Validate(rec, testModelName, config.Default())
	require.Error(t, err)

	var ms *MissingSectionError
	require.ErrorAs(t, err, &ms)
	assert.Equal(t, SectionModelSpecs, ms.Section)
	assert.Equal(t, testModelName, ms.Model)
	assert.True(t, IsValidationError(err))
}

func TestValidate_MissingBenchmarkKey(t *testing.T) {
	rec := validRecord()
	delete(rec[SectionDevBenchmarks].(map[string]any), "GPQA diamond")

	err := Validate(rec, testModelName, config.Default())
	require.Error(t, err)

	var bs *BenchmarkScoreError
	require.ErrorAs(t, err, &bs)
	assert.Equal(t, "GPQA diamond", bs.Field)
	assert.Equal(t, testModelName, bs.Model)
	assert.Contains(t, err.Error(), "GPQA diamond")
	assert.Contains(t, err.Error(), testModelName)
}

func TestValidate_BenchmarkSectionNotMapping(t *testing.T) {
	rec := validRecord()
	rec[SectionEntityBenchmarks] = []any{1, 2, 3}

	err := Validate(rec, testModelName, config.Default())
	var bs *BenchmarkScoreError
	require.ErrorAs(t, err, &bs)
}

func TestValidate_BenchmarkScoreWrongType(t *testing.T) {
	rec := validRecord()
	rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = "high"

	err := Validate(rec, testModelName, config.Default())
	var bs *BenchmarkScoreError
	require.ErrorAs(t, err, &bs)
	assert.Equal(t, "MMLU", bs.Field)
}

func TestValidate_BenchmarkScoreOutOfBounds(t *testing.T) {
	for _, score := range []float64{-0.1, 100.1, 250} {
		rec := validRecord()
		rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = score

		err := Validate(rec, testModelName, config.Default())
		var bs *BenchmarkScoreError
		require.ErrorAs(t, err, &bs, "score %v", score)
	}
}

func TestValidate_BooleanIsNotANumber(t *testing.T) {
	rec := validRecord()
	rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = true

	err := Validate(rec, testModelName, config.Default())
	var bs *BenchmarkScoreError
	require.ErrorAs(t, err, &bs)
}

func TestValidate_SpecMissingField(t *testing.T) {
	rec := validRecord()
	delete(rec[SectionModelSpecs].(map[string]any), SpecParamCount)

	err := Validate(rec, testModelName, config.Default())
	var sp *SpecificationError
	require.ErrorAs(t, err, &sp)
	assert.Equal(t, SpecParamCount, sp.Field)
}

func TestValidate_SpecNonPositive(t *testing.T) {
	for _, price := range []float64{0, -1} {
		rec := validRecord()
		rec[SectionModelSpecs].(map[string]any)[SpecPrice] = price

		err := Validate(rec, testModelName, config.Default())
		var sp *SpecificationError
		require.ErrorAs(t, err, &sp, "price %v", price)
	}
}

func TestValidate_ArchitectureBlank(t *testing.T) {
	for _, arch := range []any{"", "   ", 42} {
		rec := validRecord()
		rec[SectionModelSpecs].(map[string]any)[SpecArchitecture] = arch

		err := Validate(rec, testModelName, config.Default())
		var sp *SpecificationError
		require.ErrorAs(t, err, &sp, "architecture %v", arch)
	}
}

func TestValidate_CommunityMissingField(t *testing.T) {
	rec := validRecord()
	delete(rec[SectionCommunityScore].(map[string]any), config.MetricHFScore)

	err := Validate(rec, testModelName, config.Default())
	var cs *CommunityScoreError
	require.ErrorAs(t, err, &cs)
	assert.Equal(t, config.MetricHFScore, cs.Field)
}

func TestValidate_CommunityOutOfBounds(t *testing.T) {
	rec := validRecord()
	rec[SectionCommunityScore].(map[string]any)[config.MetricArenaScore] = 999.0

	err := Validate(rec, testModelName, config.Default())
	var cs *CommunityScoreError
	require.ErrorAs(t, err, &cs)
}

func TestValidate_CommunityNullAllowed(t *testing.T) {
	rec := validRecord()
	rec[SectionCommunityScore].(map[string]any)[config.MetricArenaScore] = nil
	rec[SectionCommunityScore].(map[string]any)[config.MetricHFScore] = nil

	assert.NoError(t, Validate(rec, testModelName, config.Default()))
}

func TestValidate_UnconfiguredMetricIsLenient(t *testing.T) {
	cfg := config.Default()
	delete(cfg.Community, config.MetricArenaScore)

	rec := validRecord()
	// Far outside the usual elo bounds; must pass without the configured range.
	rec[SectionCommunityScore].(map[string]any)[config.MetricArenaScore] = 99999.0

	assert.NoError(t, Validate(rec, testModelName, cfg))
}

func TestValidate_NilConfigUsesDefault(t *testing.T) {
	rec := validRecord()
	rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = 50.0
	require.NoError(t, Validate(rec, testModelName, nil))
	assert.Equal(t, 0.5, rec[SectionDevBenchmarks].(map[string]any)["MMLU"])
}

func TestIsValidationError_OtherErrors(t *testing.T) {
	assert.False(t, IsValidationError(errors.New("boom")))
	assert.False(t, IsValidationError(nil))
}

func TestRecord_TypedAccessors(t *testing.T) {
	rec := validRecord()
	rec[SectionDevBenchmarks].(map[string]any)["MMLU"] = 88.0
	require.NoError(t, Validate(rec, testModelName, config.Default()))

	scores := rec.Benchmarks(SectionDevBenchmarks)
	require.NotNil(t, scores["MMLU"])
	assert.InDelta(t, 0.88, *scores["MMLU"], 0.0001)
	assert.Nil(t, scores["DROP"])

	specs := rec.Specs()
	require.NotNil(t, specs.Price)
	assert.InDelta(t, 1.5, *specs.Price, 0.0001)
	require.NotNil(t, specs.ContextWindow)
	assert.InDelta(t, 131072, *specs.ContextWindow, 0.1)
	assert.Equal(t, "dense", specs.Architecture)

	community := rec.Community()
	require.NotNil(t, community.ArenaScore)
	assert.InDelta(t, 1250, *community.ArenaScore, 0.0001)
	require.NotNil(t, community.HFScore)
	assert.InDelta(t, 8.2, *community.HFScore, 0.0001)
}
