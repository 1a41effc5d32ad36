package model

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/lseu-open/modelscore/pkg/config"
)

// Validate checks a raw record against the required-field schema and the
// configured bounds, returning a typed error on the first violation found.
// On success the benchmark sections are normalized in place: each present
// numeric score is divided by the configured scale, yielding values in
// [0,1]. Validation is a single terminal step per record; a record must
// not be validated twice.
func Validate(rec Record, modelName string, cfg *config.Config) error {
	if cfg == nil {
		cfg = config.Default()
	}

	for _, section := range sectionOrder {
		if _, ok := rec[section]; !ok {
			return missingSection(modelName, section)
		}
	}

	if err := validateBenchmarks(rec, SectionEntityBenchmarks, modelName, cfg); err != nil {
		return err
	}
	if err := validateBenchmarks(rec, SectionDevBenchmarks, modelName, cfg); err != nil {
		return err
	}
	if err := validateSpecs(rec, modelName); err != nil {
		return err
	}
	return validateCommunity(rec, modelName, cfg)
}

// validateBenchmarks checks one benchmark section and normalizes valid
// scores in place. A null score means the benchmark was not run and is
// distinct from a missing key, which is a contract violation.
func validateBenchmarks(rec Record, section, modelName string, cfg *config.Config) error {
	scores, ok := rec[section].(map[string]any)
	if !ok {
		return benchmarkErr(modelName, section, "", "section must be a mapping", rec[section])
	}

	for _, name := range requiredFields[section] {
		v, present := scores[name]
		if !present {
			return benchmarkErr(modelName, section, name, "missing benchmark", nil)
		}
		if v == nil {
			continue // not evaluated
		}

		score, ok := toFloat(v)
		if !ok {
			return benchmarkErr(modelName, section, name,
				fmt.Sprintf("score must be a number, got %T", v), v)
		}
		if score < cfg.Bounds.Min || score > cfg.Bounds.Max {
			return benchmarkErr(modelName, section, name,
				fmt.Sprintf("score must be between %v and %v", cfg.Bounds.Min, cfg.Bounds.Max), score)
		}

		scores[name] = score / cfg.Scale
	}

	return nil
}

func validateSpecs(rec Record, modelName string) error {
	specs, ok := rec[SectionModelSpecs].(map[string]any)
	if !ok {
		return specErr(modelName, "", "section must be a mapping", rec[SectionModelSpecs])
	}

	for _, field := range requiredFields[SectionModelSpecs] {
		v, present := specs[field]
		if !present {
			return specErr(modelName, field, "missing specification", nil)
		}

		if field == SpecArchitecture {
			arch, ok := v.(string)
			if !ok {
				return specErr(modelName, field,
					fmt.Sprintf("must be a string, got %T", v), v)
			}
			if strings.TrimSpace(arch) == "" {
				return specErr(modelName, field, "cannot be empty", nil)
			}
			continue
		}

		n, ok := toFloat(v)
		if !ok {
			return specErr(modelName, field,
				fmt.Sprintf("must be a number, got %T", v), v)
		}
		if n <= 0 {
			return specErr(modelName, field, "must be positive", n)
		}
	}

	return nil
}

func validateCommunity(rec Record, modelName string, cfg *config.Config) error {
	scores, ok := rec[SectionCommunityScore].(map[string]any)
	if !ok {
		return communityErr(modelName, "", "section must be a mapping", rec[SectionCommunityScore])
	}

	for _, field := range requiredFields[SectionCommunityScore] {
		v, present := scores[field]
		if !present {
			return communityErr(modelName, field, "missing community score field", nil)
		}
		if v == nil {
			continue // score not yet available
		}

		n, ok := toFloat(v)
		if !ok {
			return communityErr(modelName, field,
				fmt.Sprintf("must be a number, got %T", v), v)
		}

		bounds, configured := cfg.Community[field]
		if !configured {
			// Lenient by design: an unconfigured metric skips bound
			// checking rather than failing the record.
			slog.Warn("no bounds configured for community metric, skipping bounds check",
				"model", modelName, "metric", field)
			continue
		}
		if n < bounds.Min || n > bounds.Max {
			return communityErr(modelName, field,
				fmt.Sprintf("must be between %v and %v", bounds.Min, bounds.Max), n)
		}
	}

	return nil
}
