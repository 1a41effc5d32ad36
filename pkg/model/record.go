// Package model defines the raw model record contract: the required-field
// schema, the validator that enforces it, and the typed views the scoring
// engine consumes after validation.
package model

import (
	"encoding/json"
	"strings"

	"github.com/lseu-open/modelscore/pkg/config"
)

// Top-level record sections.
const (
	SectionEntityBenchmarks = "entity_benchmarks"
	SectionDevBenchmarks    = "dev_benchmarks"
	SectionModelSpecs       = "model_specs"
	SectionCommunityScore   = "community_score"
)

// Required model_specs fields.
const (
	SpecPrice         = "price"
	SpecContextWindow = "context_window"
	SpecParamCount    = "param_count"
	SpecArchitecture  = "architecture"
)

// Record is a raw model record as decoded from its JSON file. Sections are
// generic mappings so the validator owns all type and bound policy; the
// typed accessors below assume a prior successful Validate.
type Record map[string]any

// sectionOrder fixes the order in which sections are checked so the first
// violation reported is deterministic.
var sectionOrder = []string{
	SectionEntityBenchmarks,
	SectionDevBenchmarks,
	SectionModelSpecs,
	SectionCommunityScore,
}

// requiredFields is the input schema: every listed field must be present in
// its section. A present field may still be null, meaning "not evaluated".
var requiredFields = map[string][]string{
	SectionEntityBenchmarks: {
		"artificial_analysis",
		"OpenCompass",
		"Dubesord_LLM",
		"LLM Explorer",
		"Livebench",
		"open_llm",
		"UGI Leaderboard",
		"big_code_bench",
		"EvalPlus Leaderboard",
		"Open VLM",
	},
	SectionDevBenchmarks: {
		"MMLU",
		"MMLU Pro",
		"BigBenchHard",
		"GPQA diamond",
		"DROP",
		"HellaSwag",
		"Humanity's Last Exam",
		"ARC-C",
		"Wild Bench",
		"MT-bench",
		"IFEval",
		"Arena-Hard",
		"MATH",
		"GSM-8K",
		"AIME",
		"HumanEval",
		"MBPP",
		"LiveCodeBench",
		"Aider Polyglot",
		"SWE-Bench",
		"SciCode",
		"MGSM",
		"MMMLU",
		"C-Eval or CMMLU",
		"AraMMLu",
		"LongBench",
		"RULER 128K",
		"RULER 32K",
		"MTOB",
		"BFCL",
		"AgentBench",
		"Gorilla Benchmark",
		"ToolBench",
		"MINT",
		"MMMU",
		"Mathvista",
		"ChartQA",
		"DocVQA",
		"AI2D",
	},
	SectionModelSpecs: {
		SpecPrice,
		SpecContextWindow,
		SpecParamCount,
		SpecArchitecture,
	},
	SectionCommunityScore: {
		config.MetricArenaScore,
		config.MetricHFScore,
	},
}

// RequiredFields returns the required field names for a section.
func RequiredFields(section string) []string {
	return requiredFields[section]
}

// Specs are the typed technical specification inputs extracted from a
// validated record. Architecture is empty when the field is absent.
type Specs struct {
	Price         *float64
	ContextWindow *float64
	ParamCount    *float64
	Architecture  string
}

// CommunityInputs are the nullable community engagement inputs extracted
// from a validated record.
type CommunityInputs struct {
	ArenaScore *float64
	HFScore    *float64
}

// Benchmarks returns the normalized benchmark scores for a section. Null
// scores come back as nil pointers.
func (r Record) Benchmarks(section string) map[string]*float64 {
	raw, ok := r[section].(map[string]any)
	if !ok {
		return nil
	}
	scores := make(map[string]*float64, len(raw))
	for name, v := range raw {
		if n, ok := toFloat(v); ok {
			val := n
			scores[name] = &val
		} else {
			scores[name] = nil
		}
	}
	return scores
}

// Specs returns the typed model_specs view of a validated record.
func (r Record) Specs() Specs {
	raw, ok := r[SectionModelSpecs].(map[string]any)
	if !ok {
		return Specs{}
	}
	s := Specs{
		Price:         numField(raw, SpecPrice),
		ContextWindow: numField(raw, SpecContextWindow),
		ParamCount:    numField(raw, SpecParamCount),
	}
	if arch, ok := raw[SpecArchitecture].(string); ok {
		s.Architecture = strings.TrimSpace(arch)
	}
	return s
}

// Community returns the typed community_score view of a validated record.
func (r Record) Community() CommunityInputs {
	raw, ok := r[SectionCommunityScore].(map[string]any)
	if !ok {
		return CommunityInputs{}
	}
	return CommunityInputs{
		ArenaScore: numField(raw, config.MetricArenaScore),
		HFScore:    numField(raw, config.MetricHFScore),
	}
}

func numField(m map[string]any, field string) *float64 {
	if n, ok := toFloat(m[field]); ok {
		return &n
	}
	return nil
}

// toFloat converts the numeric types that can appear in a decoded record.
// Booleans are not numbers.
func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	default:
		return 0, false
	}
}
