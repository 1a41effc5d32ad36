// Package config holds the tunable parameters of the model scoring
// algorithm: category weights, per-benchmark weights, bound ranges, and
// formula coefficients. Adjusting these values changes scoring outcomes
// without touching the scoring logic itself.
//
// A Config is loaded once per run (Default or an alternate YAML file) and
// shared read-only across all models scored in a batch.
package config

// Metric names used as keys in the community score bounds table.
const (
	MetricArenaScore = "lm_sys_arena_score"
	MetricHFScore    = "hf_score"

	// ArchitectureDefault is the fallback key in the architecture factor table.
	ArchitectureDefault = "default"
)

// Range is an inclusive min/max bound pair.
type Range struct {
	Min float64 `yaml:"min" json:"min"`
	Max float64 `yaml:"max" json:"max"`
}

// CategoryWeights is the maximum point contribution of each scoring
// category. The four values must sum to the overall scale.
type CategoryWeights struct {
	EntityBenchmarks float64 `yaml:"entity_benchmarks" json:"entity_benchmarks"`
	DevBenchmarks    float64 `yaml:"dev_benchmarks" json:"dev_benchmarks"`
	CommunityScore   float64 `yaml:"community_score" json:"community_score"`
	TechnicalScore   float64 `yaml:"technical_score" json:"technical_score"`
}

// BenchmarkWeights maps benchmark names to their relative weight within
// each benchmark category.
type BenchmarkWeights struct {
	Entity map[string]float64 `yaml:"entity_benchmarks" json:"entity_benchmarks"`
	Dev    map[string]float64 `yaml:"dev_benchmarks" json:"dev_benchmarks"`
}

// PriceParams drive the decreasing linear price score.
type PriceParams struct {
	MaxPoints       float64 `yaml:"max_points" json:"max_points"`
	Coefficient     float64 `yaml:"coefficient" json:"coefficient"`
	Intercept       float64 `yaml:"intercept" json:"intercept"`
	HighPriceCutoff float64 `yaml:"high_price_cutoff" json:"high_price_cutoff"`
	HighPricePoints float64 `yaml:"high_price_points" json:"high_price_points"`
}

// ContextWindowParams drive the logarithmic context window score.
type ContextWindowParams struct {
	MaxPoints   float64 `yaml:"max_points" json:"max_points"`
	Coefficient float64 `yaml:"coefficient" json:"coefficient"`
	Intercept   float64 `yaml:"intercept" json:"intercept"`
	LogBase     float64 `yaml:"log_base" json:"log_base"`
	LowCutoff   float64 `yaml:"low_cw_cutoff" json:"low_cw_cutoff"`
	LowPoints   float64 `yaml:"low_cw_points" json:"low_cw_points"`
}

// SizeTier maps a parameter count limit to an efficiency factor. Tiers are
// scanned in ascending order; the first tier whose limit exceeds the model
// parameter count supplies the factor.
type SizeTier struct {
	Limit  float64 `yaml:"limit" json:"limit"`
	Factor float64 `yaml:"factor" json:"factor"`
}

// SizePerfParams drive the size/performance ratio score.
type SizePerfParams struct {
	MaxPoints     float64    `yaml:"max_points" json:"max_points"`
	BasePoints    float64    `yaml:"base_points" json:"base_points"`
	ScalingFactor float64    `yaml:"scaling_factor" json:"scaling_factor"`
	Tiers         []SizeTier `yaml:"size_tiers" json:"size_tiers"`
	DefaultFactor float64    `yaml:"default_size_factor" json:"default_size_factor"`
}

// TechnicalParams groups the three technical sub-score formulas.
type TechnicalParams struct {
	Price         PriceParams         `yaml:"price" json:"price"`
	ContextWindow ContextWindowParams `yaml:"context_window" json:"context_window"`
	SizePerfRatio SizePerfParams      `yaml:"size_perf_ratio" json:"size_perf_ratio"`
}

// LogCurveParams describe a clamped logarithmic sub-score with a minimum
// input threshold below which the score is zero.
type LogCurveParams struct {
	LogBase     float64 `yaml:"log_base" json:"log_base"`
	Coefficient float64 `yaml:"coefficient" json:"coefficient"`
	Intercept   float64 `yaml:"intercept" json:"intercept"`
	Minimum     float64 `yaml:"minimum" json:"minimum"`
	MaxPoints   float64 `yaml:"max_points" json:"max_points"`
}

// AgeCurveParams describe the piecewise-linear model age sub-score.
type AgeCurveParams struct {
	Tier1Months     float64 `yaml:"tier1_months" json:"tier1_months"`
	Tier1Slope      float64 `yaml:"tier1_slope" json:"tier1_slope"`
	Tier2Months     float64 `yaml:"tier2_months" json:"tier2_months"`
	Tier2BasePoints float64 `yaml:"tier2_base_points" json:"tier2_base_points"`
	Tier2Slope      float64 `yaml:"tier2_slope" json:"tier2_slope"`
	Tier3Months     float64 `yaml:"tier3_months" json:"tier3_months"`
	Tier3BasePoints float64 `yaml:"tier3_base_points" json:"tier3_base_points"`
	Tier3Slope      float64 `yaml:"tier3_slope" json:"tier3_slope"`
	StablePoints    float64 `yaml:"stable_points" json:"stable_points"`
	MaxPoints       float64 `yaml:"max_points" json:"max_points"`
}

// HuggingFaceParams drive the Hugging Face community sub-score, computed
// from repository metrics supplied by the caller.
type HuggingFaceParams struct {
	Downloads LogCurveParams `yaml:"downloads" json:"downloads"`
	Likes     LogCurveParams `yaml:"likes" json:"likes"`
	AgeMonths AgeCurveParams `yaml:"age_months" json:"age_months"`
}

// Config is the complete scoring configuration. It is never mutated after
// load.
type Config struct {
	Scale        float64            `yaml:"score_scale" json:"score_scale"`
	Bounds       Range              `yaml:"score_bounds" json:"score_bounds"`
	Weights      CategoryWeights    `yaml:"score_weights" json:"score_weights"`
	Benchmarks   BenchmarkWeights   `yaml:"benchmark_weights" json:"benchmark_weights"`
	Community    map[string]Range   `yaml:"community_score_bounds" json:"community_score_bounds"`
	Technical    TechnicalParams    `yaml:"technical_score_params" json:"technical_score_params"`
	Architecture map[string]float64 `yaml:"model_architecture_factors" json:"model_architecture_factors"`
	HuggingFace  HuggingFaceParams  `yaml:"hugging_face_score_params" json:"hugging_face_score_params"`
}

// Default returns the reference scoring configuration.
func Default() *Config {
	return &Config{
		Scale:  100,
		Bounds: Range{Min: 0, Max: 100},
		Weights: CategoryWeights{
			EntityBenchmarks: 30,
			DevBenchmarks:    30,
			CommunityScore:   20,
			TechnicalScore:   20,
		},
		Benchmarks: BenchmarkWeights{
			Entity: map[string]float64{
				"Open VLM": 10,
			},
			Dev: map[string]float64{
				// Language capabilities
				"MMLU":            3.0,
				"MMLU Pro":        5.0,
				"BigBenchHard":    3.0,
				"GPQA diamond":    7.0,
				"DROP":            3.0,
				"HellaSwag":       3.0,
				"ARC-C":           3.0,
				"MGSM":            2.0,
				"MMMLU":           2.0,
				"C-Eval or CMMLU": 2.0,
				"AraMMLu":         2.0,
				// Multimodal multilingual
				"MMMB":                 1.0,
				"MTVQA":                1.0,
				"MM-MT-Bench":          1.0,
				"Multilingual MMBench": 1.0,
				// Multimodal reasoning and math
				"MMMU":       1.0,
				"Mathvista":  1.0,
				"MathVision": 1.0,
				"MathVerse":  1.0,
				"VQAv2":      1.0,
				// OCR and document understanding
				"AI2D":    1.0,
				"ChartQA": 1.0,
				"TextVQA": 1.0,
				"DocVQA":  1.0,
				"InfoVQA": 1.0,
				"CharXiv": 1.0,
				// Multi-image and real-world understanding
				"BLINK":       1.0,
				"Mantis":      1.0,
				"MMIU":        1.0,
				"MuirBench":   1.0,
				"MMT":         1.0,
				"RealWorldQA": 1.0,
				"MIRB":        1.0,
				"WildVlsion":  1.0,
				"R-Bench":     1.0,
				// Multimodal and hallucination
				"MME":       1.0,
				"MMB":       1.0,
				"MMBv1.1":   1.0,
				"MMVet":     1.0,
				"MMVetv2":   1.0,
				"HallBench": 1.0,
				"MMHal":     1.0,
				"CRP":       1.0,
				"POPE":      1.0,
				// Visual grounding
				"RefCOCO":  1.0,
				"RefCOCO+": 1.0,
				"RefCOCOg": 1.0,
				// GUI grounding
				"Obj.count":     1.0,
				"Abs.Dist.":     1.0,
				"Obj.size":      1.0,
				"Rel.Dist.":     1.0,
				"Rel.Dir.":      1.0,
				"ScreenSpot":    1.0,
				"ScreenSpot-V2": 1.0,
				// Video understanding
				"Video-MME":     1.0,
				"MVBench":       1.0,
				"MMBench-Video": 1.0,
				"MLVU":          1.0,
				"LongVideoBench": 1.0,
				"CG-Bench":      1.0,
			},
		},
		Community: map[string]Range{
			MetricArenaScore: {Min: 1000, Max: 1500},
			MetricHFScore:    {Min: 0, Max: 10},
		},
		Technical: TechnicalParams{
			Price: PriceParams{
				MaxPoints:       8.0,
				Coefficient:     0.35,
				Intercept:       8.0,
				HighPriceCutoff: 20.0,
				HighPricePoints: 1.0,
			},
			ContextWindow: ContextWindowParams{
				MaxPoints:   6.0,
				Coefficient: 0.571,
				Intercept:   -5.929,
				LogBase:     2,
				LowCutoff:   8192,
				LowPoints:   1.0,
			},
			SizePerfRatio: SizePerfParams{
				MaxPoints:     6.0,
				BasePoints:    1.0,
				ScalingFactor: 5.0,
				Tiers: []SizeTier{
					{Limit: 3_000_000_000, Factor: 1.00},
					{Limit: 10_000_000_000, Factor: 0.95},
					{Limit: 30_000_000_000, Factor: 0.90},
					{Limit: 80_000_000_000, Factor: 0.80},
					{Limit: 200_000_000_000, Factor: 0.70},
				},
				DefaultFactor: 0.60,
			},
		},
		Architecture: map[string]float64{
			"moe":               1.2,
			"ssm":               1.1,
			"dense":             1.0,
			"specialized":       1.1,
			"efficient":         1.1,
			ArchitectureDefault: 1.0,
		},
		HuggingFace: HuggingFaceParams{
			Downloads: LogCurveParams{
				LogBase:     2,
				Coefficient: 0.2007,
				Intercept:   -0.6667,
				Minimum:     10,
				MaxPoints:   4.0,
			},
			Likes: LogCurveParams{
				LogBase:     2,
				Coefficient: 0.477,
				Intercept:   -0.756,
				Minimum:     3,
				MaxPoints:   4.0,
			},
			AgeMonths: AgeCurveParams{
				Tier1Months:     1,
				Tier1Slope:      0.5,
				Tier2Months:     3,
				Tier2BasePoints: 0.5,
				Tier2Slope:      0.5,
				Tier3Months:     12,
				Tier3BasePoints: 1.5,
				Tier3Slope:      0.5 / 9,
				StablePoints:    1.5,
				MaxPoints:       2.0,
			},
		},
	}
}
