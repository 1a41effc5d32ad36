// Package scoring implements the composite model quality score: four
// category sub-scores (entity benchmarks, dev benchmarks, community
// engagement, technical specifications) aggregated under the configured
// category weights into a final 0-100 score.
//
// The engine is pure computation over a validated, normalized record and
// an immutable configuration. It performs no I/O and no re-validation;
// null-guards on optional inputs are part of the formulas.
package scoring

import (
	"math"

	"github.com/lseu-open/modelscore/pkg/config"
)

// Breakdown holds the per-category sub-scores and the aggregated final
// score for one model.
type Breakdown struct {
	Entity    float64 `json:"entity_score" yaml:"entity_score"`
	Dev       float64 `json:"dev_score" yaml:"dev_score"`
	Community float64 `json:"community_score" yaml:"community_score"`
	Technical float64 `json:"technical_score" yaml:"technical_score"`
	Final     float64 `json:"final_score" yaml:"final_score"`
}

// CommunityInputs are the nullable community engagement inputs.
type CommunityInputs struct {
	ArenaScore *float64
	HFScore    *float64
}

// TechnicalSpecs are the nullable technical specification inputs.
// Architecture is empty when unknown.
type TechnicalSpecs struct {
	Price         *float64
	ContextWindow *float64
	ParamCount    *float64
	Architecture  string
}

// Inputs collects everything needed to score one model. Benchmark maps
// hold normalized scores in [0,1]; nil pointers mean "not evaluated".
type Inputs struct {
	EntityBenchmarks map[string]*float64
	DevBenchmarks    map[string]*float64
	Community        CommunityInputs
	Technical        TechnicalSpecs
}

// Scorer computes category scores for a single model. Instance state is
// limited to the last computed breakdown, kept for inspection and
// reporting; all score methods are pure functions of their inputs and the
// configuration.
type Scorer struct {
	model     string
	cfg       *config.Config
	breakdown Breakdown
}

// New returns a Scorer for the named model using the given configuration,
// falling back to the defaults when cfg is nil.
func New(model string, cfg *config.Config) *Scorer {
	if cfg == nil {
		cfg = config.Default()
	}
	return &Scorer{model: model, cfg: cfg}
}

// Model returns the name of the model being scored.
func (s *Scorer) Model() string {
	return s.model
}

// Breakdown returns the sub-scores from the last FinalScore call.
func (s *Scorer) Breakdown() Breakdown {
	return s.breakdown
}

// EntityScore computes the entity benchmark category score: the weighted
// average over benchmarks that are both configured and evaluated, scaled
// to the category maximum. Missing benchmarks contribute no evidence
// rather than a penalty.
func (s *Scorer) EntityScore(scores map[string]*float64) float64 {
	return weightedCategory(scores, s.cfg.Benchmarks.Entity, s.cfg.Weights.EntityBenchmarks)
}

// DevScore computes the dev benchmark category score using the same
// algorithm as EntityScore over the dev benchmark set.
func (s *Scorer) DevScore(scores map[string]*float64) float64 {
	return weightedCategory(scores, s.cfg.Benchmarks.Dev, s.cfg.Weights.DevBenchmarks)
}

// FinalScore computes all four category scores and aggregates them. Each
// category score is bounded by its configured maximum and the maxima sum
// to the scale, so no re-normalization happens here. The result is
// rounded to 4 decimal places.
func (s *Scorer) FinalScore(in Inputs) Breakdown {
	bd := Breakdown{
		Entity:    s.EntityScore(in.EntityBenchmarks),
		Dev:       s.DevScore(in.DevBenchmarks),
		Community: s.CommunityScore(in.Community.ArenaScore, in.Community.HFScore),
	}

	avg := s.overallBenchmarkAvg(in.EntityBenchmarks, in.DevBenchmarks)
	bd.Technical = s.TechnicalScore(in.Technical, &avg)

	bd.Final = round(bd.Entity+bd.Dev+bd.Community+bd.Technical, 4)

	s.breakdown = bd
	return bd
}

// overallBenchmarkAvg computes the single 0-100 benchmark performance
// figure that feeds the size/performance ratio: the weighted mean over
// the merged entity and dev weight tables.
func (s *Scorer) overallBenchmarkAvg(entity, dev map[string]*float64) float64 {
	weights := make(map[string]float64, len(s.cfg.Benchmarks.Entity)+len(s.cfg.Benchmarks.Dev))
	for name, w := range s.cfg.Benchmarks.Entity {
		weights[name] = w
	}
	for name, w := range s.cfg.Benchmarks.Dev {
		weights[name] = w
	}

	scores := make(map[string]*float64, len(entity)+len(dev))
	for name, v := range entity {
		scores[name] = v
	}
	for name, v := range dev {
		scores[name] = v
	}

	var sum, used float64
	for name, score := range scores {
		w, ok := weights[name]
		if !ok || score == nil {
			continue
		}
		sum += *score * w
		used += w
	}
	if used == 0 {
		return 0
	}
	return sum / used * 100
}

func weightedCategory(scores map[string]*float64, weights map[string]float64, maxPoints float64) float64 {
	var sum, used float64
	for name, score := range scores {
		w, ok := weights[name]
		if !ok || score == nil {
			continue
		}
		sum += *score * w
		used += w
	}
	if used == 0 {
		return 0
	}
	return sum / used * maxPoints
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

func round(v float64, places int) float64 {
	shift := math.Pow(10, float64(places))
	return math.Round(v*shift) / shift
}
