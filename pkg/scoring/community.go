package scoring

import "github.com/lseu-open/modelscore/pkg/config"

// CommunityScore computes the community engagement category score from
// the arena score and the Hugging Face engagement score. Each present
// metric is scaled linearly within its configured bounds; with both
// metrics present each is worth half the category, with only one present
// that metric carries the full category. Values outside the bounds are
// clamped, never rejected. The result is rounded to 2 decimal places.
func (s *Scorer) CommunityScore(arena, hf *float64) float64 {
	present := 0
	if arena != nil {
		present++
	}
	if hf != nil {
		present++
	}
	if present == 0 {
		return 0
	}

	perMetric := s.cfg.Weights.CommunityScore / float64(present)

	var total float64
	if arena != nil {
		total += s.ratingMetric(config.MetricArenaScore, *arena, perMetric)
	}
	if hf != nil {
		total += s.secondaryMetric(config.MetricHFScore, *hf, perMetric)
	}
	return round(total, 2)
}

// ratingMetric maps a raw rating onto [0, maxPoints] by min-max
// normalization within the configured bounds. A degenerate range
// (min == max) yields the full points for any value at or above it.
func (s *Scorer) ratingMetric(name string, value, maxPoints float64) float64 {
	bounds, ok := s.cfg.Community[name]
	if !ok {
		return 0
	}
	span := bounds.Max - bounds.Min
	if span <= 0 {
		if value >= bounds.Min {
			return maxPoints
		}
		return 0
	}
	frac := (value - bounds.Min) / span
	return clamp(frac, 0, 1) * maxPoints
}

// secondaryMetric maps a raw score onto [0, maxPoints] by dividing the
// value by the bounds span, without shifting by the minimum.
func (s *Scorer) secondaryMetric(name string, value, maxPoints float64) float64 {
	bounds, ok := s.cfg.Community[name]
	if !ok {
		return 0
	}
	span := bounds.Max - bounds.Min
	if span <= 0 {
		if value >= bounds.Min {
			return maxPoints
		}
		return 0
	}
	frac := value / span
	return clamp(frac, 0, 1) * maxPoints
}
