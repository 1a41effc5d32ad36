package scoring

import "github.com/lseu-open/modelscore/pkg/config"

// HFMetrics are raw Hugging Face repository metrics for a model. The
// caller supplies them; no network access happens here.
type HFMetrics struct {
	Downloads int64
	Likes     int64
	AgeMonths float64
}

// HFScore derives the 0-10 Hugging Face engagement score from repository
// metrics: logarithmic curves for downloads and likes plus a piecewise
// age curve that favors models old enough to have accumulated real usage.
// The result is rounded to 2 decimal places and is suitable as the
// hf_score community input.
func (s *Scorer) HFScore(m HFMetrics) float64 {
	hf := s.cfg.HuggingFace
	total := logCurveScore(float64(m.Downloads), hf.Downloads) +
		logCurveScore(float64(m.Likes), hf.Likes) +
		ageScore(m.AgeMonths, hf.AgeMonths)
	return round(total, 2)
}

func logCurveScore(v float64, p config.LogCurveParams) float64 {
	if v < p.Minimum {
		return 0
	}
	return clamp(p.Coefficient*logBase(v, p.LogBase)+p.Intercept, 0, p.MaxPoints)
}

// ageScore walks the age tiers with explicit range guards. The last
// growing tier includes its upper bound, so the curve peaks there before
// settling on the stable points; ages outside every tier, including
// negative ones from clock skew, earn the stable points.
func ageScore(months float64, p config.AgeCurveParams) float64 {
	var v float64
	switch {
	case months >= 0 && months < p.Tier1Months:
		v = months * p.Tier1Slope
	case months >= p.Tier1Months && months < p.Tier2Months:
		v = p.Tier2BasePoints + (months-p.Tier1Months)*p.Tier2Slope
	case months >= p.Tier2Months && months <= p.Tier3Months:
		v = p.Tier3BasePoints + (months-p.Tier2Months)*p.Tier3Slope
	default:
		v = p.StablePoints
	}
	return clamp(v, 0, p.MaxPoints)
}
