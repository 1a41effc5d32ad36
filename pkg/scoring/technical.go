package scoring

import (
	"math"
	"strings"

	"github.com/lseu-open/modelscore/pkg/config"
)

// TechnicalScore computes the technical specification category score as
// the sum of the price, context window, and size/performance sub-scores.
// Each sub-score contributes zero when its inputs are absent; there is no
// redistribution of the missing points. benchmarkAvg is the overall
// benchmark performance on the 0-100 scale, nil when no benchmark was
// evaluated. The result is rounded to 2 decimal places.
func (s *Scorer) TechnicalScore(specs TechnicalSpecs, benchmarkAvg *float64) float64 {
	var total float64
	if specs.Price != nil {
		total += s.priceScore(*specs.Price)
	}
	if specs.ContextWindow != nil {
		total += s.contextScore(*specs.ContextWindow)
	}
	if specs.ParamCount != nil && specs.Architecture != "" && benchmarkAvg != nil {
		total += s.sizePerfScore(*benchmarkAvg, *specs.ParamCount, specs.Architecture)
	}
	return round(total, 2)
}

// priceScore rewards cheap inference with a decreasing linear curve.
// Free models earn the full points, prices at or above the cutoff earn
// the flat floor, and the line between never dips below that floor.
func (s *Scorer) priceScore(price float64) float64 {
	p := s.cfg.Technical.Price
	if price <= 0 {
		return p.MaxPoints
	}
	if price >= p.HighPriceCutoff {
		return p.HighPricePoints
	}
	return clamp(p.Intercept-p.Coefficient*price, p.HighPricePoints, p.MaxPoints)
}

// contextScore rewards large context windows on a logarithmic curve.
// Windows below the cutoff earn the flat floor; at the cutoff and above
// the curve applies, floored at the same points.
func (s *Scorer) contextScore(window float64) float64 {
	p := s.cfg.Technical.ContextWindow
	if window < p.LowCutoff {
		return p.LowPoints
	}
	v := p.Coefficient*logBase(window, p.LogBase) + p.Intercept
	return clamp(v, p.LowPoints, p.MaxPoints)
}

// sizePerfScore rewards benchmark performance relative to model size: the
// normalized benchmark average is discounted by a size tier factor and an
// architecture factor, then mapped onto the base-to-max point range.
func (s *Scorer) sizePerfScore(benchmarkAvg, paramCount float64, architecture string) float64 {
	p := s.cfg.Technical.SizePerfRatio

	sizeFactor := p.DefaultFactor
	for _, tier := range p.Tiers {
		if paramCount < tier.Limit {
			sizeFactor = tier.Factor
			break
		}
	}

	archFactor, ok := s.cfg.Architecture[strings.ToLower(architecture)]
	if !ok {
		archFactor = s.cfg.Architecture[config.ArchitectureDefault]
	}

	ratio := benchmarkAvg / 100 * sizeFactor * archFactor
	return clamp(p.BasePoints+p.ScalingFactor*ratio, 0, p.MaxPoints)
}

func logBase(v, base float64) float64 {
	return math.Log(v) / math.Log(base)
}
