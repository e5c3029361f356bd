package scoring

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// poissonConfidence estimates how likely a player is to cover the remaining
// distance to the line for bursty discrete-event stats (threes, steals,
// blocks, touchdowns). Returns a multiplier in [0.3, 1.5]; exactly 1.0 for
// ineligible stat types or when no extrapolation is possible.
func poissonConfidence(statType models.StatType, currentValue, line, progress float64) float64 {
	if !poissonEligible[statType] {
		return 1.0
	}

	// No remaining-time extrapolation before tipoff or after the final whistle
	if progress <= 0 || progress >= 1 {
		return 1.0
	}

	remaining := math.Max(0, line-currentValue)
	remainingProgress := 1 - progress

	var currentRate float64
	if progress > 0.05 {
		currentRate = currentValue / progress
	}
	expectedRemaining := currentRate * remainingProgress

	// Target already met: maximal confidence
	if remaining <= 0 {
		return PoissonMaxConfidence
	}

	// No plausible path to the target: strong dampening
	if expectedRemaining <= 0 {
		return PoissonMinConfidence
	}

	p := poissonTailProbability(remaining, expectedRemaining)

	return clamp(p*PoissonScale, PoissonMinConfidence, PoissonMaxConfidence)
}

// poissonTailProbability computes P(X >= k) for X ~ Poisson(lambda) via the
// complement of the lower CDF. PMF terms are built iteratively (term-by-term
// multiplication) so no factorial is ever materialized.
func poissonTailProbability(k, lambda float64) float64 {
	upper := int(math.Floor(k - 1))
	if upper < 0 {
		return 1.0
	}

	term := math.Exp(-lambda) // P(X = 0)
	cdf := term
	for i := 1; i <= upper; i++ {
		term *= lambda / float64(i)
		cdf += term
	}

	return 1 - cdf
}
