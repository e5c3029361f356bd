package scoring

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// ComputePaceScore produces the simpler "percent of line pace" metric shown
// alongside the edge score. It shares the edge engine's progress resolution
// so the two numbers can never disagree about what progress means.
func ComputePaceScore(in models.PaceInput) models.PaceResult {
	line := math.Max(in.PregameLine, MinLine)

	// No context reduction here; the pace score only sees raw expected minutes
	progress := resolveProgress(in.MinutesPlayed, in.ExpectedMinutes, in.GameElapsedPercent, 0)

	targetPercent := in.CurrentValue / line
	pacePercent := targetPercent / progress

	return models.PaceResult{
		PacePercent: pacePercent,
		Progress:    progress,
		Signal:      classifyPaceSignal(pacePercent),
	}
}

// classifyPaceSignal maps a pace percentage onto its display tier
func classifyPaceSignal(pacePercent float64) models.PaceSignal {
	switch {
	case pacePercent < PaceBehindThreshold:
		return models.PaceBehind
	case pacePercent <= PaceOnTargetThreshold:
		return models.PaceOnTarget
	case pacePercent <= PaceAheadThreshold:
		return models.PaceAhead
	default:
		return models.PaceWayAhead
	}
}
