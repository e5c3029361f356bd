package scoring

import "github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"

// bayesianProjection blends the season-average prior with the live observed
// pace, weighted by how much in-game evidence exists. With no usable prior
// the projection degrades to pure extrapolation.
func bayesianProjection(in models.ScoreInput, progress float64) float64 {
	var currentPace float64
	if progress > 0 {
		currentPace = in.CurrentValue / progress
	}

	if in.SeasonAverage == nil || *in.SeasonAverage <= 0 {
		return currentPace
	}

	var evidenceWeight float64
	if in.MinutesPlayed != nil {
		evidenceWeight = *in.MinutesPlayed / EvidenceMinutes
	}

	prior := *in.SeasonAverage
	return (PriorWeight*prior + evidenceWeight*currentPace) / (PriorWeight + evidenceWeight)
}
