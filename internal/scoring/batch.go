package scoring

import (
	"sort"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// RankedScore pairs a stat update with its scoring results
type RankedScore struct {
	Update models.StatUpdate
	Edge   models.ScoreResult
	Pace   models.PaceResult
}

// RankUpdates scores every update and returns the results sorted by
// descending edge score. Invocations are independent, so a sequential
// loop is all the batch path needs.
func RankUpdates(updates []models.StatUpdate) []RankedScore {
	ranked := make([]RankedScore, 0, len(updates))

	for _, update := range updates {
		ranked = append(ranked, RankedScore{
			Update: update,
			Edge:   ComputeEdgeScore(update.ScoreInput()),
			Pace:   ComputePaceScore(update.PaceInput()),
		})
	}

	sort.Slice(ranked, func(i, j int) bool {
		return ranked[i].Edge.EdgeScore > ranked[j].Edge.EdgeScore
	})

	return ranked
}
