package scoring

import (
	"fmt"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// ShouldAlert decides whether an edge score warrants an alert. With a
// previous score available, only upward crossings into the "good" (2.0) or
// "strong" (3.0) tier fire, so a player who stays in the same tier does not
// re-alert every scoring cycle.
func ShouldAlert(edgeScore float64, previousScore *float64) bool {
	if edgeScore < AlertThreshold {
		return false
	}

	if previousScore == nil {
		return true
	}

	prev := *previousScore
	if prev < GoodThreshold && edgeScore >= GoodThreshold {
		return true
	}
	if prev < StrongThreshold && edgeScore >= StrongThreshold {
		return true
	}

	return false
}

// FormatAlertMessage builds the human-readable alert summary
func FormatAlertMessage(playerName string, statType models.StatType, result models.ScoreResult, pregameLine float64) string {
	return fmt.Sprintf("🔥 %s pacing for %.1f %s (line %.1f) | edge %.2f [%s]",
		playerName, result.Pace, statType.Label(), pregameLine, result.EdgeScore, result.Signal)
}
