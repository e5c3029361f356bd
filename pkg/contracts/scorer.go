package contracts

import (
	"context"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// EdgeScorer defines the interface for scoring live player prop lines
type EdgeScorer interface {
	// ScoreEdge computes the composite edge score for a stat line
	ScoreEdge(in models.ScoreInput) models.ScoreResult

	// ScorePace computes the simpler percent-of-line pace score
	ScorePace(in models.PaceInput) models.PaceResult
}

// ScorePublisher defines the interface for publishing scored stat lines
type ScorePublisher interface {
	// PublishScore publishes a scored stat line to the score streams
	PublishScore(ctx context.Context, score models.PlayerScore) error

	// PublishAlert publishes an edge alert to the alert stream
	PublishAlert(ctx context.Context, alert models.EdgeAlert) error
}

// AlertTracker decides whether a new edge score should fire an alert,
// based on the previously recorded score for the same player prop
type AlertTracker interface {
	// Evaluate returns whether to alert, along with the previous score
	// (nil if this prop has not been scored recently), and records the
	// new score for the next evaluation
	Evaluate(ctx context.Context, key string, edgeScore float64) (bool, *float64, error)
}
