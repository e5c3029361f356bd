package processor

import (
	"context"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/consumer"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/contracts"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
	"github.com/google/uuid"
)

// Processor orchestrates the score-and-alert pipeline: consume live stat
// updates, run the edge engine, publish scored lines, and fire alerts on
// tier crossings
type Processor struct {
	consumer  *consumer.StreamConsumer
	scorer    contracts.EdgeScorer
	publisher contracts.ScorePublisher
	tracker   contracts.AlertTracker
	metrics   *Metrics
}

// NewProcessor creates a new processor
func NewProcessor(
	streamConsumer *consumer.StreamConsumer,
	scorer contracts.EdgeScorer,
	publisher contracts.ScorePublisher,
	tracker contracts.AlertTracker,
	metrics *Metrics,
) *Processor {
	return &Processor{
		consumer:  streamConsumer,
		scorer:    scorer,
		publisher: publisher,
		tracker:   tracker,
		metrics:   metrics,
	}
}

// Start begins processing live stat updates for a sport
func (p *Processor) Start(ctx context.Context, sport models.Sport) error {
	streamKey := fmt.Sprintf("stats.live.%s", sport)

	fmt.Printf("✓ Starting edge scoring for stream: %s\n", streamKey)

	messageCh, errorCh := p.consumer.ConsumeStream(ctx, streamKey)

	for {
		select {
		case <-ctx.Done():
			return nil

		case err := <-errorCh:
			if err != nil {
				fmt.Printf("stream error: %v\n", err)
			}

		case msg, ok := <-messageCh:
			if !ok {
				return nil
			}

			if err := p.ProcessUpdate(ctx, msg.Update); err != nil {
				fmt.Printf("error processing update %s: %v\n", msg.ID, err)
				p.metrics.updateErrors.Inc()
			}

			if err := p.consumer.AckMessage(ctx, msg.StreamKey, msg.ID); err != nil {
				fmt.Printf("error acknowledging message %s: %v\n", msg.ID, err)
			}
		}
	}
}

// ProcessUpdate scores a single stat update, publishes the result, and
// fires an alert if the score crossed into a new tier
func (p *Processor) ProcessUpdate(ctx context.Context, update models.StatUpdate) error {
	startTime := time.Now()

	edge := p.scorer.ScoreEdge(update.ScoreInput())
	pace := p.scorer.ScorePace(update.PaceInput())

	score := models.PlayerScore{
		ID:           uuid.NewString(),
		GameID:       update.GameID,
		PlayerName:   update.PlayerName,
		TeamAbbr:     update.TeamAbbr,
		Sport:        update.Sport,
		StatType:     update.StatType,
		CurrentValue: update.CurrentValue,
		PregameLine:  update.PregameLine,
		Edge:         edge,
		Pace:         pace,
		ScoredAt:     time.Now(),
	}
	score.ProcessingLatency = time.Since(startTime).Milliseconds()

	if err := p.publisher.PublishScore(ctx, score); err != nil {
		return fmt.Errorf("failed to publish score: %w", err)
	}

	p.metrics.updatesProcessed.Inc()
	p.metrics.signalCounts.WithLabelValues(string(edge.Signal)).Inc()
	p.metrics.edgeScores.Observe(edge.EdgeScore)
	p.metrics.scoringLatency.Observe(time.Since(startTime).Seconds())

	alert, previous, err := p.tracker.Evaluate(ctx, update.TrackingKey(), edge.EdgeScore)
	if err != nil {
		return fmt.Errorf("failed to evaluate alert state: %w", err)
	}

	if !alert {
		return nil
	}

	edgeAlert := models.EdgeAlert{
		ID:            uuid.NewString(),
		GameID:        update.GameID,
		PlayerName:    update.PlayerName,
		Sport:         update.Sport,
		StatType:      update.StatType,
		EdgeScore:     edge.EdgeScore,
		PreviousScore: previous,
		Signal:        edge.Signal,
		Message:       scoring.FormatAlertMessage(update.PlayerName, update.StatType, edge, update.PregameLine),
		TriggeredAt:   time.Now(),
	}

	if err := p.publisher.PublishAlert(ctx, edgeAlert); err != nil {
		return fmt.Errorf("failed to publish alert: %w", err)
	}

	p.metrics.alertsFired.WithLabelValues(string(edge.Signal)).Inc()

	fmt.Printf("✓ Edge alert: player=%s stat=%s edge=%.2f signal=%s\n",
		update.PlayerName, update.StatType, edge.EdgeScore, edge.Signal)

	return nil
}
