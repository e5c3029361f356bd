package publisher

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
	"github.com/redis/go-redis/v9"
)

// AlertStreamKey is the stream edge alerts are published to
const AlertStreamKey = "alerts.edge"

// GlobalScoreStreamKey receives every scored line regardless of sport
const GlobalScoreStreamKey = "scores.live"

// StreamPublisher publishes scored stat lines and alerts to Redis Streams
type StreamPublisher struct {
	client *redis.Client
}

// NewStreamPublisher creates a new stream publisher
func NewStreamPublisher(client *redis.Client) *StreamPublisher {
	return &StreamPublisher{
		client: client,
	}
}

// PublishScore publishes a scored line to the sport-specific stream and the
// global stream for services that want all sports
func (p *StreamPublisher) PublishScore(ctx context.Context, score models.PlayerScore) error {
	scoreJSON, err := json.Marshal(score)
	if err != nil {
		return fmt.Errorf("failed to marshal player score: %w", err)
	}

	streamKey := fmt.Sprintf("%s.%s", GlobalScoreStreamKey, score.Sport)
	if err := p.publish(ctx, streamKey, "score", scoreJSON); err != nil {
		return err
	}

	return p.publish(ctx, GlobalScoreStreamKey, "score", scoreJSON)
}

// PublishAlert publishes an edge alert to the alerts.edge stream
func (p *StreamPublisher) PublishAlert(ctx context.Context, alert models.EdgeAlert) error {
	alertJSON, err := json.Marshal(alert)
	if err != nil {
		return fmt.Errorf("failed to marshal edge alert: %w", err)
	}

	return p.publish(ctx, AlertStreamKey, "alert", alertJSON)
}

// publish appends a JSON payload to a stream
func (p *StreamPublisher) publish(ctx context.Context, streamKey, field string, payload []byte) error {
	_, err := p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: streamKey,
		Values: map[string]interface{}{
			field: string(payload),
		},
	}).Result()

	if err != nil {
		return fmt.Errorf("failed to publish to stream %s: %w", streamKey, err)
	}

	return nil
}
