package alertstate

import (
	"context"
	"fmt"
	"time"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/scoring"
	"github.com/redis/go-redis/v9"
)

// Tracker records the last published edge score per player prop in Redis and
// applies the tier-crossing rule, so restarts and multiple scorer instances
// agree on what has already been alerted.
type Tracker struct {
	client *redis.Client
	ttl    time.Duration
}

// NewTracker creates a new alert state tracker. Entries expire after the
// given TTL, so a prop that goes quiet can alert again in a later game.
func NewTracker(client *redis.Client, ttlMinutes int) *Tracker {
	return &Tracker{
		client: client,
		ttl:    time.Duration(ttlMinutes) * time.Minute,
	}
}

// Evaluate returns whether the new score should fire an alert, along with
// the previously recorded score (nil if none), and records the new score
// for the next evaluation.
func (t *Tracker) Evaluate(ctx context.Context, key string, edgeScore float64) (bool, *float64, error) {
	stateKey := t.stateKey(key)

	var previous *float64
	val, err := t.client.Get(ctx, stateKey).Float64()
	switch {
	case err == redis.Nil:
		// First score for this prop
	case err != nil:
		return false, nil, fmt.Errorf("failed to read alert state: %w", err)
	default:
		previous = &val
	}

	alert := scoring.ShouldAlert(edgeScore, previous)

	if err := t.client.Set(ctx, stateKey, edgeScore, t.ttl).Err(); err != nil {
		return false, previous, fmt.Errorf("failed to record alert state: %w", err)
	}

	return alert, previous, nil
}

// Clear removes the recorded state for a prop (for testing)
func (t *Tracker) Clear(ctx context.Context, key string) error {
	return t.client.Del(ctx, t.stateKey(key)).Err()
}

// stateKey builds the Redis key for a tracking key
func (t *Tracker) stateKey(key string) string {
	return fmt.Sprintf("edge:lastscore:%s", key)
}
