package processor

import (
	"context"
	"testing"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type fakePublisher struct {
	scores []models.PlayerScore
	alerts []models.EdgeAlert
}

func (f *fakePublisher) PublishScore(_ context.Context, score models.PlayerScore) error {
	f.scores = append(f.scores, score)
	return nil
}

func (f *fakePublisher) PublishAlert(_ context.Context, alert models.EdgeAlert) error {
	f.alerts = append(f.alerts, alert)
	return nil
}

type fakeTracker struct {
	previous map[string]float64
}

func (f *fakeTracker) Evaluate(_ context.Context, key string, edgeScore float64) (bool, *float64, error) {
	var prev *float64
	if v, ok := f.previous[key]; ok {
		prev = &v
	}
	if f.previous == nil {
		f.previous = make(map[string]float64)
	}
	f.previous[key] = edgeScore
	return scoring.ShouldAlert(edgeScore, prev), prev, nil
}

func hotStartUpdate() models.StatUpdate {
	minutes := 20.0
	expected := 60.0
	return models.StatUpdate{
		GameID:             "nfl-2024-week8-buf-mia",
		PlayerName:         "Keon Coleman",
		TeamAbbr:           "BUF",
		Sport:              models.SportFootball,
		StatType:           models.StatReceivingYards,
		CurrentValue:       38,
		PregameLine:        45.5,
		GameElapsedPercent: 33,
		GamesPlayed:        3,
		IsRookie:           true,
		MinutesPlayed:      &minutes,
		ExpectedMinutes:    &expected,
	}
}

func TestProcessUpdatePublishesScoreAndAlert(t *testing.T) {
	pub := &fakePublisher{}
	tracker := &fakeTracker{}
	metrics := NewMetrics(prometheus.NewRegistry())

	proc := NewProcessor(nil, scoring.NewEngine(), pub, tracker, metrics)

	update := hotStartUpdate()
	if err := proc.ProcessUpdate(context.Background(), update); err != nil {
		t.Fatalf("ProcessUpdate() error: %v", err)
	}

	if len(pub.scores) != 1 {
		t.Fatalf("published %d scores, want 1", len(pub.scores))
	}

	score := pub.scores[0]
	if score.ID == "" {
		t.Error("score ID not assigned")
	}
	if score.Edge.Signal != models.SignalGood {
		t.Errorf("signal = %s, want good", score.Edge.Signal)
	}
	if score.PlayerName != update.PlayerName {
		t.Errorf("player = %s, want %s", score.PlayerName, update.PlayerName)
	}

	// First score above the alert threshold fires
	if len(pub.alerts) != 1 {
		t.Fatalf("published %d alerts, want 1", len(pub.alerts))
	}

	alert := pub.alerts[0]
	if alert.PreviousScore != nil {
		t.Errorf("previous score = %v, want nil on first alert", *alert.PreviousScore)
	}
	if alert.Message == "" {
		t.Error("alert message empty")
	}
}

func TestProcessUpdateSuppressesSameTierRealert(t *testing.T) {
	pub := &fakePublisher{}
	tracker := &fakeTracker{}
	metrics := NewMetrics(prometheus.NewRegistry())

	proc := NewProcessor(nil, scoring.NewEngine(), pub, tracker, metrics)

	update := hotStartUpdate()

	// Same prop scored twice in the same tier: one alert only
	if err := proc.ProcessUpdate(context.Background(), update); err != nil {
		t.Fatalf("first ProcessUpdate() error: %v", err)
	}
	update.CurrentValue = 39
	if err := proc.ProcessUpdate(context.Background(), update); err != nil {
		t.Fatalf("second ProcessUpdate() error: %v", err)
	}

	if len(pub.scores) != 2 {
		t.Fatalf("published %d scores, want 2", len(pub.scores))
	}
	if len(pub.alerts) != 1 {
		t.Fatalf("published %d alerts, want 1 (same-tier re-alert suppressed)", len(pub.alerts))
	}
}

func TestProcessUpdateNoAlertBelowThreshold(t *testing.T) {
	pub := &fakePublisher{}
	tracker := &fakeTracker{}
	metrics := NewMetrics(prometheus.NewRegistry())

	proc := NewProcessor(nil, scoring.NewEngine(), pub, tracker, metrics)

	err := proc.ProcessUpdate(context.Background(), models.StatUpdate{
		GameID:             "nba-2024-lal-bos",
		PlayerName:         "Bench Player",
		Sport:              models.SportBasketball,
		StatType:           models.StatPoints,
		CurrentValue:       3,
		PregameLine:        12.5,
		GameElapsedPercent: 60,
		GamesPlayed:        200,
	})
	if err != nil {
		t.Fatalf("ProcessUpdate() error: %v", err)
	}

	if len(pub.scores) != 1 {
		t.Fatalf("published %d scores, want 1", len(pub.scores))
	}
	if len(pub.alerts) != 0 {
		t.Fatalf("published %d alerts, want 0", len(pub.alerts))
	}
}
