package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

func postJSON(t *testing.T, handler http.HandlerFunc, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	payload, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal request: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	handler(rec, req)
	return rec
}

func TestScoreEndpoint(t *testing.T) {
	h := NewHandler(100)

	minutes := 20.0
	expected := 60.0
	rec := postJSON(t, h.Score, models.ScoreInput{
		CurrentValue:       38,
		PregameLine:        45.5,
		GameElapsedPercent: 33,
		GamesPlayed:        3,
		IsRookie:           true,
		MinutesPlayed:      &minutes,
		ExpectedMinutes:    &expected,
		StatType:           models.StatReceivingYards,
		Sport:              models.SportFootball,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.ScoreResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.Signal != models.SignalGood {
		t.Errorf("signal = %s, want good", result.Signal)
	}
	if result.EdgeScore < 2.0 || result.EdgeScore > 3.0 {
		t.Errorf("edge score = %f, want within good band", result.EdgeScore)
	}
}

func TestScoreEndpointRejectsInvalidJSON(t *testing.T) {
	h := NewHandler(100)

	req := httptest.NewRequest(http.MethodPost, "/", bytes.NewReader([]byte("{not json")))
	rec := httptest.NewRecorder()
	h.Score(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("status = %d, want 400", rec.Code)
	}
}

func TestPaceScoreEndpoint(t *testing.T) {
	h := NewHandler(100)

	rec := postJSON(t, h.PaceScore, models.PaceInput{
		CurrentValue:       10,
		PregameLine:        20,
		GameElapsedPercent: 50,
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var result models.PaceResult
	if err := json.NewDecoder(rec.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if result.PacePercent != 1.0 {
		t.Errorf("pace percent = %f, want 1.0", result.PacePercent)
	}
	if result.Signal != models.PaceOnTarget {
		t.Errorf("signal = %s, want on_target", result.Signal)
	}
}

func TestScoreBatchEndpoint(t *testing.T) {
	h := NewHandler(100)

	rec := postJSON(t, h.ScoreBatch, BatchRequest{
		Updates: []models.StatUpdate{
			{
				PlayerName:         "On Pace",
				StatType:           models.StatPoints,
				CurrentValue:       11,
				PregameLine:        22,
				GameElapsedPercent: 50,
				GamesPlayed:        60,
			},
			{
				PlayerName:         "Hot Hand",
				StatType:           models.StatPoints,
				CurrentValue:       25,
				PregameLine:        22,
				GameElapsedPercent: 50,
				GamesPlayed:        60,
			},
		},
	})

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}

	var entries []BatchResponseEntry
	if err := json.NewDecoder(rec.Body).Decode(&entries); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if len(entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(entries))
	}
	if entries[0].PlayerName != "Hot Hand" {
		t.Errorf("top entry = %s, want Hot Hand", entries[0].PlayerName)
	}
}

func TestScoreBatchEndpointLimits(t *testing.T) {
	h := NewHandler(1)

	t.Run("Empty batch rejected", func(t *testing.T) {
		rec := postJSON(t, h.ScoreBatch, BatchRequest{})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})

	t.Run("Oversized batch rejected", func(t *testing.T) {
		rec := postJSON(t, h.ScoreBatch, BatchRequest{
			Updates: []models.StatUpdate{{PregameLine: 10}, {PregameLine: 12}},
		})
		if rec.Code != http.StatusBadRequest {
			t.Errorf("status = %d, want 400", rec.Code)
		}
	})
}

func TestHealthCheck(t *testing.T) {
	h := NewHandler(100)

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	h.HealthCheck(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("status = %d, want 200", rec.Code)
	}
}
