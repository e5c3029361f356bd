package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/internal/scoring"
	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// Handler contains dependencies for HTTP handlers
type Handler struct {
	maxBatchSize int
}

// NewHandler creates a new handler
func NewHandler(maxBatchSize int) *Handler {
	return &Handler{
		maxBatchSize: maxBatchSize,
	}
}

// HealthCheck returns service health
func (h *Handler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"service": "prop-edge-scorer",
	})
}

// Score computes an edge score for a single stat line
func (h *Handler) Score(w http.ResponseWriter, r *http.Request) {
	var input models.ScoreInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, scoring.ComputeEdgeScore(input))
}

// PaceScore computes the standalone pace score for a stat line
func (h *Handler) PaceScore(w http.ResponseWriter, r *http.Request) {
	var input models.PaceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	respondJSON(w, http.StatusOK, scoring.ComputePaceScore(input))
}

// BatchRequest is a batch scoring request
type BatchRequest struct {
	Updates []models.StatUpdate `json:"updates"`
}

// BatchResponseEntry is one scored line in a batch response
type BatchResponseEntry struct {
	PlayerName string             `json:"player_name"`
	StatType   models.StatType    `json:"stat_type"`
	Edge       models.ScoreResult `json:"edge"`
	Pace       models.PaceResult  `json:"pace"`
}

// ScoreBatch scores a collection of stat lines, returning them sorted by
// descending edge score
func (h *Handler) ScoreBatch(w http.ResponseWriter, r *http.Request) {
	var req BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("invalid request: %v", err))
		return
	}

	if len(req.Updates) == 0 {
		respondError(w, http.StatusBadRequest, "updates must not be empty")
		return
	}

	if len(req.Updates) > h.maxBatchSize {
		respondError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds maximum %d", len(req.Updates), h.maxBatchSize))
		return
	}

	ranked := scoring.RankUpdates(req.Updates)

	entries := make([]BatchResponseEntry, 0, len(ranked))
	for _, rs := range ranked {
		entries = append(entries, BatchResponseEntry{
			PlayerName: rs.Update.PlayerName,
			StatType:   rs.Update.StatType,
			Edge:       rs.Edge,
			Pace:       rs.Pace,
		})
	}

	respondJSON(w, http.StatusOK, entries)
}

// respondJSON writes a JSON response
func respondJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// respondError writes an error response
func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error": message,
	})
}
