package models

import (
	"fmt"
	"time"
)

// StatUpdate is a live stat line for one player prop, published by the
// game-stats pipeline on the stats.live.{sport} streams
type StatUpdate struct {
	GameID     string `json:"game_id"`
	PlayerName string `json:"player_name"`
	TeamAbbr   string `json:"team_abbr,omitempty"`

	Sport    Sport    `json:"sport"`
	StatType StatType `json:"stat_type"`

	CurrentValue       float64  `json:"current_value"`
	PregameLine        float64  `json:"pregame_line"`
	GameElapsedPercent float64  `json:"game_elapsed_pct"`
	GamesPlayed        int      `json:"games_played"`
	HistoricalStddev   float64  `json:"historical_stddev,omitempty"`
	IsRookie           bool     `json:"is_rookie,omitempty"`
	MinutesPlayed      *float64 `json:"minutes_played,omitempty"`
	ExpectedMinutes    *float64 `json:"expected_minutes,omitempty"`
	SeasonAverage      *float64 `json:"season_average,omitempty"`
	ScoreDifferential  *float64 `json:"score_differential,omitempty"`
	Period             *int     `json:"period,omitempty"`
	PersonalFouls      *int     `json:"personal_fouls,omitempty"`
	UsagePercentage    *float64 `json:"usage_pct,omitempty"`
	GamePace           *float64 `json:"game_pace,omitempty"`

	UpdatedAt  time.Time `json:"updated_at"`
	ReceivedAt time.Time `json:"received_at"`
}

// ScoreInput maps the update onto the edge engine's input
func (u StatUpdate) ScoreInput() ScoreInput {
	return ScoreInput{
		CurrentValue:       u.CurrentValue,
		PregameLine:        u.PregameLine,
		GameElapsedPercent: u.GameElapsedPercent,
		GamesPlayed:        u.GamesPlayed,
		HistoricalStddev:   u.HistoricalStddev,
		IsRookie:           u.IsRookie,
		MinutesPlayed:      u.MinutesPlayed,
		ExpectedMinutes:    u.ExpectedMinutes,
		StatType:           u.StatType,
		ScoreDifferential:  u.ScoreDifferential,
		Period:             u.Period,
		PersonalFouls:      u.PersonalFouls,
		SeasonAverage:      u.SeasonAverage,
		UsagePercentage:    u.UsagePercentage,
		GamePace:           u.GamePace,
		Sport:              u.Sport,
	}
}

// PaceInput maps the update onto the pace calculator's input
func (u StatUpdate) PaceInput() PaceInput {
	return PaceInput{
		CurrentValue:       u.CurrentValue,
		PregameLine:        u.PregameLine,
		GameElapsedPercent: u.GameElapsedPercent,
		MinutesPlayed:      u.MinutesPlayed,
		ExpectedMinutes:    u.ExpectedMinutes,
	}
}

// TrackingKey identifies one player prop for alert state tracking
func (u StatUpdate) TrackingKey() string {
	return fmt.Sprintf("%s:%s:%s", u.GameID, u.PlayerName, u.StatType)
}

// PlayerScore is a scored stat line, published on the scores.live.{sport} streams
type PlayerScore struct {
	ID         string   `json:"id"`
	GameID     string   `json:"game_id"`
	PlayerName string   `json:"player_name"`
	TeamAbbr   string   `json:"team_abbr,omitempty"`
	Sport      Sport    `json:"sport"`
	StatType   StatType `json:"stat_type"`

	CurrentValue float64 `json:"current_value"`
	PregameLine  float64 `json:"pregame_line"`

	Edge ScoreResult `json:"edge"`
	Pace PaceResult  `json:"pace"`

	ScoredAt          time.Time `json:"scored_at"`
	ProcessingLatency int64     `json:"processing_latency_ms"`
}

// EdgeAlert is an alert-worthy score transition, published on alerts.edge
type EdgeAlert struct {
	ID            string   `json:"id"`
	GameID        string   `json:"game_id"`
	PlayerName    string   `json:"player_name"`
	Sport         Sport    `json:"sport"`
	StatType      StatType `json:"stat_type"`
	EdgeScore     float64  `json:"edge_score"`
	PreviousScore *float64 `json:"previous_score,omitempty"`
	Signal        Signal   `json:"signal"`
	Message       string   `json:"message"`

	TriggeredAt time.Time `json:"triggered_at"`
}
