package models

// Signal classifies an edge score into an alerting tier
type Signal string

const (
	SignalNone    Signal = "none"    // Below 1.5 - no action
	SignalMonitor Signal = "monitor" // 1.5-2.0 - worth watching
	SignalGood    Signal = "good"    // 2.0-3.0 - alertable edge
	SignalStrong  Signal = "strong"  // 3.0+ - strong edge
)

// PaceSignal classifies a pace score relative to the pregame line
type PaceSignal string

const (
	PaceBehind   PaceSignal = "behind"    // Below 90% of required pace
	PaceOnTarget PaceSignal = "on_target" // 90-110%
	PaceAhead    PaceSignal = "ahead"     // 110-150%
	PaceWayAhead PaceSignal = "way_ahead" // Above 150%
)

// ScoreInput holds everything the edge engine needs to score one player stat line.
// Optional fields are pointers; nil means the signal is unavailable and the
// corresponding adjustment degrades to a no-op.
type ScoreInput struct {
	CurrentValue       float64  `json:"current_value"`
	PregameLine        float64  `json:"pregame_line"`
	GameElapsedPercent float64  `json:"game_elapsed_pct"` // 0-100, game-clock fallback
	GamesPlayed        int      `json:"games_played"`
	HistoricalStddev   float64  `json:"historical_stddev,omitempty"`
	IsRookie           bool     `json:"is_rookie,omitempty"`
	MinutesPlayed      *float64 `json:"minutes_played,omitempty"`
	ExpectedMinutes    *float64 `json:"expected_minutes,omitempty"`
	StatType           StatType `json:"stat_type,omitempty"`
	ScoreDifferential  *float64 `json:"score_differential,omitempty"`
	Period             *int     `json:"period,omitempty"`
	PersonalFouls      *int     `json:"personal_fouls,omitempty"`
	SeasonAverage      *float64 `json:"season_average,omitempty"`
	UsagePercentage    *float64 `json:"usage_pct,omitempty"`
	GamePace           *float64 `json:"game_pace,omitempty"`
	Sport              Sport    `json:"sport,omitempty"`
}

// ScoreComponents exposes every intermediate factor of the edge score so
// callers can explain a score and tests can assert on individual adjustments
type ScoreComponents struct {
	Progress                 float64 `json:"progress"`
	PaceRatio                float64 `json:"pace_ratio"`
	AdjustedPaceRatio        float64 `json:"adjusted_pace_ratio"`
	EffectiveDampening       float64 `json:"effective_dampening"`
	DataScarcity             float64 `json:"data_scarcity"`
	GameTiming               float64 `json:"game_timing"`
	VariancePenalty          float64 `json:"variance_penalty"`
	Projection               float64 `json:"projection"`
	BlowoutFactor            float64 `json:"blowout_factor"`
	FoulTroubleFactor        float64 `json:"foul_trouble_factor"`
	UsageMultiplier          float64 `json:"usage_multiplier"`
	GamePaceMultiplier       float64 `json:"game_pace_multiplier"`
	PoissonConfidence        float64 `json:"poisson_confidence"`
	EffectiveExpectedMinutes float64 `json:"effective_expected_minutes"`
}

// ScoreResult is the edge engine's output for one stat line
type ScoreResult struct {
	EdgeScore      float64         `json:"edge_score"`      // Clamped to [0, 10]
	Pace           float64         `json:"pace"`            // Naive linear extrapolation (diagnostic)
	ProjectedFinal float64         `json:"projected_final"` // Bayesian-blended projection
	Signal         Signal          `json:"signal"`
	Components     ScoreComponents `json:"components"`
}

// PaceInput is the reduced input set for the standalone pace score
type PaceInput struct {
	CurrentValue       float64  `json:"current_value"`
	PregameLine        float64  `json:"pregame_line"`
	GameElapsedPercent float64  `json:"game_elapsed_pct"`
	MinutesPlayed      *float64 `json:"minutes_played,omitempty"`
	ExpectedMinutes    *float64 `json:"expected_minutes,omitempty"`
}

// PaceResult is the pace score output
type PaceResult struct {
	PacePercent float64    `json:"pace_pct"` // 1.0 = exactly on pace for the line
	Progress    float64    `json:"progress"`
	Signal      PaceSignal `json:"signal"`
}
