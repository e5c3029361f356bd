package scoring

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// ComputeEdgeScore runs the full scoring pipeline for one live stat line.
// It is a pure function: no I/O, no shared state, safe to call concurrently.
// It never panics and never produces NaN or infinity for inputs inside the
// documented domains; degenerate inputs are floored rather than rejected so
// a single malformed player record cannot crash a live update cycle.
func ComputeEdgeScore(in models.ScoreInput) models.ScoreResult {
	line := math.Max(in.PregameLine, MinLine)

	// 1. Context reduction: blowout and foul trouble shrink expected minutes
	blowout, foulTrouble, effectiveExpMin := contextReduction(in)

	// 2. Player progress (minutes-based when available)
	progress := resolveProgress(in.MinutesPlayed, in.ExpectedMinutes, in.GameElapsedPercent, effectiveExpMin)

	// 3. Bayesian projection and pace ratio against the line
	projection := bayesianProjection(in, progress)
	pace := in.CurrentValue / progress
	paceRatio := projection / line

	// 4. Early-game noise dampening
	dampening := effectiveDampening(in.StatType, progress)
	adjustedPaceRatio := paceRatio / dampening

	// 5. Discrete-event confidence for bursty stat types
	confidence := poissonConfidence(in.StatType, in.CurrentValue, line, progress)

	// 6. Basketball-only usage and pace normalization
	usageMultiplier := 1.0
	if in.Sport == models.SportBasketball && in.UsagePercentage != nil {
		usageMultiplier = 0.7 + (*in.UsagePercentage/100)*1.5
	}
	gamePaceMultiplier := 1.0
	if in.Sport == models.SportBasketball && in.GamePace != nil && *in.GamePace > 0 {
		gamePaceMultiplier = *in.GamePace / 100
	}

	// 7. Data scarcity: thin history means lines are softer
	gamesPlayed := in.GamesPlayed
	if gamesPlayed < 0 {
		gamesPlayed = 0
	}
	dataScarcity := 1 + 1/math.Sqrt(float64(gamesPlayed)+1)
	if in.IsRookie {
		dataScarcity *= RookieBoost
	}

	// 8. Exponential early-game value weighting
	gameTiming := gameTimingWeight(progress)

	// 9. Variance penalty for historically streaky performers
	var variancePenalty float64
	if in.HistoricalStddev > 0 {
		variancePenalty = in.HistoricalStddev / line
	}

	// 10-11. Combine and clamp
	rawScore := adjustedPaceRatio*confidence*usageMultiplier*gamePaceMultiplier*dataScarcity*gameTiming - variancePenalty
	edgeScore := clamp(rawScore, 0, MaxEdgeScore)

	return models.ScoreResult{
		EdgeScore:      edgeScore,
		Pace:           pace,
		ProjectedFinal: projection,
		Signal:         ClassifySignal(edgeScore),
		Components: models.ScoreComponents{
			Progress:                 progress,
			PaceRatio:                paceRatio,
			AdjustedPaceRatio:        adjustedPaceRatio,
			EffectiveDampening:       dampening,
			DataScarcity:             dataScarcity,
			GameTiming:               gameTiming,
			VariancePenalty:          variancePenalty,
			Projection:               projection,
			BlowoutFactor:            blowout,
			FoulTroubleFactor:        foulTrouble,
			UsageMultiplier:          usageMultiplier,
			GamePaceMultiplier:       gamePaceMultiplier,
			PoissonConfidence:        confidence,
			EffectiveExpectedMinutes: effectiveExpMin,
		},
	}
}

// ClassifySignal maps an edge score onto its alerting tier. The mapping is
// a monotonic step function with breakpoints at 1.5, 2.0, and 3.0.
func ClassifySignal(edgeScore float64) models.Signal {
	switch {
	case edgeScore < MonitorThreshold:
		return models.SignalNone
	case edgeScore < GoodThreshold:
		return models.SignalMonitor
	case edgeScore < StrongThreshold:
		return models.SignalGood
	default:
		return models.SignalStrong
	}
}

// Engine adapts the pure scoring functions to the contracts.EdgeScorer
// interface for callers that want an injectable dependency
type Engine struct{}

// NewEngine creates a new scoring engine
func NewEngine() *Engine {
	return &Engine{}
}

// ScoreEdge implements contracts.EdgeScorer
func (e *Engine) ScoreEdge(in models.ScoreInput) models.ScoreResult {
	return ComputeEdgeScore(in)
}

// ScorePace implements contracts.EdgeScorer
func (e *Engine) ScorePace(in models.PaceInput) models.PaceResult {
	return ComputePaceScore(in)
}
