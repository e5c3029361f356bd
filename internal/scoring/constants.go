package scoring

import "github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"

// Epsilon floors keeping every division in the pipeline well-defined
const (
	// MinLine is the floor applied to the pregame line before any division
	MinLine = 0.1

	// MinProgress is the floor applied to resolved player progress
	MinProgress = 0.01
)

// Bayesian projection constants (see bayesianProjection)
const (
	// PriorWeight is the fixed weight of the season-average prior,
	// equivalent to roughly two games of evidence
	PriorWeight = 2.0

	// EvidenceMinutes is how many observed minutes count as one unit of
	// in-game evidence against the prior
	EvidenceMinutes = 12.0
)

// Sigmoid dampening transition constants
const (
	// DampeningMidpoint is the progress fraction at which dampening is
	// halfway between full distrust and full trust
	DampeningMidpoint = 0.4

	// DampeningSteepness controls how sharply dampening transitions
	// around the midpoint
	DampeningSteepness = 10.0
)

// Game timing weight constants: weight = TimingFloor + TimingScale * e^(-TimingDecay * progress)
const (
	TimingFloor = 0.4
	TimingScale = 0.6
	TimingDecay = 3.0
)

// Poisson confidence bounds and scaling
const (
	PoissonScale         = 2.0
	PoissonMinConfidence = 0.3
	PoissonMaxConfidence = 1.5
)

// Edge score bounds and signal tier breakpoints
const (
	MaxEdgeScore = 10.0

	MonitorThreshold = 1.5
	GoodThreshold    = 2.0
	StrongThreshold  = 3.0

	// AlertThreshold is the minimum edge score that can fire an alert
	AlertThreshold = GoodThreshold
)

// RookieBoost multiplies data scarcity for rookies (thin priors move faster)
const RookieBoost = 1.2

// Pace score signal breakpoints
const (
	PaceBehindThreshold   = 0.9
	PaceOnTargetThreshold = 1.1
	PaceAheadThreshold    = 1.5
)

// statDampening expresses how much early-game samples of each stat type
// should be distrusted. Bursty low-frequency stats get heavier dampening.
var statDampening = map[models.StatType]float64{
	models.StatPoints:         1.0,
	models.StatRebounds:       1.3,
	models.StatAssists:        1.2,
	models.StatThreePointers:  2.0,
	models.StatSteals:         2.5,
	models.StatBlocks:         2.5,
	models.StatPassingYards:   1.0,
	models.StatRushingYards:   1.2,
	models.StatReceivingYards: 1.3,
	models.StatReceptions:     1.25,
	models.StatTouchdowns:     2.0,
}

// poissonEligible marks the discrete low-frequency stat types modeled with
// a Poisson confidence multiplier
var poissonEligible = map[models.StatType]bool{
	models.StatThreePointers: true,
	models.StatSteals:        true,
	models.StatBlocks:        true,
	models.StatTouchdowns:    true,
}

// baseDampening returns the dampening factor for a stat type (1.0 for
// unknown or absent stat types)
func baseDampening(statType models.StatType) float64 {
	if d, ok := statDampening[statType]; ok {
		return d
	}
	return 1.0
}

// clamp bounds v to [lo, hi]
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
