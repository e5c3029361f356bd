package scoring

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// effectiveDampening interpolates between full distrust of a stat type's
// early-game sample (the base dampening factor) and full trust as progress
// accumulates. The sigmoid midpoint sits at 40% progress.
func effectiveDampening(statType models.StatType, progress float64) float64 {
	base := baseDampening(statType)
	sigmoid := 1 / (1 + math.Exp(-DampeningSteepness*(progress-DampeningMidpoint)))
	return 1 + (base-1)*(1-sigmoid)
}

// gameTimingWeight decays from 1.0 at tipoff toward 0.4 late. Early edges
// are weighted more heavily because books adjust faster as the game goes on.
func gameTimingWeight(progress float64) float64 {
	return TimingFloor + TimingScale*math.Exp(-TimingDecay*progress)
}
