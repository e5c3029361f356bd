package scoring

import (
	"math"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

// blowoutFactor returns a multiplier <= 1.0 reducing expected minutes when
// the score differential suggests garbage time. Branches are evaluated in
// order; the first match wins, so a period-4 22-point blowout resolves via
// the period>=3 rule (0.60), not the period>=4 rule.
func blowoutFactor(scoreDifferential *float64, period *int) float64 {
	if scoreDifferential == nil || period == nil {
		return 1.0
	}

	diff := math.Abs(*scoreDifferential)

	if *period >= 3 {
		if diff > 25 {
			return 0.30
		}
		if diff > 20 {
			return 0.60
		}
	}

	if *period >= 4 && diff > 15 {
		return 0.50
	}

	return 1.0
}

// foulTroubleFactor returns a multiplier <= 1.0 reducing expected minutes
// for basketball players in foul trouble before the fourth period
func foulTroubleFactor(sport models.Sport, personalFouls, period *int) float64 {
	if sport != models.SportBasketball || personalFouls == nil || period == nil {
		return 1.0
	}

	if *period < 4 {
		if *personalFouls >= 5 {
			return 0.50
		}
		if *personalFouls >= 4 {
			return 0.75
		}
	}

	return 1.0
}

// contextReduction combines blowout and foul-trouble signals into an
// effective expected minutes figure. The most severe reduction applies.
func contextReduction(in models.ScoreInput) (blowout, foulTrouble, effectiveExpectedMinutes float64) {
	blowout = blowoutFactor(in.ScoreDifferential, in.Period)
	foulTrouble = foulTroubleFactor(in.Sport, in.PersonalFouls, in.Period)

	reduction := math.Min(blowout, foulTrouble)

	if in.ExpectedMinutes != nil {
		effectiveExpectedMinutes = *in.ExpectedMinutes * reduction
	}

	return blowout, foulTrouble, effectiveExpectedMinutes
}
