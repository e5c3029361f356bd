package scoring

import "math"

// resolveProgress computes the fraction of a player's expected participation
// that has elapsed. Minutes-based measurement is preferred over the raw game
// clock because the clock is fooled by benchings, foul trouble, and blowouts.
//
// Resolution order:
//  1. minutes played / effective expected minutes (context-reduced)
//  2. minutes played / raw expected minutes
//  3. game clock percentage
//
// The result is floored at MinProgress so downstream divisions are safe.
func resolveProgress(minutesPlayed, expectedMinutes *float64, gameElapsedPercent, effectiveExpectedMinutes float64) float64 {
	var progress float64

	switch {
	case minutesPlayed != nil && effectiveExpectedMinutes > 0:
		progress = *minutesPlayed / effectiveExpectedMinutes
	case minutesPlayed != nil && expectedMinutes != nil && *expectedMinutes > 0:
		progress = *minutesPlayed / *expectedMinutes
	default:
		progress = math.Max(gameElapsedPercent, 1) / 100
	}

	return math.Max(progress, MinProgress)
}
