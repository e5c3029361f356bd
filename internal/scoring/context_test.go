package scoring

import (
	"testing"

	"github.com/XavierBriggs/fortuna/services/prop-edge-scorer/pkg/models"
)

func TestBlowoutFactor(t *testing.T) {
	tests := []struct {
		name         string
		differential *float64
		period       *int
		want         float64
	}{
		{"Missing inputs", nil, nil, 1.0},
		{"Missing period", fp(30), nil, 1.0},
		{"Close game", fp(8), ip(3), 1.0},
		{"Early blowout not yet garbage time", fp(30), ip(2), 1.0},
		{"Third period 26-point blowout", fp(26), ip(3), 0.30},
		{"Third period 22-point blowout", fp(22), ip(3), 0.60},
		{"Fourth period 22-point blowout hits the period 3 rule first", fp(22), ip(4), 0.60},
		{"Fourth period 16-point lead", fp(16), ip(4), 0.50},
		{"Third period 16-point lead", fp(16), ip(3), 1.0},
		{"Negative differential treated as magnitude", fp(-26), ip(3), 0.30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := blowoutFactor(tt.differential, tt.period); got != tt.want {
				t.Errorf("blowoutFactor() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestFoulTroubleFactor(t *testing.T) {
	tests := []struct {
		name   string
		sport  models.Sport
		fouls  *int
		period *int
		want   float64
	}{
		{"Missing inputs", models.SportBasketball, nil, nil, 1.0},
		{"Football never reduces", models.SportFootball, ip(5), ip(2), 1.0},
		{"Five fouls in the third", models.SportBasketball, ip(5), ip(3), 0.50},
		{"Four fouls in the second", models.SportBasketball, ip(4), ip(2), 0.75},
		{"Three fouls is fine", models.SportBasketball, ip(3), ip(3), 1.0},
		{"Fourth period foul trouble no longer reduces", models.SportBasketball, ip(5), ip(4), 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := foulTroubleFactor(tt.sport, tt.fouls, tt.period); got != tt.want {
				t.Errorf("foulTroubleFactor() = %f, want %f", got, tt.want)
			}
		})
	}
}

func TestContextReductionTakesMostSevere(t *testing.T) {
	in := models.ScoreInput{
		Sport:             models.SportBasketball,
		ExpectedMinutes:   fp(30),
		ScoreDifferential: fp(22),
		Period:            ip(3),
		PersonalFouls:     ip(4),
	}

	blowout, foulTrouble, effective := contextReduction(in)

	if blowout != 0.60 {
		t.Errorf("blowout = %f, want 0.60", blowout)
	}
	if foulTrouble != 0.75 {
		t.Errorf("foul trouble = %f, want 0.75", foulTrouble)
	}
	// min(0.60, 0.75) * 30
	if !almostEqual(effective, 18.0, 1e-9) {
		t.Errorf("effective minutes = %f, want 18.0", effective)
	}
}

func TestContextReductionNeverIncreasesMinutes(t *testing.T) {
	diffs := []*float64{nil, fp(5), fp(18), fp(22), fp(30)}
	periods := []*int{nil, ip(1), ip(2), ip(3), ip(4)}
	fouls := []*int{nil, ip(0), ip(3), ip(4), ip(5)}

	for _, d := range diffs {
		for _, p := range periods {
			for _, f := range fouls {
				in := models.ScoreInput{
					Sport:             models.SportBasketball,
					ExpectedMinutes:   fp(36),
					ScoreDifferential: d,
					Period:            p,
					PersonalFouls:     f,
				}
				_, _, effective := contextReduction(in)
				if effective > 36 {
					t.Fatalf("effective minutes %f exceeds expected 36", effective)
				}
				if effective <= 0 {
					t.Fatalf("effective minutes %f should stay positive when expected minutes known", effective)
				}
			}
		}
	}
}

func TestContextReductionWithoutExpectedMinutes(t *testing.T) {
	_, _, effective := contextReduction(models.ScoreInput{
		ScoreDifferential: fp(30),
		Period:            ip(4),
	})

	if effective != 0 {
		t.Errorf("effective minutes = %f, want 0 when expected minutes absent", effective)
	}
}
