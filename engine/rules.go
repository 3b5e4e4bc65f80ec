package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidRules is returned by MatchRules.Validate.
var ErrInvalidRules = errors.New("invalid match rules")

// MatchRules holds the tunable constants of the opponent's decision cascade.
type MatchRules struct {
	RecencyChance   float64 // probability of replaying the human's recent favourite
	RecencyWindow   int     // number of trailing human moves inspected
	FatigueStart    float64 // fatigue before any human move
	FatigueStep     float64 // fatigue lost per human move
	FatigueFloor    float64 // fatigue never drops below this
	PersonalityRisk [NumPersonalities]float64
}

// DefaultMatchRules returns the standard rules.
func DefaultMatchRules() MatchRules {
	return MatchRules{
		RecencyChance: 0.4,
		RecencyWindow: 3,
		FatigueStart:  1.0,
		FatigueStep:   0.05,
		FatigueFloor:  0.2,
		PersonalityRisk: [NumPersonalities]float64{
			PersonalityAggressive:    0.6,
			PersonalityDefensive:     0.2,
			PersonalityUnpredictable: 0.4,
		},
	}
}

// Risk returns the feint probability for personality p.
func (r *MatchRules) Risk(p Personality) float64 {
	if int(p) >= NumPersonalities {
		return 0
	}
	return r.PersonalityRisk[p]
}

// Fatigue returns max(floor, start - step*humanMoves).
func (r *MatchRules) Fatigue(humanMoves int) float64 {
	f := r.FatigueStart - r.FatigueStep*float64(humanMoves)
	if f < r.FatigueFloor {
		return r.FatigueFloor
	}
	return f
}

// Validate checks that every probability lies in [0, 1].
func (r *MatchRules) Validate() error {
	probs := []struct {
		name string
		v    float64
	}{
		{"RecencyChance", r.RecencyChance},
		{"FatigueStart", r.FatigueStart},
		{"FatigueFloor", r.FatigueFloor},
	}
	for i, risk := range r.PersonalityRisk {
		probs = append(probs, struct {
			name string
			v    float64
		}{"PersonalityRisk[" + Personality(i).String() + "]", risk})
	}
	for _, p := range probs {
		if p.v < 0 || p.v > 1 {
			return fmt.Errorf("%w: %s must be in [0, 1], got %v", ErrInvalidRules, p.name, p.v)
		}
	}
	if r.FatigueStep < 0 {
		return fmt.Errorf("%w: FatigueStep must be >= 0, got %v", ErrInvalidRules, r.FatigueStep)
	}
	if r.RecencyWindow < 1 {
		return fmt.Errorf("%w: RecencyWindow must be >= 1, got %d", ErrInvalidRules, r.RecencyWindow)
	}
	return nil
}
