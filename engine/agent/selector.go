package agent

import (
	"math/rand/v2"

	engine "github.com/C8d9/Fencing-Game/engine"
)

// Decision is the opponent's chosen action and the rule that produced it.
type Decision struct {
	Action engine.Action
	Rule   Rule
}

// Selector chooses the opponent's reply. All randomness is drawn from the
// injected source, so a seeded source yields a reproducible opponent.
type Selector struct {
	Rules engine.MatchRules
	rng   *rand.Rand
}

// NewSelector creates a Selector drawing from rng.
func NewSelector(rules engine.MatchRules, rng *rand.Rand) *Selector {
	return &Selector{Rules: rules, rng: rng}
}

// Choose picks a reply to human, the base move the human just made. The human
// move must already be appended to st.
//
// The cascade is evaluated in order and the first rule that fires returns:
//
//  1. recency: the most frequent of the human's last RecencyWindow moves, if
//     it is a legal counter, with probability RecencyChance;
//  2. fatigue: a uniform counter when a draw exceeds the current fatigue;
//  3. feint gambit: a feinted uniform feintable counter with the
//     personality's risk probability;
//  4. prediction scoring: accumulates the counter whose sampled human
//     reaction carries the highest weight, pre-emptively feinting when a
//     parry is expected (does not return);
//  5. anti-repetition: any counter other than its own previous move, once it
//     has repeated itself;
//  6. the prediction from step 4, else a uniform counter.
func (s *Selector) Choose(human engine.Move, st *engine.MatchState, mem *Transitions) Decision {
	potential := engine.MustAnswersTo(human)

	if recent := st.RecentHumanMoves(s.Rules.RecencyWindow); len(recent) > 0 {
		likely := mostFrequent(recent)
		if containsMove(potential, likely) && s.rng.Float64() < s.Rules.RecencyChance {
			return Decision{Action: engine.Plain(likely), Rule: RuleRecency}
		}
	}

	if s.rng.Float64() > st.Fatigue(&s.Rules) {
		return Decision{Action: engine.Plain(s.pick(potential)), Rule: RuleFatigue}
	}

	if s.rng.Float64() < s.Rules.Risk(st.Personality) {
		if feintable := engine.FeintableOf(potential); len(feintable) > 0 {
			return Decision{Action: engine.Feinted(s.pick(feintable)), Rule: RuleFeintGambit}
		}
	}

	best, haveBest := s.bestPredicted(potential, mem)

	// Only the opponent's own repeat matters: a human repeat alone never
	// triggers the correction.
	if st.NumHumanMoves() >= 2 && st.OpponentRepeated() {
		last, _ := st.LastOpponent()
		if filtered := withoutMove(potential, last.Base()); len(filtered) > 0 {
			return Decision{Action: engine.Plain(s.pick(filtered)), Rule: RuleAntiRepetition}
		}
	}

	if haveBest {
		return Decision{Action: best, Rule: RulePrediction}
	}
	return Decision{Action: engine.Plain(s.pick(potential)), Rule: RuleFallback}
}

// bestPredicted scans candidates in catalog order. Each candidate is treated
// as the opening the opponent is about to make; its sampled human reaction
// weight is its score. Ties keep the first candidate seen.
func (s *Selector) bestPredicted(potential []engine.Move, mem *Transitions) (engine.Action, bool) {
	var best engine.Action
	var bestWeight uint32
	found := false
	for _, cand := range potential {
		pred, ok := mem.Predict(cand, s.rng)
		if !ok {
			continue
		}
		act := engine.Plain(cand)
		if pred.Reaction == engine.MoveParryRiposte && engine.IsFeintable(cand) {
			act = engine.Feinted(cand)
		}
		if !found || pred.Weight > bestWeight {
			best, bestWeight, found = act, pred.Weight, true
		}
	}
	return best, found
}

func (s *Selector) pick(moves []engine.Move) engine.Move {
	return moves[s.rng.IntN(len(moves))]
}

// mostFrequent returns the most common move, breaking ties by first occurrence.
func mostFrequent(moves []engine.Move) engine.Move {
	var counts [engine.NumMoves]int
	best := moves[0]
	for _, m := range moves {
		counts[m]++
	}
	for _, m := range moves {
		if counts[m] > counts[best] {
			best = m
		}
	}
	return best
}

func containsMove(moves []engine.Move, m engine.Move) bool {
	for _, x := range moves {
		if x == m {
			return true
		}
	}
	return false
}

func withoutMove(moves []engine.Move, m engine.Move) []engine.Move {
	out := make([]engine.Move, 0, len(moves))
	for _, x := range moves {
		if x != m {
			out = append(out, x)
		}
	}
	return out
}
