// Package agent implements the adaptive computer opponent: a per-match
// transition memory of the human's reactions and the layered heuristic that
// picks the opponent's reply.
package agent

// Rule identifies which step of the decision cascade produced a move.
// Values follow the order in which each rule can return a move: prediction
// is scored before anti-repetition runs but only returns after it.
type Rule uint8

const (
	RuleRecency        Rule = iota // 0: replayed the human's recent favourite
	RuleFatigue                    // 1: fatigue forced a random counter
	RuleFeintGambit                // 2: personality-driven feint
	RuleAntiRepetition             // 3: avoided repeating its own last move
	RulePrediction                 // 4: best-weighted transition prediction
	RuleFallback                   // 5: uniform random counter
)

var ruleNames = [...]string{
	RuleRecency:        "recency",
	RuleFatigue:        "fatigue",
	RuleFeintGambit:    "feint_gambit",
	RuleAntiRepetition: "anti_repetition",
	RulePrediction:     "prediction",
	RuleFallback:       "fallback",
}

func (r Rule) String() string {
	if int(r) < len(ruleNames) {
		return ruleNames[r]
	}
	return "unknown"
}
