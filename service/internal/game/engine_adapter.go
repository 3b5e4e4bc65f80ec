// internal/game/engine_adapter.go
package game

import (
	"math/rand/v2"

	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/C8d9/Fencing-Game/engine/agent"
)

// Opponent chooses the computer's replies for a Bout.
type Opponent interface {
	// Observe records that the human answered opening with reaction.
	Observe(opening, reaction engine.Move)
	// Choose returns the reply to human, the base move just appended to st,
	// and the rule that produced it.
	Choose(human engine.Move, st *engine.MatchState) (engine.Action, agent.Rule)
	// Reset forgets everything learned during the previous match.
	Reset()
}

// AdaptiveOpponent bridges the agent package into the service layer: it owns
// the per-match transition memory and delegates choices to the selector.
type AdaptiveOpponent struct {
	Selector *agent.Selector
	Memory   agent.Transitions
}

// NewAdaptiveOpponent creates an opponent drawing from rng.
func NewAdaptiveOpponent(rules engine.MatchRules, rng *rand.Rand) *AdaptiveOpponent {
	return &AdaptiveOpponent{Selector: agent.NewSelector(rules, rng)}
}

func (o *AdaptiveOpponent) Observe(opening, reaction engine.Move) {
	o.Memory.Record(opening, reaction)
}

func (o *AdaptiveOpponent) Choose(human engine.Move, st *engine.MatchState) (engine.Action, agent.Rule) {
	d := o.Selector.Choose(human, st, &o.Memory)
	return d.Action, d.Rule
}

func (o *AdaptiveOpponent) Reset() { o.Memory.Reset() }
