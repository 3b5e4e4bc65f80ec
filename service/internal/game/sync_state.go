// internal/game/sync_state.go
package game

import (
	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/google/uuid"
)

// RoundView is the JSON form of a RoundResult for the presentation layer.
type RoundView struct {
	Input      string `json:"input"`
	Outcome    string `json:"outcome"`
	Human      string `json:"human,omitempty"`
	Opponent   string `json:"opponent,omitempty"`
	Rule       string `json:"rule,omitempty"`
	Result     string `json:"result"`
	LossReason string `json:"lossReason,omitempty"`
}

// View converts the result to its display form.
func (r RoundResult) View() RoundView {
	v := RoundView{
		Input:   r.Input,
		Outcome: r.Outcome.String(),
		Result:  r.Result.String(),
	}
	if r.Outcome != engine.OutcomeInvalidInput {
		v.Human = r.Human.String()
	}
	if r.Opponent != nil {
		v.Opponent = r.Opponent.String()
		v.Rule = r.Rule.String()
	}
	if r.LossReason != engine.LossNone {
		v.LossReason = r.LossReason.String()
	}
	return v
}

// BoutView is a snapshot of the bout for client synchronization.
type BoutView struct {
	BoutID      uuid.UUID `json:"boutId"`
	Phase       string    `json:"phase"`
	Personality string    `json:"personality"`
	Round       int       `json:"round"` // 1-based number of the next human move.
	Human       []string  `json:"human"`
	Opponent    []string  `json:"opponent"`
	Result      string    `json:"result"`
	LossReason  string    `json:"lossReason,omitempty"`
	Fatigue     float64   `json:"fatigue"`
}

// View generates a snapshot of the bout. Histories are rendered as display strings.
func (b *Bout) View() BoutView {
	b.Mu.Lock()
	defer b.Mu.Unlock()

	v := BoutView{
		BoutID:      b.ID,
		Phase:       b.State.Phase.String(),
		Personality: b.State.Personality.String(),
		Round:       b.State.NumHumanMoves() + 1,
		Human:       make([]string, 0, b.State.NumHumanMoves()),
		Opponent:    make([]string, 0, b.State.NumOpponentMoves()),
		Result:      b.State.Result.String(),
		Fatigue:     b.State.Fatigue(&b.Rules),
	}
	for _, a := range b.State.HumanMoves {
		v.Human = append(v.Human, a.String())
	}
	for _, a := range b.State.OpponentMoves {
		v.Opponent = append(v.Opponent, a.String())
	}
	if b.State.LossReason != engine.LossNone {
		v.LossReason = b.State.LossReason.String()
	}
	return v
}
