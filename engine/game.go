// Package engine implements the rules of a turn-based fencing bout between a
// human and a computer opponent.
//
// It owns the closed move set, the legality graph, input parsing, round
// validation and the per-match record. Opponent decision making lives in the
// agent subpackage; orchestration lives in the service layer.
package engine

// MatchState is the running record of one match.
//
// Human and opponent histories advance in lockstep, one opponent action per
// completed human round. The only exception is a terminal loss, where the
// human's final action is recorded without a reply; Unanswered marks that case
// explicitly.
type MatchState struct {
	HumanMoves    []Action
	OpponentMoves []Action
	Personality   Personality
	Result        MatchResult
	LossReason    LossReason
	Phase         Phase
	Unanswered    bool
}

// NewMatchState returns an Idle state.
func NewMatchState() MatchState {
	return MatchState{Phase: PhaseIdle}
}

// Reset clears both histories and the outcome and enters PhaseInProgress
// with the given personality.
func (s *MatchState) Reset(p Personality) {
	s.HumanMoves = nil
	s.OpponentMoves = nil
	s.Personality = p
	s.Result = ResultUndecided
	s.LossReason = LossNone
	s.Unanswered = false
	s.Phase = PhaseInProgress
}

// ---------------------------------------------------------------------------
// Query methods
// ---------------------------------------------------------------------------

func (s *MatchState) InProgress() bool  { return s.Phase == PhaseInProgress }
func (s *MatchState) IsConcluded() bool { return s.Phase == PhaseConcluded }

// Fatigue returns the opponent's current fatigue under rules r. It falls as
// the human makes moves and floors at r.FatigueFloor.
func (s *MatchState) Fatigue(r *MatchRules) float64 {
	return r.Fatigue(len(s.HumanMoves))
}

// NumHumanMoves returns how many human actions have been recorded.
func (s *MatchState) NumHumanMoves() int { return len(s.HumanMoves) }

// NumOpponentMoves returns how many opponent actions have been recorded.
func (s *MatchState) NumOpponentMoves() int { return len(s.OpponentMoves) }

// LastOpponent returns the opponent's most recent action, if any.
func (s *MatchState) LastOpponent() (Action, bool) {
	if len(s.OpponentMoves) == 0 {
		return Action{}, false
	}
	return s.OpponentMoves[len(s.OpponentMoves)-1], true
}

// LastHuman returns the human's most recent action, if any.
func (s *MatchState) LastHuman() (Action, bool) {
	if len(s.HumanMoves) == 0 {
		return Action{}, false
	}
	return s.HumanMoves[len(s.HumanMoves)-1], true
}

// RecentHumanMoves returns up to n trailing human base moves, oldest first.
func (s *MatchState) RecentHumanMoves(n int) []Move {
	start := len(s.HumanMoves) - n
	if start < 0 {
		start = 0
	}
	out := make([]Move, 0, len(s.HumanMoves)-start)
	for _, a := range s.HumanMoves[start:] {
		out = append(out, a.Base())
	}
	return out
}

// HumanRepeated reports whether the human's last two actions share base identity.
func (s *MatchState) HumanRepeated() bool { return lastTwoSame(s.HumanMoves) }

// OpponentRepeated reports whether the opponent's last two actions share base identity.
func (s *MatchState) OpponentRepeated() bool { return lastTwoSame(s.OpponentMoves) }

func lastTwoSame(h []Action) bool {
	n := len(h)
	return n >= 2 && h[n-1].SameBase(h[n-2])
}

// HistoryBalanced checks the lockstep invariant between the two histories.
func (s *MatchState) HistoryBalanced() bool {
	if s.Unanswered {
		return len(s.HumanMoves) == len(s.OpponentMoves)+1
	}
	return len(s.HumanMoves) == len(s.OpponentMoves)
}

// History returns copies of both histories.
func (s *MatchState) History() (human, opponent []Action) {
	human = append([]Action(nil), s.HumanMoves...)
	opponent = append([]Action(nil), s.OpponentMoves...)
	return human, opponent
}

// ---------------------------------------------------------------------------
// Mutations
// ---------------------------------------------------------------------------

// RecordHuman appends a human action.
func (s *MatchState) RecordHuman(a Action) {
	s.HumanMoves = append(s.HumanMoves, a)
}

// RecordOpponent appends an opponent action.
func (s *MatchState) RecordOpponent(a Action) {
	s.OpponentMoves = append(s.OpponentMoves, a)
}
