package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownMove is returned by catalog lookups on a value outside the enumeration.
var ErrUnknownMove = errors.New("unknown move")

// legalCounters maps each opening move to the moves that validly answer it.
// Order is significant: the opponent's candidate scan follows it.
var legalCounters = [NumMoves][]Move{
	MoveLunge:        {MoveParryRiposte, MoveStophit, MoveDistance},
	MoveMarcheLunge:  {MoveParryRiposte, MoveStophit, MoveDistance},
	MoveFleche:       {MoveParryRiposte},
	MoveParryRiposte: {MoveParryRiposte, MoveStophit, MoveDistance, MoveRedoublement},
	MoveStophit:      {MoveParryRiposte, MoveStophit},
	MoveDistance:     {MoveRedoublement, MoveDistance, MoveParryRiposte, MoveStophit},
	MoveRedoublement: {MoveParryRiposte, MoveStophit, MoveDistance},
}

// feintable is indexed by Move; every move except Fleche may be feinted.
var feintable = [NumMoves]bool{
	MoveLunge:        true,
	MoveMarcheLunge:  true,
	MoveFleche:       false,
	MoveParryRiposte: true,
	MoveStophit:      true,
	MoveDistance:     true,
	MoveRedoublement: true,
}

// AnswersTo returns the legal counters to opening, in catalog order.
// The returned slice is a copy and may be modified by the caller.
func AnswersTo(opening Move) ([]Move, error) {
	if !opening.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownMove, uint8(opening))
	}
	src := legalCounters[opening]
	out := make([]Move, len(src))
	copy(out, src)
	return out, nil
}

// MustAnswersTo is AnswersTo for internally generated moves. An unknown move
// here means the enumeration invariant is broken, so it panics.
func MustAnswersTo(opening Move) []Move {
	out, err := AnswersTo(opening)
	if err != nil {
		panic(err)
	}
	return out
}

// IsLegalCounter reports whether reply is among the legal counters to opening.
func IsLegalCounter(opening, reply Move) bool {
	if !opening.Valid() {
		return false
	}
	for _, m := range legalCounters[opening] {
		if m == reply {
			return true
		}
	}
	return false
}

// IsFeintable reports whether m may be performed with a feint.
func IsFeintable(m Move) bool {
	return m.Valid() && feintable[m]
}

// FeintableOf returns the members of moves that may be feinted, preserving order.
func FeintableOf(moves []Move) []Move {
	var out []Move
	for _, m := range moves {
		if IsFeintable(m) {
			out = append(out, m)
		}
	}
	return out
}

// ---------------------------------------------------------------------------
// Round validation
// ---------------------------------------------------------------------------

// Validate classifies a raw human submission against the match so far.
// It never mutates st. The parsed action is returned for every outcome except
// OutcomeInvalidInput.
func Validate(raw string, st *MatchState) (Action, RoundOutcome) {
	act, err := ParseAction(raw)
	if err != nil {
		return Action{}, OutcomeInvalidInput
	}
	return act, ValidateAction(act, st)
}

// ValidateAction classifies an already parsed human action.
func ValidateAction(act Action, st *MatchState) RoundOutcome {
	last, ok := st.LastOpponent()
	if !ok {
		// Nothing to counter yet.
		return OutcomeValid
	}
	if !act.Feint && !IsLegalCounter(last.Base(), act.Base()) {
		return OutcomeInvalidCounter
	}
	// A feint may never be parried, whatever the graph says.
	if last.Feint && act.Base() == MoveParryRiposte {
		return OutcomeParriedFeint
	}
	return OutcomeValid
}
