package engine

import (
	"errors"
	"testing"
)

// ---------------------------------------------------------------------------
// Catalog tests
// ---------------------------------------------------------------------------

func TestAnswersToTable(t *testing.T) {
	want := map[Move][]Move{
		MoveLunge:        {MoveParryRiposte, MoveStophit, MoveDistance},
		MoveMarcheLunge:  {MoveParryRiposte, MoveStophit, MoveDistance},
		MoveFleche:       {MoveParryRiposte},
		MoveParryRiposte: {MoveParryRiposte, MoveStophit, MoveDistance, MoveRedoublement},
		MoveStophit:      {MoveParryRiposte, MoveStophit},
		MoveDistance:     {MoveRedoublement, MoveDistance, MoveParryRiposte, MoveStophit},
		MoveRedoublement: {MoveParryRiposte, MoveStophit, MoveDistance},
	}
	for opening, counters := range want {
		got, err := AnswersTo(opening)
		if err != nil {
			t.Fatalf("AnswersTo(%v): %v", opening, err)
		}
		if len(got) != len(counters) {
			t.Fatalf("AnswersTo(%v) = %v, want %v", opening, got, counters)
		}
		for i := range got {
			if got[i] != counters[i] {
				t.Errorf("AnswersTo(%v)[%d] = %v, want %v", opening, i, got[i], counters[i])
			}
		}
	}
}

func TestAnswersToNonEmptyAndClosed(t *testing.T) {
	for _, m := range AllMoves() {
		got := MustAnswersTo(m)
		if len(got) == 0 {
			t.Errorf("AnswersTo(%v) is empty", m)
		}
		for _, c := range got {
			if !c.Valid() {
				t.Errorf("AnswersTo(%v) contains invalid move %d", m, c)
			}
		}
	}
}

func TestAnswersToReturnsCopy(t *testing.T) {
	got := MustAnswersTo(MoveFleche)
	got[0] = MoveLunge
	if again := MustAnswersTo(MoveFleche); again[0] != MoveParryRiposte {
		t.Errorf("catalog mutated through returned slice: %v", again)
	}
}

func TestAnswersToUnknownMove(t *testing.T) {
	_, err := AnswersTo(Move(200))
	if !errors.Is(err, ErrUnknownMove) {
		t.Errorf("AnswersTo(200) error = %v, want ErrUnknownMove", err)
	}
}

func TestMustAnswersToPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustAnswersTo on an unknown move should panic")
		}
	}()
	MustAnswersTo(Move(NumMoves))
}

func TestIsFeintable(t *testing.T) {
	for _, m := range AllMoves() {
		want := m != MoveFleche
		if got := IsFeintable(m); got != want {
			t.Errorf("IsFeintable(%v) = %v, want %v", m, got, want)
		}
	}
	if got := FeintableOf([]Move{MoveFleche, MoveStophit, MoveFleche}); len(got) != 1 || got[0] != MoveStophit {
		t.Errorf("FeintableOf = %v, want [Stophit]", got)
	}
}

// ---------------------------------------------------------------------------
// Round validation tests
// ---------------------------------------------------------------------------

// stateAfter returns an in-progress state whose last exchange is human:opponent.
func stateAfter(human, opponent Action) *MatchState {
	st := NewMatchState()
	st.Reset(PersonalityDefensive)
	st.RecordHuman(human)
	st.RecordOpponent(opponent)
	return &st
}

func TestValidateFirstMoveAlwaysValid(t *testing.T) {
	st := NewMatchState()
	st.Reset(PersonalityAggressive)
	for _, in := range []string{"lunge", "Fleche", "Parry-Riposte", "Feint-Stophit"} {
		if _, got := Validate(in, &st); got != OutcomeValid {
			t.Errorf("Validate(%q) on a fresh match = %v, want Valid", in, got)
		}
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name     string
		opponent Action
		input    string
		want     RoundOutcome
	}{
		{"legal counter", Plain(MoveLunge), "Stophit", OutcomeValid},
		{"illegal counter", Plain(MoveFleche), "Stophit", OutcomeInvalidCounter},
		{"only counter to fleche", Plain(MoveFleche), "parry-riposte", OutcomeValid},
		{"feint bypasses graph", Plain(MoveFleche), "Feint-Stophit", OutcomeValid},
		{"parried feint", Feinted(MoveDistance), "Parry-Riposte", OutcomeParriedFeint},
		{"feinted parry of feint", Feinted(MoveLunge), "Feint-Parry-Riposte", OutcomeParriedFeint},
		{"legal answer to feint", Feinted(MoveDistance), "Redoublement", OutcomeValid},
		{"feint stripped for legality", Feinted(MoveStophit), "Distance", OutcomeInvalidCounter},
		{"garbage", Plain(MoveLunge), "Riposte123", OutcomeInvalidInput},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			st := stateAfter(Plain(MoveLunge), c.opponent)
			before := len(st.HumanMoves)
			if _, got := Validate(c.input, st); got != c.want {
				t.Errorf("Validate(%q) after %v = %v, want %v", c.input, c.opponent, got, c.want)
			}
			if len(st.HumanMoves) != before {
				t.Error("Validate mutated the state")
			}
		})
	}
}
