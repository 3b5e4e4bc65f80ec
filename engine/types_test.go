package engine

import "testing"

// ---------------------------------------------------------------------------
// Move enumeration tests
// ---------------------------------------------------------------------------

func TestMoveStringRoundTrip(t *testing.T) {
	for _, m := range AllMoves() {
		got, ok := LookupMove(m.String())
		if !ok {
			t.Fatalf("LookupMove(%q) failed", m.String())
		}
		if got != m {
			t.Errorf("LookupMove(%q) = %v, want %v", m.String(), got, m)
		}
	}
}

func TestLookupMoveIgnoresCase(t *testing.T) {
	cases := map[string]Move{
		"lunge":         MoveLunge,
		"MARCHE-LUNGE":  MoveMarcheLunge,
		"parry-riposte": MoveParryRiposte,
		"fLeChE":        MoveFleche,
	}
	for in, want := range cases {
		got, ok := LookupMove(in)
		if !ok || got != want {
			t.Errorf("LookupMove(%q) = %v, %v; want %v, true", in, got, ok, want)
		}
	}
	if _, ok := LookupMove("Riposte"); ok {
		t.Error("LookupMove(\"Riposte\") should fail")
	}
}

func TestMoveInvalid(t *testing.T) {
	m := Move(NumMoves)
	if m.Valid() {
		t.Error("Move(NumMoves) should be invalid")
	}
	if m.String() != "Unknown" {
		t.Errorf("String() = %q, want Unknown", m.String())
	}
}

func TestActionString(t *testing.T) {
	if s := Plain(MoveStophit).String(); s != "Stophit" {
		t.Errorf("Plain(Stophit) = %q", s)
	}
	if s := Feinted(MoveStophit).String(); s != "Feint-Stophit" {
		t.Errorf("Feinted(Stophit) = %q", s)
	}
}

func TestActionSameBase(t *testing.T) {
	if !Plain(MoveDistance).SameBase(Feinted(MoveDistance)) {
		t.Error("feint should not change base identity")
	}
	if Plain(MoveDistance).SameBase(Plain(MoveLunge)) {
		t.Error("different moves reported same base")
	}
}

func TestOutcomeIsLoss(t *testing.T) {
	cases := []struct {
		o    RoundOutcome
		want bool
	}{
		{OutcomeValid, false},
		{OutcomeInvalidInput, false},
		{OutcomeInvalidCounter, true},
		{OutcomeParriedFeint, true},
	}
	for _, c := range cases {
		if got := c.o.IsLoss(); got != c.want {
			t.Errorf("%v.IsLoss() = %v, want %v", c.o, got, c.want)
		}
	}
}

func TestLookupPersonality(t *testing.T) {
	for i := 0; i < NumPersonalities; i++ {
		p := Personality(i)
		got, ok := LookupPersonality(p.String())
		if !ok || got != p {
			t.Errorf("LookupPersonality(%q) = %v, %v", p.String(), got, ok)
		}
	}
	if _, ok := LookupPersonality("Reckless"); ok {
		t.Error("unknown personality accepted")
	}
}
