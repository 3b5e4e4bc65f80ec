package engine

import (
	"errors"
	"testing"
)

func TestParseAction(t *testing.T) {
	cases := []struct {
		in   string
		want Action
	}{
		{"lunge", Plain(MoveLunge)},
		{"  Parry-Riposte\t", Plain(MoveParryRiposte)},
		{"Fleche", Plain(MoveFleche)},
		{"Feint-Stophit", Feinted(MoveStophit)},
		{"feint-stophit", Feinted(MoveStophit)},
		{"Feint Lunge", Feinted(MoveLunge)},
		{"FEINTDISTANCE", Feinted(MoveDistance)},
		{"Feint-Marche-Lunge", Feinted(MoveMarcheLunge)},
		{"feint - redoublement", Feinted(MoveRedoublement)},
	}
	for _, c := range cases {
		got, err := ParseAction(c.in)
		if err != nil {
			t.Errorf("ParseAction(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseAction(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParseActionRejects(t *testing.T) {
	for _, in := range []string{"", "   ", "Riposte123", "Feint", "Feint-", "Feint-Feint-Lunge", "Feint-Fleche", "lunge!"} {
		_, err := ParseAction(in)
		if err == nil {
			t.Errorf("ParseAction(%q) should fail", in)
			continue
		}
		if !errors.Is(err, ErrInvalidInput) {
			t.Errorf("ParseAction(%q) error %v is not ErrInvalidInput", in, err)
		}
	}
}
