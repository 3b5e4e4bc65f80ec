package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidInput is returned when text does not name a move the human may perform.
var ErrInvalidInput = errors.New("invalid input")

// ParseAction turns a submitted move string into an Action.
//
// Accepted forms, case-insensitive and ignoring surrounding whitespace:
//   - "<move>"            e.g. "parry-riposte"
//   - "Feint-<move>"      e.g. "Feint-Stophit"
//   - "Feint <move>"      e.g. "feint lunge"
//   - "Feint<move>"       e.g. "feintdistance"
//
// A feint on a move outside the feintable set is rejected.
func ParseAction(raw string) (Action, error) {
	text := strings.TrimSpace(raw)
	if text == "" {
		return Action{}, fmt.Errorf("%w: empty move", ErrInvalidInput)
	}
	if m, ok := LookupMove(text); ok {
		return Plain(m), nil
	}

	rest, ok := cutFeintMarker(text)
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	m, ok := LookupMove(rest)
	if !ok {
		return Action{}, fmt.Errorf("%w: %q", ErrInvalidInput, raw)
	}
	// Fleche has no feinted form, so Feint-Fleche is rejected as unrecognised input.
	if !IsFeintable(m) {
		return Action{}, fmt.Errorf("%w: %s cannot be feinted", ErrInvalidInput, m)
	}
	return Feinted(m), nil
}

// cutFeintMarker strips a leading feint marker and its separator.
func cutFeintMarker(text string) (string, bool) {
	if len(text) <= len(FeintMarker) || !strings.EqualFold(text[:len(FeintMarker)], FeintMarker) {
		return "", false
	}
	rest := text[len(FeintMarker):]
	rest = strings.TrimLeft(rest, " \t")
	rest = strings.TrimPrefix(rest, "-")
	rest = strings.TrimSpace(rest)
	if rest == "" {
		return "", false
	}
	return rest, true
}
