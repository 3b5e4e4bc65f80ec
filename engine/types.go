package engine

import "strings"

// Move is one of the fixed fencing actions. The set is closed.
type Move uint8

const (
	MoveLunge        Move = iota // 0
	MoveMarcheLunge              // 1
	MoveFleche                   // 2
	MoveParryRiposte             // 3
	MoveStophit                  // 4
	MoveDistance                 // 5
	MoveRedoublement             // 6

	NumMoves = 7
)

// moveNames holds the canonical casing used for display and parsing.
var moveNames = [NumMoves]string{
	MoveLunge:        "Lunge",
	MoveMarcheLunge:  "Marche-Lunge",
	MoveFleche:       "Fleche",
	MoveParryRiposte: "Parry-Riposte",
	MoveStophit:      "Stophit",
	MoveDistance:     "Distance",
	MoveRedoublement: "Redoublement",
}

// Valid reports whether m is a member of the enumeration.
func (m Move) Valid() bool { return m < NumMoves }

// String returns the canonical move name.
func (m Move) String() string {
	if !m.Valid() {
		return "Unknown"
	}
	return moveNames[m]
}

// AllMoves returns every move in enumeration order.
func AllMoves() []Move {
	out := make([]Move, NumMoves)
	for i := range out {
		out[i] = Move(i)
	}
	return out
}

// LookupMove matches name against the canonical move names, ignoring case.
func LookupMove(name string) (Move, bool) {
	for i, n := range moveNames {
		if strings.EqualFold(n, name) {
			return Move(i), true
		}
	}
	return 0, false
}

// FeintMarker is the token that prefixes a feinted move in text form.
const FeintMarker = "Feint"

// Action is a move as actually performed: the base move plus the feint modifier.
// Legality and history comparisons use Move; outcome logic also reads Feint.
type Action struct {
	Move  Move
	Feint bool
}

// Plain returns the non-feinted action for m.
func Plain(m Move) Action { return Action{Move: m} }

// Feinted returns the feint-tagged action for m.
func Feinted(m Move) Action { return Action{Move: m, Feint: true} }

// Base returns the action with the feint stripped.
func (a Action) Base() Move { return a.Move }

// SameBase reports whether a and b share base identity.
func (a Action) SameBase(b Action) bool { return a.Move == b.Move }

// String renders the action in canonical text form, e.g. "Feint-Stophit".
func (a Action) String() string {
	if a.Feint {
		return FeintMarker + "-" + a.Move.String()
	}
	return a.Move.String()
}

// ---------------------------------------------------------------------------
// Round and match outcome enumerations
// ---------------------------------------------------------------------------

// RoundOutcome classifies a submitted human move.
type RoundOutcome uint8

const (
	OutcomeValid          RoundOutcome = iota // 0
	OutcomeInvalidInput                       // 1: unrecognised text, round not consumed
	OutcomeInvalidCounter                     // 2: terminal loss
	OutcomeParriedFeint                       // 3: terminal loss
)

var outcomeNames = [...]string{"Valid", "InvalidInput", "InvalidCounter", "ParriedFeint"}

func (o RoundOutcome) String() string {
	if int(o) < len(outcomeNames) {
		return outcomeNames[o]
	}
	return "Unknown"
}

// IsLoss reports whether the outcome ends the match in the opponent's favour.
func (o RoundOutcome) IsLoss() bool {
	return o == OutcomeInvalidCounter || o == OutcomeParriedFeint
}

// MatchResult is the overall result of a match.
type MatchResult uint8

const (
	ResultUndecided   MatchResult = iota // 0
	ResultHumanWin                       // 1
	ResultComputerWin                    // 2
)

var resultNames = [...]string{"Undecided", "HumanWin", "ComputerWin"}

func (r MatchResult) String() string {
	if int(r) < len(resultNames) {
		return resultNames[r]
	}
	return "Unknown"
}

// LossReason explains a ComputerWin.
type LossReason uint8

const (
	LossNone           LossReason = iota // 0
	LossInvalidCounter                   // 1
	LossParriedFeint                     // 2
)

var lossReasonNames = [...]string{"None", "InvalidCounter", "ParriedFeint"}

func (l LossReason) String() string {
	if int(l) < len(lossReasonNames) {
		return lossReasonNames[l]
	}
	return "Unknown"
}

// lossReasonFor maps a terminal round outcome to its loss reason.
func lossReasonFor(o RoundOutcome) LossReason {
	switch o {
	case OutcomeInvalidCounter:
		return LossInvalidCounter
	case OutcomeParriedFeint:
		return LossParriedFeint
	default:
		return LossNone
	}
}

// Phase is the lifecycle state of a match.
type Phase uint8

const (
	PhaseIdle       Phase = iota // 0: no match started
	PhaseInProgress              // 1
	PhaseConcluded               // 2: terminal until restart
)

var phaseNames = [...]string{"Idle", "InProgress", "Concluded"}

func (p Phase) String() string {
	if int(p) < len(phaseNames) {
		return phaseNames[p]
	}
	return "Unknown"
}

// ---------------------------------------------------------------------------
// Personality
// ---------------------------------------------------------------------------

// Personality is the opponent's per-match trait governing feint frequency.
type Personality uint8

const (
	PersonalityAggressive    Personality = iota // 0
	PersonalityDefensive                        // 1
	PersonalityUnpredictable                    // 2

	NumPersonalities = 3
)

var personalityNames = [NumPersonalities]string{"Aggressive", "Defensive", "Unpredictable"}

func (p Personality) String() string {
	if int(p) < NumPersonalities {
		return personalityNames[p]
	}
	return "Unknown"
}

// LookupPersonality matches a personality tag, ignoring case.
func LookupPersonality(name string) (Personality, bool) {
	name = strings.TrimSpace(name)
	for i, n := range personalityNames {
		if strings.EqualFold(n, name) {
			return Personality(i), true
		}
	}
	return 0, false
}
