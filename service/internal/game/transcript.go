// internal/game/transcript.go
package game

import (
	"encoding/base64"
	"fmt"
	"strconv"

	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/google/uuid"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
)

// TranscriptRound is one submission and what it resolved to.
type TranscriptRound struct {
	Input    string // Raw text as submitted.
	Outcome  string // engine.RoundOutcome name.
	Opponent string // Opponent reply in display form, empty when there was none.
}

// Transcript is everything needed to re-run a match deterministically.
type Transcript struct {
	BoutID      uuid.UUID
	Seed        uint64
	SourceState []byte // Random source state captured when the match started.
	Personality engine.Personality
	Rules       engine.MatchRules // Rules the bout was played under.
	Rounds      []TranscriptRound
}

// ReplayError reports the first step at which a replayed bout diverged.
type ReplayError struct {
	Step    int    `json:"step"`
	Reason  string `json:"reason"`
	Message string `json:"message"`
}

func (e *ReplayError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("replay error(step=%d reason=%s): %s", e.Step, e.Reason, e.Message)
}

// Transcript captures the current match.
func (b *Bout) Transcript() Transcript {
	b.Mu.Lock()
	defer b.Mu.Unlock()

	t := Transcript{
		BoutID:      b.ID,
		Seed:        b.Seed,
		SourceState: append([]byte(nil), b.rngState...),
		Personality: b.State.Personality,
		Rules:       b.Rules,
		Rounds:      make([]TranscriptRound, 0, len(b.rounds)),
	}
	for _, r := range b.rounds {
		tr := TranscriptRound{Input: r.Input, Outcome: r.Outcome.String()}
		if r.Opponent != nil {
			tr.Opponent = r.Opponent.String()
		}
		t.Rounds = append(t.Rounds, tr)
	}
	return t
}

// toStruct builds the protobuf Struct form of the transcript. The seed is
// carried as a string since Struct numbers are doubles.
func (t Transcript) toStruct() (*structpb.Struct, error) {
	rounds := make([]interface{}, 0, len(t.Rounds))
	for _, r := range t.Rounds {
		rounds = append(rounds, map[string]interface{}{
			"input":    r.Input,
			"outcome":  r.Outcome,
			"opponent": r.Opponent,
		})
	}
	risk := make(map[string]interface{}, engine.NumPersonalities)
	for i, r := range t.Rules.PersonalityRisk {
		risk[engine.Personality(i).String()] = r
	}
	return structpb.NewStruct(map[string]interface{}{
		"bout_id":      t.BoutID.String(),
		"seed":         strconv.FormatUint(t.Seed, 10),
		"source_state": base64.StdEncoding.EncodeToString(t.SourceState),
		"personality":  t.Personality.String(),
		"rules": map[string]interface{}{
			"recency_chance":   t.Rules.RecencyChance,
			"recency_window":   t.Rules.RecencyWindow,
			"fatigue_start":    t.Rules.FatigueStart,
			"fatigue_step":     t.Rules.FatigueStep,
			"fatigue_floor":    t.Rules.FatigueFloor,
			"personality_risk": risk,
		},
		"rounds": rounds,
	})
}

// rulesFromStruct reads the "rules" object written by toStruct.
func rulesFromStruct(s *structpb.Struct) (engine.MatchRules, error) {
	f := s.GetFields()
	r := engine.MatchRules{
		RecencyChance: f["recency_chance"].GetNumberValue(),
		RecencyWindow: int(f["recency_window"].GetNumberValue()),
		FatigueStart:  f["fatigue_start"].GetNumberValue(),
		FatigueStep:   f["fatigue_step"].GetNumberValue(),
		FatigueFloor:  f["fatigue_floor"].GetNumberValue(),
	}
	risk := f["personality_risk"].GetStructValue().GetFields()
	for i := 0; i < engine.NumPersonalities; i++ {
		name := engine.Personality(i).String()
		v, ok := risk[name]
		if !ok {
			return engine.MatchRules{}, fmt.Errorf("missing risk for %s", name)
		}
		r.PersonalityRisk[i] = v.GetNumberValue()
	}
	if err := r.Validate(); err != nil {
		return engine.MatchRules{}, err
	}
	return r, nil
}

// MarshalJSON encodes the transcript as protobuf JSON.
func (t Transcript) MarshalJSON() ([]byte, error) {
	s, err := t.toStruct()
	if err != nil {
		return nil, fmt.Errorf("build transcript: %w", err)
	}
	return protojson.MarshalOptions{Multiline: true}.Marshal(s)
}

// MarshalBinary encodes the transcript in protobuf wire format.
func (t Transcript) MarshalBinary() ([]byte, error) {
	s, err := t.toStruct()
	if err != nil {
		return nil, fmt.Errorf("build transcript: %w", err)
	}
	return proto.Marshal(s)
}

// DecodeTranscript parses the output of Transcript.MarshalJSON.
func DecodeTranscript(data []byte) (Transcript, error) {
	var s structpb.Struct
	if err := protojson.Unmarshal(data, &s); err != nil {
		return Transcript{}, fmt.Errorf("decode transcript: %w", err)
	}
	return fromStruct(&s)
}

// DecodeTranscriptBinary parses the output of Transcript.MarshalBinary.
func DecodeTranscriptBinary(data []byte) (Transcript, error) {
	var s structpb.Struct
	if err := proto.Unmarshal(data, &s); err != nil {
		return Transcript{}, fmt.Errorf("decode transcript: %w", err)
	}
	return fromStruct(&s)
}

func fromStruct(s *structpb.Struct) (Transcript, error) {
	f := s.GetFields()
	var t Transcript

	id, err := uuid.Parse(f["bout_id"].GetStringValue())
	if err != nil {
		return Transcript{}, fmt.Errorf("transcript bout_id: %w", err)
	}
	t.BoutID = id

	if t.Seed, err = strconv.ParseUint(f["seed"].GetStringValue(), 10, 64); err != nil {
		return Transcript{}, fmt.Errorf("transcript seed: %w", err)
	}
	if t.SourceState, err = base64.StdEncoding.DecodeString(f["source_state"].GetStringValue()); err != nil {
		return Transcript{}, fmt.Errorf("transcript source_state: %w", err)
	}

	p, ok := engine.LookupPersonality(f["personality"].GetStringValue())
	if !ok {
		return Transcript{}, fmt.Errorf("transcript personality: unknown %q", f["personality"].GetStringValue())
	}
	t.Personality = p

	rs := f["rules"].GetStructValue()
	if rs == nil {
		return Transcript{}, fmt.Errorf("transcript rules: missing")
	}
	if t.Rules, err = rulesFromStruct(rs); err != nil {
		return Transcript{}, fmt.Errorf("transcript rules: %w", err)
	}

	for _, v := range f["rounds"].GetListValue().GetValues() {
		rf := v.GetStructValue().GetFields()
		t.Rounds = append(t.Rounds, TranscriptRound{
			Input:    rf["input"].GetStringValue(),
			Outcome:  rf["outcome"].GetStringValue(),
			Opponent: rf["opponent"].GetStringValue(),
		})
	}
	return t, nil
}

// Replay re-runs a transcript on a fresh bout with the adaptive opponent and
// returns that bout. It fails with a *ReplayError at the first round whose
// outcome or opponent reply differs from the recording. opts.Seed,
// opts.Rules, opts.Personality and opts.Opponent are taken from the
// transcript; only opts.Logger is honoured.
func Replay(t Transcript, opts Options) (*Bout, error) {
	opts.Seed = t.Seed
	rules := t.Rules
	opts.Rules = &rules
	p := t.Personality
	opts.Personality = &p
	opts.Opponent = nil

	b, err := NewBout(opts)
	if err != nil {
		return nil, &ReplayError{Step: -1, Reason: "rules", Message: err.Error()}
	}
	if len(t.SourceState) > 0 {
		if err := b.pcg.UnmarshalBinary(t.SourceState); err != nil {
			return nil, &ReplayError{Step: -1, Reason: "source_state", Message: err.Error()}
		}
	}
	b.Restart()

	for i, r := range t.Rounds {
		res, err := b.SubmitMove(r.Input)
		if err != nil {
			return b, &ReplayError{Step: i, Reason: "not_in_progress", Message: err.Error()}
		}
		if got := res.Outcome.String(); got != r.Outcome {
			return b, &ReplayError{Step: i, Reason: "outcome_mismatch",
				Message: fmt.Sprintf("input %q: got %s, recorded %s", r.Input, got, r.Outcome)}
		}
		got := ""
		if res.Opponent != nil {
			got = res.Opponent.String()
		}
		if got != r.Opponent {
			return b, &ReplayError{Step: i, Reason: "opponent_mismatch",
				Message: fmt.Sprintf("input %q: got %q, recorded %q", r.Input, got, r.Opponent)}
		}
	}
	return b, nil
}
