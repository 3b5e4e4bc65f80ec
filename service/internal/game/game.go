// internal/game/game.go
package game

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"

	engine "github.com/C8d9/Fencing-Game/engine"
	"github.com/C8d9/Fencing-Game/engine/agent"
	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"
)

// ErrBoutNotInProgress is returned by SubmitMove when the bout is Idle or Concluded.
var ErrBoutNotInProgress = errors.New("bout not in progress")

// OnBoutEndFunc defines the signature for a callback executed when a bout concludes.
// It receives the bout ID and the end-of-bout summary.
type OnBoutEndFunc func(boutID uuid.UUID, summary Summary)

// RoundResult is what a single SubmitMove call resolves to.
type RoundResult struct {
	Input      string              // Raw text as submitted.
	Outcome    engine.RoundOutcome // Classification of the human move.
	Human      engine.Action       // Parsed human action; zero on OutcomeInvalidInput.
	Opponent   *engine.Action      // Opponent reply; nil when the round drew no reply.
	Rule       agent.Rule          // Cascade rule behind Opponent; meaningless when Opponent is nil.
	Result     engine.MatchResult  // Bout result after this round.
	LossReason engine.LossReason   // Set when Result is ComputerWin.
}

// Concluded reports whether this round ended the bout.
func (r RoundResult) Concluded() bool { return r.Result != engine.ResultUndecided }

// Options configures a new Bout. The zero value is usable.
type Options struct {
	Seed        uint64              // Seed for the bout's random source.
	Rules       *engine.MatchRules  // Nil selects engine.DefaultMatchRules.
	Personality *engine.Personality // Forces the personality on every restart when set.
	Opponent    Opponent            // Nil selects the adaptive opponent.
	Logger      *log.Entry          // Nil uses the standard logrus logger.
}

// Bout is one human-versus-computer fencing match and its controller.
// A Bout starts Idle; Restart enters InProgress and is the only way out of Concluded.
type Bout struct {
	ID    uuid.UUID         // Unique identifier for this bout.
	Seed  uint64            // Seed the random source was created from.
	Rules engine.MatchRules // Tuning constants of the opponent cascade.

	State    engine.MatchState // Authoritative match record.
	Opponent Opponent          // Chooses the computer's replies.

	forced   *engine.Personality
	pcg      *rand.PCG
	rng      *rand.Rand
	rngState []byte // Source state captured at the last restart, for transcripts.

	rounds      []RoundResult // Every submission since the last restart, including invalid input.
	actionIndex int           // Sequential index for logging actions via historian.
	logger      *log.Entry

	Mu sync.Mutex // Protects the bout; callbacks run with it held.

	// Callbacks
	OnRound   func(RoundResult) // Executed after every submission.
	OnBoutEnd OnBoutEndFunc     // Executed when the bout concludes.
}

// NewBout creates an Idle bout. All randomness, including the adaptive
// opponent's, is drawn from a single PCG source seeded from opts.Seed.
// It fails with engine.ErrInvalidRules when opts.Rules does not validate.
func NewBout(opts Options) (*Bout, error) {
	rules := engine.DefaultMatchRules()
	if opts.Rules != nil {
		rules = *opts.Rules
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	if opts.Personality != nil && int(*opts.Personality) >= engine.NumPersonalities {
		return nil, fmt.Errorf("invalid personality %d", *opts.Personality)
	}

	id, _ := uuid.NewRandom()
	logger := opts.Logger
	if logger == nil {
		logger = log.NewEntry(log.StandardLogger())
	}

	pcg := rand.NewPCG(opts.Seed, opts.Seed^pcgStream)
	b := &Bout{
		ID:     id,
		Seed:   opts.Seed,
		Rules:  rules,
		State:  engine.NewMatchState(),
		forced: opts.Personality,
		pcg:    pcg,
		rng:    rand.New(pcg),
		logger: logger.WithField("bout", id.String()),
	}
	b.Opponent = opts.Opponent
	if b.Opponent == nil {
		b.Opponent = NewAdaptiveOpponent(rules, b.rng)
	}
	return b, nil
}

// pcgStream decorrelates the second PCG word from the seed.
const pcgStream = 0x9e3779b97f4a7c15

// Restart resets the match record and the opponent's memory and draws a fresh
// personality uniformly. A forced personality overrides the draw, but the draw
// is still taken so the random stream is the same either way.
func (b *Bout) Restart() {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	b.restart()
}

func (b *Bout) restart() {
	state, err := b.pcg.MarshalBinary()
	if err != nil {
		// PCG marshalling cannot fail.
		panic(err)
	}
	b.rngState = state

	p := engine.Personality(b.rng.IntN(engine.NumPersonalities))
	if b.forced != nil {
		p = *b.forced
	}
	b.State.Reset(p)
	b.Opponent.Reset()
	b.rounds = nil
	b.actionIndex = 0

	b.logAction("bout", "bout_restart", log.Fields{"personality": p.String()})
	b.logger.WithField("personality", p.String()).Info("Bout started")
}

// SubmitMove plays one human move through the round lifecycle:
// validate, record, learn, choose a reply, detect the end of the bout.
//
// InvalidInput is an outcome, not an error: the round is not consumed and
// nothing is mutated. The only error is ErrBoutNotInProgress.
func (b *Bout) SubmitMove(raw string) (RoundResult, error) {
	b.Mu.Lock()
	defer b.Mu.Unlock()

	if !b.State.InProgress() {
		b.logger.WithField("phase", b.State.Phase.String()).Debug("SubmitMove rejected")
		return RoundResult{}, ErrBoutNotInProgress
	}

	act, outcome := engine.Validate(raw, &b.State)
	res := RoundResult{Input: raw, Outcome: outcome, Human: act}

	switch {
	case outcome == engine.OutcomeInvalidInput:
		b.logger.WithField("input", raw).Debug("Unrecognised move")

	case outcome.IsLoss():
		b.State.RecordHuman(act)
		b.logAction("human", "human_move", log.Fields{"move": act.String(), "outcome": outcome.String()})
		b.State.ConcludeLoss(outcome)

	default:
		prior, hasPrior := b.State.LastOpponent()
		b.State.RecordHuman(act)
		b.logAction("human", "human_move", log.Fields{"move": act.String(), "outcome": outcome.String()})
		if hasPrior {
			b.Opponent.Observe(prior.Base(), act.Base())
		}

		reply, rule := b.Opponent.Choose(act.Base(), &b.State)
		b.State.RecordOpponent(reply)
		res.Opponent = &reply
		res.Rule = rule
		b.logAction("opponent", "opponent_move", log.Fields{"move": reply.String(), "rule": rule.String()})

		if engine.IsFeintPunished(act, reply) {
			b.State.ConcludeHumanWin()
		}
	}

	res.Result = b.State.Result
	res.LossReason = b.State.LossReason
	b.rounds = append(b.rounds, res)

	if b.OnRound != nil {
		b.OnRound(res)
	}
	if b.State.IsConcluded() {
		b.finish()
	}
	return res, nil
}

// finish logs the conclusion and fires OnBoutEnd. Assumes lock is held.
func (b *Bout) finish() {
	summary := summarize(&b.State)
	b.logAction("bout", "bout_end", log.Fields{
		"result":      b.State.Result.String(),
		"loss_reason": b.State.LossReason.String(),
		"rounds":      b.State.NumHumanMoves(),
	})
	b.logger.WithFields(log.Fields{
		"result":      b.State.Result.String(),
		"loss_reason": b.State.LossReason.String(),
	}).Info("Bout concluded")

	if b.OnBoutEnd != nil {
		b.OnBoutEnd(b.ID, summary)
	}
}

// Personality returns the opponent's personality for the current match.
func (b *Bout) Personality() engine.Personality {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return b.State.Personality
}

// Phase returns the bout's lifecycle phase.
func (b *Bout) Phase() engine.Phase {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return b.State.Phase
}

// Result returns the current result and loss reason.
func (b *Bout) Result() (engine.MatchResult, engine.LossReason) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return b.State.Result, b.State.LossReason
}

// History returns copies of the human and opponent histories, oldest first.
func (b *Bout) History() (human, opponent []engine.Action) {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return b.State.History()
}

// Summary returns the end-of-bout summary. It is meaningful only once the bout has concluded.
func (b *Bout) Summary() Summary {
	b.Mu.Lock()
	defer b.Mu.Unlock()
	return summarize(&b.State)
}

// logAction records a bout action through the historian as a structured log line.
// Assumes lock is held.
func (b *Bout) logAction(actor, actionType string, payload log.Fields) {
	b.actionIndex++
	if payload == nil {
		payload = log.Fields{}
	}
	b.logger.WithFields(payload).WithFields(log.Fields{
		"action_index": b.actionIndex,
		"actor":        actor,
		"action":       actionType,
	}).Debug("bout action")
}
