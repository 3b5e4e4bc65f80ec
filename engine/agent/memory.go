package agent

import (
	"math/rand/v2"

	engine "github.com/C8d9/Fencing-Game/engine"
)

// Transitions is the per-match record of how the human reacts to each
// opponent move. Counts[opening][reaction] is the number of times the human
// answered opening with reaction. It is a flat value type: the zero value is
// an empty table and copying it with = snapshots it.
type Transitions struct {
	Counts [engine.NumMoves][engine.NumMoves]uint32
}

// Prediction is a sampled human reaction and the raw count that backed it.
type Prediction struct {
	Reaction engine.Move
	Weight   uint32
}

// Record notes that the human answered opening with reaction.
// Out-of-range moves are ignored.
func (t *Transitions) Record(opening, reaction engine.Move) {
	if !opening.Valid() || !reaction.Valid() {
		return
	}
	t.Counts[opening][reaction]++
}

// Count returns how often reaction followed opening.
func (t *Transitions) Count(opening, reaction engine.Move) uint32 {
	if !opening.Valid() || !reaction.Valid() {
		return 0
	}
	return t.Counts[opening][reaction]
}

// Total returns the number of observations recorded under opening.
func (t *Transitions) Total(opening engine.Move) uint32 {
	if !opening.Valid() {
		return 0
	}
	var n uint32
	for _, c := range t.Counts[opening] {
		n += c
	}
	return n
}

// Reset clears every bucket.
func (t *Transitions) Reset() { *t = Transitions{} }

// Predict samples one reaction to opening with probability proportional to its
// count. It is a categorical draw, not an argmax, so identical history may
// yield different predictions. Returns false when the bucket is empty.
//
// The draw walks a cumulative-weight table built in move order and consumes
// exactly one value from rng.
func (t *Transitions) Predict(opening engine.Move, rng *rand.Rand) (Prediction, bool) {
	total := t.Total(opening)
	if total == 0 {
		return Prediction{}, false
	}

	type cumEntry struct {
		move engine.Move
		cum  uint32
	}
	var table [engine.NumMoves]cumEntry
	n := 0
	var cum uint32
	for r, c := range t.Counts[opening] {
		if c == 0 {
			continue
		}
		cum += c
		table[n] = cumEntry{move: engine.Move(r), cum: cum}
		n++
	}

	x := rng.Uint32N(total)
	m := table[n-1].move
	for i := 0; i < n; i++ {
		if x < table[i].cum {
			m = table[i].move
			break
		}
	}
	return Prediction{Reaction: m, Weight: t.Count(opening, m)}, true
}
