// Package game holds the mini-game state machines behind the wake-up
// check. Engines are pure: they take a seeded *rand.Rand, mutate on
// explicit calls (Submit, Press, Tick, ...), and expose a single Outcome
// that settles exactly once. Rendering, key handling and tick scheduling
// live in the TUI layer.
package game

import "math/rand"

// Variant identifies one mini-game kind. The string values are persisted
// in wake-up records, so they are stable.
type Variant string

const (
	Math         Variant = "MATH"
	Memory       Variant = "MEMORY"
	Riddle       Variant = "RIDDLE"
	ColorMatch   Variant = "COLOR_MATCH"
	WordScramble Variant = "WORD_SCRAMBLE"
)

// Variants returns every playable variant.
func Variants() []Variant {
	return []Variant{Math, Memory, Riddle, ColorMatch, WordScramble}
}

// Outcome is the terminal result of a session.
type Outcome int

const (
	Pending Outcome = iota
	Complete
	Failed
)

func (o Outcome) String() string {
	switch o {
	case Complete:
		return "complete"
	case Failed:
		return "failed"
	default:
		return "pending"
	}
}

// outcome is embedded by every engine. The first terminal transition
// wins; later calls are ignored, which makes the "exactly one of
// complete/failure" contract structural rather than conventional.
type outcome struct {
	value Outcome
}

// Outcome reports the session result so far.
func (o *outcome) Outcome() Outcome { return o.value }

func (o *outcome) done() bool { return o.value != Pending }

func (o *outcome) finish(v Outcome) {
	if o.value == Pending && v != Pending {
		o.value = v
	}
}

// Picker selects which variant to run. Retry prefers a different variant
// than the previous pick so a failed player does not face the identical
// challenge twice in a row.
type Picker struct {
	rng  *rand.Rand
	last Variant
}

// NewPicker creates a picker over the full variant set.
func NewPicker(rng *rand.Rand) *Picker {
	return &Picker{rng: rng}
}

// Pick chooses uniformly at random.
func (p *Picker) Pick() Variant {
	all := Variants()
	p.last = all[p.rng.Intn(len(all))]
	return p.last
}

// Retry chooses uniformly among the variants other than the previous
// pick. With a single variant it degenerates to Pick.
func (p *Picker) Retry() Variant {
	all := Variants()
	if len(all) <= 1 || p.last == "" {
		return p.Pick()
	}
	others := make([]Variant, 0, len(all)-1)
	for _, v := range all {
		if v != p.last {
			others = append(others, v)
		}
	}
	p.last = others[p.rng.Intn(len(others))]
	return p.last
}

// Last returns the most recent pick.
func (p *Picker) Last() Variant { return p.last }
