package game

import "math/rand"

const (
	// GridCells is the tappable cell count (2x2 grid).
	GridCells = 4
	// RequiredLevels is the number of fully reproduced sequences to pass.
	RequiredLevels = 3
)

// MemoryPhase distinguishes the replay phase, where input is ignored,
// from the reproduction phase.
type MemoryPhase int

const (
	PhasePlayback MemoryPhase = iota
	PhaseInput
)

// PressResult describes what a cell press did.
type PressResult int

const (
	PressIgnored  PressResult = iota // playback running or session over
	PressWrong                       // mismatch, session failed
	PressGood                        // matched, sequence continues
	PressLevelUp                     // sequence reproduced, next level queued
	PressComplete                    // final level reproduced, session complete
)

// MemoryEngine grows a random cell sequence one step per level, replays
// it, then requires the player to reproduce it in order. There is no
// countdown; pacing is sequence-length-driven.
type MemoryEngine struct {
	outcome
	rng      *rand.Rand
	sequence []int
	pos      int
	level    int
	phase    MemoryPhase
}

// NewMemory creates an engine at level one with its first step queued
// for playback.
func NewMemory(rng *rand.Rand) *MemoryEngine {
	e := &MemoryEngine{rng: rng, level: 1}
	e.grow()
	return e
}

func (e *MemoryEngine) grow() {
	e.sequence = append(e.sequence, e.rng.Intn(GridCells))
	e.pos = 0
	e.phase = PhasePlayback
}

// Sequence returns a copy of the current sequence.
func (e *MemoryEngine) Sequence() []int {
	out := make([]int, len(e.sequence))
	copy(out, e.sequence)
	return out
}

// Level returns the current level, starting at one.
func (e *MemoryEngine) Level() int { return e.level }

// Phase reports whether the engine is replaying or accepting input.
func (e *MemoryEngine) Phase() MemoryPhase { return e.phase }

// BeginInput switches to the reproduction phase once the caller has
// finished replaying the sequence visually.
func (e *MemoryEngine) BeginInput() {
	if e.done() || e.phase != PhasePlayback {
		return
	}
	e.phase = PhaseInput
	e.pos = 0
}

// Press compares a cell against the next expected index. A mismatch
// fails the session immediately; a fully matched sequence advances to
// the next level or completes the session at the required level count.
func (e *MemoryEngine) Press(cell int) PressResult {
	if e.done() || e.phase != PhaseInput {
		return PressIgnored
	}
	if cell != e.sequence[e.pos] {
		e.finish(Failed)
		return PressWrong
	}
	e.pos++
	if e.pos < len(e.sequence) {
		return PressGood
	}
	if e.level >= RequiredLevels {
		e.finish(Complete)
		return PressComplete
	}
	e.level++
	e.grow()
	return PressLevelUp
}
