package game

import (
	"fmt"
	"math/rand"

	"github.com/kingrea/riseshine/internal/i18n"
)

// Op is an arithmetic operator.
type Op byte

const (
	OpAdd Op = '+'
	OpSub Op = '-'
	OpMul Op = '*'
)

// Tier is a math difficulty level.
type Tier int

const (
	TierEasy Tier = iota
	TierMedium
	TierHard
)

// Tiers returns the selectable difficulties in display order.
func Tiers() []Tier { return []Tier{TierEasy, TierMedium, TierHard} }

// TierConfig fixes the rules of one difficulty: countdown budget, allowed
// operators, operand ranges (multiplication gets its own range to keep
// products reasonable) and the correct-answer count required to pass.
type TierConfig struct {
	Label    i18n.Key
	Seconds  int
	Ops      []Op
	Min, Max int
	MultMin  int
	MultMax  int
	Required int
}

var tierConfigs = map[Tier]TierConfig{
	TierEasy: {
		Label: i18n.KeyEasy, Seconds: 60,
		Ops: []Op{OpAdd, OpSub},
		Min: 2, Max: 12, MultMin: 2, MultMax: 5,
		Required: 3,
	},
	TierMedium: {
		Label: i18n.KeyMedium, Seconds: 45,
		Ops: []Op{OpAdd, OpSub, OpMul},
		Min: 4, Max: 20, MultMin: 2, MultMax: 9,
		Required: 5,
	},
	TierHard: {
		Label: i18n.KeyHard, Seconds: 30,
		Ops: []Op{OpAdd, OpSub, OpMul},
		Min: 10, Max: 50, MultMin: 4, MultMax: 12,
		Required: 7,
	},
}

// Config returns the rules for this tier.
func (t Tier) Config() TierConfig { return tierConfigs[t] }

// Problem is one arithmetic question.
type Problem struct {
	A, B int
	Op   Op
}

// Answer computes the expected result.
func (p Problem) Answer() int {
	switch p.Op {
	case OpAdd:
		return p.A + p.B
	case OpSub:
		return p.A - p.B
	case OpMul:
		return p.A * p.B
	}
	return 0
}

func (p Problem) String() string {
	return fmt.Sprintf("%d %c %d", p.A, p.Op, p.B)
}

const mathPenaltySeconds = 3

// MathEngine runs the timed arithmetic challenge. It starts awaiting a
// difficulty selection; Choose arms the countdown and the first problem.
type MathEngine struct {
	outcome
	rng      *rand.Rand
	started  bool
	tier     Tier
	cfg      TierConfig
	problem  Problem
	score    int
	timeLeft int
}

// NewMath creates an engine awaiting difficulty selection.
func NewMath(rng *rand.Rand) *MathEngine {
	return &MathEngine{rng: rng}
}

// Started reports whether a difficulty has been chosen.
func (e *MathEngine) Started() bool { return e.started }

// Tier returns the chosen difficulty. Only meaningful once started.
func (e *MathEngine) Tier() Tier { return e.tier }

// Score returns the correct answers so far.
func (e *MathEngine) Score() int { return e.score }

// Required returns the pass threshold for the chosen tier.
func (e *MathEngine) Required() int { return e.cfg.Required }

// TimeLeft returns the remaining whole seconds.
func (e *MathEngine) TimeLeft() int { return e.timeLeft }

// Problem returns the current question.
func (e *MathEngine) Problem() Problem { return e.problem }

// Choose selects the difficulty, arms the countdown and generates the
// first problem. A second call is ignored.
func (e *MathEngine) Choose(t Tier) {
	if e.done() || e.started {
		return
	}
	e.started = true
	e.tier = t
	e.cfg = t.Config()
	e.timeLeft = e.cfg.Seconds
	e.nextProblem()
}

func (e *MathEngine) nextProblem() {
	op := e.cfg.Ops[e.rng.Intn(len(e.cfg.Ops))]
	var a, b int
	if op == OpMul {
		a = e.randBetween(e.cfg.MultMin, e.cfg.MultMax)
		b = e.randBetween(e.cfg.MultMin, e.cfg.MultMax)
	} else {
		a = e.randBetween(e.cfg.Min, e.cfg.Max)
		b = e.randBetween(e.cfg.Min, e.cfg.Max)
	}
	// Keep subtraction results non-negative.
	if op == OpSub && b > a {
		a, b = b, a
	}
	e.problem = Problem{A: a, B: b, Op: op}
}

func (e *MathEngine) randBetween(min, max int) int {
	return e.rng.Intn(max-min+1) + min
}

// Submit checks an answer. A correct answer increments the score and
// either completes the session or generates the next problem. A wrong
// answer costs three seconds, floored at zero so failure lands on the
// next tick rather than mid-submission.
func (e *MathEngine) Submit(answer int) bool {
	if e.done() || !e.started {
		return false
	}
	if answer == e.problem.Answer() {
		e.score++
		if e.score >= e.cfg.Required {
			e.finish(Complete)
		} else {
			e.nextProblem()
		}
		return true
	}
	e.timeLeft -= mathPenaltySeconds
	if e.timeLeft < 0 {
		e.timeLeft = 0
	}
	return false
}

// Tick advances the countdown by one second and fails the session when
// it reaches zero. Ticks after the terminal state are no-ops.
func (e *MathEngine) Tick() {
	if e.done() || !e.started {
		return
	}
	if e.timeLeft > 0 {
		e.timeLeft--
	}
	if e.timeLeft <= 0 {
		e.finish(Failed)
	}
}
