package game

import "github.com/kingrea/riseshine/internal/trivia"

// RiddlePhase tracks the riddle session through content loading.
type RiddlePhase int

const (
	RiddleLoading RiddlePhase = iota
	RiddleReady
	RiddleAnswered
)

// RiddleEngine runs the trivia challenge. It starts in the loading phase
// with no countdown; the caller delivers the provider result via Resolve
// or FailLoad. Exactly one option may ever be selected; the terminal
// outcome is applied by Settle after the caller's feedback delay.
type RiddleEngine struct {
	outcome
	phase    RiddlePhase
	question trivia.Question
	selected int
}

// NewRiddle creates an engine awaiting content.
func NewRiddle() *RiddleEngine {
	return &RiddleEngine{phase: RiddleLoading, selected: -1}
}

// Phase returns the current phase.
func (e *RiddleEngine) Phase() RiddlePhase { return e.phase }

// Question returns the loaded riddle. Only meaningful once Ready.
func (e *RiddleEngine) Question() trivia.Question { return e.question }

// Resolve delivers the fetched riddle and moves to Ready. Invalid
// content fails the session instead.
func (e *RiddleEngine) Resolve(q trivia.Question) {
	if e.done() || e.phase != RiddleLoading {
		return
	}
	if err := q.Validate(); err != nil {
		e.finish(Failed)
		return
	}
	e.question = q
	e.phase = RiddleReady
}

// FailLoad fails the session when the content provider is exhausted.
// Retry is the caller's responsibility via re-selecting the variant.
func (e *RiddleEngine) FailLoad() {
	if e.done() {
		return
	}
	e.finish(Failed)
}

// Select records the player's option. Only the first selection while
// Ready is accepted; everything after is ignored.
func (e *RiddleEngine) Select(option int) bool {
	if e.done() || e.phase != RiddleReady {
		return false
	}
	if option < 0 || option >= len(e.question.Options) {
		return false
	}
	e.selected = option
	e.phase = RiddleAnswered
	return true
}

// Selected returns the chosen option index, or -1.
func (e *RiddleEngine) Selected() int { return e.selected }

// Correct reports whether the selection matches the answer.
func (e *RiddleEngine) Correct() bool {
	return e.selected >= 0 && e.question.Options[e.selected] == e.question.Answer
}

// Settle applies the terminal outcome once the caller has shown its
// correct/incorrect highlighting.
func (e *RiddleEngine) Settle() {
	if e.done() || e.phase != RiddleAnswered {
		return
	}
	if e.Correct() {
		e.finish(Complete)
	} else {
		e.finish(Failed)
	}
}
