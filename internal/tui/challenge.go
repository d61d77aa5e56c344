package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
	"github.com/kingrea/riseshine/internal/trivia"
)

// Tick messages carry the generation they were scheduled under. A
// retry or teardown bumps the App's generation, so ticks from the old
// session arrive stale and are dropped instead of driving a countdown
// that no longer exists.
type (
	countdownTickMsg   struct{ gen int }
	playbackStepMsg    struct{ gen, step int }
	cellDimMsg         struct{ gen int }
	errorFlashClearMsg struct{ gen int }
	riddleSettleMsg    struct{ gen int }
	riddleFetchedMsg   struct {
		gen int
		q   trivia.Question
		err error
	}
)

const (
	playbackStepInterval = 800 * time.Millisecond
	cellLitDuration      = 400 * time.Millisecond
	errorFlashDuration   = 500 * time.Millisecond
	riddleSettleDelay    = 800 * time.Millisecond
)

// challengeView runs one wake-up check. Exactly one of the per-game
// subviews is non-nil, matching the variant.
type challengeView struct {
	app     *App
	variant game.Variant
	gen     int
	failed  bool

	math     *mathView
	memory   *memoryView
	color    *colorView
	scramble *scrambleView
	riddle   *riddleView
}

func newChallengeView(a *App, variant game.Variant) *challengeView {
	c := &challengeView{app: a, variant: variant, gen: a.nextGeneration()}
	switch variant {
	case game.Math:
		c.math = newMathView(c)
	case game.Memory:
		c.memory = newMemoryView(c)
	case game.ColorMatch:
		c.color = newColorView(c)
	case game.WordScramble:
		c.scramble = newScrambleView(c)
	case game.Riddle:
		c.riddle = newRiddleView(c)
	}
	return c
}

func (c *challengeView) init() tea.Cmd {
	switch c.variant {
	case game.Math:
		return c.math.init()
	case game.Memory:
		return c.memory.init()
	case game.ColorMatch:
		return c.color.init()
	case game.WordScramble:
		return c.scramble.init()
	case game.Riddle:
		return c.riddle.init()
	}
	return nil
}

// after schedules msg once d has elapsed.
func after(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}

// countdown emits one generation-tagged second tick.
func (c *challengeView) countdown() tea.Cmd {
	return after(time.Second, countdownTickMsg{gen: c.gen})
}

func cancelChallenge() tea.Msg { return challengeCancelMsg{} }

// check inspects the engine outcome after a state change. Completion
// reports the result to the App; failure flips to the retry overlay.
func (c *challengeView) check(out game.Outcome) tea.Cmd {
	switch out {
	case game.Complete:
		beepSuccess()
		variant := c.variant
		return func() tea.Msg { return challengeResultMsg{variant: variant} }
	case game.Failed:
		beepFailure()
		c.failed = true
	}
	return nil
}

func (c *challengeView) stale(gen int) bool { return gen != c.gen }

func (c *challengeView) Update(msg tea.Msg) tea.Cmd {
	if key, ok := msg.(tea.KeyMsg); ok {
		if c.failed {
			return c.handleFailedKey(key)
		}
		if key.String() == "esc" {
			return cancelChallenge
		}
	}
	if c.failed {
		return nil
	}

	switch c.variant {
	case game.Math:
		return c.math.update(msg)
	case game.Memory:
		return c.memory.update(msg)
	case game.ColorMatch:
		return c.color.update(msg)
	case game.WordScramble:
		return c.scramble.update(msg)
	case game.Riddle:
		return c.riddle.update(msg)
	}
	return nil
}

func (c *challengeView) handleFailedKey(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "r", "enter":
		return c.app.startChallenge(c.app.picker.Retry())
	case "esc", "q":
		return cancelChallenge
	}
	return nil
}

func (c *challengeView) View(width int) string {
	if c.failed {
		return c.renderFailed(width)
	}
	switch c.variant {
	case game.Math:
		return c.math.view(width)
	case game.Memory:
		return c.memory.view(width)
	case game.ColorMatch:
		return c.color.view(width)
	case game.WordScramble:
		return c.scramble.view(width)
	case game.Riddle:
		return c.riddle.view(width)
	}
	return ""
}

func (c *challengeView) renderFailed(width int) string {
	tr := c.app.tr
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#ef4444")).
		Render("✖ " + tr.T(i18n.KeyStillDreaming, nil))
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Render(tr.T(i18n.KeyFailedCheck, nil))
	hints := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		Render("r → " + tr.T(i18n.KeyTryAgain, nil) + "    esc → " + tr.T(i18n.KeyGiveUp, nil))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#ef4444")).
		Padding(1, 3)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, title, "", body, "", hints))
}

// challengeFrame is the shared chrome around every game view.
func (c *challengeView) challengeFrame(title, body string) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f59e0b")).
		Render(title)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#f59e0b")).
		Padding(1, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, head, "", body))
}
