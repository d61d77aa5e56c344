package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
)

type scrambleView struct {
	c        *challengeView
	engine   *game.ScrambleEngine
	input    textinput.Model
	errFlash bool
}

func newScrambleView(c *challengeView) *scrambleView {
	input := textinput.New()
	input.Placeholder = c.app.tr.T(i18n.KeyTypeHere, nil)
	input.CharLimit = 24
	input.Width = 24

	return &scrambleView{
		c:      c,
		engine: game.NewScramble(c.app.rng, c.app.tr.Language()),
		input:  input,
	}
}

func (v *scrambleView) init() tea.Cmd {
	return tea.Batch(v.input.Focus(), textinput.Blink, v.c.countdown())
}

func (v *scrambleView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case countdownTickMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		v.engine.Tick()
		if cmd := v.c.check(v.engine.Outcome()); cmd != nil {
			return cmd
		}
		if v.engine.Outcome() == game.Pending {
			return v.c.countdown()
		}
		return nil

	case errorFlashClearMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		v.errFlash = false
		return nil

	case tea.KeyMsg:
		if msg.String() == "enter" {
			if v.engine.Submit(v.input.Value()) {
				beepClick()
				v.input.SetValue("")
				return v.c.check(v.engine.Outcome())
			}
			beepFailure()
			v.errFlash = true
			return after(errorFlashDuration, errorFlashClearMsg{gen: v.c.gen})
		}
		var cmd tea.Cmd
		v.input, cmd = v.input.Update(msg)
		return cmd
	}
	return nil
}

func (v *scrambleView) view(width int) string {
	tr := v.c.app.tr

	status := fmt.Sprintf("%s %d/%d    %s %ds",
		tr.T(i18n.KeyWord, nil), v.engine.WordNumber(), v.engine.Total(),
		tr.T(i18n.KeyTime, nil), v.engine.TimeLeft())
	statusLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Render(status)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Italic(true).
		Render(tr.T(i18n.KeyScrambleHint, nil))

	// Alphabetic scripts read better with the letters spaced apart.
	scrambled := v.engine.Scrambled()
	if tr.Language() != i18n.LangZH {
		scrambled = strings.Join(strings.Split(scrambled, ""), " ")
	}
	wordColor := "#e2e8f0"
	if v.errFlash {
		wordColor = "#ef4444"
	}
	word := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(wordColor)).
		Render(scrambled)

	body := lipgloss.JoinVertical(lipgloss.Left, statusLine, hint, "", word, "", v.input.View())
	return v.c.challengeFrame("🔤 "+tr.T(i18n.KeyScrambleTitle, nil), body)
}
