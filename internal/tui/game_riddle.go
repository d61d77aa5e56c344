package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
)

type riddleView struct {
	c       *challengeView
	engine  *game.RiddleEngine
	loading spinner.Model
}

func newRiddleView(c *challengeView) *riddleView {
	loading := spinner.New()
	loading.Spinner = spinner.Dot
	loading.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))

	return &riddleView{
		c:       c,
		engine:  game.NewRiddle(),
		loading: loading,
	}
}

func (v *riddleView) init() tea.Cmd {
	return tea.Batch(v.loading.Tick, v.fetch())
}

// fetch runs the provider off the update loop and reports back with a
// generation-tagged message.
func (v *riddleView) fetch() tea.Cmd {
	gen := v.c.gen
	provider := v.c.app.provider
	lang := v.c.app.tr.Language()
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), 20*time.Second)
		defer cancel()
		q, err := provider.Fetch(ctx, lang)
		return riddleFetchedMsg{gen: gen, q: q, err: err}
	}
}

func (v *riddleView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case riddleFetchedMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		if msg.err != nil {
			v.c.app.book.Warn("riddle fetch: %v", msg.err)
			v.engine.FailLoad()
		} else {
			v.engine.Resolve(msg.q)
		}
		return v.c.check(v.engine.Outcome())

	case spinner.TickMsg:
		if v.engine.Phase() != game.RiddleLoading {
			return nil
		}
		var cmd tea.Cmd
		v.loading, cmd = v.loading.Update(msg)
		return cmd

	case riddleSettleMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		v.engine.Settle()
		return v.c.check(v.engine.Outcome())

	case tea.KeyMsg:
		key := msg.String()
		if len(key) != 1 || key[0] < '1' || key[0] > '4' {
			return nil
		}
		if !v.engine.Select(int(key[0] - '1')) {
			return nil
		}
		if v.engine.Correct() {
			beepClick()
		} else {
			beepFailure()
		}
		return after(riddleSettleDelay, riddleSettleMsg{gen: v.c.gen})
	}
	return nil
}

func (v *riddleView) view(width int) string {
	tr := v.c.app.tr

	if v.engine.Phase() == game.RiddleLoading {
		body := v.loading.View() + " " + tr.T(i18n.KeyConsulting, nil)
		return v.c.challengeFrame("🔮 "+tr.T(i18n.KeyRiddleTitle, nil), body)
	}

	q := v.engine.Question()
	question := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")).
		Width(max(20, width-10)).
		Render(q.Question)

	lines := []string{question, ""}
	for i, opt := range q.Options {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
		marker := " "
		if v.engine.Selected() == i {
			marker = "▶"
			if v.engine.Correct() {
				style = style.Foreground(lipgloss.Color("#22c55e")).Bold(true)
			} else {
				style = style.Foreground(lipgloss.Color("#ef4444")).Bold(true)
			}
		}
		lines = append(lines, style.Render(fmt.Sprintf("%s %d. %s", marker, i+1, opt)))
	}

	body := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return v.c.challengeFrame("🔮 "+tr.T(i18n.KeyRiddleTitle, nil), body)
}
