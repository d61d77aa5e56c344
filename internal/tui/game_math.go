package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
)

// tierItem adapts a math difficulty for the bubbles list.
type tierItem struct {
	tier game.Tier
	tr   *i18n.Translator
}

func (i tierItem) Title() string { return i.tr.T(i.tier.Config().Label, nil) }

func (i tierItem) Description() string {
	cfg := i.tier.Config()
	return i.tr.T(i18n.KeySolveToProve, map[string]any{"n": cfg.Required}) +
		fmt.Sprintf(" · %ds", cfg.Seconds)
}

func (i tierItem) FilterValue() string { return i.Title() }

type mathView struct {
	c      *challengeView
	engine *game.MathEngine
	menu   list.Model
	input  textinput.Model
}

func newMathView(c *challengeView) *mathView {
	items := make([]list.Item, 0, len(game.Tiers()))
	for _, t := range game.Tiers() {
		items = append(items, tierItem{tier: t, tr: c.app.tr})
	}
	menu := list.New(items, list.NewDefaultDelegate(), 40, 14)
	menu.Title = c.app.tr.T(i18n.KeyChooseLevel, nil)
	menu.SetShowStatusBar(false)
	menu.SetFilteringEnabled(false)
	menu.SetShowHelp(false)

	input := textinput.New()
	input.Placeholder = "?"
	input.CharLimit = 6
	input.Width = 10

	return &mathView{
		c:      c,
		engine: game.NewMath(c.app.rng),
		menu:   menu,
		input:  input,
	}
}

func (v *mathView) init() tea.Cmd { return nil }

func (v *mathView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case countdownTickMsg:
		if v.c.stale(msg.gen) || !v.engine.Started() {
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

	case tea.KeyMsg:
		if !v.engine.Started() {
			return v.handleMenuKey(msg)
		}
		return v.handleAnswerKey(msg)
	}
	return nil
}

func (v *mathView) handleMenuKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		item, ok := v.menu.SelectedItem().(tierItem)
		if !ok {
			return nil
		}
		v.engine.Choose(item.tier)
		return tea.Batch(v.input.Focus(), textinput.Blink, v.c.countdown())
	}
	var cmd tea.Cmd
	v.menu, cmd = v.menu.Update(msg)
	return cmd
}

func (v *mathView) handleAnswerKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "enter" {
		answer, err := strconv.Atoi(strings.TrimSpace(v.input.Value()))
		if err != nil {
			return nil
		}
		v.input.SetValue("")
		if !v.engine.Submit(answer) {
			beepFailure()
		}
		return v.c.check(v.engine.Outcome())
	}
	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *mathView) view(width int) string {
	tr := v.c.app.tr
	if !v.engine.Started() {
		return v.c.challengeFrame("🧮 "+tr.T(i18n.KeyMathTitle, nil), v.menu.View())
	}

	status := fmt.Sprintf("%s %d/%d    %s %ds",
		tr.T(i18n.KeyScore, nil), v.engine.Score(), v.engine.Required(),
		tr.T(i18n.KeyTime, nil), v.engine.TimeLeft())
	statusLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Render(status)

	problem := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")).
		Render(v.engine.Problem().String() + " = ")

	body := lipgloss.JoinVertical(lipgloss.Left,
		statusLine,
		"",
		problem+v.input.View(),
	)
	return v.c.challengeFrame("🧮 "+tr.T(i18n.KeyMathTitle, nil), body)
}
