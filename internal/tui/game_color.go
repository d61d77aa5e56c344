package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
)

type colorView struct {
	c      *challengeView
	engine *game.ColorEngine
}

func newColorView(c *challengeView) *colorView {
	return &colorView{c: c, engine: game.NewColor(c.app.rng)}
}

func (v *colorView) init() tea.Cmd { return v.c.countdown() }

func (v *colorView) update(msg tea.Msg) tea.Cmd {
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

	case tea.KeyMsg:
		palette := game.Palette()
		key := msg.String()
		if len(key) != 1 || key[0] < '1' || key[0] > byte('0'+len(palette)) {
			return nil
		}
		pick := palette[key[0]-'1']
		if !v.engine.Choose(pick.ID) {
			beepFailure()
		} else {
			beepClick()
		}
		return v.c.check(v.engine.Outcome())
	}
	return nil
}

func (v *colorView) view(width int) string {
	tr := v.c.app.tr
	lang := tr.Language()

	status := fmt.Sprintf("%s %d/%d    %s %ds",
		tr.T(i18n.KeyScore, nil), v.engine.Score(), v.engine.Required(),
		tr.T(i18n.KeyTime, nil), v.engine.TimeLeft())
	statusLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Render(status)

	hint := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Italic(true).
		Render(tr.T(i18n.KeyColorHint, nil))

	// The trap: the word names one color, the ink is another.
	round := v.engine.Round()
	word := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(round.Ink.Hex)).
		Render(round.Word.Name(lang))

	buttons := make([]string, 0, len(game.Palette()))
	for i, pc := range game.Palette() {
		buttons = append(buttons, lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color(pc.Hex)).
			Foreground(lipgloss.Color(pc.Hex)).
			Padding(0, 1).
			Render(fmt.Sprintf("%d %s", i+1, pc.Name(lang))))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, buttons...)

	body := lipgloss.JoinVertical(lipgloss.Left, statusLine, hint, "", word, "", row)
	return v.c.challengeFrame("🎨 "+tr.T(i18n.KeyColorTitle, nil), body)
}
