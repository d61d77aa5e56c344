package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
)

type memoryView struct {
	c      *challengeView
	engine *game.MemoryEngine
	lit    int // cell currently lit during playback, -1 otherwise
}

func newMemoryView(c *challengeView) *memoryView {
	return &memoryView{
		c:      c,
		engine: game.NewMemory(c.app.rng),
		lit:    -1,
	}
}

func (v *memoryView) init() tea.Cmd {
	return v.startPlayback()
}

// startPlayback kicks off the step chain for the current sequence.
func (v *memoryView) startPlayback() tea.Cmd {
	return after(playbackStepInterval, playbackStepMsg{gen: v.c.gen, step: 0})
}

func (v *memoryView) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {

	case playbackStepMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		seq := v.engine.Sequence()
		if msg.step >= len(seq) {
			v.lit = -1
			v.engine.BeginInput()
			return nil
		}
		v.lit = seq[msg.step]
		return tea.Batch(
			after(cellLitDuration, cellDimMsg{gen: v.c.gen}),
			after(playbackStepInterval, playbackStepMsg{gen: v.c.gen, step: msg.step + 1}),
		)

	case cellDimMsg:
		if v.c.stale(msg.gen) {
			return nil
		}
		v.lit = -1
		return nil

	case tea.KeyMsg:
		return v.handleKey(msg)
	}
	return nil
}

func (v *memoryView) handleKey(msg tea.KeyMsg) tea.Cmd {
	key := msg.String()
	if len(key) != 1 || key[0] < '1' || key[0] > '0'+game.GridCells {
		return nil
	}
	cell := int(key[0] - '1')
	switch v.engine.Press(cell) {
	case game.PressIgnored:
		return nil
	case game.PressWrong:
		return v.c.check(v.engine.Outcome())
	case game.PressGood:
		beepClick()
		return nil
	case game.PressLevelUp:
		beepClick()
		return v.startPlayback()
	case game.PressComplete:
		return v.c.check(v.engine.Outcome())
	}
	return nil
}

func (v *memoryView) view(width int) string {
	tr := v.c.app.tr

	phaseText := tr.T(i18n.KeyWatchCarefully, nil)
	if v.engine.Phase() == game.PhaseInput {
		phaseText = tr.T(i18n.KeyYourTurn, nil)
	}
	status := fmt.Sprintf("%s %d/%d · %s",
		tr.T(i18n.KeyLevel, nil), v.engine.Level(), game.RequiredLevels, phaseText)
	statusLine := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8")).Render(status)

	body := lipgloss.JoinVertical(lipgloss.Left, statusLine, "", v.renderGrid())
	return v.c.challengeFrame("🧠 "+tr.T(i18n.KeyMemoryTitle, nil), body)
}

func (v *memoryView) renderGrid() string {
	base := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(1, 4)
	hot := base.
		BorderForeground(lipgloss.Color("#f59e0b")).
		Background(lipgloss.Color("#f59e0b")).
		Foreground(lipgloss.Color("#1e1e1e")).
		Bold(true)

	cells := make([]string, game.GridCells)
	for i := 0; i < game.GridCells; i++ {
		style := base
		if i == v.lit {
			style = hot
		}
		cells[i] = style.Render(fmt.Sprintf("%d", i+1))
	}
	top := lipgloss.JoinHorizontal(lipgloss.Top, cells[0], cells[1])
	bottom := lipgloss.JoinHorizontal(lipgloss.Top, cells[2], cells[3])
	return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
}
