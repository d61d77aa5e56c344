package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/i18n"
	"github.com/kingrea/riseshine/internal/record"
)

const trendDays = 14

var sparkRunes = []rune("▁▂▃▄▅▆▇█")

// renderTrend draws a sparkline over the most recent wake-up times.
// Earlier wake-ups get taller bars; days that met the goal are green.
func renderTrend(history []record.Record, goal string, tr *i18n.Translator, width int) string {
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render(tr.T(i18n.KeyWakeUpTrends, nil))
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1)

	if len(history) == 0 {
		empty := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666")).
			Render(tr.T(i18n.KeyNoHistory, nil))
		return box.Render(head + "\n" + empty)
	}

	recent := history
	if len(recent) > trendDays {
		recent = recent[len(recent)-trendDays:]
	}

	minutes := make([]int, len(recent))
	lo, hi := 24*60, 0
	for i, rec := range recent {
		t := rec.Timestamp.Local()
		m := t.Hour()*60 + t.Minute()
		minutes[i] = m
		if m < lo {
			lo = m
		}
		if m > hi {
			hi = m
		}
	}

	met := lipgloss.NewStyle().Foreground(lipgloss.Color("#22c55e"))
	missed := lipgloss.NewStyle().Foreground(lipgloss.Color("#f59e0b"))

	var bars strings.Builder
	for i, rec := range recent {
		idx := len(sparkRunes) - 1
		if hi > lo {
			// Invert: the earliest wake-up gets the tallest bar.
			idx = (hi - minutes[i]) * (len(sparkRunes) - 1) / (hi - lo)
		}
		bar := string(sparkRunes[idx])
		if record.GoalMet(rec, goal) {
			bars.WriteString(met.Render(bar))
		} else {
			bars.WriteString(missed.Render(bar))
		}
	}

	first := recent[0].Timestamp.Local().Format("Jan 2")
	last := recent[len(recent)-1].Timestamp.Local().Format("Jan 2")
	axis := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Render(first + strings.Repeat(" ", maxGap(len(recent), len(first)+len(last))) + last)

	return box.Render(head + "\n" + bars.String() + "\n" + axis)
}

func maxGap(bars, labels int) int {
	gap := bars - labels
	if gap < 1 {
		gap = 1
	}
	return gap
}
