package tui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/i18n"
	"github.com/kingrea/riseshine/internal/record"
)

// handleDashboardKey processes input on the dashboard screen.
func (a *App) handleDashboardKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.editingGoal {
		return a.handleGoalEditKey(msg)
	}

	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	case "enter", "w":
		// The wake-up action is only offered while today has no record;
		// that guard is what keeps appends at one per day.
		if a.today != nil {
			return a, nil
		}
		return a, a.startChallenge(a.picker.Pick())
	case "g":
		a.editingGoal = true
		a.goalInput.SetValue(a.goal)
		a.statusMsg = ""
		return a, a.goalInput.Focus()
	case "u":
		if a.today == nil {
			return a, nil
		}
		if err := a.store.RemoveToday(); err != nil {
			a.book.Error("undo today: %v", err)
			a.statusMsg = err.Error()
			return a, nil
		}
		a.book.Info("Today's wake-up record removed")
		beepClick()
		a.refresh()
		return a, nil
	case "l":
		return a, a.toggleLanguage()
	}
	return a, nil
}

func (a *App) handleGoalEditKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		a.editingGoal = false
		a.goalInput.Blur()
		return a, nil
	case "enter":
		value := strings.TrimSpace(a.goalInput.Value())
		if err := a.store.SetGoal(value); err != nil {
			a.statusMsg = err.Error()
			return a, nil
		}
		a.book.Info("Goal set to %s", value)
		a.editingGoal = false
		a.goalInput.Blur()
		a.refresh()
		return a, nil
	}
	var cmd tea.Cmd
	a.goalInput, cmd = a.goalInput.Update(msg)
	return a, cmd
}

func (a *App) toggleLanguage() tea.Cmd {
	langs := i18n.Languages()
	next := langs[0]
	for i, lang := range langs {
		if lang == a.tr.Language() {
			next = langs[(i+1)%len(langs)]
			break
		}
	}
	if err := a.cfg.SetLanguage(next); err != nil {
		a.book.Warn("persist language: %v", err)
	}
	a.tr.SetLanguage(next)
	beepClick()
	a.book.Info("Language switched to %s", next)
	return nil
}

// countStreak counts consecutive wake-up days ending at the most recent
// record, provided that record is from today or yesterday.
func countStreak(history []record.Record, now clock.Clock) int {
	if len(history) == 0 {
		return 0
	}
	last := history[len(history)-1].Timestamp
	today := now.Now()
	if !clock.SameDay(last, today) && !clock.SameDay(last, today.AddDate(0, 0, -1)) {
		return 0
	}
	streak := 1
	for i := len(history) - 2; i >= 0; i-- {
		prev := history[i].Timestamp
		cur := history[i+1].Timestamp
		if clock.SameDay(prev, cur.AddDate(0, 0, -1)) {
			streak++
			continue
		}
		if clock.SameDay(prev, cur) {
			continue // same-day duplicate, does not break the run
		}
		break
	}
	return streak
}

func (a *App) renderDashboard(width int) string {
	header := a.renderHeader()
	card := a.renderActionCard()
	stats := a.renderStats()
	trend := renderTrend(a.history, a.goal, a.tr, width-4)
	hints := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#888888")).
		MarginTop(1).
		Render(a.dashboardHints())
	return lipgloss.JoinVertical(lipgloss.Left, header, card, stats, trend, hints)
}

func (a *App) dashboardHints() string {
	if a.editingGoal {
		return "Enter → save goal    Esc → cancel"
	}
	parts := []string{}
	if a.today == nil {
		parts = append(parts, fmt.Sprintf("Enter → %s", a.tr.T(i18n.KeyImAwake, nil)))
	} else {
		parts = append(parts, fmt.Sprintf("u → %s", a.tr.T(i18n.KeyCancelWakeUp, nil)))
	}
	parts = append(parts,
		fmt.Sprintf("g → %s", a.tr.T(i18n.KeyEdit, nil)),
		"l → EN/中文",
		"q → quit",
	)
	return strings.Join(parts, "    ")
}

func (a *App) renderHeader() string {
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#f59e0b")).
		Render("☀ " + a.tr.T(i18n.KeyAppTitle, nil))
	bigClock := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#e2e8f0")).
		Render(a.now.Format("15:04:05"))
	date := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#94a3b8")).
		Render(a.now.Format("Monday, January 2"))
	return lipgloss.JoinVertical(lipgloss.Left, title, bigClock, date, "")
}

func (a *App) renderActionCard() string {
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#f59e0b")).
		Padding(1, 2)

	if a.today == nil {
		heading := lipgloss.NewStyle().Bold(true).Render(a.tr.T(i18n.KeyReadyToStart, nil))
		sub := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8")).
			Render(a.tr.T(i18n.KeyReadySubtitle, nil))
		cta := lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#f59e0b")).
			Render("▶ " + a.tr.T(i18n.KeyImAwake, nil))
		return box.Render(lipgloss.JoinVertical(lipgloss.Left, heading, sub, "", cta))
	}

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#22c55e")).
			Render("✔ " + a.tr.T(i18n.KeyGoodMorning, nil)),
		fmt.Sprintf("%s %s",
			a.tr.T(i18n.KeyWokeUpAt, nil),
			lipgloss.NewStyle().Bold(true).Render(a.today.Timestamp.Local().Format("15:04"))),
	}
	if record.GoalMet(*a.today, a.goal) {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(lipgloss.Color("#f59e0b")).
			Render("🏆 "+a.tr.T(i18n.KeyGoalMet, nil)))
	}
	lines = append(lines, fmt.Sprintf("%s: %s",
		a.tr.T(i18n.KeyTodaysGame, nil),
		a.tr.T(i18n.Key(string(a.today.Game)), nil)))
	return box.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

func (a *App) renderStats() string {
	cell := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 2).
		Align(lipgloss.Center)
	label := lipgloss.NewStyle().Foreground(lipgloss.Color("#94a3b8"))
	value := lipgloss.NewStyle().Bold(true)

	goalValue := a.goal
	if a.editingGoal {
		goalValue = a.goalInput.View()
	}

	cells := []string{
		cell.Render(lipgloss.JoinVertical(lipgloss.Center,
			value.Render(fmt.Sprintf("%d", len(a.history))),
			label.Render(a.tr.T(i18n.KeyTotalDays, nil)))),
		cell.Render(lipgloss.JoinVertical(lipgloss.Center,
			value.Render(fmt.Sprintf("%d", countStreak(a.history, a.clk))),
			label.Render(a.tr.T(i18n.KeyStreak, nil)))),
		cell.Render(lipgloss.JoinVertical(lipgloss.Center,
			value.Render(goalValue),
			label.Render(a.tr.T(i18n.KeyDailyGoal, nil)))),
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}
