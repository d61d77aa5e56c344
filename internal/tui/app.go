// internal/tui/app.go
//
// This is the main TUI for Rise & Shine. It uses bubbletea, which follows
// The Elm Architecture: the App model holds all state, Update reacts to
// messages (key presses, timer ticks, fetch results) and View renders the
// current screen to a string.

package tui

import (
	"math/rand"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/config"
	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
	"github.com/kingrea/riseshine/internal/logbook"
	"github.com/kingrea/riseshine/internal/record"
	"github.com/kingrea/riseshine/internal/trivia"
)

// appState represents which "screen" we're on.
type appState int

const (
	stateDashboard appState = iota // clock, today's record, stats, trend
	stateChallenge                 // a wake-up mini-game is running
)

// clockTickMsg updates the dashboard clock once per second.
type clockTickMsg time.Time

// challengeResultMsg reports a completed wake-up check.
type challengeResultMsg struct {
	variant game.Variant
}

// challengeCancelMsg reports an abandoned challenge. No record changes.
type challengeCancelMsg struct{}

// AppOption customizes App construction for tests and alternate runtimes.
type AppOption func(*App)

// WithClock substitutes the time source.
func WithClock(clk clock.Clock) AppOption {
	return func(a *App) {
		if clk != nil {
			a.clk = clk
		}
	}
}

// WithRand substitutes the random source used by game engines.
func WithRand(rng *rand.Rand) AppOption {
	return func(a *App) {
		if rng != nil {
			a.rng = rng
		}
	}
}

// WithProvider substitutes the riddle content provider.
func WithProvider(p trivia.Provider) AppOption {
	return func(a *App) {
		if p != nil {
			a.provider = p
		}
	}
}

// App is the main application model. In bubbletea, this holds ALL state.
type App struct {
	state appState

	cfg      *config.Config
	store    record.Store
	book     *logbook.Logbook
	tr       *i18n.Translator
	clk      clock.Clock
	rng      *rand.Rand
	provider trivia.Provider
	picker   *game.Picker

	// Challenge screen
	challenge  *challengeView
	sessionSeq int // generation counter; stale tick messages are dropped

	// Dashboard state
	now         time.Time
	history     []record.Record
	today       *record.Record
	goal        string
	editingGoal bool
	goalInput   textinput.Model
	statusMsg   string

	width  int
	height int
}

// NewApp creates the application model and loads the dashboard state.
func NewApp(cfg *config.Config, store record.Store, book *logbook.Logbook, opts ...AppOption) *App {
	goalInput := textinput.New()
	goalInput.Placeholder = "HH:MM"
	goalInput.CharLimit = 5
	goalInput.Width = 8

	app := &App{
		state:     stateDashboard,
		cfg:       cfg,
		store:     store,
		book:      book,
		tr:        i18n.New(cfg.Language()),
		clk:       clock.System{},
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())),
		goalInput: goalInput,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(app)
		}
	}
	if app.provider == nil {
		gemini := trivia.NewGemini(cfg.APIKey(), cfg.File.Riddle.Model, cfg.File.Riddle.Endpoint)
		app.provider = trivia.WithFallback(gemini, app.rng)
	}
	app.picker = game.NewPicker(app.rng)
	app.now = app.clk.Now()
	app.refresh()
	return app
}

// refresh reloads dashboard data from the record store.
func (a *App) refresh() {
	history, err := a.store.History()
	if err != nil {
		a.book.Warn("load history: %v", err)
		history = nil
	}
	a.history = history

	a.today = nil
	if rec, ok, err := a.store.TodaysRecord(); err != nil {
		a.book.Warn("load today's record: %v", err)
	} else if ok {
		a.today = &rec
	}

	goal, err := a.store.Goal()
	if err != nil {
		a.book.Warn("load goal: %v", err)
		goal = record.DefaultGoal
	}
	a.goal = goal
}

// Init is called once when the program starts.
func (a *App) Init() tea.Cmd {
	return a.scheduleClock()
}

func (a *App) scheduleClock() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return clockTickMsg(t)
	})
}

// Update is called when a message is received.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		return a, nil

	case clockTickMsg:
		a.now = time.Time(msg)
		return a, a.scheduleClock()

	case challengeResultMsg:
		return a.handleChallengeResult(msg.variant)

	case challengeCancelMsg:
		a.book.Info("Challenge abandoned")
		a.leaveChallenge()
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if a.state == stateDashboard {
			return a.handleDashboardKey(msg)
		}
	}

	if a.state == stateChallenge && a.challenge != nil {
		return a, a.challenge.Update(msg)
	}
	return a, nil
}

// handleChallengeResult appends the wake-up record and returns to the
// dashboard surfacing it.
func (a *App) handleChallengeResult(variant game.Variant) (tea.Model, tea.Cmd) {
	rec, err := a.store.Append(variant)
	if err != nil {
		a.book.Error("append record: %v", err)
		a.statusMsg = err.Error()
		a.leaveChallenge()
		return a, nil
	}
	a.book.Info("Wake-up verified · %s at %s", variant, rec.Timestamp.Format("15:04"))
	a.leaveChallenge()
	a.statusMsg = a.tr.T(i18n.KeyGoodMorning, nil)
	return a, nil
}

func (a *App) leaveChallenge() {
	a.state = stateDashboard
	a.challenge = nil
	a.refresh()
}

// startChallenge moves to the challenge screen running the given variant.
func (a *App) startChallenge(variant game.Variant) tea.Cmd {
	a.state = stateChallenge
	a.statusMsg = ""
	a.challenge = newChallengeView(a, variant)
	a.book.Info("Challenge started · %s", variant)
	return a.challenge.init()
}

// nextGeneration retires every scheduled tick of the previous session.
func (a *App) nextGeneration() int {
	a.sessionSeq++
	return a.sessionSeq
}

// View renders the current state to a string.
func (a *App) View() string {
	width := a.width
	if width <= 0 {
		width = 80
	}

	var content string
	switch a.state {
	case stateDashboard:
		content = a.renderDashboard(width)
	case stateChallenge:
		if a.challenge != nil {
			content = a.challenge.View(width)
		}
	}

	sections := []string{content}
	if logPanel := a.renderLogPanel(); logPanel != "" {
		sections = append(sections, logPanel)
	}
	if a.statusMsg != "" {
		footer := lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			MarginTop(1).
			Render(a.statusMsg)
		sections = append(sections, footer)
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (a *App) renderLogPanel() string {
	lines := a.book.Tail(4)
	if len(lines) == 0 {
		return ""
	}
	head := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#5B8DEF")).
		Render("LOG")
	body := lipgloss.NewStyle().
		Foreground(lipgloss.Color("#666666")).
		Render(joinLines(lines))
	return lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444444")).
		Padding(0, 1).
		Render(head + "\n" + body)
}

func joinLines(lines []string) string {
	out := ""
	for i, line := range lines {
		if i > 0 {
			out += "\n"
		}
		out += line
	}
	return out
}
