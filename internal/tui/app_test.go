package tui

import (
	"context"
	"math/rand"
	"strconv"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kingrea/riseshine/internal/config"
	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/i18n"
	"github.com/kingrea/riseshine/internal/logbook"
	"github.com/kingrea/riseshine/internal/record"
	"github.com/kingrea/riseshine/internal/trivia"
)

type fixedClock struct {
	now time.Time
}

func (c *fixedClock) Now() time.Time { return c.now }

type stubProvider struct {
	q trivia.Question
}

func (p *stubProvider) Fetch(ctx context.Context, lang i18n.Language) (trivia.Question, error) {
	return p.q, nil
}

func newTestApp(t *testing.T) (*App, record.Store) {
	t.Helper()
	cfg, err := config.Load(t.TempDir())
	if err != nil {
		t.Fatalf("config: %v", err)
	}
	book, err := logbook.New(cfg.LogPath())
	if err != nil {
		t.Fatalf("logbook: %v", err)
	}
	clk := &fixedClock{now: time.Date(2026, 8, 31, 7, 30, 0, 0, time.Local)}
	store, err := record.Open(cfg, clk, book)
	if err != nil {
		t.Fatalf("store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	app := NewApp(cfg, store, book,
		WithClock(clk),
		WithRand(rand.New(rand.NewSource(1))),
		WithProvider(&stubProvider{q: trivia.Question{
			Question: "What rises in the east?",
			Options:  []string{"The sun", "The moon", "A mountain", "Bread"},
			Answer:   "The sun",
		}}),
	)
	return app, store
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyEnter() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEnter} }

func keyEsc() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyEsc} }

// send delivers a message and, when asked, executes the returned command
// and feeds its message back in. Time-based commands are never executed.
func send(t *testing.T, app *App, msg tea.Msg, runCmd bool) {
	t.Helper()
	_, cmd := app.Update(msg)
	if runCmd && cmd != nil {
		if next := cmd(); next != nil {
			app.Update(next)
		}
	}
}

func TestMathChallengeRecordsWakeUp(t *testing.T) {
	app, store := newTestApp(t)

	app.startChallenge(game.Math)
	if app.state != stateChallenge {
		t.Fatal("not on challenge screen")
	}
	mv := app.challenge.math
	if mv == nil {
		t.Fatal("math view missing")
	}

	// Select the first tier (easy) from the menu.
	send(t, app, keyEnter(), false)
	if !mv.engine.Started() {
		t.Fatal("engine not started after tier selection")
	}

	required := mv.engine.Required()
	for i := 0; i < required; i++ {
		answer := strconv.Itoa(mv.engine.Problem().Answer())
		for _, r := range answer {
			send(t, app, keyRunes(string(r)), false)
		}
		// The final correct answer completes the session and emits the
		// result message.
		send(t, app, keyEnter(), i == required-1)
	}

	if app.state != stateDashboard {
		t.Fatal("did not return to dashboard after completion")
	}
	history, err := store.History()
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("history = %d records, want 1", len(history))
	}
	if history[0].Game != game.Math {
		t.Fatalf("recorded game = %s, want MATH", history[0].Game)
	}
	if app.today == nil {
		t.Fatal("dashboard shows no record for today")
	}
	if !record.GoalMet(*app.today, app.goal) {
		t.Fatal("07:30 wake-up should meet the 08:00 default goal")
	}

	// A second wake-up attempt is refused while today's record exists.
	send(t, app, keyEnter(), true)
	if app.state != stateDashboard {
		t.Fatal("wake-up action offered despite existing record")
	}
	if history, _ := store.History(); len(history) != 1 {
		t.Fatalf("second enter appended a record: %d", len(history))
	}
}

func TestMemoryFailureThenGiveUpRecordsNothing(t *testing.T) {
	app, store := newTestApp(t)

	app.startChallenge(game.Memory)
	mv := app.challenge.memory
	if mv == nil {
		t.Fatal("memory view missing")
	}
	gen := app.challenge.gen

	// Skip straight past playback to the input phase.
	send(t, app, playbackStepMsg{gen: gen, step: len(mv.engine.Sequence())}, false)
	if mv.engine.Phase() != game.PhaseInput {
		t.Fatal("engine not accepting input")
	}

	wrong := (mv.engine.Sequence()[0] + 1) % game.GridCells
	send(t, app, keyRunes(strconv.Itoa(wrong+1)), false)
	if !app.challenge.failed {
		t.Fatal("wrong press did not surface the failure overlay")
	}

	// Give up from the overlay.
	send(t, app, keyEsc(), true)
	if app.state != stateDashboard {
		t.Fatal("esc from failure overlay did not return to dashboard")
	}
	if history, _ := store.History(); len(history) != 0 {
		t.Fatalf("failed challenge appended records: %d", len(history))
	}
	if app.today != nil {
		t.Fatal("dashboard shows a record after a failed challenge")
	}
}

func TestFailureRetrySwitchesVariantAndGeneration(t *testing.T) {
	app, _ := newTestApp(t)

	app.picker.Pick() // seed the picker's previous choice
	prev := app.picker.Last()
	app.startChallenge(prev)
	gen := app.challenge.gen
	app.challenge.failed = true

	send(t, app, keyRunes("r"), false)
	if app.challenge == nil || app.challenge.failed {
		t.Fatal("retry did not start a fresh challenge")
	}
	if app.challenge.variant == prev {
		t.Fatalf("retry repeated variant %s", prev)
	}
	if app.challenge.gen == gen {
		t.Fatal("retry kept the old tick generation")
	}

	// A tick scheduled under the old generation must be dropped.
	if app.challenge.stale(gen) != true {
		t.Fatal("old generation not considered stale")
	}
}

func TestStaleTickIsDropped(t *testing.T) {
	app, _ := newTestApp(t)

	app.startChallenge(game.ColorMatch)
	cv := app.challenge.color
	before := cv.engine.TimeLeft()

	send(t, app, countdownTickMsg{gen: app.challenge.gen - 1}, false)
	if cv.engine.TimeLeft() != before {
		t.Fatal("stale countdown tick advanced the engine")
	}
	send(t, app, countdownTickMsg{gen: app.challenge.gen}, false)
	if cv.engine.TimeLeft() != before-1 {
		t.Fatal("current-generation tick ignored")
	}
}

func TestRiddleChallengeRecordsWakeUp(t *testing.T) {
	app, store := newTestApp(t)

	app.startChallenge(game.Riddle)
	rv := app.challenge.riddle
	gen := app.challenge.gen

	send(t, app, riddleFetchedMsg{gen: gen, q: app.provider.(*stubProvider).q}, false)
	if rv.engine.Phase() != game.RiddleReady {
		t.Fatal("riddle not ready after fetch result")
	}

	// Option 1 is the correct answer in the stub.
	send(t, app, keyRunes("1"), false)
	if rv.engine.Selected() != 0 {
		t.Fatalf("selected = %d, want 0", rv.engine.Selected())
	}
	send(t, app, riddleSettleMsg{gen: gen}, true)

	if app.state != stateDashboard {
		t.Fatal("did not return to dashboard after riddle success")
	}
	history, _ := store.History()
	if len(history) != 1 || history[0].Game != game.Riddle {
		t.Fatalf("history = %+v, want one RIDDLE record", history)
	}
}

func TestEscDuringPlayAbandonsChallenge(t *testing.T) {
	app, store := newTestApp(t)

	app.startChallenge(game.WordScramble)
	send(t, app, keyEsc(), true)
	if app.state != stateDashboard {
		t.Fatal("esc did not abandon the challenge")
	}
	if history, _ := store.History(); len(history) != 0 {
		t.Fatalf("abandoned challenge appended records: %d", len(history))
	}
}

func TestGoalEditFromDashboard(t *testing.T) {
	app, store := newTestApp(t)

	send(t, app, keyRunes("g"), false)
	if !app.editingGoal {
		t.Fatal("g did not open the goal editor")
	}
	for _, r := range "06:45" {
		send(t, app, keyRunes(string(r)), false)
	}
	send(t, app, keyEnter(), false)
	if app.editingGoal {
		t.Fatal("enter did not close the goal editor")
	}
	goal, err := store.Goal()
	if err != nil {
		t.Fatalf("goal: %v", err)
	}
	if goal != "06:45" {
		t.Fatalf("goal = %q, want 06:45", goal)
	}
	if app.goal != "06:45" {
		t.Fatalf("dashboard goal = %q, want 06:45", app.goal)
	}
}

func TestGoalEditRejectsInvalidInput(t *testing.T) {
	app, store := newTestApp(t)

	send(t, app, keyRunes("g"), false)
	app.goalInput.SetValue("25:99")
	send(t, app, keyEnter(), false)
	if !app.editingGoal {
		t.Fatal("invalid goal closed the editor")
	}
	if goal, _ := store.Goal(); goal != record.DefaultGoal {
		t.Fatalf("goal = %q, want default", goal)
	}
}

func TestUndoRemovesTodaysRecord(t *testing.T) {
	app, store := newTestApp(t)

	if _, err := store.Append(game.Math); err != nil {
		t.Fatalf("append: %v", err)
	}
	app.refresh()
	if app.today == nil {
		t.Fatal("today's record not loaded")
	}

	send(t, app, keyRunes("u"), false)
	if app.today != nil {
		t.Fatal("undo left today's record on the dashboard")
	}
	if history, _ := store.History(); len(history) != 0 {
		t.Fatalf("undo left %d records", len(history))
	}
}

func TestLanguageToggle(t *testing.T) {
	app, _ := newTestApp(t)

	if app.tr.Language() != i18n.LangEN {
		t.Fatalf("initial language = %s", app.tr.Language())
	}
	send(t, app, keyRunes("l"), false)
	if app.tr.Language() != i18n.LangZH {
		t.Fatalf("language after toggle = %s, want zh", app.tr.Language())
	}
	if app.cfg.Language() != i18n.LangZH {
		t.Fatal("language toggle not persisted to config")
	}
	send(t, app, keyRunes("l"), false)
	if app.tr.Language() != i18n.LangEN {
		t.Fatalf("language after second toggle = %s, want en", app.tr.Language())
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	app, _ := newTestApp(t)
	if app.View() == "" {
		t.Fatal("dashboard view empty")
	}
	for _, variant := range game.Variants() {
		app.startChallenge(variant)
		if app.View() == "" {
			t.Fatalf("challenge view for %s empty", variant)
		}
		app.challenge.failed = true
		if app.View() == "" {
			t.Fatalf("failure overlay for %s empty", variant)
		}
		app.leaveChallenge()
	}
}
