package game

import (
	"testing"

	"github.com/kingrea/riseshine/internal/i18n"
)

func TestColorPaletteShape(t *testing.T) {
	palette := Palette()
	if len(palette) != 6 {
		t.Fatalf("palette size = %d, want 6", len(palette))
	}
	seen := map[string]bool{}
	for _, pc := range palette {
		if pc.ID == "" || pc.Hex == "" {
			t.Fatalf("palette entry missing ID or Hex: %+v", pc)
		}
		if seen[pc.ID] {
			t.Fatalf("duplicate palette ID %s", pc.ID)
		}
		seen[pc.ID] = true
		if pc.Name(i18n.LangEN) == "" || pc.Name(i18n.LangZH) == "" {
			t.Fatalf("palette entry %s missing a display name", pc.ID)
		}
	}
}

func TestColorCorrectPicksComplete(t *testing.T) {
	e := NewColor(testRng(1))
	for i := 0; i < e.Required(); i++ {
		if e.Outcome() != Pending {
			t.Fatalf("settled after %d picks, want %d", i, e.Required())
		}
		if !e.Choose(e.Round().Ink.ID) {
			t.Fatalf("correct pick %d rejected", i)
		}
	}
	if e.Outcome() != Complete {
		t.Fatalf("outcome = %v, want Complete", e.Outcome())
	}
}

func TestColorWrongPickPenalty(t *testing.T) {
	e := NewColor(testRng(2))
	before := e.TimeLeft()
	wrong := "RED"
	if e.Round().Ink.ID == "RED" {
		wrong = "BLUE"
	}
	if e.Choose(wrong) {
		t.Fatal("wrong pick accepted")
	}
	if got := e.TimeLeft(); got != before-3 {
		t.Fatalf("timeLeft = %d, want %d", got, before-3)
	}
	if e.Score() != 0 {
		t.Fatalf("score = %d, want 0", e.Score())
	}
}

func TestColorPenaltyFloorsAtZero(t *testing.T) {
	e := NewColor(testRng(3))
	for i := 0; i < 20; i++ {
		wrong := "RED"
		if e.Round().Ink.ID == "RED" {
			wrong = "BLUE"
		}
		e.Choose(wrong)
	}
	if e.TimeLeft() != 0 {
		t.Fatalf("timeLeft = %d, want 0", e.TimeLeft())
	}
	if e.Outcome() != Pending {
		t.Fatalf("outcome = %v before tick, want Pending", e.Outcome())
	}
	e.Tick()
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v, want Failed", e.Outcome())
	}
}

func TestColorCountdownExpires(t *testing.T) {
	e := NewColor(testRng(4))
	for i := 0; i < 20; i++ {
		e.Tick()
	}
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v after 20 ticks, want Failed", e.Outcome())
	}
	// Settled; further picks are rejected.
	if e.Choose(e.Round().Ink.ID) {
		t.Fatal("pick accepted after failure")
	}
	if e.Outcome() != Failed {
		t.Fatalf("outcome moved to %v after settle", e.Outcome())
	}
}
