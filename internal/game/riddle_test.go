package game

import (
	"testing"

	"github.com/kingrea/riseshine/internal/trivia"
)

func testQuestion() trivia.Question {
	return trivia.Question{
		Question: "What rises in the east?",
		Options:  []string{"The sun", "The moon", "A mountain", "Bread"},
		Answer:   "The sun",
	}
}

func TestRiddleResolveMovesToReady(t *testing.T) {
	e := NewRiddle()
	if e.Phase() != RiddleLoading {
		t.Fatalf("phase = %v, want RiddleLoading", e.Phase())
	}
	e.Resolve(testQuestion())
	if e.Phase() != RiddleReady {
		t.Fatalf("phase = %v, want RiddleReady", e.Phase())
	}
	if e.Outcome() != Pending {
		t.Fatalf("outcome = %v, want Pending", e.Outcome())
	}
}

func TestRiddleInvalidContentFails(t *testing.T) {
	e := NewRiddle()
	e.Resolve(trivia.Question{Question: "?", Options: []string{"a", "b"}, Answer: "a"})
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v for invalid content, want Failed", e.Outcome())
	}
}

func TestRiddleFailLoad(t *testing.T) {
	e := NewRiddle()
	e.FailLoad()
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v, want Failed", e.Outcome())
	}
	// Late provider results must not resurrect the session.
	e.Resolve(testQuestion())
	if e.Phase() != RiddleLoading || e.Outcome() != Failed {
		t.Fatalf("settled session accepted content: phase=%v outcome=%v", e.Phase(), e.Outcome())
	}
}

func TestRiddleSelectOnlyOnce(t *testing.T) {
	e := NewRiddle()
	e.Resolve(testQuestion())
	if !e.Select(1) {
		t.Fatal("first selection rejected")
	}
	if e.Select(0) {
		t.Fatal("second selection accepted")
	}
	if e.Selected() != 1 {
		t.Fatalf("selected = %d, want 1", e.Selected())
	}
}

func TestRiddleSelectBeforeReadyIgnored(t *testing.T) {
	e := NewRiddle()
	if e.Select(0) {
		t.Fatal("selection accepted while loading")
	}
}

func TestRiddleSelectOutOfRangeIgnored(t *testing.T) {
	e := NewRiddle()
	e.Resolve(testQuestion())
	if e.Select(-1) || e.Select(4) {
		t.Fatal("out-of-range selection accepted")
	}
	if !e.Select(0) {
		t.Fatal("valid selection rejected after out-of-range attempts")
	}
}

func TestRiddleSettleCorrect(t *testing.T) {
	e := NewRiddle()
	e.Resolve(testQuestion())
	e.Select(0)
	if !e.Correct() {
		t.Fatal("correct selection reported incorrect")
	}
	if e.Outcome() != Pending {
		t.Fatalf("outcome = %v before settle, want Pending", e.Outcome())
	}
	e.Settle()
	if e.Outcome() != Complete {
		t.Fatalf("outcome = %v, want Complete", e.Outcome())
	}
}

func TestRiddleSettleWrong(t *testing.T) {
	e := NewRiddle()
	e.Resolve(testQuestion())
	e.Select(2)
	if e.Correct() {
		t.Fatal("wrong selection reported correct")
	}
	e.Settle()
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v, want Failed", e.Outcome())
	}
	// Settling twice must not move the outcome.
	e.Settle()
	if e.Outcome() != Failed {
		t.Fatalf("outcome moved to %v after second settle", e.Outcome())
	}
}
