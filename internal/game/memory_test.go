package game

import "testing"

func TestMemorySequenceGrowsPerLevel(t *testing.T) {
	e := NewMemory(testRng(1))
	if got := len(e.Sequence()); got != 1 {
		t.Fatalf("level 1 sequence length = %d, want 1", got)
	}
	for level := 1; level < RequiredLevels; level++ {
		e.BeginInput()
		var last PressResult
		for _, cell := range e.Sequence() {
			last = e.Press(cell)
		}
		if last != PressLevelUp {
			t.Fatalf("level %d final press = %v, want PressLevelUp", level, last)
		}
		if got := len(e.Sequence()); got != level+1 {
			t.Fatalf("level %d sequence length = %d, want %d", level+1, got, level+1)
		}
		if e.Phase() != PhasePlayback {
			t.Fatalf("phase after level up = %v, want PhasePlayback", e.Phase())
		}
	}
}

func TestMemoryCompleteAtRequiredLevels(t *testing.T) {
	e := NewMemory(testRng(2))
	for {
		e.BeginInput()
		var last PressResult
		for _, cell := range e.Sequence() {
			last = e.Press(cell)
		}
		if last == PressComplete {
			break
		}
		if last != PressLevelUp {
			t.Fatalf("press = %v, want PressLevelUp or PressComplete", last)
		}
	}
	if e.Outcome() != Complete {
		t.Fatalf("outcome = %v, want Complete", e.Outcome())
	}
	if e.Level() != RequiredLevels {
		t.Fatalf("level = %d, want %d", e.Level(), RequiredLevels)
	}
}

func TestMemoryWrongPressFailsImmediately(t *testing.T) {
	e := NewMemory(testRng(3))
	e.BeginInput()
	wrong := (e.Sequence()[0] + 1) % GridCells
	if got := e.Press(wrong); got != PressWrong {
		t.Fatalf("press = %v, want PressWrong", got)
	}
	if e.Outcome() != Failed {
		t.Fatalf("outcome = %v, want Failed", e.Outcome())
	}
	// Settled sessions ignore further presses.
	if got := e.Press(e.Sequence()[0]); got != PressIgnored {
		t.Fatalf("press after failure = %v, want PressIgnored", got)
	}
}

func TestMemoryIgnoresPressDuringPlayback(t *testing.T) {
	e := NewMemory(testRng(4))
	if got := e.Press(e.Sequence()[0]); got != PressIgnored {
		t.Fatalf("press during playback = %v, want PressIgnored", got)
	}
	if e.Outcome() != Pending {
		t.Fatalf("outcome = %v, want Pending", e.Outcome())
	}
}

func TestMemorySequenceCellsInRange(t *testing.T) {
	e := NewMemory(testRng(5))
	for level := 1; level < RequiredLevels; level++ {
		e.BeginInput()
		for _, cell := range e.Sequence() {
			if cell < 0 || cell >= GridCells {
				t.Fatalf("cell %d out of range", cell)
			}
			e.Press(cell)
		}
	}
}

func TestMemorySequenceReturnsCopy(t *testing.T) {
	e := NewMemory(testRng(6))
	seq := e.Sequence()
	seq[0] = (seq[0] + 1) % GridCells
	if e.Sequence()[0] == seq[0] {
		t.Fatal("mutating the returned sequence changed engine state")
	}
}
