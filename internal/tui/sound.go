package tui

import "os"

// Terminal bell cues. Best effort: a terminal with the bell muted just
// stays silent, and write errors are ignored.

func bell(n int) {
	for i := 0; i < n; i++ {
		os.Stdout.Write([]byte{'\a'})
	}
}

func beepClick() { bell(1) }

func beepSuccess() { bell(2) }

func beepFailure() { bell(1) }
