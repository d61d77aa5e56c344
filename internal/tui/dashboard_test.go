package tui

import (
	"testing"
	"time"

	"github.com/kingrea/riseshine/internal/record"
)

func TestCountStreak(t *testing.T) {
	now := time.Date(2026, 8, 31, 7, 30, 0, 0, time.Local)
	clk := &fixedClock{now: now}
	day := func(offset int) record.Record {
		return record.Record{Timestamp: now.AddDate(0, 0, offset)}
	}

	cases := []struct {
		name    string
		history []record.Record
		want    int
	}{
		{"empty", nil, 0},
		{"today only", []record.Record{day(0)}, 1},
		{"yesterday only", []record.Record{day(-1)}, 1},
		{"three consecutive days", []record.Record{day(-2), day(-1), day(0)}, 3},
		{"gap breaks the run", []record.Record{day(-5), day(-1), day(0)}, 2},
		{"stale streak", []record.Record{day(-4), day(-3)}, 0},
		{"duplicate day does not break", []record.Record{day(-1), day(-1), day(0)}, 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := countStreak(tc.history, clk); got != tc.want {
				t.Fatalf("countStreak = %d, want %d", got, tc.want)
			}
		})
	}
}
