package clock

import (
	"testing"
	"time"
)

func TestSameDay(t *testing.T) {
	base := time.Date(2026, 8, 31, 7, 30, 0, 0, time.Local)
	cases := []struct {
		name string
		a, b time.Time
		want bool
	}{
		{"same instant", base, base, true},
		{"same day different time", base, base.Add(14 * time.Hour), true},
		{"next day", base, base.AddDate(0, 0, 1), false},
		{"just before midnight vs just after",
			time.Date(2026, 8, 31, 23, 59, 59, 0, time.Local),
			time.Date(2026, 9, 1, 0, 0, 1, 0, time.Local),
			false},
		{"same date different year", base, base.AddDate(1, 0, 0), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := SameDay(tc.a, tc.b); got != tc.want {
				t.Fatalf("SameDay = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestSystemClockNow(t *testing.T) {
	before := time.Now()
	got := System{}.Now()
	after := time.Now()
	if got.Before(before) || got.After(after) {
		t.Fatalf("System.Now() = %v outside [%v, %v]", got, before, after)
	}
}
