package record

import (
	"testing"
	"time"
)

func TestParseGoal(t *testing.T) {
	cases := []struct {
		in      string
		hour    int
		minute  int
		wantErr bool
	}{
		{"08:00", 8, 0, false},
		{"23:59", 23, 59, false},
		{"0:5", 0, 5, false},
		{" 07:30 ", 7, 30, false},
		{"24:00", 0, 0, true},
		{"08:60", 0, 0, true},
		{"-1:00", 0, 0, true},
		{"0800", 0, 0, true},
		{"", 0, 0, true},
		{"ab:cd", 0, 0, true},
	}
	for _, tc := range cases {
		hour, minute, err := ParseGoal(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("ParseGoal(%q) = %d:%d, want error", tc.in, hour, minute)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseGoal(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if hour != tc.hour || minute != tc.minute {
			t.Errorf("ParseGoal(%q) = %d:%d, want %d:%d", tc.in, hour, minute, tc.hour, tc.minute)
		}
	}
}

func TestGoalMet(t *testing.T) {
	at := func(hour, minute int) Record {
		return Record{Timestamp: time.Date(2026, 8, 31, hour, minute, 0, 0, time.Local)}
	}
	cases := []struct {
		name string
		rec  Record
		goal string
		want bool
	}{
		{"before goal", at(7, 15), "08:00", true},
		{"exactly at goal", at(8, 0), "08:00", true},
		{"one minute late", at(8, 1), "08:00", false},
		{"seconds ignored", at(8, 0), "08:00", true},
		{"invalid goal never met", at(5, 0), "nope", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := GoalMet(tc.rec, tc.goal); got != tc.want {
				t.Fatalf("GoalMet = %v, want %v", got, tc.want)
			}
		})
	}
}
