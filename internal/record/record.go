// Package record owns the persisted wake-up history and the goal time.
// It is the sole writer of its storage; backends follow a strict
// read-then-overwrite pattern, acceptable for a single local writer.
package record

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/kingrea/riseshine/internal/game"
)

// DefaultGoal is used whenever no goal has been stored.
const DefaultGoal = "08:00"

// Record marks one successful wake-up verification. Immutable after
// creation; removed only by RemoveToday.
type Record struct {
	ID        string       `json:"id"`
	Timestamp time.Time    `json:"timestamp"`
	Game      game.Variant `json:"gamePlayed"`
}

// Store is the daily record store contract.
//
// Append always creates a record with the current timestamp; appending
// at most once per calendar day is the caller's responsibility — the
// orchestrator only offers the wake-up action while TodaysRecord is
// absent. TodaysRecord checks the last element only, which assumes
// chronological one-per-day appends.
type Store interface {
	Append(variant game.Variant) (Record, error)
	History() ([]Record, error)
	TodaysRecord() (Record, bool, error)
	RemoveToday() error
	Goal() (string, error)
	SetGoal(goal string) error
	Close() error
}

// ParseGoal splits a "HH:MM" 24-hour goal string.
func ParseGoal(goal string) (hour, minute int, err error) {
	parts := strings.SplitN(strings.TrimSpace(goal), ":", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("record: goal %q is not HH:MM", goal)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("record: goal %q has invalid hour", goal)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("record: goal %q has invalid minute", goal)
	}
	return hour, minute, nil
}

// GoalMet reports whether the record's local time of day is at or before
// the goal time.
func GoalMet(r Record, goal string) bool {
	hour, minute, err := ParseGoal(goal)
	if err != nil {
		return false
	}
	ts := r.Timestamp.Local()
	return ts.Hour()*60+ts.Minute() <= hour*60+minute
}
