package record

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/google/uuid"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/logbook"
)

const (
	historyFileName = "history.json"
	goalFileName    = "goal"
)

// FileStore keeps the history as one JSON array and the goal as a raw
// "HH:MM" text file, mirroring the two logical keys of a blob store.
// Unreadable or corrupt files degrade to empty history / default goal;
// that is logged, never surfaced.
type FileStore struct {
	dir  string
	clk  clock.Clock
	book *logbook.Logbook
	mu   sync.Mutex
}

// OpenFile creates a file-backed store rooted at dir.
func OpenFile(dir string, clk clock.Clock, book *logbook.Logbook) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("record: ensure data dir: %w", err)
	}
	return &FileStore{dir: dir, clk: clk, book: book}, nil
}

func (s *FileStore) historyPath() string { return filepath.Join(s.dir, historyFileName) }
func (s *FileStore) goalPath() string    { return filepath.Join(s.dir, goalFileName) }

func (s *FileStore) loadHistory() []Record {
	data, err := os.ReadFile(s.historyPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.book.Warn("record: read history: %v", err)
		}
		return nil
	}
	var history []Record
	if err := json.Unmarshal(data, &history); err != nil {
		s.book.Warn("record: corrupt history, starting empty: %v", err)
		return nil
	}
	return history
}

func (s *FileStore) saveHistory(history []Record) error {
	if history == nil {
		history = []Record{}
	}
	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("record: encode history: %w", err)
	}
	if err := os.WriteFile(s.historyPath(), data, 0o644); err != nil {
		return fmt.Errorf("record: write history: %w", err)
	}
	return nil
}

// Append creates and persists a new record stamped with the current time.
func (s *FileStore) Append(variant game.Variant) (Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.loadHistory()
	rec := Record{
		ID:        uuid.NewString(),
		Timestamp: s.clk.Now(),
		Game:      variant,
	}
	history = append(history, rec)
	if err := s.saveHistory(history); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// History returns the full persisted history in append order.
func (s *FileStore) History() ([]Record, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadHistory(), nil
}

// TodaysRecord returns the last record if it falls on today's local
// calendar date. A last-element check, not a scan: history is assumed to
// be appended chronologically, one per day.
func (s *FileStore) TodaysRecord() (Record, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.loadHistory()
	if len(history) == 0 {
		return Record{}, false, nil
	}
	last := history[len(history)-1]
	if !clock.SameDay(last.Timestamp, s.clk.Now()) {
		return Record{}, false, nil
	}
	return last, true, nil
}

// RemoveToday filters out every record dated today and persists the
// result. Idempotent; a no-op when nothing matches.
func (s *FileStore) RemoveToday() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	history := s.loadHistory()
	if len(history) == 0 {
		return nil
	}
	now := s.clk.Now()
	kept := history[:0]
	for _, rec := range history {
		if !clock.SameDay(rec.Timestamp, now) {
			kept = append(kept, rec)
		}
	}
	if len(kept) == len(history) {
		return nil
	}
	return s.saveHistory(kept)
}

// Goal returns the stored target wake-up time, defaulting to 08:00.
func (s *FileStore) Goal() (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := os.ReadFile(s.goalPath())
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			s.book.Warn("record: read goal: %v", err)
		}
		return DefaultGoal, nil
	}
	goal := strings.TrimSpace(string(data))
	if _, _, err := ParseGoal(goal); err != nil {
		s.book.Warn("record: corrupt goal %q, using default: %v", goal, err)
		return DefaultGoal, nil
	}
	return goal, nil
}

// SetGoal validates and persists a "HH:MM" goal.
func (s *FileStore) SetGoal(goal string) error {
	goal = strings.TrimSpace(goal)
	if _, _, err := ParseGoal(goal); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.WriteFile(s.goalPath(), []byte(goal+"\n"), 0o644); err != nil {
		return fmt.Errorf("record: write goal: %w", err)
	}
	return nil
}

// Close is a no-op for the file backend.
func (s *FileStore) Close() error { return nil }
