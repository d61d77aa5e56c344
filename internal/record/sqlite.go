package record

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"github.com/kingrea/riseshine/internal/clock"
	"github.com/kingrea/riseshine/internal/game"
	"github.com/kingrea/riseshine/internal/logbook"
)

// SQLiteStore persists records and settings in a single SQLite file.
type SQLiteStore struct {
	db   *sql.DB
	clk  clock.Clock
	book *logbook.Logbook
}

// OpenSQLite opens or creates the database at dbPath and ensures the
// schema.
func OpenSQLite(dbPath string, clk clock.Clock, book *logbook.Logbook) (*SQLiteStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("record: ensure db dir: %w", err)
	}
	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)")
	if err != nil {
		return nil, fmt.Errorf("record: open db: %w", err)
	}
	s := &SQLiteStore{db: db, clk: clk, book: book}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("record: migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS records (
		seq        INTEGER PRIMARY KEY AUTOINCREMENT,
		id         TEXT NOT NULL UNIQUE,
		timestamp  TEXT NOT NULL,
		game       TEXT NOT NULL
	);
	CREATE TABLE IF NOT EXISTS settings (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);
	`
	_, err := s.db.Exec(schema)
	return err
}

// Append creates and persists a new record stamped with the current time.
func (s *SQLiteStore) Append(variant game.Variant) (Record, error) {
	rec := Record{
		ID:        uuid.NewString(),
		Timestamp: s.clk.Now(),
		Game:      variant,
	}
	_, err := s.db.Exec(
		`INSERT INTO records (id, timestamp, game) VALUES (?, ?, ?)`,
		rec.ID, rec.Timestamp.Format(time.RFC3339Nano), string(rec.Game),
	)
	if err != nil {
		return Record{}, fmt.Errorf("record: insert: %w", err)
	}
	return rec, nil
}

func (s *SQLiteStore) scanRecords(rows *sql.Rows) []Record {
	var history []Record
	for rows.Next() {
		var (
			id, ts, variant string
		)
		if err := rows.Scan(&id, &ts, &variant); err != nil {
			s.book.Warn("record: scan row: %v", err)
			continue
		}
		parsed, err := time.Parse(time.RFC3339Nano, ts)
		if err != nil {
			s.book.Warn("record: corrupt timestamp %q skipped: %v", ts, err)
			continue
		}
		history = append(history, Record{ID: id, Timestamp: parsed, Game: game.Variant(variant)})
	}
	return history
}

// History returns the full history in append order.
func (s *SQLiteStore) History() ([]Record, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, game FROM records ORDER BY seq`)
	if err != nil {
		return nil, fmt.Errorf("record: query history: %w", err)
	}
	defer rows.Close()
	return s.scanRecords(rows), nil
}

// TodaysRecord returns the most recently appended record if it falls on
// today's local calendar date. Same last-element semantics as the file
// backend.
func (s *SQLiteStore) TodaysRecord() (Record, bool, error) {
	rows, err := s.db.Query(`SELECT id, timestamp, game FROM records ORDER BY seq DESC LIMIT 1`)
	if err != nil {
		return Record{}, false, fmt.Errorf("record: query last: %w", err)
	}
	defer rows.Close()
	history := s.scanRecords(rows)
	if len(history) == 0 {
		return Record{}, false, nil
	}
	last := history[0]
	if !clock.SameDay(last.Timestamp, s.clk.Now()) {
		return Record{}, false, nil
	}
	return last, true, nil
}

// RemoveToday deletes every record dated today. Idempotent.
func (s *SQLiteStore) RemoveToday() error {
	history, err := s.History()
	if err != nil {
		return err
	}
	now := s.clk.Now()
	for _, rec := range history {
		if clock.SameDay(rec.Timestamp, now) {
			if _, err := s.db.Exec(`DELETE FROM records WHERE id = ?`, rec.ID); err != nil {
				return fmt.Errorf("record: delete %s: %w", rec.ID, err)
			}
		}
	}
	return nil
}

// Goal returns the stored goal time, defaulting to 08:00.
func (s *SQLiteStore) Goal() (string, error) {
	var goal string
	err := s.db.QueryRow(`SELECT value FROM settings WHERE key = 'goal'`).Scan(&goal)
	if err == sql.ErrNoRows {
		return DefaultGoal, nil
	}
	if err != nil {
		return DefaultGoal, fmt.Errorf("record: query goal: %w", err)
	}
	goal = strings.TrimSpace(goal)
	if _, _, err := ParseGoal(goal); err != nil {
		s.book.Warn("record: corrupt goal %q, using default: %v", goal, err)
		return DefaultGoal, nil
	}
	return goal, nil
}

// SetGoal validates and persists a "HH:MM" goal.
func (s *SQLiteStore) SetGoal(goal string) error {
	goal = strings.TrimSpace(goal)
	if _, _, err := ParseGoal(goal); err != nil {
		return err
	}
	_, err := s.db.Exec(
		`INSERT INTO settings (key, value) VALUES ('goal', ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		goal,
	)
	if err != nil {
		return fmt.Errorf("record: set goal: %w", err)
	}
	return nil
}

// Close releases the database handle.
func (s *SQLiteStore) Close() error { return s.db.Close() }
