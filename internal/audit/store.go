// Package audit persists scoring runs so recruiters can review and export
// how candidates were scored.
package audit

import (
	"database/sql"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded scoring run.
type Entry struct {
	ID              string
	Timestamp       time.Time
	Candidate       string
	Priority        bool
	Role            string
	Score           float64
	MatchedCriteria string
	Weights         string
}

// Store manages the audit log SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the audit database at path, creating the schema when
// missing.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening audit database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS scoring_runs (
			id TEXT PRIMARY KEY,
			timestamp TEXT NOT NULL,
			candidate TEXT NOT NULL,
			priority_program INTEGER NOT NULL,
			role TEXT NOT NULL,
			fit_score REAL NOT NULL,
			matched_criteria TEXT,
			criteria_weights TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_scoring_runs_timestamp ON scoring_runs(timestamp)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}

	return nil
}

// Record stores the entry, assigning an id and timestamp when unset.
func (s *Store) Record(e *Entry) error {
	if e == nil {
		return fmt.Errorf("entry is required")
	}

	if e.ID == "" {
		e.ID = uuid.NewString()
	}
	if e.Timestamp.IsZero() {
		e.Timestamp = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO scoring_runs
			(id, timestamp, candidate, priority_program, role, fit_score, matched_criteria, criteria_weights)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		e.ID,
		e.Timestamp.Format(time.RFC3339),
		e.Candidate,
		boolToInt(e.Priority),
		e.Role,
		e.Score,
		e.MatchedCriteria,
		e.Weights,
	)
	if err != nil {
		return fmt.Errorf("recording scoring run: %w", err)
	}

	return nil
}

// List returns all recorded runs in chronological order.
func (s *Store) List() ([]*Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, timestamp, candidate, priority_program, role, fit_score, matched_criteria, criteria_weights
		 FROM scoring_runs ORDER BY timestamp, id`,
	)
	if err != nil {
		return nil, fmt.Errorf("listing scoring runs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var (
			e        Entry
			ts       string
			priority int
		)
		if err := rows.Scan(&e.ID, &ts, &e.Candidate, &priority, &e.Role, &e.Score, &e.MatchedCriteria, &e.Weights); err != nil {
			return nil, fmt.Errorf("scanning scoring run: %w", err)
		}

		parsed, err := time.Parse(time.RFC3339, ts)
		if err != nil {
			return nil, fmt.Errorf("parsing timestamp %q: %w", ts, err)
		}

		e.Timestamp = parsed
		e.Priority = priority != 0
		entries = append(entries, &e)
	}

	return entries, rows.Err()
}

// ExportCSV writes all recorded runs as CSV, mirroring the audit log columns
// recruiters download.
func (s *Store) ExportCSV(w io.Writer) error {
	entries, err := s.List()
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)
	header := []string{
		"timestamp", "candidate_id", "candidate_name", "priority_program",
		"role_title", "fit_score", "matched_criteria", "criteria_weights_json",
	}
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, e := range entries {
		record := []string{
			e.Timestamp.Format(time.RFC3339),
			e.ID,
			e.Candidate,
			strconv.FormatBool(e.Priority),
			e.Role,
			strconv.FormatFloat(e.Score*100, 'f', 2, 64),
			e.MatchedCriteria,
			e.Weights,
		}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing csv record: %w", err)
		}
	}

	cw.Flush()
	return cw.Error()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
