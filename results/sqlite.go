package results

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite" // pure go sqlite driver
)

// Store persists trial records in a single SQLite table.
type Store struct {
	mu     sync.Mutex
	db     *sql.DB
	closed bool
}

// NewStore opens (or creates) the SQLite database at path and ensures the
// trials table exists.
func NewStore(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("results: open sqlite: %w", err)
	}
	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS trials (
		run_id      TEXT NOT NULL,
		label       TEXT NOT NULL,
		family      TEXT NOT NULL,
		lx          INTEGER NOT NULL,
		ly          INTEGER NOT NULL,
		lz          INTEGER NOT NULL,
		probability REAL NOT NULL,
		decoder     TEXT NOT NULL,
		trial       INTEGER NOT NULL,
		success     INTEGER NOT NULL
	)`); err != nil {
		_ = db.Close()

		return nil, fmt.Errorf("results: create trials table: %w", err)
	}

	return &Store{db: db}, nil
}

// Write inserts one trial record.
func (s *Store) Write(rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	_, err := s.db.Exec(
		`INSERT INTO trials (run_id, label, family, lx, ly, lz, probability, decoder, trial, success)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.RunID, rec.Label, rec.Family, rec.Lx, rec.Ly, rec.Lz,
		rec.Probability, rec.Decoder, rec.Trial, boolToInt(rec.Success),
	)
	if err != nil {
		return fmt.Errorf("results: insert trial: %w", err)
	}

	return nil
}

// Summary is the aggregate of one run point stored in the trials table.
type Summary struct {
	RunID       string
	Family      string
	Lx, Ly, Lz  int
	Probability float64
	Decoder     string
	Trials      int
	Failures    int
}

// FailureRate is the logical failure estimate of the summarized point.
func (s Summary) FailureRate() float64 {
	if s.Trials == 0 {
		return 0
	}

	return float64(s.Failures) / float64(s.Trials)
}

// Summarize aggregates the stored trials of one run, grouped by run point,
// ordered by family, size and probability.
func (s *Store) Summarize(runID string) ([]Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil, ErrClosed
	}
	rows, err := s.db.Query(
		`SELECT run_id, family, lx, ly, lz, probability, decoder,
		        COUNT(*), COUNT(*) - SUM(success)
		 FROM trials WHERE run_id = ?
		 GROUP BY run_id, family, lx, ly, lz, probability, decoder
		 ORDER BY family, lx, ly, lz, probability`, runID)
	if err != nil {
		return nil, fmt.Errorf("results: summarize: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []Summary
	for rows.Next() {
		var sm Summary
		if err := rows.Scan(&sm.RunID, &sm.Family, &sm.Lx, &sm.Ly, &sm.Lz,
			&sm.Probability, &sm.Decoder, &sm.Trials, &sm.Failures); err != nil {
			return nil, fmt.Errorf("results: scan summary: %w", err)
		}
		out = append(out, sm)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("results: summarize: %w", err)
	}

	return out, nil
}

// Close closes the database. Close is idempotent.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true

	return s.db.Close()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}

	return 0
}
