// Package storage provides SQLite-based persistence for study session
// results. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection for session persistence.
type Store struct {
	db *sql.DB
}

// SessionResult is one finished study session.
type SessionResult struct {
	ID               int64
	ParticipantID    string
	Condition        string // decision strategy name
	Resources        int
	Kills            int
	Deaths           int
	Health           float64
	Completed        bool
	EndReason        string // "completed", "timeout", "quit"
	DurationSecs     float64
	VerificationCode string
	CreatedAt        time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS session_results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			participant_id TEXT NOT NULL,
			condition TEXT NOT NULL,
			resources INTEGER NOT NULL DEFAULT 0,
			kills INTEGER NOT NULL DEFAULT 0,
			deaths INTEGER NOT NULL DEFAULT 0,
			health REAL NOT NULL DEFAULT 0,
			completed INTEGER NOT NULL DEFAULT 0,
			end_reason TEXT NOT NULL,
			duration_secs REAL NOT NULL DEFAULT 0,
			verification_code TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_session_results_participant ON session_results(participant_id);
		CREATE INDEX IF NOT EXISTS idx_session_results_condition ON session_results(condition);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// SaveSession records a finished session.
// Returns the ID of the inserted record.
func (s *Store) SaveSession(r SessionResult) (int64, error) {
	result, err := s.db.Exec(
		`INSERT INTO session_results
		 (participant_id, condition, resources, kills, deaths, health,
		  completed, end_reason, duration_secs, verification_code)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.ParticipantID, r.Condition, r.Resources, r.Kills, r.Deaths, r.Health,
		r.Completed, r.EndReason, r.DurationSecs, r.VerificationCode,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot save session: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}

	return id, nil
}

// RecentSessions retrieves the latest N sessions, newest first. An empty
// participant ID returns sessions for everyone.
func (s *Store) RecentSessions(participantID string, limit int) ([]SessionResult, error) {
	if limit <= 0 {
		limit = 10
	}

	query := `SELECT id, participant_id, condition, resources, kills, deaths,
	                 health, completed, end_reason, duration_secs,
	                 verification_code, created_at
	          FROM session_results`
	args := []any{}
	if participantID != "" {
		query += " WHERE participant_id = ?"
		args = append(args, participantID)
	}
	query += " ORDER BY id DESC LIMIT ?"
	args = append(args, limit)

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query sessions: %w", err)
	}
	defer rows.Close()

	var entries []SessionResult
	for rows.Next() {
		var e SessionResult
		var createdAt any
		if err := rows.Scan(&e.ID, &e.ParticipantID, &e.Condition, &e.Resources,
			&e.Kills, &e.Deaths, &e.Health, &e.Completed, &e.EndReason,
			&e.DurationSecs, &e.VerificationCode, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := createdAt.(type) {
		case time.Time:
			e.CreatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.CreatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// CompletionStats summarizes sessions per condition.
type CompletionStats struct {
	Condition string
	Sessions  int
	Completed int
}

// StatsByCondition aggregates completion counts for every condition that
// has recorded sessions.
func (s *Store) StatsByCondition() ([]CompletionStats, error) {
	rows, err := s.db.Query(
		`SELECT condition, COUNT(*), SUM(completed)
		 FROM session_results
		 GROUP BY condition
		 ORDER BY condition`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query stats: %w", err)
	}
	defer rows.Close()

	var stats []CompletionStats
	for rows.Next() {
		var st CompletionStats
		if err := rows.Scan(&st.Condition, &st.Sessions, &st.Completed); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stats = append(stats, st)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return stats, nil
}
