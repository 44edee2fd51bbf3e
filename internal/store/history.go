package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	_ "github.com/mattn/go-sqlite3"

	mdwerror "github.com/msto63/roboarena/foundation/core/error"
	"github.com/msto63/roboarena/internal/arena"
	"github.com/msto63/roboarena/internal/match"
)

// Record is one stored match
type Record struct {
	ID         string             `json:"id"`
	Scenario   string             `json:"scenario"`
	StartedAt  time.Time          `json:"started_at"`
	FinishedAt time.Time          `json:"finished_at"`
	ProgramA   string             `json:"program_a"`
	ProgramB   string             `json:"program_b"`
	Winner     string             `json:"winner,omitempty"`
	Ticks      int                `json:"ticks"`
	Reason     string             `json:"reason"`
	Error      string             `json:"error,omitempty"`
	Robots     []arena.RobotState `json:"robots,omitempty"`
}

// FromResult converts a match result into a record
func FromResult(res *match.Result) Record {
	rec := Record{
		ID:         res.ID,
		Scenario:   res.Scenario,
		StartedAt:  res.StartedAt,
		FinishedAt: res.FinishedAt,
		Winner:     res.Winner,
		Ticks:      res.Ticks,
		Reason:     string(res.Reason),
		Robots:     res.Robots,
	}
	if len(res.Programs) > 0 {
		rec.ProgramA = res.Programs[0]
	}
	if len(res.Programs) > 1 {
		rec.ProgramB = res.Programs[1]
	}
	if res.Err != nil {
		rec.Error = res.Err.Error()
	}
	return rec
}

// Filter narrows List results
type Filter struct {
	Winner string
	Reason string
	Limit  int
	Offset int
}

// HistoryStore keeps finished matches in SQLite
type HistoryStore struct {
	db *sql.DB
	mu sync.RWMutex
}

// Config holds configuration for the history store
type Config struct {
	Path string
}

// DefaultConfig returns default configuration
func DefaultConfig() Config {
	return Config{
		Path: "./data/history.db",
	}
}

// Open creates or opens the history database
func Open(cfg Config) (*HistoryStore, error) {
	if cfg.Path == "" {
		cfg = DefaultConfig()
	}

	if cfg.Path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(cfg.Path), 0755); err != nil {
			return nil, dbError(err, "failed to create directory", "store.Open")
		}
	}

	db, err := sql.Open("sqlite3", cfg.Path+"?_journal_mode=WAL&_synchronous=NORMAL")
	if err != nil {
		return nil, dbError(err, "failed to open database", "store.Open")
	}
	// a single connection keeps :memory: databases alive across calls
	db.SetMaxOpenConns(1)

	s := &HistoryStore{db: db}
	if err := s.initSchema(); err != nil {
		db.Close()
		return nil, dbError(err, "failed to initialize schema", "store.Open")
	}
	return s, nil
}

func (s *HistoryStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS matches (
		id TEXT PRIMARY KEY,
		scenario TEXT NOT NULL,
		started_at DATETIME NOT NULL,
		finished_at DATETIME NOT NULL,
		program_a TEXT NOT NULL,
		program_b TEXT NOT NULL,
		winner TEXT,
		ticks INTEGER NOT NULL,
		reason TEXT NOT NULL,
		error TEXT,
		robots TEXT
	);

	CREATE INDEX IF NOT EXISTS idx_matches_started ON matches(started_at DESC);
	CREATE INDEX IF NOT EXISTS idx_matches_winner ON matches(winner);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Save stores a record. Saving the same ID twice replaces the earlier row.
func (s *HistoryStore) Save(ctx context.Context, rec Record) error {
	if rec.ID == "" {
		return mdwerror.New("record has no id").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("store.Save")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	var robotsJSON []byte
	if rec.Robots != nil {
		robotsJSON, _ = json.Marshal(rec.Robots)
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT OR REPLACE INTO matches
			(id, scenario, started_at, finished_at, program_a, program_b, winner, ticks, reason, error, robots)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.ID, rec.Scenario, rec.StartedAt, rec.FinishedAt, rec.ProgramA, rec.ProgramB,
		rec.Winner, rec.Ticks, rec.Reason, rec.Error, robotsJSON)
	if err != nil {
		return dbError(err, "failed to insert match", "store.Save").WithDetail("id", rec.ID)
	}
	return nil
}

// List returns stored matches, newest first
func (s *HistoryStore) List(ctx context.Context, filter Filter) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	query := `SELECT id, scenario, started_at, finished_at, program_a, program_b, winner, ticks, reason, error, robots
		FROM matches WHERE 1=1`
	var args []interface{}

	if filter.Winner != "" {
		query += " AND winner = ?"
		args = append(args, filter.Winner)
	}
	if filter.Reason != "" {
		query += " AND reason = ?"
		args = append(args, filter.Reason)
	}

	query += " ORDER BY started_at DESC"

	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
		if filter.Offset > 0 {
			query += " OFFSET ?"
			args = append(args, filter.Offset)
		}
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, dbError(err, "failed to query matches", "store.List")
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, dbError(err, "failed to scan match", "store.List")
		}
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, dbError(err, "failed to read matches", "store.List")
	}
	return records, nil
}

// Get returns a single match by ID
func (s *HistoryStore) Get(ctx context.Context, id string) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	row := s.db.QueryRowContext(ctx, `
		SELECT id, scenario, started_at, finished_at, program_a, program_b, winner, ticks, reason, error, robots
		FROM matches WHERE id = ?
	`, id)

	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return Record{}, mdwerror.Newf("match %s not found", id).
			WithCode(mdwerror.CodeNotFound).
			WithOperation("store.Get")
	}
	if err != nil {
		return Record{}, dbError(err, "failed to read match", "store.Get").WithDetail("id", id)
	}
	return rec, nil
}

// Stats summarises the stored history
type Stats struct {
	Matches int
	Draws   int
	Wins    map[string]int
}

// Stats counts matches and wins per robot
func (s *HistoryStore) Stats(ctx context.Context) (*Stats, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, `SELECT COALESCE(winner, ''), COUNT(*) FROM matches GROUP BY winner`)
	if err != nil {
		return nil, dbError(err, "failed to query stats", "store.Stats")
	}
	defer rows.Close()

	stats := &Stats{Wins: make(map[string]int)}
	for rows.Next() {
		var winner string
		var n int
		if err := rows.Scan(&winner, &n); err != nil {
			return nil, dbError(err, "failed to scan stats", "store.Stats")
		}
		stats.Matches += n
		if winner == "" {
			stats.Draws += n
		} else {
			stats.Wins[winner] += n
		}
	}
	return stats, rows.Err()
}

// Prune removes matches that started before the cutoff
func (s *HistoryStore) Prune(ctx context.Context, olderThan time.Duration) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := time.Now().Add(-olderThan)
	result, err := s.db.ExecContext(ctx, "DELETE FROM matches WHERE started_at < ?", cutoff)
	if err != nil {
		return 0, dbError(err, "failed to prune matches", "store.Prune")
	}
	return result.RowsAffected()
}

// Close closes the database connection
func (s *HistoryStore) Close() error {
	return s.db.Close()
}

type scanner interface {
	Scan(dest ...interface{}) error
}

func scanRecord(sc scanner) (Record, error) {
	var rec Record
	var winner, errText, robotsJSON sql.NullString

	if err := sc.Scan(&rec.ID, &rec.Scenario, &rec.StartedAt, &rec.FinishedAt, &rec.ProgramA,
		&rec.ProgramB, &winner, &rec.Ticks, &rec.Reason, &errText, &robotsJSON); err != nil {
		return Record{}, err
	}

	rec.Winner = winner.String
	rec.Error = errText.String
	if robotsJSON.Valid && robotsJSON.String != "" {
		json.Unmarshal([]byte(robotsJSON.String), &rec.Robots)
	}
	return rec, nil
}

func dbError(err error, message, op string) *mdwerror.Error {
	return mdwerror.Wrap(err, message).
		WithCode(mdwerror.CodeDatabaseError).
		WithOperation(op)
}
