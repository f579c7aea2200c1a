// Package history records classifier and price invocations in a small
// sqlite table so past sessions can be reviewed.
package history

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/4rankng/tradeassist/pkg/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS invocations (
	id         TEXT PRIMARY KEY,
	created_at TIMESTAMP NOT NULL,
	ticker     TEXT NOT NULL DEFAULT '',
	token      TEXT NOT NULL DEFAULT '',
	model      TEXT NOT NULL DEFAULT '',
	days       INTEGER NOT NULL DEFAULT 0,
	agents     INTEGER NOT NULL DEFAULT 0
);
CREATE INDEX IF NOT EXISTS idx_invocations_created_at ON invocations(created_at);
`

// Invocation is one recorded command run.
type Invocation struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
	Ticker    string    `json:"ticker"`
	Token     string    `json:"token"`
	Model     string    `json:"model"`
	Days      int       `json:"days"`
	Agents    int       `json:"agents"`
}

// Store is the sqlite-backed invocation history.
type Store struct {
	db *sql.DB
}

// Open opens (and migrates) the history database at dbPath.
func Open(dbPath string) (*Store, error) {
	db, err := sqlite.Open(dbPath)
	if err != nil {
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migrate history schema: %w", err)
	}
	return &Store{db: db}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Append records one invocation. ID and timestamp are filled when empty.
func (s *Store) Append(inv Invocation) (*Invocation, error) {
	if inv.ID == "" {
		inv.ID = uuid.NewString()
	}
	if inv.CreatedAt.IsZero() {
		inv.CreatedAt = time.Now()
	}

	_, err := s.db.Exec(
		`INSERT INTO invocations (id, created_at, ticker, token, model, days, agents)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		inv.ID, inv.CreatedAt, inv.Ticker, inv.Token, inv.Model, inv.Days, inv.Agents,
	)
	if err != nil {
		return nil, fmt.Errorf("insert invocation: %w", err)
	}
	return &inv, nil
}

// Recent returns the newest invocations, most recent first.
func (s *Store) Recent(limit int) ([]Invocation, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.Query(
		`SELECT id, created_at, ticker, token, model, days, agents
		 FROM invocations ORDER BY created_at DESC, id LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query invocations: %w", err)
	}
	defer rows.Close()

	var invocations []Invocation
	for rows.Next() {
		var inv Invocation
		if err := rows.Scan(&inv.ID, &inv.CreatedAt, &inv.Ticker, &inv.Token,
			&inv.Model, &inv.Days, &inv.Agents); err != nil {
			return nil, fmt.Errorf("scan invocation: %w", err)
		}
		invocations = append(invocations, inv)
	}
	return invocations, rows.Err()
}
