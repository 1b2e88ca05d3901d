package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"anotador-app/internal/model"
	"anotador-app/internal/snapshot"

	_ "modernc.org/sqlite"
)

type SQLiteStore struct {
	db *sql.DB
}

type SQLiteOptions struct {
	MigrationsDir string
}

func NewSQLiteStore(path string, opts SQLiteOptions) (*SQLiteStore, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.New("sqlite path is required")
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	migrationsDir := strings.TrimSpace(opts.MigrationsDir)
	if migrationsDir == "" {
		migrationsDir = "migrations"
	}
	if err := applyMigrations(db, migrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

func (s *SQLiteStore) LoadState() model.MatchState {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM state_slots WHERE key = ?`, StateKey).Scan(&payload)
	if err != nil {
		return model.NewMatchState()
	}
	state, err := snapshot.Decode([]byte(payload))
	if err != nil {
		log.Printf("sqlite: discarding malformed slot %s: %v", StateKey, err)
		return model.NewMatchState()
	}
	return state
}

func (s *SQLiteStore) SaveState(state model.MatchState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO state_slots (key, payload, updated_at) VALUES (?, ?, CURRENT_TIMESTAMP)
ON CONFLICT(key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		StateKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save state slot: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
