package store

import (
	"database/sql"
	"errors"
	"fmt"
	"log"
	"strings"

	"anotador-app/internal/model"
	"anotador-app/internal/snapshot"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type PostgresStore struct {
	db *sql.DB
}

type PostgresOptions struct {
	MigrationsDir string
}

func NewPostgresStore(dsn string, opts PostgresOptions) (*PostgresStore, error) {
	if strings.TrimSpace(dsn) == "" {
		return nil, errors.New("postgres dsn is required")
	}
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	migrationsDir := strings.TrimSpace(opts.MigrationsDir)
	if migrationsDir == "" {
		migrationsDir = "migrations/postgres"
	}
	if err := applyMigrations(db, migrationsDir); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &PostgresStore{db: db}, nil
}

func (s *PostgresStore) LoadState() model.MatchState {
	var payload string
	err := s.db.QueryRow(`SELECT payload FROM state_slots WHERE key = $1`, StateKey).Scan(&payload)
	if err != nil {
		return model.NewMatchState()
	}
	state, err := snapshot.Decode([]byte(payload))
	if err != nil {
		log.Printf("postgres: discarding malformed slot %s: %v", StateKey, err)
		return model.NewMatchState()
	}
	return state
}

func (s *PostgresStore) SaveState(state model.MatchState) error {
	data, err := snapshot.Encode(state)
	if err != nil {
		return err
	}
	_, err = s.db.Exec(`
INSERT INTO state_slots (key, payload, updated_at) VALUES ($1, $2, now())
ON CONFLICT (key) DO UPDATE SET payload = excluded.payload, updated_at = excluded.updated_at`,
		StateKey, string(data),
	)
	if err != nil {
		return fmt.Errorf("save state slot: %w", err)
	}
	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}
