// internal/persistence/postgres_store.go
package persistence

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	_ "github.com/lib/pq" // PostgreSQL driver
)

// PostgresStore хранит сохранения в PostgreSQL. Прогресс и забег лежат
// в JSONB целиком, отдельными колонками вынесено только то, по чему ищем.
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore подключается к базе и создаёт таблицы при необходимости.
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}
	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}
	log.Println("Connected to PostgreSQL progress store")
	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS survival_progress (
		profile_id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		data JSONB NOT NULL,
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS survival_runs (
		profile_id TEXT PRIMARY KEY REFERENCES survival_progress(profile_id) ON DELETE CASCADE,
		run_id TEXT NOT NULL,
		data JSONB NOT NULL,
		saved_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`
	_, err := ps.db.Exec(schema)
	return err
}

func (ps *PostgresStore) SaveProgress(progress *Progress) error {
	if progress.ProfileID == "" {
		return fmt.Errorf("progress without profile id")
	}
	p := progress.Clone()
	p.UpdatedAt = time.Now().UTC()
	data, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("failed to marshal progress: %w", err)
	}

	query := `
	INSERT INTO survival_progress (profile_id, username, data, updated_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (profile_id)
	DO UPDATE SET username = $2, data = $3, updated_at = $4
	`
	if _, err := ps.db.Exec(query, p.ProfileID, p.Username, string(data), p.UpdatedAt); err != nil {
		return fmt.Errorf("failed to save progress: %w", err)
	}
	return nil
}

func (ps *PostgresStore) LoadProgress(profileID string) (*Progress, error) {
	row := ps.db.QueryRow(`SELECT data FROM survival_progress WHERE profile_id = $1`, profileID)
	return scanProgress(row, profileID)
}

func (ps *PostgresStore) LatestProgress() (*Progress, error) {
	row := ps.db.QueryRow(`SELECT data FROM survival_progress ORDER BY updated_at DESC LIMIT 1`)
	return scanProgress(row, "latest")
}

func scanProgress(row *sql.Row, key string) (*Progress, error) {
	var data string
	if err := row.Scan(&data); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("progress %s: %w", key, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load progress: %w", err)
	}
	var p Progress
	if err := json.Unmarshal([]byte(data), &p); err != nil {
		return nil, fmt.Errorf("failed to unmarshal progress: %w", err)
	}
	return &p, nil
}

func (ps *PostgresStore) SaveRun(run *RunSnapshot) error {
	r := run.clone()
	r.SavedAt = time.Now().UTC()
	data, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("failed to marshal run: %w", err)
	}

	query := `
	INSERT INTO survival_runs (profile_id, run_id, data, saved_at)
	VALUES ($1, $2, $3, $4)
	ON CONFLICT (profile_id)
	DO UPDATE SET run_id = $2, data = $3, saved_at = $4
	`
	if _, err := ps.db.Exec(query, r.ProfileID, r.ID, string(data), r.SavedAt); err != nil {
		return fmt.Errorf("failed to save run: %w", err)
	}
	return nil
}

func (ps *PostgresStore) LoadRun(profileID string) (*RunSnapshot, error) {
	var data string
	err := ps.db.QueryRow(`SELECT data FROM survival_runs WHERE profile_id = $1`, profileID).Scan(&data)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("run of %s: %w", profileID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to load run: %w", err)
	}
	var r RunSnapshot
	if err := json.Unmarshal([]byte(data), &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal run: %w", err)
	}
	return &r, nil
}

func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}
