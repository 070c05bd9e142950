package document

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const createDocumentsTable = `
CREATE TABLE IF NOT EXISTS documents (
	name       TEXT PRIMARY KEY,
	body       JSONB NOT NULL,
	updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
)`

// PostgresConfig holds configuration for the PostgreSQL document store
type PostgresConfig struct {
	// Pool is an open connection pool
	Pool *pgxpool.Pool
}

// postgresStore implements the Store interface with one row per document
type postgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a new PostgreSQL-backed document store and ensures its table exists
func NewPostgres(ctx context.Context, cfg *PostgresConfig) (*postgresStore, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}

	if cfg.Pool == nil {
		return nil, errors.New("connection pool cannot be nil")
	}

	if _, err := cfg.Pool.Exec(ctx, createDocumentsTable); err != nil {
		return nil, fmt.Errorf("creating documents table: %w", err)
	}

	return &postgresStore{
		pool: cfg.Pool,
	}, nil
}

// Load reads a document row
func (p *postgresStore) Load(ctx context.Context, input *LoadInput) error {
	if input == nil || input.Target == nil {
		return errors.New("input and target cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	var body []byte
	err := p.pool.QueryRow(ctx, `SELECT body FROM documents WHERE name = $1`, input.Name).Scan(&body)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrDocumentNotFound
		}
		return fmt.Errorf("querying document %s: %w", input.Name, err)
	}

	if err := json.Unmarshal(body, input.Target); err != nil {
		return fmt.Errorf("failed to unmarshal document %s: %w", input.Name, err)
	}

	return nil
}

// Save upserts a document row in a single statement
func (p *postgresStore) Save(ctx context.Context, input *SaveInput) error {
	if input == nil || input.Document == nil {
		return errors.New("input and document cannot be nil")
	}
	if err := validateName(input.Name); err != nil {
		return err
	}

	body, err := json.Marshal(input.Document)
	if err != nil {
		return fmt.Errorf("failed to marshal document %s: %w", input.Name, err)
	}

	_, err = p.pool.Exec(ctx, `
		INSERT INTO documents (name, body, updated_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (name) DO UPDATE
		SET body = EXCLUDED.body, updated_at = EXCLUDED.updated_at
	`, input.Name, body)
	if err != nil {
		return fmt.Errorf("saving document %s: %w", input.Name, err)
	}

	return nil
}
