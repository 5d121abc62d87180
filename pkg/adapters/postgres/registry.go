// Package postgres provides question and notation registries backed by PostgreSQL.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"
	"github.com/neon-law-foundation/notation/pkg/ports"
)

var (
	_ ports.BatchQuestionRegistry = (*Registry)(nil)
	_ ports.NotationRegistry      = (*Registry)(nil)
)

// Schema creates the tables the registry reads and SaveNotation writes.
const Schema = `
CREATE TABLE IF NOT EXISTS questions (
	code TEXT PRIMARY KEY
);
CREATE TABLE IF NOT EXISTS notations (
	id                BIGSERIAL PRIMARY KEY,
	code              TEXT NOT NULL,
	title             TEXT NOT NULL DEFAULT '',
	flow              JSONB,
	alignment         JSONB,
	document_mappings JSONB,
	changelog         JSONB
);
CREATE INDEX IF NOT EXISTS notations_code_idx ON notations (code);
`

// Registry implements ports.BatchQuestionRegistry and ports.NotationRegistry in PostgreSQL.
type Registry struct {
	db *sql.DB
}

// New wraps an open database handle.
func New(db *sql.DB) *Registry {
	return &Registry{db: db}
}

// Open connects with the lib/pq driver. The connection is verified lazily.
func Open(dsn string) (*Registry, error) {
	connector, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("invalid postgres dsn: %w", err)
	}
	return New(sql.OpenDB(connector)), nil
}

// Migrate creates the registry tables if they do not exist.
func (r *Registry) Migrate(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, Schema); err != nil {
		return fmt.Errorf("migrate registry tables: %w", err)
	}
	return nil
}

// Exists reports whether a question with code exists.
func (r *Registry) Exists(ctx context.Context, code string) (bool, error) {
	var ok bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM questions WHERE code = $1)`, code).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("check question: %w", err)
	}
	return ok, nil
}

// ExistsAll resolves codes in one round trip using = ANY($1).
func (r *Registry) ExistsAll(ctx context.Context, codes []string) (map[string]bool, error) {
	found := make(map[string]bool, len(codes))
	if len(codes) == 0 {
		return found, nil
	}
	for _, c := range codes {
		found[c] = false
	}

	rows, err := r.db.QueryContext(ctx, `SELECT code FROM questions WHERE code = ANY($1)`, pq.Array(codes))
	if err != nil {
		return nil, fmt.Errorf("check questions batch: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var code string
		if err := rows.Scan(&code); err != nil {
			return nil, fmt.Errorf("scan question code: %w", err)
		}
		found[code] = true
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("check questions batch: %w", err)
	}
	return found, nil
}

// CountByCode returns how many notations use code.
func (r *Registry) CountByCode(ctx context.Context, code string) (int, error) {
	var n int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM notations WHERE code = $1`, code).Scan(&n); err != nil {
		return 0, fmt.Errorf("count notations: %w", err)
	}
	return n, nil
}

// Ping verifies the connection.
func (r *Registry) Ping(ctx context.Context) error {
	return r.db.PingContext(ctx)
}

// Close closes the database handle.
func (r *Registry) Close() error {
	return r.db.Close()
}
