package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is a Store backed by a pgx connection pool. It is optional
// plumbing for deployments that want records to survive restarts; the
// analysis engine never touches it directly.
type Postgres struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool, verifies it and ensures the
// record tables exist.
func ConnectPostgres(ctx context.Context, databaseURL string) (*Postgres, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.ensureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

// Close closes the connection pool.
func (p *Postgres) Close() {
	if p.pool != nil {
		p.pool.Close()
	}
}

func (p *Postgres) ensureSchema(ctx context.Context) error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS companies (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			requirements JSONB NOT NULL DEFAULT '{}'
		)`,
		`CREATE TABLE IF NOT EXISTS candidates (
			id BIGINT PRIMARY KEY,
			name TEXT NOT NULL,
			resume_text TEXT NOT NULL DEFAULT ''
		)`,
	}
	for _, stmt := range stmts {
		if _, err := p.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to ensure schema: %w", err)
		}
	}
	return nil
}

// UpsertCompany creates or replaces a company record.
func (p *Postgres) UpsertCompany(ctx context.Context, c Company) error {
	reqJSON, err := json.Marshal(c.Requirements)
	if err != nil {
		return fmt.Errorf("failed to marshal requirements: %w", err)
	}

	_, err = p.pool.Exec(ctx,
		`INSERT INTO companies (id, name, requirements)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = $2, requirements = $3`,
		c.ID, c.Name, reqJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert company %d: %w", c.ID, err)
	}
	return nil
}

// GetCompany returns the company with the given id or ErrNotFound.
func (p *Postgres) GetCompany(ctx context.Context, id int) (*Company, error) {
	var c Company
	var reqJSON []byte
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, requirements FROM companies WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &reqJSON)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get company %d: %w", id, err)
	}

	if err := decodeRequirements(reqJSON, &c); err != nil {
		return nil, err
	}
	return &c, nil
}

// decodeRequirements parses a stored requirements JSON column into the
// company record. Get and List use the same path so a corrupt row surfaces
// identically from both.
func decodeRequirements(raw []byte, c *Company) error {
	if err := json.Unmarshal(raw, &c.Requirements); err != nil {
		return fmt.Errorf("failed to unmarshal requirements for company %d: %w", c.ID, err)
	}
	return nil
}

// ListCompanies returns all companies ordered by id.
func (p *Postgres) ListCompanies(ctx context.Context) ([]Company, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, requirements FROM companies ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list companies: %w", err)
	}
	defer rows.Close()

	var out []Company
	for rows.Next() {
		var c Company
		var reqJSON []byte
		if err := rows.Scan(&c.ID, &c.Name, &reqJSON); err != nil {
			return nil, fmt.Errorf("failed to scan company: %w", err)
		}
		if err := decodeRequirements(reqJSON, &c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// UpsertCandidate creates or replaces a candidate record.
func (p *Postgres) UpsertCandidate(ctx context.Context, c Candidate) error {
	_, err := p.pool.Exec(ctx,
		`INSERT INTO candidates (id, name, resume_text)
		 VALUES ($1, $2, $3)
		 ON CONFLICT (id) DO UPDATE SET name = $2, resume_text = $3`,
		c.ID, c.Name, c.ResumeText,
	)
	if err != nil {
		return fmt.Errorf("failed to upsert candidate %d: %w", c.ID, err)
	}
	return nil
}

// GetCandidate returns the candidate with the given id or ErrNotFound.
func (p *Postgres) GetCandidate(ctx context.Context, id int) (*Candidate, error) {
	var c Candidate
	err := p.pool.QueryRow(ctx,
		`SELECT id, name, resume_text FROM candidates WHERE id = $1`, id,
	).Scan(&c.ID, &c.Name, &c.ResumeText)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get candidate %d: %w", id, err)
	}
	return &c, nil
}

// ListCandidates returns all candidates ordered by id.
func (p *Postgres) ListCandidates(ctx context.Context) ([]Candidate, error) {
	rows, err := p.pool.Query(ctx, `SELECT id, name, resume_text FROM candidates ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to list candidates: %w", err)
	}
	defer rows.Close()

	var out []Candidate
	for rows.Next() {
		var c Candidate
		if err := rows.Scan(&c.ID, &c.Name, &c.ResumeText); err != nil {
			return nil, fmt.Errorf("failed to scan candidate: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}
