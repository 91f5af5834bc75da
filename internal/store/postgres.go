package store

import (
	"context"
	_ "embed"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/revlytics/lead-insights-service/internal/models"
)

// schemaSQL is embedded so the service can self-bootstrap its database schema.
//
//go:embed schema.sql
var schemaSQL string

// PostgresStore is the durable persistence layer for leads and events.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a connection pool and fails fast if DB is unreachable.
func NewPostgresStore(dbURL string) (*PostgresStore, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		return nil, err
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return &PostgresStore{pool: pool}, nil
}

// EnsureSchema applies schema.sql. Safe to run multiple times.
func (p *PostgresStore) EnsureSchema() error {
	_, err := p.pool.Exec(context.Background(), schemaSQL)
	return err
}

// Ping is used by readiness endpoint to validate DB connectivity.
func (p *PostgresStore) Ping(ctx context.Context) error {
	return p.pool.Ping(ctx)
}

// Close shuts down the connection pool.
func (p *PostgresStore) Close() {
	p.pool.Close()
}

// CountLeads reports the number of stored leads. The seed loader uses it to
// decide whether the one-time import should run.
func (p *PostgresStore) CountLeads(ctx context.Context) (int64, error) {
	var count int64
	err := p.pool.QueryRow(ctx, `SELECT COUNT(*) FROM leads`).Scan(&count)
	return count, err
}

// InsertLeads writes the full batch inside one transaction, committed once at
// the end. A failure anywhere rolls back everything, so the table is never
// left partially seeded.
func (p *PostgresStore) InsertLeads(ctx context.Context, leads []models.Lead) error {
	tx, err := p.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, l := range leads {
		_, err := tx.Exec(ctx, `
			INSERT INTO leads(id, name, company, industry, size, source, created_at)
			VALUES ($1,$2,$3,$4,$5,$6,$7)
		`, l.ID, l.Name, l.Company, l.Industry, l.Size, l.Source, l.CreatedAt)
		if err != nil {
			return fmt.Errorf("insert lead %d: %w", l.ID, err)
		}
	}

	return tx.Commit(ctx)
}

// ListLeads returns leads matching the filter, ascending by id. Zero-valued
// filter fields impose no constraint; active filters compose with AND.
//
// Seed ids ascend in file order, so ORDER BY id reproduces insertion order.
func (p *PostgresStore) ListLeads(ctx context.Context, f models.LeadFilter) ([]models.Lead, error) {
	q := `SELECT id, name, company, industry, size, source, created_at FROM leads`
	args := []any{}

	if f.Industry != "" {
		args = append(args, f.Industry)
		q += fmt.Sprintf(" WHERE industry = $%d", len(args))
	}
	if f.MinSize > 0 {
		args = append(args, f.MinSize)
		clause := " WHERE"
		if len(args) > 1 {
			clause = " AND"
		}
		q += fmt.Sprintf("%s size >= $%d", clause, len(args))
	}
	q += ` ORDER BY id`

	rows, err := p.pool.Query(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	leads := []models.Lead{}
	for rows.Next() {
		var l models.Lead
		if err := rows.Scan(&l.ID, &l.Name, &l.Company, &l.Industry, &l.Size, &l.Source, &l.CreatedAt); err != nil {
			return nil, err
		}
		leads = append(leads, l)
	}
	return leads, rows.Err()
}

// InsertEvent persists one event and returns its server-assigned id.
func (p *PostgresStore) InsertEvent(ctx context.Context, e models.Event) (int64, error) {
	var id int64
	err := p.pool.QueryRow(ctx, `
		INSERT INTO events(user_id, action, event_metadata, occurred_at)
		VALUES ($1,$2,$3,$4)
		RETURNING id
	`, e.UserID, e.Action, e.Metadata, e.OccurredAt).Scan(&id)
	return id, err
}

// ListEvents returns every stored event in insertion order.
func (p *PostgresStore) ListEvents(ctx context.Context) ([]models.Event, error) {
	rows, err := p.pool.Query(ctx, `
		SELECT id, user_id, action, event_metadata, occurred_at
		FROM events
		ORDER BY id
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	events := []models.Event{}
	for rows.Next() {
		var e models.Event
		if err := rows.Scan(&e.ID, &e.UserID, &e.Action, &e.Metadata, &e.OccurredAt); err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}
