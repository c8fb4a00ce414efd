package sink

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"go-linkedin-scraper/internal/scraper"
)

// DBPool is the subset of pgxpool.Pool the mirror needs, so tests can mock it.
type DBPool interface {
	Ping(ctx context.Context) error
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Close()
}

const createTableSQL = `
CREATE TABLE IF NOT EXISTS scraped_jobs (
	id               BIGSERIAL PRIMARY KEY,
	job_title        TEXT NOT NULL,
	company_name     TEXT NOT NULL,
	location         TEXT NOT NULL,
	posted_time      TEXT NOT NULL,
	location_type    TEXT NOT NULL,
	contract_type    TEXT NOT NULL,
	application_type TEXT NOT NULL,
	job_link         TEXT NOT NULL,
	description      TEXT NOT NULL,
	scraped_at       TIMESTAMPTZ NOT NULL
)`

// Rows are appended as-is; there is no uniqueness constraint, matching the CSV.
const insertJobSQL = `
INSERT INTO scraped_jobs (job_title, company_name, location, posted_time, location_type, contract_type, application_type, job_link, description, scraped_at)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

// Postgres mirrors records into the scraped_jobs table.
type Postgres struct {
	db DBPool
}

func ConnectPostgres(ctx context.Context, connString string) (*Postgres, error) {
	config, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("unable to parse database url: %w", err)
	}

	config.MaxConns = 2
	config.MaxConnLifetime = time.Hour

	// PgBouncer in transaction mode does not support prepared statements.
	config.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeExec

	pool, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("unable to connect to database: %w", err)
	}
	return NewPostgres(ctx, pool)
}

// NewPostgres verifies the connection and ensures the table exists.
func NewPostgres(ctx context.Context, db DBPool) (*Postgres, error) {
	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("database unreachable: %w", err)
	}
	if _, err := db.Exec(ctx, createTableSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create scraped_jobs table: %w", err)
	}
	return &Postgres{db: db}, nil
}

func (p *Postgres) Write(ctx context.Context, rec scraper.Record) error {
	row := rec.Row()
	ts := rec.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}
	_, err := p.db.Exec(ctx, insertJobSQL,
		row[0], row[1], row[2], row[3], row[4], row[5], row[6], row[7], row[8], ts)
	if err != nil {
		return fmt.Errorf("failed to save job: %w", err)
	}
	return nil
}

func (p *Postgres) Close() error {
	if p.db != nil {
		p.db.Close()
		p.db = nil
	}
	return nil
}
