package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Outcome of one attempt to hand a referral to the backend.
type Outcome string

const (
	OutcomeSent   Outcome = "sent"
	OutcomeFailed Outcome = "failed"
)

// Attempt is one row of the submission journal. It deliberately holds no names or addresses.
type Attempt struct {
	ID        int
	RequestID string
	Course    string
	Outcome   Outcome
	Error     string
	Duration  time.Duration
	CreatedAt time.Time
}

// Journal records submission attempts for later diagnosis.
type Journal interface {
	RecordAttempt(ctx context.Context, a Attempt) error
}

// Nop is used when no database is configured.
type Nop struct{}

func (Nop) RecordAttempt(context.Context, Attempt) error { return nil }

// Postgres writes attempts to the referral_attempts table.
type Postgres struct {
	pool *pgxpool.Pool
}

// Connect opens a pool and makes sure the table exists.
func Connect(ctx context.Context, databaseURL string) (*Postgres, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("error opening pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("error reaching database: %w", err)
	}

	p := &Postgres{pool: pool}
	if err := p.EnsureSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}
	return p, nil
}

func (p *Postgres) EnsureSchema(ctx context.Context) error {
	_, err := p.pool.Exec(ctx, `
        CREATE TABLE IF NOT EXISTS referral_attempts (
            id          SERIAL PRIMARY KEY,
            request_id  TEXT NOT NULL,
            course      TEXT NOT NULL,
            outcome     TEXT NOT NULL,
            error       TEXT NOT NULL DEFAULT '',
            duration_ms BIGINT NOT NULL,
            created_at  TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
        )`)
	if err != nil {
		return fmt.Errorf("database schema error: %w", err)
	}
	return nil
}

func (p *Postgres) RecordAttempt(ctx context.Context, a Attempt) error {
	_, err := p.pool.Exec(ctx, `
        INSERT INTO referral_attempts (request_id, course, outcome, error, duration_ms)
        VALUES ($1, $2, $3, $4, $5)`,
		a.RequestID, a.Course, string(a.Outcome), a.Error, a.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("database insert error: %w", err)
	}
	return nil
}

func (p *Postgres) Close() {
	p.pool.Close()
}
