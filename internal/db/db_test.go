package db

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNop(t *testing.T) {
	var j Journal = Nop{}
	assert.NoError(t, j.RecordAttempt(context.Background(), Attempt{}))
}

func TestPostgres_RecordAttempt(t *testing.T) {
	url := os.Getenv("TEST_DATABASE_URL")
	if url == "" {
		t.Skip("TEST_DATABASE_URL not set")
	}
	ctx := context.Background()

	p, err := Connect(ctx, url)
	require.NoError(t, err)
	defer p.Close()

	requestID := uuid.NewString()
	require.NoError(t, p.RecordAttempt(ctx, Attempt{
		RequestID: requestID,
		Course:    "Data Science",
		Outcome:   OutcomeFailed,
		Error:     "connection refused",
		Duration:  1500 * time.Millisecond,
	}))

	attempts, err := p.recentAttempts(ctx, 1)
	require.NoError(t, err)
	require.Len(t, attempts, 1)
	assert.Equal(t, requestID, attempts[0].RequestID)
	assert.Equal(t, OutcomeFailed, attempts[0].Outcome)
	assert.Equal(t, 1500*time.Millisecond, attempts[0].Duration)
}

// recentAttempts returns the newest attempts first.
func (p *Postgres) recentAttempts(ctx context.Context, limit int) ([]Attempt, error) {
	rows, err := p.pool.Query(ctx, `
        SELECT id, request_id, course, outcome, error, duration_ms, created_at
        FROM referral_attempts
        ORDER BY id DESC
        LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("database query error: %w", err)
	}
	defer rows.Close()

	var attempts []Attempt
	for rows.Next() {
		var a Attempt
		var outcome string
		var ms int64
		if err := rows.Scan(&a.ID, &a.RequestID, &a.Course, &outcome, &a.Error, &ms, &a.CreatedAt); err != nil {
			return nil, err
		}
		a.Outcome = Outcome(outcome)
		a.Duration = time.Duration(ms) * time.Millisecond
		attempts = append(attempts, a)
	}
	return attempts, rows.Err()
}
