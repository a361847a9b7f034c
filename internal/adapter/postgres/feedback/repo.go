// Package feedback implements the per-suffix feedback store using PostgreSQL.
package feedback

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/prakritlab/prakrit-morph/internal/adapter/postgres"
	"github.com/prakritlab/prakrit-morph/internal/domain"
)

// Repo provides suffix feedback tallies backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new feedback repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const getSQL = `
SELECT pattern, correct_count, incorrect_count
FROM suffix_feedback WHERE pattern = $1`

// incrementSQL is a single atomic upsert: concurrent submissions for the same
// pattern must not lose updates.
const incrementSQL = `
INSERT INTO suffix_feedback (pattern, correct_count, incorrect_count)
VALUES ($1, $2, $3)
ON CONFLICT (pattern) DO UPDATE SET
    correct_count   = suffix_feedback.correct_count + EXCLUDED.correct_count,
    incorrect_count = suffix_feedback.incorrect_count + EXCLUDED.incorrect_count,
    updated_at      = now()`

// Get returns the feedback tally for a suffix pattern.
// Returns domain.ErrNotFound when the pattern has no recorded feedback.
func (r *Repo) Get(ctx context.Context, pattern string) (domain.FeedbackStat, error) {
	var stat domain.FeedbackStat
	err := r.pool.QueryRow(ctx, getSQL, pattern).
		Scan(&stat.Pattern, &stat.Correct, &stat.Incorrect)
	if err != nil {
		return domain.FeedbackStat{}, postgres.MapError(err, "suffix feedback", pattern)
	}
	return stat, nil
}

// Increment records one feedback outcome for a suffix pattern.
func (r *Repo) Increment(ctx context.Context, pattern string, correct bool) error {
	if pattern == "" {
		return fmt.Errorf("suffix feedback: %w", domain.NewValidationError("pattern", "must not be empty"))
	}

	correctDelta, incorrectDelta := int64(0), int64(1)
	if correct {
		correctDelta, incorrectDelta = 1, 0
	}

	if _, err := r.pool.Exec(ctx, incrementSQL, pattern, correctDelta, incorrectDelta); err != nil {
		return postgres.MapError(err, "suffix feedback", pattern)
	}
	return nil
}
