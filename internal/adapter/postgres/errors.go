package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/prakritlab/prakrit-morph/internal/domain"
)

// MapError converts pgx/pgconn errors to domain errors. The entity and key
// identify the row in the wrapped message (a surface form, a root, a suffix
// pattern). context.DeadlineExceeded and context.Canceled pass through.
func MapError(err error, entity, key string) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s %q: %w", entity, key, err)
	}

	if errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("%s %q: %w", entity, key, domain.ErrNotFound)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case "23514": // check_violation
			return fmt.Errorf("%s %q: %w", entity, key, domain.ErrInvalidInput)
		}
	}

	return fmt.Errorf("%s %q: %w", entity, key, err)
}
