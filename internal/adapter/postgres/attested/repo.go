// Package attested implements the attested dictionary index using PostgreSQL.
// Lookups are single-row point queries; Search builds its query dynamically
// with squirrel.
package attested

import (
	"context"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/prakritlab/prakrit-morph/internal/adapter/postgres"
	"github.com/prakritlab/prakrit-morph/internal/domain"
)

// Repo provides attested form/root/stem lookups backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new attested index repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

const formColumns = `id, form, word_class, base,
	gram_case, gram_number, gram_gender, gram_tense, gram_person`

const lookupFormSQL = `SELECT ` + formColumns + `
FROM attested_forms WHERE form = $1`

const lookupRootSQL = `SELECT EXISTS (SELECT 1 FROM attested_roots WHERE root = $1)`

const lookupStemSQL = `SELECT EXISTS (SELECT 1 FROM attested_stems WHERE stem = $1)`

// LookupForm finds a fully inflected attested form with its grammatical
// metadata. Returns domain.ErrNotFound when the form is not in the index.
func (r *Repo) LookupForm(ctx context.Context, form string) (*domain.AttestedForm, error) {
	row := r.pool.QueryRow(ctx, lookupFormSQL, form)
	af, err := scanForm(row)
	if err != nil {
		return nil, postgres.MapError(err, "attested form", form)
	}
	return af, nil
}

// LookupRoot reports whether a verb root is attested.
func (r *Repo) LookupRoot(ctx context.Context, root string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, lookupRootSQL, root).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "attested root", root)
	}
	return exists, nil
}

// LookupStem reports whether a noun stem is attested.
func (r *Repo) LookupStem(ctx context.Context, stem string) (bool, error) {
	var exists bool
	if err := r.pool.QueryRow(ctx, lookupStemSQL, stem).Scan(&exists); err != nil {
		return false, postgres.MapError(err, "attested stem", stem)
	}
	return exists, nil
}

// Search lists attested forms matching the filter, ordered by form. Intended
// for dictionary tooling; the engine itself only uses the point lookups.
func (r *Repo) Search(ctx context.Context, filter Filter) ([]domain.AttestedForm, error) {
	filter.normalize()

	q := squirrel.Select("id", "form", "word_class", "base",
		"gram_case", "gram_number", "gram_gender", "gram_tense", "gram_person").
		From("attested_forms").
		PlaceholderFormat(squirrel.Dollar).
		OrderBy("form ASC").
		Limit(uint64(filter.Limit)).
		Offset(uint64(filter.Offset))

	if filter.Class != nil {
		q = q.Where(squirrel.Eq{"word_class": filter.Class.String()})
	}
	if filter.Base != nil {
		q = q.Where(squirrel.Eq{"base": *filter.Base})
	}
	if filter.FormPrefix != nil {
		q = q.Where(squirrel.Like{"form": *filter.FormPrefix + "%"})
	}

	sql, args, err := q.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build search query: %w", err)
	}

	rows, err := r.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "attested search", sql)
	}
	defer rows.Close()

	var out []domain.AttestedForm
	for rows.Next() {
		af, err := scanForm(rows)
		if err != nil {
			return nil, fmt.Errorf("scan attested form: %w", err)
		}
		out = append(out, *af)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate attested forms: %w", err)
	}
	return out, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanForm(row rowScanner) (*domain.AttestedForm, error) {
	var (
		af                                  domain.AttestedForm
		id                                  uuid.UUID
		class                               string
		kase, number, gender, tense, person *string
	)
	err := row.Scan(&id, &af.Form, &class, &af.Base,
		&kase, &number, &gender, &tense, &person)
	if err != nil {
		return nil, err
	}

	af.ID = id
	af.Class = domain.WordClass(class)
	af.Case = enumPtr[domain.Case](kase)
	af.Number = enumPtr[domain.Number](number)
	af.Gender = enumPtr[domain.Gender](gender)
	af.Tense = enumPtr[domain.Tense](tense)
	af.Person = enumPtr[domain.Person](person)
	return &af, nil
}

func enumPtr[T ~string](s *string) *T {
	if s == nil {
		return nil
	}
	v := T(*s)
	return &v
}
