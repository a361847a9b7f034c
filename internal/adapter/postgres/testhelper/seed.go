package testhelper

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// SeedForm inserts an attested form row and returns its generated ID. The
// metadata map keys are column names (gram_case, gram_number, gram_gender,
// gram_tense, gram_person); absent keys stay NULL.
func SeedForm(t *testing.T, pool *pgxpool.Pool, form, wordClass, base string, metadata map[string]string) uuid.UUID {
	t.Helper()

	get := func(key string) *string {
		if v, ok := metadata[key]; ok {
			return &v
		}
		return nil
	}

	var id uuid.UUID
	err := pool.QueryRow(context.Background(), `
		INSERT INTO attested_forms
			(form, word_class, base, gram_case, gram_number, gram_gender, gram_tense, gram_person)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING id`,
		form, wordClass, base,
		get("gram_case"), get("gram_number"), get("gram_gender"),
		get("gram_tense"), get("gram_person"),
	).Scan(&id)
	if err != nil {
		t.Fatalf("testhelper: seed form %q: %v", form, err)
	}
	return id
}

// SeedRoot inserts an attested verb root.
func SeedRoot(t *testing.T, pool *pgxpool.Pool, root string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO attested_roots (root) VALUES ($1) ON CONFLICT DO NOTHING`, root)
	if err != nil {
		t.Fatalf("testhelper: seed root %q: %v", root, err)
	}
}

// SeedStem inserts an attested noun stem.
func SeedStem(t *testing.T, pool *pgxpool.Pool, stem string) {
	t.Helper()
	_, err := pool.Exec(context.Background(),
		`INSERT INTO attested_stems (stem) VALUES ($1) ON CONFLICT DO NOTHING`, stem)
	if err != nil {
		t.Fatalf("testhelper: seed stem %q: %v", stem, err)
	}
}
