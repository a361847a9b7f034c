package attested_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/attested"
	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/testhelper"
	"github.com/prakritlab/prakrit-morph/internal/domain"
)

func newRepo(t *testing.T) (*attested.Repo, *pgxpool.Pool) {
	t.Helper()
	pool := testhelper.SetupTestDB(t)
	return attested.New(pool), pool
}

// unique prefixes a fixture value so parallel tests sharing the container
// never collide on unique columns.
func unique(s string) string {
	return s + "-" + uuid.New().String()[:8]
}

func TestRepo_LookupForm(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	form := unique("devo")
	id := testhelper.SeedForm(t, pool, form, "NOUN", "deva", map[string]string{
		"gram_case":   "nominative",
		"gram_number": "singular",
		"gram_gender": "masculine",
	})

	got, err := repo.LookupForm(ctx, form)
	if err != nil {
		t.Fatalf("LookupForm: %v", err)
	}

	if got.ID != id {
		t.Errorf("ID mismatch: got %s, want %s", got.ID, id)
	}
	if got.Class != domain.WordClassNoun {
		t.Errorf("Class = %s, want NOUN", got.Class)
	}
	if got.Base != "deva" {
		t.Errorf("Base = %q, want deva", got.Base)
	}
	if got.Case == nil || *got.Case != domain.CaseNominative {
		t.Errorf("Case = %v, want nominative", got.Case)
	}
	if got.Tense != nil {
		t.Errorf("Tense = %v, want nil for a noun row", got.Tense)
	}
}

func TestRepo_LookupForm_NotFound(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	_, err := repo.LookupForm(context.Background(), unique("missing"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("LookupForm error = %v, want ErrNotFound", err)
	}
}

func TestRepo_LookupRoot(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	root := unique("kar")
	testhelper.SeedRoot(t, pool, root)

	ok, err := repo.LookupRoot(ctx, root)
	if err != nil {
		t.Fatalf("LookupRoot: %v", err)
	}
	if !ok {
		t.Error("seeded root not found")
	}

	ok, err = repo.LookupRoot(ctx, unique("gam"))
	if err != nil {
		t.Fatalf("LookupRoot: %v", err)
	}
	if ok {
		t.Error("unseeded root reported as attested")
	}
}

func TestRepo_LookupStem(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	stem := unique("deva")
	testhelper.SeedStem(t, pool, stem)

	ok, err := repo.LookupStem(ctx, stem)
	if err != nil {
		t.Fatalf("LookupStem: %v", err)
	}
	if !ok {
		t.Error("seeded stem not found")
	}
}

func TestRepo_Search(t *testing.T) {
	t.Parallel()
	repo, pool := newRepo(t)
	ctx := context.Background()

	prefix := unique("srch")
	base := unique("deva")
	testhelper.SeedForm(t, pool, prefix+"-o", "NOUN", base, nil)
	testhelper.SeedForm(t, pool, prefix+"-ssa", "NOUN", base, nil)
	testhelper.SeedForm(t, pool, prefix+"-ti", "VERB", unique("kar"), nil)

	noun := domain.WordClassNoun
	got, err := repo.Search(ctx, attested.Filter{
		Class:      &noun,
		FormPrefix: &prefix,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}

	if len(got) != 2 {
		t.Fatalf("Search returned %d forms, want 2", len(got))
	}
	// Ordered by form: "-o" before "-ssa".
	if got[0].Form != prefix+"-o" || got[1].Form != prefix+"-ssa" {
		t.Errorf("Search order = [%s, %s], want [-o, -ssa]", got[0].Form, got[1].Form)
	}
	for _, af := range got {
		if af.Class != domain.WordClassNoun {
			t.Errorf("form %s has class %s, want NOUN", af.Form, af.Class)
		}
		if af.Base != base {
			t.Errorf("form %s has base %q, want %q", af.Form, af.Base, base)
		}
	}
}

func TestRepo_Search_EmptyResult(t *testing.T) {
	t.Parallel()
	repo, _ := newRepo(t)

	prefix := unique("none")
	got, err := repo.Search(context.Background(), attested.Filter{FormPrefix: &prefix})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Search returned %d forms, want 0", len(got))
	}
}
