package feedback_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"

	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/feedback"
	"github.com/prakritlab/prakrit-morph/internal/adapter/postgres/testhelper"
	"github.com/prakritlab/prakrit-morph/internal/domain"
)

func newRepo(t *testing.T) *feedback.Repo {
	t.Helper()
	return feedback.New(testhelper.SetupTestDB(t))
}

func unique(s string) string {
	return s + "-" + uuid.New().String()[:8]
}

func TestRepo_IncrementAndGet(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	pattern := unique("hinto")

	for i := 0; i < 3; i++ {
		if err := repo.Increment(ctx, pattern, true); err != nil {
			t.Fatalf("Increment(correct): %v", err)
		}
	}
	if err := repo.Increment(ctx, pattern, false); err != nil {
		t.Fatalf("Increment(incorrect): %v", err)
	}

	stat, err := repo.Get(ctx, pattern)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stat.Pattern != pattern {
		t.Errorf("Pattern = %q, want %q", stat.Pattern, pattern)
	}
	if stat.Correct != 3 || stat.Incorrect != 1 {
		t.Errorf("tally = %d/%d, want 3/1", stat.Correct, stat.Incorrect)
	}
	if !stat.Significant() {
		t.Error("4 samples should be significant")
	}
}

func TestRepo_Get_NotFound(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	_, err := repo.Get(context.Background(), unique("never"))
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("Get error = %v, want ErrNotFound", err)
	}
}

func TestRepo_Increment_EmptyPattern(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)

	err := repo.Increment(context.Background(), "", true)
	if !errors.Is(err, domain.ErrInvalidInput) {
		t.Fatalf("Increment error = %v, want ErrInvalidInput", err)
	}
}

// Concurrent submissions must not lose updates: the upsert is a single
// atomic statement, so N writers produce exactly N recorded samples.
func TestRepo_Increment_Concurrent(t *testing.T) {
	t.Parallel()
	repo := newRepo(t)
	ctx := context.Background()

	pattern := unique("nti")
	const writers = 20

	var wg sync.WaitGroup
	errs := make(chan error, writers)
	for i := 0; i < writers; i++ {
		wg.Add(1)
		go func(correct bool) {
			defer wg.Done()
			errs <- repo.Increment(ctx, pattern, correct)
		}(i%2 == 0)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		if err != nil {
			t.Fatalf("concurrent Increment: %v", err)
		}
	}

	stat, err := repo.Get(ctx, pattern)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if stat.Total() != writers {
		t.Errorf("total = %d, want %d", stat.Total(), writers)
	}
	if stat.Correct != writers/2 || stat.Incorrect != writers/2 {
		t.Errorf("tally = %d/%d, want %d/%d", stat.Correct, stat.Incorrect, writers/2, writers/2)
	}
}
