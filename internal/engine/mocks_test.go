package engine

import (
	"context"
	"sync"

	"github.com/prakritlab/prakrit-morph/internal/domain"
)

var _ attestedIndex = &attestedIndexMock{}

type attestedIndexMock struct {
	LookupFormFunc func(ctx context.Context, form string) (*domain.AttestedForm, error)
	LookupRootFunc func(ctx context.Context, root string) (bool, error)
	LookupStemFunc func(ctx context.Context, stem string) (bool, error)

	calls struct {
		LookupForm []struct {
			Form string
		}
		LookupRoot []struct {
			Root string
		}
		LookupStem []struct {
			Stem string
		}
	}
	lockLookupForm sync.RWMutex
	lockLookupRoot sync.RWMutex
	lockLookupStem sync.RWMutex
}

func (mock *attestedIndexMock) LookupForm(ctx context.Context, form string) (*domain.AttestedForm, error) {
	if mock.LookupFormFunc == nil {
		panic("attestedIndexMock.LookupFormFunc: method is nil but attestedIndex.LookupForm was just called")
	}
	mock.lockLookupForm.Lock()
	mock.calls.LookupForm = append(mock.calls.LookupForm, struct{ Form string }{Form: form})
	mock.lockLookupForm.Unlock()
	return mock.LookupFormFunc(ctx, form)
}

func (mock *attestedIndexMock) LookupFormCalls() []struct{ Form string } {
	mock.lockLookupForm.RLock()
	calls := mock.calls.LookupForm
	mock.lockLookupForm.RUnlock()
	return calls
}

func (mock *attestedIndexMock) LookupRoot(ctx context.Context, root string) (bool, error) {
	if mock.LookupRootFunc == nil {
		panic("attestedIndexMock.LookupRootFunc: method is nil but attestedIndex.LookupRoot was just called")
	}
	mock.lockLookupRoot.Lock()
	mock.calls.LookupRoot = append(mock.calls.LookupRoot, struct{ Root string }{Root: root})
	mock.lockLookupRoot.Unlock()
	return mock.LookupRootFunc(ctx, root)
}

func (mock *attestedIndexMock) LookupRootCalls() []struct{ Root string } {
	mock.lockLookupRoot.RLock()
	calls := mock.calls.LookupRoot
	mock.lockLookupRoot.RUnlock()
	return calls
}

func (mock *attestedIndexMock) LookupStem(ctx context.Context, stem string) (bool, error) {
	if mock.LookupStemFunc == nil {
		panic("attestedIndexMock.LookupStemFunc: method is nil but attestedIndex.LookupStem was just called")
	}
	mock.lockLookupStem.Lock()
	mock.calls.LookupStem = append(mock.calls.LookupStem, struct{ Stem string }{Stem: stem})
	mock.lockLookupStem.Unlock()
	return mock.LookupStemFunc(ctx, stem)
}

func (mock *attestedIndexMock) LookupStemCalls() []struct{ Stem string } {
	mock.lockLookupStem.RLock()
	calls := mock.calls.LookupStem
	mock.lockLookupStem.RUnlock()
	return calls
}

var _ feedbackStore = &feedbackStoreMock{}

type feedbackStoreMock struct {
	GetFunc func(ctx context.Context, pattern string) (domain.FeedbackStat, error)

	calls struct {
		Get []struct {
			Pattern string
		}
	}
	lockGet sync.RWMutex
}

func (mock *feedbackStoreMock) Get(ctx context.Context, pattern string) (domain.FeedbackStat, error) {
	if mock.GetFunc == nil {
		panic("feedbackStoreMock.GetFunc: method is nil but feedbackStore.Get was just called")
	}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, struct{ Pattern string }{Pattern: pattern})
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, pattern)
}

func (mock *feedbackStoreMock) GetCalls() []struct{ Pattern string } {
	mock.lockGet.RLock()
	calls := mock.calls.Get
	mock.lockGet.RUnlock()
	return calls
}

// emptyIndex is an attestedIndexMock with every lookup missing.
func emptyIndex() *attestedIndexMock {
	return &attestedIndexMock{
		LookupFormFunc: func(context.Context, string) (*domain.AttestedForm, error) {
			return nil, domain.ErrNotFound
		},
		LookupRootFunc: func(context.Context, string) (bool, error) { return false, nil },
		LookupStemFunc: func(context.Context, string) (bool, error) { return false, nil },
	}
}

// emptyFeedback is a feedbackStoreMock with no recorded feedback.
func emptyFeedback() *feedbackStoreMock {
	return &feedbackStoreMock{
		GetFunc: func(context.Context, string) (domain.FeedbackStat, error) {
			return domain.FeedbackStat{}, domain.ErrNotFound
		},
	}
}
