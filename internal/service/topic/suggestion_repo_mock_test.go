package topic

import (
	"context"
	"sync"

	"github.com/philleif/tempcheck-api/internal/domain"
)

var _ suggestionRepo = &suggestionRepoMock{}

type suggestionRepoMock struct {
	CreateFunc func(ctx context.Context, suggestion *domain.TopicSuggestion) (*domain.TopicSuggestion, error)

	calls struct {
		Create []struct {
			Ctx        context.Context
			Suggestion *domain.TopicSuggestion
		}
	}
	lockCreate sync.RWMutex
}

func (mock *suggestionRepoMock) Create(ctx context.Context, suggestion *domain.TopicSuggestion) (*domain.TopicSuggestion, error) {
	if mock.CreateFunc == nil {
		panic("suggestionRepoMock.CreateFunc: method is nil but suggestionRepo.Create was just called")
	}
	callInfo := struct {
		Ctx        context.Context
		Suggestion *domain.TopicSuggestion
	}{Ctx: ctx, Suggestion: suggestion}
	mock.lockCreate.Lock()
	mock.calls.Create = append(mock.calls.Create, callInfo)
	mock.lockCreate.Unlock()
	return mock.CreateFunc(ctx, suggestion)
}

func (mock *suggestionRepoMock) CreateCalls() []struct {
	Ctx        context.Context
	Suggestion *domain.TopicSuggestion
} {
	mock.lockCreate.RLock()
	calls := mock.calls.Create
	mock.lockCreate.RUnlock()
	return calls
}
