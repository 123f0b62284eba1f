package topic

import (
	"context"
	"sync"
	"time"

	"github.com/philleif/tempcheck-api/internal/domain"
)

var _ topicRepo = &topicRepoMock{}

type topicRepoMock struct {
	ListActiveFunc func(ctx context.Context, now time.Time, limit int) ([]domain.Topic, error)

	calls struct {
		ListActive []struct {
			Ctx   context.Context
			Now   time.Time
			Limit int
		}
	}
	lockListActive sync.RWMutex
}

func (mock *topicRepoMock) ListActive(ctx context.Context, now time.Time, limit int) ([]domain.Topic, error) {
	if mock.ListActiveFunc == nil {
		panic("topicRepoMock.ListActiveFunc: method is nil but topicRepo.ListActive was just called")
	}
	callInfo := struct {
		Ctx   context.Context
		Now   time.Time
		Limit int
	}{Ctx: ctx, Now: now, Limit: limit}
	mock.lockListActive.Lock()
	mock.calls.ListActive = append(mock.calls.ListActive, callInfo)
	mock.lockListActive.Unlock()
	return mock.ListActiveFunc(ctx, now, limit)
}

func (mock *topicRepoMock) ListActiveCalls() []struct {
	Ctx   context.Context
	Now   time.Time
	Limit int
} {
	mock.lockListActive.RLock()
	calls := mock.calls.ListActive
	mock.lockListActive.RUnlock()
	return calls
}
