package rating

import (
	"context"
	"sync"

	"github.com/philleif/tempcheck-api/internal/domain"
)

var _ ratingRepo = &ratingRepoMock{}

type ratingRepoMock struct {
	UpsertFunc        func(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	ValuesByTopicFunc func(ctx context.Context, topicID string) ([]int, error)

	calls struct {
		Upsert []struct {
			Ctx    context.Context
			Rating *domain.Rating
		}
		ValuesByTopic []struct {
			Ctx     context.Context
			TopicID string
		}
	}
	lockUpsert        sync.RWMutex
	lockValuesByTopic sync.RWMutex
}

func (mock *ratingRepoMock) Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error) {
	if mock.UpsertFunc == nil {
		panic("ratingRepoMock.UpsertFunc: method is nil but ratingRepo.Upsert was just called")
	}
	callInfo := struct {
		Ctx    context.Context
		Rating *domain.Rating
	}{Ctx: ctx, Rating: rating}
	mock.lockUpsert.Lock()
	mock.calls.Upsert = append(mock.calls.Upsert, callInfo)
	mock.lockUpsert.Unlock()
	return mock.UpsertFunc(ctx, rating)
}

func (mock *ratingRepoMock) UpsertCalls() []struct {
	Ctx    context.Context
	Rating *domain.Rating
} {
	mock.lockUpsert.RLock()
	calls := mock.calls.Upsert
	mock.lockUpsert.RUnlock()
	return calls
}

func (mock *ratingRepoMock) ValuesByTopic(ctx context.Context, topicID string) ([]int, error) {
	if mock.ValuesByTopicFunc == nil {
		panic("ratingRepoMock.ValuesByTopicFunc: method is nil but ratingRepo.ValuesByTopic was just called")
	}
	callInfo := struct {
		Ctx     context.Context
		TopicID string
	}{Ctx: ctx, TopicID: topicID}
	mock.lockValuesByTopic.Lock()
	mock.calls.ValuesByTopic = append(mock.calls.ValuesByTopic, callInfo)
	mock.lockValuesByTopic.Unlock()
	return mock.ValuesByTopicFunc(ctx, topicID)
}

func (mock *ratingRepoMock) ValuesByTopicCalls() []struct {
	Ctx     context.Context
	TopicID string
} {
	mock.lockValuesByTopic.RLock()
	calls := mock.calls.ValuesByTopic
	mock.lockValuesByTopic.RUnlock()
	return calls
}
