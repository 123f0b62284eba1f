package rest

import (
	"context"
	"sync"

	"github.com/philleif/tempcheck-api/internal/service/rating"
	"github.com/philleif/tempcheck-api/internal/service/topic"
)

var (
	_ topicService  = &topicServiceMock{}
	_ ratingService = &ratingServiceMock{}
)

type topicServiceMock struct {
	ListDailyFunc    func(ctx context.Context, input topic.DailyTopicsInput) (*topic.DailyTopics, error)
	SuggestTopicFunc func(ctx context.Context, input topic.SuggestTopicInput) (*topic.SuggestResult, error)

	calls struct {
		ListDaily    []topic.DailyTopicsInput
		SuggestTopic []topic.SuggestTopicInput
	}
	lock sync.RWMutex
}

func (mock *topicServiceMock) ListDaily(ctx context.Context, input topic.DailyTopicsInput) (*topic.DailyTopics, error) {
	if mock.ListDailyFunc == nil {
		panic("topicServiceMock.ListDailyFunc: method is nil but topicService.ListDaily was just called")
	}
	mock.lock.Lock()
	mock.calls.ListDaily = append(mock.calls.ListDaily, input)
	mock.lock.Unlock()
	return mock.ListDailyFunc(ctx, input)
}

func (mock *topicServiceMock) ListDailyCalls() []topic.DailyTopicsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.ListDaily
}

func (mock *topicServiceMock) SuggestTopic(ctx context.Context, input topic.SuggestTopicInput) (*topic.SuggestResult, error) {
	if mock.SuggestTopicFunc == nil {
		panic("topicServiceMock.SuggestTopicFunc: method is nil but topicService.SuggestTopic was just called")
	}
	mock.lock.Lock()
	mock.calls.SuggestTopic = append(mock.calls.SuggestTopic, input)
	mock.lock.Unlock()
	return mock.SuggestTopicFunc(ctx, input)
}

func (mock *topicServiceMock) SuggestTopicCalls() []topic.SuggestTopicInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SuggestTopic
}

type ratingServiceMock struct {
	SubmitRatingFunc func(ctx context.Context, input rating.SubmitRatingInput) (*rating.SubmitResult, error)
	GetResultsFunc   func(ctx context.Context, input rating.GetResultsInput) (*rating.Results, error)

	calls struct {
		SubmitRating []rating.SubmitRatingInput
		GetResults   []rating.GetResultsInput
	}
	lock sync.RWMutex
}

func (mock *ratingServiceMock) SubmitRating(ctx context.Context, input rating.SubmitRatingInput) (*rating.SubmitResult, error) {
	if mock.SubmitRatingFunc == nil {
		panic("ratingServiceMock.SubmitRatingFunc: method is nil but ratingService.SubmitRating was just called")
	}
	mock.lock.Lock()
	mock.calls.SubmitRating = append(mock.calls.SubmitRating, input)
	mock.lock.Unlock()
	return mock.SubmitRatingFunc(ctx, input)
}

func (mock *ratingServiceMock) SubmitRatingCalls() []rating.SubmitRatingInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.SubmitRating
}

func (mock *ratingServiceMock) GetResults(ctx context.Context, input rating.GetResultsInput) (*rating.Results, error) {
	if mock.GetResultsFunc == nil {
		panic("ratingServiceMock.GetResultsFunc: method is nil but ratingService.GetResults was just called")
	}
	mock.lock.Lock()
	mock.calls.GetResults = append(mock.calls.GetResults, input)
	mock.lock.Unlock()
	return mock.GetResultsFunc(ctx, input)
}

func (mock *ratingServiceMock) GetResultsCalls() []rating.GetResultsInput {
	mock.lock.RLock()
	defer mock.lock.RUnlock()
	return mock.calls.GetResults
}
