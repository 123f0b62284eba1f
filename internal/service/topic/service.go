package topic

import (
	"context"
	"log/slog"
	"time"

	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/fallback"
)

type topicRepo interface {
	ListActive(ctx context.Context, now time.Time, limit int) ([]domain.Topic, error)
}

type suggestionRepo interface {
	Create(ctx context.Context, suggestion *domain.TopicSuggestion) (*domain.TopicSuggestion, error)
}

// Bounds for the number of daily topics returned.
const (
	DefaultCount = 10
	MinCount     = 1
	MaxCount     = 50
)

// DefaultTimezone is reported when the client does not send one.
const DefaultTimezone = "UTC"

// Service provides daily topic listing and topic suggestions.
type Service struct {
	topics      topicRepo
	suggestions suggestionRepo
	fallback    fallback.Policy
	dropHour    int
	log         *slog.Logger
	now         func() time.Time
}

// NewService creates a new Topic service. dropHour is the local hour at
// which a new set of topics becomes available.
func NewService(
	log *slog.Logger,
	topics topicRepo,
	suggestions suggestionRepo,
	policy fallback.Policy,
	dropHour int,
) *Service {
	return &Service{
		topics:      topics,
		suggestions: suggestions,
		fallback:    policy,
		dropHour:    dropHour,
		log:         log.With("service", "topic"),
		now:         time.Now,
	}
}
