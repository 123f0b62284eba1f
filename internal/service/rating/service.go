package rating

import (
	"context"
	"log/slog"
	"time"

	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/fallback"
)

type ratingRepo interface {
	Upsert(ctx context.Context, rating *domain.Rating) (*domain.Rating, error)
	ValuesByTopic(ctx context.Context, topicID string) ([]int, error)
}

// Service provides rating submission and results.
type Service struct {
	ratings  ratingRepo
	fallback fallback.Policy
	log      *slog.Logger
	now      func() time.Time
}

// NewService creates a new Rating service.
func NewService(
	log *slog.Logger,
	ratings ratingRepo,
	policy fallback.Policy,
) *Service {
	return &Service{
		ratings:  ratings,
		fallback: policy,
		log:      log.With("service", "rating"),
		now:      time.Now,
	}
}
