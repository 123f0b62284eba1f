package rating

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/philleif/tempcheck-api/internal/domain"
)

// SubmitRating creates or replaces the device's rating for a topic.
// When the store fails, the fallback policy may issue a synthetic id.
func (s *Service) SubmitRating(ctx context.Context, input SubmitRatingInput) (*SubmitResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	saved, err := s.ratings.Upsert(ctx, &domain.Rating{
		ID:       uuid.NewString(),
		TopicID:  input.TopicID,
		DeviceID: input.DeviceID,
		Value:    int(*input.Value),
		HotTake:  input.HotTake,
		Timezone: input.Timezone,
	})
	if err != nil {
		id, ok := s.fallback.RatingID(s.now())
		if !ok {
			if errors.Is(err, domain.ErrNotFound) {
				return nil, domain.NewValidationError("topicId", "unknown topic")
			}
			return nil, fmt.Errorf("upsert rating: %w", err)
		}

		s.log.WarnContext(ctx, "rating not stored, issued synthetic id",
			slog.String("topic_id", input.TopicID),
			slog.String("rating_id", id),
			slog.String("error", err.Error()),
		)
		return &SubmitResult{RatingID: id, Synthetic: true}, nil
	}

	s.log.InfoContext(ctx, "rating submitted",
		slog.String("topic_id", saved.TopicID),
		slog.String("rating_id", saved.ID),
		slog.Int("value", saved.Value),
	)

	return &SubmitResult{RatingID: saved.ID}, nil
}
