package rating

import (
	"context"
	"fmt"
	"log/slog"
)

// GetResults aggregates every rating of a topic.
// An unreadable or empty topic is answered from the fallback policy when
// it allows; otherwise a store error is returned and an empty topic
// aggregates as empty input.
func (s *Service) GetResults(ctx context.Context, input GetResultsInput) (*Results, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	values, err := s.ratings.ValuesByTopic(ctx, input.TopicID)
	synthetic := false

	if err != nil || len(values) == 0 {
		sample, ok := s.fallback.RatingValues()
		switch {
		case ok:
			attrs := []any{slog.String("topic_id", input.TopicID), slog.Int("sample_size", len(sample))}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			s.log.WarnContext(ctx, "no stored ratings, serving synthetic results", attrs...)
			values, synthetic = sample, true
		case err != nil:
			return nil, fmt.Errorf("list rating values: %w", err)
		}
	}

	return &Results{
		TopicID:       input.TopicID,
		RatingSummary: Aggregate(values),
		Synthetic:     synthetic,
	}, nil
}
