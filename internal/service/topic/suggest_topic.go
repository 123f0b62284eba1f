package topic

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/philleif/tempcheck-api/internal/domain"
)

// SuggestResult is the outcome of SuggestTopic.
type SuggestResult struct {
	SuggestionID string
	Synthetic    bool
}

// SuggestTopic records a pending topic suggestion.
func (s *Service) SuggestTopic(ctx context.Context, input SuggestTopicInput) (*SuggestResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	created, err := s.suggestions.Create(ctx, &domain.TopicSuggestion{
		ID:       uuid.NewString(),
		Title:    input.Title,
		DeviceID: input.DeviceID,
		Status:   domain.SuggestionStatusPending,
	})
	if err != nil {
		id, ok := s.fallback.SuggestionID(s.now())
		if !ok {
			return nil, fmt.Errorf("create suggestion: %w", err)
		}

		s.log.WarnContext(ctx, "suggestion not stored, issued synthetic id",
			slog.String("suggestion_id", id),
			slog.String("error", err.Error()),
		)
		return &SuggestResult{SuggestionID: id, Synthetic: true}, nil
	}

	s.log.InfoContext(ctx, "topic suggested",
		slog.String("suggestion_id", created.ID),
		slog.String("title", created.Title),
	)

	return &SuggestResult{SuggestionID: created.ID}, nil
}
