package topic

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/philleif/tempcheck-api/internal/domain"
)

// DailyTopics is the outcome of ListDaily.
type DailyTopics struct {
	Topics     []domain.Topic
	NextDropAt time.Time
	Synthetic  bool
}

// ListDaily returns up to input.Count active topics, newest first.
// When the store fails or has nothing scheduled, the fallback policy may
// supply catalog topics instead. Real and catalog topics are never mixed.
func (s *Service) ListDaily(ctx context.Context, input DailyTopicsInput) (*DailyTopics, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	now := s.now()
	result := &DailyTopics{NextDropAt: NextDrop(now, s.dropHour)}

	topics, err := s.topics.ListActive(ctx, now, input.Count)
	if err != nil || len(topics) == 0 {
		catalog, ok := s.fallback.Topics(input.Count)
		switch {
		case ok:
			attrs := []any{slog.Int("count", len(catalog))}
			if err != nil {
				attrs = append(attrs, slog.String("error", err.Error()))
			}
			s.log.WarnContext(ctx, "no scheduled topics, serving catalog", attrs...)
			result.Topics = catalog
			result.Synthetic = true
			return result, nil
		case err != nil:
			return nil, fmt.Errorf("list active topics: %w", err)
		}
	}

	if topics == nil {
		topics = []domain.Topic{}
	}
	result.Topics = topics
	return result, nil
}
