// Package suggestion implements the TopicSuggestion repository using PostgreSQL.
package suggestion

import (
	"context"
	"time"

	postgres "github.com/philleif/tempcheck-api/internal/adapter/postgres"
	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/metrics"
)

// Repo provides suggestion persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new suggestion repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// Create inserts a suggestion and returns the persisted row.
func (r *Repo) Create(ctx context.Context, s *domain.TopicSuggestion) (_ *domain.TopicSuggestion, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOperation("suggestion", "create", start, err) }()

	sql, args, err := postgres.Builder().
		Insert("topic_suggestions").
		Columns("id", "title", "device_id", "status").
		Values(s.ID, s.Title, s.DeviceID, string(s.Status)).
		Suffix("RETURNING id, title, device_id, status, created_at").
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}

	var (
		saved  domain.TopicSuggestion
		status string
	)
	err = r.q.QueryRow(ctx, sql, args...).Scan(&saved.ID, &saved.Title, &saved.DeviceID, &status, &saved.CreatedAt)
	if err != nil {
		return nil, postgres.MapError(err, "suggestion", s.ID)
	}
	saved.Status = domain.SuggestionStatus(status)

	return &saved, nil
}
