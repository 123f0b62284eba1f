// Package rating implements the Rating repository using PostgreSQL.
// A device holds at most one rating per topic; writes are upserts keyed by
// (topic_id, device_id).
package rating

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/philleif/tempcheck-api/internal/adapter/postgres"
	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/metrics"
)

// Repo provides rating persistence backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new rating repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// A resubmission replaces the value; nil hot_take/timezone keep the stored ones.
const upsertSuffix = `ON CONFLICT (topic_id, device_id) DO UPDATE SET
    value      = EXCLUDED.value,
    hot_take   = COALESCE(EXCLUDED.hot_take, ratings.hot_take),
    timezone   = COALESCE(EXCLUDED.timezone, ratings.timezone),
    updated_at = now()
RETURNING id, topic_id, device_id, value, hot_take, timezone, created_at, updated_at`

// ---------------------------------------------------------------------------
// Write operations
// ---------------------------------------------------------------------------

// Upsert inserts the rating or updates the existing one for the same
// (topic, device) pair, returning the stored row. On update the original id
// is kept. Returns domain.ErrNotFound if the topic does not exist.
func (r *Repo) Upsert(ctx context.Context, rating *domain.Rating) (_ *domain.Rating, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOperation("rating", "upsert", start, err) }()

	sql, args, err := postgres.Builder().
		Insert("ratings").
		Columns("id", "topic_id", "device_id", "value", "hot_take", "timezone").
		Values(rating.ID, rating.TopicID, rating.DeviceID, rating.Value, rating.HotTake, rating.Timezone).
		Suffix(upsertSuffix).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "rating", rating.ID)
	}

	var saved domain.Rating
	err = r.q.QueryRow(ctx, sql, args...).Scan(
		&saved.ID,
		&saved.TopicID,
		&saved.DeviceID,
		&saved.Value,
		&saved.HotTake,
		&saved.Timezone,
		&saved.CreatedAt,
		&saved.UpdatedAt,
	)
	if err != nil {
		return nil, postgres.MapError(err, "rating", rating.ID)
	}

	return &saved, nil
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ValuesByTopic returns every rating value recorded for a topic.
// Returns an empty slice (not nil) when the topic has no ratings.
func (r *Repo) ValuesByTopic(ctx context.Context, topicID string) (_ []int, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOperation("rating", "values_by_topic", start, err) }()

	sql, args, err := postgres.Builder().
		Select("value").
		From("ratings").
		Where(squirrel.Eq{"topic_id": topicID}).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	values, err := pgx.CollectRows(rows, pgx.RowTo[int])
	if err != nil {
		return nil, postgres.MapError(err, "topic", topicID)
	}

	return values, nil
}
