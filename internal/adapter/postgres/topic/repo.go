// Package topic implements the Topic repository using PostgreSQL.
// Topics are curated outside this service; the repository only reads them.
package topic

import (
	"context"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	postgres "github.com/philleif/tempcheck-api/internal/adapter/postgres"
	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/metrics"
)

// Repo provides topic reads backed by PostgreSQL.
type Repo struct {
	q postgres.Querier
}

// New creates a new topic repository.
func New(q postgres.Querier) *Repo {
	return &Repo{q: q}
}

// ---------------------------------------------------------------------------
// Read operations
// ---------------------------------------------------------------------------

// ListActive returns up to limit active topics scheduled at or before now,
// newest first. Only display fields are loaded.
// Returns an empty slice (not nil) when nothing is scheduled.
func (r *Repo) ListActive(ctx context.Context, now time.Time, limit int) (_ []domain.Topic, err error) {
	start := time.Now()
	defer func() { metrics.ObserveStoreOperation("topic", "list_active", start, err) }()

	sql, args, err := postgres.Builder().
		Select("id", "title", "slug", "media_url", "media_type").
		From("topics").
		Where(squirrel.Eq{"is_active": true}).
		Where(squirrel.LtOrEq{"scheduled_for": now}).
		OrderBy("scheduled_for DESC").
		Limit(uint64(max(limit, 0))).
		ToSql()
	if err != nil {
		return nil, postgres.MapError(err, "topic", "")
	}

	rows, err := r.q.Query(ctx, sql, args...)
	if err != nil {
		return nil, postgres.MapError(err, "topic", "")
	}

	topics, err := pgx.CollectRows(rows, scanTopic)
	if err != nil {
		return nil, postgres.MapError(err, "topic", "")
	}

	return topics, nil
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func scanTopic(row pgx.CollectableRow) (domain.Topic, error) {
	var (
		t         domain.Topic
		mediaType string
	)
	if err := row.Scan(&t.ID, &t.Title, &t.Slug, &t.MediaURL, &mediaType); err != nil {
		return domain.Topic{}, err
	}
	t.MediaType = domain.MediaType(mediaType)
	t.IsActive = true
	return t, nil
}
