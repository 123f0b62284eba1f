package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/philleif/tempcheck-api/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// TopicOption customizes a seeded topic.
type TopicOption func(*domain.Topic)

// ScheduledAt sets the topic's activation time.
func ScheduledAt(at time.Time) TopicOption {
	return func(t *domain.Topic) { t.ScheduledFor = at }
}

// Inactive marks the topic as inactive.
func Inactive() TopicOption {
	return func(t *domain.Topic) { t.IsActive = false }
}

// SeedTopic inserts an active image topic scheduled for now unless
// overridden by opts. Returns the inserted domain.Topic.
func SeedTopic(t *testing.T, pool *pgxpool.Pool, opts ...TopicOption) domain.Topic {
	t.Helper()

	suffix := uniqueSuffix()
	url := "https://example.com/" + suffix + ".jpg"
	topic := domain.Topic{
		ID:           uuid.NewString(),
		Title:        "Topic " + suffix,
		Slug:         "topic-" + suffix,
		MediaURL:     &url,
		MediaType:    domain.MediaTypeImage,
		IsActive:     true,
		ScheduledFor: time.Now().UTC().Truncate(time.Microsecond),
	}
	for _, opt := range opts {
		opt(&topic)
	}

	err := pool.QueryRow(context.Background(),
		`INSERT INTO topics (id, title, slug, media_url, media_type, is_active, scheduled_for)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING created_at`,
		topic.ID, topic.Title, topic.Slug, topic.MediaURL, string(topic.MediaType), topic.IsActive, topic.ScheduledFor,
	).Scan(&topic.CreatedAt)
	if err != nil {
		t.Fatalf("testhelper: SeedTopic: %v", err)
	}

	return topic
}

// CountRatings returns how many rating rows exist for the topic.
func CountRatings(t *testing.T, pool *pgxpool.Pool, topicID string) int {
	t.Helper()

	var n int
	err := pool.QueryRow(context.Background(),
		`SELECT count(*) FROM ratings WHERE topic_id = $1`, topicID,
	).Scan(&n)
	if err != nil {
		t.Fatalf("testhelper: CountRatings: %v", err)
	}
	return n
}
