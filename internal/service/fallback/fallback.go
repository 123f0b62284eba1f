// Package fallback implements the degraded-mode policy: what the services
// return instead of an error when the data store fails or has nothing to
// serve.
package fallback

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/philleif/tempcheck-api/internal/config"
	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/metrics"
)

// Policy supplies synthetic stand-ins. Every method reports false when the
// policy declines, in which case the caller surfaces the original outcome.
type Policy interface {
	Topics(count int) ([]domain.Topic, bool)
	RatingValues() ([]int, bool)
	RatingID(now time.Time) (string, bool)
	SuggestionID(now time.Time) (string, bool)
}

// Synthetic sample bounds for rating results.
const (
	minSampleSize = 100
	maxSampleSize = 1099
	maxSampleVal  = 99
)

// New returns the policy selected by cfg.
func New(cfg config.FallbackConfig) Policy {
	if !cfg.Enabled {
		return Disabled{}
	}
	return NewSynthetic(cfg.Seed)
}

// Synthetic always answers with generated data.
type Synthetic struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSynthetic creates a Synthetic policy. A zero seed seeds from the clock.
func NewSynthetic(seed uint64) *Synthetic {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return &Synthetic{rng: rand.New(rand.NewPCG(seed, seed>>1|1))}
}

// Topics returns the first count catalog topics.
func (s *Synthetic) Topics(count int) ([]domain.Topic, bool) {
	metrics.FallbackResponsesTotal.WithLabelValues("topics").Inc()
	return CatalogTopics(count), true
}

// RatingValues returns a random sample of 100..1099 values in 0..99.
func (s *Synthetic) RatingValues() ([]int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n := minSampleSize + s.rng.IntN(maxSampleSize-minSampleSize+1)
	values := make([]int, n)
	for i := range values {
		values[i] = s.rng.IntN(maxSampleVal + 1)
	}

	metrics.FallbackResponsesTotal.WithLabelValues("rating_values").Inc()
	return values, true
}

// RatingID returns a time-derived placeholder id.
func (s *Synthetic) RatingID(now time.Time) (string, bool) {
	metrics.FallbackResponsesTotal.WithLabelValues("rating_id").Inc()
	return fmt.Sprintf("mock-rating-%d", now.UnixMilli()), true
}

// SuggestionID returns a time-derived placeholder id.
func (s *Synthetic) SuggestionID(now time.Time) (string, bool) {
	metrics.FallbackResponsesTotal.WithLabelValues("suggestion_id").Inc()
	return fmt.Sprintf("mock-suggestion-%d", now.UnixMilli()), true
}

// Disabled never substitutes data.
type Disabled struct{}

func (Disabled) Topics(int) ([]domain.Topic, bool) { return nil, false }

func (Disabled) RatingValues() ([]int, bool) { return nil, false }

func (Disabled) RatingID(time.Time) (string, bool) { return "", false }

func (Disabled) SuggestionID(time.Time) (string, bool) { return "", false }
