package rating

import "github.com/philleif/tempcheck-api/internal/domain"

// SubmitResult is the outcome of SubmitRating.
type SubmitResult struct {
	RatingID string
	// Synthetic is set when the id was issued by the fallback policy.
	Synthetic bool
}

// Results is the aggregated view of one topic's ratings.
type Results struct {
	TopicID string
	domain.RatingSummary
	Synthetic bool
}
