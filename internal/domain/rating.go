package domain

import "time"

// Rating is one device's 0-100 judgment of one topic.
// At most one Rating exists per (TopicID, DeviceID).
type Rating struct {
	ID        string
	TopicID   string
	DeviceID  string
	Value     int
	HotTake   *string
	Timezone  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	MinRatingValue = 0
	MaxRatingValue = 100
	MaxHotTakeLen  = 280
)

// Bucket is one fixed, inclusive value range of the results histogram.
type Bucket struct {
	Label string
	Min   int
	Max   int
}

// BucketCount is the number of histogram buckets.
const BucketCount = 5

// RatingBuckets returns the five histogram buckets in ascending order.
// Together they cover [0,100] without overlap.
func RatingBuckets() [BucketCount]Bucket {
	return [BucketCount]Bucket{
		{Label: "0-20", Min: 0, Max: 20},
		{Label: "21-40", Min: 21, Max: 40},
		{Label: "41-60", Min: 41, Max: 60},
		{Label: "61-80", Min: 61, Max: 80},
		{Label: "81-100", Min: 81, Max: 100},
	}
}

// RatingSummary is the display-ready aggregate of a topic's ratings.
// Distribution holds per-bucket percentages in RatingBuckets order.
type RatingSummary struct {
	GlobalAverage int
	TotalRatings  int
	Distribution  [BucketCount]int
}
