package rating

import "github.com/philleif/tempcheck-api/internal/domain"

// emptyAverage is reported when a topic has no ratings yet.
const emptyAverage = 50

// Aggregate summarizes rating values into a global average and a bucket
// distribution.
//
// The average and every bucket percentage are rounded half-up
// independently, so percentages are not renormalized and may sum to 99-101.
// With no values the average is emptyAverage while every percentage is 0.
// Values outside [0,100] are counted in the nearest edge bucket.
func Aggregate(values []int) domain.RatingSummary {
	total := len(values)
	if total == 0 {
		return domain.RatingSummary{GlobalAverage: emptyAverage}
	}

	var (
		sum    int
		counts [domain.BucketCount]int
	)
	for _, v := range values {
		sum += v
		counts[bucketIndex(v)]++
	}

	summary := domain.RatingSummary{
		GlobalAverage: roundHalfUp(sum, total),
		TotalRatings:  total,
	}
	for i, c := range counts {
		summary.Distribution[i] = roundHalfUp(c*100, total)
	}
	return summary
}

// bucketIndex returns the position in domain.RatingBuckets that holds v.
func bucketIndex(v int) int {
	buckets := domain.RatingBuckets()
	for i, b := range buckets {
		if v <= b.Max {
			return i
		}
	}
	return len(buckets) - 1
}

// roundHalfUp returns num/den rounded to the nearest integer, halves away
// from zero. den must be positive.
func roundHalfUp(num, den int) int {
	if num < 0 {
		return -((-2*num + den) / (2 * den))
	}
	return (2*num + den) / (2 * den)
}
