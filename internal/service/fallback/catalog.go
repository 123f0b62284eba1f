package fallback

import "github.com/philleif/tempcheck-api/internal/domain"

type catalogEntry struct {
	id    string
	title string
	slug  string
	seed  string
}

// catalog is the fixed set of sample topics served when the store has none.
var catalog = [...]catalogEntry{
	{"mock-1", "Surfing", "surfing", "surfing"},
	{"mock-2", "Pit Hair", "pit-hair", "pithair"},
	{"mock-3", "Dogs", "dogs", "dogs"},
	{"mock-4", "Ice Cream", "ice-cream", "icecream"},
	{"mock-5", "Camping", "camping", "camping"},
	{"mock-6", "Yoga", "yoga", "yoga"},
	{"mock-7", "Coffee", "coffee", "coffee"},
	{"mock-8", "Skateboarding", "skateboarding", "skateboarding"},
	{"mock-9", "Pizza", "pizza", "pizza"},
	{"mock-10", "Mountains", "mountains", "mountains"},
}

// CatalogSize is the number of built-in sample topics.
const CatalogSize = len(catalog)

// CatalogTopics returns freshly built copies of the first n catalog topics.
// n is clamped to [0, CatalogSize].
func CatalogTopics(n int) []domain.Topic {
	n = max(0, min(n, CatalogSize))

	topics := make([]domain.Topic, n)
	for i := range n {
		e := catalog[i]
		url := "https://picsum.photos/seed/" + e.seed + "/400/500"
		topics[i] = domain.Topic{
			ID:        e.id,
			Title:     e.title,
			Slug:      e.slug,
			MediaURL:  &url,
			MediaType: domain.MediaTypeImage,
			IsActive:  true,
		}
	}
	return topics
}
