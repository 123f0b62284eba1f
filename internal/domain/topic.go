package domain

import "time"

// Topic is a ratable subject of the day, with associated media.
// Topics are curated outside this service and are read-only here.
type Topic struct {
	ID           string
	Title        string
	Slug         string
	MediaURL     *string
	MediaType    MediaType
	IsActive     bool
	ScheduledFor time.Time
	CreatedAt    time.Time
}

// TopicSuggestion is a user-proposed future topic awaiting moderation.
type TopicSuggestion struct {
	ID        string
	Title     string
	DeviceID  string
	Status    SuggestionStatus
	CreatedAt time.Time
}
