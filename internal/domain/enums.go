package domain

// MediaType tags the kind of media attached to a topic.
type MediaType string

const (
	MediaTypeImage MediaType = "image"
	MediaTypeVideo MediaType = "video"
	MediaTypeGIF   MediaType = "gif"
)

func (m MediaType) String() string { return string(m) }

func (m MediaType) IsValid() bool {
	switch m {
	case MediaTypeImage, MediaTypeVideo, MediaTypeGIF:
		return true
	}
	return false
}

// SuggestionStatus is the moderation state of a TopicSuggestion.
type SuggestionStatus string

const (
	SuggestionStatusPending  SuggestionStatus = "pending"
	SuggestionStatusApproved SuggestionStatus = "approved"
	SuggestionStatusRejected SuggestionStatus = "rejected"
)

func (s SuggestionStatus) String() string { return string(s) }

func (s SuggestionStatus) IsValid() bool {
	switch s {
	case SuggestionStatusPending, SuggestionStatusApproved, SuggestionStatusRejected:
		return true
	}
	return false
}
