package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/topic"
)

// topicService defines the minimal interface needed by TopicHandler.
type topicService interface {
	ListDaily(ctx context.Context, input topic.DailyTopicsInput) (*topic.DailyTopics, error)
	SuggestTopic(ctx context.Context, input topic.SuggestTopicInput) (*topic.SuggestResult, error)
}

// TopicHandler serves topic REST endpoints.
type TopicHandler struct {
	svc             topicService
	exposeSynthetic bool
	log             *slog.Logger
}

// NewTopicHandler creates a TopicHandler. When exposeSynthetic is set,
// responses built from fallback data carry SyntheticHeader.
func NewTopicHandler(svc topicService, exposeSynthetic bool, logger *slog.Logger) *TopicHandler {
	return &TopicHandler{svc: svc, exposeSynthetic: exposeSynthetic, log: logger.With("handler", "topic")}
}

// isoMillis is the ISO-8601 UTC layout with millisecond precision.
const isoMillis = "2006-01-02T15:04:05.000Z07:00"

type topicResponse struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Slug      string  `json:"slug"`
	MediaURL  *string `json:"mediaUrl"`
	MediaType string  `json:"mediaType"`
	IsActive  *bool   `json:"isActive,omitempty"`
}

type dailyTopicsResponse struct {
	Topics     []topicResponse `json:"topics"`
	NextDropAt string          `json:"nextDropAt"`
	Count      int             `json:"count"`
}

type suggestResponse struct {
	Success      bool   `json:"success"`
	SuggestionID string `json:"suggestionId"`
}

// Daily handles GET /topics/daily.
func (h *TopicHandler) Daily(w http.ResponseWriter, r *http.Request) {
	input, err := parseDailyQuery(r)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to fetch topics")
		return
	}

	res, err := h.svc.ListDaily(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to fetch topics")
		return
	}

	markSynthetic(w, h.exposeSynthetic, res.Synthetic)
	writeJSON(w, http.StatusOK, toDailyTopicsResponse(res))
}

// Suggest handles POST /topics/suggest.
func (h *TopicHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	var input topic.SuggestTopicInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, h.log, err, "Failed to submit suggestion")
		return
	}

	res, err := h.svc.SuggestTopic(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to submit suggestion")
		return
	}

	markSynthetic(w, h.exposeSynthetic, res.Synthetic)
	writeJSON(w, http.StatusOK, suggestResponse{Success: true, SuggestionID: res.SuggestionID})
}

// parseDailyQuery reads timezone and count. An absent count defaults to
// topic.DefaultCount; a present one must be an integer.
func parseDailyQuery(r *http.Request) (topic.DailyTopicsInput, error) {
	q := r.URL.Query()
	input := topic.DailyTopicsInput{
		Timezone: topic.DefaultTimezone,
		Count:    topic.DefaultCount,
	}

	if q.Has("timezone") {
		input.Timezone = q.Get("timezone")
	}
	if q.Has("count") {
		n, err := strconv.Atoi(q.Get("count"))
		if err != nil {
			return input, domain.NewValidationError("count", "must be an integer")
		}
		input.Count = n
	}

	return input, nil
}

func toDailyTopicsResponse(res *topic.DailyTopics) dailyTopicsResponse {
	topics := make([]topicResponse, len(res.Topics))
	for i, t := range res.Topics {
		topics[i] = topicResponse{
			ID:        t.ID,
			Title:     t.Title,
			Slug:      t.Slug,
			MediaURL:  t.MediaURL,
			MediaType: t.MediaType.String(),
		}
		if res.Synthetic {
			active := t.IsActive
			topics[i].IsActive = &active
		}
	}

	return dailyTopicsResponse{
		Topics:     topics,
		NextDropAt: res.NextDropAt.UTC().Format(isoMillis),
		Count:      len(topics),
	}
}
