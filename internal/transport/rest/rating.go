package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/rating"
)

// ratingService defines the minimal interface needed by RatingHandler.
type ratingService interface {
	SubmitRating(ctx context.Context, input rating.SubmitRatingInput) (*rating.SubmitResult, error)
	GetResults(ctx context.Context, input rating.GetResultsInput) (*rating.Results, error)
}

// RatingHandler serves rating REST endpoints.
type RatingHandler struct {
	svc             ratingService
	exposeSynthetic bool
	log             *slog.Logger
}

// NewRatingHandler creates a RatingHandler. When exposeSynthetic is set,
// responses built from fallback data carry SyntheticHeader.
func NewRatingHandler(svc ratingService, exposeSynthetic bool, logger *slog.Logger) *RatingHandler {
	return &RatingHandler{svc: svc, exposeSynthetic: exposeSynthetic, log: logger.With("handler", "rating")}
}

type submitRatingResponse struct {
	Success  bool   `json:"success"`
	RatingID string `json:"ratingId"`
}

type resultsResponse struct {
	TopicID       string         `json:"topicId"`
	GlobalAverage int            `json:"globalAverage"`
	TotalRatings  int            `json:"totalRatings"`
	Distribution  map[string]int `json:"distribution"`
}

// Submit handles POST /ratings/submit.
func (h *RatingHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var input rating.SubmitRatingInput
	if err := decodeJSON(r, &input); err != nil {
		writeServiceError(w, r, h.log, err, "Failed to submit rating")
		return
	}

	res, err := h.svc.SubmitRating(r.Context(), input)
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to submit rating")
		return
	}

	markSynthetic(w, h.exposeSynthetic, res.Synthetic)
	writeJSON(w, http.StatusOK, submitRatingResponse{Success: true, RatingID: res.RatingID})
}

// Results handles GET /ratings/results/{topicId}.
func (h *RatingHandler) Results(w http.ResponseWriter, r *http.Request) {
	topicID := r.PathValue("topicId")
	if topicID == "" {
		h.MissingTopic(w, r)
		return
	}

	res, err := h.svc.GetResults(r.Context(), rating.GetResultsInput{TopicID: topicID})
	if err != nil {
		writeServiceError(w, r, h.log, err, "Failed to fetch results")
		return
	}

	markSynthetic(w, h.exposeSynthetic, res.Synthetic)
	writeJSON(w, http.StatusOK, toResultsResponse(res))
}

// MissingTopic handles GET /ratings/results/ without a topic id.
func (h *RatingHandler) MissingTopic(w http.ResponseWriter, r *http.Request) {
	writeError(w, http.StatusBadRequest, "Topic ID is required")
}

func toResultsResponse(res *rating.Results) resultsResponse {
	buckets := domain.RatingBuckets()
	distribution := make(map[string]int, len(buckets))
	for i, b := range buckets {
		distribution[b.Label] = res.Distribution[i]
	}

	return resultsResponse{
		TopicID:       res.TopicID,
		GlobalAverage: res.GlobalAverage,
		TotalRatings:  res.TotalRatings,
		Distribution:  distribution,
	}
}
