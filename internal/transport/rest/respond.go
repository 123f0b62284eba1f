package rest

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"reflect"

	"github.com/philleif/tempcheck-api/internal/domain"
)

// SyntheticHeader marks responses built from fallback data when enabled.
const SyntheticHeader = "X-Tempcheck-Synthetic"

const invalidRequestMessage = "Invalid request data"

type errorResponse struct {
	Error   string          `json:"error"`
	Details []detailMessage `json:"details,omitempty"`
}

type detailMessage struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func writeValidation(w http.ResponseWriter, ve *domain.ValidationError) {
	details := make([]detailMessage, len(ve.Errors))
	for i, fe := range ve.Errors {
		details[i] = detailMessage{Field: fe.Field, Message: fe.Message}
	}
	writeJSON(w, http.StatusBadRequest, errorResponse{Error: invalidRequestMessage, Details: details})
}

// writeServiceError answers a failed request: validation errors become 400
// with details, anything else is logged and becomes 500 with message.
func writeServiceError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error, message string) {
	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		writeValidation(w, ve)
		return
	}
	log.ErrorContext(r.Context(), "request failed", slog.String("error", err.Error()))
	writeError(w, http.StatusInternalServerError, message)
}

// decodeJSON decodes the request body into dst. A JSON value of the wrong
// type for a field, or a body that is not an object, is reported as a
// *domain.ValidationError; any other decoding failure is returned as is.
func decodeJSON(r *http.Request, dst any) error {
	err := json.NewDecoder(r.Body).Decode(dst)
	if err == nil {
		return nil
	}

	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		if typeErr.Field == "" {
			return domain.NewValidationError("body", "expected object, received "+typeErr.Value)
		}
		msg := fmt.Sprintf("expected %s, received %s", jsonKind(typeErr.Type), typeErr.Value)
		return domain.NewValidationError(typeErr.Field, msg)
	}
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("decode body: empty body")
	}
	return fmt.Errorf("decode body: %w", err)
}

func jsonKind(t reflect.Type) string {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	switch t.Kind() {
	case reflect.String:
		return "string"
	case reflect.Bool:
		return "boolean"
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Float32, reflect.Float64:
		return "number"
	case reflect.Slice, reflect.Array:
		return "array"
	default:
		return "object"
	}
}

// markSynthetic sets SyntheticHeader when expose is on and the payload is synthetic.
func markSynthetic(w http.ResponseWriter, expose, synthetic bool) {
	if expose && synthetic {
		w.Header().Set(SyntheticHeader, "true")
	}
}
