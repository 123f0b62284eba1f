package rating

import (
	"math"

	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/validate"
)

// SubmitRatingInput holds the parameters for submitting a rating.
// Value is a float so that fractional input is reported as a validation
// failure rather than rejected during decoding.
type SubmitRatingInput struct {
	TopicID  string   `json:"topicId"  validate:"required"`
	DeviceID string   `json:"deviceId" validate:"required"`
	Value    *float64 `json:"value"    validate:"required,min=0,max=100"`
	HotTake  *string  `json:"hotTake"  validate:"omitempty,max=280"`
	Timezone *string  `json:"timezone"`
}

// Validate checks all fields and collects all errors.
func (i SubmitRatingInput) Validate() error {
	errs := validate.Fields(i)

	if i.Value != nil && *i.Value != math.Trunc(*i.Value) {
		errs = append(errs, domain.FieldError{Field: "value", Message: "must be an integer"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// GetResultsInput identifies the topic whose results are requested.
type GetResultsInput struct {
	TopicID string `json:"topicId" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i GetResultsInput) Validate() error {
	if errs := validate.Fields(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
