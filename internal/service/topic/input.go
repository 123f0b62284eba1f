package topic

import (
	"github.com/philleif/tempcheck-api/internal/domain"
	"github.com/philleif/tempcheck-api/internal/service/validate"
)

// DailyTopicsInput holds the parameters for listing the topics of the day.
type DailyTopicsInput struct {
	// Timezone is accepted for forward compatibility and does not affect selection.
	Timezone string `json:"timezone"`
	Count    int    `json:"count" validate:"min=1,max=50"`
}

// Validate checks all fields and collects all errors.
func (i DailyTopicsInput) Validate() error {
	if errs := validate.Fields(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

// SuggestTopicInput holds the parameters for proposing a new topic.
type SuggestTopicInput struct {
	Title    string `json:"title"    validate:"required,max=100"`
	DeviceID string `json:"deviceId" validate:"required"`
}

// Validate checks all fields and collects all errors.
func (i SuggestTopicInput) Validate() error {
	if errs := validate.Fields(i); len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}
