package reason

import (
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/pkg/validator"
)

// ReasonResponse represents the response structure for a reason.
type ReasonResponse struct {
	ID         string    `json:"id"`
	Name       string    `json:"name"`
	IsActive   bool      `json:"isActive"`
	CreatedAt  time.Time `json:"createdAt"`
	EntryCount *int64    `json:"entryCount,omitempty"`
}

// CreateReasonRequest represents the request structure for creating a reason.
// IsActive defaults to true when omitted.
type CreateReasonRequest struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (r *CreateReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Reason name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateReasonRequest represents the request structure for updating a reason.
type UpdateReasonRequest struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	IsActive *bool  `json:"isActive,omitempty"`
}

func (r *UpdateReasonRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{
			Field:   "name",
			Message: "Reason name is required",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
