package entry

import (
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/pkg/validator"
)

// EntryResponse represents the response structure for a WFH entry, with the
// staff member and reason embedded the way the list screens consume them.
type EntryResponse struct {
	ID             string     `json:"id"`
	StaffID        string     `json:"staffId"`
	ReasonID       *string    `json:"reasonId"`
	FreeTextReason *string    `json:"freeTextReason"`
	Date           string     `json:"date"`
	Hours          *float64   `json:"hours"`
	Notes          *string    `json:"notes"`
	CreatedBy      string     `json:"createdBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	Staff          StaffRef   `json:"staff"`
	Reason         *ReasonRef `json:"reason"`
}

// NewEntryResponse maps a joined entry row to its response shape.
func NewEntryResponse(e EntryWithRefs) EntryResponse {
	return EntryResponse{
		ID:             e.ID,
		StaffID:        e.StaffID,
		ReasonID:       e.ReasonID,
		FreeTextReason: e.FreeTextReason,
		Date:           e.Date.Format("2006-01-02"),
		Hours:          e.Hours,
		Notes:          e.Notes,
		CreatedBy:      e.CreatedBy,
		CreatedAt:      e.CreatedAt,
		Staff:          e.Staff,
		Reason:         e.Reason,
	}
}

// CreateEntryRequest represents the request structure for logging a WFH
// entry. Exactly one of ReasonID or FreeTextReason must be set.
type CreateEntryRequest struct {
	StaffID        string   `json:"staffId"`
	ReasonID       *string  `json:"reasonId,omitempty"`
	FreeTextReason *string  `json:"freeTextReason,omitempty"`
	Date           string   `json:"date"`
	Hours          *float64 `json:"hours,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

func (r *CreateEntryRequest) Validate() error {
	return validateEntryFields(r.StaffID, r.ReasonID, r.FreeTextReason, r.Date, r.Hours, nil)
}

// UpdateEntryRequest represents the request structure for updating a WFH
// entry. Same rules as create.
type UpdateEntryRequest struct {
	ID             string   `json:"id"`
	StaffID        string   `json:"staffId"`
	ReasonID       *string  `json:"reasonId,omitempty"`
	FreeTextReason *string  `json:"freeTextReason,omitempty"`
	Date           string   `json:"date"`
	Hours          *float64 `json:"hours,omitempty"`
	Notes          *string  `json:"notes,omitempty"`
}

func (r *UpdateEntryRequest) Validate() error {
	return validateEntryFields(r.StaffID, r.ReasonID, r.FreeTextReason, r.Date, r.Hours, &r.ID)
}

func validateEntryFields(staffID string, reasonID, freeText *string, date string, hours *float64, id *string) error {
	var errs validator.ValidationErrors

	if id != nil && validator.IsEmpty(*id) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(staffID) {
		errs = append(errs, validator.ValidationError{
			Field:   "staffId",
			Message: "Staff member is required",
		})
	}

	if validator.IsEmpty(date) {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date is required",
		})
	} else if _, ok := validator.IsValidDate(date); !ok {
		errs = append(errs, validator.ValidationError{
			Field:   "date",
			Message: "Date must be in YYYY-MM-DD format",
		})
	}

	hasReason := reasonID != nil && !validator.IsEmpty(*reasonID)
	hasFreeText := freeText != nil && !validator.IsEmpty(*freeText)
	if !hasReason && !hasFreeText {
		errs = append(errs, validator.ValidationError{
			Field:   "reasonId",
			Message: "Either a reason or free text reason is required",
		})
	} else if hasReason && hasFreeText {
		errs = append(errs, validator.ValidationError{
			Field:   "freeTextReason",
			Message: "Provide either a reason or a free text reason, not both",
		})
	}

	if hours != nil && (*hours <= 0 || *hours > 24) {
		errs = append(errs, validator.ValidationError{
			Field:   "hours",
			Message: "hours must be between 0 and 24",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
