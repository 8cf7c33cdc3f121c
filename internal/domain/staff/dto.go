package staff

import (
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/pkg/validator"
)

// StaffResponse represents the response structure for a staff member.
type StaffResponse struct {
	ID         string    `json:"id"`
	FullName   string    `json:"fullName"`
	Email      *string   `json:"email"`
	Active     bool      `json:"active"`
	Role       Role      `json:"role"`
	CreatedAt  time.Time `json:"createdAt"`
	EntryCount *int64    `json:"entryCount,omitempty"`
}

// CreateStaffRequest represents the request structure for creating a staff member.
// Active defaults to true and Role to USER when omitted.
type CreateStaffRequest struct {
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (r *CreateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "Full name is required",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleUser), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be USER or ADMIN",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// UpdateStaffRequest represents the request structure for updating a staff
// member. The update is a full replace; omitted fields fall back to the
// create defaults.
type UpdateStaffRequest struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email,omitempty"`
	Active   *bool   `json:"active,omitempty"`
	Role     *string `json:"role,omitempty"`
}

func (r *UpdateStaffRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.ID) {
		errs = append(errs, validator.ValidationError{
			Field:   "id",
			Message: "id is required",
		})
	}

	if validator.IsEmpty(r.FullName) {
		errs = append(errs, validator.ValidationError{
			Field:   "fullName",
			Message: "Full name is required",
		})
	}

	if r.Email != nil && !validator.IsEmpty(*r.Email) && !validator.IsValidEmail(*r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email",
		})
	}

	if r.Role != nil && !validator.IsInSlice(*r.Role, []string{string(RoleUser), string(RoleAdmin)}) {
		errs = append(errs, validator.ValidationError{
			Field:   "role",
			Message: "role must be USER or ADMIN",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}
