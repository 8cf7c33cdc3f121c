package auth

import (
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/validator"
)

// LoginRequest is the development login: email only, no password. Carried
// over from the incomplete credentials flow this replaces.
type LoginRequest struct {
	Email string `json:"email"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "email is required",
		})
	} else if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{
			Field:   "email",
			Message: "Invalid email",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// LoginResponse carries the issued access token and the staff member it
// belongs to.
type LoginResponse struct {
	AccessToken string              `json:"accessToken"`
	ExpiresAt   int64               `json:"expiresAt"`
	Staff       staff.StaffResponse `json:"staff"`
}
