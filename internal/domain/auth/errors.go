package auth

import "errors"

var (
	ErrInvalidToken  = errors.New("Invalid or missing token")
	ErrUnknownEmail  = errors.New("No staff member with this email")
	ErrStaffInactive = errors.New("Staff member is deactivated")
)
