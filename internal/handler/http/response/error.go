package response

import (
	"errors"
	"net/http"

	"github.com/go-chi/httplog/v3"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/auth"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/entry"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/reason"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/staff"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/validator"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationFailed(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid or expired token")
	case errors.Is(err, auth.ErrUnknownEmail):
		Unauthorized(w, "No staff member with that email")
	case errors.Is(err, auth.ErrStaffInactive):
		Forbidden(w, "Staff member is inactive")

	// Staff domain errors
	case errors.Is(err, staff.ErrStaffNotFound):
		NotFound(w, "Staff member not found")
	case errors.Is(err, staff.ErrStaffNameExists):
		Conflict(w, "A staff member with this name already exists")

	// Reason domain errors
	case errors.Is(err, reason.ErrReasonNotFound):
		NotFound(w, "Reason not found")
	case errors.Is(err, reason.ErrReasonNameExists):
		Conflict(w, "A reason with this name already exists")

	// Entry domain errors
	case errors.Is(err, entry.ErrEntryNotFound):
		NotFound(w, "WFH entry not found")
	case errors.Is(err, entry.ErrDuplicateEntry):
		Conflict(w, "An entry for this staff member and date already exists")
	case errors.Is(err, entry.ErrInvalidReference):
		BadRequest(w, "Referenced staff member or reason does not exist")
	case errors.Is(err, entry.ErrEntryForbidden):
		Forbidden(w, "Not allowed to modify this entry")

	// Default: detail goes to the request log, the client gets the
	// generic message.
	default:
		httplog.SetError(r.Context(), err)
		InternalServerError(w, "An unexpected error occurred")
	}
}
