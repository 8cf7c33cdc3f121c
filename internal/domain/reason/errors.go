package reason

import "errors"

var (
	ErrReasonNotFound   = errors.New("Reason not found")
	ErrReasonNameExists = errors.New("Reason with this name already exists")
)
