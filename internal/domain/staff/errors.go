package staff

import "errors"

var (
	ErrStaffNotFound   = errors.New("Staff member not found")
	ErrStaffNameExists = errors.New("Staff member with this name already exists")
)
