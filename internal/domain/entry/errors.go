package entry

import "errors"

var (
	ErrEntryNotFound    = errors.New("Entry not found")
	ErrDuplicateEntry   = errors.New("An entry already exists for this staff member on this date")
	ErrInvalidReference = errors.New("Referenced staff member or reason does not exist")
	ErrEntryForbidden   = errors.New("Not allowed to modify this entry")
)
