package staff

import (
	"context"
)

// StaffRepository - interface for the staff table
type StaffRepository interface {
	Create(ctx context.Context, s Staff) (Staff, error)
	GetByID(ctx context.Context, id string) (Staff, error)
	GetByEmail(ctx context.Context, email string) (Staff, error)
	ListWithEntryCounts(ctx context.Context) ([]StaffWithCount, error)
	Update(ctx context.Context, s Staff) (Staff, error)
	Delete(ctx context.Context, id string) error

	// UpsertByFullName inserts the staff member unless one with the same
	// full name exists, returning the stored row either way. Used by the
	// seeder; created reports whether a new row was inserted.
	UpsertByFullName(ctx context.Context, s Staff) (result Staff, created bool, err error)
}
