package entry

import (
	"context"
)

// EntryRepository - interface for the wfh_entries table
type EntryRepository interface {
	Create(ctx context.Context, e WfhEntry) (WfhEntry, error)
	GetByID(ctx context.Context, id string) (WfhEntry, error)
	GetWithRefsByID(ctx context.Context, id string) (EntryWithRefs, error)
	// List returns entries matching the filter, newest date first, with
	// staff and reason embedded.
	List(ctx context.Context, filter ListFilter) ([]EntryWithRefs, error)
	Update(ctx context.Context, e WfhEntry) (WfhEntry, error)
	Delete(ctx context.Context, id string) error

	// Upsert inserts the entry unless one already exists for the same
	// (staff, date) pair. Used by the seeder.
	Upsert(ctx context.Context, e WfhEntry) (created bool, err error)
}
