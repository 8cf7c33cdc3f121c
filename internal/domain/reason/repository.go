package reason

import (
	"context"
)

// ReasonRepository - interface for the reasons table
type ReasonRepository interface {
	Create(ctx context.Context, rs Reason) (Reason, error)
	GetByID(ctx context.Context, id string) (Reason, error)
	// ListWithEntryCounts returns reasons ordered by name. When activeOnly
	// is set, deactivated reasons are filtered out.
	ListWithEntryCounts(ctx context.Context, activeOnly bool) ([]ReasonWithCount, error)
	Update(ctx context.Context, rs Reason) (Reason, error)
	Delete(ctx context.Context, id string) error

	// UpsertByName inserts the reason unless one with the same name exists,
	// returning the stored row either way.
	UpsertByName(ctx context.Context, rs Reason) (result Reason, created bool, err error)
}
