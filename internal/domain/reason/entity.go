package reason

import "time"

// Reason entity. Entries may reference a reason or carry a free-text
// reason instead.
type Reason struct {
	ID        string
	Name      string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReasonWithCount carries a reason row together with its WFH entry count.
type ReasonWithCount struct {
	Reason
	EntryCount int64
}
