package entry

import "time"

// WfhEntry entity. Exactly one of ReasonID or FreeTextReason is present;
// the input layer enforces it, the table does not.
type WfhEntry struct {
	ID             string
	StaffID        string
	ReasonID       *string
	FreeTextReason *string
	Date           time.Time
	Hours          *float64
	Notes          *string
	CreatedBy      string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// StaffRef is the embedded staff summary returned with an entry.
type StaffRef struct {
	ID       string `json:"id"`
	FullName string `json:"fullName"`
}

// ReasonRef is the embedded reason summary returned with an entry.
type ReasonRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// EntryWithRefs carries an entry row together with its staff and, when the
// entry references one, its reason.
type EntryWithRefs struct {
	WfhEntry
	Staff  StaffRef
	Reason *ReasonRef
}

// ListFilter narrows the entry listing. Zero values mean no filtering on
// that dimension.
type ListFilter struct {
	StaffID  string
	ReasonID string
	DateFrom *time.Time
	DateTo   *time.Time
}
