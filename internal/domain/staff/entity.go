package staff

import "time"

type Role string

const (
	RoleUser  Role = "USER"
	RoleAdmin Role = "ADMIN"
)

// Staff entity
type Staff struct {
	ID        string
	FullName  string
	Email     *string
	Active    bool
	Role      Role
	CreatedAt time.Time
	UpdatedAt time.Time
}

// StaffWithCount carries a staff row together with its WFH entry count,
// used by the list endpoint.
type StaffWithCount struct {
	Staff
	EntryCount int64
}
