package analytics

import (
	"context"
	"time"
)

// StaffTotalsRow combines one staff member's aggregates with the staff
// columns needed for presentation, in a single query.
type StaffTotalsRow struct {
	StaffID  string
	FullName string
	Email    *string
	Active   bool
	Entries  int64
	SumHours *float64 // nil when no entry in the group carries hours
}

// ReasonTotalsRow combines one reason's aggregates. ReasonID and Name are
// nil for the free-text bucket.
type ReasonTotalsRow struct {
	ReasonID *string
	Name     *string
	Entries  int64
	SumHours *float64
}

// DayOfWeekRow is aggregate usage for one weekday. Missing hours count as 8.
type DayOfWeekRow struct {
	DayOfWeek  int
	Count      int64
	TotalHours float64
	AvgHours   float64
}

// MonthlyRow is aggregate usage for one "YYYY-MM" month.
type MonthlyRow struct {
	Month       string
	Count       int64
	TotalHours  float64
	UniqueStaff int64
}

// TotalsRow holds the global aggregates over raw (nullable) hours.
type TotalsRow struct {
	Count    int64
	SumHours *float64
	AvgHours *float64
}

// RecentEntryRow is the slice of an entry the streak detector needs.
type RecentEntryRow struct {
	StaffID   string
	StaffName string
	Date      time.Time
}

// AnalyticsRepository defines the aggregate queries behind the report.
// The service dispatches them concurrently without a shared snapshot, so
// under concurrent writes the aggregates may diverge slightly.
type AnalyticsRepository interface {
	// StaffTotals returns per-staff entry counts and hour sums for the
	// range, ordered by count descending.
	StaffTotals(ctx context.Context, start, end time.Time) ([]StaffTotalsRow, error)

	// TopStaff is StaffTotals capped to the heaviest users.
	TopStaff(ctx context.Context, start, end time.Time, limit int) ([]StaffTotalsRow, error)

	// ReasonTotals returns per-reason entry counts and hour sums for the
	// range, ordered by count descending, with a NULL group for
	// free-text-only entries.
	ReasonTotals(ctx context.Context, start, end time.Time) ([]ReasonTotalsRow, error)

	// DayOfWeekTotals returns counts and hour totals per weekday
	// (0=Sunday..6=Saturday), ordered by weekday.
	DayOfWeekTotals(ctx context.Context, start, end time.Time) ([]DayOfWeekRow, error)

	// MonthlyTotals returns per-month aggregates ascending, keeping only
	// the most recent `months` months inside the range.
	MonthlyTotals(ctx context.Context, start, end time.Time, months int) ([]MonthlyRow, error)

	// Totals returns the global count/sum/average for the range.
	Totals(ctx context.Context, start, end time.Time) (TotalsRow, error)

	// RecentEntries returns the most recent entries by creation time,
	// deliberately not restricted to the report range.
	RecentEntries(ctx context.Context, limit int) ([]RecentEntryRow, error)
}
