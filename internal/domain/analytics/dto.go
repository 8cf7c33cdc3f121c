package analytics

import "time"

// ========== ANALYTICS REPORT ==========

// AnalyticsResponse is the combined response for the reports endpoint.
type AnalyticsResponse struct {
	DateRange       DateRange        `json:"dateRange"`
	Summary         Summary          `json:"summary"`
	StaffTrends     []StaffTrend     `json:"staffTrends"`
	ReasonTrends    []ReasonTrend    `json:"reasonTrends"`
	DayOfWeekTrends []DayOfWeekTrend `json:"dayOfWeekTrends"`
	MonthlyTrends   []MonthlyTrend   `json:"monthlyTrends"`
	Streaks         StreakReport     `json:"streaks"`
	Insights        []Insight        `json:"insights"`
}

// DateRange is the closed interval the report covers.
type DateRange struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// Summary holds the global totals for the range.
type Summary struct {
	TotalEntries  int64   `json:"totalEntries"`
	TotalHours    float64 `json:"totalHours"`
	AverageHours  float64 `json:"averageHours"`
	UniqueStaff   int     `json:"uniqueStaff"`
	UniqueReasons int     `json:"uniqueReasons"`
}

// TrendStaff is the staff summary embedded in a staff trend.
type TrendStaff struct {
	ID       string  `json:"id"`
	FullName string  `json:"fullName"`
	Email    *string `json:"email"`
	Active   bool    `json:"active"`
}

// StaffTrend is one staff member's usage within the range, with the
// heuristic misuse risk score.
type StaffTrend struct {
	Staff              TrendStaff `json:"staff"`
	Entries            int64      `json:"entries"`
	TotalHours         float64    `json:"totalHours"`
	AverageHoursPerDay float64    `json:"averageHoursPerDay"`
	RiskScore          int        `json:"riskScore"`
}

// TrendReason is the reason summary embedded in a reason trend. Entries
// with only a free-text reason are bucketed under the "freetext" id.
type TrendReason struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ReasonTrend is one reason's usage within the range.
type ReasonTrend struct {
	Reason     TrendReason `json:"reason"`
	Entries    int64       `json:"entries"`
	TotalHours float64     `json:"totalHours"`
	Percentage int         `json:"percentage"`
}

// DayOfWeekTrend is aggregate usage for one weekday, 0=Sunday..6=Saturday.
type DayOfWeekTrend struct {
	DayOfWeek    int     `json:"dayOfWeek"`
	DayName      string  `json:"dayName"`
	Count        int64   `json:"count"`
	TotalHours   float64 `json:"totalHours"`
	AverageHours float64 `json:"averageHours"`
}

// MonthlyTrend is aggregate usage for one calendar month ("YYYY-MM").
type MonthlyTrend struct {
	Month       string  `json:"month"`
	Count       int64   `json:"count"`
	TotalHours  float64 `json:"totalHours"`
	UniqueStaff int64   `json:"uniqueStaff"`
}

// Insight is a derived natural-language observation with a severity tag.
type Insight struct {
	Type     string `json:"type"`
	Title    string `json:"title"`
	Message  string `json:"message"`
	Severity string `json:"severity"`
}

// StreakReport holds the consecutive-day analysis over the recent-entry
// window. Only staff with streaks longer than 3 days appear in Details.
type StreakReport struct {
	MaxConsecutive int            `json:"maxConsecutive"`
	Details        []StreakDetail `json:"details"`
}

// StreakDetail is one staff member's longest consecutive-day run.
type StreakDetail struct {
	StaffID         string `json:"staffId"`
	Staff           string `json:"staff"`
	ConsecutiveDays int    `json:"consecutiveDays"`
}
