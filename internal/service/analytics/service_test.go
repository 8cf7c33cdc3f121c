package analytics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wfhtracker/wfh-backend-go/internal/domain/analytics"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestRiskScore(t *testing.T) {
	tests := []struct {
		name         string
		entries      int64
		avgHours     float64
		totalEntries int64
		want         int
	}{
		{
			name:         "heavy share and high hours",
			entries:      35,
			avgHours:     8,
			totalEntries: 100,
			want:         50, // 30 for share over 20% plus 20 for volume over 30
		},
		{
			name:         "light usage scores zero",
			entries:      5,
			avgHours:     8,
			totalEntries: 100,
			want:         0,
		},
		{
			name:         "extreme hours",
			entries:      5,
			avgHours:     11,
			totalEntries: 100,
			want:         25,
		},
		{
			name:         "moderate hours deviation",
			entries:      5,
			avgHours:     5.5,
			totalEntries: 100,
			want:         15,
		},
		{
			name:         "mid share band",
			entries:      16,
			avgHours:     8,
			totalEntries: 100,
			want:         20,
		},
		{
			name:         "no entries at all",
			entries:      0,
			avgHours:     0,
			totalEntries: 0,
			want:         25, // hour deviation still fires on a zero average
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, riskScore(tt.entries, tt.avgHours, tt.totalEntries))
		})
	}
}

func TestRiskScoreMonotonicInEntries(t *testing.T) {
	// Holding hours and the denominator fixed, more entries never lowers risk.
	prev := -1
	for entries := int64(0); entries <= 50; entries++ {
		got := riskScore(entries, 8, 100)
		assert.GreaterOrEqual(t, got, prev, "entries=%d", entries)
		prev = got
	}
}

func TestRiskScoreBounded(t *testing.T) {
	got := riskScore(1000, 23, 1000)
	assert.LessOrEqual(t, got, 100)
	assert.GreaterOrEqual(t, got, 0)
}

func TestFindConsecutiveDays(t *testing.T) {
	rows := []analytics.RecentEntryRow{
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-06-05")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-06-03")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-06-02")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-06-01")},
	}

	max, details := findConsecutiveDays(rows)

	assert.Equal(t, 3, max)
	assert.Empty(t, details, "a 3-day run is not long enough for the detail list")
}

func TestFindConsecutiveDaysDetails(t *testing.T) {
	rows := []analytics.RecentEntryRow{
		{StaffID: "s2", StaffName: "Yvette Gottschalk", Date: date("2025-07-10")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-07-04")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-07-03")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-07-02")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-07-01")},
		{StaffID: "s1", StaffName: "Schalk Lotz", Date: date("2025-06-30")},
	}

	max, details := findConsecutiveDays(rows)

	assert.Equal(t, 5, max)
	require.Len(t, details, 1)
	assert.Equal(t, "s1", details[0].StaffID)
	assert.Equal(t, "Schalk Lotz", details[0].Staff)
	assert.Equal(t, 5, details[0].ConsecutiveDays)
}

func TestFindConsecutiveDaysAcrossMonthBoundary(t *testing.T) {
	rows := []analytics.RecentEntryRow{
		{StaffID: "s1", StaffName: "Werner Cloete", Date: date("2025-05-30")},
		{StaffID: "s1", StaffName: "Werner Cloete", Date: date("2025-05-31")},
		{StaffID: "s1", StaffName: "Werner Cloete", Date: date("2025-06-01")},
		{StaffID: "s1", StaffName: "Werner Cloete", Date: date("2025-06-02")},
	}

	max, details := findConsecutiveDays(rows)

	assert.Equal(t, 4, max)
	require.Len(t, details, 1)
	assert.Equal(t, 4, details[0].ConsecutiveDays)
}

func TestFindConsecutiveDaysEmpty(t *testing.T) {
	max, details := findConsecutiveDays(nil)
	assert.Equal(t, 0, max)
	assert.Empty(t, details)
}

func TestResolveDateRange(t *testing.T) {
	now := date("2025-08-15")

	t.Run("explicit dates", func(t *testing.T) {
		start, end := resolveDateRange("2025-01-01", "2025-02-01", now)
		assert.Equal(t, date("2025-01-01"), start)
		assert.Equal(t, date("2025-02-01"), end)
	})

	t.Run("defaults to trailing three months", func(t *testing.T) {
		start, end := resolveDateRange("", "", now)
		assert.Equal(t, date("2025-05-15"), start)
		assert.Equal(t, now, end)
	})

	t.Run("malformed dates fall back to defaults", func(t *testing.T) {
		start, end := resolveDateRange("not-a-date", "2025/02/01", now)
		assert.Equal(t, date("2025-05-15"), start)
		assert.Equal(t, now, end)
	})

	t.Run("partial input", func(t *testing.T) {
		start, end := resolveDateRange("2025-01-01", "", now)
		assert.Equal(t, date("2025-01-01"), start)
		assert.Equal(t, now, end)
	})
}

func TestBuildInsightsOrderAndContent(t *testing.T) {
	topRows := []analytics.StaffTotalsRow{
		{StaffID: "s1", FullName: "Schalk Lotz", Entries: 30},
	}
	reasonRows := []analytics.ReasonTotalsRow{
		{Entries: 45},
	}
	dayRows := []analytics.DayOfWeekRow{
		{DayOfWeek: 1, Count: 80},
		{DayOfWeek: 6, Count: 4},
	}

	insights := buildInsights(topRows, reasonRows, dayRows, 7, 100)

	require.Len(t, insights, 4)

	assert.Equal(t, "Most Active WFH User", insights[0].Title)
	assert.Equal(t, "info", insights[0].Type)
	assert.Equal(t, "high", insights[0].Severity)
	assert.Equal(t, "Highest WFH usage represents 30% of all entries", insights[0].Message)

	assert.Equal(t, "Weekend WFH Activity", insights[1].Title)
	assert.Equal(t, "warning", insights[1].Type)
	assert.Equal(t, "medium", insights[1].Severity)
	assert.Equal(t, "4 WFH entries logged on weekends - verify if legitimate", insights[1].Message)

	assert.Equal(t, "Most Common WFH Reason", insights[2].Title)
	assert.Equal(t, "medium", insights[2].Severity)
	assert.Equal(t, "Top reason accounts for 45% of all WFH requests", insights[2].Message)

	assert.Equal(t, "Extended WFH Periods", insights[3].Title)
	assert.Equal(t, "warning", insights[3].Type)
	assert.Equal(t, "medium", insights[3].Severity)
	assert.Equal(t, "Found 7 consecutive WFH days - review for legitimacy", insights[3].Message)
}

func TestBuildInsightsWeekendOnlyWhenWeekendEntriesExist(t *testing.T) {
	dayRows := []analytics.DayOfWeekRow{
		{DayOfWeek: 1, Count: 10},
		{DayOfWeek: 3, Count: 7},
	}

	insights := buildInsights(nil, nil, dayRows, 0, 17)

	for _, in := range insights {
		assert.NotEqual(t, "Weekend WFH Activity", in.Title)
	}
}

func TestBuildInsightsStreakThreshold(t *testing.T) {
	insights := buildInsights(nil, nil, nil, 5, 10)
	assert.Empty(t, insights, "a 5-day streak is below the reporting threshold")

	insights = buildInsights(nil, nil, nil, 11, 10)
	require.Len(t, insights, 1)
	assert.Equal(t, "high", insights[0].Severity)
}

func TestBuildStaffTrends(t *testing.T) {
	hours := 40.0
	rows := []analytics.StaffTotalsRow{
		{StaffID: "s1", FullName: "Schalk Lotz", Entries: 5, SumHours: &hours},
		{StaffID: "s2", FullName: "Olan Moodley", Entries: 3, SumHours: nil},
	}

	trends := buildStaffTrends(rows, 50)

	require.Len(t, trends, 2)
	assert.Equal(t, 40.0, trends[0].TotalHours)
	assert.Equal(t, 8.0, trends[0].AverageHoursPerDay)
	assert.Equal(t, 0, trends[0].RiskScore)

	// Missing hours are presented as standard 8-hour days.
	assert.Equal(t, 24.0, trends[1].TotalHours)
	assert.Equal(t, 8.0, trends[1].AverageHoursPerDay)
}

func TestBuildReasonTrends(t *testing.T) {
	reasonID := "r1"
	name := "Medical"
	rows := []analytics.ReasonTotalsRow{
		{ReasonID: &reasonID, Name: &name, Entries: 30},
		{ReasonID: nil, Name: nil, Entries: 10},
	}

	trends := buildReasonTrends(rows, 40)

	require.Len(t, trends, 2)
	assert.Equal(t, "Medical", trends[0].Reason.Name)
	assert.Equal(t, 75, trends[0].Percentage)

	assert.Equal(t, "freetext", trends[1].Reason.ID)
	assert.Equal(t, "Free Text Reasons", trends[1].Reason.Name)
	assert.Equal(t, 25, trends[1].Percentage)
}

func TestRoundShareZeroTotal(t *testing.T) {
	assert.Equal(t, 0, roundShare(5, 0))
}
