package analytics

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/domain/analytics"
	"golang.org/x/sync/errgroup"
)

const (
	// monthlyTrendCap bounds the monthly series to the most recent year.
	monthlyTrendCap = 12
	// topStaffLimit bounds the heavy-user query behind the insights.
	topStaffLimit = 10
	// recentEntryWindow is the streak detector's input size. The window is
	// by creation time and intentionally ignores the report date range;
	// narrowing it to the range would change reported insights.
	recentEntryWindow = 100
)

var dayNames = [7]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

type analyticsServiceImpl struct {
	analytics.AnalyticsRepository
}

func NewAnalyticsService(repo analytics.AnalyticsRepository) analytics.AnalyticsService {
	return &analyticsServiceImpl{AnalyticsRepository: repo}
}

// resolveDateRange normalizes the optional ISO date parameters to a closed
// interval, defaulting to the trailing 3 months. Malformed dates fall back
// to the defaults.
func resolveDateRange(startDate, endDate string, now time.Time) (time.Time, time.Time) {
	start := now.AddDate(0, -3, 0)
	end := now

	if t, err := time.Parse("2006-01-02", startDate); err == nil {
		start = t
	}
	if t, err := time.Parse("2006-01-02", endDate); err == nil {
		end = t
	}
	return start, end
}

// GetAnalytics runs the seven aggregate queries concurrently and derives
// risk scores, streaks and insights from the results. The queries share no
// transaction, so cross-aggregate consistency is best-effort under
// concurrent writes.
func (s *analyticsServiceImpl) GetAnalytics(ctx context.Context, startDate, endDate string) (*analytics.AnalyticsResponse, error) {
	start, end := resolveDateRange(startDate, endDate, time.Now())

	var (
		staffRows  []analytics.StaffTotalsRow
		topRows    []analytics.StaffTotalsRow
		reasonRows []analytics.ReasonTotalsRow
		dayRows    []analytics.DayOfWeekRow
		monthRows  []analytics.MonthlyRow
		recentRows []analytics.RecentEntryRow
		totals     analytics.TotalsRow
	)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		var err error
		staffRows, err = s.StaffTotals(gCtx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		topRows, err = s.TopStaff(gCtx, start, end, topStaffLimit)
		return err
	})
	g.Go(func() error {
		var err error
		reasonRows, err = s.ReasonTotals(gCtx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		dayRows, err = s.DayOfWeekTotals(gCtx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		monthRows, err = s.MonthlyTotals(gCtx, start, end, monthlyTrendCap)
		return err
	})
	g.Go(func() error {
		var err error
		recentRows, err = s.RecentEntries(gCtx, recentEntryWindow)
		return err
	})
	g.Go(func() error {
		var err error
		totals, err = s.Totals(gCtx, start, end)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("failed to generate analytics: %w", err)
	}

	maxStreak, streakDetails := findConsecutiveDays(recentRows)

	resp := &analytics.AnalyticsResponse{
		DateRange: analytics.DateRange{Start: start, End: end},
		Summary: analytics.Summary{
			TotalEntries:  totals.Count,
			TotalHours:    orZero(totals.SumHours),
			AverageHours:  orZero(totals.AvgHours),
			UniqueStaff:   len(staffRows),
			UniqueReasons: len(reasonRows),
		},
		StaffTrends:     buildStaffTrends(staffRows, totals.Count),
		ReasonTrends:    buildReasonTrends(reasonRows, totals.Count),
		DayOfWeekTrends: buildDayOfWeekTrends(dayRows),
		MonthlyTrends:   buildMonthlyTrends(monthRows),
		Streaks: analytics.StreakReport{
			MaxConsecutive: maxStreak,
			Details:        streakDetails,
		},
		Insights: buildInsights(topRows, reasonRows, dayRows, maxStreak, totals.Count),
	}

	return resp, nil
}

func buildStaffTrends(rows []analytics.StaffTotalsRow, totalEntries int64) []analytics.StaffTrend {
	trends := make([]analytics.StaffTrend, 0, len(rows))
	for _, row := range rows {
		totalHours := hoursOrDefault(row.SumHours, row.Entries)
		avgPerDay := totalHours / float64(row.Entries)
		trends = append(trends, analytics.StaffTrend{
			Staff: analytics.TrendStaff{
				ID:       row.StaffID,
				FullName: row.FullName,
				Email:    row.Email,
				Active:   row.Active,
			},
			Entries:            row.Entries,
			TotalHours:         totalHours,
			AverageHoursPerDay: round1(avgPerDay),
			RiskScore:          riskScore(row.Entries, avgPerDay, totalEntries),
		})
	}
	return trends
}

func buildReasonTrends(rows []analytics.ReasonTotalsRow, totalEntries int64) []analytics.ReasonTrend {
	trends := make([]analytics.ReasonTrend, 0, len(rows))
	for _, row := range rows {
		trendReason := analytics.TrendReason{ID: "freetext", Name: "Free Text Reasons"}
		if row.ReasonID != nil && row.Name != nil {
			trendReason = analytics.TrendReason{ID: *row.ReasonID, Name: *row.Name}
		}
		trends = append(trends, analytics.ReasonTrend{
			Reason:     trendReason,
			Entries:    row.Entries,
			TotalHours: hoursOrDefault(row.SumHours, row.Entries),
			Percentage: roundShare(row.Entries, totalEntries),
		})
	}
	return trends
}

func buildDayOfWeekTrends(rows []analytics.DayOfWeekRow) []analytics.DayOfWeekTrend {
	trends := make([]analytics.DayOfWeekTrend, 0, len(rows))
	for _, row := range rows {
		name := ""
		if row.DayOfWeek >= 0 && row.DayOfWeek < len(dayNames) {
			name = dayNames[row.DayOfWeek]
		}
		trends = append(trends, analytics.DayOfWeekTrend{
			DayOfWeek:    row.DayOfWeek,
			DayName:      name,
			Count:        row.Count,
			TotalHours:   row.TotalHours,
			AverageHours: round1(row.AvgHours),
		})
	}
	return trends
}

func buildMonthlyTrends(rows []analytics.MonthlyRow) []analytics.MonthlyTrend {
	trends := make([]analytics.MonthlyTrend, 0, len(rows))
	for _, row := range rows {
		trends = append(trends, analytics.MonthlyTrend{
			Month:       row.Month,
			Count:       row.Count,
			TotalHours:  row.TotalHours,
			UniqueStaff: row.UniqueStaff,
		})
	}
	return trends
}

// riskScore converts a staff member's usage into a 0-100 heuristic misuse
// score: share of all entries, deviation from an 8-hour day, and absolute
// volume each contribute a fixed band.
func riskScore(entries int64, avgHours float64, totalEntries int64) int {
	risk := 0

	if totalEntries > 0 {
		share := float64(entries) / float64(totalEntries)
		switch {
		case share > 0.2:
			risk += 30
		case share > 0.15:
			risk += 20
		case share > 0.1:
			risk += 10
		}
	}

	if avgHours > 10 || avgHours < 4 {
		risk += 25
	} else if avgHours > 9 || avgHours < 6 {
		risk += 15
	}

	if entries > 30 {
		risk += 20
	} else if entries > 20 {
		risk += 10
	}

	if risk > 100 {
		risk = 100
	}
	return risk
}

// buildInsights derives the natural-language observations from the already
// computed aggregates. Emission order is fixed: most active user, weekend
// activity, dominant reason, extended streaks.
func buildInsights(topRows []analytics.StaffTotalsRow, reasonRows []analytics.ReasonTotalsRow, dayRows []analytics.DayOfWeekRow, maxStreak int, totalEntries int64) []analytics.Insight {
	insights := []analytics.Insight{}

	if len(topRows) > 0 {
		pct := roundShare(topRows[0].Entries, totalEntries)
		severity := "low"
		if pct > 25 {
			severity = "high"
		} else if pct > 15 {
			severity = "medium"
		}
		insights = append(insights, analytics.Insight{
			Type:     "info",
			Title:    "Most Active WFH User",
			Message:  fmt.Sprintf("Highest WFH usage represents %d%% of all entries", pct),
			Severity: severity,
		})
	}

	for _, day := range dayRows {
		if (day.DayOfWeek == 0 || day.DayOfWeek == 6) && day.Count > 0 {
			insights = append(insights, analytics.Insight{
				Type:     "warning",
				Title:    "Weekend WFH Activity",
				Message:  fmt.Sprintf("%d WFH entries logged on weekends - verify if legitimate", day.Count),
				Severity: "medium",
			})
			break
		}
	}

	if len(reasonRows) > 0 {
		pct := roundShare(reasonRows[0].Entries, totalEntries)
		severity := "low"
		if pct > 40 {
			severity = "medium"
		}
		insights = append(insights, analytics.Insight{
			Type:     "info",
			Title:    "Most Common WFH Reason",
			Message:  fmt.Sprintf("Top reason accounts for %d%% of all WFH requests", pct),
			Severity: severity,
		})
	}

	if maxStreak > 5 {
		severity := "medium"
		if maxStreak > 10 {
			severity = "high"
		}
		insights = append(insights, analytics.Insight{
			Type:     "warning",
			Title:    "Extended WFH Periods",
			Message:  fmt.Sprintf("Found %d consecutive WFH days - review for legitimacy", maxStreak),
			Severity: severity,
		})
	}

	return insights
}

// findConsecutiveDays groups the recent entries by staff member and finds
// each member's longest run of calendar-adjacent dates. Staff with runs
// longer than 3 days land in the detail list; the overall maximum feeds
// the extended-streak insight.
func findConsecutiveDays(rows []analytics.RecentEntryRow) (int, []analytics.StreakDetail) {
	type staffDates struct {
		name  string
		dates []time.Time
	}

	// Keep first-appearance order so the detail list is deterministic.
	var order []string
	byStaff := make(map[string]*staffDates)
	for _, row := range rows {
		sd, ok := byStaff[row.StaffID]
		if !ok {
			sd = &staffDates{name: row.StaffName}
			byStaff[row.StaffID] = sd
			order = append(order, row.StaffID)
		}
		sd.dates = append(sd.dates, row.Date)
	}

	maxConsecutive := 0
	details := []analytics.StreakDetail{}

	for _, staffID := range order {
		sd := byStaff[staffID]
		sort.Slice(sd.dates, func(i, j int) bool { return sd.dates[i].Before(sd.dates[j]) })

		longest := 1
		current := 1
		for i := 1; i < len(sd.dates); i++ {
			prev := sd.dates[i-1]
			curr := sd.dates[i]
			if sameDay(prev.AddDate(0, 0, 1), curr) {
				current++
				if current > longest {
					longest = current
				}
			} else {
				current = 1
			}
		}
		if len(sd.dates) == 0 {
			longest = 0
		}

		if longest > maxConsecutive {
			maxConsecutive = longest
		}
		if longest > 3 {
			details = append(details, analytics.StreakDetail{
				StaffID:         staffID,
				Staff:           sd.name,
				ConsecutiveDays: longest,
			})
		}
	}

	return maxConsecutive, details
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.YearDay() == b.YearDay()
}

// hoursOrDefault mirrors the presentation rule that a group with no
// recorded hours is shown as standard 8-hour days.
func hoursOrDefault(sum *float64, entries int64) float64 {
	if sum == nil || *sum == 0 {
		return float64(entries) * 8
	}
	return *sum
}

func orZero(f *float64) float64 {
	if f == nil {
		return 0
	}
	return *f
}

func round1(f float64) float64 {
	return math.Round(f*10) / 10
}

func roundShare(part, total int64) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(part) / float64(total) * 100))
}
