package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/wfhtracker/wfh-backend-go/internal/domain/analytics"
	"github.com/wfhtracker/wfh-backend-go/internal/pkg/database"
)

type analyticsRepositoryImpl struct {
	db *database.DB
}

func NewAnalyticsRepository(db *database.DB) analytics.AnalyticsRepository {
	return &analyticsRepositoryImpl{db: db}
}

func (r *analyticsRepositoryImpl) staffTotals(ctx context.Context, start, end time.Time, limit int) ([]analytics.StaffTotalsRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.staff_id, s.full_name, s.email, s.active,
			COUNT(*) AS entries,
			SUM(e.hours) AS sum_hours
		FROM wfh_entries e
		JOIN staff s ON e.staff_id = s.id
		WHERE e.date >= $1 AND e.date <= $2
		GROUP BY e.staff_id, s.full_name, s.email, s.active
		ORDER BY entries DESC
	`
	args := []interface{}{start, end}
	if limit > 0 {
		query += " LIMIT $3"
		args = append(args, limit)
	}

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get staff totals: %w", err)
	}
	defer rows.Close()

	var result []analytics.StaffTotalsRow
	for rows.Next() {
		var row analytics.StaffTotalsRow
		if err := rows.Scan(&row.StaffID, &row.FullName, &row.Email, &row.Active, &row.Entries, &row.SumHours); err != nil {
			return nil, fmt.Errorf("failed to scan staff totals: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// StaffTotals implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) StaffTotals(ctx context.Context, start, end time.Time) ([]analytics.StaffTotalsRow, error) {
	return r.staffTotals(ctx, start, end, 0)
}

// TopStaff implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) TopStaff(ctx context.Context, start, end time.Time, limit int) ([]analytics.StaffTotalsRow, error) {
	return r.staffTotals(ctx, start, end, limit)
}

// ReasonTotals implements analytics.AnalyticsRepository.
func (r *analyticsRepositoryImpl) ReasonTotals(ctx context.Context, start, end time.Time) ([]analytics.ReasonTotalsRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.reason_id, r.name,
			COUNT(*) AS entries,
			SUM(e.hours) AS sum_hours
		FROM wfh_entries e
		LEFT JOIN reasons r ON e.reason_id = r.id
		WHERE e.date >= $1 AND e.date <= $2
		GROUP BY e.reason_id, r.name
		ORDER BY entries DESC
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get reason totals: %w", err)
	}
	defer rows.Close()

	var result []analytics.ReasonTotalsRow
	for rows.Next() {
		var row analytics.ReasonTotalsRow
		if err := rows.Scan(&row.ReasonID, &row.Name, &row.Entries, &row.SumHours); err != nil {
			return nil, fmt.Errorf("failed to scan reason totals: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// DayOfWeekTotals implements analytics.AnalyticsRepository. Missing hours
// count as a standard 8-hour day.
func (r *analyticsRepositoryImpl) DayOfWeekTotals(ctx context.Context, start, end time.Time) ([]analytics.DayOfWeekRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT EXTRACT(DOW FROM e.date)::int AS day_of_week,
			COUNT(*) AS count,
			SUM(COALESCE(e.hours, 8))::float8 AS total_hours,
			AVG(COALESCE(e.hours, 8))::float8 AS avg_hours
		FROM wfh_entries e
		WHERE e.date >= $1 AND e.date <= $2
		GROUP BY 1
		ORDER BY 1
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to get day-of-week totals: %w", err)
	}
	defer rows.Close()

	var result []analytics.DayOfWeekRow
	for rows.Next() {
		var row analytics.DayOfWeekRow
		if err := rows.Scan(&row.DayOfWeek, &row.Count, &row.TotalHours, &row.AvgHours); err != nil {
			return nil, fmt.Errorf("failed to scan day-of-week totals: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// MonthlyTotals implements analytics.AnalyticsRepository. The inner query
// keeps the most recent months; the outer one restores ascending order.
func (r *analyticsRepositoryImpl) MonthlyTotals(ctx context.Context, start, end time.Time, months int) ([]analytics.MonthlyRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT month, count, total_hours, unique_staff FROM (
			SELECT to_char(e.date, 'YYYY-MM') AS month,
				COUNT(*) AS count,
				SUM(COALESCE(e.hours, 8))::float8 AS total_hours,
				COUNT(DISTINCT e.staff_id) AS unique_staff
			FROM wfh_entries e
			WHERE e.date >= $1 AND e.date <= $2
			GROUP BY 1
			ORDER BY month DESC
			LIMIT $3
		) m
		ORDER BY month ASC
	`

	rows, err := q.Query(ctx, query, start, end, months)
	if err != nil {
		return nil, fmt.Errorf("failed to get monthly totals: %w", err)
	}
	defer rows.Close()

	var result []analytics.MonthlyRow
	for rows.Next() {
		var row analytics.MonthlyRow
		if err := rows.Scan(&row.Month, &row.Count, &row.TotalHours, &row.UniqueStaff); err != nil {
			return nil, fmt.Errorf("failed to scan monthly totals: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}

// Totals implements analytics.AnalyticsRepository. Sum and average run over
// raw hours, so they are NULL when no entry in range carries hours.
func (r *analyticsRepositoryImpl) Totals(ctx context.Context, start, end time.Time) (analytics.TotalsRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT COUNT(*),
			SUM(e.hours)::float8,
			AVG(e.hours)::float8
		FROM wfh_entries e
		WHERE e.date >= $1 AND e.date <= $2
	`

	var row analytics.TotalsRow
	err := q.QueryRow(ctx, query, start, end).Scan(&row.Count, &row.SumHours, &row.AvgHours)
	if err != nil {
		return analytics.TotalsRow{}, fmt.Errorf("failed to get totals: %w", err)
	}

	return row, nil
}

// RecentEntries implements analytics.AnalyticsRepository. The window is by
// creation time and ignores the report range on purpose; see the streak
// detector.
func (r *analyticsRepositoryImpl) RecentEntries(ctx context.Context, limit int) ([]analytics.RecentEntryRow, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT e.staff_id, s.full_name, e.date
		FROM wfh_entries e
		JOIN staff s ON e.staff_id = s.id
		ORDER BY e.created_at DESC
		LIMIT $1
	`

	rows, err := q.Query(ctx, query, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent entries: %w", err)
	}
	defer rows.Close()

	var result []analytics.RecentEntryRow
	for rows.Next() {
		var row analytics.RecentEntryRow
		if err := rows.Scan(&row.StaffID, &row.StaffName, &row.Date); err != nil {
			return nil, fmt.Errorf("failed to scan recent entry: %w", err)
		}
		result = append(result, row)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return result, nil
}
