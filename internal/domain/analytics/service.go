package analytics

import "context"

// AnalyticsService defines the reporting operations.
type AnalyticsService interface {
	// GetAnalytics builds the full report for the given ISO date strings.
	// Empty or malformed dates fall back to the trailing 3-month window.
	GetAnalytics(ctx context.Context, startDate, endDate string) (*AnalyticsResponse, error)
}
