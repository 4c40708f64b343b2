package report

import "context"

// Service is the aggregation engine: read-only, fully derived,
// recomputed on every request.
type Service interface {
	MonthlyRevenue(ctx context.Context) ([]MonthlySummary, error)
	Stats(ctx context.Context) (SystemStats, error)
	Overview(ctx context.Context) (OverviewResponse, error)
}
