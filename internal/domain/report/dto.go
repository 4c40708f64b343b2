package report

import (
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/payroll"
	"github.com/shopspring/decimal"
)

// GrowthNA is the sentinel reported when month-over-month growth is
// undefined (no previous month, or previous revenue of zero). Growth is
// never emitted as NaN or Infinity.
const GrowthNA = "N/A"

// MonthlySummary aggregates the receipts of one calendar month. It is
// purely derived and recomputed on demand, never persisted.
type MonthlySummary struct {
	MonthKey     string          `json:"monthKey"` // "YYYY-MM"
	Revenue      decimal.Decimal `json:"revenue"`
	ReceiptCount int             `json:"receiptCount"`
	WorkerCount  int             `json:"workerCount"`
	Growth       string          `json:"growth"` // percent vs previous month, or "N/A"
}

// SystemStats is the derived roster-wide and receipt-wide snapshot.
type SystemStats struct {
	TotalWorkers     int             `json:"totalWorkers"`
	ActiveWorkers    int             `json:"activeWorkers"`
	TotalRevenue     decimal.Decimal `json:"totalRevenue"`
	AverageDailyRate decimal.Decimal `json:"averageDailyRate"`
	TotalDaysWorked  int             `json:"totalDaysWorked"`
	PaidWorkers      int             `json:"paidWorkers"`
	UnpaidWorkers    int             `json:"unpaidWorkers"`
}

// OverviewResponse is the combined report consumed by exporters: the
// monthly summaries, the system snapshot, and per-worker current-month
// figures. Plain data, no behavior.
type OverviewResponse struct {
	Monthly []MonthlySummary                 `json:"monthly"`
	Stats   SystemStats                      `json:"stats"`
	Workers []payroll.MonthlyFiguresResponse `json:"workers"`

	// RosterStale is set when the worker roster could not be refreshed
	// and cached data was used instead.
	RosterStale bool `json:"rosterStale,omitempty"`
}
