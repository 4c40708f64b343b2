package payroll

import "github.com/shopspring/decimal"

// MonthlyFiguresResponse is the authoritative current-period view for a
// single worker. Recorded is false when no attendance record exists;
// the figures are then all zero and must be presented as "not yet
// recorded", not as computed zero performance.
type MonthlyFiguresResponse struct {
	WorkerID    string          `json:"workerId"`
	Year        int             `json:"year"`
	Month       int             `json:"month"`
	DaysWorked  int             `json:"daysWorked"`
	DaysOff     int             `json:"daysOff"`
	TotalSalary decimal.Decimal `json:"totalSalary"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Recorded    bool            `json:"recorded"`
}
