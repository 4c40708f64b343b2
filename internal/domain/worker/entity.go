package worker

import (
	"github.com/shopspring/decimal"
)

// Worker is owned by the roster service. This core treats it as
// read-only input; attendance records and receipts reference it by id
// and, as a matching fallback, by denormalized name.
type Worker struct {
	ID        string          `json:"workerId"`
	FirstName string          `json:"firstName"`
	LastName  string          `json:"lastName"`
	DailyRate decimal.Decimal `json:"dailyRate"`
	Position  string          `json:"position"`
	StartDate string          `json:"startDate"`
	IsChecked bool            `json:"isChecked"`
	IsPaid    bool            `json:"isPaid"`
}

// FullName returns "FirstName LastName", the denormalized form stored
// on receipts.
func (w Worker) FullName() string {
	return w.FirstName + " " + w.LastName
}
