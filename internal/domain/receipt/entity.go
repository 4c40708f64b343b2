package receipt

import (
	"time"

	"github.com/shopspring/decimal"
)

// Status enum. Transitions are admin-initiated toggles only
// (pending <-> paid). Cancelled is terminal; it is reachable from any
// state but only the external UI produces it, never this core.
type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusCancelled Status = "cancelled"
)

// Type records how the receipt came to exist.
type Type string

const (
	TypeManual    Type = "manual"
	TypeGenerated Type = "generated"
)

// Receipt is an immutable record of a payment event, loosely linked to
// a worker. WorkerID is nullable and not reliable as a foreign key;
// WorkerName is the denormalized matching fallback. DailyRate and Total
// are snapshots frozen at creation time and never re-derived
// from the worker's live rate. Only IsPaid/Status may change after
// creation.
//
// Field names are load-bearing: the receipts document is a flat JSON
// array of exactly this shape.
type Receipt struct {
	ID          string          `json:"id"`
	WorkerID    *string         `json:"workerId"`
	WorkerName  string          `json:"workerName"`
	Description string          `json:"description"`
	DaysWorked  int             `json:"daysWorked"`
	DailyRate   decimal.Decimal `json:"dailyRate"`
	Total       decimal.Decimal `json:"total"`
	Date        string          `json:"date"`
	IsPaid      bool            `json:"isPaid"`
	Status      Status          `json:"status"`
	Type        Type            `json:"type"`
	CreatedAt   time.Time       `json:"createdAt"`
	FileURL     *string         `json:"fileUrl,omitempty"`
}
