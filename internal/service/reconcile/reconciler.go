package reconcile

import (
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
	"github.com/shopspring/decimal"
)

// Reconciler associates receipts with workers despite unreliable
// foreign keys. It is pure: no storage, no errors.
type Reconciler struct {
	chain []Matcher
}

func NewReconciler() *Reconciler {
	return &Reconciler{chain: DefaultChain()}
}

// ReceiptsFor returns the subset of receipts belonging to the worker:
// each matcher tier is applied over the full list in order and the
// first tier that yields any receipts wins. The result may be empty and
// id-matched receipts are never dropped by the fallback tiers.
func (c *Reconciler) ReceiptsFor(w worker.Worker, accountID string, receipts []receipt.Receipt) []receipt.Receipt {
	for _, m := range c.chain {
		var matched []receipt.Receipt
		for _, r := range receipts {
			if m.Matches(r, w, accountID) {
				matched = append(matched, r)
			}
		}
		if len(matched) > 0 {
			return matched
		}
	}
	return []receipt.Receipt{}
}

// TotalOutstanding sums the frozen totals of the unpaid receipts.
func TotalOutstanding(receipts []receipt.Receipt) decimal.Decimal {
	total := decimal.Zero
	for _, r := range receipts {
		if !r.IsPaid {
			total = total.Add(r.Total)
		}
	}
	return total
}
