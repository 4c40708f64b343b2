package reconcile

import (
	"strings"

	"github.com/fieldpay/fieldpay-backend-go/internal/domain/receipt"
	"github.com/fieldpay/fieldpay-backend-go/internal/domain/worker"
)

// Matcher is one strategy for deciding whether a receipt belongs to a
// worker. Matchers are pure and composed into an ordered chain with
// first-non-empty-wins semantics, which keeps the fallback policy
// auditable instead of buried in conditionals.
type Matcher interface {
	Name() string
	Matches(r receipt.Receipt, w worker.Worker, accountID string) bool
}

// IDMatcher is the authoritative match: the receipt carries the
// worker's own id.
type IDMatcher struct{}

func (IDMatcher) Name() string { return "worker-id" }

func (IDMatcher) Matches(r receipt.Receipt, w worker.Worker, _ string) bool {
	return r.WorkerID != nil && *r.WorkerID == w.ID
}

// SessionIDMatcher covers receipts created against a session identity
// rather than the worker record id: the receipt's workerId equals the
// currently authenticated account id.
type SessionIDMatcher struct{}

func (SessionIDMatcher) Name() string { return "session-id" }

func (SessionIDMatcher) Matches(r receipt.Receipt, _ worker.Worker, accountID string) bool {
	return accountID != "" && r.WorkerID != nil && *r.WorkerID == accountID
}

// NameSubstringMatcher is the last-resort fallback for receipts with no
// reliable id at all: the denormalized workerName contains the first
// name, the last name, or "first last". Two workers sharing a first
// name may both match the same receipt; that ambiguity is inherent to
// the fallback and is deliberately not disambiguated here.
type NameSubstringMatcher struct{}

func (NameSubstringMatcher) Name() string { return "name-substring" }

func (NameSubstringMatcher) Matches(r receipt.Receipt, w worker.Worker, _ string) bool {
	if r.WorkerName == "" {
		return false
	}
	if w.FirstName != "" && strings.Contains(r.WorkerName, w.FirstName) {
		return true
	}
	if w.LastName != "" && strings.Contains(r.WorkerName, w.LastName) {
		return true
	}
	full := w.FullName()
	return strings.TrimSpace(full) != "" && strings.Contains(r.WorkerName, full)
}

// DefaultChain is the prioritized fallback order.
func DefaultChain() []Matcher {
	return []Matcher{IDMatcher{}, SessionIDMatcher{}, NameSubstringMatcher{}}
}
