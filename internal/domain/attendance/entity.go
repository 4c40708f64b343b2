package attendance

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
)

// DateLayout is the calendar-date format used throughout the attendance
// document and the receipts document.
const DateLayout = "2006-01-02"

// Record is the in-memory view of one worker's attendance: the set of
// calendar dates the worker was marked present. PresentDates is kept
// unique and sorted; duplicates in persisted data are collapsed on load.
type Record struct {
	WorkerID     string
	PresentDates []string
}

// DaysWorked is the all-time day count, i.e. the size of the date set.
func (r Record) DaysWorked() int {
	return len(r.PresentDates)
}

// DaysWorkedIn counts the present dates that fall in the given calendar
// month. A zero year means no period filter (all-time count). Dates
// that fail to parse are skipped.
func (r Record) DaysWorkedIn(year int, month time.Month) int {
	if year == 0 {
		return len(r.PresentDates)
	}

	count := 0
	for _, d := range r.PresentDates {
		t, err := time.Parse(DateLayout, d)
		if err != nil {
			continue
		}
		if t.Year() == year && t.Month() == month {
			count++
		}
	}
	return count
}

// NormalizeDates deduplicates and sorts a list of date strings. The
// persisted document is treated as a set even when a writer appended
// duplicates.
func NormalizeDates(dates []string) []string {
	seen := make(map[string]struct{}, len(dates))
	result := make([]string, 0, len(dates))
	for _, d := range dates {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		result = append(result, d)
	}
	sort.Strings(result)
	return result
}

// StoredRecord is the persisted per-worker shape inside the attendance
// document. DaysWorked and TotalSalary are snapshots taken at last save
// time; they are a cache of derived values, never read back for
// computation, and consumers must not assume they stay in sync with the
// worker's live daily rate.
type StoredRecord struct {
	PresentDates []string        `json:"presentDates"`
	DaysWorked   int             `json:"daysWorked"`
	TotalSalary  decimal.Decimal `json:"totalSalary"`
}

// Document is the whole attendance document: workerId -> record. It is
// read and written wholesale as a single JSON blob.
type Document map[string]StoredRecord
