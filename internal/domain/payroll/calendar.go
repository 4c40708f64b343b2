package payroll

import "time"

// WorkCalendar isolates the work-day policy so the weekday-only
// simplification stays replaceable. There is no holiday model.
type WorkCalendar interface {
	IsWorkDay(t time.Time) bool
	WorkDaysIn(year int, month time.Month) int
}

// WeekdayCalendar is the default policy: Monday through Friday are work
// days, Saturday and Sunday are not.
type WeekdayCalendar struct{}

func (WeekdayCalendar) IsWorkDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

func (c WeekdayCalendar) WorkDaysIn(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)

	count := 0
	for d := first; d.Month() == month; d = d.AddDate(0, 0, 1) {
		if c.IsWorkDay(d) {
			count++
		}
	}
	return count
}
