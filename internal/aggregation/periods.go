// Package aggregation buckets a time series into calendar-aligned periods
// and reduces each bucket with a selectable function.
package aggregation

import (
	"fmt"
	"time"
)

// Period is the calendar bucket size.
type Period string

const (
	PeriodHourly  Period = "hourly"
	PeriodDaily   Period = "daily"
	PeriodWeekly  Period = "weekly"
	PeriodMonthly Period = "monthly"
	PeriodYearly  Period = "yearly"
)

// ParsePeriod validates a period name.
func ParsePeriod(s string) (Period, error) {
	switch Period(s) {
	case PeriodHourly, PeriodDaily, PeriodWeekly, PeriodMonthly, PeriodYearly:
		return Period(s), nil
	default:
		return "", fmt.Errorf("unknown aggregation period: %q", s)
	}
}

// BucketStart truncates t to the period-aligned start instant in t's
// location: the top of the hour, midnight, the Monday of the week, day 1 of
// the month, or Jan 1, all at 00:00:00.
func BucketStart(t time.Time, period Period) time.Time {
	switch period {
	case PeriodHourly:
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), 0, 0, 0, t.Location())
	case PeriodWeekly:
		midnight := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
		// time.Weekday counts from Sunday; shift so Monday is day 0
		daysSinceMonday := (int(midnight.Weekday()) + 6) % 7
		return midnight.AddDate(0, 0, -daysSinceMonday)
	case PeriodMonthly:
		return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	case PeriodYearly:
		return time.Date(t.Year(), 1, 1, 0, 0, 0, 0, t.Location())
	default: // daily
		return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	}
}
