package recurrence

import (
	"time"

	"github.com/tasksphere/tasksphere-backend/internal/domain"
)

// NextOccurrence advances from the given occurrence by the rule's
// interval: days for daily, weeks for weekly, calendar months for
// monthly. Month arithmetic preserves the day-of-month where the target
// month has it and clamps to the target month's last day otherwise
// (Jan 31 + 1 month = Feb 28, or Feb 29 in a leap year). Time-of-day
// and location are preserved.
func NextOccurrence(rule domain.RecurrenceRule, from time.Time) time.Time {
	interval := rule.Interval
	if interval < 1 {
		interval = 1
	}

	switch rule.Frequency {
	case domain.FrequencyWeekly:
		return from.AddDate(0, 0, 7*interval)
	case domain.FrequencyMonthly:
		return addMonthsClamped(from, interval)
	default:
		return from.AddDate(0, 0, interval)
	}
}

func addMonthsClamped(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	m := int(month) - 1 + months
	year += m / 12
	month = time.Month(m%12 + 1)

	if last := daysInMonth(year, month); day > last {
		day = last
	}

	hour, min, sec := t.Clock()
	return time.Date(year, month, day, hour, min, sec, t.Nanosecond(), t.Location())
}

func daysInMonth(year int, month time.Month) int {
	// Day zero of the next month normalizes to this month's last day.
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
