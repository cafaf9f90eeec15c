// Package stats derives the user-facing rollups (streaks, nutrition totals,
// trends, summaries) from raw workout, meal and progress records.
//
// Every function here is pure: it never reads the system clock, never performs
// I/O and never mutates its inputs. Time-relative operations take an explicit
// "today" or "asOf" argument; callers are responsible for converting it to the
// user's timezone first.
package stats

import (
	"slices"
	"time"
)

// DateFormat is the layout used for calendar days at the API boundary.
const DateFormat = "2006-01-02"

// Day truncates t to midnight of its calendar day, keeping t's location.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// dayNumber maps t to a whole-day ordinal so that consecutive calendar days
// differ by exactly 1 regardless of DST transitions or time-of-day.
func dayNumber(t time.Time) int64 {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix() / 86400
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	return dayNumber(a) == dayNumber(b)
}

// InRange reports whether t's calendar day lies in [start, end], inclusive.
func InRange(t, start, end time.Time) bool {
	d := dayNumber(t)
	return d >= dayNumber(start) && d <= dayNumber(end)
}

// uniqueDays collapses dates to distinct day ordinals, sorted ascending.
func uniqueDays(dates []time.Time) []int64 {
	days := make([]int64, 0, len(dates))
	for _, d := range dates {
		days = append(days, dayNumber(d))
	}
	slices.Sort(days)
	return slices.Compact(days)
}

// daySet builds a lookup of the calendar days present in dates.
func daySet(dates []time.Time) map[int64]struct{} {
	set := make(map[int64]struct{}, len(dates))
	for _, d := range dates {
		set[dayNumber(d)] = struct{}{}
	}
	return set
}

// Window returns the [start, end] calendar days of the n-day period ending on asOf.
func Window(asOf time.Time, n int) (start, end time.Time) {
	end = Day(asOf)
	if n < 1 {
		n = 1
	}
	start = end.AddDate(0, 0, -(n - 1))
	return start, end
}
