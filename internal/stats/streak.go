package stats

import (
	"time"

	"alcyxob/fittrack/internal/domain"
)

// StreakSummary is the consistency rollup for a set of qualifying days.
type StreakSummary struct {
	Current   int `json:"current"`
	Longest   int `json:"longest"`
	TotalDays int `json:"totalDays"` // distinct qualifying calendar days
}

// CurrentStreak counts consecutive qualifying days walking backward from today.
// A streak survives a single day without activity on today itself as long as
// yesterday qualifies; two missing days in a row end it.
func CurrentStreak(qualifying []time.Time, today time.Time) int {
	if len(qualifying) == 0 {
		return 0
	}
	set := daySet(qualifying)
	day := dayNumber(today)

	streak := 0
	if _, ok := set[day]; ok {
		streak = 1
		day--
	} else if _, ok := set[day-1]; ok {
		day--
	} else {
		return 0
	}

	for {
		if _, ok := set[day]; !ok {
			break
		}
		streak++
		day--
	}
	return streak
}

// LongestStreak returns the longest run of consecutive calendar days.
// Same-day duplicates are collapsed first, so they neither extend nor break a run.
func LongestStreak(qualifying []time.Time) int {
	days := uniqueDays(qualifying)
	if len(days) == 0 {
		return 0
	}
	longest, run := 1, 1
	for i := 1; i < len(days); i++ {
		if days[i]-days[i-1] == 1 {
			run++
		} else {
			run = 1
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// PeriodicCount counts events whose calendar day lies within [periodStart, periodEnd].
func PeriodicCount(events []time.Time, periodStart, periodEnd time.Time) int {
	count := 0
	for _, e := range events {
		if InRange(e, periodStart, periodEnd) {
			count++
		}
	}
	return count
}

// Streaks bundles current, longest and total qualifying days.
func Streaks(qualifying []time.Time, today time.Time) StreakSummary {
	return StreakSummary{
		Current:   CurrentStreak(qualifying, today),
		Longest:   LongestStreak(qualifying),
		TotalDays: len(uniqueDays(qualifying)),
	}
}

// CompletedDates extracts the completion dates of completed workouts.
func CompletedDates(workouts []domain.Workout) []time.Time {
	dates := make([]time.Time, 0, len(workouts))
	for i := range workouts {
		if workouts[i].IsCompleted() {
			dates = append(dates, *workouts[i].CompletedDate)
		}
	}
	return dates
}

// DayActivity marks whether a single day in a window had a qualifying event.
type DayActivity struct {
	Date   string `json:"date"`
	Active bool   `json:"active"`
	Count  int    `json:"count"`
}

// ActivityCalendar lists each of the n days ending on asOf, oldest first,
// with the number of qualifying events on that day. n <= 0 yields an empty calendar.
func ActivityCalendar(qualifying []time.Time, asOf time.Time, n int) []DayActivity {
	if n <= 0 {
		return []DayActivity{}
	}
	counts := make(map[int64]int, len(qualifying))
	for _, q := range qualifying {
		counts[dayNumber(q)]++
	}
	start, _ := Window(asOf, n)
	out := make([]DayActivity, 0, n)
	for d := start; !d.After(Day(asOf)); d = d.AddDate(0, 0, 1) {
		c := counts[dayNumber(d)]
		out = append(out, DayActivity{Date: d.Format(DateFormat), Active: c > 0, Count: c})
	}
	return out
}

// WorkoutAdherence is the scheduled-versus-done view of a period.
type WorkoutAdherence struct {
	PeriodStart string `json:"periodStart"`
	PeriodEnd   string `json:"periodEnd"`
	Scheduled   int    `json:"scheduled"`
	Completed   int    `json:"completed"`
	Missed      int    `json:"missed"`
	Pending     int    `json:"pending"` // scheduled or in progress, not yet resolved
	Percent     int    `json:"percent"`
	ActiveDays  int    `json:"activeDays"`
}

// WeeklyAdherence evaluates workouts scheduled in the 7 days ending on asOf.
// Percent is completed over scheduled; with nothing scheduled it is 100,
// matching Adherence for meals.
func WeeklyAdherence(workouts []domain.Workout, asOf time.Time) WorkoutAdherence {
	start, end := Window(asOf, 7)
	return PeriodAdherence(workouts, start, end)
}

// PeriodAdherence evaluates workouts whose scheduled day lies in [start, end].
func PeriodAdherence(workouts []domain.Workout, start, end time.Time) WorkoutAdherence {
	out := WorkoutAdherence{
		PeriodStart: Day(start).Format(DateFormat),
		PeriodEnd:   Day(end).Format(DateFormat),
	}
	var done []time.Time
	for i := range workouts {
		w := &workouts[i]
		if !InRange(w.ScheduledDate, start, end) {
			continue
		}
		out.Scheduled++
		switch w.Status {
		case domain.WorkoutCompleted:
			out.Completed++
			if w.CompletedDate != nil {
				done = append(done, *w.CompletedDate)
			}
		case domain.WorkoutMissed:
			out.Missed++
		default:
			out.Pending++
		}
	}
	out.ActiveDays = len(uniqueDays(done))
	if out.Scheduled == 0 {
		out.Percent = 100
	} else {
		out.Percent = PercentOfGoal(float64(out.Completed), float64(out.Scheduled))
	}
	return out
}
