package stats

import (
	"time"

	"alcyxob/fittrack/internal/domain"
)

func date(s string) time.Time {
	t, err := time.Parse(DateFormat, s)
	if err != nil {
		panic(err)
	}
	return t
}

func dates(ss ...string) []time.Time {
	out := make([]time.Time, len(ss))
	for i, s := range ss {
		out[i] = date(s)
	}
	return out
}

func ptr[T any](v T) *T { return &v }

func completedWorkout(day string, minutes int) domain.Workout {
	d := date(day)
	return domain.Workout{
		Status:          domain.WorkoutCompleted,
		ScheduledDate:   d,
		CompletedDate:   ptr(d.Add(18 * time.Hour)),
		DurationMinutes: ptr(minutes),
	}
}

func entry(day string, weight *float64) domain.ProgressEntry {
	return domain.ProgressEntry{Date: date(day), Weight: weight}
}
