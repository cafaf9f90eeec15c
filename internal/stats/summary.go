package stats

import (
	"time"

	"alcyxob/fittrack/internal/domain"
)

// DefaultBurnKcalPerMinute is the fallback energy estimate for a workout minute.
const DefaultBurnKcalPerMinute = 7.0

// SummaryInput is everything a ProgressSummary is computed from.
type SummaryInput struct {
	Workouts          []domain.Workout
	Meals             []domain.Meal
	Progress          []domain.ProgressEntry
	DailyCalories     int     // target per day
	BurnKcalPerMinute float64 // 0 means DefaultBurnKcalPerMinute
}

// ProgressSummary is the period rollup shown on the dashboard.
type ProgressSummary struct {
	PeriodStart       string  `json:"periodStart"`
	PeriodEnd         string  `json:"periodEnd"`
	WorkoutsCompleted int     `json:"workoutsCompleted"`
	MinutesTrained    int     `json:"minutesTrained"`
	CaloriesBurned    float64 `json:"caloriesBurned"`   // estimate from workout duration
	CaloriesConsumed  float64 `json:"caloriesConsumed"` // completed meals only
	CaloriesTarget    int     `json:"caloriesTarget"`   // daily target x days in period
	CaloriesRemaining float64 `json:"caloriesRemaining"`
	WeightChange      *Change `json:"weightChange,omitempty"`
	StreakDays        int     `json:"streakDays"`
}

// Summarize rolls up the period [start, end]. Workouts count when completed
// inside the period, meals when eaten inside it, and the weight change is the
// delta between the first and last weigh-ins inside it. The streak is as of end.
func Summarize(in SummaryInput, start, end time.Time) ProgressSummary {
	rate := in.BurnKcalPerMinute
	if rate <= 0 {
		rate = DefaultBurnKcalPerMinute
	}
	days := int(dayNumber(end)-dayNumber(start)) + 1
	if days < 1 {
		days = 1
	}

	out := ProgressSummary{
		PeriodStart:    Day(start).Format(DateFormat),
		PeriodEnd:      Day(end).Format(DateFormat),
		CaloriesTarget: in.DailyCalories * days,
	}

	for i := range in.Workouts {
		w := &in.Workouts[i]
		if !w.IsCompleted() || !InRange(*w.CompletedDate, start, end) {
			continue
		}
		out.WorkoutsCompleted++
		if w.DurationMinutes != nil {
			out.MinutesTrained += *w.DurationMinutes
		}
	}
	out.CaloriesBurned = float64(out.MinutesTrained) * rate

	var eaten []domain.Meal
	for _, m := range CompletedMeals(in.Meals) {
		if InRange(m.Date, start, end) {
			eaten = append(eaten, m)
		}
	}
	out.CaloriesConsumed = SumMacros(eaten).Calories
	out.CaloriesRemaining = float64(out.CaloriesTarget) - out.CaloriesConsumed

	var inPeriod []domain.ProgressEntry
	for _, e := range in.Progress {
		if InRange(e.Date, start, end) {
			inPeriod = append(inPeriod, e)
		}
	}
	if wc, ok := NetChange(inPeriod, domain.MetricWeight); ok {
		out.WeightChange = &wc.Change
	}

	out.StreakDays = CurrentStreak(CompletedDates(in.Workouts), end)
	return out
}
