package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const weekDays = 7

// Dashboard is the home screen rollup for a single day.
type Dashboard struct {
	Date        string                 `json:"date"`
	Streaks     stats.StreakSummary    `json:"streaks"`
	Activity    []stats.DayActivity    `json:"activity"`
	Adherence   stats.WorkoutAdherence `json:"adherence"`
	Nutrition   stats.NutritionTotals  `json:"nutrition"`
	Week        stats.ProgressSummary  `json:"week"`
	Weight      stats.MetricSnapshot   `json:"weight"`
	BodyFat     stats.MetricSnapshot   `json:"bodyFat"`
	WeightTrend *stats.MetricChange    `json:"weightTrend,omitempty"` // net change over the week
	BMI         *float64               `json:"bmi,omitempty"`
	Steps       stats.DailyGoal        `json:"steps"`
	Water       stats.DailyGoal        `json:"water"`
	Sleep       stats.DailyGoal        `json:"sleep"`
}

// ReportDay is one row of the weekly report.
type ReportDay struct {
	Date              string              `json:"date"`
	Macros            stats.RoundedMacros `json:"macros"`
	WorkoutsCompleted int                 `json:"workoutsCompleted"`
}

// WeeklyReport covers the 7 days ending on its PeriodEnd.
type WeeklyReport struct {
	PeriodStart   string                 `json:"periodStart"`
	PeriodEnd     string                 `json:"periodEnd"`
	Days          []ReportDay            `json:"days"`
	Adherence     stats.WorkoutAdherence `json:"adherence"`
	MealAdherence int                    `json:"mealAdherence"`
	Summary       stats.ProgressSummary  `json:"summary"`
}

type DashboardService interface {
	// GetDashboard builds the dashboard as of date; a zero date means today.
	GetDashboard(ctx context.Context, userID primitive.ObjectID, date time.Time) (*Dashboard, error)
	WeeklyReport(ctx context.Context, userID primitive.ObjectID, date time.Time) (*WeeklyReport, error)
}

type dashboardService struct {
	userRepo     repository.UserRepository
	workoutRepo  repository.WorkoutRepository
	mealRepo     repository.MealRepository
	progressRepo repository.ProgressRepository
	defaults     domain.Goals
	burnRate     float64
	now          func() time.Time
}

// NewDashboardService creates a DashboardService. burnRate is kcal per training
// minute; 0 uses stats.DefaultBurnKcalPerMinute.
func NewDashboardService(
	userRepo repository.UserRepository,
	workoutRepo repository.WorkoutRepository,
	mealRepo repository.MealRepository,
	progressRepo repository.ProgressRepository,
	defaults domain.Goals,
	burnRate float64,
) DashboardService {
	return &dashboardService{
		userRepo:     userRepo,
		workoutRepo:  workoutRepo,
		mealRepo:     mealRepo,
		progressRepo: progressRepo,
		defaults:     defaults,
		burnRate:     burnRate,
		now:          time.Now,
	}
}

// weekData is everything the rollups of one 7-day window need.
type weekData struct {
	user       *domain.User
	goals      domain.Goals
	asOf       time.Time
	start, end time.Time
	completed  []domain.Workout // all time, for streaks
	scheduled  []domain.Workout // scheduled inside the window
	meals      []domain.Meal    // dated inside the window
	progress   []domain.ProgressEntry
}

func (s *dashboardService) load(ctx context.Context, userID primitive.ObjectID, date time.Time) (*weekData, error) {
	asOf := date
	if asOf.IsZero() {
		asOf = s.now().UTC()
	}
	d := &weekData{asOf: stats.Day(asOf.UTC())}
	d.start, d.end = stats.Window(d.asOf, weekDays)
	// Repositories take half-open ranges.
	until := d.end.AddDate(0, 0, 1)

	user, err := loadUser(ctx, s.userRepo, userID)
	if err != nil {
		return nil, err
	}
	d.user = user
	d.goals = user.Goals.WithDefaults(s.defaults)

	if d.completed, err = s.workoutRepo.ListCompleted(ctx, userID); err != nil {
		return nil, s.loadFailed(userID, "completed workouts", err)
	}
	if d.scheduled, err = s.workoutRepo.ListByUser(ctx, userID, d.start, until); err != nil {
		return nil, s.loadFailed(userID, "workouts", err)
	}
	if d.meals, err = s.mealRepo.ListByUser(ctx, userID, d.start, until); err != nil {
		return nil, s.loadFailed(userID, "meals", err)
	}
	// Trends look back past the window to the previous recorded value.
	if d.progress, err = s.progressRepo.ListByUser(ctx, userID, time.Time{}, until); err != nil {
		return nil, s.loadFailed(userID, "progress", err)
	}
	return d, nil
}

func stepCount(m domain.Measurements) (float64, bool) {
	n, ok := m.Steps()
	return float64(n), ok
}

func (s *dashboardService) loadFailed(userID primitive.ObjectID, what string, err error) error {
	log.Error().Err(err).Str("user_id", userID.Hex()).Str("collection", what).Msg("failed to load dashboard data")
	return err
}

func (s *dashboardService) summary(d *weekData) stats.ProgressSummary {
	// Workouts completed in the window may have been scheduled before it.
	return stats.Summarize(stats.SummaryInput{
		Workouts:          d.completed,
		Meals:             d.meals,
		Progress:          d.progress,
		DailyCalories:     d.goals.DailyCalories,
		BurnKcalPerMinute: s.burnRate,
	}, d.start, d.end)
}

func (s *dashboardService) GetDashboard(ctx context.Context, userID primitive.ObjectID, date time.Time) (*Dashboard, error) {
	d, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, err
	}
	qualifying := stats.CompletedDates(d.completed)
	goals := d.goals

	out := &Dashboard{
		Date:      d.asOf.Format(stats.DateFormat),
		Streaks:   stats.Streaks(qualifying, d.asOf),
		Activity:  stats.ActivityCalendar(qualifying, d.asOf, weekDays),
		Adherence: stats.WeeklyAdherence(d.scheduled, d.asOf),
		Nutrition: stats.Nutrition(stats.MealsOn(d.meals, d.asOf), stats.NutritionGoals{
			DailyCalories: goals.DailyCalories,
			ProteinPct:    goals.ProteinPct,
			CarbsPct:      goals.CarbsPct,
			FatPct:        goals.FatPct,
		}),
		Week:    s.summary(d),
		Weight:  stats.Snapshot(d.progress, domain.MetricWeight, 0),
		BodyFat: stats.Snapshot(d.progress, domain.MetricBodyFat, 0),
		Steps:   stats.DayOverDay(d.progress, domain.MeasureSteps, stepCount, d.asOf, goals.Target(domain.MeasureSteps)),
		Water:   stats.DayOverDay(d.progress, domain.MeasureWaterML, domain.Measurements.WaterML, d.asOf, goals.Target(domain.MeasureWaterML)),
		Sleep:   stats.DayOverDay(d.progress, domain.MeasureSleepHours, domain.Measurements.SleepHours, d.asOf, goals.Target(domain.MeasureSleepHours)),
	}

	var week []domain.ProgressEntry
	for _, e := range d.progress {
		if stats.InRange(e.Date, d.start, d.end) {
			week = append(week, e)
		}
	}
	if change, ok := stats.NetChange(week, domain.MetricWeight); ok {
		out.WeightTrend = &change
	}

	if out.Weight.Available && d.user.HeightCm > 0 {
		bmi := stats.BMI(out.Weight.Value, d.user.HeightCm)
		out.BMI = &bmi
	}
	return out, nil
}

func (s *dashboardService) WeeklyReport(ctx context.Context, userID primitive.ObjectID, date time.Time) (*WeeklyReport, error) {
	d, err := s.load(ctx, userID, date)
	if err != nil {
		return nil, err
	}

	eaten := stats.DailyBreakdown(stats.CompletedMeals(d.meals), d.start, d.end)
	activity := stats.ActivityCalendar(stats.CompletedDates(d.completed), d.asOf, weekDays)
	days := make([]ReportDay, len(eaten))
	for i := range eaten {
		days[i] = ReportDay{
			Date:              eaten[i].Date,
			Macros:            eaten[i].Display,
			WorkoutsCompleted: activity[i].Count,
		}
	}

	return &WeeklyReport{
		PeriodStart:   d.start.Format(stats.DateFormat),
		PeriodEnd:     d.end.Format(stats.DateFormat),
		Days:          days,
		Adherence:     stats.PeriodAdherence(d.scheduled, d.start, d.end),
		MealAdherence: stats.Adherence(d.meals),
		Summary:       s.summary(d),
	}, nil
}
