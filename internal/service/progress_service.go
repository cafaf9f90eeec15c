package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"alcyxob/fittrack/internal/stats"
	"context"
	"slices"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WeighIn is a body composition log. At least one field must be set.
type WeighIn struct {
	Weight  *float64 `validate:"omitempty,gt=0,lte=700"`
	BodyFat *float64 `validate:"omitempty,gte=0,lte=100"`
}

// ProgressService logs daily progress. Every log call upserts the single entry
// of the given calendar day; a zero day means today.
type ProgressService interface {
	LogWeighIn(ctx context.Context, userID primitive.ObjectID, day time.Time, input WeighIn) (*domain.ProgressEntry, error)
	LogSleep(ctx context.Context, userID primitive.ObjectID, day time.Time, hours float64) (*domain.ProgressEntry, error)
	LogSteps(ctx context.Context, userID primitive.ObjectID, day time.Time, steps int) (*domain.ProgressEntry, error)
	// LogWater adds ml to the day's water intake.
	LogWater(ctx context.Context, userID primitive.ObjectID, day time.Time, ml float64) (*domain.ProgressEntry, error)
	LogMeasurements(ctx context.Context, userID primitive.ObjectID, day time.Time, values map[string]float64) (*domain.ProgressEntry, error)
	ListEntries(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ProgressEntry, error)
	MetricSeries(ctx context.Context, userID primitive.ObjectID, metric string, from, to time.Time) ([]stats.Point, error)
	MetricTrend(ctx context.Context, userID primitive.ObjectID, metric string) (stats.MetricSnapshot, error)
}

// dailyGoalMetrics are the measurements domain.Goals.Target knows about.
var dailyGoalMetrics = []string{domain.MeasureSteps, domain.MeasureWaterML, domain.MeasureSleepHours}

type progressService struct {
	progressRepo repository.ProgressRepository
	userRepo     repository.UserRepository
	defaults     domain.Goals
	now          func() time.Time
}

// NewProgressService creates a new ProgressService. defaults fill the daily
// goals a user has not set when trends report percent of goal.
func NewProgressService(progressRepo repository.ProgressRepository, userRepo repository.UserRepository, defaults domain.Goals) ProgressService {
	return &progressService{progressRepo: progressRepo, userRepo: userRepo, defaults: defaults, now: time.Now}
}

// resolveDay normalizes day to midnight UTC and rejects days after today.
func (s *progressService) resolveDay(day time.Time) (time.Time, error) {
	today := stats.Day(s.now().UTC())
	if day.IsZero() {
		return today, nil
	}
	d := stats.Day(day.UTC())
	if d.After(today) {
		return time.Time{}, invalidf("cannot log progress for a future day")
	}
	return d, nil
}

func (s *progressService) upsert(ctx context.Context, userID primitive.ObjectID, day time.Time, update repository.ProgressUpdate) (*domain.ProgressEntry, error) {
	d, err := s.resolveDay(day)
	if err != nil {
		return nil, err
	}
	entry, err := s.progressRepo.UpsertDay(ctx, userID, d, update)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Time("day", d).Msg("failed to save progress entry")
		return nil, err
	}
	return entry, nil
}

func (s *progressService) LogWeighIn(ctx context.Context, userID primitive.ObjectID, day time.Time, input WeighIn) (*domain.ProgressEntry, error) {
	if input.Weight == nil && input.BodyFat == nil {
		return nil, invalidf("weight or body fat is required")
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	return s.upsert(ctx, userID, day, repository.ProgressUpdate{Weight: input.Weight, BodyFat: input.BodyFat})
}

func (s *progressService) LogSleep(ctx context.Context, userID primitive.ObjectID, day time.Time, hours float64) (*domain.ProgressEntry, error) {
	if hours < 0 || hours > 24 {
		return nil, invalidf("sleep hours must be between 0 and 24")
	}
	return s.upsert(ctx, userID, day, repository.ProgressUpdate{
		Set: map[string]float64{domain.MeasureSleepHours: hours},
	})
}

func (s *progressService) LogSteps(ctx context.Context, userID primitive.ObjectID, day time.Time, steps int) (*domain.ProgressEntry, error) {
	if steps < 0 {
		return nil, invalidf("steps cannot be negative")
	}
	return s.upsert(ctx, userID, day, repository.ProgressUpdate{
		Set: map[string]float64{domain.MeasureSteps: float64(steps)},
	})
}

func (s *progressService) LogWater(ctx context.Context, userID primitive.ObjectID, day time.Time, ml float64) (*domain.ProgressEntry, error) {
	if ml <= 0 || ml > 10000 {
		return nil, invalidf("water amount must be between 0 and 10000 ml")
	}
	return s.upsert(ctx, userID, day, repository.ProgressUpdate{
		Increment: map[string]float64{domain.MeasureWaterML: ml},
	})
}

// LogMeasurements overwrites the given measurement keys. Keys are free-form
// (e.g. "chest", "biceps") but must be usable as a document field name.
func (s *progressService) LogMeasurements(ctx context.Context, userID primitive.ObjectID, day time.Time, values map[string]float64) (*domain.ProgressEntry, error) {
	if len(values) == 0 {
		return nil, invalidf("at least one measurement is required")
	}
	for key, v := range values {
		if err := checkMeasurementKey(key); err != nil {
			return nil, err
		}
		if v < 0 {
			return nil, invalidf("measurement %q cannot be negative", key)
		}
	}
	return s.upsert(ctx, userID, day, repository.ProgressUpdate{Set: values})
}

func checkMeasurementKey(key string) error {
	switch {
	case key == "" || len(key) > 50:
		return invalidf("measurement key must be 1-50 characters")
	case strings.ContainsAny(key, ".$"):
		return invalidf("measurement key %q contains '.' or '$'", key)
	case key == domain.MetricWeight || key == domain.MetricBodyFat:
		return invalidf("%q is logged with a weigh-in", key)
	}
	return nil
}

func (s *progressService) ListEntries(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ProgressEntry, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, invalidf("'from' must be before 'to'")
	}
	return s.progressRepo.ListByUser(ctx, userID, from, to)
}

// MetricSeries returns (date, value) points for metric, oldest first.
func (s *progressService) MetricSeries(ctx context.Context, userID primitive.ObjectID, metric string, from, to time.Time) ([]stats.Point, error) {
	if metric == "" {
		return nil, invalidf("metric is required")
	}
	entries, err := s.ListEntries(ctx, userID, from, to)
	if err != nil {
		return nil, err
	}
	points := slices.Collect(stats.Series(entries, metric))
	if points == nil {
		points = []stats.Point{}
	}
	return points, nil
}

// MetricTrend reports the latest value and direction of metric across all entries.
// Metrics with a daily goal (steps, water, sleep) also carry the percent of it.
func (s *progressService) MetricTrend(ctx context.Context, userID primitive.ObjectID, metric string) (stats.MetricSnapshot, error) {
	if metric == "" {
		return stats.MetricSnapshot{}, invalidf("metric is required")
	}
	var goal float64
	if slices.Contains(dailyGoalMetrics, metric) {
		user, err := loadUser(ctx, s.userRepo, userID)
		if err != nil {
			return stats.MetricSnapshot{}, err
		}
		goal = user.Goals.WithDefaults(s.defaults).Target(metric)
	}
	entries, err := s.progressRepo.ListByUser(ctx, userID, time.Time{}, time.Time{})
	if err != nil {
		return stats.MetricSnapshot{}, err
	}
	return stats.Snapshot(entries, metric, goal), nil
}
