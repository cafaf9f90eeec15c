package api

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/service"
	"alcyxob/fittrack/internal/stats"
	"context"
	"time"

	"github.com/stretchr/testify/mock"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MockWorkoutService struct {
	mock.Mock
}

func (m *MockWorkoutService) workout(args mock.Arguments) (*domain.Workout, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Workout), args.Error(1)
}

func (m *MockWorkoutService) ScheduleWorkout(ctx context.Context, userID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, input))
}

func (m *MockWorkoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, workoutID))
}

func (m *MockWorkoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Workout), args.Error(1)
}

func (m *MockWorkoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input service.WorkoutInput) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, workoutID, input))
}

func (m *MockWorkoutService) StartWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, workoutID))
}

func (m *MockWorkoutService) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, durationMinutes *int) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, workoutID, durationMinutes))
}

func (m *MockWorkoutService) MarkMissed(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return m.workout(m.Called(ctx, userID, workoutID))
}

func (m *MockWorkoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	return m.Called(ctx, userID, workoutID).Error(0)
}

type MockProgressService struct {
	mock.Mock
}

func (m *MockProgressService) entry(args mock.Arguments) (*domain.ProgressEntry, error) {
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressEntry), args.Error(1)
}

func (m *MockProgressService) LogWeighIn(ctx context.Context, userID primitive.ObjectID, day time.Time, input service.WeighIn) (*domain.ProgressEntry, error) {
	return m.entry(m.Called(ctx, userID, day, input))
}

func (m *MockProgressService) LogSleep(ctx context.Context, userID primitive.ObjectID, day time.Time, hours float64) (*domain.ProgressEntry, error) {
	return m.entry(m.Called(ctx, userID, day, hours))
}

func (m *MockProgressService) LogSteps(ctx context.Context, userID primitive.ObjectID, day time.Time, steps int) (*domain.ProgressEntry, error) {
	return m.entry(m.Called(ctx, userID, day, steps))
}

func (m *MockProgressService) LogWater(ctx context.Context, userID primitive.ObjectID, day time.Time, ml float64) (*domain.ProgressEntry, error) {
	return m.entry(m.Called(ctx, userID, day, ml))
}

func (m *MockProgressService) LogMeasurements(ctx context.Context, userID primitive.ObjectID, day time.Time, values map[string]float64) (*domain.ProgressEntry, error) {
	return m.entry(m.Called(ctx, userID, day, values))
}

func (m *MockProgressService) ListEntries(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ProgressEntry, error) {
	args := m.Called(ctx, userID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.ProgressEntry), args.Error(1)
}

func (m *MockProgressService) MetricSeries(ctx context.Context, userID primitive.ObjectID, metric string, from, to time.Time) ([]stats.Point, error) {
	args := m.Called(ctx, userID, metric, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]stats.Point), args.Error(1)
}

func (m *MockProgressService) MetricTrend(ctx context.Context, userID primitive.ObjectID, metric string) (stats.MetricSnapshot, error) {
	args := m.Called(ctx, userID, metric)
	return args.Get(0).(stats.MetricSnapshot), args.Error(1)
}

type MockDashboardService struct {
	mock.Mock
}

func (m *MockDashboardService) GetDashboard(ctx context.Context, userID primitive.ObjectID, date time.Time) (*service.Dashboard, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.Dashboard), args.Error(1)
}

func (m *MockDashboardService) WeeklyReport(ctx context.Context, userID primitive.ObjectID, date time.Time) (*service.WeeklyReport, error) {
	args := m.Called(ctx, userID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.WeeklyReport), args.Error(1)
}

type MockPhotoService struct {
	mock.Mock
}

func (m *MockPhotoService) RequestUploadURL(ctx context.Context, userID primitive.ObjectID, req service.PhotoUploadRequest) (*service.UploadURLResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*service.UploadURLResponse), args.Error(1)
}

func (m *MockPhotoService) ConfirmUpload(ctx context.Context, userID primitive.ObjectID, objectKey, fileName string) (*domain.ProgressPhoto, error) {
	args := m.Called(ctx, userID, objectKey, fileName)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ProgressPhoto), args.Error(1)
}

func (m *MockPhotoService) ListPhotos(ctx context.Context, userID primitive.ObjectID) ([]service.PhotoWithURL, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]service.PhotoWithURL), args.Error(1)
}

func (m *MockPhotoService) DeletePhoto(ctx context.Context, userID, photoID primitive.ObjectID) error {
	args := m.Called(ctx, userID, photoID)
	return args.Error(0)
}
