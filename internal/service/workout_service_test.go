package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newTestWorkoutService(now time.Time) (*workoutService, *MockWorkoutRepository, *MockExerciseRepository) {
	workouts := new(MockWorkoutRepository)
	exercises := new(MockExerciseRepository)
	svc := NewWorkoutService(workouts, exercises).(*workoutService)
	svc.now = fixedClock(now)
	return svc, workouts, exercises
}

func TestCanTransition(t *testing.T) {
	tests := []struct {
		from, to domain.WorkoutStatus
		want     bool
	}{
		{domain.WorkoutScheduled, domain.WorkoutInProgress, true},
		{domain.WorkoutScheduled, domain.WorkoutCompleted, true},
		{domain.WorkoutScheduled, domain.WorkoutMissed, true},
		{domain.WorkoutInProgress, domain.WorkoutCompleted, true},
		{domain.WorkoutInProgress, domain.WorkoutMissed, true},
		{domain.WorkoutInProgress, domain.WorkoutScheduled, false},
		{domain.WorkoutCompleted, domain.WorkoutMissed, false},
		{domain.WorkoutCompleted, domain.WorkoutCompleted, false},
		{domain.WorkoutMissed, domain.WorkoutCompleted, false},
		{domain.WorkoutScheduled, domain.WorkoutStatus("cancelled"), false},
		{domain.WorkoutStatus(""), domain.WorkoutInProgress, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, CanTransition(tt.from, tt.to), "%s -> %s", tt.from, tt.to)
	}
}

func TestWorkoutService_ScheduleWorkout(t *testing.T) {
	ctx := context.Background()
	svc, workouts, exercises := newTestWorkoutService(time.Now())
	userID := primitive.NewObjectID()
	exID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	exercises.On("GetByID", ctx, exID).Return(&domain.Exercise{ID: exID}, nil)
	workouts.On("Create", ctx, mock.MatchedBy(func(w *domain.Workout) bool {
		return w.UserID == userID && w.Status == domain.WorkoutScheduled && w.CompletedDate == nil
	})).Return(newID, nil)

	w, err := svc.ScheduleWorkout(ctx, userID, WorkoutInput{
		Name:          "Legs",
		ScheduledDate: day("2024-03-10"),
		ExerciseIDs:   []primitive.ObjectID{exID},
	})

	require.NoError(t, err)
	assert.Equal(t, newID, w.ID)
	assert.Equal(t, domain.WorkoutScheduled, w.Status)
}

func TestWorkoutService_ScheduleWorkout_UnknownExercise(t *testing.T) {
	ctx := context.Background()
	svc, workouts, exercises := newTestWorkoutService(time.Now())
	exID := primitive.NewObjectID()
	exercises.On("GetByID", ctx, exID).Return(nil, repository.ErrNotFound)

	_, err := svc.ScheduleWorkout(ctx, primitive.NewObjectID(), WorkoutInput{
		Name:          "Legs",
		ScheduledDate: day("2024-03-10"),
		ExerciseIDs:   []primitive.ObjectID{exID},
	})

	assert.ErrorIs(t, err, ErrExerciseNotFound)
	workouts.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestWorkoutService_CompleteWorkout_StampsClock(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 18, 45, 0, 0, time.UTC)
	svc, workouts, _ := newTestWorkoutService(now)
	userID := primitive.NewObjectID()
	w := &domain.Workout{ID: primitive.NewObjectID(), UserID: userID, Status: domain.WorkoutInProgress, ScheduledDate: day("2024-03-10")}

	workouts.On("GetByID", ctx, w.ID).Return(w, nil)
	workouts.On("Update", ctx, w).Return(nil)

	got, err := svc.CompleteWorkout(ctx, userID, w.ID, ptr(45))

	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutCompleted, got.Status)
	require.NotNil(t, got.CompletedDate)
	assert.Equal(t, now, *got.CompletedDate)
	assert.Equal(t, 45, *got.DurationMinutes)
	workouts.AssertExpectations(t)
}

func TestWorkoutService_CompleteTwiceFails(t *testing.T) {
	ctx := context.Background()
	svc, workouts, _ := newTestWorkoutService(time.Now())
	userID := primitive.NewObjectID()
	done := day("2024-03-09")
	w := &domain.Workout{ID: primitive.NewObjectID(), UserID: userID, Status: domain.WorkoutCompleted, CompletedDate: &done}
	workouts.On("GetByID", ctx, w.ID).Return(w, nil)

	_, err := svc.CompleteWorkout(ctx, userID, w.ID, nil)

	assert.ErrorIs(t, err, ErrInvalidStatusTransition)
	assert.Equal(t, done, *w.CompletedDate)
	workouts.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestWorkoutService_MarkMissed(t *testing.T) {
	ctx := context.Background()
	svc, workouts, _ := newTestWorkoutService(time.Now())
	userID := primitive.NewObjectID()
	w := &domain.Workout{ID: primitive.NewObjectID(), UserID: userID, Status: domain.WorkoutScheduled}
	workouts.On("GetByID", ctx, w.ID).Return(w, nil)
	workouts.On("Update", ctx, w).Return(nil)

	got, err := svc.MarkMissed(ctx, userID, w.ID)

	require.NoError(t, err)
	assert.Equal(t, domain.WorkoutMissed, got.Status)
	assert.Nil(t, got.CompletedDate)
}

func TestWorkoutService_OtherUsersWorkout(t *testing.T) {
	ctx := context.Background()
	svc, workouts, _ := newTestWorkoutService(time.Now())
	w := &domain.Workout{ID: primitive.NewObjectID(), UserID: primitive.NewObjectID(), Status: domain.WorkoutScheduled}
	workouts.On("GetByID", ctx, w.ID).Return(w, nil)

	_, err := svc.StartWorkout(ctx, primitive.NewObjectID(), w.ID)
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)

	err = svc.DeleteWorkout(ctx, primitive.NewObjectID(), w.ID)
	assert.ErrorIs(t, err, ErrWorkoutAccessDenied)
	workouts.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything, mock.Anything)
}

func TestWorkoutService_UpdateFinalized(t *testing.T) {
	ctx := context.Background()
	svc, workouts, _ := newTestWorkoutService(time.Now())
	userID := primitive.NewObjectID()
	w := &domain.Workout{ID: primitive.NewObjectID(), UserID: userID, Status: domain.WorkoutMissed}
	workouts.On("GetByID", ctx, w.ID).Return(w, nil)

	_, err := svc.UpdateWorkout(ctx, userID, w.ID, WorkoutInput{Name: "Legs", ScheduledDate: day("2024-03-12")})

	assert.ErrorIs(t, err, ErrWorkoutFinalized)
}

func TestWorkoutService_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, workouts, _ := newTestWorkoutService(time.Now())
	id := primitive.NewObjectID()
	workouts.On("GetByID", ctx, id).Return(nil, repository.ErrNotFound)

	_, err := svc.GetWorkout(ctx, primitive.NewObjectID(), id)
	assert.ErrorIs(t, err, ErrWorkoutNotFound)
}
