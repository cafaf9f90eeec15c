package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrWorkoutNotFound         = errors.New("workout not found")
	ErrWorkoutAccessDenied     = errors.New("access denied to this workout")
	ErrInvalidStatusTransition = errors.New("invalid workout status transition")
	ErrWorkoutFinalized        = errors.New("completed or missed workouts cannot be edited")
)

// allowedTransitions lists the statuses a workout may move to from each state.
var allowedTransitions = map[domain.WorkoutStatus][]domain.WorkoutStatus{
	domain.WorkoutScheduled:  {domain.WorkoutInProgress, domain.WorkoutCompleted, domain.WorkoutMissed},
	domain.WorkoutInProgress: {domain.WorkoutCompleted, domain.WorkoutMissed},
}

// CanTransition reports whether a workout in status from may move to status to.
func CanTransition(from, to domain.WorkoutStatus) bool {
	if !from.Valid() || !to.Valid() {
		return false
	}
	return slices.Contains(allowedTransitions[from], to)
}

// WorkoutInput holds the plan of a workout.
type WorkoutInput struct {
	Name          string    `validate:"required,max=100"`
	ScheduledDate time.Time `validate:"required"`
	ExerciseIDs   []primitive.ObjectID
	Notes         string `validate:"max=2000"`
}

// --- Service Interface ---
type WorkoutService interface {
	ScheduleWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	ListWorkouts(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error)
	UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error)
	StartWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	// CompleteWorkout stamps the completion time from the service clock.
	CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, durationMinutes *int) (*domain.Workout, error)
	MarkMissed(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error)
	DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error
}

// --- Service Implementation ---

type workoutService struct {
	workoutRepo  repository.WorkoutRepository
	exerciseRepo repository.ExerciseRepository
	now          func() time.Time
}

// NewWorkoutService creates a new WorkoutService.
func NewWorkoutService(workoutRepo repository.WorkoutRepository, exerciseRepo repository.ExerciseRepository) WorkoutService {
	return &workoutService{
		workoutRepo:  workoutRepo,
		exerciseRepo: exerciseRepo,
		now:          time.Now,
	}
}

// ScheduleWorkout creates a workout in the scheduled state.
func (s *workoutService) ScheduleWorkout(ctx context.Context, userID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	// 1. Validate Inputs
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	if err := s.checkExercises(ctx, input.ExerciseIDs); err != nil {
		return nil, err
	}

	// 2. Create
	workout := &domain.Workout{
		UserID:        userID,
		Name:          input.Name,
		ExerciseIDs:   input.ExerciseIDs,
		Status:        domain.WorkoutScheduled,
		ScheduledDate: input.ScheduledDate.UTC(),
		Notes:         input.Notes,
	}
	id, err := s.workoutRepo.Create(ctx, workout)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to create workout")
		return nil, err
	}
	workout.ID = id
	return workout, nil
}

func (s *workoutService) checkExercises(ctx context.Context, ids []primitive.ObjectID) error {
	for _, id := range ids {
		if _, err := s.exerciseRepo.GetByID(ctx, id); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return fmt.Errorf("%w: %s", ErrExerciseNotFound, id.Hex())
			}
			return err
		}
	}
	return nil
}

// GetWorkout returns the workout if it belongs to userID.
func (s *workoutService) GetWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	workout, err := s.workoutRepo.GetByID(ctx, workoutID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrWorkoutNotFound
		}
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrWorkoutAccessDenied
	}
	return workout, nil
}

// ListWorkouts returns workouts scheduled in [from, to).
func (s *workoutService) ListWorkouts(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, invalidf("'from' must be before 'to'")
	}
	return s.workoutRepo.ListByUser(ctx, userID, from, to)
}

// UpdateWorkout edits the plan of a workout that is not finished yet.
func (s *workoutService) UpdateWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, input WorkoutInput) (*domain.Workout, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if workout.Status == domain.WorkoutCompleted || workout.Status == domain.WorkoutMissed {
		return nil, ErrWorkoutFinalized
	}
	if err := s.checkExercises(ctx, input.ExerciseIDs); err != nil {
		return nil, err
	}

	workout.Name = input.Name
	workout.ScheduledDate = input.ScheduledDate.UTC()
	workout.ExerciseIDs = input.ExerciseIDs
	workout.Notes = input.Notes
	if err := s.save(ctx, workout); err != nil {
		return nil, err
	}
	return workout, nil
}

func (s *workoutService) StartWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return s.transition(ctx, userID, workoutID, domain.WorkoutInProgress, nil)
}

func (s *workoutService) CompleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID, durationMinutes *int) (*domain.Workout, error) {
	if durationMinutes != nil && (*durationMinutes < 0 || *durationMinutes > 24*60) {
		return nil, invalidf("duration must be between 0 and 1440 minutes")
	}
	return s.transition(ctx, userID, workoutID, domain.WorkoutCompleted, durationMinutes)
}

func (s *workoutService) MarkMissed(ctx context.Context, userID, workoutID primitive.ObjectID) (*domain.Workout, error) {
	return s.transition(ctx, userID, workoutID, domain.WorkoutMissed, nil)
}

// transition moves a workout to status to. CompletedDate is written here and
// only here, so it is present exactly when the workout is completed.
func (s *workoutService) transition(ctx context.Context, userID, workoutID primitive.ObjectID, to domain.WorkoutStatus, durationMinutes *int) (*domain.Workout, error) {
	workout, err := s.GetWorkout(ctx, userID, workoutID)
	if err != nil {
		return nil, err
	}
	if !CanTransition(workout.Status, to) {
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidStatusTransition, workout.Status, to)
	}

	workout.Status = to
	if to == domain.WorkoutCompleted {
		completedAt := s.now().UTC()
		workout.CompletedDate = &completedAt
		workout.DurationMinutes = durationMinutes
	} else {
		workout.CompletedDate = nil
	}

	if err := s.save(ctx, workout); err != nil {
		return nil, err
	}
	log.Debug().Str("user_id", userID.Hex()).Str("workout_id", workoutID.Hex()).Str("status", string(to)).Msg("workout status changed")
	return workout, nil
}

func (s *workoutService) save(ctx context.Context, workout *domain.Workout) error {
	if err := s.workoutRepo.Update(ctx, workout); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		log.Error().Err(err).Str("user_id", workout.UserID.Hex()).Str("workout_id", workout.ID.Hex()).Msg("failed to update workout")
		return err
	}
	return nil
}

// DeleteWorkout removes a workout permanently.
func (s *workoutService) DeleteWorkout(ctx context.Context, userID, workoutID primitive.ObjectID) error {
	if _, err := s.GetWorkout(ctx, userID, workoutID); err != nil {
		return err
	}
	if err := s.workoutRepo.Delete(ctx, workoutID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrWorkoutNotFound
		}
		return err
	}
	return nil
}
