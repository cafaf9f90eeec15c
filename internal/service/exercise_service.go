package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"errors"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrExerciseNotFound     = errors.New("exercise not found")
	ErrExerciseAccessDenied = errors.New("only admins can modify the exercise library")
	ErrExerciseExists       = errors.New("exercise with this name already exists")
)

// ExerciseInput holds the editable fields of a library exercise.
type ExerciseInput struct {
	Name        string `validate:"required,max=100"`
	Description string `validate:"max=2000"`
	MuscleGroup string `validate:"max=50"`
	Equipment   string `validate:"max=50"`
	Difficulty  string `validate:"omitempty,oneof=Novice Medium Advanced"`
	VideoURL    string `validate:"omitempty,url"`
}

// --- Service Interface ---
type ExerciseService interface {
	CreateExercise(ctx context.Context, actor primitive.ObjectID, role domain.Role, input ExerciseInput) (*domain.Exercise, error)
	GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error)
	ListExercises(ctx context.Context, muscleGroup string) ([]domain.Exercise, error)
	UpdateExercise(ctx context.Context, role domain.Role, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error)
	DeleteExercise(ctx context.Context, role domain.Role, exerciseID primitive.ObjectID) error
}

// --- Service Implementation ---

// exerciseService implements the ExerciseService interface.
type exerciseService struct {
	exerciseRepo repository.ExerciseRepository
}

// NewExerciseService creates a new instance of exerciseService.
func NewExerciseService(exerciseRepo repository.ExerciseRepository) ExerciseService {
	return &exerciseService{
		exerciseRepo: exerciseRepo,
	}
}

// CreateExercise adds an exercise to the shared library.
func (s *exerciseService) CreateExercise(ctx context.Context, actor primitive.ObjectID, role domain.Role, input ExerciseInput) (*domain.Exercise, error) {
	if role != domain.RoleAdmin {
		return nil, ErrExerciseAccessDenied
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	exercise := &domain.Exercise{
		CreatedBy:   actor,
		Name:        input.Name,
		Description: input.Description,
		MuscleGroup: input.MuscleGroup,
		Equipment:   input.Equipment,
		Difficulty:  input.Difficulty,
		VideoURL:    input.VideoURL,
	}

	exerciseID, err := s.exerciseRepo.Create(ctx, exercise)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrExerciseExists
		}
		log.Error().Err(err).Str("user_id", actor.Hex()).Msg("failed to create exercise")
		return nil, err
	}
	exercise.ID = exerciseID
	return exercise, nil
}

// GetExerciseByID retrieves a single exercise. The library is readable by every user.
func (s *exerciseService) GetExerciseByID(ctx context.Context, exerciseID primitive.ObjectID) (*domain.Exercise, error) {
	exercise, err := s.exerciseRepo.GetByID(ctx, exerciseID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// ListExercises returns the library, optionally for one muscle group.
func (s *exerciseService) ListExercises(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) {
	return s.exerciseRepo.List(ctx, muscleGroup)
}

// UpdateExercise replaces the editable fields of an exercise.
func (s *exerciseService) UpdateExercise(ctx context.Context, role domain.Role, exerciseID primitive.ObjectID, input ExerciseInput) (*domain.Exercise, error) {
	if role != domain.RoleAdmin {
		return nil, ErrExerciseAccessDenied
	}
	if err := validateStruct(input); err != nil {
		return nil, err
	}

	exercise, err := s.GetExerciseByID(ctx, exerciseID)
	if err != nil {
		return nil, err
	}
	exercise.Name = input.Name
	exercise.Description = input.Description
	exercise.MuscleGroup = input.MuscleGroup
	exercise.Equipment = input.Equipment
	exercise.Difficulty = input.Difficulty
	exercise.VideoURL = input.VideoURL

	if err := s.exerciseRepo.Update(ctx, exercise); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrExerciseNotFound
		}
		return nil, err
	}
	return exercise, nil
}

// DeleteExercise removes an exercise from the library.
// Workouts that referenced it keep the dangling ID.
func (s *exerciseService) DeleteExercise(ctx context.Context, role domain.Role, exerciseID primitive.ObjectID) error {
	if role != domain.RoleAdmin {
		return ErrExerciseAccessDenied
	}
	if err := s.exerciseRepo.Delete(ctx, exerciseID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrExerciseNotFound
		}
		return err
	}
	return nil
}
