package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestExerciseService_CreateExercise(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExerciseRepository)
	svc := NewExerciseService(repo)
	adminID := primitive.NewObjectID()
	newID := primitive.NewObjectID()

	repo.On("Create", ctx, mock.MatchedBy(func(ex *domain.Exercise) bool {
		return ex.Name == "Back Squat" && ex.CreatedBy == adminID
	})).Return(newID, nil).Once()

	ex, err := svc.CreateExercise(ctx, adminID, domain.RoleAdmin, ExerciseInput{
		Name:        "Back Squat",
		MuscleGroup: "legs",
		Difficulty:  "Medium",
	})

	require.NoError(t, err)
	assert.Equal(t, newID, ex.ID)
	repo.AssertExpectations(t)
}

func TestExerciseService_CreateExercise_Rejected(t *testing.T) {
	ctx := context.Background()
	actor := primitive.NewObjectID()

	t.Run("member", func(t *testing.T) {
		repo := new(MockExerciseRepository)
		_, err := NewExerciseService(repo).CreateExercise(ctx, actor, domain.RoleMember, ExerciseInput{Name: "Plank"})
		assert.ErrorIs(t, err, ErrExerciseAccessDenied)
		repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("bad difficulty", func(t *testing.T) {
		repo := new(MockExerciseRepository)
		_, err := NewExerciseService(repo).CreateExercise(ctx, actor, domain.RoleAdmin, ExerciseInput{Name: "Plank", Difficulty: "Insane"})
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("duplicate name", func(t *testing.T) {
		repo := new(MockExerciseRepository)
		repo.On("Create", ctx, mock.Anything).Return(primitive.NilObjectID, repository.ErrDuplicate).Once()
		_, err := NewExerciseService(repo).CreateExercise(ctx, actor, domain.RoleAdmin, ExerciseInput{Name: "Plank"})
		assert.ErrorIs(t, err, ErrExerciseExists)
	})
}

func TestExerciseService_UpdateExercise(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExerciseRepository)
	svc := NewExerciseService(repo)
	exID := primitive.NewObjectID()

	repo.On("GetByID", ctx, exID).Return(&domain.Exercise{ID: exID, Name: "Row"}, nil).Once()
	repo.On("Update", ctx, mock.MatchedBy(func(ex *domain.Exercise) bool {
		return ex.ID == exID && ex.Name == "Barbell Row" && ex.Equipment == "barbell"
	})).Return(nil).Once()

	ex, err := svc.UpdateExercise(ctx, domain.RoleAdmin, exID, ExerciseInput{Name: "Barbell Row", Equipment: "barbell"})

	require.NoError(t, err)
	assert.Equal(t, "Barbell Row", ex.Name)
	repo.AssertExpectations(t)
}

func TestExerciseService_GetAndDelete_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(MockExerciseRepository)
	svc := NewExerciseService(repo)
	exID := primitive.NewObjectID()

	repo.On("GetByID", ctx, exID).Return(nil, repository.ErrNotFound).Once()
	repo.On("Delete", ctx, exID).Return(repository.ErrNotFound).Once()

	_, err := svc.GetExerciseByID(ctx, exID)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	err = svc.DeleteExercise(ctx, domain.RoleAdmin, exID)
	assert.ErrorIs(t, err, ErrExerciseNotFound)

	err = svc.DeleteExercise(ctx, domain.RoleMember, exID)
	assert.ErrorIs(t, err, ErrExerciseAccessDenied)
	repo.AssertExpectations(t)
}
