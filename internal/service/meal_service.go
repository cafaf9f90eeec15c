package service

import (
	"alcyxob/fittrack/internal/domain"
	"alcyxob/fittrack/internal/repository"
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// --- Error Definitions ---
var (
	ErrMealNotFound     = errors.New("meal not found")
	ErrMealAccessDenied = errors.New("access denied to this meal")
)

// MealInput holds a logged or planned meal. Unknown macros are sent as an explicit 0.
// MealType is free-form; the domain.MealType* constants are only suggestions.
type MealInput struct {
	Name       string    `validate:"max=100"`
	MealType   string    `validate:"required,max=50"`
	Date       time.Time `validate:"required"`
	Calories   float64   `validate:"gte=0,lte=20000"`
	Protein    float64   `validate:"gte=0,lte=2000"`
	Carbs      float64   `validate:"gte=0,lte=2000"`
	Fat        float64   `validate:"gte=0,lte=2000"`
	Completed  bool
	DietPlanID *primitive.ObjectID // optional
}

type MealService interface {
	CreateMeal(ctx context.Context, userID primitive.ObjectID, input MealInput) (*domain.Meal, error)
	GetMeal(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error)
	// ListMeals returns meals dated in [from, to).
	ListMeals(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Meal, error)
	UpdateMeal(ctx context.Context, userID, mealID primitive.ObjectID, input MealInput) (*domain.Meal, error)
	ToggleMealCompleted(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error)
	DeleteMeal(ctx context.Context, userID, mealID primitive.ObjectID) error
}

type mealService struct {
	mealRepo repository.MealRepository
}

// NewMealService creates a new MealService.
func NewMealService(mealRepo repository.MealRepository) MealService {
	return &mealService{mealRepo: mealRepo}
}

func (s *mealService) CreateMeal(ctx context.Context, userID primitive.ObjectID, input MealInput) (*domain.Meal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	meal := &domain.Meal{UserID: userID}
	applyMealInput(meal, input)

	id, err := s.mealRepo.Create(ctx, meal)
	if err != nil {
		log.Error().Err(err).Str("user_id", userID.Hex()).Msg("failed to create meal")
		return nil, err
	}
	meal.ID = id
	return meal, nil
}

func applyMealInput(meal *domain.Meal, input MealInput) {
	meal.Name = input.Name
	meal.MealType = input.MealType
	meal.Date = input.Date.UTC()
	meal.Calories = input.Calories
	meal.Protein = input.Protein
	meal.Carbs = input.Carbs
	meal.Fat = input.Fat
	meal.Completed = input.Completed
	meal.DietPlanID = input.DietPlanID
}

// GetMeal returns the meal if it belongs to userID.
func (s *mealService) GetMeal(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error) {
	meal, err := s.mealRepo.GetByID(ctx, mealID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	if meal.UserID != userID {
		return nil, ErrMealAccessDenied
	}
	return meal, nil
}

func (s *mealService) ListMeals(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Meal, error) {
	if !from.IsZero() && !to.IsZero() && !from.Before(to) {
		return nil, invalidf("'from' must be before 'to'")
	}
	return s.mealRepo.ListByUser(ctx, userID, from, to)
}

func (s *mealService) UpdateMeal(ctx context.Context, userID, mealID primitive.ObjectID, input MealInput) (*domain.Meal, error) {
	if err := validateStruct(input); err != nil {
		return nil, err
	}
	meal, err := s.GetMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}
	applyMealInput(meal, input)
	if err := s.mealRepo.Update(ctx, meal); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

// ToggleMealCompleted flips whether the meal was eaten.
func (s *mealService) ToggleMealCompleted(ctx context.Context, userID, mealID primitive.ObjectID) (*domain.Meal, error) {
	meal, err := s.GetMeal(ctx, userID, mealID)
	if err != nil {
		return nil, err
	}
	meal.Completed = !meal.Completed
	if err := s.mealRepo.SetCompleted(ctx, mealID, userID, meal.Completed); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrMealNotFound
		}
		return nil, err
	}
	return meal, nil
}

func (s *mealService) DeleteMeal(ctx context.Context, userID, mealID primitive.ObjectID) error {
	if _, err := s.GetMeal(ctx, userID, mealID); err != nil {
		return err
	}
	if err := s.mealRepo.Delete(ctx, mealID, userID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrMealNotFound
		}
		return err
	}
	return nil
}
