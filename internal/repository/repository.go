package repository

import (
	"alcyxob/fittrack/internal/domain" // Import our defined domain models
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive" // For using ObjectIDs
)

// Error constants for repository layer
var (
	ErrNotFound     = RepositoryError("not found")
	ErrDuplicate    = RepositoryError("duplicate")
	ErrUpdateFailed = RepositoryError("update failed")
)

// RepositoryError helps distinguish repository errors
type RepositoryError string

func (e RepositoryError) Error() string {
	return string(e)
}

// UserRepository defines the interface for interacting with user data.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (primitive.ObjectID, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	UpdateProfile(ctx context.Context, id primitive.ObjectID, heightCm float64, goals domain.Goals) error
}

// ExerciseRepository defines the interface for the shared exercise library.
type ExerciseRepository interface {
	Create(ctx context.Context, exercise *domain.Exercise) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Exercise, error)
	List(ctx context.Context, muscleGroup string) ([]domain.Exercise, error) // Empty muscleGroup lists all
	Update(ctx context.Context, exercise *domain.Exercise) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// WorkoutRepository defines the interface for interacting with workout data.
type WorkoutRepository interface {
	Create(ctx context.Context, workout *domain.Workout) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Workout, error)
	// ListByUser returns workouts scheduled in [from, to); zero times leave that side open.
	ListByUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Workout, error)
	// ListCompleted returns every completed workout of the user, for streak computation.
	ListCompleted(ctx context.Context, userID primitive.ObjectID) ([]domain.Workout, error)
	Update(ctx context.Context, workout *domain.Workout) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// MealRepository defines the interface for interacting with meal data.
type MealRepository interface {
	Create(ctx context.Context, meal *domain.Meal) (primitive.ObjectID, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Meal, error)
	// ListByUser returns meals dated in [from, to).
	ListByUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.Meal, error)
	Update(ctx context.Context, meal *domain.Meal) error
	SetCompleted(ctx context.Context, id, userID primitive.ObjectID, completed bool) error
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}

// ProgressUpdate describes a change to a user's progress entry for one day.
// Nil pointers and empty maps leave the stored values untouched.
type ProgressUpdate struct {
	Weight    *float64
	BodyFat   *float64
	Set       map[string]float64 // measurement keys to overwrite
	Increment map[string]float64 // measurement keys to add to (e.g. water)
}

// ProgressRepository defines the interface for progress entries, one per user per day.
type ProgressRepository interface {
	// UpsertDay applies update to the entry for day, creating it if absent.
	UpsertDay(ctx context.Context, userID primitive.ObjectID, day time.Time, update ProgressUpdate) (*domain.ProgressEntry, error)
	// ListByUser returns entries dated in [from, to), newest first; zero times leave that side open.
	ListByUser(ctx context.Context, userID primitive.ObjectID, from, to time.Time) ([]domain.ProgressEntry, error)
}

// PhotoRepository defines the interface for progress photo metadata.
type PhotoRepository interface {
	Create(ctx context.Context, photo *domain.ProgressPhoto) (primitive.ObjectID, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]domain.ProgressPhoto, error)
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.ProgressPhoto, error)
	Delete(ctx context.Context, id, userID primitive.ObjectID) error
}
