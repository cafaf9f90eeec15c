package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WorkoutStatus is the lifecycle state of a scheduled workout.
type WorkoutStatus string

const (
	WorkoutScheduled  WorkoutStatus = "scheduled"
	WorkoutInProgress WorkoutStatus = "in_progress"
	WorkoutCompleted  WorkoutStatus = "completed"
	WorkoutMissed     WorkoutStatus = "missed"
)

// Valid reports whether s is one of the known statuses.
func (s WorkoutStatus) Valid() bool {
	switch s {
	case WorkoutScheduled, WorkoutInProgress, WorkoutCompleted, WorkoutMissed:
		return true
	}
	return false
}

// Workout is a single workout session a user has scheduled.
// CompletedDate is set if and only if Status == WorkoutCompleted.
type Workout struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID   `bson:"userId" json:"userId"`
	Name            string               `bson:"name" json:"name"` // e.g., "Upper Body", "Long Run"
	ExerciseIDs     []primitive.ObjectID `bson:"exerciseIds,omitempty" json:"exerciseIds,omitempty"`
	Status          WorkoutStatus        `bson:"status" json:"status"`
	ScheduledDate   time.Time            `bson:"scheduledDate" json:"scheduledDate"`
	CompletedDate   *time.Time           `bson:"completedDate,omitempty" json:"completedDate,omitempty"`
	DurationMinutes *int                 `bson:"durationMinutes,omitempty" json:"durationMinutes,omitempty"`
	Notes           string               `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt       time.Time            `bson:"createdAt" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updatedAt" json:"updatedAt"`
}

// IsCompleted reports whether the workout counts toward streaks.
func (w *Workout) IsCompleted() bool {
	return w.Status == WorkoutCompleted && w.CompletedDate != nil
}
