package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Role type to distinguish between user roles
type Role string

// Define constants for roles
const (
	RoleMember Role = "member"
	RoleAdmin  Role = "admin" // Curates the shared exercise library
)

// Goals holds a user's personal daily targets.
// A zero field means "not set"; the service layer fills it from configured defaults.
type Goals struct {
	DailyCalories  int     `bson:"dailyCalories,omitempty" json:"dailyCalories,omitempty" validate:"gte=0"`
	ProteinPct     int     `bson:"proteinPct,omitempty" json:"proteinPct,omitempty" validate:"gte=0,lte=100"`
	CarbsPct       int     `bson:"carbsPct,omitempty" json:"carbsPct,omitempty" validate:"gte=0,lte=100"`
	FatPct         int     `bson:"fatPct,omitempty" json:"fatPct,omitempty" validate:"gte=0,lte=100"`
	StepGoal       int     `bson:"stepGoal,omitempty" json:"stepGoal,omitempty" validate:"gte=0"`
	WaterGoalML    float64 `bson:"waterGoalMl,omitempty" json:"waterGoalMl,omitempty" validate:"gte=0"`
	SleepGoalHours float64 `bson:"sleepGoalHours,omitempty" json:"sleepGoalHours,omitempty" validate:"gte=0,lte=24"`
}

// WithDefaults returns a copy of g where every unset field is taken from defaults.
func (g Goals) WithDefaults(defaults Goals) Goals {
	if g.DailyCalories == 0 {
		g.DailyCalories = defaults.DailyCalories
	}
	// Macro split is only meaningful as a whole, so take all three or none.
	if g.ProteinPct == 0 && g.CarbsPct == 0 && g.FatPct == 0 {
		g.ProteinPct = defaults.ProteinPct
		g.CarbsPct = defaults.CarbsPct
		g.FatPct = defaults.FatPct
	}
	if g.StepGoal == 0 {
		g.StepGoal = defaults.StepGoal
	}
	if g.WaterGoalML == 0 {
		g.WaterGoalML = defaults.WaterGoalML
	}
	if g.SleepGoalHours == 0 {
		g.SleepGoalHours = defaults.SleepGoalHours
	}
	return g
}

// Target returns the daily goal for a progress metric, or 0 when the metric has none.
func (g Goals) Target(metric string) float64 {
	switch metric {
	case MeasureSteps:
		return float64(g.StepGoal)
	case MeasureWaterML:
		return g.WaterGoalML
	case MeasureSleepHours:
		return g.SleepGoalHours
	}
	return 0
}

// User represents an account in the system.
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`    // Should be unique
	PasswordHash string             `bson:"passwordHash" json:"-"` // Never expose this via JSON
	Role         Role               `bson:"role" json:"role"`
	HeightCm     float64            `bson:"heightCm,omitempty" json:"heightCm,omitempty"`
	Goals        Goals              `bson:"goals" json:"goals"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}
