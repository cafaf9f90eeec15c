package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Common meal types. The field is free-form; these are just the ones the UI offers.
const (
	MealTypeBreakfast = "breakfast"
	MealTypeLunch     = "lunch"
	MealTypeDinner    = "dinner"
	MealTypeSnack     = "snack"
)

// Meal is a planned or logged meal. Macros are always present;
// unknown nutrition is stored as an explicit zero.
type Meal struct {
	ID         primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID     primitive.ObjectID  `bson:"userId" json:"userId"`
	DietPlanID *primitive.ObjectID `bson:"dietPlanId,omitempty" json:"dietPlanId,omitempty"`
	Name       string              `bson:"name,omitempty" json:"name,omitempty"`
	MealType   string              `bson:"mealType" json:"mealType" validate:"required"`
	Date       time.Time           `bson:"date" json:"date" validate:"required"`
	Calories   float64             `bson:"calories" json:"calories" validate:"gte=0"`
	Protein    float64             `bson:"protein" json:"protein" validate:"gte=0"` // grams
	Carbs      float64             `bson:"carbs" json:"carbs" validate:"gte=0"`     // grams
	Fat        float64             `bson:"fat" json:"fat" validate:"gte=0"`         // grams
	Completed  bool                `bson:"completed" json:"completed"`              // user reports having eaten it
	CreatedAt  time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time           `bson:"updatedAt" json:"updatedAt"`
}
