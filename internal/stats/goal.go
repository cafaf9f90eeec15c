package stats

import "math"

// PercentOfGoal returns round(100 * current / goal). A non-positive goal yields 0.
// The result is not capped; 120% of a step goal is a valid answer.
func PercentOfGoal(current, goal float64) int {
	if goal <= 0 {
		return 0
	}
	return int(math.Round(100 * current / goal))
}

// Change is a signed difference split into magnitude and direction.
// Whether a positive change is good is up to the caller.
type Change struct {
	Magnitude  float64 `json:"magnitude"`
	IsPositive bool    `json:"isPositive"`
}

// Delta compares current against previous.
func Delta(current, previous float64) Change {
	diff := current - previous
	return Change{
		Magnitude:  math.Abs(diff),
		IsPositive: diff >= 0,
	}
}
