package stats

import (
	"math"
	"time"

	"alcyxob/fittrack/internal/domain"
)

// Energy density per gram of each macronutrient.
const (
	KcalPerGramProtein = 4
	KcalPerGramCarbs   = 4
	KcalPerGramFat     = 9
)

// Macros is an unrounded macro total.
type Macros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// Add returns the element-wise sum of m and o.
func (m Macros) Add(o Macros) Macros {
	return Macros{
		Calories: m.Calories + o.Calories,
		Protein:  m.Protein + o.Protein,
		Carbs:    m.Carbs + o.Carbs,
		Fat:      m.Fat + o.Fat,
	}
}

// Rounded is the display form: every value rounded to the nearest integer.
func (m Macros) Rounded() RoundedMacros {
	return RoundedMacros{
		Calories: int(math.Round(m.Calories)),
		Protein:  int(math.Round(m.Protein)),
		Carbs:    int(math.Round(m.Carbs)),
		Fat:      int(math.Round(m.Fat)),
	}
}

// RoundedMacros is Macros prepared for display.
type RoundedMacros struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

func mealMacros(m *domain.Meal) Macros {
	return Macros{Calories: m.Calories, Protein: m.Protein, Carbs: m.Carbs, Fat: m.Fat}
}

// SumMacros folds meal macros. Nothing is rounded here; rounding errors would
// otherwise compound across days.
func SumMacros(meals []domain.Meal) Macros {
	var total Macros
	for i := range meals {
		total = total.Add(mealMacros(&meals[i]))
	}
	return total
}

// MacroTargets are daily gram targets derived from a calorie budget.
type MacroTargets struct {
	ProteinGrams float64 `json:"proteinGrams"`
	CarbsGrams   float64 `json:"carbsGrams"`
	FatGrams     float64 `json:"fatGrams"`
}

// Rounded returns the targets rounded to whole grams for display.
func (t MacroTargets) Rounded() (protein, carbs, fat int) {
	return int(math.Round(t.ProteinGrams)), int(math.Round(t.CarbsGrams)), int(math.Round(t.FatGrams))
}

// MacroGoals converts percentage-of-calories targets into grams.
// Percentages are not required to sum to 100 and negative inputs are not
// rejected here; callers validate upstream.
func MacroGoals(dailyCalories, proteinPct, carbsPct, fatPct int) MacroTargets {
	cal := float64(dailyCalories)
	return MacroTargets{
		ProteinGrams: cal * float64(proteinPct) / 100 / KcalPerGramProtein,
		CarbsGrams:   cal * float64(carbsPct) / 100 / KcalPerGramCarbs,
		FatGrams:     cal * float64(fatPct) / 100 / KcalPerGramFat,
	}
}

// Adherence is the share of meals marked completed, as a whole percentage.
// With no meals planned it is 100: nothing was planned, so nothing was skipped.
func Adherence(meals []domain.Meal) int {
	if len(meals) == 0 {
		return 100
	}
	completed := 0
	for i := range meals {
		if meals[i].Completed {
			completed++
		}
	}
	return int(math.Round(100 * float64(completed) / float64(len(meals))))
}

// NutritionGoals is the daily target used for goal percentages.
type NutritionGoals struct {
	DailyCalories int
	ProteinPct    int
	CarbsPct      int
	FatPct        int
}

// NutritionTotals is a macro sum compared against goals.
type NutritionTotals struct {
	Totals            Macros        `json:"totals"`
	Display           RoundedMacros `json:"display"`
	Targets           MacroTargets  `json:"targets"`
	CaloriesGoal      int           `json:"caloriesGoal"`
	CaloriesRemaining float64       `json:"caloriesRemaining"`
	CaloriesPct       int           `json:"caloriesPct"`
	ProteinPct        int           `json:"proteinPct"`
	CarbsPct          int           `json:"carbsPct"`
	FatPct            int           `json:"fatPct"`
	Adherence         int           `json:"adherence"`
	MealCount         int           `json:"mealCount"`
}

// Nutrition sums meals and compares the totals with goals.
func Nutrition(meals []domain.Meal, goals NutritionGoals) NutritionTotals {
	totals := SumMacros(meals)
	targets := MacroGoals(goals.DailyCalories, goals.ProteinPct, goals.CarbsPct, goals.FatPct)
	return NutritionTotals{
		Totals:            totals,
		Display:           totals.Rounded(),
		Targets:           targets,
		CaloriesGoal:      goals.DailyCalories,
		CaloriesRemaining: float64(goals.DailyCalories) - totals.Calories,
		CaloriesPct:       PercentOfGoal(totals.Calories, float64(goals.DailyCalories)),
		ProteinPct:        PercentOfGoal(totals.Protein, targets.ProteinGrams),
		CarbsPct:          PercentOfGoal(totals.Carbs, targets.CarbsGrams),
		FatPct:            PercentOfGoal(totals.Fat, targets.FatGrams),
		Adherence:         Adherence(meals),
		MealCount:         len(meals),
	}
}

// MealsOn returns the meals dated on day's calendar day, in input order.
func MealsOn(meals []domain.Meal, day time.Time) []domain.Meal {
	var out []domain.Meal
	for i := range meals {
		if SameDay(meals[i].Date, day) {
			out = append(out, meals[i])
		}
	}
	return out
}

// CompletedMeals filters meals the user reported eating.
func CompletedMeals(meals []domain.Meal) []domain.Meal {
	var out []domain.Meal
	for i := range meals {
		if meals[i].Completed {
			out = append(out, meals[i])
		}
	}
	return out
}

// DailyMacros is one day's total in a multi-day breakdown.
type DailyMacros struct {
	Date    string        `json:"date"`
	Totals  Macros        `json:"totals"`
	Display RoundedMacros `json:"display"`
}

// DailyBreakdown sums meals per calendar day for every day in [start, end].
// Days without meals are present with zero totals.
func DailyBreakdown(meals []domain.Meal, start, end time.Time) []DailyMacros {
	byDay := make(map[int64]Macros)
	for i := range meals {
		if !InRange(meals[i].Date, start, end) {
			continue
		}
		k := dayNumber(meals[i].Date)
		byDay[k] = byDay[k].Add(mealMacros(&meals[i]))
	}
	var out []DailyMacros
	for d := Day(start); !d.After(Day(end)); d = d.AddDate(0, 0, 1) {
		m := byDay[dayNumber(d)]
		out = append(out, DailyMacros{Date: d.Format(DateFormat), Totals: m, Display: m.Rounded()})
	}
	return out
}
