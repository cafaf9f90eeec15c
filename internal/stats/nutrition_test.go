package stats

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"alcyxob/fittrack/internal/domain"
)

func meal(day string, cal, p, c, f float64, completed bool) domain.Meal {
	return domain.Meal{MealType: domain.MealTypeLunch, Date: date(day), Calories: cal, Protein: p, Carbs: c, Fat: f, Completed: completed}
}

func TestSumMacros(t *testing.T) {
	meals := []domain.Meal{
		meal("2024-03-12", 380, 20.4, 45.2, 12.3, true),
		meal("2024-03-12", 520, 35.3, 50.4, 18.4, false),
	}
	got := SumMacros(meals)
	assert.Equal(t, 900.0, got.Calories)
	assert.InDelta(t, 55.7, got.Protein, 1e-9)
	assert.InDelta(t, 95.6, got.Carbs, 1e-9)
	assert.InDelta(t, 30.7, got.Fat, 1e-9)
	assert.Equal(t, 41, PercentOfGoal(got.Calories, 2200))

	assert.Equal(t, Macros{}, SumMacros(nil))
}

func TestSumMacros_OrderIndependent(t *testing.T) {
	meals := []domain.Meal{
		meal("2024-03-12", 380, 20, 45, 12, true),
		meal("2024-03-12", 520, 35, 50, 18, true),
		meal("2024-03-13", 150, 5, 20, 4, false),
		meal("2024-03-13", 610, 40, 70, 22, true),
	}
	want := SumMacros(meals)
	shuffled := append([]domain.Meal(nil), meals...)
	r := rand.New(rand.NewSource(42))
	for i := 0; i < 5; i++ {
		r.Shuffle(len(shuffled), func(a, b int) { shuffled[a], shuffled[b] = shuffled[b], shuffled[a] })
		assert.Equal(t, want, SumMacros(shuffled))
	}
}

func TestSumMacros_RoundsOnlyForDisplay(t *testing.T) {
	// Three meals at 0.4 g each would round to 0 g apiece but sum to 1.2 g.
	meals := []domain.Meal{
		meal("2024-03-12", 100.4, 0.4, 0, 0, true),
		meal("2024-03-12", 100.4, 0.4, 0, 0, true),
		meal("2024-03-12", 100.4, 0.4, 0, 0, true),
	}
	got := SumMacros(meals)
	assert.InDelta(t, 1.2, got.Protein, 1e-9)
	assert.Equal(t, RoundedMacros{Calories: 301, Protein: 1}, got.Rounded())
}

func TestMacroGoals(t *testing.T) {
	got := MacroGoals(2200, 33, 40, 27)
	assert.InDelta(t, 181.5, got.ProteinGrams, 1e-9)
	assert.InDelta(t, 220.0, got.CarbsGrams, 1e-9)
	assert.InDelta(t, 66.0, got.FatGrams, 1e-9)

	p, c, f := got.Rounded()
	assert.Equal(t, 182, p)
	assert.Equal(t, 220, c)
	assert.Equal(t, 66, f)
}

func TestMacroGoals_RoundTrip(t *testing.T) {
	got := MacroGoals(2000, 30, 40, 30)
	kcal := got.ProteinGrams*KcalPerGramProtein + got.CarbsGrams*KcalPerGramCarbs + got.FatGrams*KcalPerGramFat
	assert.InDelta(t, 2000, kcal, 1e-6)

	p, c, f := got.Rounded()
	assert.InDelta(t, 2000, float64(p*4+c*4+f*9), 10)
}

func TestMacroGoals_AcceptsInconsistentPercentages(t *testing.T) {
	got := MacroGoals(2000, 50, 50, 50)
	assert.InDelta(t, 250.0, got.ProteinGrams, 1e-9)
	assert.InDelta(t, 250.0, got.CarbsGrams, 1e-9)
	assert.InDelta(t, 111.111, got.FatGrams, 1e-3)
}

func TestAdherence(t *testing.T) {
	assert.Equal(t, 100, Adherence(nil))
	assert.Equal(t, 100, Adherence([]domain.Meal{}))
	assert.Equal(t, 0, Adherence([]domain.Meal{meal("2024-03-12", 1, 0, 0, 0, false)}))
	assert.Equal(t, 67, Adherence([]domain.Meal{
		meal("2024-03-12", 1, 0, 0, 0, true),
		meal("2024-03-12", 1, 0, 0, 0, true),
		meal("2024-03-12", 1, 0, 0, 0, false),
	}))
}

func TestNutrition(t *testing.T) {
	meals := []domain.Meal{
		meal("2024-03-12", 380, 30, 40, 10, true),
		meal("2024-03-12", 520, 40, 60, 20, false),
	}
	got := Nutrition(meals, NutritionGoals{DailyCalories: 2200, ProteinPct: 33, CarbsPct: 40, FatPct: 27})
	assert.Equal(t, 900.0, got.Totals.Calories)
	assert.Equal(t, 2200, got.CaloriesGoal)
	assert.Equal(t, 1300.0, got.CaloriesRemaining)
	assert.Equal(t, 41, got.CaloriesPct)
	assert.Equal(t, 39, got.ProteinPct) // 70 / 181.5
	assert.Equal(t, 45, got.CarbsPct)   // 100 / 220
	assert.Equal(t, 45, got.FatPct)     // 30 / 66
	assert.Equal(t, 50, got.Adherence)
	assert.Equal(t, 2, got.MealCount)

	empty := Nutrition(nil, NutritionGoals{})
	assert.Equal(t, Macros{}, empty.Totals)
	assert.Equal(t, 0, empty.CaloriesPct)
	assert.Equal(t, 100, empty.Adherence)
}

func TestMealsOnAndDailyBreakdown(t *testing.T) {
	meals := []domain.Meal{
		meal("2024-03-10", 500, 0, 0, 0, true),
		meal("2024-03-12", 300.4, 0, 0, 0, true),
		meal("2024-03-12", 300.4, 0, 0, 0, false),
		meal("2024-03-14", 900, 0, 0, 0, true),
	}
	assert.Len(t, MealsOn(meals, date("2024-03-12")), 2)
	assert.Empty(t, MealsOn(meals, date("2024-03-11")))

	days := DailyBreakdown(meals, date("2024-03-10"), date("2024-03-12"))
	require.Len(t, days, 3)
	assert.Equal(t, "2024-03-10", days[0].Date)
	assert.Equal(t, 500.0, days[0].Totals.Calories)
	assert.Equal(t, 0.0, days[1].Totals.Calories)
	assert.InDelta(t, 600.8, days[2].Totals.Calories, 1e-9)
	assert.Equal(t, 601, days[2].Display.Calories)
}
