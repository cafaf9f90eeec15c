package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMeasurements_TypedAccessors(t *testing.T) {
	m := Measurements{MeasureSleepHours: 7.5, MeasureSteps: 10432, MeasureWaterML: 1800, "bicep": 38}

	sleep, ok := m.SleepHours()
	assert.True(t, ok)
	assert.Equal(t, 7.5, sleep)

	steps, ok := m.Steps()
	assert.True(t, ok)
	assert.Equal(t, 10432, steps)

	water, ok := m.WaterML()
	assert.True(t, ok)
	assert.Equal(t, 1800.0, water)

	var empty Measurements
	_, ok = empty.Steps()
	assert.False(t, ok)
}

func TestProgressEntry_Value(t *testing.T) {
	weight := 80.5
	e := ProgressEntry{Weight: &weight, Measurements: Measurements{"bicep": 38}}

	v, ok := e.Value(MetricWeight)
	assert.True(t, ok)
	assert.Equal(t, 80.5, v)

	_, ok = e.Value(MetricBodyFat)
	assert.False(t, ok)

	// Unknown keys pass through the measurement bag.
	v, ok = e.Value("bicep")
	assert.True(t, ok)
	assert.Equal(t, 38.0, v)
}
