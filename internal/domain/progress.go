package domain

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Well-known measurement keys. Any other key is carried through untouched.
const (
	MeasureChest      = "chest"
	MeasureWaist      = "waist"
	MeasureHips       = "hips"
	MeasureSleepHours = "sleepHours"
	MeasureSteps      = "steps"
	MeasureWaterML    = "waterIntake"
)

// Direct fields addressable as metrics alongside measurement keys.
const (
	MetricWeight  = "weight"
	MetricBodyFat = "bodyFat"
)

// Measurements is the per-entry metric bag (key -> numeric value).
// The typed accessors cover the keys the app reasons about; unknown keys pass through.
type Measurements map[string]float64

func (m Measurements) get(key string) (float64, bool) {
	if m == nil {
		return 0, false
	}
	v, ok := m[key]
	return v, ok
}

// SleepHours returns hours slept, if logged.
func (m Measurements) SleepHours() (float64, bool) { return m.get(MeasureSleepHours) }

// Steps returns the step count, if logged.
func (m Measurements) Steps() (int, bool) {
	v, ok := m.get(MeasureSteps)
	return int(v), ok
}

// WaterML returns the water volume in millilitres, if logged.
func (m Measurements) WaterML() (float64, bool) { return m.get(MeasureWaterML) }

// ProgressEntry is a user's biometric log for one calendar day.
type ProgressEntry struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID       primitive.ObjectID `bson:"userId" json:"userId"`
	Date         time.Time          `bson:"date" json:"date"` // Midnight UTC of the calendar day
	Weight       *float64           `bson:"weight,omitempty" json:"weight,omitempty"`
	BodyFat      *float64           `bson:"bodyFat,omitempty" json:"bodyFat,omitempty"` // percentage
	Measurements Measurements       `bson:"measurements,omitempty" json:"measurements,omitempty"`
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// Value resolves a metric by name: the direct fields first, then the measurement map.
func (e *ProgressEntry) Value(metric string) (float64, bool) {
	switch metric {
	case MetricWeight:
		if e.Weight == nil {
			return 0, false
		}
		return *e.Weight, true
	case MetricBodyFat:
		if e.BodyFat == nil {
			return 0, false
		}
		return *e.BodyFat, true
	}
	return e.Measurements.get(metric)
}
