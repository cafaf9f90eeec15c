package stats

import (
	"cmp"
	"iter"
	"slices"
	"time"

	"alcyxob/fittrack/internal/domain"
)

// Direction is the numeric movement between the two most recent values of a metric.
// It carries no judgement: for body fat or waist, "down" is the good direction.
type Direction string

const (
	Up     Direction = "up"
	Down   Direction = "down"
	Stable Direction = "stable"
)

// BMI computes weight / height(m)^2. A non-positive height yields 0,
// the same guard PercentOfGoal applies to a non-positive goal.
func BMI(weightKg, heightCm float64) float64 {
	if heightCm <= 0 {
		return 0
	}
	m := heightCm / 100
	return weightKg / (m * m)
}

// SortByDateDesc returns a copy of entries, most recent first.
// Entries sharing a day are ordered by UpdatedAt, latest first; the input is not modified.
func SortByDateDesc(entries []domain.ProgressEntry) []domain.ProgressEntry {
	out := slices.Clone(entries)
	slices.SortStableFunc(out, func(a, b domain.ProgressEntry) int {
		if c := cmp.Compare(dayNumber(b.Date), dayNumber(a.Date)); c != 0 {
			return c
		}
		return b.UpdatedAt.Compare(a.UpdatedAt)
	})
	return out
}

// Latest returns the canonical most recent entry (max date, then max UpdatedAt).
func Latest(entries []domain.ProgressEntry) (domain.ProgressEntry, bool) {
	if len(entries) == 0 {
		return domain.ProgressEntry{}, false
	}
	return SortByDateDesc(entries)[0], true
}

// Trend compares metric on the first two entries of a list sorted by date descending.
// Fewer than two entries, or a missing value on either side, is Stable.
func Trend(sortedDesc []domain.ProgressEntry, metric string) Direction {
	if len(sortedDesc) < 2 {
		return Stable
	}
	cur, ok := sortedDesc[0].Value(metric)
	if !ok {
		return Stable
	}
	prev, ok := sortedDesc[1].Value(metric)
	if !ok {
		return Stable
	}
	switch {
	case cur > prev:
		return Up
	case cur < prev:
		return Down
	}
	return Stable
}

// Point is one dated value of a metric series.
type Point struct {
	Date  time.Time `json:"date"`
	Value float64   `json:"value"`
}

// Series yields (date, value) for every entry that has metric, oldest first.
// Entries sharing a day come in UpdatedAt order, so the last point always
// agrees with Latest. The sequence is recomputed from entries on each iteration.
func Series(entries []domain.ProgressEntry, metric string) iter.Seq[Point] {
	return func(yield func(Point) bool) {
		sorted := SortByDateDesc(entries)
		for i := len(sorted) - 1; i >= 0; i-- {
			v, ok := sorted[i].Value(metric)
			if !ok {
				continue
			}
			if !yield(Point{Date: sorted[i].Date, Value: v}) {
				return
			}
		}
	}
}

// MetricChange is the delta between the earliest and latest values of a metric.
type MetricChange struct {
	First  Point  `json:"first"`
	Last   Point  `json:"last"`
	Change Change `json:"change"`
}

// NetChange compares the earliest and latest recorded values of metric.
// ok is false when fewer than one value exists.
func NetChange(entries []domain.ProgressEntry, metric string) (MetricChange, bool) {
	points := slices.Collect(Series(entries, metric))
	if len(points) == 0 {
		return MetricChange{}, false
	}
	first, last := points[0], points[len(points)-1]
	return MetricChange{First: first, Last: last, Change: Delta(last.Value, first.Value)}, true
}

// MetricSnapshot is the latest value of a metric with its trend and the change
// since the previous entry that recorded it.
type MetricSnapshot struct {
	Metric    string    `json:"metric"`
	Value     float64   `json:"value"`
	Date      time.Time `json:"date"`
	Trend     Direction `json:"trend"`
	Change    *Change   `json:"change,omitempty"`
	GoalPct   *int      `json:"goalPct,omitempty"`
	Available bool      `json:"available"`
}

// Snapshot reports the latest value of metric, the Trend over the two most
// recent entries that recorded it, and the delta against the previous value.
// A positive goal adds the percent-of-goal for the latest value.
func Snapshot(entries []domain.ProgressEntry, metric string, goal float64) MetricSnapshot {
	recorded := slices.DeleteFunc(slices.Clone(entries), func(e domain.ProgressEntry) bool {
		_, ok := e.Value(metric)
		return !ok
	})
	snap := MetricSnapshot{Metric: metric, Trend: Trend(SortByDateDesc(recorded), metric)}
	points := slices.Collect(Series(entries, metric))
	if len(points) == 0 {
		return snap
	}
	last := points[len(points)-1]
	snap.Value, snap.Date, snap.Available = last.Value, last.Date, true
	if len(points) > 1 {
		c := Delta(last.Value, points[len(points)-2].Value)
		snap.Change = &c
	}
	if goal > 0 {
		pct := PercentOfGoal(last.Value, goal)
		snap.GoalPct = &pct
	}
	return snap
}

// DailyGoal is a per-day metric (steps, water, sleep) measured against its goal
// and compared with the previous calendar day.
type DailyGoal struct {
	Metric    string  `json:"metric"`
	Value     float64 `json:"value"`
	Previous  float64 `json:"previous"`
	Goal      float64 `json:"goal"`
	Percent   int     `json:"percent"`
	Change    Change  `json:"change"`
	Available bool    `json:"available"` // logged on day
}

// MeasurementReader extracts one typed measurement from an entry,
// e.g. domain.Measurements.WaterML.
type MeasurementReader func(domain.Measurements) (float64, bool)

// DayOverDay reads a per-day measurement on day and on the day before, labelled
// as metric. A day without a value counts as 0, which is what a missed step or
// water log means.
func DayOverDay(entries []domain.ProgressEntry, metric string, read MeasurementReader, day time.Time, goal float64) DailyGoal {
	out := DailyGoal{Metric: metric, Goal: goal}
	prevDay := Day(day).AddDate(0, 0, -1)
	var havePrev bool
	for _, e := range SortByDateDesc(entries) {
		v, ok := read(e.Measurements)
		if !ok {
			continue
		}
		switch {
		case SameDay(e.Date, day) && !out.Available:
			out.Value, out.Available = v, true
		case SameDay(e.Date, prevDay) && !havePrev:
			out.Previous, havePrev = v, true
		}
	}
	out.Percent = PercentOfGoal(out.Value, goal)
	out.Change = Delta(out.Value, out.Previous)
	return out
}
