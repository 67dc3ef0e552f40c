package progress

import (
	"time"
)

const (
	// DefaultTrendWindowDays is the measurement window used to estimate the
	// current rate of change.
	DefaultTrendWindowDays = 14
	// MinTrendPoints is the hard gate below which no rate is produced. The
	// projection engine reuses it to decide whether to project at all.
	MinTrendPoints = 5
)

// TrendPoint is a single (timestamp, value) sample for one metric.
type TrendPoint struct {
	At    time.Time
	Value float64
}

// TrendRate estimates the recent rate of change in units per day from
// samples sorted ascending by time. It keeps only samples within windowDays
// of the latest sample, collapses same-day duplicates to the most recent one,
// and requires MinTrendPoints samples to remain. The rate is the two-point
// difference between the last and first surviving sample divided by the
// elapsed days between them.
//
// The second return value is false when there is not enough data.
func TrendRate(points []TrendPoint, windowDays int) (float64, bool) {
	if windowDays <= 0 {
		windowDays = DefaultTrendWindowDays
	}
	if len(points) == 0 {
		return 0, false
	}

	latest := points[len(points)-1].At
	cutoff := latest.AddDate(0, 0, -windowDays)

	windowed := make([]TrendPoint, 0, len(points))
	for _, point := range points {
		if point.At.Before(cutoff) {
			continue
		}
		windowed = append(windowed, point)
	}

	daily := collapseToDaily(windowed)
	if len(daily) < MinTrendPoints {
		return 0, false
	}

	first := daily[0]
	last := daily[len(daily)-1]
	elapsedDays := last.At.Sub(first.At).Hours() / 24
	if elapsedDays <= 0 {
		return 0, false
	}
	return (last.Value - first.Value) / elapsedDays, true
}

// collapseToDaily keeps the most recent sample per calendar day, preserving
// ascending order. Input must already be sorted ascending.
func collapseToDaily(points []TrendPoint) []TrendPoint {
	daily := make([]TrendPoint, 0, len(points))
	for _, point := range points {
		day := point.At.Truncate(24 * time.Hour)
		if len(daily) > 0 && daily[len(daily)-1].At.Truncate(24*time.Hour).Equal(day) {
			daily[len(daily)-1] = point
			continue
		}
		daily = append(daily, point)
	}
	return daily
}
