package progress

import (
	"testing"
	"time"
)

var trendBase = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func dailyPoints(values ...float64) []TrendPoint {
	points := make([]TrendPoint, 0, len(values))
	for i, value := range values {
		points = append(points, TrendPoint{At: trendBase.AddDate(0, 0, i), Value: value})
	}
	return points
}

func TestTrendRateInsufficientData(t *testing.T) {
	if _, ok := TrendRate(nil, DefaultTrendWindowDays); ok {
		t.Fatalf("expected no rate for empty series")
	}
	if _, ok := TrendRate(dailyPoints(70, 69.8, 69.6, 69.4), DefaultTrendWindowDays); ok {
		t.Fatalf("expected no rate below %d points", MinTrendPoints)
	}
}

func TestTrendRateLinear(t *testing.T) {
	rate, ok := TrendRate(dailyPoints(70, 69, 68, 67, 66), DefaultTrendWindowDays)
	if !ok {
		t.Fatalf("expected a rate for 5 points")
	}
	if rate != -1 {
		t.Fatalf("expected -1/day got %v", rate)
	}
}

func TestTrendRateWindowFilter(t *testing.T) {
	// a stale sample outside the window must not skew the rate
	stale := TrendPoint{At: trendBase.AddDate(0, 0, -30), Value: 100}
	points := append([]TrendPoint{stale}, dailyPoints(70, 69, 68, 67, 66)...)
	rate, ok := TrendRate(points, DefaultTrendWindowDays)
	if !ok {
		t.Fatalf("expected a rate")
	}
	if rate != -1 {
		t.Fatalf("expected -1/day got %v", rate)
	}
}

func TestTrendRateSameDayDuplicates(t *testing.T) {
	points := dailyPoints(70, 69, 68, 67, 66)
	// an earlier same-day reading on the last day gets superseded
	lastDay := points[len(points)-1].At
	points = append(points[:len(points)-1],
		TrendPoint{At: lastDay.Add(-2 * time.Hour), Value: 90},
		TrendPoint{At: lastDay, Value: 66},
	)
	rate, ok := TrendRate(points, DefaultTrendWindowDays)
	if !ok {
		t.Fatalf("expected a rate")
	}
	if rate != -1 {
		t.Fatalf("expected -1/day got %v", rate)
	}
}

func TestTrendRateSingleDayOnly(t *testing.T) {
	points := make([]TrendPoint, 0, 5)
	for i := 0; i < 5; i++ {
		points = append(points, TrendPoint{At: trendBase.Add(time.Duration(i) * time.Hour), Value: 70 - float64(i)})
	}
	if _, ok := TrendRate(points, DefaultTrendWindowDays); ok {
		t.Fatalf("expected no rate when all samples share a day")
	}
}
