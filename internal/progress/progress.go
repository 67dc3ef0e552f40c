package progress

import (
	"bodygoals/internal/domain"
)

// Result is the normalized progress of a single metric.
type Result struct {
	// Percentage is 0-based and uncapped above 100. Movement in the wrong
	// direction reports as 0, never negative.
	Percentage float64
	// Remaining is target - current, signed in the metric's own unit.
	Remaining float64
	Direction domain.GoalType
}

// MetricProgress converts a goal's start/target pair and the latest measured
// value into a bounded percentage and the signed remaining delta.
func MetricProgress(start, current, target float64, direction domain.GoalType) Result {
	result := Result{
		Remaining: target - current,
		Direction: direction,
	}
	if target == start {
		// no numeric room to progress, avoid dividing by zero
		if current == target {
			result.Percentage = 100
		}
		return result
	}
	percentage := ((current - start) / (target - start)) * 100
	if percentage < 0 {
		percentage = 0
	}
	result.Percentage = percentage
	return result
}
