package progress

import (
	"math"
	"time"

	"bodygoals/internal/domain"
)

// MetricProgressData bundles one enabled metric's progress and projection.
type MetricProgressData struct {
	Metric     domain.Metric
	Progress   Result
	Projection Projection
}

// GoalProgressData is the composite result handed to the presentation layer.
type GoalProgressData struct {
	Goal              domain.Goal
	LatestEntry       *domain.BodyCompositionEntry
	OverallPercentage float64
	Metrics           []MetricProgressData
	Achieved          []Milestone
	NewlyAchieved     []Milestone
	// DataPoints is the total number of entries available, independent of
	// per-metric windowing; the UI shows it as "N/5 data points".
	DataPoints int
}

// AggregateParams are the inputs of one aggregation call. The engine is a
// pure function of these: it performs no I/O and keeps no state between
// calls, so concurrent invocations are safe.
type AggregateParams struct {
	Goal *domain.Goal
	// Entries must be sorted ascending by MeasuredAt.
	Entries []domain.BodyCompositionEntry
	// PreviousOverall is the overall percentage recorded by the caller
	// after the last aggregation, nil on the first run. The caller persists
	// the new value so milestone crossing stays meaningful across calls.
	PreviousOverall *float64
	// WindowDays overrides the trend window, 0 means the default.
	WindowDays int
	// Now anchors projections, zero means time.Now().
	Now time.Time
}

// Aggregate runs the calculator, trend analyzer and projection engine across
// every metric enabled on the goal and assembles the composite result.
func Aggregate(params AggregateParams) (GoalProgressData, error) {
	if params.Goal == nil || !params.Goal.IsActive {
		return GoalProgressData{}, domain.ErrNoActiveGoal
	}
	goal := *params.Goal

	enabled := goal.EnabledMetrics()
	if len(enabled) == 0 {
		return GoalProgressData{}, domain.ErrNoEnabledMetrics
	}

	now := params.Now
	if now.IsZero() {
		now = time.Now()
	}

	data := GoalProgressData{
		Goal:       goal,
		Metrics:    make([]MetricProgressData, 0, len(enabled)),
		DataPoints: len(params.Entries),
	}
	if len(params.Entries) > 0 {
		latest := params.Entries[len(params.Entries)-1]
		data.LatestEntry = &latest
	}

	var percentageSum float64
	for _, metric := range enabled {
		target := goal.MetricTarget(metric)
		series := metricSeries(params.Entries, metric)

		// a metric with no measurements yet sits at its start value
		current := target.Start
		if len(series) > 0 {
			current = series[len(series)-1].Value
		}

		result := MetricProgress(target.Start, current, target.Target, goal.Type)
		rate, hasTrend := TrendRate(series, params.WindowDays)
		projection := Project(ProjectionParams{
			Remaining:         result.Remaining,
			Rate:              rate,
			HasTrend:          hasTrend,
			RequiredDailyRate: requiredDailyRate(goal, metric, result.Remaining, now),
			Now:               now,
		})

		data.Metrics = append(data.Metrics, MetricProgressData{
			Metric:     metric,
			Progress:   result,
			Projection: projection,
		})
		percentageSum += result.Percentage
	}

	data.OverallPercentage = percentageSum / float64(len(enabled))
	data.Achieved = Achieved(data.OverallPercentage)
	data.NewlyAchieved = NewlyAchieved(data.OverallPercentage, params.PreviousOverall)
	return data, nil
}

// requiredDailyRate resolves the pace a metric's trend must hold to count as
// on track. An explicit weekly pace target wins; otherwise the rate needed to
// reach the target by the goal period's end applies; a goal with neither
// requires only forward progress.
func requiredDailyRate(goal domain.Goal, metric domain.Metric, remaining float64, now time.Time) float64 {
	if weekly := goal.WeeklyRate(metric); weekly != nil && *weekly > 0 {
		return *weekly / 7
	}
	if goal.EndDate.After(now) {
		daysLeft := goal.EndDate.Sub(now).Hours() / 24
		if daysLeft > 0 {
			return math.Abs(remaining) / daysLeft
		}
	}
	return 0
}

func metricSeries(entries []domain.BodyCompositionEntry, metric domain.Metric) []TrendPoint {
	series := make([]TrendPoint, 0, len(entries))
	for _, entry := range entries {
		value, ok := entry.MetricValue(metric)
		if !ok {
			continue
		}
		series = append(series, TrendPoint{At: entry.MeasuredAt, Value: value})
	}
	return series
}
