package progress

import (
	"errors"
	"testing"
	"time"

	"bodygoals/internal/domain"

	"github.com/google/uuid"
)

var aggregateBase = time.Date(2025, 3, 1, 8, 0, 0, 0, time.UTC)

func lossGoal(userID uuid.UUID) domain.Goal {
	weekly := 1.5
	return domain.Goal{
		ID:               1,
		UserID:           userID,
		Type:             domain.GoalTypeLose,
		Weight:           &domain.MetricTarget{Start: 70, Target: 65},
		WeeklyWeightRate: &weekly,
		StartDate:        aggregateBase,
		EndDate:          aggregateBase.AddDate(0, 3, 0),
		IsActive:         true,
	}
}

func weightEntries(userID uuid.UUID, weights ...float64) []domain.BodyCompositionEntry {
	entries := make([]domain.BodyCompositionEntry, 0, len(weights))
	for i, weight := range weights {
		entries = append(entries, domain.BodyCompositionEntry{
			ID:         int64(i + 1),
			UserID:     userID,
			Weight:     weight,
			MeasuredAt: aggregateBase.AddDate(0, 0, i),
		})
	}
	return entries
}

func TestAggregateRequiresActiveGoal(t *testing.T) {
	if _, err := Aggregate(AggregateParams{Goal: nil}); !errors.Is(err, domain.ErrNoActiveGoal) {
		t.Fatalf("expected ErrNoActiveGoal got %v", err)
	}
	inactive := lossGoal(uuid.New())
	inactive.IsActive = false
	if _, err := Aggregate(AggregateParams{Goal: &inactive}); !errors.Is(err, domain.ErrNoActiveGoal) {
		t.Fatalf("expected ErrNoActiveGoal for inactive goal got %v", err)
	}
}

func TestAggregateRejectsGoalWithoutMetrics(t *testing.T) {
	goal := domain.Goal{ID: 2, UserID: uuid.New(), Type: domain.GoalTypeLose, IsActive: true}
	if _, err := Aggregate(AggregateParams{Goal: &goal}); !errors.Is(err, domain.ErrNoEnabledMetrics) {
		t.Fatalf("expected ErrNoEnabledMetrics got %v", err)
	}
}

func TestAggregateSingleMetricOverall(t *testing.T) {
	userID := uuid.New()
	goal := lossGoal(userID)
	entries := weightEntries(userID, 70, 69, 68.5)

	data, err := Aggregate(AggregateParams{Goal: &goal, Entries: entries, Now: entries[len(entries)-1].MeasuredAt})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if len(data.Metrics) != 1 || data.Metrics[0].Metric != domain.MetricWeight {
		t.Fatalf("expected only the weight metric, got %v", data.Metrics)
	}
	// overall is the mean of one value
	if data.OverallPercentage != data.Metrics[0].Progress.Percentage {
		t.Fatalf("expected overall %v got %v", data.Metrics[0].Progress.Percentage, data.OverallPercentage)
	}
	if data.Metrics[0].Projection.Status != ProjectionInsufficientData {
		t.Fatalf("expected insufficient trend data with 3 entries, got %s", data.Metrics[0].Projection.Status)
	}
	if data.DataPoints != 3 {
		t.Fatalf("expected 3 data points got %d", data.DataPoints)
	}
	if data.LatestEntry == nil || data.LatestEntry.ID != 3 {
		t.Fatalf("expected latest entry carried over")
	}
	if len(data.NewlyAchieved) != 0 {
		t.Fatalf("first computation must not celebrate, got %v", data.NewlyAchieved)
	}
}

// Goal 70kg -> 65kg with 15 daily entries dropping linearly to 67kg:
// 60% progress, rate 3/14 kg/day down, 2kg remaining, 10 days to completion,
// on track against a 1.5kg/week pace target.
func TestAggregateWeightLossScenario(t *testing.T) {
	userID := uuid.New()
	goal := lossGoal(userID)

	weights := make([]float64, 0, 15)
	for day := 0; day <= 14; day++ {
		weights = append(weights, 70-3*float64(day)/14)
	}
	entries := weightEntries(userID, weights...)
	now := entries[len(entries)-1].MeasuredAt
	previous := 20.0

	data, err := Aggregate(AggregateParams{Goal: &goal, Entries: entries, PreviousOverall: &previous, Now: now})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}

	if data.OverallPercentage != 60 {
		t.Fatalf("expected overall 60 got %v", data.OverallPercentage)
	}
	weight := data.Metrics[0]
	if weight.Progress.Remaining != -2 {
		t.Fatalf("expected remaining -2 got %v", weight.Progress.Remaining)
	}
	if weight.Projection.Status != ProjectionProjected {
		t.Fatalf("expected projected got %s", weight.Projection.Status)
	}
	if weight.Projection.DaysToCompletion == nil || *weight.Projection.DaysToCompletion != 10 {
		t.Fatalf("expected 10 days got %v", weight.Projection.DaysToCompletion)
	}
	expectedDate := now.AddDate(0, 0, 10)
	if weight.Projection.CompletionDate == nil || !weight.Projection.CompletionDate.Equal(expectedDate) {
		t.Fatalf("expected completion %v got %v", expectedDate, weight.Projection.CompletionDate)
	}
	if weight.Projection.OnTrack == nil || !*weight.Projection.OnTrack {
		t.Fatalf("expected on track at 1.5kg/week pace")
	}
	if !milestonesEqual(data.Achieved, []Milestone{25, 50}) {
		t.Fatalf("expected milestones {25,50} got %v", data.Achieved)
	}
	if !milestonesEqual(data.NewlyAchieved, []Milestone{25, 50}) {
		t.Fatalf("expected newly achieved {25,50} got %v", data.NewlyAchieved)
	}
	if data.DataPoints != 15 {
		t.Fatalf("expected 15 data points got %d", data.DataPoints)
	}
}

func TestAggregateMetricWithoutMeasurements(t *testing.T) {
	userID := uuid.New()
	goal := lossGoal(userID)
	goal.BodyFat = &domain.MetricTarget{Start: 25, Target: 20}

	entries := weightEntries(userID, 70, 69, 68, 67.5, 67.5)
	data, err := Aggregate(AggregateParams{Goal: &goal, Entries: entries, Now: entries[len(entries)-1].MeasuredAt})
	if err != nil {
		t.Fatalf("aggregate: %v", err)
	}
	if len(data.Metrics) != 2 {
		t.Fatalf("expected 2 enabled metrics got %d", len(data.Metrics))
	}
	var bodyFat MetricProgressData
	for _, metric := range data.Metrics {
		if metric.Metric == domain.MetricBodyFat {
			bodyFat = metric
		}
	}
	// enabled but never measured: sits at its start value
	if bodyFat.Progress.Percentage != 0 {
		t.Fatalf("expected 0%% for unmeasured metric got %v", bodyFat.Progress.Percentage)
	}
	if bodyFat.Projection.Status != ProjectionInsufficientData {
		t.Fatalf("expected insufficient data for unmeasured metric got %s", bodyFat.Projection.Status)
	}
	expectedOverall := data.Metrics[0].Progress.Percentage / 2
	if data.OverallPercentage != expectedOverall {
		t.Fatalf("expected overall %v got %v", expectedOverall, data.OverallPercentage)
	}
}
