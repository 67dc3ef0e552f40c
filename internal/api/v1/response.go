package v1

import (
	"time"

	"bodygoals/internal/domain"
	"bodygoals/internal/progress"

	"github.com/google/uuid"
)

type metricTargetDetails struct {
	Start  float64 `json:"start"`
	Target float64 `json:"target"`
}

type goalDetails struct {
	ID                   int64                `json:"id"`
	UserID               uuid.UUID            `json:"user_id"`
	Type                 string               `json:"type"`
	Weight               *metricTargetDetails `json:"weight,omitempty"`
	BodyFat              *metricTargetDetails `json:"body_fat,omitempty"`
	MuscleMass           *metricTargetDetails `json:"muscle_mass,omitempty"`
	WeeklyWeightRate     *float64             `json:"weekly_weight_rate,omitempty"`
	WeeklyBodyFatRate    *float64             `json:"weekly_body_fat_rate,omitempty"`
	WeeklyMuscleMassRate *float64             `json:"weekly_muscle_mass_rate,omitempty"`
	StartDate            time.Time            `json:"start_date"`
	EndDate              time.Time            `json:"end_date"`
	DailyCalorieTarget   *int                 `json:"daily_calorie_target,omitempty"`
	IsActive             bool                 `json:"is_active"`
	CreatedAt            time.Time            `json:"created_at"`
	UpdatedAt            time.Time            `json:"updated_at"`
}

type entryDetails struct {
	ID             int64     `json:"id"`
	UserID         uuid.UUID `json:"user_id"`
	Weight         float64   `json:"weight"`
	BodyFatPercent *float64  `json:"body_fat_percent,omitempty"`
	MuscleMass     *float64  `json:"muscle_mass,omitempty"`
	MeasuredAt     time.Time `json:"measured_at"`
	CreatedAt      time.Time `json:"created_at"`
}

type entriesResponse struct {
	Items []entryDetails `json:"items"`
}

type goalsResponse struct {
	Items []goalDetails `json:"items"`
}

type projectionDetails struct {
	Status                  string     `json:"status"`
	EstimatedCompletionDate *time.Time `json:"estimated_completion_date,omitempty"`
	DaysToCompletion        *int       `json:"days_to_completion,omitempty"`
	OnTrack                 *bool      `json:"on_track,omitempty"`
}

type metricProgressDetails struct {
	Metric     string            `json:"metric"`
	Percentage float64           `json:"percentage"`
	Remaining  float64           `json:"remaining"`
	Direction  string            `json:"direction"`
	Projection projectionDetails `json:"projection"`
}

type progressResponse struct {
	Goal                    goalDetails             `json:"goal"`
	LatestEntry             *entryDetails           `json:"latest_entry,omitempty"`
	OverallPercentage       float64                 `json:"overall_percentage"`
	Metrics                 []metricProgressDetails `json:"metrics"`
	AchievedMilestones      []int                   `json:"achieved_milestones"`
	NewlyAchievedMilestones []int                   `json:"newly_achieved_milestones"`
	DataPoints              int                     `json:"data_points"`
}

func mapGoal(goal domain.Goal) goalDetails {
	return goalDetails{
		ID:                   goal.ID,
		UserID:               goal.UserID,
		Type:                 string(goal.Type),
		Weight:               mapTarget(goal.Weight),
		BodyFat:              mapTarget(goal.BodyFat),
		MuscleMass:           mapTarget(goal.MuscleMass),
		WeeklyWeightRate:     goal.WeeklyWeightRate,
		WeeklyBodyFatRate:    goal.WeeklyBodyFatRate,
		WeeklyMuscleMassRate: goal.WeeklyMuscleMassRate,
		StartDate:            goal.StartDate,
		EndDate:              goal.EndDate,
		DailyCalorieTarget:   goal.DailyCalorieTarget,
		IsActive:             goal.IsActive,
		CreatedAt:            goal.CreatedAt,
		UpdatedAt:            goal.UpdatedAt,
	}
}

func mapTarget(target *domain.MetricTarget) *metricTargetDetails {
	if target == nil {
		return nil
	}
	return &metricTargetDetails{Start: target.Start, Target: target.Target}
}

func mapEntry(entry domain.BodyCompositionEntry) entryDetails {
	return entryDetails{
		ID:             entry.ID,
		UserID:         entry.UserID,
		Weight:         entry.Weight,
		BodyFatPercent: entry.BodyFatPercent,
		MuscleMass:     entry.MuscleMass,
		MeasuredAt:     entry.MeasuredAt,
		CreatedAt:      entry.CreatedAt,
	}
}

func mapProgress(data progress.GoalProgressData) progressResponse {
	metrics := make([]metricProgressDetails, 0, len(data.Metrics))
	for _, metric := range data.Metrics {
		metrics = append(metrics, metricProgressDetails{
			Metric:     string(metric.Metric),
			Percentage: metric.Progress.Percentage,
			Remaining:  metric.Progress.Remaining,
			Direction:  string(metric.Progress.Direction),
			Projection: projectionDetails{
				Status:                  string(metric.Projection.Status),
				EstimatedCompletionDate: metric.Projection.CompletionDate,
				DaysToCompletion:        metric.Projection.DaysToCompletion,
				OnTrack:                 metric.Projection.OnTrack,
			},
		})
	}

	response := progressResponse{
		Goal:                    mapGoal(data.Goal),
		OverallPercentage:       data.OverallPercentage,
		Metrics:                 metrics,
		AchievedMilestones:      mapMilestones(data.Achieved),
		NewlyAchievedMilestones: mapMilestones(data.NewlyAchieved),
		DataPoints:              data.DataPoints,
	}
	if data.LatestEntry != nil {
		latest := mapEntry(*data.LatestEntry)
		response.LatestEntry = &latest
	}
	return response
}

func mapMilestones(milestones []progress.Milestone) []int {
	result := make([]int, 0, len(milestones))
	for _, milestone := range milestones {
		result = append(result, int(milestone))
	}
	return result
}
