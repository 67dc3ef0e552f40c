package v1

import (
	"strconv"
	"time"

	"bodygoals/internal/domain"
	"bodygoals/internal/store"

	"github.com/google/uuid"
)

type metricTargetRequest struct {
	Start  *float64 `json:"start"`
	Target *float64 `json:"target"`
}

type goalRequest struct {
	Type                 string               `json:"type"`
	Weight               *metricTargetRequest `json:"weight"`
	BodyFat              *metricTargetRequest `json:"body_fat"`
	MuscleMass           *metricTargetRequest `json:"muscle_mass"`
	WeeklyWeightRate     *float64             `json:"weekly_weight_rate"`
	WeeklyBodyFatRate    *float64             `json:"weekly_body_fat_rate"`
	WeeklyMuscleMassRate *float64             `json:"weekly_muscle_mass_rate"`
	StartDate            time.Time            `json:"start_date"`
	EndDate              time.Time            `json:"end_date"`
	DailyCalorieTarget   *int                 `json:"daily_calorie_target"`
}

type entryRequest struct {
	Weight         float64   `json:"weight"`
	BodyFatPercent *float64  `json:"body_fat_percent"`
	MuscleMass     *float64  `json:"muscle_mass"`
	MeasuredAt     time.Time `json:"measured_at"`
}

func (req goalRequest) toGoalInput(userID uuid.UUID) (store.GoalInput, map[string]string) {
	fields := map[string]string{}
	if !domain.ValidGoalType(domain.GoalType(req.Type)) {
		fields["type"] = "one of lose, gain, maintain"
	}
	weight := resolveTarget(req.Weight, "weight", fields)
	bodyFat := resolveTarget(req.BodyFat, "body_fat", fields)
	muscleMass := resolveTarget(req.MuscleMass, "muscle_mass", fields)
	checkRate(req.WeeklyWeightRate, "weekly_weight_rate", fields)
	checkRate(req.WeeklyBodyFatRate, "weekly_body_fat_rate", fields)
	checkRate(req.WeeklyMuscleMassRate, "weekly_muscle_mass_rate", fields)
	if len(fields) > 0 {
		return store.GoalInput{}, fields
	}
	return store.GoalInput{
		UserID:               userID,
		Type:                 domain.GoalType(req.Type),
		Weight:               weight,
		BodyFat:              bodyFat,
		MuscleMass:           muscleMass,
		WeeklyWeightRate:     req.WeeklyWeightRate,
		WeeklyBodyFatRate:    req.WeeklyBodyFatRate,
		WeeklyMuscleMassRate: req.WeeklyMuscleMassRate,
		StartDate:            req.StartDate,
		EndDate:              req.EndDate,
		DailyCalorieTarget:   req.DailyCalorieTarget,
	}, nil
}

func (req goalRequest) toGoalUpdateInput(goalID int64) (store.GoalUpdateInput, map[string]string) {
	input, fields := req.toGoalInput(uuid.Nil)
	if len(fields) > 0 {
		return store.GoalUpdateInput{}, fields
	}
	return store.GoalUpdateInput{
		ID:                   goalID,
		Type:                 input.Type,
		Weight:               input.Weight,
		BodyFat:              input.BodyFat,
		MuscleMass:           input.MuscleMass,
		WeeklyWeightRate:     input.WeeklyWeightRate,
		WeeklyBodyFatRate:    input.WeeklyBodyFatRate,
		WeeklyMuscleMassRate: input.WeeklyMuscleMassRate,
		StartDate:            input.StartDate,
		EndDate:              input.EndDate,
		DailyCalorieTarget:   input.DailyCalorieTarget,
	}, nil
}

// resolveTarget turns a request pair into a domain pair. Half-set pairs are
// a validation error, not a disabled metric.
func resolveTarget(req *metricTargetRequest, field string, fields map[string]string) *domain.MetricTarget {
	if req == nil {
		return nil
	}
	if req.Start == nil || req.Target == nil {
		fields[field] = "both start and target required"
		return nil
	}
	return &domain.MetricTarget{Start: *req.Start, Target: *req.Target}
}

func checkRate(rate *float64, field string, fields map[string]string) {
	if rate != nil && *rate <= 0 {
		fields[field] = "must be positive"
	}
}

func parseUserID(value string) (uuid.UUID, error) {
	return uuid.Parse(value)
}

func parseID(value string) (int64, error) {
	return strconv.ParseInt(value, 10, 64)
}

func parseOptionalTime(value string) (*time.Time, error) {
	if value == "" {
		return nil, nil
	}
	parsed, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return nil, err
	}
	return &parsed, nil
}
