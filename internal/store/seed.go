package store

import (
	"context"
	"time"

	"bodygoals/internal/domain"

	"github.com/google/uuid"
)

// SeedDemo creates a demo user with an active weight-loss goal and two weeks
// of daily measurements, enough to produce a trend and a projection.
func (s *Store) SeedDemo(ctx context.Context, userID uuid.UUID) error {
	weeklyRate := 1.5
	calories := 1800
	now := time.Now().UTC().Truncate(time.Hour)
	start := now.AddDate(0, 0, -14)

	if _, err := s.CreateGoal(ctx, GoalInput{
		UserID:             userID,
		Type:               domain.GoalTypeLose,
		Weight:             &domain.MetricTarget{Start: 70, Target: 65},
		BodyFat:            &domain.MetricTarget{Start: 25, Target: 20},
		WeeklyWeightRate:   &weeklyRate,
		StartDate:          start,
		EndDate:            start.AddDate(0, 3, 0),
		DailyCalorieTarget: &calories,
	}); err != nil {
		return err
	}

	for day := 0; day <= 14; day++ {
		bodyFat := 25 - 2*float64(day)/14
		if _, err := s.CreateEntry(ctx, EntryInput{
			UserID:         userID,
			Weight:         70 - 3*float64(day)/14,
			BodyFatPercent: &bodyFat,
			MeasuredAt:     start.AddDate(0, 0, day),
		}); err != nil {
			return err
		}
	}
	return nil
}
