package store

import (
	"time"

	"bodygoals/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Store struct {
	DB *pgxpool.Pool
}

func New(db *pgxpool.Pool) *Store {
	return &Store{DB: db}
}

type GoalInput struct {
	UserID               uuid.UUID
	Type                 domain.GoalType
	Weight               *domain.MetricTarget
	BodyFat              *domain.MetricTarget
	MuscleMass           *domain.MetricTarget
	WeeklyWeightRate     *float64
	WeeklyBodyFatRate    *float64
	WeeklyMuscleMassRate *float64
	StartDate            time.Time
	EndDate              time.Time
	DailyCalorieTarget   *int
}

type GoalUpdateInput struct {
	ID                   int64
	Type                 domain.GoalType
	Weight               *domain.MetricTarget
	BodyFat              *domain.MetricTarget
	MuscleMass           *domain.MetricTarget
	WeeklyWeightRate     *float64
	WeeklyBodyFatRate    *float64
	WeeklyMuscleMassRate *float64
	StartDate            time.Time
	EndDate              time.Time
	DailyCalorieTarget   *int
}

type EntryInput struct {
	UserID         uuid.UUID
	Weight         float64
	BodyFatPercent *float64
	MuscleMass     *float64
	MeasuredAt     time.Time
}

// splitTarget flattens an optional start/target pair into two nullable
// columns.
func splitTarget(target *domain.MetricTarget) (*float64, *float64) {
	if target == nil {
		return nil, nil
	}
	start := target.Start
	end := target.Target
	return &start, &end
}

// joinTarget rebuilds the pair; a metric is enabled only when both columns
// are set, a half-set pair reads as disabled.
func joinTarget(start, target *float64) *domain.MetricTarget {
	if start == nil || target == nil {
		return nil
	}
	return &domain.MetricTarget{Start: *start, Target: *target}
}
