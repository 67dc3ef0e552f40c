package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	// ErrNoActiveGoal is returned when a user has no active goal.
	ErrNoActiveGoal = errors.New("no active goal")
	// ErrNoEnabledMetrics is returned for goals without a single
	// start/target pair on any metric.
	ErrNoEnabledMetrics = errors.New("goal has no enabled metrics")
)

type GoalType string

const (
	GoalTypeLose     GoalType = "lose"
	GoalTypeGain     GoalType = "gain"
	GoalTypeMaintain GoalType = "maintain"
)

func ValidGoalType(t GoalType) bool {
	switch t {
	case GoalTypeLose, GoalTypeGain, GoalTypeMaintain:
		return true
	default:
		return false
	}
}

type Metric string

const (
	MetricWeight     Metric = "weight"
	MetricBodyFat    Metric = "body_fat"
	MetricMuscleMass Metric = "muscle_mass"
)

// AllMetrics is the fixed evaluation order of metrics on a goal.
var AllMetrics = []Metric{MetricWeight, MetricBodyFat, MetricMuscleMass}

// MetricTarget pairs the value recorded at goal creation with the value the
// user wants to reach. A metric is enabled on a goal iff its pair is set.
type MetricTarget struct {
	Start  float64
	Target float64
}

type Goal struct {
	ID                   int64
	UserID               uuid.UUID
	Type                 GoalType
	Weight               *MetricTarget
	BodyFat              *MetricTarget
	MuscleMass           *MetricTarget
	WeeklyWeightRate     *float64
	WeeklyBodyFatRate    *float64
	WeeklyMuscleMassRate *float64
	StartDate            time.Time
	EndDate              time.Time
	DailyCalorieTarget   *int
	IsActive             bool
	CreatedAt            time.Time
	UpdatedAt            time.Time
}

// MetricTarget returns the start/target pair for the metric, nil when the
// metric is disabled on this goal.
func (g Goal) MetricTarget(metric Metric) *MetricTarget {
	switch metric {
	case MetricWeight:
		return g.Weight
	case MetricBodyFat:
		return g.BodyFat
	case MetricMuscleMass:
		return g.MuscleMass
	default:
		return nil
	}
}

// WeeklyRate returns the configured pace target for the metric in units per
// week, nil when the goal carries no explicit pace target for it.
func (g Goal) WeeklyRate(metric Metric) *float64 {
	switch metric {
	case MetricWeight:
		return g.WeeklyWeightRate
	case MetricBodyFat:
		return g.WeeklyBodyFatRate
	case MetricMuscleMass:
		return g.WeeklyMuscleMassRate
	default:
		return nil
	}
}

// EnabledMetrics is the single place deciding which metrics participate in
// progress computation: a metric counts iff both start and target are set.
func (g Goal) EnabledMetrics() []Metric {
	enabled := make([]Metric, 0, len(AllMetrics))
	for _, metric := range AllMetrics {
		if g.MetricTarget(metric) != nil {
			enabled = append(enabled, metric)
		}
	}
	return enabled
}

// BodyCompositionEntry is a single measurement. Entries are immutable once
// created and ordered ascending by MeasuredAt everywhere in the system.
type BodyCompositionEntry struct {
	ID             int64
	UserID         uuid.UUID
	Weight         float64
	BodyFatPercent *float64
	MuscleMass     *float64
	MeasuredAt     time.Time
	CreatedAt      time.Time
}

// MetricValue extracts the measurement for the given metric. The second
// return value is false when the entry does not carry that metric.
func (e BodyCompositionEntry) MetricValue(metric Metric) (float64, bool) {
	switch metric {
	case MetricWeight:
		return e.Weight, true
	case MetricBodyFat:
		if e.BodyFatPercent == nil {
			return 0, false
		}
		return *e.BodyFatPercent, true
	case MetricMuscleMass:
		if e.MuscleMass == nil {
			return 0, false
		}
		return *e.MuscleMass, true
	default:
		return 0, false
	}
}
