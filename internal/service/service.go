package service

import (
	"context"
	"fmt"
	"time"

	"bodygoals/internal/domain"
	"bodygoals/internal/store"

	"github.com/google/uuid"
)

type Store interface {
	CreateGoal(ctx context.Context, input store.GoalInput) (int64, error)
	GetActiveGoal(ctx context.Context, userID uuid.UUID) (domain.Goal, error)
	GetGoal(ctx context.Context, id int64) (domain.Goal, error)
	ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error)
	UpdateGoal(ctx context.Context, input store.GoalUpdateInput) error
	DeactivateGoal(ctx context.Context, id int64) error
	CreateEntry(ctx context.Context, input store.EntryInput) (int64, error)
	ListEntries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.BodyCompositionEntry, error)
	DeleteEntry(ctx context.Context, id int64) error
	GetProgressSnapshot(ctx context.Context, goalID int64) (*float64, error)
	UpsertProgressSnapshot(ctx context.Context, goalID int64, overall float64) error
}

type Service struct {
	store Store
	now   func() time.Time
}

func New(store Store) *Service {
	return &Service{store: store, now: time.Now}
}

// CreateGoal validates and stores a new goal. Creation deactivates any
// previously active goal of the user, so at most one stays active.
func (s *Service) CreateGoal(ctx context.Context, input store.GoalInput) (int64, error) {
	if err := validateGoalInput(input.Type, input.Weight, input.BodyFat, input.MuscleMass, input.StartDate, input.EndDate); err != nil {
		return 0, err
	}
	return s.store.CreateGoal(ctx, input)
}

func (s *Service) GetActiveGoal(ctx context.Context, userID uuid.UUID) (domain.Goal, error) {
	return s.store.GetActiveGoal(ctx, userID)
}

func (s *Service) ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	return s.store.ListGoals(ctx, userID)
}

func (s *Service) UpdateGoal(ctx context.Context, input store.GoalUpdateInput) error {
	if err := validateGoalInput(input.Type, input.Weight, input.BodyFat, input.MuscleMass, input.StartDate, input.EndDate); err != nil {
		return err
	}
	if _, err := s.store.GetGoal(ctx, input.ID); err != nil {
		return fmt.Errorf("load goal %d: %w", input.ID, err)
	}
	return s.store.UpdateGoal(ctx, input)
}

func (s *Service) DeactivateGoal(ctx context.Context, goalID int64) error {
	return s.store.DeactivateGoal(ctx, goalID)
}

// AddEntry stores a measurement. Entries are immutable: there is no update,
// a wrong measurement gets deleted and re-entered.
func (s *Service) AddEntry(ctx context.Context, input store.EntryInput) (int64, error) {
	if input.Weight <= 0 {
		return 0, fmt.Errorf("weight must be positive, got %v", input.Weight)
	}
	if input.MeasuredAt.IsZero() {
		input.MeasuredAt = s.now()
	}
	return s.store.CreateEntry(ctx, input)
}

func (s *Service) ListEntries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.BodyCompositionEntry, error) {
	return s.store.ListEntries(ctx, userID, since)
}

func (s *Service) DeleteEntry(ctx context.Context, entryID int64) error {
	return s.store.DeleteEntry(ctx, entryID)
}

func validateGoalInput(goalType domain.GoalType, weight, bodyFat, muscleMass *domain.MetricTarget, startDate, endDate time.Time) error {
	if !domain.ValidGoalType(goalType) {
		return fmt.Errorf("invalid goal type %q", goalType)
	}
	if weight == nil && bodyFat == nil && muscleMass == nil {
		return domain.ErrNoEnabledMetrics
	}
	if !endDate.IsZero() && !startDate.IsZero() && endDate.Before(startDate) {
		return fmt.Errorf("goal period ends before it starts")
	}
	return nil
}
