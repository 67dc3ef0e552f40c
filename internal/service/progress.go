package service

import (
	"context"
	"fmt"

	"bodygoals/internal/progress"

	"github.com/google/uuid"
)

// GetGoalProgress recomputes the user's progress on demand: it loads the
// active goal, the measurement history and the previously recorded overall
// percentage, runs the aggregation, and persists the new overall percentage
// so the next call can detect milestone crossings. The engine itself stays
// pure; all I/O happens here.
func (s *Service) GetGoalProgress(ctx context.Context, userID uuid.UUID) (progress.GoalProgressData, error) {
	goal, err := s.store.GetActiveGoal(ctx, userID)
	if err != nil {
		return progress.GoalProgressData{}, err
	}

	entries, err := s.store.ListEntries(ctx, userID, nil)
	if err != nil {
		return progress.GoalProgressData{}, fmt.Errorf("list entries: %w", err)
	}

	previous, err := s.store.GetProgressSnapshot(ctx, goal.ID)
	if err != nil {
		return progress.GoalProgressData{}, fmt.Errorf("load progress snapshot: %w", err)
	}

	data, err := progress.Aggregate(progress.AggregateParams{
		Goal:            &goal,
		Entries:         entries,
		PreviousOverall: previous,
		Now:             s.now(),
	})
	if err != nil {
		return progress.GoalProgressData{}, err
	}

	if err := s.store.UpsertProgressSnapshot(ctx, goal.ID, data.OverallPercentage); err != nil {
		return progress.GoalProgressData{}, fmt.Errorf("persist progress snapshot: %w", err)
	}
	return data, nil
}
