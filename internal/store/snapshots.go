package store

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
)

// The progress engine never stores the overall percentage it computes; the
// caller persists it here between aggregations so milestone-crossing
// detection has something to diff against.

// GetProgressSnapshot returns the last recorded overall percentage for a
// goal, nil when the goal was never aggregated before.
func (s *Store) GetProgressSnapshot(ctx context.Context, goalID int64) (*float64, error) {
	var overall float64
	row := s.DB.QueryRow(ctx, `
		SELECT overall_percentage FROM progress_snapshots WHERE goal_id=$1`, goalID)
	if err := row.Scan(&overall); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &overall, nil
}

func (s *Store) UpsertProgressSnapshot(ctx context.Context, goalID int64, overall float64) error {
	_, err := s.DB.Exec(ctx, `
		INSERT INTO progress_snapshots (goal_id, overall_percentage, updated_at)
		VALUES ($1,$2,NOW())
		ON CONFLICT (goal_id)
		DO UPDATE SET overall_percentage=EXCLUDED.overall_percentage, updated_at=NOW()`,
		goalID, overall,
	)
	return err
}
