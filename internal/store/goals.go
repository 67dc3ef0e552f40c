package store

import (
	"context"
	"errors"

	"bodygoals/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const goalColumns = `
	id, user_id, goal_type,
	start_weight, target_weight,
	start_body_fat, target_body_fat,
	start_muscle_mass, target_muscle_mass,
	weekly_weight_rate, weekly_body_fat_rate, weekly_muscle_mass_rate,
	start_date, end_date, daily_calorie_target, is_active,
	created_at, updated_at`

// CreateGoal inserts a new active goal, deactivating any previously active
// goal of the user in the same transaction so the single-active-goal
// invariant holds.
func (s *Store) CreateGoal(ctx context.Context, input GoalInput) (int64, error) {
	tx, err := s.DB.Begin(ctx)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	if _, err := tx.Exec(ctx, `
		UPDATE goals SET is_active=false, updated_at=NOW()
		WHERE user_id=$1 AND is_active`, input.UserID); err != nil {
		return 0, err
	}

	startWeight, targetWeight := splitTarget(input.Weight)
	startBodyFat, targetBodyFat := splitTarget(input.BodyFat)
	startMuscle, targetMuscle := splitTarget(input.MuscleMass)

	var id int64
	err = tx.QueryRow(ctx, `
		INSERT INTO goals (
			user_id, goal_type,
			start_weight, target_weight,
			start_body_fat, target_body_fat,
			start_muscle_mass, target_muscle_mass,
			weekly_weight_rate, weekly_body_fat_rate, weekly_muscle_mass_rate,
			start_date, end_date, daily_calorie_target, is_active
		)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,true)
		RETURNING id`,
		input.UserID, input.Type,
		startWeight, targetWeight,
		startBodyFat, targetBodyFat,
		startMuscle, targetMuscle,
		input.WeeklyWeightRate, input.WeeklyBodyFatRate, input.WeeklyMuscleMassRate,
		input.StartDate, input.EndDate, input.DailyCalorieTarget,
	).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, tx.Commit(ctx)
}

// GetActiveGoal returns the user's single active goal, or
// domain.ErrNoActiveGoal when none exists.
func (s *Store) GetActiveGoal(ctx context.Context, userID uuid.UUID) (domain.Goal, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id=$1 AND is_active
		ORDER BY created_at DESC
		LIMIT 1`, userID)
	goal, err := scanGoal(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Goal{}, domain.ErrNoActiveGoal
		}
		return domain.Goal{}, err
	}
	return goal, nil
}

func (s *Store) GetGoal(ctx context.Context, id int64) (domain.Goal, error) {
	row := s.DB.QueryRow(ctx, `
		SELECT `+goalColumns+`
		FROM goals WHERE id=$1`, id)
	return scanGoal(row)
}

func (s *Store) ListGoals(ctx context.Context, userID uuid.UUID) ([]domain.Goal, error) {
	rows, err := s.DB.Query(ctx, `
		SELECT `+goalColumns+`
		FROM goals
		WHERE user_id=$1
		ORDER BY created_at DESC, id DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	goals := make([]domain.Goal, 0)
	for rows.Next() {
		goal, err := scanGoal(rows)
		if err != nil {
			return nil, err
		}
		goals = append(goals, goal)
	}
	return goals, rows.Err()
}

func (s *Store) UpdateGoal(ctx context.Context, input GoalUpdateInput) error {
	startWeight, targetWeight := splitTarget(input.Weight)
	startBodyFat, targetBodyFat := splitTarget(input.BodyFat)
	startMuscle, targetMuscle := splitTarget(input.MuscleMass)

	_, err := s.DB.Exec(ctx, `
		UPDATE goals
		SET goal_type=$1,
		    start_weight=$2, target_weight=$3,
		    start_body_fat=$4, target_body_fat=$5,
		    start_muscle_mass=$6, target_muscle_mass=$7,
		    weekly_weight_rate=$8, weekly_body_fat_rate=$9, weekly_muscle_mass_rate=$10,
		    start_date=$11, end_date=$12, daily_calorie_target=$13,
		    updated_at=NOW()
		WHERE id=$14`,
		input.Type,
		startWeight, targetWeight,
		startBodyFat, targetBodyFat,
		startMuscle, targetMuscle,
		input.WeeklyWeightRate, input.WeeklyBodyFatRate, input.WeeklyMuscleMassRate,
		input.StartDate, input.EndDate, input.DailyCalorieTarget, input.ID,
	)
	return err
}

// DeactivateGoal retires a goal without deleting it, keeping its history.
func (s *Store) DeactivateGoal(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `
		UPDATE goals SET is_active=false, updated_at=NOW()
		WHERE id=$1`, id)
	return err
}

func scanGoal(row pgx.Row) (domain.Goal, error) {
	var goal domain.Goal
	var startWeight, targetWeight *float64
	var startBodyFat, targetBodyFat *float64
	var startMuscle, targetMuscle *float64
	if err := row.Scan(
		&goal.ID, &goal.UserID, &goal.Type,
		&startWeight, &targetWeight,
		&startBodyFat, &targetBodyFat,
		&startMuscle, &targetMuscle,
		&goal.WeeklyWeightRate, &goal.WeeklyBodyFatRate, &goal.WeeklyMuscleMassRate,
		&goal.StartDate, &goal.EndDate, &goal.DailyCalorieTarget, &goal.IsActive,
		&goal.CreatedAt, &goal.UpdatedAt,
	); err != nil {
		return domain.Goal{}, err
	}
	goal.Weight = joinTarget(startWeight, targetWeight)
	goal.BodyFat = joinTarget(startBodyFat, targetBodyFat)
	goal.MuscleMass = joinTarget(startMuscle, targetMuscle)
	return goal, nil
}
