package store

import (
	"context"
	"errors"
	"time"

	"bodygoals/internal/domain"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

func (s *Store) CreateEntry(ctx context.Context, input EntryInput) (int64, error) {
	var id int64
	err := s.DB.QueryRow(ctx, `
		INSERT INTO body_composition_entries (user_id, weight, body_fat_percent, muscle_mass, measured_at)
		VALUES ($1,$2,$3,$4,$5)
		RETURNING id`,
		input.UserID, input.Weight, input.BodyFatPercent, input.MuscleMass, input.MeasuredAt,
	).Scan(&id)
	return id, err
}

// ListEntries returns the user's measurements sorted ascending by measured-at,
// the order the progress engine expects. A nil since returns the full history.
func (s *Store) ListEntries(ctx context.Context, userID uuid.UUID, since *time.Time) ([]domain.BodyCompositionEntry, error) {
	query := `
		SELECT id, user_id, weight, body_fat_percent, muscle_mass, measured_at, created_at
		FROM body_composition_entries
		WHERE user_id=$1`
	args := []any{userID}
	if since != nil {
		query += ` AND measured_at >= $2`
		args = append(args, *since)
	}
	query += ` ORDER BY measured_at ASC, id ASC`

	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]domain.BodyCompositionEntry, 0)
	for rows.Next() {
		var entry domain.BodyCompositionEntry
		if err := rows.Scan(&entry.ID, &entry.UserID, &entry.Weight, &entry.BodyFatPercent, &entry.MuscleMass, &entry.MeasuredAt, &entry.CreatedAt); err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, rows.Err()
}

// LatestEntry returns the most recent measurement, nil when the user has none.
func (s *Store) LatestEntry(ctx context.Context, userID uuid.UUID) (*domain.BodyCompositionEntry, error) {
	var entry domain.BodyCompositionEntry
	row := s.DB.QueryRow(ctx, `
		SELECT id, user_id, weight, body_fat_percent, muscle_mass, measured_at, created_at
		FROM body_composition_entries
		WHERE user_id=$1
		ORDER BY measured_at DESC, id DESC
		LIMIT 1`, userID)
	if err := row.Scan(&entry.ID, &entry.UserID, &entry.Weight, &entry.BodyFatPercent, &entry.MuscleMass, &entry.MeasuredAt, &entry.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

func (s *Store) DeleteEntry(ctx context.Context, id int64) error {
	_, err := s.DB.Exec(ctx, `DELETE FROM body_composition_entries WHERE id=$1`, id)
	return err
}
