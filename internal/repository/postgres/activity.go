package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type activityRepository struct {
	db *sqlx.DB
}

func NewActivityRepository(db *sqlx.DB) repository.ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Activity, error) {
	query := `SELECT * FROM activities WHERE patient_id = $1 ORDER BY activity_date DESC`
	activities := []*model.Activity{}
	if err := r.db.SelectContext(ctx, &activities, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list activities: %w", err)
	}
	return activities, nil
}

func (r *activityRepository) Get(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	query := `SELECT * FROM activities WHERE id = $1`
	var activity model.Activity
	if err := r.db.GetContext(ctx, &activity, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get activity: %w", err)
	}
	return &activity, nil
}

// UpdateCompleted flips the completed flag and returns the updated row, or
// ErrNotFound when no activity has that id.
func (r *activityRepository) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Activity, error) {
	query := `
		UPDATE activities SET completed = $1, updated_at = $2
		WHERE id = $3
		RETURNING *
	`
	var activity model.Activity
	err := r.db.GetContext(ctx, &activity, query, completed, time.Now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update activity: %w", err)
	}
	return &activity, nil
}
