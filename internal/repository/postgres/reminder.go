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

type reminderRepository struct {
	db *sqlx.DB
}

func NewReminderRepository(db *sqlx.DB) repository.ReminderRepository {
	return &reminderRepository{db: db}
}

// ListByPatient orders soonest-first so due reminders lead.
func (r *reminderRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Reminder, error) {
	query := `SELECT * FROM reminders WHERE patient_id = $1 ORDER BY reminder_date ASC`
	reminders := []*model.Reminder{}
	if err := r.db.SelectContext(ctx, &reminders, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list reminders: %w", err)
	}
	return reminders, nil
}

func (r *reminderRepository) Get(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	query := `SELECT * FROM reminders WHERE id = $1`
	var reminder model.Reminder
	if err := r.db.GetContext(ctx, &reminder, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get reminder: %w", err)
	}
	return &reminder, nil
}

func (r *reminderRepository) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Reminder, error) {
	query := `
		UPDATE reminders SET completed = $1, updated_at = $2
		WHERE id = $3
		RETURNING *
	`
	var reminder model.Reminder
	err := r.db.GetContext(ctx, &reminder, query, completed, time.Now(), id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update reminder: %w", err)
	}
	return &reminder, nil
}
