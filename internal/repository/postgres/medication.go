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

type medicationRepository struct {
	db *sqlx.DB
}

func NewMedicationRepository(db *sqlx.DB) repository.MedicationRepository {
	return &medicationRepository{db: db}
}

func (r *medicationRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Medication, error) {
	query := `SELECT * FROM medications WHERE patient_id = $1 ORDER BY created_at DESC`
	meds := []*model.Medication{}
	if err := r.db.SelectContext(ctx, &meds, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list medications: %w", err)
	}
	return meds, nil
}

func (r *medicationRepository) Get(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	query := `SELECT * FROM medications WHERE id = $1`
	var med model.Medication
	if err := r.db.GetContext(ctx, &med, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get medication: %w", err)
	}
	return &med, nil
}

func (r *medicationRepository) CreateLog(ctx context.Context, log *model.MedicationLog) error {
	query := `
		INSERT INTO medication_logs (id, medication_id, user_id, taken_at, notes, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	log.CreatedAt = time.Now()
	_, err := r.db.ExecContext(ctx, query,
		log.ID,
		log.MedicationID,
		log.UserID,
		log.TakenAt,
		log.Notes,
		log.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create medication log: %w", err)
	}
	return nil
}
