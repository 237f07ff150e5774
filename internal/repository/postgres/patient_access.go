package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/repository"
)

type patientAccessRepository struct {
	db *sqlx.DB
}

func NewPatientAccessRepository(db *sqlx.DB) repository.PatientAccessRepository {
	return &patientAccessRepository{db: db}
}

// ListPatientIDs returns the account's linked patient plus every
// care-team grant, deduplicated.
func (r *patientAccessRepository) ListPatientIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	query := `
		SELECT patient_id FROM users WHERE id = $1 AND patient_id IS NOT NULL
		UNION
		SELECT patient_id FROM patient_access WHERE account_id = $1
	`
	var ids []uuid.UUID
	if err := r.db.SelectContext(ctx, &ids, query, accountID); err != nil {
		return nil, fmt.Errorf("failed to list patient access: %w", err)
	}
	return ids, nil
}

func (r *patientAccessRepository) Grant(ctx context.Context, accountID, patientID uuid.UUID) error {
	query := `
		INSERT INTO patient_access (account_id, patient_id, created_at)
		VALUES ($1, $2, $3)
		ON CONFLICT DO NOTHING
	`
	if _, err := r.db.ExecContext(ctx, query, accountID, patientID, time.Now()); err != nil {
		return fmt.Errorf("failed to grant patient access: %w", err)
	}
	return nil
}
