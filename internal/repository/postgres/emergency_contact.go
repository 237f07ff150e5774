package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type emergencyContactRepository struct {
	db *sqlx.DB
}

func NewEmergencyContactRepository(db *sqlx.DB) repository.EmergencyContactRepository {
	return &emergencyContactRepository{db: db}
}

func (r *emergencyContactRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.EmergencyContact, error) {
	query := `SELECT * FROM emergency_contacts WHERE patient_id = $1 ORDER BY is_primary DESC, name ASC`
	contacts := []*model.EmergencyContact{}
	if err := r.db.SelectContext(ctx, &contacts, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list emergency contacts: %w", err)
	}
	return contacts, nil
}
