package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type vitalRepository struct {
	db *sqlx.DB
}

func NewVitalRepository(db *sqlx.DB) repository.VitalRepository {
	return &vitalRepository{db: db}
}

// ListByPatient returns the newest readings first, capped at limit to
// bound response size for high-volume patients.
func (r *vitalRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.Vital, error) {
	query := `SELECT * FROM vitals WHERE patient_id = $1 ORDER BY recorded_at DESC LIMIT $2`
	vitals := []*model.Vital{}
	if err := r.db.SelectContext(ctx, &vitals, query, patientID, limit); err != nil {
		return nil, fmt.Errorf("failed to list vitals: %w", err)
	}
	return vitals, nil
}
