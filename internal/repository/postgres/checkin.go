package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type checkInRepository struct {
	db *sqlx.DB
}

func NewCheckInRepository(db *sqlx.DB) repository.CheckInRepository {
	return &checkInRepository{db: db}
}

func (r *checkInRepository) ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.CheckIn, error) {
	query := `SELECT * FROM checkins WHERE patient_id = $1 ORDER BY checkin_date DESC LIMIT $2`
	checkins := []*model.CheckIn{}
	if err := r.db.SelectContext(ctx, &checkins, query, patientID, limit); err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	return checkins, nil
}
