package medication

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	"github.com/carebridge/eldercare-api/internal/service/event"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type Service struct {
	medications repository.MedicationRepository
	events      *event.Service
}

func NewService(medications repository.MedicationRepository, events *event.Service) *Service {
	return &Service{medications: medications, events: events}
}

func (s *Service) ListMedications(ctx context.Context, patientID uuid.UUID) ([]*model.Medication, error) {
	meds, err := s.medications.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return meds, nil
}

// GetMedication resolves the record, primarily so callers can check which
// patient it belongs to before logging a dose against it.
func (s *Service) GetMedication(ctx context.Context, id uuid.UUID) (*model.Medication, error) {
	med, err := s.medications.Get(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.NotFound("medication")
		}
		return nil, apperrors.Internal(err)
	}
	return med, nil
}

// LogTaken records one taken dose. TakenAt defaults to now; the acting
// account is recorded when one was authenticated.
func (s *Service) LogTaken(ctx context.Context, medicationID uuid.UUID, req *model.LogMedicationRequest, actorID *uuid.UUID) (*model.MedicationLog, error) {
	takenAt := time.Now()
	if req.TakenAt != nil {
		takenAt = *req.TakenAt
	}

	log := &model.MedicationLog{
		ID:           uuid.New(),
		MedicationID: medicationID,
		UserID:       actorID,
		TakenAt:      takenAt,
		Notes:        req.Notes,
	}
	if err := s.medications.CreateLog(ctx, log); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.events.Emit(ctx, model.EventMedicationLogged, log)
	return log, nil
}
