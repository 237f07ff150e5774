package appointment

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

const dateLayout = "2006-01-02"

type Service struct {
	appointments repository.AppointmentRepository
	events       *event.Service
}

func NewService(appointments repository.AppointmentRepository, events *event.Service) *Service {
	return &Service{appointments: appointments, events: events}
}

func (s *Service) ListAppointments(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error) {
	appts, err := s.appointments.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return appts, nil
}

func (s *Service) GetAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}
	return appt, nil
}

func (s *Service) CreateAppointment(ctx context.Context, patientID uuid.UUID, req *model.CreateAppointmentRequest) (*model.Appointment, error) {
	date, err := time.Parse(dateLayout, req.AppointmentDate)
	if err != nil {
		return nil, apperrors.Validation("invalid appointment date")
	}

	appt := &model.Appointment{
		Base:            model.Base{ID: uuid.New()},
		PatientID:       patientID,
		Type:            req.Type,
		Doctor:          req.Doctor,
		AppointmentDate: date,
		AppointmentTime: req.AppointmentTime,
		Location:        req.Location,
		Status:          string(model.AppointmentStatusScheduled),
		Notes:           req.Notes,
	}
	if err := s.appointments.Create(ctx, appt); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.events.Emit(ctx, model.EventAppointmentCreated, appt)
	return appt, nil
}

// UpdateAppointment applies the supplied fields and leaves the rest alone.
func (s *Service) UpdateAppointment(ctx context.Context, id uuid.UUID, req *model.UpdateAppointmentRequest) (*model.Appointment, error) {
	appt, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	if req.Type != nil {
		appt.Type = *req.Type
	}
	if req.Doctor != nil {
		appt.Doctor = *req.Doctor
	}
	if req.AppointmentDate != nil {
		date, err := time.Parse(dateLayout, *req.AppointmentDate)
		if err != nil {
			return nil, apperrors.Validation("invalid appointment date")
		}
		appt.AppointmentDate = date
	}
	if req.AppointmentTime != nil {
		appt.AppointmentTime = *req.AppointmentTime
	}
	if req.Location != nil {
		appt.Location = req.Location
	}
	if req.Status != nil {
		appt.Status = *req.Status
	}
	if req.Notes != nil {
		appt.Notes = req.Notes
	}

	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, mapRepoError(err)
	}

	s.events.Emit(ctx, model.EventAppointmentUpdated, appt)
	return appt, nil
}

// CancelAppointment keeps the record but marks it cancelled.
func (s *Service) CancelAppointment(ctx context.Context, id uuid.UUID) (*model.Appointment, error) {
	appt, err := s.appointments.Get(ctx, id)
	if err != nil {
		return nil, mapRepoError(err)
	}

	appt.Status = string(model.AppointmentStatusCancelled)
	if err := s.appointments.Update(ctx, appt); err != nil {
		return nil, mapRepoError(err)
	}

	s.events.Emit(ctx, model.EventAppointmentCanceled, appt)
	return appt, nil
}

func (s *Service) DeleteAppointment(ctx context.Context, id uuid.UUID) error {
	if err := s.appointments.Delete(ctx, id); err != nil {
		return mapRepoError(err)
	}
	return nil
}

func mapRepoError(err error) error {
	if errors.Is(err, postgres.ErrNotFound) {
		return apperrors.NotFound("appointment")
	}
	return apperrors.Internal(err)
}
