package reminder

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	"github.com/carebridge/eldercare-api/internal/service/event"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type Service struct {
	reminders repository.ReminderRepository
	events    *event.Service
}

func NewService(reminders repository.ReminderRepository, events *event.Service) *Service {
	return &Service{reminders: reminders, events: events}
}

func (s *Service) ListReminders(ctx context.Context, patientID uuid.UUID) ([]*model.Reminder, error) {
	reminders, err := s.reminders.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return reminders, nil
}

func (s *Service) GetReminder(ctx context.Context, id uuid.UUID) (*model.Reminder, error) {
	reminder, err := s.reminders.Get(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.NotFound("reminder")
		}
		return nil, apperrors.Internal(err)
	}
	return reminder, nil
}

func (s *Service) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Reminder, error) {
	reminder, err := s.reminders.UpdateCompleted(ctx, id, completed)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.NotFound("reminder")
		}
		return nil, apperrors.Internal(err)
	}

	if completed {
		s.events.Emit(ctx, model.EventReminderCompleted, reminder)
	}
	return reminder, nil
}
