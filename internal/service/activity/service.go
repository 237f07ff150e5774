package activity

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
	activities repository.ActivityRepository
	events     *event.Service
}

func NewService(activities repository.ActivityRepository, events *event.Service) *Service {
	return &Service{activities: activities, events: events}
}

func (s *Service) ListActivities(ctx context.Context, patientID uuid.UUID) ([]*model.Activity, error) {
	activities, err := s.activities.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return activities, nil
}

// GetActivity resolves the record, primarily so callers can check which
// patient it belongs to before mutating it.
func (s *Service) GetActivity(ctx context.Context, id uuid.UUID) (*model.Activity, error) {
	activity, err := s.activities.Get(ctx, id)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.NotFound("activity")
		}
		return nil, apperrors.Internal(err)
	}
	return activity, nil
}

// UpdateCompleted flips the only mutable field. Missing ids fail with
// NotFound rather than silently returning nothing.
func (s *Service) UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Activity, error) {
	activity, err := s.activities.UpdateCompleted(ctx, id, completed)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.NotFound("activity")
		}
		return nil, apperrors.Internal(err)
	}

	if completed {
		s.events.Emit(ctx, model.EventActivityCompleted, activity)
	}
	return activity, nil
}
