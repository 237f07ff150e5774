package record

import (
	"context"

	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

// Caps for high-volume collections, bounding response size. The other
// collections are small enough to return whole.
const (
	vitalsLimit   = 50
	checkInsLimit = 30
)

// Service serves the read-only patient-scoped collections: vitals,
// emergency contacts, check-ins, messages, documents and invoices.
type Service struct {
	vitals    repository.VitalRepository
	contacts  repository.EmergencyContactRepository
	checkins  repository.CheckInRepository
	messages  repository.MessageRepository
	documents repository.DocumentRepository
	invoices  repository.InvoiceRepository
}

func NewService(
	vitals repository.VitalRepository,
	contacts repository.EmergencyContactRepository,
	checkins repository.CheckInRepository,
	messages repository.MessageRepository,
	documents repository.DocumentRepository,
	invoices repository.InvoiceRepository,
) *Service {
	return &Service{
		vitals:    vitals,
		contacts:  contacts,
		checkins:  checkins,
		messages:  messages,
		documents: documents,
		invoices:  invoices,
	}
}

func (s *Service) ListVitals(ctx context.Context, patientID uuid.UUID) ([]*model.Vital, error) {
	vitals, err := s.vitals.ListByPatient(ctx, patientID, vitalsLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return vitals, nil
}

func (s *Service) ListEmergencyContacts(ctx context.Context, patientID uuid.UUID) ([]*model.EmergencyContact, error) {
	contacts, err := s.contacts.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return contacts, nil
}

func (s *Service) ListCheckIns(ctx context.Context, patientID uuid.UUID) ([]*model.CheckIn, error) {
	checkins, err := s.checkins.ListByPatient(ctx, patientID, checkInsLimit)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return checkins, nil
}

// ListMessages includes the author's name and role for display.
func (s *Service) ListMessages(ctx context.Context, patientID uuid.UUID) ([]*model.Message, error) {
	messages, err := s.messages.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return messages, nil
}

func (s *Service) ListDocuments(ctx context.Context, patientID uuid.UUID) ([]*model.Document, error) {
	docs, err := s.documents.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return docs, nil
}

func (s *Service) ListInvoices(ctx context.Context, patientID uuid.UUID) ([]*model.Invoice, error) {
	invoices, err := s.invoices.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return invoices, nil
}
