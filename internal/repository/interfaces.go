package repository

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/model"
)

type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	Get(ctx context.Context, id uuid.UUID) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
}

// PatientAccessRepository resolves which patients an account may touch.
type PatientAccessRepository interface {
	ListPatientIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error)
	Grant(ctx context.Context, accountID, patientID uuid.UUID) error
}

type MedicationRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Medication, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Medication, error)
	CreateLog(ctx context.Context, log *model.MedicationLog) error
}

type AppointmentRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Appointment, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Appointment, error)
	Create(ctx context.Context, appointment *model.Appointment) error
	Update(ctx context.Context, appointment *model.Appointment) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type VitalRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.Vital, error)
}

type EmergencyContactRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.EmergencyContact, error)
}

type CheckInRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID, limit int) ([]*model.CheckIn, error)
}

type MessageRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Message, error)
}

type DocumentRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Document, error)
}

type ActivityRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Activity, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Activity, error)
	UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Activity, error)
}

type ReminderRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Reminder, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Reminder, error)
	UpdateCompleted(ctx context.Context, id uuid.UUID, completed bool) (*model.Reminder, error)
}

type InvoiceRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Invoice, error)
}

type OutboxRepository interface {
	Create(ctx context.Context, event *model.OutboxEvent) error
	GetPendingEvents(ctx context.Context, limit int) ([]*model.OutboxEvent, error)
	MarkProcessed(ctx context.Context, id uuid.UUID) error
	MarkFailed(ctx context.Context, id uuid.UUID, errorMessage string) error
	DeleteProcessedBefore(ctx context.Context, before time.Time) (int64, error)
}
