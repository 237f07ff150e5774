package model

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type OutboxStatus string

const (
	OutboxStatusPending   OutboxStatus = "pending"
	OutboxStatusProcessed OutboxStatus = "processed"
	OutboxStatusFailed    OutboxStatus = "failed"
)

// Care event types written by the mutating handlers.
const (
	EventMedicationLogged    = "MEDICATION_LOGGED"
	EventActivityCompleted   = "ACTIVITY_COMPLETED"
	EventReminderCompleted   = "REMINDER_COMPLETED"
	EventAppointmentCreated  = "APPOINTMENT_CREATED"
	EventAppointmentUpdated  = "APPOINTMENT_UPDATED"
	EventAppointmentCanceled = "APPOINTMENT_CANCELLED"
)

// OutboxEvent is one pending care event. Rows are written alongside the
// mutation that caused them and published asynchronously.
type OutboxEvent struct {
	ID           uuid.UUID       `json:"id" db:"id"`
	EventType    string          `json:"event_type" db:"event_type"`
	Payload      json.RawMessage `json:"payload" db:"payload"`
	Status       OutboxStatus    `json:"status" db:"status"`
	ErrorMessage *string         `json:"error_message,omitempty" db:"error_message"`
	CreatedAt    time.Time       `json:"created_at" db:"created_at"`
	ProcessedAt  *time.Time      `json:"processed_at,omitempty" db:"processed_at"`
	UpdatedAt    time.Time       `json:"updated_at" db:"updated_at"`
}
