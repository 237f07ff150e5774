package model

import (
	"time"

	"github.com/google/uuid"
)

type Medication struct {
	Base
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	Name      string    `json:"name" db:"name"`
	Dosage    string    `json:"dosage" db:"dosage"`
	Frequency string    `json:"frequency" db:"frequency"`
	Time      *string   `json:"time" db:"time"`
}

// MedicationLog records one taken dose. UserID is the acting account when
// one was authenticated.
type MedicationLog struct {
	ID           uuid.UUID  `json:"id" db:"id"`
	MedicationID uuid.UUID  `json:"medication_id" db:"medication_id"`
	UserID       *uuid.UUID `json:"user_id" db:"user_id"`
	TakenAt      time.Time  `json:"taken_at" db:"taken_at"`
	Notes        *string    `json:"notes" db:"notes"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

type LogMedicationRequest struct {
	TakenAt *time.Time `json:"takenAt"`
	Notes   *string    `json:"notes"`
}
