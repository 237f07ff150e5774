package model

import (
	"time"

	"github.com/google/uuid"
)

type Vital struct {
	ID         uuid.UUID `json:"id" db:"id"`
	PatientID  uuid.UUID `json:"patient_id" db:"patient_id"`
	Type       string    `json:"type" db:"type"`
	Value      string    `json:"value" db:"value"`
	Unit       string    `json:"unit" db:"unit"`
	RecordedAt time.Time `json:"recorded_at" db:"recorded_at"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}
