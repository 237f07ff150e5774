package model

import (
	"time"

	"github.com/google/uuid"
)

type CheckIn struct {
	ID          uuid.UUID `json:"id" db:"id"`
	PatientID   uuid.UUID `json:"patient_id" db:"patient_id"`
	Type        string    `json:"type" db:"type"`
	Mood        *string   `json:"mood" db:"mood"`
	Notes       *string   `json:"notes" db:"notes"`
	CheckinDate time.Time `json:"checkin_date" db:"checkin_date"`
	CheckinTime string    `json:"checkin_time" db:"checkin_time"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
