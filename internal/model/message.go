package model

import (
	"time"

	"github.com/google/uuid"
)

// Message belongs to a patient and to the account that authored it. The
// author fields are joined on read for display; they stay null when the
// authoring account no longer exists.
type Message struct {
	ID        uuid.UUID  `json:"id" db:"id"`
	PatientID uuid.UUID  `json:"patient_id" db:"patient_id"`
	UserID    *uuid.UUID `json:"user_id" db:"user_id"`
	Message   string     `json:"message" db:"message"`
	CreatedAt time.Time  `json:"created_at" db:"created_at"`

	FirstName *string `json:"first_name" db:"first_name"`
	LastName  *string `json:"last_name" db:"last_name"`
	Role      *string `json:"role" db:"role"`
}
