package model

import (
	"time"

	"github.com/google/uuid"
)

type Activity struct {
	Base
	PatientID    uuid.UUID `json:"patient_id" db:"patient_id"`
	Name         string    `json:"name" db:"name"`
	Notes        *string   `json:"notes" db:"notes"`
	Duration     *int      `json:"duration" db:"duration"`
	ActivityDate time.Time `json:"activity_date" db:"activity_date"`
	Completed    bool      `json:"completed" db:"completed"`
}

// UpdateCompletedRequest is the body of the activity and reminder PUT
// routes. Completed is the only mutable field.
type UpdateCompletedRequest struct {
	Completed *bool `json:"completed" binding:"required"`
}
