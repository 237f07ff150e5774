package model

import (
	"time"

	"github.com/google/uuid"
)

// Patient is the scoping key for every clinical resource. Each record in
// the collections below belongs to exactly one patient.
type Patient struct {
	Base
	FirstName   string     `json:"first_name" db:"first_name"`
	LastName    string     `json:"last_name" db:"last_name"`
	DateOfBirth *time.Time `json:"date_of_birth" db:"date_of_birth"`
}

// PatientAccess grants an account access to one patient's records. The
// account's own patient_id link grants access implicitly; rows here cover
// the rest of the care team.
type PatientAccess struct {
	AccountID uuid.UUID `json:"account_id" db:"account_id"`
	PatientID uuid.UUID `json:"patient_id" db:"patient_id"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// GrantAccessRequest adds another account to a patient's care team.
type GrantAccessRequest struct {
	AccountID string `json:"accountId" binding:"required"`
}
