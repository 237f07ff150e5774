package model

import (
	"github.com/google/uuid"
)

// Account roles. Stored as free text, not enforced as a closed enum; these
// are the values the application itself writes.
const (
	RoleFamily    = "family"
	RoleCaregiver = "caregiver"
	RoleClinician = "clinician"
	RoleAdmin     = "admin"
)

// User is an account that can sign in. The PatientID link points at the
// patient this account primarily cares for, when there is one.
type User struct {
	Base
	Email        string     `json:"email" db:"email"`
	PasswordHash string     `json:"-" db:"password_hash"`
	FirstName    *string    `json:"first_name" db:"first_name"`
	LastName     *string    `json:"last_name" db:"last_name"`
	Role         string     `json:"role" db:"role"`
	PatientID    *uuid.UUID `json:"patient_id,omitempty" db:"patient_id"`
}

// UserResponse is the public-safe projection returned by the auth
// endpoints. It never carries the password hash.
type UserResponse struct {
	ID        uuid.UUID  `json:"id"`
	Email     string     `json:"email"`
	FirstName *string    `json:"firstName"`
	LastName  *string    `json:"lastName"`
	Role      string     `json:"role"`
	PatientID *uuid.UUID `json:"patientId,omitempty"`
}

// PublicProfile returns the projection for u.
func (u *User) PublicProfile() *UserResponse {
	return &UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Role:      u.Role,
		PatientID: u.PatientID,
	}
}

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse is returned by register and login.
type AuthResponse struct {
	Token string        `json:"token"`
	User  *UserResponse `json:"user"`
}
