package model

import (
	"time"

	"github.com/google/uuid"
)

type AppointmentStatus string

const (
	AppointmentStatusScheduled AppointmentStatus = "scheduled"
	AppointmentStatusCancelled AppointmentStatus = "cancelled"
	AppointmentStatusCompleted AppointmentStatus = "completed"
)

type Appointment struct {
	Base
	PatientID       uuid.UUID `json:"patient_id" db:"patient_id"`
	Type            string    `json:"type" db:"type"`
	Doctor          string    `json:"doctor" db:"doctor"`
	AppointmentDate time.Time `json:"appointment_date" db:"appointment_date"`
	AppointmentTime string    `json:"appointment_time" db:"appointment_time"`
	Location        *string   `json:"location" db:"location"`
	Status          string    `json:"status" db:"status"`
	Notes           *string   `json:"notes" db:"notes"`
}

type CreateAppointmentRequest struct {
	PatientID       string  `json:"patient_id" binding:"required"`
	Type            string  `json:"type" binding:"required"`
	Doctor          string  `json:"doctor" binding:"required"`
	AppointmentDate string  `json:"appointment_date" binding:"required"`
	AppointmentTime string  `json:"appointment_time" binding:"required"`
	Location        *string `json:"location"`
	Notes           *string `json:"notes"`
}

type UpdateAppointmentRequest struct {
	Type            *string `json:"type"`
	Doctor          *string `json:"doctor"`
	AppointmentDate *string `json:"appointment_date"`
	AppointmentTime *string `json:"appointment_time"`
	Location        *string `json:"location"`
	Status          *string `json:"status"`
	Notes           *string `json:"notes"`
}
