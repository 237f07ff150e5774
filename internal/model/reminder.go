package model

import (
	"time"

	"github.com/google/uuid"
)

type Reminder struct {
	Base
	PatientID    uuid.UUID `json:"patient_id" db:"patient_id"`
	Title        string    `json:"title" db:"title"`
	Description  *string   `json:"description" db:"description"`
	ReminderDate time.Time `json:"reminder_date" db:"reminder_date"`
	ReminderTime *string   `json:"reminder_time" db:"reminder_time"`
	Completed    bool      `json:"completed" db:"completed"`
}
