package model

import (
	"time"

	"github.com/google/uuid"
)

type InvoiceStatus string

const (
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

type Invoice struct {
	ID            uuid.UUID  `json:"id" db:"id"`
	PatientID     uuid.UUID  `json:"patient_id" db:"patient_id"`
	InvoiceNumber string     `json:"invoice_number" db:"invoice_number"`
	Description   *string    `json:"description" db:"description"`
	Amount        string     `json:"amount" db:"amount"`
	Status        string     `json:"status" db:"status"`
	DueDate       *time.Time `json:"due_date" db:"due_date"`
	PaidAt        *time.Time `json:"paid_at" db:"paid_at"`
	CreatedAt     time.Time  `json:"created_at" db:"created_at"`
}
