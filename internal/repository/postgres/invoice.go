package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type invoiceRepository struct {
	db *sqlx.DB
}

func NewInvoiceRepository(db *sqlx.DB) repository.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Invoice, error) {
	query := `SELECT * FROM invoices WHERE patient_id = $1 ORDER BY created_at DESC`
	invoices := []*model.Invoice{}
	if err := r.db.SelectContext(ctx, &invoices, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list invoices: %w", err)
	}
	return invoices, nil
}
