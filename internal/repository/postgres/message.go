package postgres

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
)

type messageRepository struct {
	db *sqlx.DB
}

func NewMessageRepository(db *sqlx.DB) repository.MessageRepository {
	return &messageRepository{db: db}
}

// ListByPatient joins the author's name and role for display. LEFT JOIN so
// messages from since-deleted accounts still render with null author fields.
func (r *messageRepository) ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*model.Message, error) {
	query := `
		SELECT m.id, m.patient_id, m.user_id, m.message, m.created_at,
			u.first_name, u.last_name, u.role
		FROM messages m
		LEFT JOIN users u ON u.id = m.user_id
		WHERE m.patient_id = $1
		ORDER BY m.created_at DESC
	`
	messages := []*model.Message{}
	if err := r.db.SelectContext(ctx, &messages, query, patientID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
