package reminder

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type mockReminderRepo struct {
	items map[uuid.UUID]*model.Reminder
}

func newMockReminderRepo() *mockReminderRepo {
	return &mockReminderRepo{items: make(map[uuid.UUID]*model.Reminder)}
}

func (m *mockReminderRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*model.Reminder, error) {
	result := []*model.Reminder{}
	for _, r := range m.items {
		if r.PatientID == patientID {
			result = append(result, r)
		}
	}
	return result, nil
}

func (m *mockReminderRepo) Get(_ context.Context, id uuid.UUID) (*model.Reminder, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return r, nil
}

func (m *mockReminderRepo) UpdateCompleted(_ context.Context, id uuid.UUID, completed bool) (*model.Reminder, error) {
	r, ok := m.items[id]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	r.Completed = completed
	return r, nil
}

func TestUpdateCompletedRoundTrip(t *testing.T) {
	repo := newMockReminderRepo()
	svc := NewService(repo, nil)

	id := uuid.New()
	repo.items[id] = &model.Reminder{Base: model.Base{ID: id}, PatientID: uuid.New(), Title: "refill prescription"}

	updated, err := svc.UpdateCompleted(context.Background(), id, true)
	require.NoError(t, err)
	assert.True(t, updated.Completed)

	updated, err = svc.UpdateCompleted(context.Background(), id, false)
	require.NoError(t, err)
	assert.False(t, updated.Completed)
}

func TestUpdateCompletedMissingID(t *testing.T) {
	svc := NewService(newMockReminderRepo(), nil)

	_, err := svc.UpdateCompleted(context.Background(), uuid.New(), true)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrNotFound))
}
