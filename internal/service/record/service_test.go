package record

import (
	"context"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/eldercare-api/internal/model"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

// The mocks honour the repository ordering/limit contracts so the tests
// exercise the caps end to end.

type mockVitalRepo struct {
	vitals []*model.Vital
}

func (m *mockVitalRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit int) ([]*model.Vital, error) {
	matched := []*model.Vital{}
	for _, v := range m.vitals {
		if v.PatientID == patientID {
			matched = append(matched, v)
		}
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].RecordedAt.After(matched[j].RecordedAt)
	})
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type mockCheckInRepo struct {
	checkins []*model.CheckIn
}

func (m *mockCheckInRepo) ListByPatient(_ context.Context, patientID uuid.UUID, limit int) ([]*model.CheckIn, error) {
	matched := []*model.CheckIn{}
	for _, c := range m.checkins {
		if c.PatientID == patientID {
			matched = append(matched, c)
		}
	}
	if len(matched) > limit {
		matched = matched[:limit]
	}
	return matched, nil
}

type mockMessageRepo struct {
	messages []*model.Message
	err      error
}

func (m *mockMessageRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*model.Message, error) {
	if m.err != nil {
		return nil, m.err
	}
	matched := []*model.Message{}
	for _, msg := range m.messages {
		if msg.PatientID == patientID {
			matched = append(matched, msg)
		}
	}
	return matched, nil
}

func TestListVitalsCappedAt50NewestFirst(t *testing.T) {
	patientID := uuid.New()
	repo := &mockVitalRepo{}
	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 60; i++ {
		repo.vitals = append(repo.vitals, &model.Vital{
			ID:         uuid.New(),
			PatientID:  patientID,
			Type:       "heart_rate",
			Value:      "72",
			Unit:       "bpm",
			RecordedAt: base.Add(time.Duration(i) * time.Hour),
		})
	}
	// Another patient's readings must never leak in.
	repo.vitals = append(repo.vitals, &model.Vital{
		ID: uuid.New(), PatientID: uuid.New(), RecordedAt: base.Add(1000 * time.Hour),
	})

	svc := NewService(repo, nil, nil, nil, nil, nil)
	vitals, err := svc.ListVitals(context.Background(), patientID)
	require.NoError(t, err)

	assert.Len(t, vitals, 50)
	assert.Equal(t, base.Add(59*time.Hour), vitals[0].RecordedAt, "newest first")
	for _, v := range vitals {
		assert.Equal(t, patientID, v.PatientID)
	}
}

func TestListCheckInsCappedAt30(t *testing.T) {
	patientID := uuid.New()
	repo := &mockCheckInRepo{}
	for i := 0; i < 40; i++ {
		repo.checkins = append(repo.checkins, &model.CheckIn{
			ID:        uuid.New(),
			PatientID: patientID,
		})
	}

	svc := NewService(nil, nil, repo, nil, nil, nil)
	checkins, err := svc.ListCheckIns(context.Background(), patientID)
	require.NoError(t, err)
	assert.Len(t, checkins, 30)
}

func TestListMessagesKeepsOrphanedAuthors(t *testing.T) {
	patientID := uuid.New()
	author := uuid.New()
	name := "Alma"
	repo := &mockMessageRepo{messages: []*model.Message{
		{ID: uuid.New(), PatientID: patientID, UserID: &author, Message: "took meds", FirstName: &name},
		{ID: uuid.New(), PatientID: patientID, UserID: nil, Message: "from deleted account"},
	}}

	svc := NewService(nil, nil, nil, repo, nil, nil)
	messages, err := svc.ListMessages(context.Background(), patientID)
	require.NoError(t, err)

	require.Len(t, messages, 2, "messages from deleted accounts still render")
	assert.Nil(t, messages[1].FirstName)
}

func TestDataLayerFaultSurfacesAsInternal(t *testing.T) {
	repo := &mockMessageRepo{err: fmt.Errorf("pq: connection refused")}
	svc := NewService(nil, nil, nil, repo, nil, nil)

	_, err := svc.ListMessages(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrInternal))
	assert.Contains(t, err.Error(), "connection refused", "underlying message surfaces")
}
