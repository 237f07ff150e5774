package access

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type mockAccessRepo struct {
	grants map[uuid.UUID][]uuid.UUID
	calls  int
}

func newMockAccessRepo() *mockAccessRepo {
	return &mockAccessRepo{grants: make(map[uuid.UUID][]uuid.UUID)}
}

func (m *mockAccessRepo) ListPatientIDs(_ context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	m.calls++
	return m.grants[accountID], nil
}

func (m *mockAccessRepo) Grant(_ context.Context, accountID, patientID uuid.UUID) error {
	m.grants[accountID] = append(m.grants[accountID], patientID)
	return nil
}

func TestAuthorize(t *testing.T) {
	repo := newMockAccessRepo()
	svc := NewService(repo)

	account := uuid.New()
	allowed := uuid.New()
	other := uuid.New()
	repo.grants[account] = []uuid.UUID{allowed}

	assert.NoError(t, svc.Authorize(context.Background(), account, allowed))

	err := svc.Authorize(context.Background(), account, other)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrAuthorization),
		"a valid token does not grant access to unlinked patients")
}

func TestAuthorizeCachesMembership(t *testing.T) {
	repo := newMockAccessRepo()
	svc := NewService(repo)

	account := uuid.New()
	patient := uuid.New()
	repo.grants[account] = []uuid.UUID{patient}

	require.NoError(t, svc.Authorize(context.Background(), account, patient))
	require.NoError(t, svc.Authorize(context.Background(), account, patient))
	assert.Equal(t, 1, repo.calls, "second check served from cache")
}

func TestGrantInvalidatesCache(t *testing.T) {
	repo := newMockAccessRepo()
	svc := NewService(repo)

	account := uuid.New()
	patient := uuid.New()

	err := svc.Authorize(context.Background(), account, patient)
	require.Error(t, err)

	require.NoError(t, svc.Grant(context.Background(), account, patient))
	assert.NoError(t, svc.Authorize(context.Background(), account, patient),
		"grant takes effect immediately")
}
