package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	pkgauth "github.com/carebridge/eldercare-api/pkg/auth"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

type mockUserRepo struct {
	byEmail map[string]*model.User
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{byEmail: make(map[string]*model.User)}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	if _, exists := m.byEmail[user.Email]; exists {
		return postgres.ErrDuplicateEmail
	}
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	m.byEmail[user.Email] = user
	return nil
}

func (m *mockUserRepo) Get(_ context.Context, id uuid.UUID) (*model.User, error) {
	for _, u := range m.byEmail {
		if u.ID == id {
			return u, nil
		}
	}
	return nil, postgres.ErrNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	u, ok := m.byEmail[email]
	if !ok {
		return nil, postgres.ErrNotFound
	}
	return u, nil
}

func newTestService() (*Service, *mockUserRepo) {
	repo := newMockUserRepo()
	return NewService(repo, pkgauth.NewJWTService("test-secret", time.Hour)), repo
}

func TestRegister(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:     "family@example.com",
		Password:  "hunter22",
		FirstName: "Alma",
		LastName:  "Reyes",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "family@example.com", resp.User.Email)
	assert.Equal(t, model.RoleFamily, resp.User.Role, "role defaults to family")

	stored := repo.byEmail["family@example.com"]
	require.NotNil(t, stored)
	assert.NotEqual(t, "hunter22", stored.PasswordHash, "password must be hashed")

	accountID, err := svc.Verify(resp.Token)
	require.NoError(t, err)
	assert.Equal(t, stored.ID, accountID, "token is bound to the new account")
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, repo := newTestService()
	req := &model.RegisterRequest{Email: "dup@example.com", Password: "pw123456"}

	_, err := svc.Register(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.IsCode(err, apperrors.ErrConflict))
	assert.Len(t, repo.byEmail, 1, "exactly one account exists afterward")
}

func TestRegisterMissingFields(t *testing.T) {
	svc, _ := newTestService()

	for _, req := range []*model.RegisterRequest{
		{Email: "", Password: "pw"},
		{Email: "a@b.com", Password: ""},
	} {
		_, err := svc.Register(context.Background(), req)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrValidation))
	}
}

func TestLoginGenericFailure(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "care@example.com",
		Password: "correct-pw",
	})
	require.NoError(t, err)

	_, wrongPw := svc.Login(context.Background(), "care@example.com", "wrong-pw")
	_, unknown := svc.Login(context.Background(), "nobody@example.com", "whatever")

	require.Error(t, wrongPw)
	require.Error(t, unknown)
	// Identical error for unknown email and wrong password.
	assert.Equal(t, wrongPw.Error(), unknown.Error())
	assert.True(t, apperrors.IsCode(wrongPw, apperrors.ErrAuthentication))
	assert.True(t, apperrors.IsCode(unknown, apperrors.ErrAuthentication))
}

func TestLoginReturnsLinkedPatient(t *testing.T) {
	svc, repo := newTestService()

	_, err := svc.Register(context.Background(), &model.RegisterRequest{
		Email:    "linked@example.com",
		Password: "pw123456",
	})
	require.NoError(t, err)

	patientID := uuid.New()
	repo.byEmail["linked@example.com"].PatientID = &patientID

	resp, err := svc.Login(context.Background(), "linked@example.com", "pw123456")
	require.NoError(t, err)
	require.NotNil(t, resp.User.PatientID)
	assert.Equal(t, patientID, *resp.User.PatientID)
}

func TestVerifyRejectsBadTokens(t *testing.T) {
	svc, _ := newTestService()

	for _, token := range []string{"", "garbage", "a.b.c"} {
		_, err := svc.Verify(token)
		assert.True(t, apperrors.IsCode(err, apperrors.ErrAuthorization), "token %q", token)
	}
}
