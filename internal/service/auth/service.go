package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/carebridge/eldercare-api/internal/model"
	"github.com/carebridge/eldercare-api/internal/repository"
	"github.com/carebridge/eldercare-api/internal/repository/postgres"
	"github.com/carebridge/eldercare-api/pkg/auth"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
	"github.com/carebridge/eldercare-api/pkg/security"
)

const bcryptCost = 10

// invalidCredentials is deliberately identical for unknown email and wrong
// password so responses never leak whether an account exists.
const invalidCredentials = "invalid credentials"

type Service struct {
	users  repository.UserRepository
	hasher security.PasswordHasher
	tokens auth.TokenService
}

func NewService(users repository.UserRepository, tokens auth.TokenService) *Service {
	return &Service{
		users:  users,
		hasher: security.NewBcryptHasher(bcryptCost),
		tokens: tokens,
	}
}

// Register creates an account and issues a token bound to it. A duplicate
// email fails with a conflict and writes nothing.
func (s *Service) Register(ctx context.Context, req *model.RegisterRequest) (*model.AuthResponse, error) {
	if req.Email == "" || req.Password == "" {
		return nil, apperrors.Validation("email and password required")
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	role := req.Role
	if role == "" {
		role = model.RoleFamily
	}

	user := &model.User{
		Base:         model.Base{ID: uuid.New()},
		Email:        req.Email,
		PasswordHash: hash,
		Role:         role,
	}
	if req.FirstName != "" {
		user.FirstName = &req.FirstName
	}
	if req.LastName != "" {
		user.LastName = &req.LastName
	}

	// The unique index is the authority on duplicates; racing registrations
	// both hit it and exactly one row survives.
	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, postgres.ErrDuplicateEmail) {
			return nil, apperrors.Conflict("email already registered")
		}
		return nil, apperrors.Internal(err)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.AuthResponse{Token: token, User: user.PublicProfile()}, nil
}

// Login verifies credentials and issues a fresh token, independent of any
// previously issued one.
func (s *Service) Login(ctx context.Context, email, password string) (*model.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, apperrors.Validation("email and password required")
	}

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, postgres.ErrNotFound) {
			return nil, apperrors.Authentication(invalidCredentials)
		}
		return nil, apperrors.Internal(err)
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		return nil, apperrors.Authentication(invalidCredentials)
	}

	token, err := s.tokens.Generate(user.ID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	return &model.AuthResponse{Token: token, User: user.PublicProfile()}, nil
}

// Verify resolves a bearer token to the account it was issued for. Every
// failure mode collapses to one authorization error.
func (s *Service) Verify(token string) (uuid.UUID, error) {
	accountID, err := s.tokens.Verify(token)
	if err != nil {
		return uuid.Nil, apperrors.Authorization("invalid token")
	}
	return accountID, nil
}
