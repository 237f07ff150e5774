package access

import (
	"context"
	"time"

	"github.com/google/uuid"
	gocache "github.com/patrickmn/go-cache"

	"github.com/carebridge/eldercare-api/internal/repository"
	apperrors "github.com/carebridge/eldercare-api/pkg/errors"
)

const (
	cacheTTL     = time.Minute
	cacheCleanup = 5 * time.Minute
)

// Service answers "may this account touch this patient's records". The
// membership set is the account's linked patient plus care-team grants,
// cached briefly so every request does not hit the database.
type Service struct {
	grants repository.PatientAccessRepository
	cache  *gocache.Cache
}

func NewService(grants repository.PatientAccessRepository) *Service {
	return &Service{
		grants: grants,
		cache:  gocache.New(cacheTTL, cacheCleanup),
	}
}

// Authorize returns nil when the account may access the patient, an
// authorization error otherwise.
func (s *Service) Authorize(ctx context.Context, accountID, patientID uuid.UUID) error {
	ids, err := s.patientIDs(ctx, accountID)
	if err != nil {
		return apperrors.Internal(err)
	}
	for _, id := range ids {
		if id == patientID {
			return nil
		}
	}
	return apperrors.Authorization("no access to this patient")
}

// Grant adds a care-team grant and drops the account's cached set so the
// grant takes effect immediately.
func (s *Service) Grant(ctx context.Context, accountID, patientID uuid.UUID) error {
	if err := s.grants.Grant(ctx, accountID, patientID); err != nil {
		return apperrors.Internal(err)
	}
	s.cache.Delete(accountID.String())
	return nil
}

func (s *Service) patientIDs(ctx context.Context, accountID uuid.UUID) ([]uuid.UUID, error) {
	key := accountID.String()
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]uuid.UUID), nil
	}

	ids, err := s.grants.ListPatientIDs(ctx, accountID)
	if err != nil {
		return nil, err
	}
	s.cache.Set(key, ids, gocache.DefaultExpiration)
	return ids, nil
}
