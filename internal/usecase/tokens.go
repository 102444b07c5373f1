package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
	pkgAuth "github.com/suopuwu/jwt-pizza-service/internal/pkg/auth"
)

// TokenService issues, validates and revokes session tokens. A token is valid
// only while its signature is present in the session store; the bound user is
// re-read on every validation so role changes apply immediately.
type TokenService struct {
	strategy pkgAuth.Strategy
	sessions repository.TokenRepository
	users    repository.UserRepository
	now      func() time.Time
}

// NewTokenService constructs TokenService.
func NewTokenService(strategy pkgAuth.Strategy, sessions repository.TokenRepository, users repository.UserRepository) *TokenService {
	return &TokenService{strategy: strategy, sessions: sessions, users: users, now: time.Now}
}

// Issue signs a new token for user and records it as valid.
func (s *TokenService) Issue(ctx context.Context, user *model.User) (string, error) {
	if user == nil || user.ID <= 0 {
		return "", fmt.Errorf("issue token: %w", domainErrors.ErrNotFound)
	}

	issued, err := s.strategy.IssueToken(user.ID)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}

	session := model.Session{
		Signature: pkgAuth.SignaturePart(issued.Value),
		UserID:    user.ID,
		IssuedAt:  issued.IssuedAt,
		ExpiresAt: issued.ExpiresAt,
	}
	if err := s.sessions.Save(ctx, session); err != nil {
		return "", fmt.Errorf("save session: %w", err)
	}
	return issued.Value, nil
}

// Validate resolves token to its current user.
func (s *TokenService) Validate(ctx context.Context, token string) (*model.User, error) {
	if !pkgAuth.WellFormed(token) {
		return nil, domainErrors.ErrMalformedToken
	}

	session, err := s.sessions.Lookup(ctx, pkgAuth.SignaturePart(token))
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthenticated
		}
		return nil, err
	}
	if session.Expired(s.now()) {
		return nil, domainErrors.ErrUnauthenticated
	}

	userID, err := s.strategy.ParseToken(token)
	if err != nil || userID != session.UserID {
		return nil, domainErrors.ErrUnauthenticated
	}

	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrUnauthenticated
		}
		return nil, err
	}
	return user, nil
}

// Revoke removes token from the valid-token record. Revoking an unknown or
// already revoked token is not an error.
func (s *TokenService) Revoke(ctx context.Context, token string) error {
	if !pkgAuth.WellFormed(token) {
		return domainErrors.ErrMalformedToken
	}
	return s.sessions.Delete(ctx, pkgAuth.SignaturePart(token))
}

// Sweep drops expired sessions and returns how many were removed.
func (s *TokenService) Sweep(ctx context.Context) (int64, error) {
	return s.sessions.PurgeExpired(ctx, s.now())
}
