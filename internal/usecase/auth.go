package usecase

import (
	"context"
	"errors"
	"strings"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/policy"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
	pkgAuth "github.com/suopuwu/jwt-pizza-service/internal/pkg/auth"
)

// AuthUseCase handles user lifecycle and session management.
type AuthUseCase struct {
	users  repository.UserRepository
	hasher pkgAuth.PasswordHasher
	tokens *TokenService
}

// NewAuthUseCase constructs AuthUseCase.
func NewAuthUseCase(users repository.UserRepository, hasher pkgAuth.PasswordHasher, tokens *TokenService) *AuthUseCase {
	return &AuthUseCase{users: users, hasher: hasher, tokens: tokens}
}

// Register creates a diner account and returns it with a fresh token.
func (u *AuthUseCase) Register(ctx context.Context, name, email, password string) (*model.User, string, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if name == "" || email == "" || password == "" {
		return nil, "", domainErrors.ErrMissingFields
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return nil, "", err
	}

	usr, err := u.users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        []model.Role{{Kind: model.RoleDiner}},
	})
	if err != nil {
		return nil, "", err
	}

	token, err := u.tokens.Issue(ctx, usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Login validates credentials and opens a new session. Existing sessions of
// the same user stay valid.
func (u *AuthUseCase) Login(ctx context.Context, email, password string) (*model.User, string, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	usr, err := u.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, "", domainErrors.ErrInvalidCredentials
		}
		return nil, "", err
	}

	if err := u.hasher.Compare(usr.PasswordHash, password); err != nil {
		return nil, "", domainErrors.ErrInvalidCredentials
	}

	token, err := u.tokens.Issue(ctx, usr)
	if err != nil {
		return nil, "", err
	}
	return usr, token, nil
}

// Logout revokes the presented token.
func (u *AuthUseCase) Logout(ctx context.Context, token string) error {
	return u.tokens.Revoke(ctx, token)
}

// Authenticate resolves a token to the acting user.
func (u *AuthUseCase) Authenticate(ctx context.Context, token string) (*model.User, error) {
	return u.tokens.Validate(ctx, token)
}

// UpdateUser changes email and/or password of targetID on behalf of actor.
// Empty fields are left unchanged.
func (u *AuthUseCase) UpdateUser(ctx context.Context, actor *model.User, targetID int64, email, password string) (*model.User, error) {
	if err := policy.Authorize(actor, policy.CanModifyUser(actor, targetID)); err != nil {
		return nil, err
	}

	email = strings.TrimSpace(email)
	if email == "" && password == "" {
		return nil, domainErrors.ErrInvalidPayload
	}

	var hash string
	if password != "" {
		var err error
		if hash, err = u.hasher.Hash(password); err != nil {
			return nil, err
		}
	}

	return u.users.Update(ctx, targetID, email, hash)
}

// BootstrapAdmin makes sure an admin account with email exists. It reports
// whether a new account was created.
func (u *AuthUseCase) BootstrapAdmin(ctx context.Context, name, email, password string) (bool, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return false, nil
	}

	if _, err := u.users.GetByEmail(ctx, email); err == nil {
		return false, nil
	} else if !errors.Is(err, domainErrors.ErrNotFound) {
		return false, err
	}

	hash, err := u.hasher.Hash(password)
	if err != nil {
		return false, err
	}

	_, err = u.users.Create(ctx, model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Roles:        []model.Role{{Kind: model.RoleAdmin}},
	})
	if err != nil {
		if errors.Is(err, domainErrors.ErrAlreadyExists) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
