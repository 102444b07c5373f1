package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/policy"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/repository"
)

// FranchiseUseCase manages franchises and their stores.
type FranchiseUseCase struct {
	franchises repository.FranchiseRepository
	users      repository.UserRepository
}

// NewFranchiseUseCase constructs FranchiseUseCase.
func NewFranchiseUseCase(franchises repository.FranchiseRepository, users repository.UserRepository) *FranchiseUseCase {
	return &FranchiseUseCase{franchises: franchises, users: users}
}

// List returns every franchise with its stores. Admins additionally see
// franchise admins and store revenue. actor may be nil.
func (u *FranchiseUseCase) List(ctx context.Context, actor *model.User) ([]model.Franchise, error) {
	return u.franchises.List(ctx, policy.RequireRole(actor, model.RoleAdmin))
}

// ListForUser returns franchises administered by userID. Callers other than
// the user themselves or an admin get an empty list.
func (u *FranchiseUseCase) ListForUser(ctx context.Context, actor *model.User, userID int64) ([]model.Franchise, error) {
	if !policy.CanModifyUser(actor, userID) {
		return []model.Franchise{}, nil
	}
	return u.franchises.ListByAdmin(ctx, userID)
}

// Create registers a franchise and grants each admin a franchisee role scoped to it.
func (u *FranchiseUseCase) Create(ctx context.Context, actor *model.User, name string, adminEmails []string) (*model.Franchise, error) {
	if err := policy.Authorize(actor, policy.RequireRole(actor, model.RoleAdmin)); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" || len(adminEmails) == 0 {
		return nil, domainErrors.ErrInvalidPayload
	}

	admins := make([]model.FranchiseAdmin, 0, len(adminEmails))
	seen := make(map[int64]struct{}, len(adminEmails))
	for _, email := range adminEmails {
		email = strings.TrimSpace(email)
		usr, err := u.users.GetByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, domainErrors.ErrNotFound) {
				return nil, fmt.Errorf("%w %s", domainErrors.ErrUnknownAdmin, email)
			}
			return nil, err
		}
		if _, dup := seen[usr.ID]; dup {
			continue
		}
		seen[usr.ID] = struct{}{}
		admins = append(admins, model.FranchiseAdmin{ID: usr.ID, Name: usr.Name, Email: usr.Email})
	}

	return u.franchises.Create(ctx, name, admins)
}

// Delete removes a franchise with its stores and scoped roles. Deleting a
// missing franchise succeeds.
func (u *FranchiseUseCase) Delete(ctx context.Context, actor *model.User, franchiseID int64) error {
	if err := policy.Authorize(actor, policy.RequireRole(actor, model.RoleAdmin)); err != nil {
		return err
	}
	if franchiseID <= 0 {
		return nil
	}
	return u.franchises.Delete(ctx, franchiseID)
}

// CreateStore opens a store in franchiseID.
func (u *FranchiseUseCase) CreateStore(ctx context.Context, actor *model.User, franchiseID int64, name string) (*model.Store, error) {
	if err := policy.Authorize(actor, policy.RequireScopedRole(actor, model.RoleFranchisee, franchiseID)); err != nil {
		return nil, err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainErrors.ErrInvalidPayload
	}

	if _, err := u.franchises.Get(ctx, franchiseID); err != nil {
		if errors.Is(err, domainErrors.ErrNotFound) {
			return nil, domainErrors.ErrInvalidPayload
		}
		return nil, err
	}

	return u.franchises.CreateStore(ctx, franchiseID, name)
}

// DeleteStore closes storeID of franchiseID.
func (u *FranchiseUseCase) DeleteStore(ctx context.Context, actor *model.User, franchiseID, storeID int64) error {
	if err := policy.Authorize(actor, policy.RequireScopedRole(actor, model.RoleFranchisee, franchiseID)); err != nil {
		return err
	}
	return u.franchises.DeleteStore(ctx, franchiseID, storeID)
}
