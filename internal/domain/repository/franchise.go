package repository

import (
	"context"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// FranchiseRepository manages franchises, their admins and stores.
type FranchiseRepository interface {
	List(ctx context.Context, withDetails bool) ([]model.Franchise, error)
	ListByAdmin(ctx context.Context, userID int64) ([]model.Franchise, error)
	Get(ctx context.Context, id int64) (*model.Franchise, error)
	Create(ctx context.Context, name string, admins []model.FranchiseAdmin) (*model.Franchise, error)
	Delete(ctx context.Context, id int64) error
	CreateStore(ctx context.Context, franchiseID int64, name string) (*model.Store, error)
	DeleteStore(ctx context.Context, franchiseID, storeID int64) error
}
