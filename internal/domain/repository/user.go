package repository

import (
	"context"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// UserRepository describes persistence operations for users and their roles.
type UserRepository interface {
	Create(ctx context.Context, user model.User) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	GetByID(ctx context.Context, id int64) (*model.User, error)
	Update(ctx context.Context, id int64, email, passwordHash string) (*model.User, error)
}
