package repository

import (
	"context"
	"time"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

// TokenRepository is the valid-token record. Lookup returns ErrNotFound for
// unknown signatures; Delete is idempotent.
type TokenRepository interface {
	Save(ctx context.Context, session model.Session) error
	Lookup(ctx context.Context, signature string) (*model.Session, error)
	Delete(ctx context.Context, signature string) error
	PurgeExpired(ctx context.Context, now time.Time) (int64, error)
}
