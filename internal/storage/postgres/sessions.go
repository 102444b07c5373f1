package postgres

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

type sessionRepository struct {
	storage *Storage
}

func (r *sessionRepository) Save(ctx context.Context, session model.Session) error {
	const query = `INSERT INTO auth_sessions (signature, user_id, issued_at, expires_at) VALUES ($1, $2, $3, $4)
                   ON CONFLICT (signature) DO NOTHING`
	_, err := r.storage.pool.Exec(ctx, query, session.Signature, session.UserID, session.IssuedAt, nullableTime(session.ExpiresAt))
	return err
}

func (r *sessionRepository) Lookup(ctx context.Context, signature string) (*model.Session, error) {
	const query = `SELECT user_id, issued_at, expires_at FROM auth_sessions WHERE signature=$1`
	session := model.Session{Signature: signature}
	var expires pgtype.Timestamptz
	err := r.storage.pool.QueryRow(ctx, query, signature).Scan(&session.UserID, &session.IssuedAt, &expires)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if expires.Valid {
		session.ExpiresAt = expires.Time
	}
	return &session, nil
}

func (r *sessionRepository) Delete(ctx context.Context, signature string) error {
	_, err := r.storage.pool.Exec(ctx, `DELETE FROM auth_sessions WHERE signature=$1`, signature)
	return err
}

func (r *sessionRepository) PurgeExpired(ctx context.Context, now time.Time) (int64, error) {
	tag, err := r.storage.pool.Exec(ctx, `DELETE FROM auth_sessions WHERE expires_at IS NOT NULL AND expires_at <= $1`, now)
	if err != nil {
		return 0, err
	}
	return tag.RowsAffected(), nil
}

func nullableTime(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: !t.IsZero()}
}
