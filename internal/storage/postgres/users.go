package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

type userRepository struct {
	storage *Storage
}

const (
	insertUser = `INSERT INTO users (name, email, password_hash) VALUES ($1, $2, $3) RETURNING id, created_at`
	insertRole = `INSERT INTO user_roles (user_id, role, object_id) VALUES ($1, $2, $3) ON CONFLICT DO NOTHING`
	selectUser = `SELECT id, name, email, password_hash, created_at FROM users`
	selectRole = `SELECT role, object_id FROM user_roles WHERE user_id=$1 ORDER BY id`
	updateUser = `UPDATE users SET email = COALESCE(NULLIF($1, ''), email),
                   password_hash = COALESCE(NULLIF($2, ''), password_hash)
                   WHERE id=$3
                   RETURNING id, name, email, password_hash, created_at`
)

func (r *userRepository) Create(ctx context.Context, user model.User) (*model.User, error) {
	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		if err := tx.QueryRow(ctx, insertUser, user.Name, user.Email, user.PasswordHash).Scan(&user.ID, &user.CreatedAt); err != nil {
			return err
		}
		for _, role := range user.Roles {
			if _, err := tx.Exec(ctx, insertRole, user.ID, string(role.Kind), role.ObjectID); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if isPgCode(err, codeUniqueViolation) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	return &user, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.get(ctx, selectUser+` WHERE email=$1`, email)
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.get(ctx, selectUser+` WHERE id=$1`, id)
}

func (r *userRepository) Update(ctx context.Context, id int64, email, passwordHash string) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, updateUser, email, passwordHash, id).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		if isPgCode(err, codeUniqueViolation) {
			return nil, domainErrors.ErrAlreadyExists
		}
		return nil, err
	}
	if u.Roles, err = loadRoles(ctx, r.storage.pool, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) get(ctx context.Context, query string, arg any) (*model.User, error) {
	var u model.User
	err := r.storage.pool.QueryRow(ctx, query, arg).Scan(&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	if u.Roles, err = loadRoles(ctx, r.storage.pool, u.ID); err != nil {
		return nil, err
	}
	return &u, nil
}

func loadRoles(ctx context.Context, q querier, userID int64) ([]model.Role, error) {
	rows, err := q.Query(ctx, selectRole, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var roles []model.Role
	for rows.Next() {
		var (
			name string
			role model.Role
		)
		if err := rows.Scan(&name, &role.ObjectID); err != nil {
			return nil, err
		}
		if role.Kind, err = model.ParseRoleKind(name); err != nil {
			return nil, err
		}
		roles = append(roles, role)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return roles, nil
}
