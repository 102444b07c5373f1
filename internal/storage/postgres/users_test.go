package postgres

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	pgxmockv3 "github.com/pashagolub/pgxmock/v3"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

var userColumns = []string{"id", "name", "email", "password_hash", "created_at"}

func TestUserRepositoryCreate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}
	ctx := context.Background()

	createdAt := time.Now()
	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").WithArgs("pizza diner", "d@jwt.com", "hash").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(1), createdAt),
	)
	mock.ExpectExec("INSERT INTO user_roles").WithArgs(int64(1), "diner", int64(0)).WillReturnResult(pgxmockv3.NewResult("INSERT", 1))
	mock.ExpectCommit()

	user, err := repo.Create(ctx, model.User{
		Name:         "pizza diner",
		Email:        "d@jwt.com",
		PasswordHash: "hash",
		Roles:        []model.Role{{Kind: model.RoleDiner}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 || user.Email != "d@jwt.com" || !user.CreatedAt.Equal(createdAt) {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").WithArgs("pizza diner", "d@jwt.com", "hash").WillReturnError(&pgconn.PgError{Code: "23505"})
	mock.ExpectRollback()
	if _, err := repo.Create(ctx, model.User{Name: "pizza diner", Email: "d@jwt.com", PasswordHash: "hash"}); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists error, got %v", err)
	}

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO users").WithArgs("n", "e", "h").WillReturnRows(
		pgxmockv3.NewRows([]string{"id", "created_at"}).AddRow(int64(2), createdAt),
	)
	mock.ExpectExec("INSERT INTO user_roles").WithArgs(int64(2), "admin", int64(0)).WillReturnError(errors.New("other"))
	mock.ExpectRollback()
	if _, err := repo.Create(ctx, model.User{Name: "n", Email: "e", PasswordHash: "h", Roles: []model.Role{{Kind: model.RoleAdmin}}}); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryGet(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}
	ctx := context.Background()
	createdAt := time.Now()

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email").WithArgs("a@jwt.com").WillReturnRows(
		pgxmockv3.NewRows(userColumns).AddRow(int64(1), "admin", "a@jwt.com", "hash", createdAt))
	mock.ExpectQuery("SELECT role, object_id FROM user_roles").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows([]string{"role", "object_id"}).AddRow("admin", int64(0)).AddRow("franchisee", int64(3)))
	user, err := repo.GetByEmail(ctx, "a@jwt.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !user.HasRole(model.RoleAdmin) || !user.HasScopedRole(model.RoleFranchisee, 3) {
		t.Fatalf("unexpected roles: %+v", user.Roles)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE email").WithArgs("missing").WillReturnError(pgx.ErrNoRows)
	if _, err := repo.GetByEmail(ctx, "missing"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE id").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows(userColumns).AddRow(int64(1), "admin", "a@jwt.com", "hash", createdAt))
	mock.ExpectQuery("SELECT role, object_id FROM user_roles").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows([]string{"role", "object_id"}).AddRow("chef", int64(0)))
	if _, err := repo.GetByID(ctx, 1); err == nil {
		t.Fatal("expected unknown role error")
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE id").WithArgs(int64(2)).WillReturnRows(
		pgxmockv3.NewRows(userColumns).AddRow(int64(2), "d", "d@jwt.com", "hash", createdAt))
	mock.ExpectQuery("SELECT role, object_id FROM user_roles").WithArgs(int64(2)).WillReturnError(errors.New("roles"))
	if _, err := repo.GetByID(ctx, 2); err == nil {
		t.Fatal("expected roles query error")
	}

	mock.ExpectQuery("SELECT id, name, email, password_hash, created_at FROM users WHERE id").WithArgs(int64(3)).WillReturnError(errors.New("boom"))
	if _, err := repo.GetByID(ctx, 3); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}

func TestUserRepositoryUpdate(t *testing.T) {
	storage, mock := newMockStorage(t)
	defer mock.Close()
	repo := &userRepository{storage: storage}
	ctx := context.Background()

	mock.ExpectQuery("UPDATE users SET email").WithArgs("new@jwt.com", "", int64(1)).WillReturnRows(
		pgxmockv3.NewRows(userColumns).AddRow(int64(1), "d", "new@jwt.com", "hash", time.Now()))
	mock.ExpectQuery("SELECT role, object_id FROM user_roles").WithArgs(int64(1)).WillReturnRows(
		pgxmockv3.NewRows([]string{"role", "object_id"}).AddRow("diner", int64(0)))
	user, err := repo.Update(ctx, 1, "new@jwt.com", "")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.Email != "new@jwt.com" || len(user.Roles) != 1 {
		t.Fatalf("unexpected user: %+v", user)
	}

	mock.ExpectQuery("UPDATE users SET email").WithArgs("", "h", int64(9)).WillReturnError(pgx.ErrNoRows)
	if _, err := repo.Update(ctx, 9, "", "h"); !errors.Is(err, domainErrors.ErrNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}

	mock.ExpectQuery("UPDATE users SET email").WithArgs("taken@jwt.com", "", int64(1)).WillReturnError(&pgconn.PgError{Code: "23505"})
	if _, err := repo.Update(ctx, 1, "taken@jwt.com", ""); !errors.Is(err, domainErrors.ErrAlreadyExists) {
		t.Fatalf("expected already exists, got %v", err)
	}

	mock.ExpectQuery("UPDATE users SET email").WithArgs("x", "", int64(1)).WillReturnError(errors.New("boom"))
	if _, err := repo.Update(ctx, 1, "x", ""); err == nil {
		t.Fatal("expected error")
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("expectations not met: %v", err)
	}
}
