package router

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"
	"testing"
	"time"

	"github.com/suopuwu/jwt-pizza-service/internal/app"
	pkgAuth "github.com/suopuwu/jwt-pizza-service/internal/pkg/auth"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
	testhelpers "github.com/suopuwu/jwt-pizza-service/internal/test"
	"github.com/suopuwu/jwt-pizza-service/internal/usecase"
)

type healthyDB struct{}

func (healthyDB) HealthCheck(context.Context) error { return nil }

func decodeBody[T any](t *testing.T, data []byte) T {
	t.Helper()
	var out T
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("failed to decode %q: %v", data, err)
	}
	return out
}

func newFlowFacade() *app.PizzaFacade {
	users := testhelpers.NewUserRepositoryStub()
	sessions := testhelpers.NewTokenRepositoryStub()
	franchises := testhelpers.NewFranchiseRepositoryStub()

	tokens := usecase.NewTokenService(pkgAuth.NewJWTStrategy("flow-secret", pkgAuth.Options{TTL: time.Hour}), sessions, users)
	authUC := usecase.NewAuthUseCase(users, testhelpers.HasherStub{}, tokens)
	franchiseUC := usecase.NewFranchiseUseCase(franchises, users)
	orderUC := usecase.NewOrderUseCase(&testhelpers.MenuRepositoryStub{}, &testhelpers.OrderRepositoryStub{}, franchises, &testhelpers.FulfillerStub{})
	return app.NewPizzaFacade(authUC, franchiseUC, orderUC, tokens, healthyDB{}, sessions)
}

func TestAuthFlowRevokesTokenOnLogout(t *testing.T) {
	engine := newEngine(newFlowFacade())
	credentials := map[string]string{"name": "pizza diner", "email": "d@jwt.com", "password": "diner"}

	resp := serve(engine, http.MethodPost, "/api/auth", "", credentials)
	if resp.Code != http.StatusOK {
		t.Fatalf("register: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	registered := decodeBody[dto.AuthResponse](t, resp.Body.Bytes())
	if parts := strings.Split(registered.Token, "."); len(parts) != 3 {
		t.Fatalf("expected a three segment token, got %q", registered.Token)
	}
	if roles := registered.User.Roles; len(roles) != 1 || roles[0].Role != "diner" {
		t.Fatalf("expected diner role, got %+v", roles)
	}

	resp = serve(engine, http.MethodPut, "/api/auth", "", map[string]string{"email": "d@jwt.com", "password": "diner"})
	if resp.Code != http.StatusOK {
		t.Fatalf("login: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}
	loggedIn := decodeBody[dto.AuthResponse](t, resp.Body.Bytes())
	if loggedIn.Token == registered.Token {
		t.Fatal("expected login to issue a new token")
	}

	resp = serve(engine, http.MethodDelete, "/api/auth", registered.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("logout: expected 200, got %d: %s", resp.Code, resp.Body.String())
	}

	resp = serve(engine, http.MethodDelete, "/api/auth", registered.Token, nil)
	if resp.Code != http.StatusUnauthorized {
		t.Fatalf("second logout: expected 401, got %d", resp.Code)
	}
	if body := decodeBody[dto.MessageResponse](t, resp.Body.Bytes()); body.Message != "unauthorized" {
		t.Fatalf("unexpected message %q", body.Message)
	}

	resp = serve(engine, http.MethodDelete, "/api/auth", loggedIn.Token, nil)
	if resp.Code != http.StatusOK {
		t.Fatalf("other session should survive logout, got %d", resp.Code)
	}

	resp = serve(engine, http.MethodPut, "/api/auth", "", map[string]string{"email": "d@jwt.com", "password": "wrong"})
	if resp.Code != http.StatusNotFound {
		t.Fatalf("bad login: expected 404, got %d", resp.Code)
	}
}
