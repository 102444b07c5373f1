package router

import (
	"bytes"
	"compress/gzip"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"

	"github.com/suopuwu/jwt-pizza-service/internal/config"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/handlers"
	testhelpers "github.com/suopuwu/jwt-pizza-service/internal/test"
)

func newEngine(facade handlers.PizzaFacade) *gin.Engine {
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	engine := Setup(facade, &config.Config{Version: "test"}, logger)
	gin.SetMode(gin.TestMode)
	return engine
}

func serve(engine *gin.Engine, method, path, token string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)
	return resp
}

func TestSetupRoutes(t *testing.T) {
	facade := testhelpers.PizzaFacadeStub{
		AuthFacadeStub: testhelpers.AuthFacadeStub{Tokens: map[string]*model.User{
			"diner": testhelpers.Diner(),
			"admin": testhelpers.Admin(),
		}},
	}
	engine := newEngine(facade)

	tests := []struct {
		name   string
		method string
		path   string
		token  string
		body   any
		status int
	}{
		{"root", http.MethodGet, "/", "", nil, http.StatusOK},
		{"health", http.MethodGet, "/healthz", "", nil, http.StatusOK},
		{"unknown", http.MethodGet, "/api/nowhere", "", nil, http.StatusNotFound},
		{"register", http.MethodPost, "/api/auth", "", map[string]string{"name": "d", "email": "d@jwt.com", "password": "p"}, http.StatusOK},
		{"login", http.MethodPut, "/api/auth", "", map[string]string{"email": "d@jwt.com", "password": "p"}, http.StatusOK},
		{"logout", http.MethodDelete, "/api/auth", "diner", nil, http.StatusOK},
		{"logout without token", http.MethodDelete, "/api/auth", "", nil, http.StatusUnauthorized},
		{"logout revoked token", http.MethodDelete, "/api/auth", "revoked", nil, http.StatusUnauthorized},
		{"update user", http.MethodPut, "/api/auth/2", "diner", map[string]string{"email": "n@jwt.com"}, http.StatusOK},
		{"update user without token", http.MethodPut, "/api/auth/:lsdkj", "", nil, http.StatusUnauthorized},
		{"franchises", http.MethodGet, "/api/franchise", "", nil, http.StatusOK},
		{"user franchises", http.MethodGet, "/api/franchise/2", "diner", nil, http.StatusOK},
		{"create franchise", http.MethodPost, "/api/franchise", "admin", map[string]any{"name": "p", "admins": []map[string]string{{"email": "a@jwt.com"}}}, http.StatusOK},
		{"create franchise without token", http.MethodPost, "/api/franchise", "", nil, http.StatusUnauthorized},
		{"delete franchise", http.MethodDelete, "/api/franchise/1", "admin", nil, http.StatusOK},
		{"delete unparseable franchise", http.MethodDelete, "/api/franchise/abc", "admin", nil, http.StatusOK},
		{"create store", http.MethodPost, "/api/franchise/1/store", "admin", map[string]string{"name": "SLC"}, http.StatusOK},
		{"delete store", http.MethodDelete, "/api/franchise/1/store/1", "admin", nil, http.StatusOK},
		{"menu", http.MethodGet, "/api/order/menu", "", nil, http.StatusOK},
		{"add menu item", http.MethodPut, "/api/order/menu", "admin", map[string]any{"title": "Student", "price": 0.0001}, http.StatusOK},
		{"orders", http.MethodGet, "/api/order", "diner", nil, http.StatusOK},
		{"orders without token", http.MethodGet, "/api/order", "", nil, http.StatusUnauthorized},
		{"create order", http.MethodPost, "/api/order", "diner", map[string]any{"franchiseId": 1, "storeId": 1, "items": []map[string]any{{"menuId": 1}}}, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := serve(engine, tt.method, tt.path, tt.token, tt.body)
			if resp.Code != tt.status {
				t.Fatalf("expected status %d, got %d: %s", tt.status, resp.Code, resp.Body.String())
			}
		})
	}
}

func TestSetupGzipResponses(t *testing.T) {
	engine := newEngine(testhelpers.PizzaFacadeStub{})

	req := httptest.NewRequest(http.MethodGet, "/api/order/menu", nil)
	req.Header.Set("Accept-Encoding", "gzip")
	resp := httptest.NewRecorder()
	engine.ServeHTTP(resp, req)

	if resp.Header().Get("Content-Encoding") != "gzip" {
		t.Fatalf("expected gzip response, got headers %v", resp.Header())
	}
	reader, err := gzip.NewReader(resp.Body)
	if err != nil {
		t.Fatalf("invalid gzip body: %v", err)
	}
	defer reader.Close()
	var menu []map[string]any
	if err := json.NewDecoder(reader).Decode(&menu); err != nil || len(menu) != 1 {
		t.Fatalf("unexpected menu %v err=%v", menu, err)
	}
}

var _ handlers.PizzaFacade = (*testhelpers.PizzaFacadeStub)(nil)
