package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
)

const (
	// UserContextKey is a gin context key for the authenticated *model.User.
	UserContextKey = "user"
	// TokenContextKey is a gin context key for the raw token the user authenticated with.
	TokenContextKey = "token"
	authCookieName  = "pizza_token"
)

// Authenticator resolves a token to the user it was issued to.
type Authenticator interface {
	Authenticate(ctx context.Context, token string) (*model.User, error)
}

// AuthRequired rejects requests without a valid token.
func AuthRequired(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			abortUnauthorized(c)
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		if err != nil {
			if isAuthFailure(err) {
				abortUnauthorized(c)
				return
			}
			abortInternal(c, err)
			return
		}

		c.Set(UserContextKey, user)
		c.Set(TokenContextKey, token)
		c.Next()
	}
}

// AuthOptional attaches the user when a valid token is present and lets anonymous requests through.
func AuthOptional(auth Authenticator) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			c.Next()
			return
		}

		user, err := auth.Authenticate(c.Request.Context(), token)
		switch {
		case err == nil:
			c.Set(UserContextKey, user)
			c.Set(TokenContextKey, token)
		case !isAuthFailure(err):
			abortInternal(c, err)
			return
		}
		c.Next()
	}
}

func isAuthFailure(err error) bool {
	return errors.Is(err, domainErrors.ErrUnauthenticated) || errors.Is(err, domainErrors.ErrMalformedToken)
}

func abortUnauthorized(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": domainErrors.ErrUnauthenticated.Error()})
}

// abortInternal records err for the request logger and hides it from the client.
func abortInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "internal error"})
}

func extractToken(c *gin.Context) string {
	authHeader := strings.TrimSpace(c.GetHeader("Authorization"))
	if strings.HasPrefix(strings.ToLower(authHeader), "bearer ") {
		return strings.TrimSpace(authHeader[7:])
	}
	if authHeader != "" {
		return authHeader
	}

	if cookie, err := c.Cookie(authCookieName); err == nil {
		return cookie
	}
	return ""
}

// SetAuthCookie writes auth token cookie to response.
func SetAuthCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteStrictMode)
	c.SetCookie(authCookieName, token, 0, "/", "", false, true)
	c.Header("Authorization", "Bearer "+token)
}

// ClearAuthCookie expires the auth cookie.
func ClearAuthCookie(c *gin.Context) {
	c.SetCookie(authCookieName, "", -1, "/", "", false, true)
}
