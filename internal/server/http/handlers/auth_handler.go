package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/middleware"
)

// AuthHandler processes registration, login, logout and profile updates.
type AuthHandler struct {
	facade AuthFacade
	opts   Options
}

// NewAuthHandler creates AuthHandler instance.
func NewAuthHandler(facade AuthFacade, opts Options) *AuthHandler {
	return &AuthHandler{facade: facade, opts: opts}
}

// Register handles POST /api/auth.
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, bindError(err, domainErrors.ErrMissingFields))
		return
	}

	user, token, err := h.facade.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{User: toUserResponse(user), Token: token})
}

// Login handles PUT /api/auth.
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, bindError(err, domainErrors.ErrInvalidCredentials))
		return
	}

	user, token, err := h.facade.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}

	middleware.SetAuthCookie(c, token)
	c.JSON(http.StatusOK, dto.AuthResponse{User: toUserResponse(user), Token: token})
}

// Logout handles DELETE /api/auth.
func (h *AuthHandler) Logout(c *gin.Context) {
	if err := h.facade.Logout(c.Request.Context(), CurrentToken(c)); err != nil {
		h.opts.respondError(c, err)
		return
	}

	middleware.ClearAuthCookie(c)
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "logout successful"})
}

// UpdateUser handles PUT /api/auth/:id.
func (h *AuthHandler) UpdateUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		h.opts.respondError(c, invalidPayload(errBadID))
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, invalidPayload(err))
		return
	}

	user, err := h.facade.UpdateUser(c.Request.Context(), CurrentUser(c), userID, req.Email, req.Password)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, toUserResponse(user))
}
