package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
)

// FranchiseHandler manages franchise and store endpoints.
type FranchiseHandler struct {
	facade FranchiseFacade
	opts   Options
}

// NewFranchiseHandler constructs FranchiseHandler.
func NewFranchiseHandler(facade FranchiseFacade, opts Options) *FranchiseHandler {
	return &FranchiseHandler{facade: facade, opts: opts}
}

// List handles GET /api/franchise.
func (h *FranchiseHandler) List(c *gin.Context) {
	actor := CurrentUser(c)
	franchises, err := h.facade.Franchises(c.Request.Context(), actor)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFranchiseResponses(franchises, actor.HasRole(model.RoleAdmin)))
}

// ListForUser handles GET /api/franchise/:id where id is a user.
func (h *FranchiseHandler) ListForUser(c *gin.Context) {
	userID, ok := pathID(c, "id")
	if !ok {
		c.JSON(http.StatusOK, []dto.FranchiseResponse{})
		return
	}

	franchises, err := h.facade.UserFranchises(c.Request.Context(), CurrentUser(c), userID)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFranchiseResponses(franchises, true))
}

// Create handles POST /api/franchise.
func (h *FranchiseHandler) Create(c *gin.Context) {
	var req dto.CreateFranchiseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, invalidPayload(err))
		return
	}

	emails := make([]string, 0, len(req.Admins))
	for _, admin := range req.Admins {
		if email := strings.TrimSpace(admin.Email); email != "" {
			emails = append(emails, email)
		}
	}

	franchise, err := h.facade.CreateFranchise(c.Request.Context(), CurrentUser(c), req.Name, emails)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toFranchiseResponse(*franchise, true))
}

// Delete handles DELETE /api/franchise/:id.
func (h *FranchiseHandler) Delete(c *gin.Context) {
	// An unparseable id names no franchise; deletion stays idempotent.
	franchiseID, _ := pathID(c, "id")

	if err := h.facade.DeleteFranchise(c.Request.Context(), CurrentUser(c), franchiseID); err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "franchise deleted"})
}

// CreateStore handles POST /api/franchise/:id/store.
func (h *FranchiseHandler) CreateStore(c *gin.Context) {
	franchiseID, ok := pathID(c, "id")
	if !ok {
		h.opts.respondError(c, invalidPayload(errBadID))
		return
	}

	var req dto.CreateStoreRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, invalidPayload(err))
		return
	}

	store, err := h.facade.CreateStore(c.Request.Context(), CurrentUser(c), franchiseID, req.Name)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.StoreResponse{ID: store.ID, FranchiseID: store.FranchiseID, Name: store.Name})
}

// DeleteStore handles DELETE /api/franchise/:id/store/:storeId.
func (h *FranchiseHandler) DeleteStore(c *gin.Context) {
	franchiseID, ok := pathID(c, "id")
	if !ok {
		h.opts.respondError(c, invalidPayload(errBadID))
		return
	}
	storeID, ok := pathID(c, "storeId")
	if !ok {
		h.opts.respondError(c, invalidPayload(errBadID))
		return
	}

	if err := h.facade.DeleteStore(c.Request.Context(), CurrentUser(c), franchiseID, storeID); err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "store deleted"})
}
