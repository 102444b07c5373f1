package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/middleware"
)

var errBadID = errors.New("path id must be a positive integer")

// Options tune how handlers report failures.
type Options struct {
	// StrictPayloadStatus reports invalid payloads as 400 instead of 500.
	StrictPayloadStatus bool
}

// CurrentUser extracts authenticated user from context. It is nil for anonymous requests.
func CurrentUser(c *gin.Context) *model.User {
	val, ok := c.Get(middleware.UserContextKey)
	if !ok {
		return nil
	}
	user, _ := val.(*model.User)
	return user
}

// CurrentToken returns the token the request was authenticated with.
func CurrentToken(c *gin.Context) string {
	return c.GetString(middleware.TokenContextKey)
}

// StatusFor maps a domain error to an HTTP status code.
func (o Options) StatusFor(err error) int {
	var tooLarge *http.MaxBytesError
	switch {
	case errors.As(err, &tooLarge):
		return http.StatusRequestEntityTooLarge
	case errors.Is(err, domainErrors.ErrMissingFields):
		return http.StatusBadRequest
	case errors.Is(err, domainErrors.ErrUnauthenticated), errors.Is(err, domainErrors.ErrMalformedToken):
		return http.StatusUnauthorized
	case errors.Is(err, domainErrors.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, domainErrors.ErrInvalidCredentials), errors.Is(err, domainErrors.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, domainErrors.ErrAlreadyExists):
		return http.StatusConflict
	case errors.Is(err, domainErrors.ErrInvalidPayload), errors.Is(err, domainErrors.ErrUnknownAdmin):
		if o.StrictPayloadStatus {
			return http.StatusBadRequest
		}
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (o Options) respondError(c *gin.Context, err error) {
	status := o.StatusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError && !isDomainError(err) {
		message = "internal error"
	}
	_ = c.Error(err)
	c.JSON(status, dto.MessageResponse{Message: message})
}

func isDomainError(err error) bool {
	for _, target := range []error{
		domainErrors.ErrInvalidPayload,
		domainErrors.ErrUnknownAdmin,
		domainErrors.ErrFactoryUnavailable,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// bindError keeps oversized body failures and replaces anything else with fallback.
func bindError(err, fallback error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return invalidPayload(err)
	}
	return fallback
}

func invalidPayload(err error) error {
	return fmt.Errorf("%w: %w", domainErrors.ErrInvalidPayload, err)
}

func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func toUserResponse(user *model.User) dto.UserResponse {
	roles := make([]dto.RoleResponse, 0, len(user.Roles))
	for _, r := range user.Roles {
		roles = append(roles, dto.RoleResponse{Role: string(r.Kind), ObjectID: r.ObjectID})
	}
	return dto.UserResponse{ID: user.ID, Name: user.Name, Email: user.Email, Roles: roles}
}

func toFranchiseResponses(franchises []model.Franchise, detailed bool) []dto.FranchiseResponse {
	out := make([]dto.FranchiseResponse, 0, len(franchises))
	for _, f := range franchises {
		out = append(out, toFranchiseResponse(f, detailed))
	}
	return out
}

func toFranchiseResponse(f model.Franchise, detailed bool) dto.FranchiseResponse {
	resp := dto.FranchiseResponse{ID: f.ID, Name: f.Name, Stores: make([]dto.StoreResponse, 0, len(f.Stores))}
	if detailed {
		resp.Admins = make([]dto.FranchiseAdminResponse, 0, len(f.Admins))
		for _, a := range f.Admins {
			resp.Admins = append(resp.Admins, dto.FranchiseAdminResponse{ID: a.ID, Name: a.Name, Email: a.Email})
		}
	}
	for _, s := range f.Stores {
		store := dto.StoreResponse{ID: s.ID, Name: s.Name}
		if detailed {
			revenue := s.TotalRevenue
			store.TotalRevenue = &revenue
		}
		resp.Stores = append(resp.Stores, store)
	}
	return resp
}

func toMenuResponse(items []model.MenuItem) []dto.MenuItemResponse {
	out := make([]dto.MenuItemResponse, 0, len(items))
	for _, item := range items {
		out = append(out, dto.MenuItemResponse{
			ID:          item.ID,
			Title:       item.Title,
			Description: item.Description,
			Image:       item.Image,
			Price:       item.Price,
		})
	}
	return out
}

func toOrderResponse(order model.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ID:          item.ID,
			MenuID:      item.MenuID,
			Description: item.Description,
			Price:       item.Price,
		})
	}
	return dto.OrderResponse{
		ID:          order.ID,
		FranchiseID: order.FranchiseID,
		StoreID:     order.StoreID,
		Date:        order.Date,
		Items:       items,
	}
}
