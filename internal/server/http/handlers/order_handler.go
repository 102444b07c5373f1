package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	domainErrors "github.com/suopuwu/jwt-pizza-service/internal/domain/errors"
	"github.com/suopuwu/jwt-pizza-service/internal/domain/model"
	"github.com/suopuwu/jwt-pizza-service/internal/server/http/dto"
)

const factoryFailureMessage = "Failed to fulfill order at factory"

// OrderHandler manages menu and order endpoints.
type OrderHandler struct {
	facade OrderFacade
	opts   Options
}

// NewOrderHandler constructs OrderHandler.
func NewOrderHandler(facade OrderFacade, opts Options) *OrderHandler {
	return &OrderHandler{facade: facade, opts: opts}
}

// Menu handles GET /api/order/menu.
func (h *OrderHandler) Menu(c *gin.Context) {
	items, err := h.facade.Menu(c.Request.Context())
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(items))
}

// AddMenuItem handles PUT /api/order/menu.
func (h *OrderHandler) AddMenuItem(c *gin.Context) {
	var req dto.MenuItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, invalidPayload(err))
		return
	}

	items, err := h.facade.AddMenuItem(c.Request.Context(), CurrentUser(c), model.MenuItem{
		Title:       req.Title,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
	})
	if err != nil {
		h.opts.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, toMenuResponse(items))
}

// List handles GET /api/order?page=N.
func (h *OrderHandler) List(c *gin.Context) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = 1
	}

	result, err := h.facade.Orders(c.Request.Context(), CurrentUser(c), page)
	if err != nil {
		h.opts.respondError(c, err)
		return
	}

	orders := make([]dto.OrderResponse, 0, len(result.Orders))
	for _, o := range result.Orders {
		orders = append(orders, toOrderResponse(o))
	}
	c.JSON(http.StatusOK, dto.OrderPageResponse{DinerID: result.DinerID, Orders: orders, Page: result.Page})
}

// Create handles POST /api/order.
func (h *OrderHandler) Create(c *gin.Context) {
	var req dto.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.opts.respondError(c, invalidPayload(err))
		return
	}

	order := model.Order{FranchiseID: req.FranchiseID, StoreID: req.StoreID}
	for _, item := range req.Items {
		order.Items = append(order.Items, model.OrderItem{MenuID: item.MenuID, Description: item.Description, Price: item.Price})
	}

	receipt, err := h.facade.CreateOrder(c.Request.Context(), CurrentUser(c), order)
	if err != nil {
		if errors.Is(err, domainErrors.ErrFactoryUnavailable) {
			_ = c.Error(err)
			resp := dto.FactoryErrorResponse{Message: factoryFailureMessage}
			if receipt != nil && receipt.Fulfillment != nil {
				resp.ReportURL = receipt.Fulfillment.ReportURL
			}
			c.JSON(http.StatusInternalServerError, resp)
			return
		}
		h.opts.respondError(c, err)
		return
	}

	resp := dto.CreateOrderResponse{Order: toOrderResponse(receipt.Order)}
	if receipt.Fulfillment != nil {
		resp.JWT = receipt.Fulfillment.JWT
		resp.ReportURL = receipt.Fulfillment.ReportURL
	}
	c.JSON(http.StatusOK, resp)
}
