// internal/handlers/order.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/jyotsnadesigns/storefront-backend/internal/middleware"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
	"github.com/jyotsnadesigns/storefront-backend/internal/services"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

type OrderHandler struct {
	orderService *services.OrderService
	cartService  *services.CartService
}

func NewOrderHandler(orderService *services.OrderService, cartService *services.CartService) *OrderHandler {
	return &OrderHandler{
		orderService: orderService,
		cartService:  cartService,
	}
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// POST /checkout
func (h *OrderHandler) Checkout(c *gin.Context) {
	var customer services.CustomerInfo
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&customer)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	sessionID := middleware.CartSessionID(c)
	state, err := h.cartService.GetCart(c.Request.Context(), sessionID)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	order, err := h.orderService.PlaceOrder(state, customer)
	if err != nil {
		if errors.Is(err, services.ErrEmptyCart) {
			utils.BadRequestResponse(c, err.Error(), nil)
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	// The order holds its own snapshot, so a failed cart clear is not fatal.
	if _, err := h.cartService.Clear(c.Request.Context(), sessionID); err != nil {
		logrus.WithError(err).WithField("session_id", sessionID).Warn("Failed to clear cart after checkout")
	}

	utils.CreatedResponse(c, gin.H{
		"order": order,
	})
}

// GET /admin/orders
func (h *OrderHandler) ListOrders(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	orders, total, err := h.orderService.ListOrders(params)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	result := utils.CreatePaginationResult(orders, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/orders/:id
func (h *OrderHandler) GetOrder(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	order, err := h.orderService.GetOrder(id)
	if err != nil {
		if errors.Is(err, services.ErrOrderNotFound) {
			utils.NotFoundResponse(c, "order")
			return
		}
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}

// PUT /admin/orders/:id/status
func (h *OrderHandler) UpdateStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, "Invalid order ID", nil)
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	order, err := h.orderService.UpdateStatus(id, models.OrderStatus(req.Status))
	if err != nil {
		switch {
		case errors.Is(err, services.ErrOrderNotFound):
			utils.NotFoundResponse(c, "order")
		case errors.Is(err, services.ErrInvalidOrderStatus):
			utils.BadRequestResponse(c, err.Error(), gin.H{"valid_statuses": models.OrderStatuses})
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, gin.H{
		"order": order,
	})
}
