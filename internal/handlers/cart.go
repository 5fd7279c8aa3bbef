// internal/handlers/cart.go
package handlers

import (
	"errors"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/middleware"
	"github.com/jyotsnadesigns/storefront-backend/internal/services"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

type CartHandler struct {
	cartService *services.CartService
}

func NewCartHandler(cartService *services.CartService) *CartHandler {
	return &CartHandler{cartService: cartService}
}

type AddItemRequest struct {
	ProductID string `json:"product_id" validate:"required,uuid"`
	Quantity  int    `json:"quantity" validate:"omitempty,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GET /cart
func (h *CartHandler) GetCart(c *gin.Context) {
	state, err := h.cartService.GetCart(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// POST /cart/items
func (h *CartHandler) AddItem(c *gin.Context) {
	var req AddItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	if validationErrors := utils.GetValidationErrors(utils.ValidateStruct(&req)); len(validationErrors) > 0 {
		utils.ValidationErrorResponse(c, validationErrors)
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid product ID", nil)
		return
	}

	quantity := req.Quantity
	if quantity < 1 {
		quantity = 1
	}

	state, err := h.cartService.AddItem(c.Request.Context(), middleware.CartSessionID(c), productID, quantity, req.Size, req.Color)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrProductNotFound):
			utils.NotFoundResponse(c, "product")
		case errors.Is(err, cart.ErrMissingSize), errors.Is(err, cart.ErrMissingColor):
			utils.BadRequestResponse(c, err.Error(), nil)
		default:
			utils.InternalErrorResponse(c, err.Error())
		}
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// PATCH /cart/items/:id
func (h *CartHandler) UpdateItem(c *gin.Context) {
	var req UpdateQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, "Invalid input", err.Error())
		return
	}

	state, err := h.cartService.UpdateQuantity(c.Request.Context(), middleware.CartSessionID(c), c.Param("id"), req.Quantity)
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// DELETE /cart/items/:id
func (h *CartHandler) RemoveItem(c *gin.Context) {
	state, err := h.cartService.RemoveItem(c.Request.Context(), middleware.CartSessionID(c), c.Param("id"))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// DELETE /cart
func (h *CartHandler) ClearCart(c *gin.Context) {
	state, err := h.cartService.Clear(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// POST /cart/toggle
func (h *CartHandler) ToggleCart(c *gin.Context) {
	state, err := h.cartService.Toggle(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

// POST /cart/close
func (h *CartHandler) CloseCart(c *gin.Context) {
	state, err := h.cartService.Close(c.Request.Context(), middleware.CartSessionID(c))
	if err != nil {
		utils.InternalErrorResponse(c, err.Error())
		return
	}

	utils.SuccessResponse(c, cartPayload(state))
}

func cartPayload(state *cart.State) gin.H {
	return gin.H{
		"cart":             state,
		"total_price":      state.TotalPrice(),
		"total_item_count": state.TotalItemCount(),
	}
}
