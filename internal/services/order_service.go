// internal/services/order_service.go
package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrOrderNotFound      = errors.New("order not found")
	ErrInvalidOrderStatus = errors.New("unknown order status")
)

type CustomerInfo struct {
	FullName string `json:"full_name" validate:"required,min=2,max=255"`
	Phone    string `json:"phone" validate:"required,phone"`
	Email    string `json:"email" validate:"required,email"`
	Address  string `json:"address" validate:"required,min=10"`
}

// AssembleOrder freezes the cart into an immutable order snapshot. Line
// items are copied by value so later cart mutations never reach a placed
// order. The cart must be non-empty and all contact fields present.
func AssembleOrder(state *cart.State, customer CustomerInfo) (*models.Order, error) {
	if state == nil || len(state.Items) == 0 {
		return nil, ErrEmptyCart
	}

	if err := utils.ValidateStruct(&customer); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	items := make(models.OrderItems, 0, len(state.Items))
	for i := range state.Items {
		li := &state.Items[i]
		item := models.OrderItem{
			ProductID:     li.Product.ID,
			Name:          li.Product.Name,
			Slug:          li.Product.Slug,
			UnitPrice:     li.UnitPrice(),
			Currency:      li.Product.Currency,
			Quantity:      li.Quantity,
			SelectedSize:  li.SelectedSize,
			SelectedColor: li.SelectedColor,
		}
		if img := li.Product.PrimaryImage(); img != nil {
			item.ImageURL = img.URL
		}
		items = append(items, item)
	}

	now := time.Now()
	return &models.Order{
		ID:        uuid.New(),
		Name:      strings.TrimSpace(customer.FullName),
		Phone:     strings.TrimSpace(customer.Phone),
		Email:     strings.TrimSpace(customer.Email),
		Address:   strings.TrimSpace(customer.Address),
		Items:     items,
		Status:    models.OrderStatusPlaced,
		CreatedAt: now,
		UpdatedAt: now,
	}, nil
}

// OrderService persists order snapshots and drives the administrative
// orders dashboard.
type OrderService struct {
	db            *gorm.DB
	notifications *NotificationService
}

func NewOrderService(db *gorm.DB, notifications *NotificationService) *OrderService {
	return &OrderService{
		db:            db,
		notifications: notifications,
	}
}

// PlaceOrder assembles and stores the order, then fires the customer and
// admin notifications without waiting for them. A notification failure
// never un-places an order; it is logged and forgotten.
func (s *OrderService) PlaceOrder(state *cart.State, customer CustomerInfo) (*models.Order, error) {
	order, err := AssembleOrder(state, customer)
	if err != nil {
		return nil, err
	}

	if err := s.db.Create(order).Error; err != nil {
		return nil, fmt.Errorf("failed to create order: %w", err)
	}

	if s.notifications != nil {
		go s.notifications.NotifyOrderPlaced(order)
	}

	return order, nil
}

func (s *OrderService) GetOrder(id uuid.UUID) (*models.Order, error) {
	var order models.Order
	if err := s.db.First(&order, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOrderNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &order, nil
}

func (s *OrderService) ListOrders(params utils.PaginationParams) ([]models.Order, int64, error) {
	var total int64
	if err := s.db.Model(&models.Order{}).Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count orders: %w", err)
	}

	var orders []models.Order
	err := s.db.
		Order("created_at DESC").
		Offset((params.Page - 1) * params.Limit).
		Limit(params.Limit).
		Find(&orders).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to fetch orders: %w", err)
	}

	return orders, total, nil
}

// UpdateStatus writes the given status. Any status may follow any other;
// only membership in the canonical set is checked.
func (s *OrderService) UpdateStatus(id uuid.UUID, status models.OrderStatus) (*models.Order, error) {
	if !status.Valid() {
		return nil, ErrInvalidOrderStatus
	}

	order, err := s.GetOrder(id)
	if err != nil {
		return nil, err
	}

	if order.Status == status {
		return order, nil
	}

	if err := s.db.Model(order).Update("status", status).Error; err != nil {
		return nil, fmt.Errorf("failed to update order status: %w", err)
	}

	logrus.WithFields(logrus.Fields{
		"order_id": id,
		"status":   status,
	}).Info("Order status updated")

	order.Status = status
	return order, nil
}
