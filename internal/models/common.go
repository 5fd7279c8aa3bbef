// internal/models/common.go
package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// Enums
type OrderStatus string

const (
	OrderStatusPlaced          OrderStatus = "Order Placed"
	OrderStatusProcessStarted  OrderStatus = "Process Started"
	OrderStatusProcessDone     OrderStatus = "Process Done"
	OrderStatusDeliveryStarted OrderStatus = "Delivery Started"
	OrderStatusDeliveryDone    OrderStatus = "Delivery Done"
)

// OrderStatuses lists every status the orders dashboard may set, in
// fulfillment order. Any status may be written from any other; only
// membership in this set is checked.
var OrderStatuses = []OrderStatus{
	OrderStatusPlaced,
	OrderStatusProcessStarted,
	OrderStatusProcessDone,
	OrderStatusDeliveryStarted,
	OrderStatusDeliveryDone,
}

func (s OrderStatus) Valid() bool {
	for _, known := range OrderStatuses {
		if s == known {
			return true
		}
	}
	return false
}

type SortOption string

const (
	SortPriceAsc   SortOption = "price-asc"
	SortPriceDesc  SortOption = "price-desc"
	SortNewest     SortOption = "newest"
	SortPopularity SortOption = "popularity"
)
