// internal/models/order.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// OrderItem is the frozen form of one cart line item. Product data is
// copied at checkout; later catalog edits never change a placed order.
type OrderItem struct {
	ProductID     uuid.UUID `json:"product_id"`
	Name          string    `json:"name"`
	Slug          string    `json:"slug"`
	ImageURL      string    `json:"image_url,omitempty"`
	UnitPrice     float64   `json:"unit_price"`
	Currency      string    `json:"currency"`
	Quantity      int       `json:"quantity"`
	SelectedSize  string    `json:"selected_size,omitempty"`
	SelectedColor string    `json:"selected_color,omitempty"`
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}

// OrderItems is stored as a single JSONB cart_details column; an order
// is one row, not a row per line item.
type OrderItems []OrderItem

func (o OrderItems) Value() (driver.Value, error) {
	if o == nil {
		return nil, nil
	}
	return json.Marshal(o)
}

func (o *OrderItems) Scan(value interface{}) error {
	if value == nil {
		*o = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, o)
}

type Order struct {
	ID        uuid.UUID   `json:"id" gorm:"type:uuid;primary_key"`
	Name      string      `json:"name" gorm:"size:255;not null"`
	Phone     string      `json:"phone" gorm:"size:32;not null"`
	Email     string      `json:"email" gorm:"size:255;not null"`
	Address   string      `json:"address" gorm:"type:text;not null"`
	Items     OrderItems  `json:"cart_details" gorm:"type:jsonb;column:cart_details"`
	Status    OrderStatus `json:"status" gorm:"type:varchar(32);default:'Order Placed';index"`
	CreatedAt time.Time   `json:"created_at"`
	UpdatedAt time.Time   `json:"updated_at"`
}

// TotalAmount sums the line totals of the frozen items.
func (o *Order) TotalAmount() float64 {
	var total float64
	for _, item := range o.Items {
		total += item.LineTotal()
	}
	return total
}

// TotalItemCount sums quantities across the frozen items.
func (o *Order) TotalItemCount() int {
	var count int
	for _, item := range o.Items {
		count += item.Quantity
	}
	return count
}
