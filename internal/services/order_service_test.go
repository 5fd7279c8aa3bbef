// internal/services/order_service_test.go
package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

func validCustomer() CustomerInfo {
	return CustomerInfo{
		FullName: "Asha Rao",
		Phone:    "+919876543210",
		Email:    "asha@example.com",
		Address:  "12 Gandhi Road, Bengaluru, Karnataka 560001",
	}
}

func cartWithItems() *cart.State {
	discounted := 1500.0
	kurta := models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Kurta",
		Slug:      "kurta",
		Price:     2000,
		Currency:  "INR",
		Images: []models.ProductImage{
			{URL: "https://cdn.example.com/kurta-side.jpg", SortOrder: 2},
			{URL: "https://cdn.example.com/kurta-front.jpg", IsPrimary: true, SortOrder: 1},
		},
	}
	kurta.DiscountedPrice = &discounted

	scarf := models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Silk Scarf",
		Slug:      "silk-scarf",
		Price:     999,
		Currency:  "INR",
	}

	state := cart.NewState()
	state.Apply(cart.Action{Type: cart.AddItem, Product: scarf, Quantity: 2, SelectedSize: "M"})
	state.Apply(cart.Action{Type: cart.AddItem, Product: kurta, Quantity: 1, SelectedColor: "Indigo"})
	return state
}

func TestAssembleOrderSnapshotsCart(t *testing.T) {
	state := cartWithItems()

	order, err := AssembleOrder(state, validCustomer())
	require.NoError(t, err)

	assert.NotEqual(t, uuid.Nil, order.ID)
	assert.Equal(t, models.OrderStatusPlaced, order.Status)
	assert.Equal(t, "Asha Rao", order.Name)
	require.Len(t, order.Items, 2)

	scarf := order.Items[0]
	assert.Equal(t, "Silk Scarf", scarf.Name)
	assert.Equal(t, 999.0, scarf.UnitPrice)
	assert.Equal(t, 2, scarf.Quantity)
	assert.Equal(t, "M", scarf.SelectedSize)

	kurta := order.Items[1]
	assert.Equal(t, 1500.0, kurta.UnitPrice, "snapshot must carry the discounted price")
	assert.Equal(t, "Indigo", kurta.SelectedColor)
	assert.Equal(t, "https://cdn.example.com/kurta-front.jpg", kurta.ImageURL)

	assert.InDelta(t, 999*2+1500, order.TotalAmount(), 0.001)
	assert.Equal(t, 3, order.TotalItemCount())
}

func TestAssembleOrderSnapshotIsIndependentOfCart(t *testing.T) {
	state := cartWithItems()

	order, err := AssembleOrder(state, validCustomer())
	require.NoError(t, err)

	state.Apply(cart.Action{Type: cart.ClearCart})

	assert.Len(t, order.Items, 2)
	assert.Equal(t, 2, order.Items[0].Quantity)
}

func TestAssembleOrderEmptyCart(t *testing.T) {
	_, err := AssembleOrder(cart.NewState(), validCustomer())
	assert.ErrorIs(t, err, ErrEmptyCart)

	_, err = AssembleOrder(nil, validCustomer())
	assert.ErrorIs(t, err, ErrEmptyCart)
}

func TestAssembleOrderValidatesCustomer(t *testing.T) {
	state := cartWithItems()

	tests := []struct {
		name   string
		mutate func(*CustomerInfo)
	}{
		{"missing name", func(c *CustomerInfo) { c.FullName = "" }},
		{"missing phone", func(c *CustomerInfo) { c.Phone = "" }},
		{"bad phone", func(c *CustomerInfo) { c.Phone = "not-a-phone" }},
		{"bad email", func(c *CustomerInfo) { c.Email = "not-an-email" }},
		{"short address", func(c *CustomerInfo) { c.Address = "nowhere" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customer := validCustomer()
			tt.mutate(&customer)

			_, err := AssembleOrder(state, customer)
			assert.Error(t, err)
		})
	}
}

func TestAssembleOrderTrimsContactFields(t *testing.T) {
	customer := validCustomer()
	customer.FullName = "  Asha Rao  "
	customer.Email = " asha@example.com "

	order, err := AssembleOrder(cartWithItems(), customer)
	require.NoError(t, err)

	assert.Equal(t, "Asha Rao", order.Name)
	assert.Equal(t, "asha@example.com", order.Email)
}

func TestOrderStatusValid(t *testing.T) {
	for _, status := range models.OrderStatuses {
		assert.True(t, status.Valid(), string(status))
	}
	assert.False(t, models.OrderStatus("Shipped").Valid())
	assert.False(t, models.OrderStatus("").Valid())
}
