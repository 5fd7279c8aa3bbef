// internal/models/order_test.go
package models

import (
	"encoding/json"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItems() OrderItems {
	return OrderItems{
		{ProductID: uuid.New(), Name: "Silk Scarf", UnitPrice: 999, Currency: "INR", Quantity: 2, SelectedSize: "M"},
		{ProductID: uuid.New(), Name: "Kurta", UnitPrice: 1500, Currency: "INR", Quantity: 1, SelectedColor: "Indigo"},
	}
}

func TestOrderTotals(t *testing.T) {
	order := &Order{Items: sampleItems()}

	assert.InDelta(t, 999*2+1500, order.TotalAmount(), 0.001)
	assert.Equal(t, 3, order.TotalItemCount())

	empty := &Order{}
	assert.Zero(t, empty.TotalAmount())
	assert.Zero(t, empty.TotalItemCount())
}

func TestOrderItemsValueScanRoundTrip(t *testing.T) {
	items := sampleItems()

	value, err := items.Value()
	require.NoError(t, err)

	var loaded OrderItems
	require.NoError(t, loaded.Scan(value))

	require.Len(t, loaded, 2)
	assert.Equal(t, items[0].ProductID, loaded[0].ProductID)
	assert.Equal(t, "M", loaded[0].SelectedSize)
	assert.Equal(t, 1500.0, loaded[1].UnitPrice)
}

func TestOrderItemsScanNil(t *testing.T) {
	var items OrderItems
	require.NoError(t, items.Scan(nil))
	assert.Nil(t, items)
}

func TestOrderItemsNilValue(t *testing.T) {
	var items OrderItems
	value, err := items.Value()
	require.NoError(t, err)
	assert.Nil(t, value)
}

func TestOrderJSONUsesCartDetails(t *testing.T) {
	order := &Order{ID: uuid.New(), Name: "Asha", Items: sampleItems(), Status: OrderStatusPlaced}

	raw, err := json.Marshal(order)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Contains(t, decoded, "cart_details")
	assert.Equal(t, string(OrderStatusPlaced), decoded["status"])
}
