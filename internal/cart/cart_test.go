// internal/cart/cart_test.go
package cart

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

func newTestProduct(name string, price float64) models.Product {
	return models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      name,
		Price:     price,
		Currency:  "INR",
	}
}

func TestApplyAddItemAppendsNewLine(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)

	state.Apply(Action{Type: AddItem, Product: product, Quantity: 2, SelectedSize: "M", SelectedColor: "Red"})

	require.Len(t, state.Items, 1)
	item := state.Items[0]
	assert.Equal(t, LineItemID(product.ID, "M", "Red"), item.ID)
	assert.Equal(t, 2, item.Quantity)
	assert.Equal(t, "M", item.SelectedSize)
	assert.Equal(t, "Red", item.SelectedColor)
}

func TestApplyAddItemMergesSameConfiguration(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)

	state.Apply(Action{Type: AddItem, Product: product, Quantity: 2, SelectedSize: "M", SelectedColor: "Red"})
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 3, SelectedSize: "M", SelectedColor: "Red"})

	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestApplyAddItemDistinctVariantsAreDistinctLines(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)

	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1, SelectedSize: "M", SelectedColor: "Red"})
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1, SelectedSize: "L", SelectedColor: "Red"})
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1, SelectedSize: "M", SelectedColor: "Blue"})

	assert.Len(t, state.Items, 3)
}

func TestApplyRemoveItem(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1, SelectedSize: "M"})
	id := state.Items[0].ID

	state.Apply(Action{Type: RemoveItem, LineItemID: id})

	assert.Empty(t, state.Items)
}

func TestApplyRemoveMissingItemIsNoOp(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1})

	state.Apply(Action{Type: RemoveItem, LineItemID: "nonexistent"})

	assert.Len(t, state.Items, 1)
}

func TestApplyUpdateQuantitySetsVerbatim(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 3})
	id := state.Items[0].ID

	state.Apply(Action{Type: UpdateQuantity, LineItemID: id, Quantity: 7})
	assert.Equal(t, 7, state.Items[0].Quantity)

	// A zero quantity is stored as-is; removal is a separate action.
	state.Apply(Action{Type: UpdateQuantity, LineItemID: id, Quantity: 0})
	assert.Equal(t, 0, state.Items[0].Quantity)
}

func TestApplyUpdateQuantityMissingItemIsNoOp(t *testing.T) {
	state := NewState()

	state.Apply(Action{Type: UpdateQuantity, LineItemID: "nonexistent", Quantity: 5})

	assert.Empty(t, state.Items)
}

func TestApplyClearCart(t *testing.T) {
	state := NewState()
	state.Apply(Action{Type: AddItem, Product: newTestProduct("A", 100), Quantity: 1})
	state.Apply(Action{Type: ToggleCart})

	state.Apply(Action{Type: ClearCart})

	assert.Empty(t, state.Items)
	assert.True(t, state.IsOpen, "clearing the cart must not touch the panel flag")
}

func TestApplyToggleAndClose(t *testing.T) {
	state := NewState()

	state.Apply(Action{Type: ToggleCart})
	assert.True(t, state.IsOpen)

	state.Apply(Action{Type: ToggleCart})
	assert.False(t, state.IsOpen)

	state.Apply(Action{Type: ToggleCart})
	state.Apply(Action{Type: CloseCart})
	assert.False(t, state.IsOpen)

	state.Apply(Action{Type: CloseCart})
	assert.False(t, state.IsOpen, "close is idempotent")
}

func TestApplyUnknownActionIsNoOp(t *testing.T) {
	state := NewState()
	state.Apply(Action{Type: AddItem, Product: newTestProduct("A", 100), Quantity: 2})

	state.Apply(Action{Type: ActionType("SOMETHING_ELSE")})

	assert.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
}

func TestTotalPriceUsesEffectivePrice(t *testing.T) {
	state := NewState()

	scarf := newTestProduct("Silk Scarf", 999)
	discounted := 1500.0
	kurta := newTestProduct("Kurta", 2000)
	kurta.DiscountedPrice = &discounted

	state.Apply(Action{Type: AddItem, Product: scarf, Quantity: 2})
	state.Apply(Action{Type: AddItem, Product: kurta, Quantity: 1})

	assert.InDelta(t, 999*2+1500, state.TotalPrice(), 0.001)
	assert.Equal(t, 3, state.TotalItemCount())
}

func TestTotalsOnEmptyCart(t *testing.T) {
	state := NewState()

	assert.Zero(t, state.TotalPrice())
	assert.Zero(t, state.TotalItemCount())
}

func TestFindItem(t *testing.T) {
	state := NewState()
	product := newTestProduct("Silk Scarf", 999)
	state.Apply(Action{Type: AddItem, Product: product, Quantity: 1, SelectedSize: "S"})

	found := state.FindItem(LineItemID(product.ID, "S", ""))
	require.NotNil(t, found)
	assert.Equal(t, product.Name, found.Product.Name)

	assert.Nil(t, state.FindItem("missing"))
}
