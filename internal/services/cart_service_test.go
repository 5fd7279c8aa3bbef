// internal/services/cart_service_test.go
package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

// fakeCatalog backs the cart with a fixed set of products.
type fakeCatalog struct {
	products map[uuid.UUID]*models.Product
}

func (f *fakeCatalog) GetProduct(id uuid.UUID) (*models.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, ErrProductNotFound
	}
	return p, nil
}

func newCartFixture() (*CartService, *models.Product, *models.Product) {
	plain := &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Silk Scarf",
		Price:     999,
		Currency:  "INR",
	}
	sized := &models.Product{
		BaseModel: models.BaseModel{ID: uuid.New()},
		Name:      "Kurta",
		Price:     2000,
		Currency:  "INR",
		Sizes:     pq.StringArray{"S", "M", "L"},
	}

	catalog := &fakeCatalog{products: map[uuid.UUID]*models.Product{
		plain.ID: plain,
		sized.ID: sized,
	}}
	svc := NewCartService(cart.NewMemoryStore(time.Hour), catalog)
	return svc, plain, sized
}

func TestCartServiceAddItem(t *testing.T) {
	svc, plain, _ := newCartFixture()
	ctx := context.Background()

	state, err := svc.AddItem(ctx, "s1", plain.ID, 2, "", "")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 2, state.Items[0].Quantity)
	assert.Equal(t, plain.Name, state.Items[0].Product.Name)

	// Same configuration merges
	state, err = svc.AddItem(ctx, "s1", plain.ID, 3, "", "")
	require.NoError(t, err)
	require.Len(t, state.Items, 1)
	assert.Equal(t, 5, state.Items[0].Quantity)
}

func TestCartServiceAddItemUnknownProduct(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.AddItem(context.Background(), "s1", uuid.New(), 1, "", "")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestCartServiceAddItemRequiresVariantSelection(t *testing.T) {
	svc, _, sized := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", sized.ID, 1, "", "")
	assert.ErrorIs(t, err, cart.ErrMissingSize)

	// Nothing was saved
	state, err := svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	state, err = svc.AddItem(ctx, "s1", sized.ID, 1, "M", "")
	require.NoError(t, err)
	assert.Len(t, state.Items, 1)
}

func TestCartServiceAddItemNormalizesQuantity(t *testing.T) {
	svc, plain, _ := newCartFixture()

	state, err := svc.AddItem(context.Background(), "s1", plain.ID, 0, "", "")
	require.NoError(t, err)
	assert.Equal(t, 1, state.Items[0].Quantity)
}

func TestCartServiceUpdateQuantity(t *testing.T) {
	svc, plain, _ := newCartFixture()
	ctx := context.Background()

	state, err := svc.AddItem(ctx, "s1", plain.ID, 2, "", "")
	require.NoError(t, err)
	id := state.Items[0].ID

	state, err = svc.UpdateQuantity(ctx, "s1", id, 7)
	require.NoError(t, err)
	assert.Equal(t, 7, state.Items[0].Quantity)
}

func TestCartServiceUpdateQuantityZeroRemovesLine(t *testing.T) {
	svc, plain, _ := newCartFixture()
	ctx := context.Background()

	state, err := svc.AddItem(ctx, "s1", plain.ID, 2, "", "")
	require.NoError(t, err)
	id := state.Items[0].ID

	state, err = svc.UpdateQuantity(ctx, "s1", id, 0)
	require.NoError(t, err)
	assert.Empty(t, state.Items)

	state, err = svc.AddItem(ctx, "s1", plain.ID, 1, "", "")
	require.NoError(t, err)
	state, err = svc.UpdateQuantity(ctx, "s1", state.Items[0].ID, -3)
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartServiceRemoveAndClear(t *testing.T) {
	svc, plain, sized := newCartFixture()
	ctx := context.Background()

	state, err := svc.AddItem(ctx, "s1", plain.ID, 1, "", "")
	require.NoError(t, err)
	_, err = svc.AddItem(ctx, "s1", sized.ID, 1, "M", "")
	require.NoError(t, err)

	state, err = svc.RemoveItem(ctx, "s1", state.Items[0].ID)
	require.NoError(t, err)
	assert.Len(t, state.Items, 1)

	state, err = svc.Clear(ctx, "s1")
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}

func TestCartServiceToggleAndClose(t *testing.T) {
	svc, _, _ := newCartFixture()
	ctx := context.Background()

	state, err := svc.Toggle(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.IsOpen)

	state, err = svc.Close(ctx, "s1")
	require.NoError(t, err)
	assert.False(t, state.IsOpen)

	// The flag persists across loads like the rest of the state
	state, err = svc.Toggle(ctx, "s1")
	require.NoError(t, err)
	state, err = svc.GetCart(ctx, "s1")
	require.NoError(t, err)
	assert.True(t, state.IsOpen)
}

func TestCartServiceSessionsAreIsolated(t *testing.T) {
	svc, plain, _ := newCartFixture()
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", plain.ID, 1, "", "")
	require.NoError(t, err)

	state, err := svc.GetCart(ctx, "s2")
	require.NoError(t, err)
	assert.Empty(t, state.Items)
}
