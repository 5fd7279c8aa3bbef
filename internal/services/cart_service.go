// internal/services/cart_service.go
package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

// ProductGetter is the slice of the catalog the cart needs: a product
// snapshot to copy into a line item at add time.
type ProductGetter interface {
	GetProduct(id uuid.UUID) (*models.Product, error)
}

// CartService runs the cart reducer against per-session state. Every
// operation is load, apply, save; the reducer itself never fails, so
// errors here are store or catalog failures only.
type CartService struct {
	store    cart.Store
	products ProductGetter
}

func NewCartService(store cart.Store, products ProductGetter) *CartService {
	return &CartService{
		store:    store,
		products: products,
	}
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (*cart.State, error) {
	return s.store.Get(ctx, sessionID)
}

// AddItem snapshots the product and merges it into the cart. Products
// exposing size or color options must come with the matching selection;
// the handler surfaces the missing dimension so the storefront can open
// its selection modal and retry.
func (s *CartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, quantity int, size, color string) (*cart.State, error) {
	product, err := s.products.GetProduct(productID)
	if err != nil {
		return nil, err
	}

	if err := cart.ValidateSelection(product, size, color); err != nil {
		return nil, err
	}

	if quantity < 1 {
		quantity = 1
	}

	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Apply(cart.Action{
		Type:          cart.AddItem,
		Product:       *product,
		Quantity:      quantity,
		SelectedSize:  size,
		SelectedColor: color,
	})

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return state, nil
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, lineItemID string) (*cart.State, error) {
	return s.apply(ctx, sessionID, cart.Action{
		Type:       cart.RemoveItem,
		LineItemID: lineItemID,
	})
}

// UpdateQuantity sets a line item's quantity. A quantity of zero or less
// removes the line item; the cart never keeps an empty line.
func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, lineItemID string, quantity int) (*cart.State, error) {
	if quantity <= 0 {
		return s.RemoveItem(ctx, sessionID, lineItemID)
	}
	return s.apply(ctx, sessionID, cart.Action{
		Type:       cart.UpdateQuantity,
		LineItemID: lineItemID,
		Quantity:   quantity,
	})
}

func (s *CartService) Clear(ctx context.Context, sessionID string) (*cart.State, error) {
	return s.apply(ctx, sessionID, cart.Action{Type: cart.ClearCart})
}

func (s *CartService) Toggle(ctx context.Context, sessionID string) (*cart.State, error) {
	return s.apply(ctx, sessionID, cart.Action{Type: cart.ToggleCart})
}

func (s *CartService) Close(ctx context.Context, sessionID string) (*cart.State, error) {
	return s.apply(ctx, sessionID, cart.Action{Type: cart.CloseCart})
}

func (s *CartService) apply(ctx context.Context, sessionID string, action cart.Action) (*cart.State, error) {
	state, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	state.Apply(action)

	if err := s.store.Save(ctx, sessionID, state); err != nil {
		return nil, fmt.Errorf("failed to save cart: %w", err)
	}
	return state, nil
}
