// internal/cart/cart.go
package cart

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

// LineItem is one distinct purchasable configuration in the cart. The
// product is a snapshot copied at add time, not a live catalog reference.
type LineItem struct {
	ID            string         `json:"id"`
	Product       models.Product `json:"product"`
	Quantity      int            `json:"quantity"`
	SelectedSize  string         `json:"selected_size,omitempty"`
	SelectedColor string         `json:"selected_color,omitempty"`
}

// UnitPrice is the line item's effective unit price.
func (li *LineItem) UnitPrice() float64 {
	return li.Product.EffectivePrice()
}

// LineItemID builds the identity key for a (product, size, color)
// configuration. Adding the same triple twice merges quantities.
func LineItemID(productID uuid.UUID, size, color string) string {
	return fmt.Sprintf("%s-%s-%s", productID, size, color)
}

// State is the cart aggregate: insertion-ordered line items plus the
// panel-visibility flag. It starts empty and is mutated only through
// Apply.
type State struct {
	Items  []LineItem `json:"items"`
	IsOpen bool       `json:"is_open"`
}

func NewState() *State {
	return &State{}
}

type ActionType string

const (
	AddItem        ActionType = "ADD_ITEM"
	RemoveItem     ActionType = "REMOVE_ITEM"
	UpdateQuantity ActionType = "UPDATE_QUANTITY"
	ClearCart      ActionType = "CLEAR_CART"
	ToggleCart     ActionType = "TOGGLE_CART"
	CloseCart      ActionType = "CLOSE_CART"
)

// Action is one member of the cart action union. Which fields are read
// depends on Type; the rest are ignored.
type Action struct {
	Type          ActionType
	Product       models.Product
	Quantity      int
	LineItemID    string
	SelectedSize  string
	SelectedColor string
}

// Apply runs one action against the state. Each action is atomic and
// never fails: actions referencing a missing line item are no-ops, and
// unknown action types leave the state untouched. This is UI state, not
// a ledger.
func (s *State) Apply(action Action) {
	switch action.Type {
	case AddItem:
		id := LineItemID(action.Product.ID, action.SelectedSize, action.SelectedColor)
		for i := range s.Items {
			if s.Items[i].ID == id {
				s.Items[i].Quantity += action.Quantity
				return
			}
		}
		s.Items = append(s.Items, LineItem{
			ID:            id,
			Product:       action.Product,
			Quantity:      action.Quantity,
			SelectedSize:  action.SelectedSize,
			SelectedColor: action.SelectedColor,
		})

	case RemoveItem:
		for i := range s.Items {
			if s.Items[i].ID == action.LineItemID {
				s.Items = append(s.Items[:i], s.Items[i+1:]...)
				return
			}
		}

	case UpdateQuantity:
		// Quantities are set verbatim; callers wanting removal on a
		// zero quantity issue REMOVE_ITEM instead.
		for i := range s.Items {
			if s.Items[i].ID == action.LineItemID {
				s.Items[i].Quantity = action.Quantity
				return
			}
		}

	case ClearCart:
		s.Items = nil

	case ToggleCart:
		s.IsOpen = !s.IsOpen

	case CloseCart:
		s.IsOpen = false
	}
}

// TotalPrice sums effective unit price times quantity over all line
// items. Derived on demand, never cached.
func (s *State) TotalPrice() float64 {
	var total float64
	for i := range s.Items {
		total += s.Items[i].UnitPrice() * float64(s.Items[i].Quantity)
	}
	return total
}

// TotalItemCount sums quantities over all line items.
func (s *State) TotalItemCount() int {
	var count int
	for i := range s.Items {
		count += s.Items[i].Quantity
	}
	return count
}

// FindItem returns the line item with the given id, or nil.
func (s *State) FindItem(id string) *LineItem {
	for i := range s.Items {
		if s.Items[i].ID == id {
			return &s.Items[i]
		}
	}
	return nil
}
