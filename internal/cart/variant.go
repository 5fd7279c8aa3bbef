// internal/cart/variant.go
package cart

import (
	"errors"

	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

var (
	ErrMissingSize  = errors.New("size selection is required for this product")
	ErrMissingColor = errors.New("color selection is required for this product")
)

// Selection reports which variant dimensions a product demands before it
// may be added to the cart.
type Selection struct {
	NeedsSize  bool `json:"needs_size"`
	NeedsColor bool `json:"needs_color"`
}

// RequiresSelection returns the variant dimensions the product exposes.
// A dimension is required exactly when its option list is non-empty.
func RequiresSelection(p *models.Product) Selection {
	return Selection{
		NeedsSize:  len(p.Sizes) > 0,
		NeedsColor: len(p.Colors) > 0,
	}
}

// ValidateSelection checks a candidate (size, color) pair against the
// product's required dimensions. It does not check that the chosen value
// is a member of the offered list; the storefront only offers values
// drawn from that list.
func ValidateSelection(p *models.Product, size, color string) error {
	needs := RequiresSelection(p)
	if needs.NeedsSize && size == "" {
		return ErrMissingSize
	}
	if needs.NeedsColor && color == "" {
		return ErrMissingColor
	}
	return nil
}
