// internal/models/product.go
package models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

type Product struct {
	BaseModel
	Name             string         `json:"name" gorm:"size:255;not null"`
	Slug             string         `json:"slug" gorm:"size:255;uniqueIndex;not null"`
	Description      string         `json:"description" gorm:"type:text"`
	LongDescription  string         `json:"long_description,omitempty" gorm:"type:text"`
	Price            float64        `json:"price" gorm:"type:decimal(10,2);not null"`
	DiscountedPrice  *float64       `json:"discounted_price,omitempty" gorm:"type:decimal(10,2)"`
	Currency         string         `json:"currency" gorm:"size:3;default:'INR'"`
	Brand            string         `json:"brand" gorm:"size:100;index"`
	Sizes            pq.StringArray `json:"size" gorm:"type:text[];column:size"`
	Colors           pq.StringArray `json:"color" gorm:"type:text[];column:color"`
	Material         string         `json:"material,omitempty" gorm:"size:255"`
	CareInstructions string         `json:"care_instructions,omitempty" gorm:"type:text"`
	SKU              string         `json:"sku,omitempty" gorm:"size:100"`
	Tags             pq.StringArray `json:"tags" gorm:"type:text[]"`
	StockQuantity    int            `json:"stock_quantity" gorm:"default:0"`
	Availability     bool           `json:"availability" gorm:"default:true"`
	IsFeatured       bool           `json:"is_featured" gorm:"default:false;index"`
	Rating           float64        `json:"rating" gorm:"type:decimal(3,2);default:0"`
	ReviewCount      int64          `json:"total_reviews" gorm:"default:0"`
	CategoryID       uuid.UUID      `json:"category_id" gorm:"type:uuid;not null;index"`

	// Relationships
	Category Category       `json:"category,omitempty" gorm:"foreignKey:CategoryID"`
	Images   []ProductImage `json:"images,omitempty" gorm:"foreignKey:ProductID"`
}

// EffectivePrice is the discounted price when set, the list price
// otherwise. A zero discount means no discount.
func (p *Product) EffectivePrice() float64 {
	if p.DiscountedPrice != nil && *p.DiscountedPrice > 0 {
		return *p.DiscountedPrice
	}
	return p.Price
}

// PrimaryImage returns the image flagged as primary, falling back to the
// first image in sort order. Nil when the product has no images.
func (p *Product) PrimaryImage() *ProductImage {
	if len(p.Images) == 0 {
		return nil
	}
	for i := range p.Images {
		if p.Images[i].IsPrimary {
			return &p.Images[i]
		}
	}
	first := 0
	for i := range p.Images {
		if p.Images[i].SortOrder < p.Images[first].SortOrder {
			first = i
		}
	}
	return &p.Images[first]
}

// InStock reports whether the product can currently be purchased.
func (p *Product) InStock() bool {
	return p.Availability && p.StockQuantity > 0
}

type ProductImage struct {
	BaseModel
	ProductID uuid.UUID `json:"product_id" gorm:"type:uuid;not null;index"`
	URL       string    `json:"url" gorm:"type:text;not null"`
	IsPrimary bool      `json:"is_primary" gorm:"default:false"`
	AltText   string    `json:"alt_text,omitempty" gorm:"size:255"`
	SortOrder int       `json:"sort_order" gorm:"default:0"`
}

type Category struct {
	BaseModel
	Name        string `json:"name" gorm:"size:100;not null"`
	Slug        string `json:"slug" gorm:"size:100;uniqueIndex;not null"`
	Description string `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string `json:"img_url,omitempty" gorm:"type:text"`
	IsActive    bool   `json:"is_active" gorm:"default:true"`

	Products []Product `json:"products,omitempty" gorm:"foreignKey:CategoryID"`
}
