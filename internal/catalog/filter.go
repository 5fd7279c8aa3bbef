// internal/catalog/filter.go

// Package catalog holds the pure filtering, sorting, and search logic
// applied to product snapshots fetched from the database. All filters
// are conjunctive and all sorts are stable.
package catalog

import (
	"sort"
	"strings"

	"github.com/jyotsnadesigns/storefront-backend/internal/models"
)

// Filters narrows a product list. Zero values mean "filter inactive".
type Filters struct {
	Category string            `json:"category,omitempty"`
	Brand    string            `json:"brand,omitempty"`
	PriceMin *float64          `json:"price_min,omitempty"`
	PriceMax *float64          `json:"price_max,omitempty"`
	SortBy   models.SortOption `json:"sort_by,omitempty"`
}

// Apply filters and sorts products. The input slice is not modified;
// with no sort key the incoming order (creation time, descending) is
// preserved.
func Apply(products []models.Product, f Filters) []models.Product {
	result := make([]models.Product, 0, len(products))

	for _, p := range products {
		if f.Category != "" && p.Category.Slug != f.Category {
			continue
		}
		if f.Brand != "" && p.Brand != f.Brand {
			continue
		}
		if f.PriceMin != nil || f.PriceMax != nil {
			price := p.EffectivePrice()
			if f.PriceMin != nil && price < *f.PriceMin {
				continue
			}
			if f.PriceMax != nil && price > *f.PriceMax {
				continue
			}
		}
		result = append(result, p)
	}

	switch f.SortBy {
	case models.SortPriceAsc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() < result[j].EffectivePrice()
		})
	case models.SortPriceDesc:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].EffectivePrice() > result[j].EffectivePrice()
		})
	case models.SortNewest:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		})
	case models.SortPopularity:
		sort.SliceStable(result, func(i, j int) bool {
			return result[i].ReviewCount > result[j].ReviewCount
		})
	}

	return result
}

// Search matches the query case-insensitively as a substring of name,
// description, category name, brand, or any tag. No ranking; the
// incoming order is kept.
func Search(products []models.Product, query string) []models.Product {
	term := strings.ToLower(strings.TrimSpace(query))
	if term == "" {
		return nil
	}

	var result []models.Product
	for _, p := range products {
		if matches(&p, term) {
			result = append(result, p)
		}
	}
	return result
}

func matches(p *models.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) ||
		strings.Contains(strings.ToLower(p.Description), term) ||
		strings.Contains(strings.ToLower(p.Category.Name), term) ||
		strings.Contains(strings.ToLower(p.Brand), term) {
		return true
	}
	for _, tag := range p.Tags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return false
}

// Featured keeps only products flagged as featured.
func Featured(products []models.Product) []models.Product {
	var result []models.Product
	for _, p := range products {
		if p.IsFeatured {
			result = append(result, p)
		}
	}
	return result
}

// ByCategory keeps only products whose category slug matches.
func ByCategory(products []models.Product, slug string) []models.Product {
	var result []models.Product
	for _, p := range products {
		if p.Category.Slug == slug {
			result = append(result, p)
		}
	}
	return result
}
