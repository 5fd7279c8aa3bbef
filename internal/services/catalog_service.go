// internal/services/catalog_service.go
package services

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"github.com/jyotsnadesigns/storefront-backend/internal/catalog"
	"github.com/jyotsnadesigns/storefront-backend/internal/models"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

var (
	ErrProductNotFound  = errors.New("product not found")
	ErrCategoryNotFound = errors.New("category not found")
	ErrSlugTaken        = errors.New("slug is already in use")
)

// CatalogService reads product and category snapshots from the backend
// and applies the storefront's filter, sort, and search semantics over
// them. Products are never mutated through storefront reads.
type CatalogService struct {
	db *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{db: db}
}

// fetchProducts loads the full product snapshot with categories and
// ordered images, newest first. The storefront filters in memory over
// this snapshot.
func (s *CatalogService) fetchProducts() ([]models.Product, error) {
	var products []models.Product
	err := s.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		Order("created_at DESC").
		Find(&products).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", err)
	}
	return products, nil
}

func (s *CatalogService) ListProducts(filters catalog.Filters) ([]models.Product, error) {
	products, err := s.fetchProducts()
	if err != nil {
		return nil, err
	}
	return catalog.Apply(products, filters), nil
}

func (s *CatalogService) GetProduct(id uuid.UUID) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&product, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) GetProductBySlug(slug string) (*models.Product, error) {
	var product models.Product
	err := s.db.
		Preload("Category").
		Preload("Images", func(db *gorm.DB) *gorm.DB {
			return db.Order("sort_order ASC")
		}).
		First(&product, "slug = ?", slug).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &product, nil
}

func (s *CatalogService) SearchProducts(query string) ([]models.Product, error) {
	products, err := s.fetchProducts()
	if err != nil {
		return nil, err
	}
	return catalog.Search(products, query), nil
}

func (s *CatalogService) ProductsByCategory(slug string) ([]models.Product, error) {
	products, err := s.fetchProducts()
	if err != nil {
		return nil, err
	}
	return catalog.ByCategory(products, slug), nil
}

func (s *CatalogService) FeaturedProducts() ([]models.Product, error) {
	products, err := s.fetchProducts()
	if err != nil {
		return nil, err
	}
	return catalog.Featured(products), nil
}

func (s *CatalogService) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}
	return categories, nil
}

// Admin operations

type ProductImageInput struct {
	URL       string `json:"url" validate:"required,url"`
	IsPrimary bool   `json:"is_primary"`
	AltText   string `json:"alt_text,omitempty"`
	SortOrder int    `json:"sort_order"`
}

type CreateProductRequest struct {
	Name             string              `json:"name" validate:"required,min=2,max=255"`
	Slug             string              `json:"slug" validate:"required,slug"`
	Description      string              `json:"description"`
	LongDescription  string              `json:"long_description,omitempty"`
	Price            float64             `json:"price" validate:"required,gt=0"`
	DiscountedPrice  *float64            `json:"discounted_price,omitempty" validate:"omitempty,gt=0,ltfield=Price"`
	Currency         string              `json:"currency" validate:"omitempty,len=3"`
	Brand            string              `json:"brand,omitempty"`
	Sizes            []string            `json:"size,omitempty"`
	Colors           []string            `json:"color,omitempty"`
	Material         string              `json:"material,omitempty"`
	CareInstructions string              `json:"care_instructions,omitempty"`
	SKU              string              `json:"sku,omitempty"`
	Tags             []string            `json:"tags,omitempty"`
	StockQuantity    int                 `json:"stock_quantity" validate:"min=0"`
	Availability     bool                `json:"availability"`
	IsFeatured       bool                `json:"is_featured"`
	CategoryID       uuid.UUID           `json:"category_id" validate:"required"`
	Images           []ProductImageInput `json:"images,omitempty" validate:"dive"`
}

type UpdateProductRequest struct {
	Name             string              `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description      string              `json:"description,omitempty"`
	LongDescription  string              `json:"long_description,omitempty"`
	Price            float64             `json:"price,omitempty" validate:"omitempty,gt=0"`
	DiscountedPrice  *float64            `json:"discounted_price,omitempty" validate:"omitempty,gt=0"`
	Brand            string              `json:"brand,omitempty"`
	Sizes            []string            `json:"size,omitempty"`
	Colors           []string            `json:"color,omitempty"`
	Material         string              `json:"material,omitempty"`
	CareInstructions string              `json:"care_instructions,omitempty"`
	Tags             []string            `json:"tags,omitempty"`
	StockQuantity    *int                `json:"stock_quantity,omitempty" validate:"omitempty,min=0"`
	Availability     *bool               `json:"availability,omitempty"`
	IsFeatured       *bool               `json:"is_featured,omitempty"`
	CategoryID       *uuid.UUID          `json:"category_id,omitempty"`
	Images           []ProductImageInput `json:"images,omitempty" validate:"dive"`
}

func (s *CatalogService) CreateProduct(req *CreateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := validateImages(req.Images); err != nil {
		return nil, err
	}

	// Verify slug uniqueness
	var count int64
	if err := s.db.Model(&models.Product{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	// Verify category exists
	var category models.Category
	if err := s.db.First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCategoryNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	currency := req.Currency
	if currency == "" {
		currency = "INR"
	}

	product := &models.Product{
		Name:             req.Name,
		Slug:             req.Slug,
		Description:      req.Description,
		LongDescription:  req.LongDescription,
		Price:            req.Price,
		DiscountedPrice:  req.DiscountedPrice,
		Currency:         currency,
		Brand:            req.Brand,
		Sizes:            req.Sizes,
		Colors:           req.Colors,
		Material:         req.Material,
		CareInstructions: req.CareInstructions,
		SKU:              req.SKU,
		Tags:             req.Tags,
		StockQuantity:    req.StockQuantity,
		Availability:     req.Availability,
		IsFeatured:       req.IsFeatured,
		CategoryID:       req.CategoryID,
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(product).Error; err != nil {
			return fmt.Errorf("failed to create product: %w", err)
		}

		for i, img := range req.Images {
			image := models.ProductImage{
				ProductID: product.ID,
				URL:       img.URL,
				IsPrimary: img.IsPrimary,
				AltText:   img.AltText,
				SortOrder: img.SortOrder,
			}
			if image.SortOrder == 0 {
				image.SortOrder = i
			}
			if err := tx.Create(&image).Error; err != nil {
				return fmt.Errorf("failed to create product image: %w", err)
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(product.ID)
}

func (s *CatalogService) UpdateProduct(id uuid.UUID, req *UpdateProductRequest) (*models.Product, error) {
	// Validate request
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	if err := validateImages(req.Images); err != nil {
		return nil, err
	}

	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("database error: %w", err)
	}

	// Prepare updates
	updates := make(map[string]interface{})
	if req.Name != "" {
		updates["name"] = req.Name
	}
	if req.Description != "" {
		updates["description"] = req.Description
	}
	if req.LongDescription != "" {
		updates["long_description"] = req.LongDescription
	}
	if req.Price > 0 {
		updates["price"] = req.Price
	}
	if req.DiscountedPrice != nil {
		price := product.Price
		if req.Price > 0 {
			price = req.Price
		}
		if *req.DiscountedPrice >= price {
			return nil, errors.New("discounted price must be less than price")
		}
		updates["discounted_price"] = *req.DiscountedPrice
	}
	if req.Brand != "" {
		updates["brand"] = req.Brand
	}
	if req.Sizes != nil {
		updates["size"] = pq.StringArray(req.Sizes)
	}
	if req.Colors != nil {
		updates["color"] = pq.StringArray(req.Colors)
	}
	if req.Material != "" {
		updates["material"] = req.Material
	}
	if req.CareInstructions != "" {
		updates["care_instructions"] = req.CareInstructions
	}
	if req.Tags != nil {
		updates["tags"] = pq.StringArray(req.Tags)
	}
	if req.StockQuantity != nil {
		updates["stock_quantity"] = *req.StockQuantity
	}
	if req.Availability != nil {
		updates["availability"] = *req.Availability
	}
	if req.IsFeatured != nil {
		updates["is_featured"] = *req.IsFeatured
	}
	if req.CategoryID != nil {
		var category models.Category
		if err := s.db.First(&category, "id = ?", *req.CategoryID).Error; err != nil {
			return nil, ErrCategoryNotFound
		}
		updates["category_id"] = *req.CategoryID
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if len(updates) > 0 {
			if err := tx.Model(&product).Updates(updates).Error; err != nil {
				return fmt.Errorf("failed to update product: %w", err)
			}
		}

		// Replacing images wholesale keeps the ordering contract simple.
		if req.Images != nil {
			if err := tx.Where("product_id = ?", id).Delete(&models.ProductImage{}).Error; err != nil {
				return fmt.Errorf("failed to clear product images: %w", err)
			}
			for i, img := range req.Images {
				image := models.ProductImage{
					ProductID: id,
					URL:       img.URL,
					IsPrimary: img.IsPrimary,
					AltText:   img.AltText,
					SortOrder: img.SortOrder,
				}
				if image.SortOrder == 0 {
					image.SortOrder = i
				}
				if err := tx.Create(&image).Error; err != nil {
					return fmt.Errorf("failed to create product image: %w", err)
				}
			}
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetProduct(id)
}

func (s *CatalogService) DeleteProduct(id uuid.UUID) error {
	var product models.Product
	if err := s.db.First(&product, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("database error: %w", err)
	}

	// Soft delete
	if err := s.db.Delete(&product).Error; err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	return nil
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Slug        string `json:"slug" validate:"required,slug"`
	Description string `json:"description,omitempty"`
	ImageURL    string `json:"img_url,omitempty" validate:"omitempty,url"`
}

func (s *CatalogService) CreateCategory(req *CreateCategoryRequest) (*models.Category, error) {
	if err := utils.ValidateStruct(req); err != nil {
		return nil, fmt.Errorf("validation failed: %w", err)
	}

	var count int64
	if err := s.db.Model(&models.Category{}).Where("slug = ?", req.Slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("database error: %w", err)
	}
	if count > 0 {
		return nil, ErrSlugTaken
	}

	category := &models.Category{
		Name:        req.Name,
		Slug:        req.Slug,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		IsActive:    true,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, fmt.Errorf("failed to create category: %w", err)
	}

	return category, nil
}

// validateImages enforces the at-most-one-primary invariant.
func validateImages(images []ProductImageInput) error {
	primaries := 0
	for _, img := range images {
		if img.IsPrimary {
			primaries++
		}
	}
	if primaries > 1 {
		return errors.New("at most one image may be marked primary")
	}
	return nil
}
