// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jyotsnadesigns/storefront-backend/internal/cart"
	"github.com/jyotsnadesigns/storefront-backend/internal/config"
	"github.com/jyotsnadesigns/storefront-backend/internal/handlers"
	"github.com/jyotsnadesigns/storefront-backend/internal/middleware"
	"github.com/jyotsnadesigns/storefront-backend/internal/services"
	"github.com/jyotsnadesigns/storefront-backend/internal/utils"
)

func Initialize(db *gorm.DB, cartStore cart.Store, cfg *config.Config) *gin.Engine {
	// Initialize services
	notificationService := services.NewNotificationService(cfg)
	storageService, _ := services.NewStorageService(cfg)

	catalogService := services.NewCatalogService(db)
	cartService := services.NewCartService(cartStore, catalogService)
	orderService := services.NewOrderService(db, notificationService)
	authService := services.NewAuthService(cfg)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	productHandler := handlers.NewProductHandler(catalogService, storageService)
	cartHandler := handlers.NewCartHandler(cartService)
	orderHandler := handlers.NewOrderHandler(orderService, cartService)

	// Set admin token secret
	utils.SetTokenSecret(cfg.Admin.TokenSecret)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Frontend.BaseURL))
	r.Use(middleware.GeneralRateLimit())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Catalog routes
		products := v1.Group("/products")
		{
			products.GET("", productHandler.GetProducts)
			products.GET("/search", productHandler.SearchProducts)
			products.GET("/featured", productHandler.GetFeaturedProducts)
			products.GET("/slug/:slug", productHandler.GetProductBySlug)
			products.GET("/:id", productHandler.GetProduct)
		}

		categories := v1.Group("/categories")
		{
			categories.GET("", productHandler.GetCategories)
			categories.GET("/:slug/products", productHandler.GetCategoryProducts)
		}

		// Cart routes (session cookie scoped)
		cartGroup := v1.Group("/cart")
		cartGroup.Use(middleware.CartSession())
		{
			cartGroup.GET("", cartHandler.GetCart)
			cartGroup.DELETE("", cartHandler.ClearCart)
			cartGroup.POST("/items", cartHandler.AddItem)
			cartGroup.PATCH("/items/:id", cartHandler.UpdateItem)
			cartGroup.DELETE("/items/:id", cartHandler.RemoveItem)
			cartGroup.POST("/toggle", cartHandler.ToggleCart)
			cartGroup.POST("/close", cartHandler.CloseCart)
		}

		// Checkout
		checkout := v1.Group("/checkout")
		checkout.Use(middleware.CartSession())
		checkout.Use(middleware.CheckoutRateLimit())
		{
			checkout.POST("", orderHandler.Checkout)
		}

		// Admin routes
		admin := v1.Group("/admin")
		{
			login := admin.Group("/login")
			login.Use(middleware.AuthRateLimit())
			{
				login.POST("", authHandler.Login)
			}

			// Product management (products area token)
			adminProducts := admin.Group("")
			adminProducts.Use(middleware.AdminRequired(utils.AreaProducts))
			{
				adminProducts.POST("/products", productHandler.CreateProduct)
				adminProducts.PUT("/products/:id", productHandler.UpdateProduct)
				adminProducts.DELETE("/products/:id", productHandler.DeleteProduct)
				adminProducts.POST("/categories", productHandler.CreateCategory)
				adminProducts.POST("/uploads", middleware.UploadRateLimit(), productHandler.UploadImage)
			}

			// Order management (orders area token)
			adminOrders := admin.Group("/orders")
			adminOrders.Use(middleware.AdminRequired(utils.AreaOrders))
			{
				adminOrders.GET("", orderHandler.ListOrders)
				adminOrders.GET("/:id", orderHandler.GetOrder)
				adminOrders.PUT("/:id/status", orderHandler.UpdateStatus)
			}
		}
	}

	return r
}
