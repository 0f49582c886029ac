package router

import (
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/kenyaamazon/storefront-api/pkg/cart"
	"github.com/kenyaamazon/storefront-api/pkg/catalog"
	"github.com/kenyaamazon/storefront-api/pkg/logger"
	"github.com/kenyaamazon/storefront-api/pkg/session"
)

var Router *gin.Engine

// Stores the handlers operate on. Wired once at startup; tests swap them.
var (
	Catalog  *catalog.Store
	Carts    cart.Store
	Sessions *session.Manager
)

// InitStores wires the state the storefront runs on: the seeded catalog,
// session carts (Redis-backed when REDIS_ADDRESS is set, in-process
// otherwise) and the mock session registry.
func InitStores() {
	Catalog = catalog.NewStore(catalog.SeedProducts())
	Sessions = session.NewManager()

	if os.Getenv("REDIS_ADDRESS") != "" {
		Carts = cart.NewRedisStore()
		logger.Log.Info("session carts backed by Redis")
	} else {
		Carts = cart.NewMemoryStore()
		logger.Log.Info("session carts held in process memory")
	}
}

func InitEngine() {
	if os.Getenv("ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	Router = gin.New()
	Router.Use(gin.Recovery())
	Router.Use(logger.RequestLogger())

	Router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Session-Token", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}

func InitializeRoutes() {
	api := Router.Group("/api")
	{
		api.GET("/health", HealthCheck)

		products := api.Group("/products")
		{
			products.GET("/", GetAllProducts)
			products.GET("/top", GetTopProducts)
			products.GET("/:id", GetProductByID)
			products.GET("/:id/reviews", GetProductReviews)
			products.POST("/:id/reviews", CreateProductReview)
		}

		categories := api.Group("/categories")
		{
			categories.GET("/", GetAllCategories)
		}

		carts := api.Group("/cart")
		{
			carts.GET("/:sessionId", GetCart)
			carts.POST("/:sessionId/items", AddToCart)
			carts.PUT("/:sessionId/items/:productId", UpdateCartItem)
			carts.DELETE("/:sessionId/items/:productId", RemoveFromCart)
			carts.DELETE("/:sessionId/clear", ClearCart)
			carts.POST("/:sessionId/checkout", Checkout)
		}

		auth := api.Group("/auth")
		{
			auth.POST("/login", Login)
			auth.POST("/register", Register)
			auth.POST("/logout", Logout)
		}

		studio := api.Group("/studio")
		{
			studio.POST("/image", GenerateStudioImage)
			studio.POST("/market-analysis", GenerateMarketAnalysisReport)
			studio.POST("/products", AddStudioProduct)
		}

		admin := api.Group("/admin")
		admin.Use(AdminRequired())
		{
			admin.POST("/products", CreateProduct)
			admin.PUT("/products/:id", UpdateProduct)
			admin.DELETE("/products/:id", DeleteProduct)
			admin.POST("/catalog/import", ImportCatalog)
			admin.POST("/offers/generate", GenerateCampaignOffers)
			admin.POST("/offers/apply", ApplyCampaignOffers)
		}
	}
}
