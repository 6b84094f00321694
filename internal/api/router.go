package api

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/Supa-mustea/Visualfind-store/internal/ai"
	"github.com/Supa-mustea/Visualfind-store/internal/api/handlers"
	"github.com/Supa-mustea/Visualfind-store/internal/config"
	"github.com/Supa-mustea/Visualfind-store/internal/paystack"
	"github.com/Supa-mustea/Visualfind-store/internal/repository"
	"github.com/Supa-mustea/Visualfind-store/internal/service"
	"github.com/Supa-mustea/Visualfind-store/internal/sourcing"
)

// Services bundles the long-lived collaborators the route layer dispatches to.
type Services struct {
	Sourcing *sourcing.Service
	AI       *ai.Service
	Paystack *paystack.Client
	Replies  *service.ReplyScheduler
}

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, repos *repository.Repositories, svcs Services, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(customRecovery(logger))
	router.Use(loggingMiddleware(logger))
	router.MaxMultipartMemory = 10 << 20

	// Root: friendly response so GET / returns 200 instead of 404
	router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": "VisualFind Store API",
			"endpoints": []string{
				"GET /health",
				"GET /api/products",
				"POST /api/upload",
				"POST /api/visual-search",
				"POST /api/source-products",
				"GET /api/chat",
				"POST /api/purchase",
				"GET /api/orders",
				"POST /api/initialize-payment",
			},
		})
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Uploaded search images are served back to the storefront
	router.Static("/uploads", cfg.Uploads.Dir)

	api := router.Group("/api")
	{
		api.GET("/products", handlers.HandleListProducts(repos, logger))
		api.GET("/products/:id", handlers.HandleGetProduct(repos, logger))

		api.POST("/upload", handlers.HandleImageUpload(cfg, repos, logger))
		api.GET("/search-history", handlers.HandleSearchHistory(repos, logger))
		api.POST("/visual-search", handlers.HandleVisualSearch(cfg, svcs.AI, logger))
		api.POST("/source-products", handlers.HandleSourceProducts(svcs.Sourcing, logger))

		api.GET("/chat", handlers.HandleListChatMessages(repos, logger))
		api.POST("/chat", handlers.HandlePostChatMessage(repos, svcs.Replies, logger))

		api.POST("/purchase", handlers.HandlePurchase(repos, svcs.Sourcing, logger))
		api.GET("/orders", handlers.HandleListOrders(repos, logger))
		api.GET("/orders/:id", handlers.HandleGetOrder(repos, logger))

		api.POST("/initialize-payment", handlers.HandleInitializePayment(repos, svcs.Paystack, logger))
		api.POST("/verify-payment", handlers.HandleVerifyPayment(svcs.Paystack, logger))
		api.POST("/payment-callback", handlers.HandlePaymentCallback(repos, svcs.Paystack, svcs.Sourcing, logger))
		api.GET("/transactions", handlers.HandleListTransactions(svcs.Paystack, logger))

		api.GET("/suppliers", handlers.HandleListSuppliers(repos, logger))
		api.POST("/generate-description", handlers.HandleGenerateDescription(svcs.AI, logger))
	}

	return router
}

// customRecovery is a custom recovery middleware that logs panics
func customRecovery(logger *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Error("Panic recovered",
			zap.Any("error", recovered),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
		)
		c.JSON(http.StatusInternalServerError, gin.H{
			"error":   "internal server error",
			"details": fmt.Sprintf("%v", recovered),
		})
	})
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
		)
	}
}
