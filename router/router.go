package router

import (
	"github.com/FitFinder/fitfinder-backend/config"
	"github.com/FitFinder/fitfinder-backend/handlers"
	"github.com/FitFinder/fitfinder-backend/middleware"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
)

// Dependencies struct holds all dependencies required for setting up routes.
type Dependencies struct {
	Config          *config.Config
	CustomerHandler *handlers.CustomerHandler
	ProductHandler  *handlers.ProductHandler
	FeedbackHandler *handlers.FeedbackHandler
	HealthHandler   *handlers.HealthHandler
	Logger          *zap.SugaredLogger
}

// SetupRouter configures and returns the main Gin engine with all routes defined.
func SetupRouter(deps Dependencies) *gin.Engine {
	r := gin.Default()

	// Global Middleware
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.CORSMiddleware(&deps.Config.Server))

	// Health and Metrics Routes
	r.GET("/health/liveness", deps.HealthHandler.LivenessCheck)
	r.GET("/health/readiness", deps.HealthHandler.ReadinessCheck)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Versioned API Group (v1)
	v1 := r.Group("/v1")
	{
		customers := v1.Group("/customers")
		{
			customers.POST("", deps.CustomerHandler.CreateCustomerHandler)
			customers.GET("", deps.CustomerHandler.ListCustomersHandler)
			customers.POST("/bulk", deps.CustomerHandler.BulkUploadCustomersHandler)
			customers.POST("/bulk-delete", deps.CustomerHandler.BulkDeleteCustomersHandler)
			customers.POST("/upload", deps.CustomerHandler.UploadCustomersFromFileHandler)
			customers.PATCH("/waist", deps.CustomerHandler.BulkUpdateWaistHandler)
			customers.GET("/waist-distribution", deps.CustomerHandler.WaistDistributionHandler)
			customers.GET("/:id", deps.CustomerHandler.GetCustomerHandler)
			customers.PATCH("/:id", deps.CustomerHandler.UpdateCustomerHandler)
			customers.DELETE("/:id", deps.CustomerHandler.DeleteCustomerHandler)
			customers.GET("/:id/feedback", deps.FeedbackHandler.ListFeedbackByCustomerHandler)
		}

		products := v1.Group("/products")
		{
			products.POST("", deps.ProductHandler.CreateProductHandler)
			products.GET("", deps.ProductHandler.ListProductsHandler)
			products.POST("/bulk", deps.ProductHandler.BulkUploadProductsHandler)
			products.PATCH("/bulk", deps.ProductHandler.BulkUpdateProductsHandler)
			products.POST("/bulk-delete", deps.ProductHandler.BulkDeleteProductsHandler)
			products.POST("/upload", deps.ProductHandler.UploadProductsFromFileHandler)
			products.GET("/search", deps.ProductHandler.SearchProductsHandler)
			products.GET("/:id", deps.ProductHandler.GetProductHandler)
			products.PATCH("/:id", deps.ProductHandler.UpdateProductHandler)
			products.DELETE("/:id", deps.ProductHandler.DeleteProductHandler)
			products.GET("/:id/feedback", deps.FeedbackHandler.ListFeedbackByProductHandler)
		}

		feedback := v1.Group("/feedback")
		{
			feedback.POST("", deps.FeedbackHandler.CreateFeedbackHandler)
			feedback.GET("", deps.FeedbackHandler.ListFeedbackHandler)
			feedback.POST("/bulk", deps.FeedbackHandler.BulkUploadFeedbackHandler)
			feedback.PATCH("/bulk", deps.FeedbackHandler.BulkUpdateFeedbackHandler)
			feedback.POST("/bulk-delete", deps.FeedbackHandler.BulkDeleteFeedbackHandler)
			feedback.POST("/upload", deps.FeedbackHandler.UploadFeedbackFromFileHandler)
			feedback.GET("/:id", deps.FeedbackHandler.GetFeedbackHandler)
			feedback.PATCH("/:id", deps.FeedbackHandler.UpdateFeedbackHandler)
			feedback.DELETE("/:id", deps.FeedbackHandler.DeleteFeedbackHandler)
		}
	}

	return r
}
