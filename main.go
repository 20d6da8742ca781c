package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/FitFinder/fitfinder-backend/config"
	"github.com/FitFinder/fitfinder-backend/handlers"
	"github.com/FitFinder/fitfinder-backend/logger"
	"github.com/FitFinder/fitfinder-backend/models"
	"github.com/FitFinder/fitfinder-backend/router"
	"github.com/FitFinder/fitfinder-backend/store/mongodb"
	"github.com/gin-gonic/gin"
)

func main() {
	// Initialize logger
	logger.InitLogger()
	log := logger.GetLogger()
	defer func() {
		_ = logger.Close()
	}()

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	if cfg.Server.Environment == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to MongoDB and ensure the natural-key indexes exist
	db, err := mongodb.Connect(context.Background(), cfg.Mongo)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := db.Client().Disconnect(ctx); err != nil {
			log.Errorw("Failed to disconnect from MongoDB", "error", err)
		}
	}()

	if err := mongodb.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// Stores
	customerStore := mongodb.NewCustomerStore(db)
	productStore := mongodb.NewProductStore(db)
	feedbackStore := mongodb.NewFeedbackStore(db)

	// Models
	customerModel := models.NewCustomerModel(customerStore, feedbackStore)
	productModel := models.NewProductModel(productStore, feedbackStore)
	feedbackModel := models.NewFeedbackModel(feedbackStore, customerStore, productStore)

	// Handlers
	customerHandler := handlers.NewCustomerHandler(customerModel)
	productHandler := handlers.NewProductHandler(productModel)
	feedbackHandler := handlers.NewFeedbackHandler(feedbackModel)
	healthHandler := handlers.NewHealthHandler(func(ctx context.Context) error {
		return db.Client().Ping(ctx, nil)
	}, cfg.Server.Version)

	// Router setup
	r := router.SetupRouter(router.Dependencies{
		Config:          cfg,
		CustomerHandler: customerHandler,
		ProductHandler:  productHandler,
		FeedbackHandler: feedbackHandler,
		HealthHandler:   healthHandler,
		Logger:          log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.Server.Port,
		Handler: r,
	}

	go func() {
		log.Infof("Starting server on port %s", cfg.Server.Port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown on SIGINT/SIGTERM
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Errorw("Server forced to shutdown", "error", err)
	}
}
