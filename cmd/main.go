package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog_service/config"
	"catalog_service/internal/delivery"
	"catalog_service/internal/repository"
	"catalog_service/internal/usecase"
	"catalog_service/pkg/db"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	logger := logrus.New()
	logger.SetOutput(os.Stdout)
	logger.SetFormatter(&logrus.JSONFormatter{})

	cfg := config.LoadConfig(logger)

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		logger.Warnf("Invalid log level '%s', falling back to info", cfg.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	logger.Info("Starting Catalog Service...")

	// --- Database Connection ---
	client, err := db.Connect(cfg.MongoURI, logger)
	if err != nil {
		logger.Fatalf("FATAL: Failed to connect to MongoDB: %v", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := client.Disconnect(ctx); err != nil {
			logger.Errorf("Error disconnecting MongoDB client: %v", err)
		}
	}()

	database := client.Database(cfg.MongoDBName)

	indexCtx, indexCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer indexCancel()
	if err := db.EnsureIndexes(indexCtx, database, logger); err != nil {
		logger.Fatalf("FATAL: Failed to create indexes: %v", err)
	}

	// --- Dependency Injection ---
	categoryRepo := repository.NewMongoCategoryRepository(database, logger)
	productRepo := repository.NewMongoProductRepository(database, logger)
	logger.Info("Repositories initialized.")

	categoryUseCase := usecase.NewCategoryUseCase(categoryRepo, productRepo, logger)
	productUseCase := usecase.NewProductUseCase(productRepo, categoryRepo, logger)
	logger.Info("Use cases initialized.")

	categoryHandler := delivery.NewCategoryHandler(categoryUseCase, logger)
	productHandler := delivery.NewProductHandler(productUseCase, logger)
	logger.Info("Handlers initialized.")

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(delivery.RequestLogger(logger))

	categoryHandler.RegisterRoutes(router)
	productHandler.RegisterRoutes(router)
	logger.Info("API Routes registered.")

	server := &http.Server{
		Addr:    cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		logger.Infof("Starting server on %s", cfg.HTTPPort)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server exiting")
}
