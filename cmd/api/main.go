package main

import (
	"context"
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jobscout/jobscout-backend/internal/config"
	"github.com/jobscout/jobscout-backend/internal/database"
	"github.com/jobscout/jobscout-backend/internal/handlers"
	"github.com/jobscout/jobscout-backend/internal/jsearch"
	"github.com/jobscout/jobscout-backend/internal/logging"
	"github.com/jobscout/jobscout-backend/internal/repository"
	"github.com/jobscout/jobscout-backend/internal/scheduler"
	"github.com/jobscout/jobscout-backend/internal/services"
)

func main() {
	// 1. Load Environment Variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, reading configuration from environment")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Invalid configuration: ", err)
	}

	logger, err := logging.New(cfg.Development())
	if err != nil {
		log.Fatal("Failed to build logger: ", err)
	}
	defer func() {
		_ = logger.Sync()
	}()

	// 2. Database Connection
	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	logger.Info("database connection established")

	// 3. Initialize Core Services (Dependencies)
	repo := repository.NewGormJobRepository(db)

	fetcher, err := jsearch.NewClient(jsearch.Config{
		APIKey:   cfg.RapidAPIKey,
		BaseURL:  cfg.JSearchBaseURL,
		NumPages: cfg.JSearchNumPages,
	})
	if err != nil {
		logger.Fatal("jsearch client setup failed", zap.Error(err))
	}

	jobService := services.NewJobService(repo, fetcher, logger)

	// 4. Start the Refresh Scheduler
	// Kicks off one refresh immediately and then every N hours; the server
	// starts accepting requests without waiting for the first cycle.
	sched := scheduler.New(jobService, cfg.RefreshQuery, cfg.RefreshIntervalHours, logger)
	if err := sched.Start(context.Background()); err != nil {
		logger.Fatal("scheduler start failed", zap.Error(err))
	}
	defer sched.Stop()

	// 5. Initialize Handlers
	jobHandler := handlers.NewJobHandler(jobService)

	// 6. Setup Router & CORS
	if !cfg.Development() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	corsConfig := cors.DefaultConfig()
	if cfg.AllowedOrigin == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = []string{cfg.AllowedOrigin}
	}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Length", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	// 7. Define Routes
	api := r.Group("/api/v1")
	{
		api.GET("/health", handlers.HealthCheck)

		// Job Routes
		api.GET("/search", jobHandler.SearchJobs)
		api.GET("/jobs", jobHandler.ListJobs)
		api.GET("/jobs/:id", jobHandler.GetJob)
	}

	logger.Info("server starting", zap.String("port", cfg.Port))
	if err := r.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server failed to start", zap.Error(err))
	}
}
