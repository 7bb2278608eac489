package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmarket-backend/config"
	_ "go-jobmarket-backend/docs" // Important for Swagger
	v1 "go-jobmarket-backend/internal/delivery/http/v1"
	"go-jobmarket-backend/internal/repository/postgres"
	"go-jobmarket-backend/internal/usecase"
	"go-jobmarket-backend/pkg/database"
	"go-jobmarket-backend/pkg/logger"
	"go-jobmarket-backend/pkg/redis"

	"github.com/go-playground/validator/v10"
)

// @title           Job Marketplace Backend API
// @version         1.0
// @description     Application lifecycle, messaging, appointments, favorites and premium status for the job marketplace.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job marketplace backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when unavailable)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to memory", "error", err)
	}
	defer redis.Close()

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	jobRepo := postgres.NewJobPostRepository(dbPool)
	applicationRepo := postgres.NewApplicationRepository(dbPool)
	messageRepo := postgres.NewMessageRepository(dbPool)
	conversationRepo := postgres.NewConversationRepository(dbPool)
	appointmentRepo := postgres.NewAppointmentRepository(dbPool)
	favoriteRepo := postgres.NewFavoriteRepository(dbPool)

	// 6. Setup UseCases
	validate := validator.New()
	profileUC := usecase.NewProfileUsecase(profileRepo)
	applicationUC := usecase.NewApplicationUsecase(applicationRepo, jobRepo)
	conversationUC := usecase.NewConversationUsecase(messageRepo, conversationRepo, applicationRepo, cfg.PlaceholderAvatarURL)
	appointmentUC := usecase.NewAppointmentUsecase(appointmentRepo, applicationRepo, validate)
	favoriteUC := usecase.NewFavoriteUsecase(favoriteRepo, jobRepo)
	premiumUC := usecase.NewPremiumUsecase(profileRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ProfileUC:      profileUC,
		ApplicationUC:  applicationUC,
		ConversationUC: conversationUC,
		AppointmentUC:  appointmentUC,
		FavoriteUC:     favoriteUC,
		PremiumUC:      premiumUC,
		Config:         cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
