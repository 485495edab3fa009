package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/alinapilipuk-web/kspro/config"
	"github.com/alinapilipuk-web/kspro/db"
	"github.com/alinapilipuk-web/kspro/handlers"
	"github.com/alinapilipuk-web/kspro/repositories"
	"github.com/alinapilipuk-web/kspro/routes"
	"github.com/alinapilipuk-web/kspro/services"
	"github.com/alinapilipuk-web/kspro/storage"
)

func main() {
	// Настройка логгера
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

	// Загрузка конфигурации
	cfg, err := config.Load()
	if err != nil {
		logger.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}
	logger.Info("configuration loaded", slog.Int("port", cfg.ServerPort))

	// Хранилище данных. Без DATABASE_URL или при недоступной базе сайт
	// работает на встроенных демонстрационных данных, чтение из базы при
	// сбоях откатывается на них же.
	memStore := repositories.NewMemoryStore()

	championshipRepo := memStore.Championships()
	teamRepo := memStore.Teams()
	matchRepo := memStore.Matches()
	playerRepo := memStore.Players()
	goalRepo := memStore.Goals()

	if cfg.DatabaseURL == "" {
		logger.Info("DATABASE_URL is not set, serving built-in demo data")
	} else {
		dbConn, err := db.Connect(cfg.DatabaseURL, 5*time.Second)
		if err != nil {
			logger.Error("failed to connect to database, serving built-in demo data", slog.Any("error", err))
		} else {
			defer func() {
				if err := dbConn.Close(); err != nil {
					logger.Error("failed to close database connection", slog.Any("error", err))
				}
			}()
			logger.Info("database connection established")

			championshipRepo = repositories.NewFallbackChampionshipRepository(
				repositories.NewPostgresChampionshipRepository(dbConn), championshipRepo, logger)
			teamRepo = repositories.NewFallbackTeamRepository(
				repositories.NewPostgresTeamRepository(dbConn), teamRepo, logger)
			matchRepo = repositories.NewFallbackMatchRepository(
				repositories.NewPostgresMatchRepository(dbConn), matchRepo, logger)
			playerRepo = repositories.NewFallbackPlayerRepository(
				repositories.NewPostgresPlayerRepository(dbConn), playerRepo, logger)
			goalRepo = repositories.NewFallbackGoalRepository(
				repositories.NewPostgresGoalRepository(dbConn), goalRepo, logger)
		}
	}
	logger.Info("repositories initialized")

	// Загрузчик логотипов (Cloudflare R2). Без конфигурации R2 логотипы
	// недоступны, остальной функционал не страдает.
	var uploader storage.FileUploader
	if cfg.R2.Configured() {
		uploader, err = storage.NewCloudflareR2Uploader(storage.CloudflareR2UploaderConfig{
			AccountID:       cfg.R2.AccountID,
			AccessKeyID:     cfg.R2.AccessKeyID,
			SecretAccessKey: cfg.R2.SecretAccessKey,
			BucketName:      cfg.R2.Bucket,
			PublicBaseURL:   cfg.R2.PublicBaseURL,
		})
		if err != nil {
			logger.Error("failed to initialize Cloudflare R2 uploader", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("Cloudflare R2 uploader initialized")
	} else {
		uploader = storage.NewNoopUploader()
		logger.Info("R2 storage is not configured, team logo uploads disabled")
	}

	// Инициализация сервисов
	authService, err := services.NewAuthService(cfg.AdminPassword, cfg.JWTSecretKey)
	if err != nil {
		logger.Error("failed to initialize auth service", slog.Any("error", err))
		os.Exit(1)
	}
	championshipService := services.NewChampionshipService(championshipRepo)
	teamService := services.NewTeamService(teamRepo, championshipRepo, uploader)
	matchService := services.NewMatchService(matchRepo, teamRepo, championshipRepo)
	playerService := services.NewPlayerService(playerRepo, teamRepo, championshipRepo)
	goalService := services.NewGoalService(goalRepo, matchRepo)
	overviewService := services.NewOverviewService(championshipRepo, teamService, matchRepo, playerRepo, goalRepo, logger)
	logger.Info("services initialized")

	// Маршрутизатор и обработчики
	router := routes.InitRoutes(routes.Handlers{
		Championship: handlers.NewChampionshipHandler(championshipService),
		Team:         handlers.NewTeamHandler(teamService),
		Match:        handlers.NewMatchHandler(matchService),
		Player:       handlers.NewPlayerHandler(playerService),
		Goal:         handlers.NewGoalHandler(goalService),
		Overview:     handlers.NewOverviewHandler(overviewService),
		Auth:         handlers.NewAuthHandler(authService),
	}, cfg.JWTSecretKey)
	logger.Info("routes configured")

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	serverErrors := make(chan error, 1)
	go func() {
		logger.Info("starting server", slog.String("address", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
		logger.Info("server stopped gracefully")
	case sig := <-quit:
		logger.Info("shutdown signal received", slog.String("signal", sig.String()))
		shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancelShutdown()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("graceful shutdown failed", slog.Any("error", err))
			if closeErr := server.Close(); closeErr != nil {
				logger.Error("failed to force close server", slog.Any("error", closeErr))
			}
			os.Exit(1)
		}
		logger.Info("server shutdown complete")
	}
	logger.Info("application exited")
}
