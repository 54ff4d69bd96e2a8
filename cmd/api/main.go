package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"chopnow/internal/auth"
	"chopnow/internal/catalog"
	"chopnow/internal/config"
	"chopnow/internal/database"
	"chopnow/internal/handler"
	"chopnow/internal/payment"
	"chopnow/internal/repository"
	"chopnow/internal/router"
	"chopnow/internal/service"
	"chopnow/internal/tracker"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting chopnow API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize document store connection
	client, db, err := database.Connect(ctx, cfg.Mongo, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer func() {
		disconnectCtx, disconnectCancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer disconnectCancel()
		if err := client.Disconnect(disconnectCtx); err != nil {
			logger.Error().Err(err).Msg("failed to disconnect from database")
		}
	}()

	// Initialize the added-items tracker
	redisClient, err := tracker.NewClient(ctx, cfg.Redis)
	if err != nil {
		return fmt.Errorf("failed to initialize tracker store: %w", err)
	}
	defer redisClient.Close()
	addedItems := tracker.NewAddedItems(redisClient, logger)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db, logger)
	foodRepo := repository.NewFoodRepository(db, logger)
	cartRepo := repository.NewCartRepository(db, logger)
	savedRepo := repository.NewSavedItemRepository(db, logger)
	orderRepo := repository.NewOrderRepository(db, logger)

	// Seed the catalog when configured
	if cfg.Seed.Enabled {
		seeder, err := catalog.NewSeeder(ctx, cfg.Seed, foodRepo, logger)
		if err != nil {
			return fmt.Errorf("failed to initialize catalog seeder: %w", err)
		}
		seeded, err := seeder.Run(ctx)
		if err != nil {
			return fmt.Errorf("failed to seed catalog: %w", err)
		}
		logger.Info().Int("items", seeded).Msg("catalog seeded")
	}

	// Initialize auth tokens and payment gateway client
	tokens := auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)
	paystack := payment.NewClient(cfg.Paystack, logger)

	// Initialize services
	userService := service.NewUserService(userRepo, tokens, logger)
	catalogService := service.NewCatalogService(foodRepo, logger)
	cartService := service.NewCartService(cartRepo, foodRepo, userRepo, addedItems, logger)
	savedService := service.NewSavedService(savedRepo, foodRepo, logger)
	orderService := service.NewOrderService(orderRepo, logger)

	// Initialize HTTP handlers
	userHandler := handler.NewUserHandler(userService, logger)
	catalogHandler := handler.NewCatalogHandler(catalogService, logger)
	cartHandler := handler.NewCartHandler(cartService, logger)
	savedHandler := handler.NewSavedHandler(savedService, logger)
	orderHandler := handler.NewOrderHandler(cartService, orderService, paystack, cfg.Paystack.CallbackURL, logger)

	// Initialize router
	mux := router.New(userHandler, catalogHandler, cartHandler, savedHandler, orderHandler, tokens, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	// Start HTTP server in a goroutine
	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		// Create a context with timeout for shutdown
		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		// Attempt graceful shutdown
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			// Force close
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
