package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"order-desk/internal/config"
	"order-desk/internal/handler"
	"order-desk/internal/history"
	"order-desk/internal/printdoc"
	"order-desk/internal/repository"
	"order-desk/internal/router"
	"order-desk/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting order-desk API server")

	// Orders API client, shared by the repository-facing components
	client, err := repository.NewClient(cfg.OrdersAPI.BaseURL, cfg.OrdersAPI.ServiceToken, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize orders API client: %w", err)
	}

	// Status-history source: the real API log, or a synthesized local log
	// in demo environments
	var histSrc history.Source
	if cfg.History.DemoMode {
		logger.Warn().Msg("demo history mode enabled, status history is local only")
		histSrc = history.NewDemoSource(logger)
	} else {
		histSrc = history.NewAPISource(client, logger)
	}

	orderService := service.NewOrderService(client, client, histSrc, logger)

	composer, err := printdoc.NewComposer(printdoc.Company{
		Name:    cfg.Company.Name,
		Address: cfg.Company.Address,
		Phone:   cfg.Company.Phone,
		Email:   cfg.Company.Email,
		Terms:   cfg.Company.Terms,
	}, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize print composer: %w", err)
	}

	orderHandler := handler.NewOrderHandler(orderService, logger)
	printHandler := handler.NewPrintHandler(orderService, composer, logger)

	mux := router.New(orderHandler, printHandler, cfg.Server.AllowedOrigins, logger)

	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Str("orders_api", cfg.OrdersAPI.BaseURL).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
