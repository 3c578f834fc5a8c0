package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/billmitra/server/internal/billing"
	"github.com/billmitra/server/internal/config"
	"github.com/billmitra/server/internal/desk"
	"github.com/billmitra/server/internal/export"
	"github.com/billmitra/server/internal/gateway"
	"github.com/billmitra/server/pkg/events"
)

func main() {
	// Initialize logger
	logger, err := zap.NewProduction()
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer logger.Sync()

	logger.Info("starting BillMitra billing server")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	// Initialize event bus
	bus := events.NewBus(logger)
	subscribeNotifications(bus, logger)
	logger.Info("initialized event bus")

	// Initialize the billing desk
	billDesk := desk.New(billing.NewCalculator(), bus, logger)
	logger.Info("initialized billing desk")

	// Initialize spreadsheet exporter
	exporter := export.NewSheetsExporter(cfg.Sheets, logger)
	if cfg.Sheets.URL == "" {
		logger.Warn("spreadsheet export endpoint not configured, export action will be rejected")
	}

	// Initialize API gateway
	gw := gateway.NewGateway(billDesk, exporter, cfg, logger, bus)
	logger.Info("initialized API gateway")

	// Create HTTP server
	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      gw,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	// Start server in goroutine
	go func() {
		logger.Info("starting HTTP server",
			zap.String("address", server.Addr),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server exited")
}

// subscribeNotifications wires the user-facing notification log, the
// server-side stand-in for the form's toast messages.
func subscribeNotifications(bus *events.Bus, logger *zap.Logger) {
	bus.Subscribe(events.EventBillGenerated, func(ctx context.Context, event events.Event) error {
		logger.Info("bill generated successfully",
			zap.String("bill_id", event.BillID),
			zap.Any("details", event.Payload),
		)
		return nil
	})

	bus.Subscribe(events.EventDocumentRendered, func(ctx context.Context, event events.Event) error {
		logger.Info("bill document downloaded",
			zap.String("bill_id", event.BillID),
			zap.Any("details", event.Payload),
		)
		return nil
	})

	bus.Subscribe(events.EventMessageCopied, func(ctx context.Context, event events.Event) error {
		logger.Info("share message served",
			zap.String("bill_id", event.BillID),
		)
		return nil
	})

	bus.Subscribe(events.EventExportSucceeded, func(ctx context.Context, event events.Event) error {
		logger.Info("bill exported to spreadsheet",
			zap.String("bill_id", event.BillID),
		)
		return nil
	})

	bus.Subscribe(events.EventExportFailed, func(ctx context.Context, event events.Event) error {
		logger.Warn("spreadsheet export failed",
			zap.String("bill_id", event.BillID),
			zap.Any("details", event.Payload),
		)
		return nil
	})
}
