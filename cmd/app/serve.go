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

	"github.com/spf13/cobra"

	_ "github.com/osse101/HomeInventory_Go/docs"
	"github.com/osse101/HomeInventory_Go/internal/bootstrap"
	"github.com/osse101/HomeInventory_Go/internal/config"
	"github.com/osse101/HomeInventory_Go/internal/inventory"
	"github.com/osse101/HomeInventory_Go/internal/server"
	"github.com/osse101/HomeInventory_Go/internal/stats"
	"github.com/osse101/HomeInventory_Go/internal/worker"
)

const shutdownTimeout = 10 * time.Second

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("setting up logger: %w", err)
	}
	defer logFile.Close()

	if warnings, err := config.ValidateEnvWithWarnings(); err != nil {
		slog.Warn("Environment validation failed", "error", err)
	} else {
		for _, w := range warnings {
			slog.Warn(w)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	clock := inventory.RealClock{}
	bus, hub := bootstrap.InitializeEventSystem()
	if err := bootstrap.RegisterEventHandlers(bus, hub); err != nil {
		hub.Stop()
		return err
	}

	inventoryService, err := bootstrap.InitializeInventory(ctx, cfg, bus, clock)
	if err != nil {
		hub.Stop()
		return err
	}

	auditWorker := worker.NewAuditWorker(inventoryService, cfg.AuditInterval)
	auditWorker.Start()

	srv := server.NewServer(server.Options{
		Port:            cfg.Port,
		APIKey:          cfg.APIKey,
		TrustedProxies:  cfg.TrustedProxies,
		MaxRequestBytes: cfg.MaxRequestBytes,
	}, server.Services{
		Inventory: inventoryService,
		Stats:     stats.NewService(inventoryService, clock),
		Hub:       hub,
		Clock:     clock,
	})

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case <-ctx.Done():
	case err := <-serveErr:
		runErr = err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Server:           srv,
		AuditWorker:      auditWorker,
		Hub:              hub,
		InventoryService: inventoryService,
	})

	return runErr
}
