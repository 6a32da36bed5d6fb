package bootstrap

import (
	"context"
	"log/slog"

	"github.com/osse101/HomeInventory_Go/internal/sse"
)

// ShutdownComponents holds all components that need graceful shutdown.
// Nil components are skipped.
type ShutdownComponents struct {
	Server           stoppableServer
	AuditWorker      shutdownableService
	Hub              *sse.Hub
	InventoryService shutdownableService
}

type stoppableServer interface {
	Stop(ctx context.Context) error
}

// shutdownableService is anything with a context-bounded Shutdown
type shutdownableService interface {
	Shutdown(context.Context) error
}

// GracefulShutdown performs graceful shutdown of all application components.
// It shuts down in order:
// 1. HTTP server (stop accepting new requests)
// 2. Audit worker (no further consistency checks)
// 3. SSE hub (disconnect streaming clients)
// 4. Inventory service (drop caches, flush final metrics)
//
// Errors during shutdown are logged but do not stop the shutdown sequence.
func GracefulShutdown(ctx context.Context, components ShutdownComponents) {
	slog.Info(LogMsgShuttingDownServer)

	if components.Server != nil {
		if err := components.Server.Stop(ctx); err != nil {
			slog.Error(LogMsgServerForcedShutdown, "error", err)
		}
	}

	if components.AuditWorker != nil {
		if err := components.AuditWorker.Shutdown(ctx); err != nil {
			slog.Error(LogMsgAuditWorkerFailed, "error", err)
		}
	}

	if components.Hub != nil {
		slog.Info(LogMsgStoppingSSEHub, "clients", components.Hub.ClientCount())
		components.Hub.Stop()
	}

	if components.InventoryService != nil {
		shutdownService(ctx, ServiceNameInventory, components.InventoryService)
	}

	slog.Info(LogMsgServerStopped)
}

func shutdownService(ctx context.Context, name string, service shutdownableService) {
	if err := service.Shutdown(ctx); err != nil {
		slog.Error(name+LogMsgServiceShutdownFailed, "error", err)
	}
}
