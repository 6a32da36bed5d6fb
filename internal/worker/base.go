package worker

import (
	"context"
	"sync"

	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// BaseWorker provides the shutdown signal and in-flight tracking shared by background workers
type BaseWorker struct {
	shutdown chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
}

func (w *BaseWorker) init() {
	if w.shutdown == nil {
		w.shutdown = make(chan struct{})
	}
}

// shutdownInternal signals the worker loop and waits for in-flight work or ctx expiry
func (w *BaseWorker) shutdownInternal(ctx context.Context, workerName string) error {
	log := logger.FromContext(ctx)
	log.Info(LogMsgWorkerShuttingDown, "worker", workerName)

	w.stopOnce.Do(func() {
		close(w.shutdown)
	})

	done := make(chan struct{})
	go func() {
		w.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		log.Info(LogMsgWorkerShutdownComplete, "worker", workerName)
		return nil
	case <-ctx.Done():
		log.Warn(LogMsgWorkerShutdownTimeout, "worker", workerName)
		return ctx.Err()
	}
}
