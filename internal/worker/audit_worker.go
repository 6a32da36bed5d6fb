package worker

import (
	"context"
	"errors"
	"time"

	"github.com/osse101/HomeInventory_Go/internal/domain"
	"github.com/osse101/HomeInventory_Go/internal/logger"
	"github.com/osse101/HomeInventory_Go/internal/metrics"
)

// HealthChecker is the part of the inventory service the audit worker needs
type HealthChecker interface {
	CheckHealth(ctx context.Context) error
}

// AuditWorker periodically recounts category membership and reports drift.
// It never repairs counts: drift is a defect to be surfaced, not hidden.
type AuditWorker struct {
	BaseWorker
	checker  HealthChecker
	interval time.Duration
}

// NewAuditWorker creates an AuditWorker. An interval of zero or less disables it.
func NewAuditWorker(checker HealthChecker, interval time.Duration) *AuditWorker {
	w := &AuditWorker{
		checker:  checker,
		interval: interval,
	}
	w.init()
	return w
}

// Start launches the audit loop
func (w *AuditWorker) Start() {
	log := logger.FromContext(context.Background())
	if w.interval <= 0 {
		log.Info(LogMsgAuditDisabled)
		return
	}

	w.wg.Add(1)
	go w.run()
	log.Info(LogMsgAuditStarted, "interval", w.interval)
}

func (w *AuditWorker) run() {
	defer w.wg.Done()

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			_ = w.RunOnce(context.Background())
		case <-w.shutdown:
			return
		}
	}
}

// RunOnce performs a single audit and returns the checker's error
func (w *AuditWorker) RunOnce(ctx context.Context) error {
	log := logger.FromContext(ctx)

	err := w.checker.CheckHealth(ctx)
	switch {
	case err == nil:
		log.Debug(LogMsgAuditPassed)
	case errors.Is(err, domain.ErrCountDrift):
		metrics.CountDrift.Inc()
		log.Error(LogMsgAuditDrift, "error", err)
	default:
		log.Warn(LogMsgAuditFailed, "error", err)
	}
	return err
}

// Shutdown stops the loop and waits for an in-flight audit
func (w *AuditWorker) Shutdown(ctx context.Context) error {
	return w.shutdownInternal(ctx, AuditWorkerName)
}
