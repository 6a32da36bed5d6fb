package main

import (
	"os"

	"github.com/osse101/HomeInventory_Go/internal/bootstrap"
	"github.com/osse101/HomeInventory_Go/internal/config"
	"github.com/osse101/HomeInventory_Go/internal/logger"
)

// initCLILogger installs a stderr logger for one-shot commands, which have no session log file.
// Output stays on stderr so reports written to stdout are not mixed with logs.
func initCLILogger() {
	cfg := config.Default()
	cfg.LogLevel = os.Getenv(config.EnvLogLevel)
	if cfg.LogLevel == "" {
		cfg.LogLevel = logger.LogLevelWarn
	}
	logger.InitLoggerWithWriter(bootstrap.LoggerConfig(cfg), os.Stderr)
}
