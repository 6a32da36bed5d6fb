package config

import "time"

// Environment variable names
const (
	EnvConfigFile      = "CONFIG_FILE"
	EnvSchemaVersion   = "ENV_SCHEMA_VERSION"
	EnvPort            = "PORT"
	EnvLogLevel        = "LOG_LEVEL"
	EnvLogFormat       = "LOG_FORMAT"
	EnvLogDir          = "LOG_DIR"
	EnvEnvironment     = "ENVIRONMENT"
	EnvServiceName     = "SERVICE_NAME"
	EnvVersion         = "VERSION"
	EnvAPIKey          = "API_KEY"
	EnvTrustedProxies  = "TRUSTED_PROXIES"
	EnvMaxRequestBytes = "MAX_REQUEST_BYTES"
	EnvSeedPath        = "SEED_PATH"
	EnvSearchCacheSize = "SEARCH_CACHE_SIZE"
	EnvSearchCacheTTL  = "SEARCH_CACHE_TTL"
	EnvAuditInterval   = "AUDIT_INTERVAL"
	EnvCascadeRenames  = "CASCADE_RENAMES"
)

// Defaults applied before the config file and environment are read
const (
	DefaultPort            = 8080
	DefaultLogLevel        = "info"
	DefaultLogFormat       = "text"
	DefaultLogDir          = "logs"
	DefaultEnvironment     = "dev"
	DefaultServiceName     = "home-inventory"
	DefaultVersion         = "dev"
	DefaultMaxRequestBytes = 10 << 20
	DefaultSearchCacheSize = 256
	DefaultSearchCacheTTL  = 5 * time.Minute
	DefaultAuditInterval   = 5 * time.Minute
)

// Example values shipped in .env.example that must not reach production
const (
	ExampleAPIKey = "generate_with_openssl_rand_hex_32"
)

// Error messages
const (
	ErrFmtInvalidPort    = "invalid PORT value: %w"
	ErrFmtReadConfigFile = "failed to read config file %s: %w"
)
