package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	Port        int    `toml:"port"`
	LogLevel    string `toml:"log_level"`
	LogFormat   string `toml:"log_format"`
	LogDir      string `toml:"log_dir"`
	Environment string `toml:"environment"`
	ServiceName string `toml:"service_name"`
	Version     string `toml:"version"`

	APIKey          string   `toml:"api_key"` // empty disables authentication
	TrustedProxies  []string `toml:"trusted_proxies"`
	MaxRequestBytes int64    `toml:"max_request_bytes"`

	// SeedPath is a JSON seed file; empty uses the embedded default inventory
	SeedPath        string        `toml:"seed_path"`
	SearchCacheSize int           `toml:"search_cache_size"`
	SearchCacheTTL  time.Duration `toml:"search_cache_ttl"`
	// AuditInterval is how often category counts are recounted; zero disables the audit
	AuditInterval  time.Duration `toml:"audit_interval"`
	CascadeRenames bool          `toml:"cascade_renames"`
}

// Default returns the configuration used when nothing overrides it
func Default() *Config {
	return &Config{
		Port:            DefaultPort,
		LogLevel:        DefaultLogLevel,
		LogFormat:       DefaultLogFormat,
		LogDir:          DefaultLogDir,
		Environment:     DefaultEnvironment,
		ServiceName:     DefaultServiceName,
		Version:         DefaultVersion,
		MaxRequestBytes: DefaultMaxRequestBytes,
		SearchCacheSize: DefaultSearchCacheSize,
		SearchCacheTTL:  DefaultSearchCacheTTL,
		AuditInterval:   DefaultAuditInterval,
	}
}

// Load builds the configuration from defaults, the optional TOML file named by
// CONFIG_FILE, and environment variables, in increasing order of priority.
func Load() (*Config, error) {
	// Load .env file if it exists, but don't fail if it doesn't (could be real env vars)
	_ = godotenv.Load()

	cfg := Default()

	if path := os.Getenv(EnvConfigFile); path != "" {
		if _, err := toml.DecodeFile(path, cfg); err != nil {
			return nil, fmt.Errorf(ErrFmtReadConfigFile, path, err)
		}
	}

	if portStr, ok := os.LookupEnv(EnvPort); ok {
		port, err := strconv.Atoi(portStr)
		if err != nil {
			return nil, fmt.Errorf(ErrFmtInvalidPort, err)
		}
		cfg.Port = port
	}

	cfg.LogLevel = getEnv(EnvLogLevel, cfg.LogLevel)
	cfg.LogFormat = getEnv(EnvLogFormat, cfg.LogFormat)
	cfg.LogDir = getEnv(EnvLogDir, cfg.LogDir)
	cfg.Environment = getEnv(EnvEnvironment, cfg.Environment)
	cfg.ServiceName = getEnv(EnvServiceName, cfg.ServiceName)
	cfg.Version = getEnv(EnvVersion, cfg.Version)
	cfg.APIKey = getEnv(EnvAPIKey, cfg.APIKey)
	cfg.TrustedProxies = getEnvAsList(EnvTrustedProxies, cfg.TrustedProxies)
	cfg.MaxRequestBytes = int64(getEnvAsInt(EnvMaxRequestBytes, int(cfg.MaxRequestBytes)))
	cfg.SeedPath = getEnv(EnvSeedPath, cfg.SeedPath)
	cfg.SearchCacheSize = getEnvAsInt(EnvSearchCacheSize, cfg.SearchCacheSize)
	cfg.SearchCacheTTL = getEnvAsDuration(EnvSearchCacheTTL, cfg.SearchCacheTTL)
	cfg.AuditInterval = getEnvAsDuration(EnvAuditInterval, cfg.AuditInterval)
	cfg.CascadeRenames = getEnvAsBool(EnvCascadeRenames, cfg.CascadeRenames)

	return cfg, nil
}

// IsDevelopment reports whether the process runs in a development environment
func (c *Config) IsDevelopment() bool {
	return c.Environment == "dev" || c.Environment == "development"
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

func getEnvAsBool(key string, defaultValue bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return defaultValue
	}
	return v
}

// getEnvAsList splits a comma separated variable, dropping blank entries
func getEnvAsList(key string, defaultValue []string) []string {
	raw, ok := os.LookupEnv(key)
	if !ok {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
