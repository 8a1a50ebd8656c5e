// Package config reads server settings from the environment.
package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/mmynk/godutch/internal/storage/sqlite"
	"github.com/mmynk/godutch/pkg/logging"
)

// Config holds the server configuration.
type Config struct {
	// Port is the HTTP listen port (PORT, default 8080).
	Port int

	// DBPath is the SQLite database (DB_PATH). The default keeps sheets in
	// memory for the life of the process.
	DBPath string

	// LogLevel comes from LOG_LEVEL; LogJSON from LOG_FORMAT=json.
	LogLevel slog.Level
	LogJSON  bool

	// TokenSecret signs sheet edit tokens (TOKEN_SECRET). When unset a random
	// secret is generated and GeneratedSecret is true.
	TokenSecret     string
	GeneratedSecret bool

	// TokenTTL is how long edit tokens stay valid (TOKEN_TTL, default 24h).
	TokenTTL time.Duration

	// MetricsEnabled serves /metrics (METRICS_ENABLED, default true).
	MetricsEnabled bool
}

// Load builds a Config from getenv, usually os.Getenv.
func Load(getenv func(string) string) (Config, error) {
	get := func(key, fallback string) string {
		if value := getenv(key); value != "" {
			return value
		}
		return fallback
	}

	port, err := strconv.Atoi(get("PORT", "8080"))
	if err != nil || port <= 0 || port > 65535 {
		return Config{}, fmt.Errorf("invalid PORT %q", getenv("PORT"))
	}

	ttl, err := time.ParseDuration(get("TOKEN_TTL", "24h"))
	if err != nil || ttl <= 0 {
		return Config{}, fmt.Errorf("invalid TOKEN_TTL %q", getenv("TOKEN_TTL"))
	}

	metricsEnabled, err := strconv.ParseBool(get("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("invalid METRICS_ENABLED: %w", err)
	}

	cfg := Config{
		Port:           port,
		DBPath:         get("DB_PATH", sqlite.MemoryDSN),
		LogLevel:       logging.ParseLevel(getenv("LOG_LEVEL")),
		LogJSON:        get("LOG_FORMAT", "text") == "json",
		TokenSecret:    getenv("TOKEN_SECRET"),
		TokenTTL:       ttl,
		MetricsEnabled: metricsEnabled,
	}

	if cfg.TokenSecret == "" {
		secret, err := randomSecret()
		if err != nil {
			return Config{}, err
		}
		cfg.TokenSecret = secret
		cfg.GeneratedSecret = true
	}

	return cfg, nil
}

// Addr is the listen address for Port.
func (c Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

func randomSecret() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("failed to generate token secret: %w", err)
	}
	return hex.EncodeToString(b), nil
}
