package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	OutboxPollInterval       time.Duration
	BackfillInterval         time.Duration
	EnableOutboxRelay        bool
	EnableMissionConsumer    bool
	EnableMissionBackfill    bool
	MissionReconcileBatchMax int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "brandcast"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),

		OutboxPollInterval:       envDuration("OUTBOX_POLL_INTERVAL", 2*time.Second),
		BackfillInterval:         envDuration("MISSION_BACKFILL_INTERVAL", 15*time.Minute),
		EnableOutboxRelay:        envBool("ENABLE_OUTBOX_RELAY", true),
		EnableMissionConsumer:    envBool("ENABLE_MISSION_CONSUMER", true),
		EnableMissionBackfill:    envBool("ENABLE_MISSION_BACKFILL", true),
		MissionReconcileBatchMax: envInt("MISSION_RECONCILE_BATCH_MAX", 500),
	}, nil
}

func envBool(name string, fallback bool) bool {
	raw := strings.TrimSpace(strings.ToLower(os.Getenv(name)))
	if raw == "" {
		return fallback
	}
	switch raw {
	case "1", "true", "t", "yes", "y", "on":
		return true
	case "0", "false", "f", "no", "n", "off":
		return false
	default:
		return fallback
	}
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}

func envDuration(name string, fallback time.Duration) time.Duration {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}
	return value
}
