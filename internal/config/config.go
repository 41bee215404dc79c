package config

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/focusnest/docker-server/internal/envconfig"
)

const (
	defaultPort            = 5000
	defaultShutdownTimeout = 10 * time.Second
)

// Config encapsulates the runtime configuration for the server.
type Config struct {
	Port            int           `validate:"min=1,max=65535"`
	Debug           bool
	ShutdownTimeout time.Duration `validate:"gt=0"`
}

// Load reads environment variables into Config with validation.
func Load() (Config, error) {
	// An empty PORT is a startup error; only an unset one takes the default.
	port, err := parsePort(envconfig.Lookup("PORT", strconv.Itoa(defaultPort)))
	if err != nil {
		return Config{}, err
	}

	shutdownTimeout, err := time.ParseDuration(envconfig.Get("SHUTDOWN_TIMEOUT", defaultShutdownTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("invalid SHUTDOWN_TIMEOUT: %w", err)
	}

	cfg := Config{
		Port:            port,
		Debug:           envconfig.Bool("DEBUG", false),
		ShutdownTimeout: shutdownTimeout,
	}

	if err := envconfig.Validate(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

// Addr is the listen address binding every interface on the configured port.
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func parsePort(raw string) (int, error) {
	port, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, fmt.Errorf("invalid PORT %q: %w", raw, err)
	}
	return port, nil
}
