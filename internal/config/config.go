// Package config provides centralized configuration management for griptip.
// Settings come from environment variables, an optional TOML file and
// struct-tag defaults, in that order of precedence, and are validated on
// startup to fail fast on misconfiguration.
package config

import (
	"net"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	Pipeline PipelineConfig `file:"pipeline"`
	Server   ServerConfig   `file:"server"`
	Watch    WatchConfig    `file:"watch"`
	Logging  LoggingConfig  `file:"logging"`
}

// PipelineConfig holds the conversion input and output settings.
type PipelineConfig struct {
	// Input is the CSV product sheet to convert
	Input string `env:"GRIPTIP_INPUT" file:"input" default:"GripTipData - Blad1.csv"`

	// Output is where the JSON document is written
	Output string `env:"GRIPTIP_OUTPUT" file:"output" default:"wax_data.json"`

	// MaxFileSize is the largest sheet accepted, in bytes (default: 10MB)
	MaxFileSize int64 `env:"GRIPTIP_MAX_FILE_SIZE" file:"max_file_size" default:"10485760"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	// Host is the interface to bind to (default: 0.0.0.0)
	Host string `env:"SERVER_HOST" file:"host" default:"0.0.0.0"`

	// Port is the port to listen on (default: 8080)
	// PORT is accepted as well for container platforms
	Port int `env:"SERVER_PORT" envAlt:"PORT" file:"port" default:"8080"`

	ReadTimeout  time.Duration `env:"SERVER_READ_TIMEOUT" file:"read_timeout" default:"15s"`
	WriteTimeout time.Duration `env:"SERVER_WRITE_TIMEOUT" file:"write_timeout" default:"30s"`
	IdleTimeout  time.Duration `env:"SERVER_IDLE_TIMEOUT" file:"idle_timeout" default:"60s"`

	// ShutdownTimeout bounds graceful shutdown (default: 30s)
	ShutdownTimeout time.Duration `env:"SERVER_SHUTDOWN_TIMEOUT" file:"shutdown_timeout" default:"30s"`

	// RequestTimeout is the middleware timeout for requests (default: 60s)
	RequestTimeout time.Duration `env:"SERVER_REQUEST_TIMEOUT" file:"request_timeout" default:"60s"`

	// MaxConcurrent is the number of conversions served in parallel (default: 4)
	MaxConcurrent int `env:"SERVER_MAX_CONCURRENT" file:"max_concurrent" default:"4"`

	// MaxWait is how long a request waits for a conversion slot (default: 10s)
	MaxWait time.Duration `env:"SERVER_MAX_WAIT" file:"max_wait" default:"10s"`

	// TrustedProxies lists proxy CIDRs whose X-Real-IP and X-Forwarded-For
	// headers are believed. Comma-separated in the environment.
	TrustedProxies []string `env:"TRUSTED_PROXIES" file:"trusted_proxies"`

	// APIKeys, when set, are required in the X-API-Key header on /api routes
	APIKeys []string `env:"API_KEYS" file:"api_keys"`
}

// WatchConfig holds input watcher settings.
type WatchConfig struct {
	// Debounce collapses bursts of file events into one conversion (default: 250ms)
	Debounce time.Duration `env:"WATCH_DEBOUNCE" file:"debounce" default:"250ms"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	// Level is the minimum log level: debug, info, warn, error (default: info)
	Level string `env:"LOG_LEVEL" file:"level" default:"info"`

	// Format is the log format: text or json (default: text)
	Format string `env:"LOG_FORMAT" file:"format" default:"text"`
}

// Addr returns the server listen address in host:port format.
func (c *ServerConfig) Addr() string {
	return net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
}
