// Package config provides configuration loading and validation for the service.
// Configuration is loaded from YAML files with environment variable overrides
// using a layered system: defaults -> base.yaml -> {profile}.yaml -> env vars.
package config

import "time"

// Config holds all configuration for the service.
type Config struct {
	Server    ServerConfig    `koanf:"server"`
	Log       LogConfig       `koanf:"log"`
	Board     BoardConfig     `koanf:"board"`
	Telemetry TelemetryConfig `koanf:"telemetry"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host         string        `koanf:"host"`
	Port         int           `koanf:"port"`
	ReadTimeout  time.Duration `koanf:"read_timeout"`
	WriteTimeout time.Duration `koanf:"write_timeout"`
	IdleTimeout  time.Duration `koanf:"idle_timeout"`
}

// LogConfig holds structured logging settings.
type LogConfig struct {
	Level  string `koanf:"level"`
	Format string `koanf:"format"`
}

// BoardConfig holds board behavior settings.
type BoardConfig struct {
	Events EventsConfig `koanf:"events"`
	Bulk   BulkConfig   `koanf:"bulk"`
}

// EventsConfig holds event-stream settings.
type EventsConfig struct {
	// BufferSize is the per-client snapshot channel capacity. A client that
	// falls further behind than this drops frames.
	BufferSize int `koanf:"buffer_size"`
}

// BulkConfig holds bulk move settings.
type BulkConfig struct {
	MaxWorkers int `koanf:"max_workers"`
	MaxItems   int `koanf:"max_items"`
}

// TelemetryConfig holds OpenTelemetry settings.
type TelemetryConfig struct {
	Enabled     bool   `koanf:"enabled"`
	Exporter    string `koanf:"exporter"`
	Endpoint    string `koanf:"endpoint"`
	ServiceName string `koanf:"service_name"`
}
