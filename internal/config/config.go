// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container for the
// booking payments API and its command-line client. It aggregates all
// sub-configurations and is populated by merging defaults, a .env file,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
//   - validate: go-playground/validator rules checked after merging.
type StructuredConfig struct {
	// App holds application-level settings such as the API key hashing
	// parameters and the application version.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational database.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Log holds logging settings shared by the server and the client.
	Log Log `envPrefix:"LOG_"`

	// Client holds settings used only by the command-line API client.
	Client Client `envPrefix:"CLIENT_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`

	// Args holds the positional command-line arguments left after flag
	// parsing (e.g. payment ids passed to the client).
	Args []string `env:"-"`
}

// App holds application-level configuration values.
type App struct {
	// APIKeyHashKey is the HMAC key used to hash API keys before they are
	// looked up. Must match the key used when the keys were issued.
	// Env: APP_API_KEY_HASH_KEY
	APIKeyHashKey string `env:"API_KEY_HASH_KEY" validate:"required"`

	// APIKeyPrefix is stripped from incoming API keys before hashing.
	// Env: APP_API_KEY_PREFIX
	APIKeyPrefix string `env:"API_KEY_PREFIX"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Storage groups the configuration for all storage backends used by the
// application.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name. postgres:// and postgresql:// DSNs are
	// served by pgx; sqlite://, file: and :memory: DSNs by SQLite.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI" validate:"required"`

	// Migrate applies the embedded migrations on start when true.
	// Env: STORAGE_DB_MIGRATE
	Migrate bool `env:"MIGRATE"`

	// MaxOpenConns caps the size of the connection pool.
	// Env: STORAGE_DB_MAX_OPEN_CONNS
	MaxOpenConns int `env:"MAX_OPEN_CONNS" validate:"gte=0"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS" validate:"required,hostname_port"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`

	// ShutdownTimeout bounds the graceful shutdown of the HTTP server.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" validate:"gte=0"`

	// AllowedOrigins lists the origins accepted by the CORS middleware.
	// Env: SERVER_ALLOWED_ORIGINS (comma separated)
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:","`
}

// Log holds logging settings.
type Log struct {
	// Level is the minimal zerolog level that is emitted.
	// Env: LOG_LEVEL
	Level string `env:"LEVEL" validate:"omitempty,oneof=trace debug info warn error fatal panic disabled"`
}

// Client holds settings of the command-line API client.
type Client struct {
	// ServerURL is the base URL of the payments API (e.g. "http://localhost:8080").
	// Env: CLIENT_SERVER_URL
	ServerURL string `env:"SERVER_URL" validate:"required,url"`

	// APIKey is the plain API key sent with every request.
	// Env: CLIENT_API_KEY
	APIKey string `env:"API_KEY" validate:"required"`

	// RequestTimeout bounds each outbound request.
	// Env: CLIENT_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" validate:"gte=0"`
}

// defaultConfig returns the lowest-priority configuration source.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			APIKeyPrefix: "cal_",
		},
		Storage: Storage{
			DB: DB{MaxOpenConns: 10},
		},
		Server: Server{
			HTTPAddress:     "localhost:8080",
			RequestTimeout:  15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
			AllowedOrigins:  []string{"*"},
		},
		Log: Log{Level: "debug"},
		Client: Client{
			RequestTimeout: 10 * time.Second,
		},
	}
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from all available sources in the following priority order
// (last source wins for non-zero fields):
//  0. Built-in defaults
//  1. .env file (exported into the environment, never overriding it)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	cfg, err := loadConfig(os.Args[1:])
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validate()
}

func loadConfig(args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withDotEnv(os.Getenv("ENV_FILE")).
		withEnv().
		withFlags(args).
		withJSON().
		build()
}
