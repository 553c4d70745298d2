// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"
)

// StructuredConfig is the top-level configuration container shared by the
// server and the client. It is populated by merging values from environment
// variables, command-line flags, an optional JSON file and defaults.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds process-wide settings such as the log level and the request
	// integrity key.
	App App `envPrefix:"APP_"`

	// Storage holds the server persistence settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and timeouts of the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the client's view of the server.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Crypto holds client-side envelope encryption settings.
	Crypto Crypto `envPrefix:"CRYPTO_"`

	// Session holds client master password session settings.
	Session Session `envPrefix:"SESSION_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// LogLevel is a zerolog level name ("debug", "info", ...).
	// Env: APP_LOG_LEVEL
	LogLevel string `env:"LOG_LEVEL"`

	// LogDir is the directory of the client log file. Empty means the
	// directory of the executable.
	// Env: APP_LOG_DIR
	LogDir string `env:"LOG_DIR"`

	// HashKey is the HMAC key used for request integrity checking
	// (the HashSHA256 header). Empty disables the check.
	// Env: APP_HASH_KEY
	HashKey string `env:"HASH_KEY"`
}

// Storage groups the configuration for the storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects both the driver and the database: a postgres:// URL or
	// key=value string opens PostgreSQL, anything else is a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format.
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// ShutdownTimeout bounds the graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the address of the vault server as seen by the client.
type Adapter struct {
	// HTTPAddress is the server address, with or without a scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`

	// Retries is the number of retries on transport errors and 502/503/504.
	// Env: ADAPTER_RETRIES
	Retries int `env:"RETRIES"`

	// Token is sent as a bearer token when the server sits behind an
	// authenticating gateway.
	// Env: ADAPTER_TOKEN
	Token string `env:"TOKEN"`
}

// Crypto holds client-side encryption settings.
type Crypto struct {
	// SaltEncoding is "text" (default) or "binary".
	// Env: CRYPTO_SALT_ENCODING
	SaltEncoding string `env:"SALT_ENCODING"`
}

// Session holds master password session settings.
type Session struct {
	// IdleTimeout locks the session after this long without use.
	// A negative value disables the auto-lock.
	// Env: SESSION_IDLE_TIMEOUT
	IdleTimeout time.Duration `env:"IDLE_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the server configuration
// from the environment, the process command line, the JSON file and the
// defaults.
func GetStructuredConfig() (*StructuredConfig, error) {
	return loadServerConfig(os.Args[1:])
}

func loadServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := newConfigBuilder().
		withEnv().
		withFlags(args).
		withJSON().
		withDefaults().
		build()
	if err != nil {
		return nil, err
	}

	if err = cfg.validate(); err != nil {
		return nil, fmt.Errorf("invalid server config: %w", err)
	}
	return cfg, nil
}
