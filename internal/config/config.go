// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"time"
)

// StructuredConfig is the merged configuration shared by all binaries.
//
// Struct tags:
//   - envPrefix: prefix applied to nested env lookups (caarlos0/env).
//   - env: environment variable name for scalar fields.
type StructuredConfig struct {
	App     App     `envPrefix:"APP_"`
	Storage Storage `envPrefix:"STORAGE_"`
	Server  Server  `envPrefix:"SERVER_"`
	Adapter Adapter `envPrefix:"ADAPTER_"`
	Log     Log     `envPrefix:"LOG_"`

	// JSONFilePath is an optional JSON config file. Env CONFIG or -c / -config.
	JSONFilePath string `env:"CONFIG"`
	// EnvFilePath is the dotenv file loaded before the environment is read.
	// Env ENV_FILE or -env-file; defaults to ".env" and may be absent.
	EnvFilePath string `env:"ENV_FILE"`
}

// App holds application-level settings.
type App struct {
	// Version is reported in the startup log line.
	// Env: APP_VERSION
	Version string `env:"VERSION"`

	// TokenBytes is the number of random bytes in a new auth token key.
	// The key is hex encoded, so its length is twice this value.
	// Env: APP_TOKEN_BYTES
	TokenBytes int `env:"TOKEN_BYTES"`
}

// Storage groups persistence settings.
type Storage struct {
	DB DB `envPrefix:"DB_"`
}

// DB holds database connection settings.
type DB struct {
	// DSN selects the driver by scheme: postgres:// or postgresql:// use pgx,
	// sqlite://, file: or a bare path use go-sqlite3.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`

	// WaitAttempts bounds how many pings are made before giving up at startup.
	// Env: STORAGE_DB_WAIT_ATTEMPTS
	WaitAttempts int `env:"WAIT_ATTEMPTS"`

	// WaitInterval is the pause between pings.
	// Env: STORAGE_DB_WAIT_INTERVAL
	WaitInterval time.Duration `env:"WAIT_INTERVAL"`

	// SkipMigrations disables applying migrations on server start.
	// Env: STORAGE_DB_SKIP_MIGRATIONS
	SkipMigrations bool `env:"SKIP_MIGRATIONS"`
}

// Server holds listener settings.
type Server struct {
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: SERVER_GRPC_ADDRESS
	GRPCAddress string `env:"GRPC_ADDRESS"`
	// RequestTimeout bounds a single inbound request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
	// ShutdownTimeout bounds graceful shutdown.
	// Env: SERVER_SHUTDOWN_TIMEOUT
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT"`
}

// Adapter holds the terminal client's view of the API.
type Adapter struct {
	// HTTPAddress is the API base address, with or without scheme.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Log holds logging settings.
type Log struct {
	// Env: LOG_LEVEL
	Level string `env:"LEVEL"`
	// File is where the terminal client writes its log.
	// Env: LOG_FILE
	File string `env:"FILE"`
}

// Defaults applied when no source sets a value.
const (
	DefaultHTTPAddress     = "localhost:8080"
	DefaultTokenBytes      = 20
	DefaultWaitAttempts    = 30
	DefaultWaitInterval    = time.Second
	DefaultRequestTimeout  = 30 * time.Second
	DefaultShutdownTimeout = 10 * time.Second
	DefaultEnvFile         = ".env"
	DefaultClientLogFile   = "recipe-client.log"
)

func defaults() *StructuredConfig {
	return &StructuredConfig{
		App: App{TokenBytes: DefaultTokenBytes},
		Storage: Storage{DB: DB{
			WaitAttempts: DefaultWaitAttempts,
			WaitInterval: DefaultWaitInterval,
		}},
		Server: Server{
			HTTPAddress:     DefaultHTTPAddress,
			RequestTimeout:  DefaultRequestTimeout,
			ShutdownTimeout: DefaultShutdownTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultHTTPAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Log: Log{Level: "debug", File: DefaultClientLogFile},
	}
}

// GetStructuredConfig merges every source without validating the result.
// fs may carry extra flags owned by the caller; nil means a fresh set.
func GetStructuredConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(args).
		withEnv().
		withFlags(fs, args).
		withJSON().
		withDefaults().
		build()
}

// GetServerConfig loads and validates the API server configuration.
func GetServerConfig(args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(nil, args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateServer()
}

// GetAdminConfig loads the configuration for operator commands, which only
// need the database.
func GetAdminConfig(fs *flag.FlagSet, args []string) (*StructuredConfig, error) {
	cfg, err := GetStructuredConfig(fs, args)
	if err != nil {
		return nil, err
	}

	return cfg, cfg.validateStorage()
}
