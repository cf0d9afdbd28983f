// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// UI modes of the chat client.
const (
	// UILine prints new room messages line by line under the prompt.
	UILine = "line"
	// UITUI opens the full-screen room view.
	UITUI = "tui"
)

// StructuredConfig is the top-level configuration shared by the chat client
// and the reference server. It is populated by merging defaults,
// environment variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds client presentation settings.
	App App `envPrefix:"APP_"`

	// Storage holds the database settings of the reference server.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds the listen address and request timeout of the
	// reference server.
	Server Server `envPrefix:"SERVER_"`

	// Adapter holds the chat server location used by the client transport.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds the settings of the client background activities.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds client presentation settings.
type App struct {
	// UI selects how an entered room is shown: [UILine] or [UITUI].
	// Env: APP_UI
	UI string `env:"UI"`
}

// Storage groups the configuration of the server storage backends.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN selects the backend. A "postgres://" or "postgresql://" URI opens
	// PostgreSQL, anything else is treated as a SQLite file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings of the reference server.
type Server struct {
	// HTTPAddress is the TCP address the server listens on, "host:port".
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds the handling of a single request.
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Adapter holds the location of the chat server used by the client.
type Adapter struct {
	// HTTPAddress is the base URL of the chat server. A missing scheme is
	// completed with "http://".
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds every outbound request.
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds the settings of the client background activities.
type Workers struct {
	// PollInterval is the pause between two message/get requests of an
	// entered room.
	// Env: WORKERS_POLL_INTERVAL
	PollInterval time.Duration `env:"POLL_INTERVAL"`
}

// Default values applied before any other source.
const (
	DefaultAdapterAddress = "http://localhost:8080"
	DefaultServerAddress  = "localhost:8080"
	DefaultRequestTimeout = 10 * time.Second
	DefaultPollInterval   = 2 * time.Second
	DefaultDSN            = "chat.db"
)

func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App:     App{UI: UILine},
		Storage: Storage{DB: DB{DSN: DefaultDSN}},
		Server: Server{
			HTTPAddress:    DefaultServerAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Adapter: Adapter{
			HTTPAddress:    DefaultAdapterAddress,
			RequestTimeout: DefaultRequestTimeout,
		},
		Workers: Workers{PollInterval: DefaultPollInterval},
	}
}

// GetStructuredConfig loads and merges the configuration from all sources
// in the following order (a later non-zero field overrides an earlier one):
//  1. Built-in defaults
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 2 and 3)
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDefaults().
		withEnv().
		withFlags().
		withJSON().
		build()
}
