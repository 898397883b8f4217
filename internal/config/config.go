// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// go-drive-desk client. It is populated by merging values from environment
// variables, command-line flags and an optional JSON file.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env:       direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds user-facing settings: worker API key, UI language and the
	// base URL public links are rendered with.
	App App `envPrefix:"APP_"`

	// Storage holds the local SQLite database settings.
	Storage Storage `envPrefix:"STORAGE_"`

	// Adapter holds the address and timeout of the sync worker HTTP API.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// Log holds the log file location.
	Log Log `envPrefix:"LOG_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// Storage groups the configuration for the local storage backend.
type Storage struct {
	// DB holds the SQLite connection settings.
	DB DB `envPrefix:"DB_"`
}

// App holds application-level configuration values.
type App struct {
	// APIKey authenticates the client against the sync worker.
	// Env: APP_API_KEY
	APIKey string `env:"API_KEY"`

	// Language is the preferred UI language tag (e.g. "en", "ru-RU").
	// Env: APP_LANGUAGE
	Language string `env:"LANGUAGE"`

	// LinkBaseURL is the prefix of shared directory links
	// (e.g. "https://drive.example.com/d").
	// Env: APP_LINK_BASE_URL
	LinkBaseURL string `env:"LINK_BASE_URL"`
}

// DB holds connection settings for the local database.
type DB struct {
	// DSN is the SQLite database file path.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Adapter holds configuration of the sync worker API.
type Adapter struct {
	// HTTPAddress is the worker address in "host:port" format or a full URL.
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration of a single worker call
	// (e.g. "30s", "1m").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Workers holds configuration for background worker processes.
type Workers struct {
	// RefreshInterval defines how often the sync pair list is reloaded
	// from the local store.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Log holds logging destination settings.
type Log struct {
	// Path is the file client logs are appended to.
	// Env: LOG_PATH
	Path string `env:"PATH"`
}

// GetStructuredConfig loads and merges the configuration from all available
// sources. For every field the first source that sets a non-zero value wins:
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//  4. Built-in defaults
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		withDefaults().
		build()
}
