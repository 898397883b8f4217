// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// APIKey authenticates requests to the sync worker. May be empty when
	// the worker runs without authentication.
	APIKey string
	// Language is the raw language preference; the i18n package matches it
	// against the bundled locales.
	Language string
	// LinkBaseURL is the prefix of rendered public links.
	LinkBaseURL string
}

// ClientAdapter holds network settings used by the worker transport.
type ClientAdapter struct {
	// HTTPAddress is the sync worker endpoint.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound worker calls.
	RequestTimeout time.Duration
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite database file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	// DB holds local database settings.
	DB ClientDB
}

// ClientWorkers contains client background job settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the sync pair list is reloaded.
	RefreshInterval time.Duration
}

// ClientConfig is the client configuration view assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Workers ClientWorkers
	// LogPath is the file the client logger appends to.
	LogPath string
}

// GetClientConfig builds and validates the client configuration.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := newClientConfig(cfg)

	return clientCfg, clientCfg.validate()
}

func newClientConfig(cfg *StructuredConfig) *ClientConfig {
	return &ClientConfig{
		App: ClientApp{
			APIKey:      cfg.App.APIKey,
			Language:    cfg.App.Language,
			LinkBaseURL: cfg.App.LinkBaseURL,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DB: ClientDB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
		LogPath: cfg.Log.Path,
	}
}
