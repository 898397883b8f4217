// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-drive-desk/internal/config"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/service"
)

// UI is the interactive front end driven by the client.
type UI interface {
	Run(ctx context.Context) error
}

// App ties the UI to the action services and the background refresh job.
type App struct {
	services *service.ClientServices
	ui       UI
	workers  config.ClientWorkers
	logger   *logger.Logger
}

// NewApp validates its dependencies and returns a runnable client.
func NewApp(services *service.ClientServices, ui UI, workers config.ClientWorkers, logger *logger.Logger) (*App, error) {
	if services == nil {
		return nil, errors.New("client services are required")
	}
	if ui == nil {
		return nil, errors.New("ui is required")
	}

	return &App{
		services: services,
		ui:       ui,
		workers:  workers,
		logger:   logger,
	}, nil
}

// Run starts the refresh job and blocks until the UI exits.
func (a *App) Run(ctx context.Context) error {
	if a.services.RefreshJob != nil {
		a.services.RefreshJob.Start(ctx, a.workers.RefreshInterval)
		defer a.services.RefreshJob.Stop()
	}

	a.logger.Info().Str("func", "App.Run").Msg("client started")
	if err := a.ui.Run(ctx); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	a.logger.Info().Str("func", "App.Run").Msg("client stopped")
	return nil
}
