// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/client"
	"github.com/MKhiriev/go-drive-desk/internal/config"
	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/i18n"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/internal/store"
	"github.com/MKhiriev/go-drive-desk/internal/tui"
	"github.com/MKhiriev/go-drive-desk/models"
)

const role = "go-drive-desk"

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	cfg, err := config.GetClientConfig()
	if err != nil {
		logger.NewLogger(role, os.Stderr).Fatal().Err(err).Msg("error getting configs")
	}

	log := logger.NewClientLogger(role, cfg.LogPath)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	api, err := adapter.NewHTTPWorkerAPI(cfg.Adapter, cfg.App, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create worker adapter")
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("create local storage")
	}

	bundle, err := i18n.NewBundle()
	if err != nil {
		log.Fatal().Err(err).Msg("load translations")
	}
	localizer := i18n.NewLocalizer(bundle, cfg.App.Language)
	log.Info().Str("language", localizer.Language().String()).Msg("ui language selected")

	host := tui.NewHost()
	services := service.NewClientServices(api, storages, host, tui.NewClipboard(), localizer, cfg.App.LinkBaseURL, log)
	ui := tui.New(services, host, events.NewBridge(), localizer, buildInfo, log)

	app, err := client.NewApp(services, ui, cfg.Workers, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	runErr := app.Run(ctx)
	if err = storages.Close(); err != nil {
		log.Err(err).Msg("close local storage")
	}
	if runErr != nil {
		log.Fatal().Err(runErr).Msg("client run error")
	}
}

func printBuildInfo(info models.BuildInfo) {
	fmt.Printf("Build version: %s\n", info.Version)
	fmt.Printf("Build date: %s\n", info.Date)
	fmt.Printf("Build commit: %s\n", info.Commit)
}
