// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/store"
)

// UI is what the services need from the front end.
type UI interface {
	Prompter
	Navigator
	feedback.Sink
}

type ClientServices struct {
	Syncs      SyncActions
	Drive      DriveActions
	Links      LinkActions
	RefreshJob RefreshJob
	Reporter   feedback.Reporter
}

// NewClientServices wires the action services. Each service owns its own
// dispatcher, so the in-flight guard is scoped per service.
func NewClientServices(
	api adapter.WorkerAPI,
	storages *store.ClientStorages,
	ui UI,
	clipboard Clipboard,
	translator Translator,
	linkBase string,
	logger *logger.Logger,
) *ClientServices {
	reporter := feedback.NewToaster(ui)
	syncs := NewSyncActions(api, storages.SyncConfigRepository, ui, ui, translator, reporter, logger)

	return &ClientServices{
		Syncs:      syncs,
		Drive:      NewDriveActions(api, ui, translator, reporter, logger),
		Links:      NewLinkActions(api, clipboard, translator, reporter, linkBase, logger),
		RefreshJob: NewRefreshJob(syncs, logger),
		Reporter:   reporter,
	}
}
