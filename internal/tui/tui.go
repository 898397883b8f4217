// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package tui is the bubbletea front end of the client.
//
// Views read the state containers of the services on every render. User
// gestures become events on the bridge; the subscriptions of the current view
// turn them into commands that run the actions off the event loop. Actions
// talk back through the [Host].
package tui

import (
	"context"
	"errors"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

type TUI struct {
	services  *service.ClientServices
	host      *Host
	bridge    *events.Bridge
	tr        service.Translator
	buildInfo models.BuildInfo
	logger    *logger.Logger
}

func New(
	services *service.ClientServices,
	host *Host,
	bridge *events.Bridge,
	tr service.Translator,
	buildInfo models.BuildInfo,
	logger *logger.Logger,
) *TUI {
	return &TUI{
		services:  services,
		host:      host,
		bridge:    bridge,
		tr:        tr,
		buildInfo: buildInfo,
		logger:    logger,
	}
}

// Run shows the UI until the user quits or ctx is cancelled.
func (t *TUI) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	model := newAppModel(ctx, t.services, t.host, t.bridge, t.tr, t.buildInfo)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	t.host.attach(p.Send)
	defer t.host.detach()

	unwatch := t.watchMirrors()
	defer unwatch()

	_, err := p.Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		t.logger.Info().Str("func", "TUI.Run").Msg("ui stopped by context")
		return nil
	}
	return err
}

// watchMirrors re-renders when a container changes outside of an action.
// The notification is sent from a new goroutine because containers may be
// updated from within Update.
func (t *TUI) watchMirrors() (unwatch func()) {
	notify := func() {
		go t.host.deliver(mirrorChangedMsg{})
	}

	unwatchers := []func(){
		t.services.Syncs.Pairs().Watch(func([]models.SyncPair) { notify() }),
		t.services.Drive.Items().Watch(func([]models.DriveItem) { notify() }),
		t.services.Links.Links().Watch(func([]models.DriveItem) { notify() }),
	}

	return func() {
		for _, u := range unwatchers {
			u()
		}
	}
}
