// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service implements the user actions of the client. Every action
// calls the worker first and mirrors the confirmed result into the local
// state containers the views render from.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-drive-desk/internal/state"
	"github.com/MKhiriev/go-drive-desk/models"
)

// SyncActions manages the configured sync pairs.
type SyncActions interface {
	// Pairs is the mirror of the persisted sync pairs.
	Pairs() *state.Container[models.SyncPair]

	// Selected holds the uuid of the sync pair open in the detail view.
	Selected() *state.Ref

	// Reload replaces the mirror with the persisted list.
	Reload(ctx context.Context) error

	// TogglePause flips the paused flag of the pair on the worker, then in
	// the mirror and the persisted list.
	TogglePause(ctx context.Context, uuid string) error

	// Delete asks for confirmation, removes the pair on the worker and then
	// locally, and returns the view to the sync list.
	Delete(ctx context.Context, uuid string) error

	// ResetCache asks for confirmation and drops the worker's sync cache of
	// the pair.
	ResetCache(ctx context.Context, uuid string) error
}

// DriveActions manages the listing of one remote directory.
type DriveActions interface {
	// Items is the mirror of the listed directory.
	Items() *state.Container[models.DriveItem]

	// Parent returns the uuid of the listed directory.
	Parent() string

	// Load lists parent and makes it the current directory.
	Load(ctx context.Context, parent string) error

	// CreateDirectory prompts for a name and creates a folder in parent.
	CreateDirectory(ctx context.Context, parent string) error

	// CreateTextFile prompts for a name and creates an empty text file in
	// parent.
	CreateTextFile(ctx context.Context, parent string) error

	ToggleSelect(uuid string)
	ClearSelection()
	Selected() []models.DriveItem
}

// LinkActions manages public links.
type LinkActions interface {
	// Links is the mirror of the links view.
	Links() *state.Container[models.DriveItem]

	// LoadLinks fills Links with every directory that has a public link.
	LoadLinks(ctx context.Context) error

	// Open returns the sharing panel of a directory. inLinksView tells the
	// panel that disabling the link removes the directory from Links.
	Open(item models.DriveItem, inLinksView bool) *LinkPanel
}

// RefreshJob periodically reloads the sync pair mirror.
type RefreshJob interface {
	// Start launches the background reload goroutine, stopping any previous
	// one. A non-positive interval defaults to one minute.
	Start(ctx context.Context, interval time.Duration)

	// Stop cancels the goroutine and waits for it to exit. Safe to call when
	// the job is not running.
	Stop()
}
