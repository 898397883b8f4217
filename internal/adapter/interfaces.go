// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the transport boundary between the client and the
// local sync worker.
//
// The primary abstraction is [WorkerAPI], which decouples the action services
// from the underlying protocol. The package ships an HTTP/JSON implementation
// ([NewHTTPWorkerAPI]) built on resty.
//
// Failed calls are returned as *app.Error values whose Message holds the
// worker's explanation and whose cause is one of the sentinels from errors.go,
// so callers can use [errors.Is] (e.g. [ErrConflict] for 409) and show the
// message without inspecting the error's shape.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-drive-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/worker_api_mock.go -package=mock

// WorkerAPI defines every call the client makes to the sync worker. Each call
// may fail with an arbitrary error; none of them is retried.
type WorkerAPI interface {
	// UpdateSyncPaused pauses or resumes the sync pair identified by uuid.
	UpdateSyncPaused(ctx context.Context, uuid string, paused bool) error

	// ResetSyncCache drops the worker's local state cache for a sync pair,
	// forcing a full re-scan on the next cycle.
	ResetSyncCache(ctx context.Context, uuid string) error

	// UpdateSyncRemoved marks the sync pair as removed (or restores it).
	UpdateSyncRemoved(ctx context.Context, uuid string, removed bool) error

	// CreateDirectory creates a directory called name inside parent and
	// returns the UUID the worker assigned to it.
	CreateDirectory(ctx context.Context, name, parent string) (string, error)

	// ListDirectory returns the direct children of parent.
	ListDirectory(ctx context.Context, parent string) ([]models.DriveItem, error)

	// UploadTextFile creates a text file with the given content inside parent
	// and returns the resulting drive item.
	UploadTextFile(ctx context.Context, name, parent, content string) (models.DriveItem, error)

	// DirectoryPublicLinkStatus returns the public link state of a directory.
	DirectoryPublicLinkStatus(ctx context.Context, uuid string) (models.PublicLinkStatus, error)

	// EnablePublicLink creates a public link for a directory.
	EnablePublicLink(ctx context.Context, req models.EnablePublicLinkRequest) error

	// DisablePublicLink removes an existing public link.
	DisablePublicLink(ctx context.Context, req models.DisablePublicLinkRequest) error

	// EditPublicLink commits new link settings.
	EditPublicLink(ctx context.Context, req models.EditPublicLinkRequest) error

	// DecryptDirectoryLinkKey turns the encrypted key of a link into the
	// plain key appended to the shareable URL.
	DecryptDirectoryLinkKey(ctx context.Context, key string) (string, error)

	// PublicLinks lists every item that currently has a public link.
	PublicLinks(ctx context.Context) ([]models.DriveItem, error)
}
