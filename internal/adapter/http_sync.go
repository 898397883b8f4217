// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"
)

type syncPausedRequest struct {
	UUID   string `json:"uuid"`
	Paused bool   `json:"paused"`
}

type syncRemovedRequest struct {
	UUID    string `json:"uuid"`
	Removed bool   `json:"removed"`
}

type uuidRequest struct {
	UUID string `json:"uuid"`
}

// UpdateSyncPaused implements [WorkerAPI] via POST /v3/sync/paused.
func (h *httpWorkerAPI) UpdateSyncPaused(ctx context.Context, uuid string, paused bool) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/sync/paused", syncPausedRequest{UUID: uuid, Paused: paused})
	return err
}

// ResetSyncCache implements [WorkerAPI] via POST /v3/sync/cache/reset.
func (h *httpWorkerAPI) ResetSyncCache(ctx context.Context, uuid string) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/sync/cache/reset", uuidRequest{UUID: uuid})
	return err
}

// UpdateSyncRemoved implements [WorkerAPI] via POST /v3/sync/removed.
func (h *httpWorkerAPI) UpdateSyncRemoved(ctx context.Context, uuid string, removed bool) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/sync/removed", syncRemovedRequest{UUID: uuid, Removed: removed})
	return err
}
