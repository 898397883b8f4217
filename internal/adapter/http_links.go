// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-drive-desk/models"
)

type keyPayload struct {
	Key string `json:"key"`
}

// DirectoryPublicLinkStatus implements [WorkerAPI] via POST /v3/dir/link/status.
func (h *httpWorkerAPI) DirectoryPublicLinkStatus(ctx context.Context, uuid string) (models.PublicLinkStatus, error) {
	return call[models.PublicLinkStatus](ctx, h, http.MethodPost, "/v3/dir/link/status", uuidRequest{UUID: uuid})
}

// EnablePublicLink implements [WorkerAPI] via POST /v3/dir/link/add.
func (h *httpWorkerAPI) EnablePublicLink(ctx context.Context, req models.EnablePublicLinkRequest) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/dir/link/add", req)
	return err
}

// DisablePublicLink implements [WorkerAPI] via POST /v3/dir/link/remove.
func (h *httpWorkerAPI) DisablePublicLink(ctx context.Context, req models.DisablePublicLinkRequest) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/dir/link/remove", req)
	return err
}

// EditPublicLink implements [WorkerAPI] via POST /v3/dir/link/edit.
func (h *httpWorkerAPI) EditPublicLink(ctx context.Context, req models.EditPublicLinkRequest) error {
	_, err := call[struct{}](ctx, h, http.MethodPost, "/v3/dir/link/edit", req)
	return err
}

// DecryptDirectoryLinkKey implements [WorkerAPI] via POST /v3/dir/link/key.
func (h *httpWorkerAPI) DecryptDirectoryLinkKey(ctx context.Context, key string) (string, error) {
	data, err := call[keyPayload](ctx, h, http.MethodPost, "/v3/dir/link/key", keyPayload{Key: key})
	if err != nil {
		return "", err
	}

	return data.Key, nil
}

// PublicLinks implements [WorkerAPI] via GET /v3/user/links.
func (h *httpWorkerAPI) PublicLinks(ctx context.Context) ([]models.DriveItem, error) {
	data, err := call[itemsResponse](ctx, h, http.MethodGet, "/v3/user/links", nil)
	if err != nil {
		return nil, err
	}

	return data.Items, nil
}
