// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/models"
)

type createDirectoryRequest struct {
	Name   string `json:"name"`
	Parent string `json:"parent"`
}

type uploadTextRequest struct {
	Name    string `json:"name"`
	Parent  string `json:"parent"`
	Content string `json:"content"`
}

type itemsResponse struct {
	Items []models.DriveItem `json:"items"`
}

// CreateDirectory implements [WorkerAPI] via POST /v3/dir/create.
func (h *httpWorkerAPI) CreateDirectory(ctx context.Context, name, parent string) (string, error) {
	data, err := call[uuidRequest](ctx, h, http.MethodPost, "/v3/dir/create", createDirectoryRequest{Name: name, Parent: parent})
	if err != nil {
		return "", err
	}
	if data.UUID == "" {
		return "", app.New("", fmt.Errorf("create directory: %w: empty uuid", ErrRejected))
	}

	return data.UUID, nil
}

// ListDirectory implements [WorkerAPI] via GET /v3/dir/content.
func (h *httpWorkerAPI) ListDirectory(ctx context.Context, parent string) ([]models.DriveItem, error) {
	path := "/v3/dir/content?uuid=" + url.QueryEscape(parent)

	data, err := call[itemsResponse](ctx, h, http.MethodGet, path, nil)
	if err != nil {
		return nil, err
	}

	return data.Items, nil
}

// UploadTextFile implements [WorkerAPI] via POST /v3/upload/text.
func (h *httpWorkerAPI) UploadTextFile(ctx context.Context, name, parent, content string) (models.DriveItem, error) {
	return call[models.DriveItem](ctx, h, http.MethodPost, "/v3/upload/text", uploadTextRequest{
		Name:    name,
		Parent:  parent,
		Content: content,
	})
}
