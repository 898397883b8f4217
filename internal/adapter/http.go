// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/config"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/utils"
	"github.com/go-resty/resty/v2"
	"github.com/google/uuid"
)

// traceIDHeader carries a per-request id that also appears in the client log,
// so worker logs can be matched against it.
const traceIDHeader = "X-Trace-ID"

// envelope is the JSON wrapper of every worker response.
type envelope[T any] struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
	Data    T      `json:"data"`
}

type httpWorkerAPI struct {
	client *utils.HTTPClient
	apiKey string

	logger *logger.Logger
}

// NewHTTPWorkerAPI constructs the HTTP implementation of [WorkerAPI].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the request timeout. appCfg.APIKey, when set, is sent as a
// bearer token with every request.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPWorkerAPI(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (WorkerAPI, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := utils.NewHTTPClient(adapterCfg.RequestTimeout)
	client.SetBaseURL(baseURL)

	return &httpWorkerAPI{
		client: client,
		apiKey: strings.TrimSpace(appCfg.APIKey),
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (h *httpWorkerAPI) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if h.apiKey != "" {
		req.SetAuthToken(h.apiKey)
	}
	return req
}

// call performs one worker request and unwraps the response envelope.
// body is sent as JSON for POST requests and ignored otherwise.
func call[T any](ctx context.Context, h *httpWorkerAPI, method, path string, body any) (T, error) {
	var zero T
	result := &envelope[T]{}

	traceID := uuid.NewString()
	req := h.authedRequest(ctx).SetResult(result).SetHeader(traceIDHeader, traceID)
	if body != nil && method != http.MethodGet {
		req.SetHeader("Content-Type", "application/json").SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Err(err).
			Str("func", "adapter.call").
			Str("path", path).
			Str("trace_id", traceID).
			Msg("worker request failed")
		return zero, app.New(app.MsgWorkerUnavailable, fmt.Errorf("%s %s: %w: %w", method, path, ErrWorkerUnavailable, err))
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Err(err).
			Str("func", "adapter.call").
			Str("path", path).
			Str("trace_id", traceID).
			Int("status", resp.StatusCode()).
			Msg("worker returned an error status")
		return zero, err
	}

	if !result.Status {
		h.logger.Warn().
			Str("func", "adapter.call").
			Str("path", path).
			Str("trace_id", traceID).
			Str("message", result.Message).
			Msg("worker rejected the request")
		return zero, app.New(result.Message, fmt.Errorf("%s %s: %w", method, path, ErrRejected))
	}

	return result.Data, nil
}
