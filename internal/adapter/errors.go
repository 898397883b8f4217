// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Sentinel causes carried inside the *app.Error values returned by the
// adapter.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")

	// ErrRejected is returned when the worker answers 2xx but reports
	// status=false in the response envelope.
	ErrRejected = errors.New("request rejected by worker")

	// ErrWorkerUnavailable is returned when the request never got a response.
	ErrWorkerUnavailable = errors.New("worker unavailable")
)
