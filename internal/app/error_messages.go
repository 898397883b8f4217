// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

// Fallback messages used when the worker answers without a message of its own.
const (
	// MsgUnknownError is used when neither a message nor a cause is known.
	MsgUnknownError = "unknown error"

	// MsgBadRequest is used for HTTP 400 responses without a body.
	MsgBadRequest = "the request was rejected"

	// MsgUnauthorized is used for HTTP 401 responses without a body.
	MsgUnauthorized = "not logged in or the session has expired"

	// MsgForbidden is used for HTTP 403 responses without a body.
	MsgForbidden = "access denied"

	// MsgNotFound is used for HTTP 404 responses without a body.
	MsgNotFound = "item not found"

	// MsgConflict is used for HTTP 409 responses without a body.
	MsgConflict = "an item with this name already exists"

	// MsgWorkerUnavailable is used when the worker cannot be reached at all.
	MsgWorkerUnavailable = "the sync worker is not reachable"

	// MsgInternalServerError is used for HTTP 5xx responses without a body.
	MsgInternalServerError = "internal server error"

	// MsgConfigNotSaved is used when the local sync configuration could not
	// be written after the worker accepted a change.
	MsgConfigNotSaved = "the sync configuration could not be saved"

	// MsgClipboardUnavailable is used when the system clipboard rejects a copy.
	MsgClipboardUnavailable = "could not access the clipboard"
)
