// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrDatabaseBusy is returned when SQLite reports the database as busy or
	// locked by another process (for example, the sync worker).
	ErrDatabaseBusy = errors.New("desktop database is busy")

	// ErrDuplicateSyncPair is returned when a list passed to ReplaceAll
	// contains the same UUID twice.
	ErrDuplicateSyncPair = errors.New("duplicate sync pair uuid")
)
