// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package store persists the desktop configuration of the client in a local
// SQLite database.
//
// The only persisted aggregate is the list of sync pairs. It is read as a
// whole and written with an atomic whole-list replace, so the table always
// reflects one consistent configuration.
package store

import (
	"context"

	"github.com/MKhiriev/go-drive-desk/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// SyncConfigRepository reads and writes the persisted sync pair list.
type SyncConfigRepository interface {
	// List returns every stored sync pair in their saved order.
	List(ctx context.Context) ([]models.SyncPair, error)

	// ReplaceAll atomically replaces the stored list with pairs. Either the
	// whole list is written or nothing changes.
	ReplaceAll(ctx context.Context, pairs []models.SyncPair) error
}

// ErrorClassificator decides whether a failed database operation is worth
// repeating by the user.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}
