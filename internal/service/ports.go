// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-drive-desk/models"
)

//go:generate mockgen -source=ports.go -destination=../mock/ports_mock.go -package=mock

// Prompter asks the user for confirmation or input. The TUI implements it.
type Prompter interface {
	// Confirm shows a yes/no modal. A dismissed modal returns false or
	// ErrCancelled.
	Confirm(ctx context.Context, p models.Prompt) (bool, error)

	// Input shows a single-line input modal. A dismissed modal returns
	// ErrCancelled.
	Input(ctx context.Context, p models.Prompt) (string, error)
}

// Navigator moves the view to another route.
type Navigator interface {
	Redirect(r models.Redirect)
}

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	WriteAll(text string) error
}

// Translator returns user-facing text for a catalog key.
type Translator interface {
	T(key string, args ...any) string
}
