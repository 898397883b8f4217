// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"

	"github.com/MKhiriev/go-drive-desk/internal/dispatch"
)

// Both errors end an action silently.
var (
	ErrCancelled = fmt.Errorf("cancelled by user: %w", dispatch.ErrAborted)
	ErrNotLoaded = fmt.Errorf("entity not loaded: %w", dispatch.ErrAborted)
)
