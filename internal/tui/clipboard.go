// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/atotto/clipboard"

	"github.com/MKhiriev/go-drive-desk/internal/service"
)

type systemClipboard struct{}

// NewClipboard returns the system clipboard.
func NewClipboard() service.Clipboard {
	return systemClipboard{}
}

func (systemClipboard) WriteAll(text string) error {
	return clipboard.WriteAll(text)
}
