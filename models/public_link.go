// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"time"
)

// Expiration is the lifetime option selected for a public link. Every label
// shown in the link panel maps to its own value.
type Expiration string

const (
	ExpirationNever Expiration = "never"
	Expiration1h    Expiration = "1h"
	Expiration6h    Expiration = "6h"
	Expiration1d    Expiration = "1d"
	Expiration3d    Expiration = "3d"
	Expiration7d    Expiration = "7d"
	Expiration14d   Expiration = "14d"
	Expiration30d   Expiration = "30d"
)

// Expirations lists the options in the order the link panel offers them.
var Expirations = []Expiration{
	ExpirationNever,
	Expiration1h,
	Expiration6h,
	Expiration1d,
	Expiration3d,
	Expiration7d,
	Expiration14d,
	Expiration30d,
}

var expirationDurations = map[Expiration]time.Duration{
	ExpirationNever: 0,
	Expiration1h:    time.Hour,
	Expiration6h:    6 * time.Hour,
	Expiration1d:    24 * time.Hour,
	Expiration3d:    3 * 24 * time.Hour,
	Expiration7d:    7 * 24 * time.Hour,
	Expiration14d:   14 * 24 * time.Hour,
	Expiration30d:   30 * 24 * time.Hour,
}

// Duration returns the link lifetime. Zero means the link never expires.
func (e Expiration) Duration() time.Duration {
	return expirationDurations[e]
}

// Validate returns an error for values outside [Expirations].
func (e Expiration) Validate() error {
	if _, ok := expirationDurations[e]; !ok {
		return fmt.Errorf("unknown link expiration %q", string(e))
	}
	return nil
}

// PublicLinkStatus is the worker's view of the public link of a directory.
type PublicLinkStatus struct {
	// Exists is false when the directory has no public link.
	Exists bool `json:"exists"`

	// UUID identifies the link. Empty when Exists is false.
	UUID string `json:"uuid"`

	// Key is the encrypted link key. It is decrypted by the worker before it
	// becomes part of the shareable URL.
	Key string `json:"key"`

	// Password reports whether the link is password protected.
	Password bool `json:"password"`

	// Expiration is the currently configured lifetime.
	Expiration Expiration `json:"expirationText"`

	// DownloadBtn reports whether the download button is shown to visitors.
	DownloadBtn bool `json:"downloadBtn"`
}

// LinkSettings is the set of link properties the user can stage and save.
type LinkSettings struct {
	Expiration  Expiration
	Password    string
	DownloadBtn bool
}

// EnablePublicLinkRequest asks the worker to create a link for a directory.
type EnablePublicLinkRequest struct {
	ItemUUID   string     `json:"uuid"`
	Expiration Expiration `json:"expiration"`
}

// DisablePublicLinkRequest asks the worker to remove an existing link.
type DisablePublicLinkRequest struct {
	ItemUUID string `json:"uuid"`
	LinkUUID string `json:"linkUUID"`
}

// EditPublicLinkRequest commits staged link settings.
type EditPublicLinkRequest struct {
	ItemUUID    string     `json:"uuid"`
	LinkUUID    string     `json:"linkUUID"`
	Expiration  Expiration `json:"expiration"`
	Password    string     `json:"password,omitempty"`
	HasPassword bool       `json:"hasPassword"`
	DownloadBtn bool       `json:"downloadBtn"`
}
