// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ItemType tells files and directories apart.
type ItemType string

const (
	ItemTypeFile      ItemType = "file"
	ItemTypeDirectory ItemType = "directory"
)

// DriveItem is a file or directory inside the remote drive, as listed by the
// worker.
type DriveItem struct {
	// UUID uniquely identifies the item.
	UUID string `json:"uuid"`

	// Parent is the UUID of the containing directory.
	Parent string `json:"parent"`

	// Name is the display name. Names are unique within a parent, compared
	// case-insensitively.
	Name string `json:"name"`

	// Type is file or directory.
	Type ItemType `json:"type"`

	// Size in bytes. Zero for directories.
	Size int64 `json:"size"`

	// Timestamp is the creation time as reported by the API. Its unit is not
	// guaranteed (seconds or milliseconds); normalise with
	// utils.ConvertTimestampToMs before display.
	Timestamp float64 `json:"timestamp"`

	// LastModified is the client-reported modification time, same caveat as
	// Timestamp.
	LastModified float64 `json:"lastModified"`

	// Selected is a UI-only highlight flag. It is never sent to the worker.
	Selected bool `json:"-"`
}

// ID returns the item UUID.
func (i DriveItem) ID() string {
	return i.UUID
}

// ParentID returns the UUID of the containing directory.
func (i DriveItem) ParentID() string {
	return i.Parent
}

// DisplayName returns the item name.
func (i DriveItem) DisplayName() string {
	return i.Name
}

// IsDir reports whether the item is a directory.
func (i DriveItem) IsDir() bool {
	return i.Type == ItemTypeDirectory
}
