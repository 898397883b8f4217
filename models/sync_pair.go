// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// SyncMode describes the direction a sync pair transfers changes in.
type SyncMode string

const (
	SyncModeTwoWay       SyncMode = "twoWay"
	SyncModeLocalToCloud SyncMode = "localToCloud"
	SyncModeCloudToLocal SyncMode = "cloudToLocal"
	SyncModeLocalBackup  SyncMode = "localBackup"
	SyncModeCloudBackup  SyncMode = "cloudBackup"
)

// SyncPair is one configured mapping between a local folder and a remote
// folder. The persisted desktop configuration is its source of truth; the
// client only holds a mirror keyed by UUID.
type SyncPair struct {
	// UUID uniquely identifies the pair.
	UUID string `json:"uuid"`

	// Name is the label shown in the sync sidebar.
	Name string `json:"name"`

	// LocalPath is the absolute path of the local folder.
	LocalPath string `json:"localPath"`

	// RemotePath is the path of the remote folder inside the drive.
	RemotePath string `json:"remotePath"`

	// RemoteParentUUID is the UUID of the remote folder.
	RemoteParentUUID string `json:"remoteParentUUID"`

	// Mode is the transfer direction.
	Mode SyncMode `json:"mode"`

	// ExcludeDotFiles skips files and folders starting with a dot.
	ExcludeDotFiles bool `json:"excludeDotFiles"`

	// Paused stops the worker from transferring changes for this pair.
	Paused bool `json:"paused"`

	// Removed marks a pair the worker has been asked to tear down.
	Removed bool `json:"removed"`
}

// ID returns the pair UUID.
func (p SyncPair) ID() string {
	return p.UUID
}

// DesktopConfig is the persisted client configuration shared with the
// background sync worker.
type DesktopConfig struct {
	SyncPairs []SyncPair `json:"syncPairs"`
}
