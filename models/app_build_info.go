// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "strings"

// BuildInfo carries build-time metadata injected by linker flags and shown in
// the client's "about" overlay.
type BuildInfo struct {
	Version string
	Date    string
	Commit  string
}

// NewBuildInfo returns [BuildInfo] with every empty value replaced by "N/A".
func NewBuildInfo(version, date, commit string) BuildInfo {
	return BuildInfo{
		Version: orNA(version),
		Date:    orNA(date),
		Commit:  orNA(commit),
	}
}

func orNA(v string) string {
	if strings.TrimSpace(v) == "" {
		return "N/A"
	}
	return v
}
