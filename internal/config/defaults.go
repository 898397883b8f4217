// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/xdg"
)

const (
	appDirName = "go-drive-desk"

	defaultWorkerAddress   = "localhost:8765"
	defaultRequestTimeout  = 30 * time.Second
	defaultRefreshInterval = time.Minute
	defaultLanguage        = "en"
	defaultLinkBaseURL     = "https://drive.go-drive-desk.dev/d"
)

// defaultConfig returns the lowest-priority configuration layer.
func defaultConfig() *StructuredConfig {
	return &StructuredConfig{
		App: App{
			Language:    systemLanguage(),
			LinkBaseURL: defaultLinkBaseURL,
		},
		Storage: Storage{
			DB: DB{DSN: filepath.Join(xdg.DataHome, appDirName, "desktop.db")},
		},
		Adapter: Adapter{
			HTTPAddress:    defaultWorkerAddress,
			RequestTimeout: defaultRequestTimeout,
		},
		Workers: Workers{
			RefreshInterval: defaultRefreshInterval,
		},
		Log: Log{
			Path: filepath.Join(xdg.StateHome, appDirName, "client.log"),
		},
	}
}

// systemLanguage returns the locale from LANG, or "en" when it is unset.
func systemLanguage() string {
	if lang := os.Getenv("LANG"); lang != "" && lang != "C" && lang != "POSIX" {
		return lang
	}
	return defaultLanguage
}
