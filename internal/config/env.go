// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv fills cfg from the APP_, ADAPTER_, STORAGE_DB_, WORKERS_ and LOG_
// variables declared on [StructuredConfig]. Env values take precedence over
// flags and the JSON file when the sources are merged.
//
// A malformed value, such as WORKERS_REFRESH_INTERVAL=soon, is returned as
// a wrapped error.
func parseEnv(cfg any) error {
	if err := env.Parse(cfg); err != nil {
		return fmt.Errorf("parse drive desk env: %w", err)
	}
	return nil
}
