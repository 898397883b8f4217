// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helpers used across the client:
// human-readable byte sizes, timestamp unit normalisation, event default
// suppression, id generation and the preconfigured HTTP client.
package utils
