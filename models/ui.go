// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// Prompt describes a modal confirmation or input request.
type Prompt struct {
	// Title is shown in bold at the top of the modal.
	Title string

	// Message is the body text.
	Message string

	// Placeholder is the hint shown in an empty input field.
	Placeholder string

	// Value pre-fills the input field.
	Value string

	// Danger marks destructive confirmations.
	Danger bool
}

// Redirect tells the navigation service where to move the view.
type Redirect struct {
	Route       string
	ResetScroll bool
	Replace     bool
}
