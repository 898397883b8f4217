// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app holds the error type shared by every layer of the client.
//
// Every failure that may end up in front of the user is carried as an
// [*Error], whose Message is always set. [Message] extracts that text from any
// error chain, so handlers never have to inspect error shapes at runtime.
package app

import (
	"errors"
	"strings"
)

// Error is an application error with a mandatory human-readable message.
type Error struct {
	// Message is the text shown to the user.
	Message string

	// Err is the underlying cause, usually a sentinel from the adapter or
	// store packages.
	Err error
}

// New returns an [*Error]. An empty message is replaced by the cause's text,
// or by [MsgUnknownError] when there is no cause either.
func New(message string, err error) *Error {
	message = strings.TrimSpace(message)
	if message == "" && err != nil {
		message = err.Error()
	}
	if message == "" {
		message = MsgUnknownError
	}

	return &Error{Message: message, Err: err}
}

// Error implements the error interface.
func (e *Error) Error() string {
	if e.Message == "" && e.Err != nil {
		return e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes the cause to errors.Is and errors.As.
func (e *Error) Unwrap() error {
	return e.Err
}

// Message returns the text to show for err: the Message of the first
// [*Error] in the chain, or err.Error() when there is none.
func Message(err error) string {
	if err == nil {
		return ""
	}

	var appErr *Error
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}

	return err.Error()
}
