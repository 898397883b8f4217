// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package app

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

var errCause = errors.New("cause")

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		message string
		err     error
		want    string
	}{
		{name: "explicit message", message: "folder exists", err: errCause, want: "folder exists"},
		{name: "message trimmed", message: "  folder exists \n", err: nil, want: "folder exists"},
		{name: "falls back to cause", message: "", err: errCause, want: "cause"},
		{name: "nothing known", message: " ", err: nil, want: MsgUnknownError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := New(tt.message, tt.err)
			assert.Equal(t, tt.want, got.Message)
			assert.Equal(t, tt.want, got.Error())
		})
	}
}

func TestError_Unwrap(t *testing.T) {
	err := fmt.Errorf("create directory: %w", New("name taken", errCause))

	assert.ErrorIs(t, err, errCause)

	var appErr *Error
	assert.ErrorAs(t, err, &appErr)
	assert.Equal(t, "name taken", appErr.Message)
}

func TestMessage(t *testing.T) {
	assert.Equal(t, "", Message(nil))
	assert.Equal(t, "plain", Message(errors.New("plain")))
	assert.Equal(t, "wrapped message", Message(fmt.Errorf("ctx: %w", New("wrapped message", nil))))
	// Error без Message — берём текст всей цепочки
	assert.Equal(t, "outer: cause", Message(fmt.Errorf("outer: %w", &Error{Err: errCause})))
}
