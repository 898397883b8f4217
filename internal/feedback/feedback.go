// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package feedback turns action progress and failures into toasts.
package feedback

import (
	"sync"

	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/utils"
)

//go:generate mockgen -source=feedback.go -destination=../mock/feedback_mock.go -package=mock

// Kind is the visual flavour of a toast.
type Kind int

const (
	KindLoading Kind = iota
	KindError
	KindSuccess
)

// Toast is one transient notification.
type Toast struct {
	ID   string
	Kind Kind
	Text string
}

// Sink displays toasts. The TUI implements it.
type Sink interface {
	Show(t Toast)
	Dismiss(id string)
}

// Reporter is what actions use to give feedback.
type Reporter interface {
	// Loading shows an indicator until release is called. release is
	// idempotent.
	Loading(text string) (release func())
	// Error shows one message for err.
	Error(err error)
	// Success shows a confirmation for explicit user actions.
	Success(text string)
}

// Toaster implements [Reporter] on top of a [Sink].
type Toaster struct {
	sink Sink
	ids  *utils.UUIDGenerator
}

// NewToaster returns a reporter that forwards to sink.
func NewToaster(sink Sink) *Toaster {
	return &Toaster{sink: sink, ids: utils.NewUUIDGenerator()}
}

// Loading implements [Reporter]. Every call gets its own toast, so
// indicators of concurrent actions never replace each other.
func (t *Toaster) Loading(text string) func() {
	id := t.ids.Generate()
	t.sink.Show(Toast{ID: id, Kind: KindLoading, Text: text})

	var once sync.Once
	return func() {
		once.Do(func() { t.sink.Dismiss(id) })
	}
}

// Error implements [Reporter]. A nil error shows nothing.
func (t *Toaster) Error(err error) {
	if err == nil {
		return
	}
	t.sink.Show(Toast{ID: t.ids.Generate(), Kind: KindError, Text: app.Message(err)})
}

// Success implements [Reporter].
func (t *Toaster) Success(text string) {
	t.sink.Show(Toast{ID: t.ids.Generate(), Kind: KindSuccess, Text: text})
}
