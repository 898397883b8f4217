// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package dispatch runs user actions against the worker with the guarantees
// every action shares: one invocation per (action, entity) at a time, a
// loading indicator that is always released, and exactly one error toast per
// failure.
package dispatch

import (
	"context"
	"errors"
	"sync"

	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
)

var (
	// ErrInFlight is returned when the same action is already running for
	// the same entity.
	ErrInFlight = errors.New("action already in flight")

	// ErrAborted marks errors that end an action silently: unmet
	// preconditions and user cancellation. Wrap it to add detail.
	ErrAborted = errors.New("action aborted")
)

// IsSilent reports whether err ends an action without user feedback.
func IsSilent(err error) bool {
	return errors.Is(err, ErrInFlight) || errors.Is(err, ErrAborted)
}

// Key identifies an action invocation target.
type Key struct {
	Action   string
	EntityID string
}

// Action describes one invocation.
type Action struct {
	Key Key

	// Loading is the text of the indicator shown while Run executes. Local
	// actions leave it empty and get no indicator.
	Loading string

	// Prepare runs before the indicator appears. Use it for precondition
	// checks and prompts. Errors wrapping [ErrAborted] end the action
	// silently; other errors are reported.
	Prepare func(ctx context.Context) error

	// Run performs the remote call and the local update that follows it.
	Run func(ctx context.Context) error
}

// Dispatcher executes actions. Each component owns its own dispatcher, so
// the in-flight guard is scoped to that component.
type Dispatcher struct {
	reporter feedback.Reporter
	logger   *logger.Logger

	mu       sync.Mutex
	inFlight map[Key]struct{}
}

// NewDispatcher returns a dispatcher reporting through reporter.
func NewDispatcher(reporter feedback.Reporter, logger *logger.Logger) *Dispatcher {
	return &Dispatcher{
		reporter: reporter,
		logger:   logger,
		inFlight: make(map[Key]struct{}),
	}
}

// Do is Dispatch for actions without a Prepare step.
func (d *Dispatcher) Do(ctx context.Context, key Key, loading string, run func(ctx context.Context) error) error {
	return d.Dispatch(ctx, Action{Key: key, Loading: loading, Run: run})
}

// Dispatch runs a. The returned error is nil on success, [ErrInFlight] or an
// [ErrAborted] wrapper when the action ended silently, or the reported
// failure.
func (d *Dispatcher) Dispatch(ctx context.Context, a Action) error {
	if !d.acquire(a.Key) {
		return ErrInFlight
	}
	defer d.release(a.Key)

	log := d.logger.ForAction(a.Key.Action, a.Key.EntityID)

	if a.Prepare != nil {
		if err := a.Prepare(ctx); err != nil {
			return d.fail(log, "prepare", err)
		}
	}

	if a.Loading != "" {
		release := d.reporter.Loading(a.Loading)
		defer release()
	}

	if err := a.Run(ctx); err != nil {
		return d.fail(log, "run", err)
	}

	log.Debug().Str("func", "Dispatcher.Dispatch").Msg("action completed")
	return nil
}

func (d *Dispatcher) fail(log *logger.Logger, stage string, err error) error {
	if IsSilent(err) {
		log.Debug().Err(err).Str("func", "Dispatcher.Dispatch").Str("stage", stage).Msg("action aborted")
		return err
	}

	log.Err(err).Str("func", "Dispatcher.Dispatch").Str("stage", stage).Msg("action failed")
	d.reporter.Error(err)
	return err
}

// running reports whether the action identified by key is in flight.
func (d *Dispatcher) running(key Key) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.inFlight[key]
	return ok
}

func (d *Dispatcher) acquire(key Key) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	if _, ok := d.inFlight[key]; ok {
		return false
	}
	d.inFlight[key] = struct{}{}
	return true
}

func (d *Dispatcher) release(key Key) {
	d.mu.Lock()
	delete(d.inFlight, key)
	d.mu.Unlock()
}
