// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/dispatch"
	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/state"
	"github.com/MKhiriev/go-drive-desk/internal/store"
	"github.com/MKhiriev/go-drive-desk/models"
)

const actionSyncResetCache = "syncs.resetCache"

// SyncsRoute is the sync list view.
const SyncsRoute = "/syncs"

type syncActions struct {
	api        adapter.WorkerAPI
	repo       store.SyncConfigRepository
	prompter   Prompter
	navigator  Navigator
	translator Translator
	reporter   feedback.Reporter
	dispatcher *dispatch.Dispatcher
	logger     *logger.Logger

	pairs    *state.Container[models.SyncPair]
	selected *state.Ref

	// unsaved is set while the store lags behind the mirror.
	unsaved atomic.Bool
}

// NewSyncActions returns the sync pair actions. The mirror is empty until
// Reload is called.
func NewSyncActions(
	api adapter.WorkerAPI,
	repo store.SyncConfigRepository,
	prompter Prompter,
	navigator Navigator,
	translator Translator,
	reporter feedback.Reporter,
	logger *logger.Logger,
) SyncActions {
	return &syncActions{
		api:        api,
		repo:       repo,
		prompter:   prompter,
		navigator:  navigator,
		translator: translator,
		reporter:   reporter,
		dispatcher: dispatch.NewDispatcher(reporter, logger),
		logger:     logger,
		pairs:      state.NewContainer[models.SyncPair](),
		selected:   &state.Ref{},
	}
}

func (s *syncActions) Pairs() *state.Container[models.SyncPair] {
	return s.pairs
}

func (s *syncActions) Selected() *state.Ref {
	return s.selected
}

// Reload replaces the mirror with the stored list. When an earlier save
// failed, the mirror is written first so the stale store does not undo a
// change the worker already applied.
func (s *syncActions) Reload(ctx context.Context) error {
	if s.unsaved.Load() {
		if err := s.persist(ctx); err != nil {
			s.logger.Err(err).Str("func", "syncActions.Reload").Msg("sync pairs still unsaved, keeping mirror")
			return err
		}
	}

	pairs, err := s.repo.List(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "syncActions.Reload").Msg("failed to list sync pairs")
		return fmt.Errorf("list sync pairs: %w", err)
	}

	s.pairs.Set(pairs)
	return nil
}

func (s *syncActions) TogglePause(ctx context.Context, uuid string) error {
	loading := s.translator.T("syncs.pausing")
	if pair, ok := s.pairs.Find(uuid); ok && pair.Paused {
		loading = s.translator.T("syncs.resuming")
	}

	var paused bool
	return s.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     dispatch.Key{Action: string(events.SyncTogglePause), EntityID: uuid},
		Loading: loading,
		Prepare: func(ctx context.Context) error {
			pair, ok := s.pairs.Find(uuid)
			if !ok {
				return ErrNotLoaded
			}
			paused = !pair.Paused
			return nil
		},
		Run: func(ctx context.Context) error {
			if err := s.api.UpdateSyncPaused(ctx, uuid, paused); err != nil {
				return err
			}

			s.pairs.Update(func(pairs []models.SyncPair) []models.SyncPair {
				pair, ok := state.Find(pairs, uuid)
				if !ok {
					return pairs
				}
				pair.Paused = paused
				out, _ := state.ReplaceByID(pairs, pair)
				return out
			})

			return s.persist(ctx)
		},
	})
}

func (s *syncActions) Delete(ctx context.Context, uuid string) error {
	return s.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     dispatch.Key{Action: string(events.SyncDelete), EntityID: uuid},
		Loading: s.translator.T("syncs.deleting"),
		Prepare: func(ctx context.Context) error {
			pair, ok := s.pairs.Find(uuid)
			if !ok {
				return ErrNotLoaded
			}
			return s.confirm(ctx, models.Prompt{
				Title:   s.translator.T("syncs.deleteConfirmTitle"),
				Message: s.translator.T("syncs.deleteConfirmMessage", pairTitle(pair)),
				Danger:  true,
			})
		},
		Run: func(ctx context.Context) error {
			if err := s.api.UpdateSyncRemoved(ctx, uuid, true); err != nil {
				return err
			}

			s.pairs.Update(func(pairs []models.SyncPair) []models.SyncPair {
				out, _ := state.RemoveByID(pairs, uuid)
				return out
			})
			s.selected.ClearIf(uuid)
			s.navigator.Redirect(models.Redirect{Route: SyncsRoute, ResetScroll: true, Replace: true})

			return s.persist(ctx)
		},
	})
}

func (s *syncActions) ResetCache(ctx context.Context, uuid string) error {
	return s.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     dispatch.Key{Action: actionSyncResetCache, EntityID: uuid},
		Loading: s.translator.T("syncs.resettingCache"),
		Prepare: func(ctx context.Context) error {
			pair, ok := s.pairs.Find(uuid)
			if !ok {
				return ErrNotLoaded
			}
			return s.confirm(ctx, models.Prompt{
				Title:   s.translator.T("syncs.resetCacheConfirmTitle"),
				Message: s.translator.T("syncs.resetCacheConfirmMessage", pairTitle(pair)),
				Danger:  true,
			})
		},
		Run: func(ctx context.Context) error {
			if err := s.api.ResetSyncCache(ctx, uuid); err != nil {
				return err
			}
			s.reporter.Success(s.translator.T("syncs.resetCacheDone"))
			return nil
		},
	})
}

// persist writes the mirror to the config store. The mirror is not rolled
// back on failure because the worker already applied the change; the next
// Reload retries the write instead.
func (s *syncActions) persist(ctx context.Context) error {
	if err := s.repo.ReplaceAll(ctx, s.pairs.Snapshot()); err != nil {
		s.unsaved.Store(true)
		return app.New(app.MsgConfigNotSaved, fmt.Errorf("replace sync pairs: %w", err))
	}
	s.unsaved.Store(false)
	return nil
}

func (s *syncActions) confirm(ctx context.Context, p models.Prompt) error {
	ok, err := s.prompter.Confirm(ctx, p)
	if err != nil {
		return err
	}
	if !ok {
		return ErrCancelled
	}
	return nil
}

func pairTitle(p models.SyncPair) string {
	if p.Name != "" {
		return p.Name
	}
	return p.LocalPath
}
