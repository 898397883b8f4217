// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/dispatch"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/mock"
	"github.com/MKhiriev/go-drive-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type syncFixture struct {
	api      *mock.MockWorkerAPI
	repo     *mock.MockSyncConfigRepository
	prompter *mock.MockPrompter
	nav      *mock.MockNavigator
	reporter *mock.MockReporter
	actions  *syncActions
}

func newSyncFixture(t *testing.T, pairs ...models.SyncPair) *syncFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &syncFixture{
		api:      mock.NewMockWorkerAPI(ctrl),
		repo:     mock.NewMockSyncConfigRepository(ctrl),
		prompter: mock.NewMockPrompter(ctrl),
		nav:      mock.NewMockNavigator(ctrl),
		reporter: mock.NewMockReporter(ctrl),
	}
	f.actions = NewSyncActions(f.api, f.repo, f.prompter, f.nav, keyTranslator{}, f.reporter, logger.Nop()).(*syncActions)
	f.actions.pairs.Set(pairs)
	return f
}

func testPairs() []models.SyncPair {
	return []models.SyncPair{
		{UUID: "p1", Name: "Documents", LocalPath: "/home/u/Documents", Mode: models.SyncModeTwoWay},
		{UUID: "p2", Name: "Photos", LocalPath: "/home/u/Photos", Mode: models.SyncModeLocalBackup, Paused: true},
	}
}

// ── Reload ───────────────────────────────────────────────────────────────────

func TestSyncActions_Reload(t *testing.T) {
	f := newSyncFixture(t)
	f.repo.EXPECT().List(gomock.Any()).Return(testPairs(), nil)

	require.NoError(t, f.actions.Reload(context.Background()))
	assert.Equal(t, testPairs(), f.actions.Pairs().Snapshot())
}

func TestSyncActions_Reload_Error(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	f.repo.EXPECT().List(gomock.Any()).Return(nil, errors.New("disk I/O error"))

	err := f.actions.Reload(context.Background())
	require.Error(t, err)
	assert.Equal(t, testPairs(), f.actions.Pairs().Snapshot(), "mirror is kept on failure")
}

// ── TogglePause ──────────────────────────────────────────────────────────────

func TestSyncActions_TogglePause(t *testing.T) {
	tests := []struct {
		name        string
		uuid        string
		wantPaused  bool
		wantLoading string
	}{
		{name: "pause active pair", uuid: "p1", wantPaused: true, wantLoading: "syncs.pausing"},
		{name: "resume paused pair", uuid: "p2", wantPaused: false, wantLoading: "syncs.resuming"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t, testPairs()...)
			released := expectLoading(f.reporter, tt.wantLoading)

			f.api.EXPECT().UpdateSyncPaused(gomock.Any(), tt.uuid, tt.wantPaused).Return(nil)
			f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).DoAndReturn(
				func(_ context.Context, pairs []models.SyncPair) error {
					require.Len(t, pairs, 2)
					for _, p := range pairs {
						if p.UUID == tt.uuid {
							assert.Equal(t, tt.wantPaused, p.Paused)
						}
					}
					return nil
				})

			require.NoError(t, f.actions.TogglePause(context.Background(), tt.uuid))

			pair, ok := f.actions.Pairs().Find(tt.uuid)
			require.True(t, ok)
			assert.Equal(t, tt.wantPaused, pair.Paused, "local flag equals the value sent")
			assert.Equal(t, int64(1), released.Load())
		})
	}
}

func TestSyncActions_TogglePause_NotLoaded(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)

	err := f.actions.TogglePause(context.Background(), "missing")

	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.True(t, dispatch.IsSilent(err))
}

func TestSyncActions_TogglePause_RemoteFailure(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	released := expectLoading(f.reporter, "syncs.pausing")

	remoteErr := app.New("sync pair is busy", adapter.ErrConflict)
	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).Return(remoteErr)
	f.reporter.EXPECT().Error(remoteErr).Times(1)

	err := f.actions.TogglePause(context.Background(), "p1")

	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, testPairs(), f.actions.Pairs().Snapshot(), "state untouched")
	assert.Equal(t, int64(1), released.Load())
}

func TestSyncActions_TogglePause_PersistFailure(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	expectLoading(f.reporter, "syncs.pausing")

	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).Return(nil)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	f.reporter.EXPECT().Error(gomock.Any()).Do(func(err error) {
		assert.Equal(t, app.MsgConfigNotSaved, app.Message(err))
	}).Times(1)

	err := f.actions.TogglePause(context.Background(), "p1")
	require.Error(t, err)

	pair, _ := f.actions.Pairs().Find("p1")
	assert.True(t, pair.Paused, "mirror follows the worker")
}

func TestSyncActions_Reload_RetriesUnsavedConfig(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	expectLoading(f.reporter, "syncs.pausing")
	f.reporter.EXPECT().Error(gomock.Any()).Times(1)

	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).Return(nil)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	require.Error(t, f.actions.TogglePause(context.Background(), "p1"))

	// Повторная неудача: зеркало сохраняется, список из хранилища не читается
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(errors.New("database is locked"))
	require.Error(t, f.actions.Reload(context.Background()))
	pair, _ := f.actions.Pairs().Find("p1")
	assert.True(t, pair.Paused)

	// Запись удалась: хранилище получает изменённое зеркало и перечитывается
	var saved []models.SyncPair
	gomock.InOrder(
		f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, pairs []models.SyncPair) error {
				saved = pairs
				return nil
			}),
		f.repo.EXPECT().List(gomock.Any()).DoAndReturn(
			func(context.Context) ([]models.SyncPair, error) { return saved, nil }),
	)
	require.NoError(t, f.actions.Reload(context.Background()))

	pair, _ = f.actions.Pairs().Find("p1")
	assert.True(t, pair.Paused, "a stale store does not undo the toggle")

	// Дальше Reload только читает
	f.repo.EXPECT().List(gomock.Any()).Return(saved, nil)
	require.NoError(t, f.actions.Reload(context.Background()))
}

func TestSyncActions_TogglePause_InFlight(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	expectLoading(f.reporter, "syncs.pausing")

	started := make(chan struct{})
	unblock := make(chan struct{})
	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).DoAndReturn(
		func(context.Context, string, bool) error {
			close(started)
			<-unblock
			return nil
		}).Times(1)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	done := make(chan error, 1)
	go func() { done <- f.actions.TogglePause(context.Background(), "p1") }()
	<-started

	err := f.actions.TogglePause(context.Background(), "p1")
	assert.ErrorIs(t, err, dispatch.ErrInFlight)

	close(unblock)
	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(time.Second):
		t.Fatal("toggle did not finish")
	}
}

// ── Delete ───────────────────────────────────────────────────────────────────

func TestSyncActions_Delete(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	f.actions.Selected().Set("p1")

	gomock.InOrder(
		f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p models.Prompt) (bool, error) {
				assert.True(t, p.Danger)
				assert.Equal(t, "syncs.deleteConfirmMessage:Documents", p.Message)
				return true, nil
			}),
		f.reporter.EXPECT().Loading("syncs.deleting").Return(func() {}),
		f.api.EXPECT().UpdateSyncRemoved(gomock.Any(), "p1", true).Return(nil),
		f.nav.EXPECT().Redirect(models.Redirect{Route: SyncsRoute, ResetScroll: true, Replace: true}),
		f.repo.EXPECT().ReplaceAll(gomock.Any(), []models.SyncPair{testPairs()[1]}).Return(nil),
	)

	require.NoError(t, f.actions.Delete(context.Background(), "p1"))

	assert.Equal(t, 1, f.actions.Pairs().Len(), "exactly one record removed")
	_, ok := f.actions.Pairs().Find("p1")
	assert.False(t, ok)
	assert.Empty(t, f.actions.Selected().Get())
}

func TestSyncActions_Delete_KeepsOtherSelection(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	f.actions.Selected().Set("p2")

	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil)
	expectLoading(f.reporter, "syncs.deleting")
	f.api.EXPECT().UpdateSyncRemoved(gomock.Any(), "p1", true).Return(nil)
	f.nav.EXPECT().Redirect(gomock.Any())
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	require.NoError(t, f.actions.Delete(context.Background(), "p1"))
	assert.Equal(t, "p2", f.actions.Selected().Get())
}

func TestSyncActions_Delete_Cancelled(t *testing.T) {
	tests := []struct {
		name    string
		confirm bool
		err     error
	}{
		{name: "declined", confirm: false},
		{name: "dismissed", err: ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newSyncFixture(t, testPairs()...)
			f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(tt.confirm, tt.err)

			err := f.actions.Delete(context.Background(), "p1")

			assert.ErrorIs(t, err, ErrCancelled)
			assert.True(t, dispatch.IsSilent(err))
			assert.Equal(t, 2, f.actions.Pairs().Len())
		})
	}
}

func TestSyncActions_Delete_NotLoaded(t *testing.T) {
	f := newSyncFixture(t)

	err := f.actions.Delete(context.Background(), "p1")
	assert.ErrorIs(t, err, ErrNotLoaded)
}

func TestSyncActions_Delete_RemoteFailure(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	f.actions.Selected().Set("p1")

	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil)
	released := expectLoading(f.reporter, "syncs.deleting")
	f.api.EXPECT().UpdateSyncRemoved(gomock.Any(), "p1", true).
		Return(app.New(app.MsgWorkerUnavailable, adapter.ErrWorkerUnavailable))
	f.reporter.EXPECT().Error(gomock.Any()).Times(1)

	err := f.actions.Delete(context.Background(), "p1")

	require.ErrorIs(t, err, adapter.ErrWorkerUnavailable)
	assert.Equal(t, testPairs(), f.actions.Pairs().Snapshot())
	assert.Equal(t, "p1", f.actions.Selected().Get())
	assert.Equal(t, int64(1), released.Load())
}

// ── ResetCache ───────────────────────────────────────────────────────────────

func TestSyncActions_ResetCache(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)

	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(true, nil)
	expectLoading(f.reporter, "syncs.resettingCache")
	f.api.EXPECT().ResetSyncCache(gomock.Any(), "p2").Return(nil)
	f.reporter.EXPECT().Success("syncs.resetCacheDone")

	require.NoError(t, f.actions.ResetCache(context.Background(), "p2"))
	assert.Equal(t, testPairs(), f.actions.Pairs().Snapshot(), "mirror is not touched")
}

func TestSyncActions_ResetCache_Cancelled(t *testing.T) {
	f := newSyncFixture(t, testPairs()...)
	f.prompter.EXPECT().Confirm(gomock.Any(), gomock.Any()).Return(false, nil)

	assert.ErrorIs(t, f.actions.ResetCache(context.Background(), "p2"), ErrCancelled)
}

func TestPairTitle(t *testing.T) {
	assert.Equal(t, "Docs", pairTitle(models.SyncPair{Name: "Docs", LocalPath: "/d"}))
	assert.Equal(t, "/d", pairTitle(models.SyncPair{LocalPath: "/d"}))
}
