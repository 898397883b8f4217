// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
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

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

type driveFixture struct {
	api      *mock.MockWorkerAPI
	prompter *mock.MockPrompter
	reporter *mock.MockReporter
	actions  *driveActions
}

func newDriveFixture(t *testing.T, parent string, items ...models.DriveItem) *driveFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &driveFixture{
		api:      mock.NewMockWorkerAPI(ctrl),
		prompter: mock.NewMockPrompter(ctrl),
		reporter: mock.NewMockReporter(ctrl),
	}
	f.actions = NewDriveActions(f.api, f.prompter, keyTranslator{}, f.reporter, logger.Nop()).(*driveActions)
	f.actions.now = func() time.Time { return fixedNow }
	f.actions.parent = parent
	f.actions.items.Set(items)
	return f
}

func testItems() []models.DriveItem {
	return []models.DriveItem{
		{UUID: "d1", Parent: "root", Name: "docs", Type: models.ItemTypeDirectory},
		{UUID: "f1", Parent: "root", Name: "readme.md", Type: models.ItemTypeFile, Size: 1024},
	}
}

// ── Load ─────────────────────────────────────────────────────────────────────

func TestDriveActions_Load(t *testing.T) {
	f := newDriveFixture(t, "")
	expectLoading(f.reporter, "drive.loading")
	f.api.EXPECT().ListDirectory(gomock.Any(), "root").Return(testItems(), nil)

	require.NoError(t, f.actions.Load(context.Background(), "root"))
	assert.Equal(t, "root", f.actions.Parent())
	assert.Equal(t, testItems(), f.actions.Items().Snapshot())
}

func TestDriveActions_Load_Failure(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)
	expectLoading(f.reporter, "drive.loading")
	f.api.EXPECT().ListDirectory(gomock.Any(), "other").Return(nil, app.New(app.MsgNotFound, adapter.ErrNotFound))
	f.reporter.EXPECT().Error(gomock.Any()).Times(1)

	require.Error(t, f.actions.Load(context.Background(), "other"))
	assert.Equal(t, "root", f.actions.Parent())
	assert.Equal(t, testItems(), f.actions.Items().Snapshot())
}

// ── CreateDirectory ──────────────────────────────────────────────────────────

func TestDriveActions_CreateDirectory(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return("  Projects ", nil)
	released := expectLoading(f.reporter, "drive.creatingFolder")
	f.api.EXPECT().CreateDirectory(gomock.Any(), "Projects", "root").Return("d2", nil)

	require.NoError(t, f.actions.CreateDirectory(context.Background(), "root"))

	item, ok := f.actions.Items().Find("d2")
	require.True(t, ok)
	assert.Equal(t, models.DriveItem{
		UUID:         "d2",
		Parent:       "root",
		Name:         "Projects",
		Type:         models.ItemTypeDirectory,
		Timestamp:    float64(fixedNow.UnixMilli()),
		LastModified: float64(fixedNow.UnixMilli()),
	}, item)
	assert.Equal(t, 3, f.actions.Items().Len())
	assert.Equal(t, int64(1), released.Load())
}

func TestDriveActions_CreateDirectory_NameCollision(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return("DOCS", nil)
	expectLoading(f.reporter, "drive.creatingFolder")
	f.api.EXPECT().CreateDirectory(gomock.Any(), "DOCS", "root").Return("d9", nil)

	require.NoError(t, f.actions.CreateDirectory(context.Background(), "root"))

	items := f.actions.Items().Snapshot()
	require.Len(t, items, 2, "case-insensitive name collision keeps one record")
	_, ok := f.actions.Items().Find("d1")
	assert.False(t, ok)
	_, ok = f.actions.Items().Find("d9")
	assert.True(t, ok)
}

func TestDriveActions_CreateDirectory_OtherParent(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return("nested", nil)
	expectLoading(f.reporter, "drive.creatingFolder")
	f.api.EXPECT().CreateDirectory(gomock.Any(), "nested", "d1").Return("d3", nil)

	require.NoError(t, f.actions.CreateDirectory(context.Background(), "d1"))
	assert.Equal(t, testItems(), f.actions.Items().Snapshot(), "listing of another directory is untouched")
}

func TestDriveActions_CreateDirectory_Cancelled(t *testing.T) {
	tests := []struct {
		name  string
		input string
		err   error
	}{
		{name: "blank name", input: "   "},
		{name: "empty name", input: ""},
		{name: "dismissed", err: ErrCancelled},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newDriveFixture(t, "root", testItems()...)
			f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return(tt.input, tt.err)

			err := f.actions.CreateDirectory(context.Background(), "root")

			assert.ErrorIs(t, err, ErrCancelled)
			assert.True(t, dispatch.IsSilent(err))
			assert.Equal(t, testItems(), f.actions.Items().Snapshot())
		})
	}
}

func TestDriveActions_CreateDirectory_RemoteFailure(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return("docs", nil)
	released := expectLoading(f.reporter, "drive.creatingFolder")
	f.api.EXPECT().CreateDirectory(gomock.Any(), "docs", "root").
		Return("", app.New(app.MsgConflict, adapter.ErrConflict))
	f.reporter.EXPECT().Error(gomock.Any()).Times(1)

	err := f.actions.CreateDirectory(context.Background(), "root")

	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Equal(t, testItems(), f.actions.Items().Snapshot())
	assert.Equal(t, int64(1), released.Load())
}

// ── CreateTextFile ───────────────────────────────────────────────────────────

func TestDriveActions_CreateTextFile(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p models.Prompt) (string, error) {
			assert.Equal(t, ".txt", p.Value)
			return "notes.txt", nil
		})
	expectLoading(f.reporter, "drive.creatingTextFile")
	f.api.EXPECT().UploadTextFile(gomock.Any(), "notes.txt", "root", "").
		Return(models.DriveItem{UUID: "f2", Timestamp: 1700000000000}, nil)

	require.NoError(t, f.actions.CreateTextFile(context.Background(), "root"))

	item, ok := f.actions.Items().Find("f2")
	require.True(t, ok)
	assert.Equal(t, "root", item.Parent)
	assert.Equal(t, "notes.txt", item.Name)
	assert.Equal(t, models.ItemTypeFile, item.Type)
	assert.Equal(t, 3, f.actions.Items().Len())
}

// ── Selection ────────────────────────────────────────────────────────────────

func TestDriveActions_Selection(t *testing.T) {
	f := newDriveFixture(t, "root", testItems()...)

	f.actions.ToggleSelect("f1")
	f.actions.ToggleSelect("missing")

	selected := f.actions.Selected()
	require.Len(t, selected, 1)
	assert.Equal(t, "f1", selected[0].UUID)

	f.actions.ToggleSelect("d1")
	assert.Len(t, f.actions.Selected(), 2)

	f.actions.ToggleSelect("f1")
	assert.Len(t, f.actions.Selected(), 1)

	f.actions.ClearSelection()
	assert.Empty(t, f.actions.Selected())
	assert.Equal(t, 2, f.actions.Items().Len())
}
