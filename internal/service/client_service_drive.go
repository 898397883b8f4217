// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/dispatch"
	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/state"
	"github.com/MKhiriev/go-drive-desk/models"
)

const actionDriveLoad = "drive.load"

type driveActions struct {
	api        adapter.WorkerAPI
	prompter   Prompter
	translator Translator
	dispatcher *dispatch.Dispatcher

	items *state.Container[models.DriveItem]

	mu     sync.RWMutex
	parent string

	now func() time.Time
}

// NewDriveActions returns the directory actions.
func NewDriveActions(
	api adapter.WorkerAPI,
	prompter Prompter,
	translator Translator,
	reporter feedback.Reporter,
	logger *logger.Logger,
) DriveActions {
	return &driveActions{
		api:        api,
		prompter:   prompter,
		translator: translator,
		dispatcher: dispatch.NewDispatcher(reporter, logger),
		items:      state.NewContainer[models.DriveItem](),
		now:        time.Now,
	}
}

func (d *driveActions) Items() *state.Container[models.DriveItem] {
	return d.items
}

func (d *driveActions) Parent() string {
	d.mu.RLock()
	defer d.mu.RUnlock()
	return d.parent
}

func (d *driveActions) Load(ctx context.Context, parent string) error {
	return d.dispatcher.Do(ctx, dispatch.Key{Action: actionDriveLoad, EntityID: parent}, d.translator.T("drive.loading"),
		func(ctx context.Context) error {
			items, err := d.api.ListDirectory(ctx, parent)
			if err != nil {
				return err
			}

			d.mu.Lock()
			d.parent = parent
			d.mu.Unlock()

			d.items.Set(items)
			return nil
		})
}

func (d *driveActions) CreateDirectory(ctx context.Context, parent string) error {
	var name string
	return d.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     dispatch.Key{Action: string(events.DriveCreateFolder), EntityID: parent},
		Loading: d.translator.T("drive.creatingFolder"),
		Prepare: func(ctx context.Context) (err error) {
			name, err = d.askName(ctx, models.Prompt{
				Title:       d.translator.T("drive.createFolderTitle"),
				Placeholder: d.translator.T("drive.createFolderPlaceholder"),
			})
			return err
		},
		Run: func(ctx context.Context) error {
			uuid, err := d.api.CreateDirectory(ctx, name, parent)
			if err != nil {
				return err
			}

			ts := float64(d.now().UnixMilli())
			d.insert(models.DriveItem{
				UUID:         uuid,
				Parent:       parent,
				Name:         name,
				Type:         models.ItemTypeDirectory,
				Timestamp:    ts,
				LastModified: ts,
			})
			return nil
		},
	})
}

func (d *driveActions) CreateTextFile(ctx context.Context, parent string) error {
	var name string
	return d.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     dispatch.Key{Action: string(events.DriveCreateTextFile), EntityID: parent},
		Loading: d.translator.T("drive.creatingTextFile"),
		Prepare: func(ctx context.Context) (err error) {
			name, err = d.askName(ctx, models.Prompt{
				Title:       d.translator.T("drive.createTextFileTitle"),
				Placeholder: d.translator.T("drive.createTextFilePlaceholder"),
				Value:       ".txt",
			})
			return err
		},
		Run: func(ctx context.Context) error {
			item, err := d.api.UploadTextFile(ctx, name, parent, "")
			if err != nil {
				return err
			}

			if item.Parent == "" {
				item.Parent = parent
			}
			if item.Name == "" {
				item.Name = name
			}
			item.Type = models.ItemTypeFile
			d.insert(item)
			return nil
		},
	})
}

func (d *driveActions) ToggleSelect(uuid string) {
	d.items.Update(func(items []models.DriveItem) []models.DriveItem {
		item, ok := state.Find(items, uuid)
		if !ok {
			return items
		}
		item.Selected = !item.Selected
		out, _ := state.ReplaceByID(items, item)
		return out
	})
}

func (d *driveActions) ClearSelection() {
	d.items.Update(func(items []models.DriveItem) []models.DriveItem {
		out := make([]models.DriveItem, len(items))
		for i, item := range items {
			item.Selected = false
			out[i] = item
		}
		return out
	})
}

func (d *driveActions) Selected() []models.DriveItem {
	var selected []models.DriveItem
	for _, item := range d.items.Snapshot() {
		if item.Selected {
			selected = append(selected, item)
		}
	}
	return selected
}

// insert adds item to the mirror when it belongs to the listed directory.
func (d *driveActions) insert(item models.DriveItem) {
	if item.Parent != d.Parent() {
		return
	}
	d.items.Update(func(items []models.DriveItem) []models.DriveItem {
		return state.InsertDistinct(items, item)
	})
}

// askName prompts for an item name. A blank answer counts as cancellation.
func (d *driveActions) askName(ctx context.Context, p models.Prompt) (string, error) {
	name, err := d.prompter.Input(ctx, p)
	if err != nil {
		return "", err
	}

	name = strings.TrimSpace(name)
	if name == "" {
		return "", ErrCancelled
	}
	return name, nil
}
