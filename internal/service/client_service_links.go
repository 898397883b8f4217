// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/MKhiriev/go-drive-desk/internal/adapter"
	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/dispatch"
	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/linkstate"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/state"
	"github.com/MKhiriev/go-drive-desk/models"
)

const (
	actionLinksList   = "links.list"
	actionLinkStatus  = "links.status"
	actionLinkDecrypt = "links.decryptKey"
	actionLinkEnable  = "links.enable"
	actionLinkDisable = "links.disable"
	actionLinkCopy    = "links.copy"
	keyCacheSize      = 256
	keyCacheTTL       = 0 // session lifetime
)

type linkActions struct {
	api        adapter.WorkerAPI
	clipboard  Clipboard
	translator Translator
	reporter   feedback.Reporter
	dispatcher *dispatch.Dispatcher
	logger     *logger.Logger

	links    *state.Container[models.DriveItem]
	keyCache *expirable.LRU[string, string]
	linkBase string
}

// NewLinkActions returns the public link actions. Shareable URLs are built
// below linkBase.
func NewLinkActions(
	api adapter.WorkerAPI,
	clipboard Clipboard,
	translator Translator,
	reporter feedback.Reporter,
	linkBase string,
	logger *logger.Logger,
) LinkActions {
	return &linkActions{
		api:        api,
		clipboard:  clipboard,
		translator: translator,
		reporter:   reporter,
		dispatcher: dispatch.NewDispatcher(reporter, logger),
		logger:     logger,
		links:      state.NewContainer[models.DriveItem](),
		keyCache:   expirable.NewLRU[string, string](keyCacheSize, nil, keyCacheTTL),
		linkBase:   linkBase,
	}
}

func (l *linkActions) Links() *state.Container[models.DriveItem] {
	return l.links
}

func (l *linkActions) LoadLinks(ctx context.Context) error {
	return l.dispatcher.Do(ctx, dispatch.Key{Action: actionLinksList}, l.translator.T("links.loading"),
		func(ctx context.Context) error {
			items, err := l.api.PublicLinks(ctx)
			if err != nil {
				return err
			}
			l.links.Set(items)
			return nil
		})
}

func (l *linkActions) Open(item models.DriveItem, inLinksView bool) *LinkPanel {
	return &LinkPanel{
		actions:     l,
		item:        item,
		inLinksView: inLinksView,
		machine:     linkstate.New(),
	}
}

// LinkPanel is the sharing panel of one directory.
type LinkPanel struct {
	actions     *linkActions
	item        models.DriveItem
	inLinksView bool
	machine     *linkstate.Machine

	mu     sync.RWMutex
	closed bool
}

// Item returns the directory the panel belongs to.
func (p *LinkPanel) Item() models.DriveItem {
	return p.item
}

// Machine exposes the link state for rendering and draft edits.
func (p *LinkPanel) Machine() *linkstate.Machine {
	return p.machine
}

// Link returns the shareable URL, or "" while the link is not enabled.
func (p *LinkPanel) Link() string {
	return p.machine.Link(p.actions.linkBase)
}

// NeedsKey reports whether the link key still has to be decrypted.
func (p *LinkPanel) NeedsKey() bool {
	return p.machine.State() == linkstate.Enabled && !p.machine.KeyReady() && p.machine.Status().Key != ""
}

// Closed reports whether the panel was closed, either by the user or because
// its link was disabled from the links view.
func (p *LinkPanel) Closed() bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.closed
}

// Close discards staged edits and closes the panel.
func (p *LinkPanel) Close() {
	p.machine.Discard()
	p.mu.Lock()
	p.closed = true
	p.mu.Unlock()
}

// Load fetches the link status.
func (p *LinkPanel) Load(ctx context.Context) error {
	return p.actions.dispatcher.Do(ctx, p.key(actionLinkStatus), p.actions.translator.T("links.loadingStatus"), p.refresh)
}

// DecryptKey resolves the plain link key, from the session cache when
// possible. It shows no loading indicator; the link renders without the key
// until it arrives.
func (p *LinkPanel) DecryptKey(ctx context.Context) error {
	encrypted := p.machine.Status().Key
	if encrypted == "" {
		return nil
	}

	if plain, ok := p.actions.keyCache.Get(encrypted); ok {
		p.machine.KeyDecrypted(encrypted, plain)
		return nil
	}

	return p.actions.dispatcher.Do(ctx, p.key(actionLinkDecrypt), "", func(ctx context.Context) error {
		plain, err := p.actions.api.DecryptDirectoryLinkKey(ctx, encrypted)
		if err != nil {
			return err
		}
		p.actions.keyCache.Add(encrypted, plain)
		p.machine.KeyDecrypted(encrypted, plain)
		return nil
	})
}

// Enable creates a link that never expires.
func (p *LinkPanel) Enable(ctx context.Context) error {
	return p.actions.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     p.key(actionLinkEnable),
		Loading: p.actions.translator.T("links.enabling"),
		Prepare: p.require(linkstate.Disabled),
		Run: func(ctx context.Context) error {
			err := p.actions.api.EnablePublicLink(ctx, models.EnablePublicLinkRequest{
				ItemUUID:   p.item.UUID,
				Expiration: models.ExpirationNever,
			})
			if err != nil {
				return err
			}
			return p.refresh(ctx)
		},
	})
}

// Disable removes the link. In the links view the directory leaves the list
// and the panel closes; elsewhere the panel shows the disabled status.
func (p *LinkPanel) Disable(ctx context.Context) error {
	return p.actions.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     p.key(actionLinkDisable),
		Loading: p.actions.translator.T("links.disabling"),
		Prepare: p.require(linkstate.Enabled),
		Run: func(ctx context.Context) error {
			err := p.actions.api.DisablePublicLink(ctx, models.DisablePublicLinkRequest{
				ItemUUID: p.item.UUID,
				LinkUUID: p.machine.Status().UUID,
			})
			if err != nil {
				return err
			}

			if p.inLinksView {
				p.actions.links.Update(func(items []models.DriveItem) []models.DriveItem {
					out, _ := state.RemoveByID(items, p.item.UUID)
					return out
				})
				p.machine.Remove()
				p.mu.Lock()
				p.closed = true
				p.mu.Unlock()
				return nil
			}

			p.machine.Discard()
			return p.refresh(ctx)
		},
	})
}

// Save commits the staged settings.
func (p *LinkPanel) Save(ctx context.Context) error {
	var req models.EditPublicLinkRequest
	return p.actions.dispatcher.Dispatch(ctx, dispatch.Action{
		Key:     p.key(string(events.LinkSave)),
		Loading: p.actions.translator.T("links.saving"),
		Prepare: func(ctx context.Context) error {
			var err error
			req, err = p.machine.EditRequest(p.item.UUID)
			if errors.Is(err, linkstate.ErrNotEnabled) {
				return ErrNotLoaded
			}
			return err
		},
		Run: func(ctx context.Context) error {
			if err := p.actions.api.EditPublicLink(ctx, req); err != nil {
				return err
			}
			if err := p.refresh(ctx); err != nil {
				return err
			}
			p.actions.reporter.Success(p.actions.translator.T("links.saved"))
			return nil
		},
	})
}

// CopyLink writes the shareable URL to the clipboard.
func (p *LinkPanel) CopyLink(ctx context.Context) error {
	return p.actions.dispatcher.Do(ctx, p.key(actionLinkCopy), "", func(ctx context.Context) error {
		link := p.Link()
		if link == "" {
			return ErrNotLoaded
		}
		if err := p.actions.clipboard.WriteAll(link); err != nil {
			return app.New(app.MsgClipboardUnavailable, fmt.Errorf("write clipboard: %w", err))
		}
		p.actions.reporter.Success(p.actions.translator.T("common.copied"))
		return nil
	})
}

// refresh re-fetches the status into the machine.
func (p *LinkPanel) refresh(ctx context.Context) error {
	p.machine.Invalidate()

	status, err := p.actions.api.DirectoryPublicLinkStatus(ctx, p.item.UUID)
	if err != nil {
		return err
	}
	p.machine.Loaded(status)
	return nil
}

func (p *LinkPanel) require(want linkstate.State) func(ctx context.Context) error {
	return func(ctx context.Context) error {
		if p.machine.State() != want {
			return ErrNotLoaded
		}
		return nil
	}
}

func (p *LinkPanel) key(action string) dispatch.Key {
	return dispatch.Key{Action: action, EntityID: p.item.UUID}
}
