// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package events implements the typed publish/subscribe bridge that lets
// toolbars, shortcuts and menus trigger the same actions.
//
// The bridge is injected where it is needed; it is not a global. Every
// subscriber owns its [*Subscription] and releases it when it goes away,
// usually through a [Scope].
package events

import (
	"sync"

	"github.com/MKhiriev/go-drive-desk/internal/utils"
)

// Name identifies an event kind.
type Name string

const (
	// SyncDelete asks to delete the sync pair with Event.ID.
	SyncDelete Name = "syncs.delete"
	// SyncTogglePause asks to pause or resume the sync pair with Event.ID.
	SyncTogglePause Name = "syncs.togglePause"
	// DriveCreateFolder asks to create a folder in the directory Event.ID.
	DriveCreateFolder Name = "drive.createFolder"
	// DriveCreateTextFile asks to create a text file in the directory Event.ID.
	DriveCreateTextFile Name = "drive.createTextFile"
	// LinkSave asks to save the staged settings of the link of item Event.ID.
	LinkSave Name = "links.save"
)

// Event is one emission.
type Event struct {
	Name Name
	// ID is the entity the event targets. Empty for global events.
	ID string
}

// Handler reacts to an event.
type Handler func(Event)

// Bridge is a synchronous in-process event bus. The zero value is not
// usable; construct with [NewBridge].
type Bridge struct {
	mu       sync.RWMutex
	handlers map[Name]map[string]Handler
	ids      *utils.UUIDGenerator
}

// NewBridge returns an empty bridge.
func NewBridge() *Bridge {
	return &Bridge{
		handlers: make(map[Name]map[string]Handler),
		ids:      utils.NewUUIDGenerator(),
	}
}

// Subscribe registers h for events called name.
func (b *Bridge) Subscribe(name Name, h Handler) *Subscription {
	id := b.ids.Generate()

	b.mu.Lock()
	if b.handlers[name] == nil {
		b.handlers[name] = make(map[string]Handler)
	}
	b.handlers[name][id] = h
	b.mu.Unlock()

	return &Subscription{bridge: b, name: name, id: id}
}

// Emit delivers the event to every current subscriber of name exactly once,
// synchronously, in unspecified order. Handlers run outside the bridge lock
// and may subscribe or unsubscribe. A handler released by an earlier handler
// of the same emission is skipped; one subscribed during it is not called.
func (b *Bridge) Emit(name Name, id string) {
	b.mu.RLock()
	ids := make([]string, 0, len(b.handlers[name]))
	for subID := range b.handlers[name] {
		ids = append(ids, subID)
	}
	b.mu.RUnlock()

	ev := Event{Name: name, ID: id}
	for _, subID := range ids {
		if h, ok := b.handler(name, subID); ok {
			h(ev)
		}
	}
}

func (b *Bridge) handler(name Name, id string) (Handler, bool) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	h, ok := b.handlers[name][id]
	return h, ok
}

// Subscribers returns how many handlers listen for name.
func (b *Bridge) Subscribers(name Name) int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.handlers[name])
}

func (b *Bridge) unsubscribe(name Name, id string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	delete(b.handlers[name], id)
	if len(b.handlers[name]) == 0 {
		delete(b.handlers, name)
	}
}

// Subscription is the handle returned by [Bridge.Subscribe].
type Subscription struct {
	bridge *Bridge
	name   Name
	id     string
	once   sync.Once
}

// Unsubscribe detaches the handler. It is safe to call repeatedly.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(func() {
		s.bridge.unsubscribe(s.name, s.id)
	})
}

// ForID wraps h so that it only sees events targeting id.
func ForID(id string, h Handler) Handler {
	return func(ev Event) {
		if ev.ID == id {
			h(ev)
		}
	}
}
