// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package linkstate tracks the public link of one directory while its
// sharing panel is open.
//
//	Unloaded --Loaded(exists)--> Enabled --Loaded(!exists)--> Disabled
//	    ^                           |                             |
//	    +-------- Invalidate -------+-----------------------------+
//	any --Remove--> Removed (terminal)
//
// Settings edited in the panel are staged in a [Draft] and only leave the
// machine through [Machine.EditRequest]; a reload, Discard or Remove drops
// them.
package linkstate

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/MKhiriev/go-drive-desk/models"
)

// State is the lifecycle position of the link.
type State int

const (
	Unloaded State = iota
	Disabled
	Enabled
	Removed
)

func (s State) String() string {
	switch s {
	case Unloaded:
		return "unloaded"
	case Disabled:
		return "loaded-disabled"
	case Enabled:
		return "loaded-enabled"
	case Removed:
		return "removed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ErrNotEnabled is returned by draft setters when there is no enabled link
// to edit.
var ErrNotEnabled = errors.New("public link is not enabled")

// Draft holds staged link settings.
type Draft struct {
	Expiration  models.Expiration
	Password    string
	DownloadBtn bool

	// RemovePassword drops the existing password on save.
	RemovePassword bool
}

// Machine is safe for concurrent use.
type Machine struct {
	mu sync.RWMutex

	state  State
	status models.PublicLinkStatus

	// plainKey is the decrypted status.Key, valid while keyReady is set.
	plainKey string
	keyReady bool

	draft        Draft
	dirty        bool
	showPassword bool
}

// New returns a machine in the Unloaded state.
func New() *Machine {
	return &Machine{}
}

// State returns the current state.
func (m *Machine) State() State {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.state
}

// Status returns the last loaded status.
func (m *Machine) Status() models.PublicLinkStatus {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// Loaded applies a freshly fetched status and discards any draft. It
// reports whether the link key still needs decrypting. A removed machine
// ignores the call.
func (m *Machine) Loaded(status models.PublicLinkStatus) (needsKey bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Removed {
		return false
	}

	if status.Key != m.status.Key || status.UUID != m.status.UUID {
		m.plainKey = ""
		m.keyReady = false
	}

	m.status = status
	m.resetDraft()

	if !status.Exists {
		m.state = Disabled
		m.plainKey = ""
		m.keyReady = false
		return false
	}

	m.state = Enabled
	return !m.keyReady && status.Key != ""
}

// KeyDecrypted stores the plain key for encryptedKey. Results for a key that
// is no longer current are dropped; the return value reports whether the key
// was accepted.
func (m *Machine) KeyDecrypted(encryptedKey, plainKey string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Enabled || m.status.Key != encryptedKey {
		return false
	}
	m.plainKey = plainKey
	m.keyReady = true
	return true
}

// KeyReady reports whether the decrypted key is available.
func (m *Machine) KeyReady() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.keyReady
}

// Invalidate marks the status stale ahead of a re-fetch.
func (m *Machine) Invalidate() {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state == Removed {
		return
	}
	m.state = Unloaded
	m.resetDraft()
}

// Remove moves the machine to the terminal Removed state.
func (m *Machine) Remove() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.state = Removed
	m.status = models.PublicLinkStatus{}
	m.plainKey = ""
	m.keyReady = false
	m.resetDraft()
}

// Draft returns the staged settings.
func (m *Machine) Draft() Draft {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.draft
}

// Dirty reports whether the draft differs from the loaded status.
func (m *Machine) Dirty() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.dirty
}

// SetExpiration stages a new lifetime.
func (m *Machine) SetExpiration(e models.Expiration) error {
	if err := e.Validate(); err != nil {
		return err
	}
	return m.edit(func(d *Draft) { d.Expiration = e })
}

// SetPassword stages a new password. An empty password leaves the current
// protection untouched.
func (m *Machine) SetPassword(password string) error {
	return m.edit(func(d *Draft) {
		d.Password = password
		if password != "" {
			d.RemovePassword = false
		}
	})
}

// ClearPassword stages removal of the password.
func (m *Machine) ClearPassword() error {
	return m.edit(func(d *Draft) {
		d.Password = ""
		d.RemovePassword = true
	})
}

// SetDownloadBtn stages the download button flag.
func (m *Machine) SetDownloadBtn(enabled bool) error {
	return m.edit(func(d *Draft) { d.DownloadBtn = enabled })
}

// Discard drops staged edits.
func (m *Machine) Discard() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.resetDraft()
}

// TogglePasswordVisibility flips whether the staged password is shown and
// returns the new value. It is UI-only state.
func (m *Machine) TogglePasswordVisibility() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.showPassword = !m.showPassword
	return m.showPassword
}

// PasswordVisible reports whether the staged password is shown.
func (m *Machine) PasswordVisible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.showPassword
}

// Link renders the shareable URL below base. Until the key is decrypted the
// "#key" suffix is omitted. Returns "" unless the link is enabled.
func (m *Machine) Link(base string) string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != Enabled || m.status.UUID == "" {
		return ""
	}

	link := strings.TrimRight(base, "/") + "/" + m.status.UUID
	if m.keyReady && m.plainKey != "" {
		link += "#" + m.plainKey
	}
	return link
}

// EditRequest builds the request committing the draft for itemUUID.
func (m *Machine) EditRequest(itemUUID string) (models.EditPublicLinkRequest, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.state != Enabled {
		return models.EditPublicLinkRequest{}, ErrNotEnabled
	}

	req := models.EditPublicLinkRequest{
		ItemUUID:    itemUUID,
		LinkUUID:    m.status.UUID,
		Expiration:  m.draft.Expiration,
		DownloadBtn: m.draft.DownloadBtn,
	}

	switch {
	case m.draft.Password != "":
		req.Password = m.draft.Password
		req.HasPassword = true
	case m.draft.RemovePassword:
		req.HasPassword = false
	default:
		req.HasPassword = m.status.Password
	}

	return req, nil
}

func (m *Machine) edit(fn func(d *Draft)) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state != Enabled {
		return ErrNotEnabled
	}
	fn(&m.draft)
	m.dirty = true
	return nil
}

// resetDraft must be called with mu held.
func (m *Machine) resetDraft() {
	expiration := m.status.Expiration
	if expiration == "" {
		expiration = models.ExpirationNever
	}
	m.draft = Draft{Expiration: expiration, DownloadBtn: m.status.DownloadBtn}
	m.dirty = false
	m.showPassword = false
}
