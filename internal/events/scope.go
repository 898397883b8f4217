// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package events

import "sync"

// Scope collects the subscriptions of one component so they can be released
// together when the component is torn down.
type Scope struct {
	bridge *Bridge

	mu     sync.Mutex
	subs   []*Subscription
	closed bool
}

// NewScope returns a scope bound to b.
func NewScope(b *Bridge) *Scope {
	return &Scope{bridge: b}
}

// On subscribes h to name for the lifetime of the scope. After Close it is
// a no-op.
func (s *Scope) On(name Name, h Handler) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.subs = append(s.subs, s.bridge.Subscribe(name, h))
}

// OnID subscribes h to events called name that target id.
func (s *Scope) OnID(name Name, id string, h Handler) {
	s.On(name, ForID(id, h))
}

// Close releases every subscription of the scope. Further calls do nothing.
func (s *Scope) Close() {
	s.mu.Lock()
	subs := s.subs
	s.subs = nil
	s.closed = true
	s.mu.Unlock()

	for _, sub := range subs {
		sub.Unsubscribe()
	}
}
