// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"sync"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

// Host connects the services to the running program. It implements
// [feedback.Sink], [service.Prompter] and [service.Navigator] by sending
// messages to the program. Until a program is attached every call is
// dropped and prompts count as cancelled.
//
// Host methods block until the event loop receives the message, so they must
// only be called from commands, never from Update.
type Host struct {
	mu   sync.RWMutex
	send func(tea.Msg)
}

// NewHost returns a detached host.
func NewHost() *Host {
	return &Host{}
}

func (h *Host) attach(send func(tea.Msg)) {
	h.mu.Lock()
	h.send = send
	h.mu.Unlock()
}

func (h *Host) detach() {
	h.attach(nil)
}

func (h *Host) deliver(msg tea.Msg) bool {
	h.mu.RLock()
	send := h.send
	h.mu.RUnlock()

	if send == nil {
		return false
	}
	send(msg)
	return true
}

// Show implements [feedback.Sink].
func (h *Host) Show(t feedback.Toast) {
	h.deliver(toastShowMsg{toast: t})
}

// Dismiss implements [feedback.Sink].
func (h *Host) Dismiss(id string) {
	h.deliver(toastDismissMsg{id: id})
}

// Redirect implements [service.Navigator].
func (h *Host) Redirect(r models.Redirect) {
	h.deliver(redirectMsg{redirect: r})
}

// Confirm implements [service.Prompter].
func (h *Host) Confirm(ctx context.Context, p models.Prompt) (bool, error) {
	reply, err := h.ask(ctx, promptConfirm, p)
	if err != nil {
		return false, err
	}
	return reply.ok, nil
}

// Input implements [service.Prompter].
func (h *Host) Input(ctx context.Context, p models.Prompt) (string, error) {
	reply, err := h.ask(ctx, promptInput, p)
	if err != nil {
		return "", err
	}
	if !reply.ok {
		return "", service.ErrCancelled
	}
	return reply.value, nil
}

func (h *Host) ask(ctx context.Context, kind promptKind, p models.Prompt) (promptReply, error) {
	reply := make(chan promptReply, 1)
	if !h.deliver(promptMsg{kind: kind, prompt: p, reply: reply}) {
		return promptReply{}, service.ErrCancelled
	}

	select {
	case r := <-reply:
		return r, nil
	case <-ctx.Done():
		return promptReply{}, fmt.Errorf("%w: %w", service.ErrCancelled, ctx.Err())
	}
}
