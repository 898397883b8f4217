// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

type toastShowMsg struct {
	toast feedback.Toast
}

type toastDismissMsg struct {
	id string
}

type toastExpireMsg struct {
	id string
}

type promptKind int

const (
	promptConfirm promptKind = iota
	promptInput
)

type promptReply struct {
	ok    bool
	value string
}

type promptMsg struct {
	kind   promptKind
	prompt models.Prompt
	reply  chan<- promptReply
}

type redirectMsg struct {
	redirect models.Redirect
}

// mirrorChangedMsg is sent when a state container changed outside of an
// action, for example by the refresh job.
type mirrorChangedMsg struct{}

type reloadDoneMsg struct {
	err error
}

type actionDoneMsg struct {
	err error
}

type linkLoadedMsg struct {
	panel *service.LinkPanel
	err   error
}

// keyPress is a key routed to an overlay. An overlay that consumes it calls
// PreventDefault so the global bindings do not see it.
type keyPress struct {
	tea.KeyMsg
	prevented bool
}

func (k *keyPress) PreventDefault() { k.prevented = true }
