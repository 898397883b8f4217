// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/linkstate"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/internal/utils"
	"github.com/MKhiriev/go-drive-desk/models"
)

// linkPanelView renders a [service.LinkPanel] and owns its subscriptions.
type linkPanelView struct {
	panel *service.LinkPanel
	scope *events.Scope
	inbox *inbox
	tr    service.Translator

	// ctx is set by cmdLoad and used by event handlers.
	ctx context.Context
}

func newLinkPanelView(panel *service.LinkPanel, bridge *events.Bridge, inbox *inbox, tr service.Translator) *linkPanelView {
	v := &linkPanelView{
		panel: panel,
		scope: events.NewScope(bridge),
		inbox: inbox,
		tr:    tr,
		ctx:   context.Background(),
	}

	v.scope.OnID(events.LinkSave, panel.Item().UUID, func(events.Event) {
		v.inbox.push(v.cmdAction(v.panel.Save))
	})
	return v
}

func (v *linkPanelView) closed() bool {
	return v.panel.Closed()
}

func (v *linkPanelView) cmdLoad(ctx context.Context) tea.Cmd {
	v.ctx = ctx
	panel := v.panel
	return func() tea.Msg {
		return linkLoadedMsg{panel: panel, err: panel.Load(ctx)}
	}
}

func (v *linkPanelView) cmdDecryptKey() tea.Cmd {
	return v.cmdAction(v.panel.DecryptKey)
}

// cmdAction runs fn and reloads the key when the status changed.
func (v *linkPanelView) cmdAction(fn func(ctx context.Context) error) tea.Cmd {
	ctx := v.ctx
	panel := v.panel
	return func() tea.Msg {
		if err := fn(ctx); err != nil {
			return actionDoneMsg{err: err}
		}
		return linkLoadedMsg{panel: panel}
	}
}

// cmdAskPassword prompts for a new password through the Host.
func (v *linkPanelView) cmdAskPassword(prompter service.Prompter) tea.Cmd {
	ctx := v.ctx
	m := v.panel.Machine()
	title := v.tr.T("links.password")
	return func() tea.Msg {
		password, err := prompter.Input(ctx, models.Prompt{Title: title})
		if err == nil && password != "" {
			err = m.SetPassword(password)
		}
		return actionDoneMsg{err: err}
	}
}

// update handles a key while the panel is open. Keys the panel uses are
// marked with PreventDefault.
func (v *linkPanelView) update(m *appModel, ev *keyPress) tea.Cmd {
	mach := v.panel.Machine()
	msg := ev.KeyMsg

	switch {
	case key.Matches(msg, keys.esc):
		utils.PreventDefault(ev)
		v.panel.Close()
		return nil
	case key.Matches(msg, keys.enable):
		utils.PreventDefault(ev)
		return v.cmdAction(v.panel.Enable)
	case key.Matches(msg, keys.disable):
		utils.PreventDefault(ev)
		return v.cmdAction(v.panel.Disable)
	case key.Matches(msg, keys.save):
		utils.PreventDefault(ev)
		m.bridge.Emit(events.LinkSave, v.panel.Item().UUID)
		return nil
	case key.Matches(msg, keys.copy):
		utils.PreventDefault(ev)
		return v.cmdAction(v.panel.CopyLink)
	case key.Matches(msg, keys.reveal):
		utils.PreventDefault(ev)
		mach.TogglePasswordVisibility()
		return nil
	}

	if mach.State() != linkstate.Enabled {
		return nil
	}

	switch {
	case key.Matches(msg, keys.expire):
		utils.PreventDefault(ev)
		_ = mach.SetExpiration(nextExpiration(mach.Draft().Expiration))
	case key.Matches(msg, keys.download):
		utils.PreventDefault(ev)
		_ = mach.SetDownloadBtn(!mach.Draft().DownloadBtn)
	case key.Matches(msg, keys.unset):
		utils.PreventDefault(ev)
		_ = mach.ClearPassword()
	case key.Matches(msg, keys.password):
		utils.PreventDefault(ev)
		return v.cmdAskPassword(m.prompter)
	}
	return nil
}

func nextExpiration(e models.Expiration) models.Expiration {
	idx := slices.Index(models.Expirations, e)
	return models.Expirations[(idx+1)%len(models.Expirations)]
}

func (v *linkPanelView) view(spinner string) string {
	mach := v.panel.Machine()
	title := v.tr.T("drive.publicLink") + ": " + v.panel.Item().Name

	switch mach.State() {
	case linkstate.Unloaded:
		return renderPage(title, spinner+" "+v.tr.T("links.loadingStatus"), "esc")
	case linkstate.Removed:
		return renderPage(title, v.tr.T("links.disabled"), "esc")
	case linkstate.Disabled:
		return renderPage(title, v.tr.T("links.disabled"), "e: "+v.tr.T("links.enable")+"  esc")
	}

	draft := mach.Draft()
	status := mach.Status()

	var b strings.Builder
	b.WriteString(v.panel.Link())
	if !mach.KeyReady() {
		b.WriteString("  ")
		b.WriteString(mutedStyle.Render(spinner + " " + v.tr.T("links.decrypting")))
	}
	b.WriteString("\n\n")

	fmt.Fprintf(&b, "%s: %s\n", v.tr.T("links.expiration"), v.tr.T("expiration."+string(draft.Expiration)))
	fmt.Fprintf(&b, "%s: %s\n", v.tr.T("links.password"), v.passwordText(mach, draft, status))
	fmt.Fprintf(&b, "%s: %s", v.tr.T("links.downloadBtn"), v.onOff(draft.DownloadBtn))

	if mach.Dirty() {
		b.WriteString("\n\n")
		b.WriteString(errorStyle.Render(v.tr.T("links.unsaved")))
	}

	help := "c: " + v.tr.T("links.copy") + "  t: " + v.tr.T("links.expiration") +
		"  p/r/v: " + v.tr.T("links.password") + "  b: " + v.tr.T("links.downloadBtn") +
		"  s: " + v.tr.T("links.save") + "  x: " + v.tr.T("links.disable") + "  esc"
	return renderPage(title, b.String(), help)
}

func (v *linkPanelView) passwordText(mach *linkstate.Machine, draft linkstate.Draft, status models.PublicLinkStatus) string {
	switch {
	case draft.Password != "":
		if mach.PasswordVisible() {
			return draft.Password
		}
		return strings.Repeat("•", len([]rune(draft.Password)))
	case draft.RemovePassword:
		return v.tr.T("links.passwordNone")
	case status.Password:
		return v.tr.T("links.passwordSet")
	default:
		return v.tr.T("links.passwordNone")
	}
}

func (v *linkPanelView) onOff(on bool) string {
	if on {
		return v.tr.T("common.on")
	}
	return v.tr.T("common.off")
}
