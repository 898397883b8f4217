// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"sync"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-drive-desk/internal/app"
	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/internal/utils"
	"github.com/MKhiriev/go-drive-desk/models"
)

// inbox collects commands queued by event handlers during Update.
type inbox struct {
	mu   sync.Mutex
	cmds []tea.Cmd
}

func (i *inbox) push(cmd tea.Cmd) {
	i.mu.Lock()
	i.cmds = append(i.cmds, cmd)
	i.mu.Unlock()
}

func (i *inbox) drain() tea.Cmd {
	i.mu.Lock()
	cmds := i.cmds
	i.cmds = nil
	i.mu.Unlock()

	if len(cmds) == 0 {
		return nil
	}
	return tea.Batch(cmds...)
}

type appModel struct {
	ctx       context.Context
	services  *service.ClientServices
	prompter  service.Prompter
	bridge    *events.Bridge
	tr        service.Translator
	buildInfo models.BuildInfo

	router router
	cursor map[string]int

	// scope holds the event subscriptions of the current view.
	scope *events.Scope
	inbox *inbox

	menu    *menuModel
	prompts []*modalModel
	panel   *linkPanelView
	toasts  toastStack
	ids     *utils.UUIDGenerator
	spinner spinner.Model

	showBuildInfo bool
}

func newAppModel(
	ctx context.Context,
	services *service.ClientServices,
	prompter service.Prompter,
	bridge *events.Bridge,
	tr service.Translator,
	buildInfo models.BuildInfo,
) *appModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot

	m := &appModel{
		ctx:       ctx,
		services:  services,
		prompter:  prompter,
		bridge:    bridge,
		tr:        tr,
		buildInfo: buildInfo,
		router:    router{current: route{kind: routeSyncs}},
		cursor:    make(map[string]int),
		inbox:     &inbox{},
		ids:       utils.NewUUIDGenerator(),
		spinner:   s,
	}
	m.subscribe()
	return m
}

func (m *appModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.cmdReload())
}

func (m *appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
	case toastShowMsg:
		cmd = m.toasts.show(msg.toast)
	case toastDismissMsg:
		m.toasts.dismiss(msg.id)
	case toastExpireMsg:
		m.toasts.dismiss(msg.id)
	case promptMsg:
		m.prompts = append(m.prompts, newModal(msg))
	case redirectMsg:
		cmd = m.navigate(parseRoute(msg.redirect.Route), msg.redirect.Replace, msg.redirect.ResetScroll)
	case mirrorChangedMsg:
		m.afterChange()
	case actionDoneMsg:
		if m.panel != nil && m.panel.closed() {
			m.closePanel()
		}
		m.afterChange()
	case reloadDoneMsg:
		if msg.err != nil {
			cmd = m.toastError(msg.err)
		}
		m.afterChange()
	case linkLoadedMsg:
		switch {
		case m.panel == nil || m.panel.panel != msg.panel:
		case m.panel.closed():
			m.closePanel()
		case msg.err == nil && msg.panel.NeedsKey():
			cmd = m.panel.cmdDecryptKey()
		}
	case tea.KeyMsg:
		var quit bool
		cmd, quit = m.updateKeys(msg)
		if quit {
			m.shutdown()
			return m, tea.Quit
		}
	}

	return m, tea.Batch(cmd, m.inbox.drain())
}

func (m *appModel) updateKeys(msg tea.KeyMsg) (tea.Cmd, bool) {
	if key.Matches(msg, keys.forceQ) {
		return nil, true
	}

	if len(m.prompts) > 0 {
		done, cmd := m.prompts[0].update(msg)
		if done {
			m.prompts = m.prompts[1:]
		}
		return cmd, false
	}

	if m.showBuildInfo {
		if key.Matches(msg, keys.esc, keys.info) {
			m.showBuildInfo = false
		}
		return nil, false
	}

	if m.menu != nil {
		picked, closed := m.menu.update(msg)
		if closed {
			m.menu = nil
		}
		if picked != nil {
			return m.pick(*picked), false
		}
		return nil, false
	}

	if m.panel != nil {
		ev := &keyPress{KeyMsg: msg}
		cmd := m.panel.update(m, ev)
		if m.panel.closed() {
			m.closePanel()
		}
		if !ev.prevented && key.Matches(msg, keys.quit) {
			return cmd, true
		}
		return cmd, false
	}

	switch {
	case key.Matches(msg, keys.quit):
		return nil, true
	case key.Matches(msg, keys.info):
		m.showBuildInfo = true
		return nil, false
	case key.Matches(msg, keys.tab):
		m.router.nextSection(1)
		return m.enterRoute(), false
	case key.Matches(msg, keys.backtab):
		m.router.nextSection(-1)
		return m.enterRoute(), false
	case key.Matches(msg, keys.menu):
		m.menu = newMenu(m.tr.T("common.actions"), m.menuItems())
		return nil, false
	case key.Matches(msg, keys.up):
		m.moveCursor(-1)
		return nil, false
	case key.Matches(msg, keys.down):
		m.moveCursor(1)
		return nil, false
	}

	switch m.router.current.kind {
	case routeSyncs, routeSyncDetail:
		return m.updateSyncKeys(msg), false
	case routeDrive:
		return m.updateDriveKeys(msg), false
	case routeLinks:
		return m.updateLinksKeys(msg), false
	}
	return nil, false
}

// pick runs a context menu entry.
func (m *appModel) pick(item menuItem) tea.Cmd {
	if item.event != "" {
		m.bridge.Emit(item.event, item.id)
		return nil
	}
	if item.run != nil {
		return item.run()
	}
	return nil
}

func (m *appModel) menuItems() []menuItem {
	switch m.router.current.kind {
	case routeSyncs, routeSyncDetail:
		return m.syncMenuItems()
	case routeDrive:
		return m.driveMenuItems()
	case routeLinks:
		return m.linksMenuItems()
	}
	return nil
}

// navigate moves to another route and returns the command loading it.
func (m *appModel) navigate(to route, replace, resetScroll bool) tea.Cmd {
	if m.panel != nil {
		m.panel.panel.Close()
		m.closePanel()
	}
	m.menu = nil

	m.router.navigate(to, replace)
	if resetScroll {
		m.cursor[to.String()] = 0
	}
	return m.enterRoute()
}

func (m *appModel) goBack() tea.Cmd {
	if !m.router.back() {
		return nil
	}
	return m.enterRoute()
}

// enterRoute resubscribes the view and loads its data.
func (m *appModel) enterRoute() tea.Cmd {
	m.subscribe()

	r := m.router.current
	switch r.kind {
	case routeSyncDetail:
		m.services.Syncs.Selected().Set(r.id)
	case routeDrive:
		m.services.Drive.ClearSelection()
		return m.runAction(func(ctx context.Context) error { return m.services.Drive.Load(ctx, r.id) })
	case routeLinks:
		return m.runAction(m.services.Links.LoadLinks)
	}
	return nil
}

// subscribe replaces the event subscriptions with those of the current view.
func (m *appModel) subscribe() {
	if m.scope != nil {
		m.scope.Close()
	}
	m.scope = events.NewScope(m.bridge)

	r := m.router.current
	switch r.kind {
	case routeSyncs, routeSyncDetail:
		m.scope.On(events.SyncTogglePause, func(ev events.Event) {
			m.inbox.push(m.runAction(func(ctx context.Context) error {
				return m.services.Syncs.TogglePause(ctx, ev.ID)
			}))
		})
		m.scope.On(events.SyncDelete, func(ev events.Event) {
			m.inbox.push(m.runAction(func(ctx context.Context) error {
				return m.services.Syncs.Delete(ctx, ev.ID)
			}))
		})
	case routeDrive:
		m.scope.OnID(events.DriveCreateFolder, r.id, func(ev events.Event) {
			m.inbox.push(m.runAction(func(ctx context.Context) error {
				return m.services.Drive.CreateDirectory(ctx, ev.ID)
			}))
		})
		m.scope.OnID(events.DriveCreateTextFile, r.id, func(ev events.Event) {
			m.inbox.push(m.runAction(func(ctx context.Context) error {
				return m.services.Drive.CreateTextFile(ctx, ev.ID)
			}))
		})
	}
}

func (m *appModel) openPanel(item models.DriveItem, inLinksView bool) tea.Cmd {
	m.panel = newLinkPanelView(m.services.Links.Open(item, inLinksView), m.bridge, m.inbox, m.tr)
	return m.panel.cmdLoad(m.ctx)
}

func (m *appModel) closePanel() {
	m.panel.scope.Close()
	m.panel = nil
	m.afterChange()
}

// runAction runs fn as a command. Failures were already reported by the
// action itself.
func (m *appModel) runAction(fn func(ctx context.Context) error) tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return actionDoneMsg{err: fn(ctx)}
	}
}

func (m *appModel) cmdReload() tea.Cmd {
	ctx := m.ctx
	return func() tea.Msg {
		return reloadDoneMsg{err: m.services.Syncs.Reload(ctx)}
	}
}

// toastError shows err directly. Update must not go through the Host.
func (m *appModel) toastError(err error) tea.Cmd {
	return m.toasts.show(feedback.Toast{
		ID:   m.ids.Generate(),
		Kind: feedback.KindError,
		Text: app.Message(err),
	})
}

// afterChange keeps cursors in range after a mirror changed.
func (m *appModel) afterChange() {
	k := m.router.current.String()
	m.cursor[k] = clampIndex(m.cursor[k], m.rowCount())
}

func (m *appModel) rowCount() int {
	switch m.router.current.kind {
	case routeSyncs:
		return m.services.Syncs.Pairs().Len()
	case routeDrive:
		return m.services.Drive.Items().Len()
	case routeLinks:
		return m.services.Links.Links().Len()
	}
	return 0
}

func (m *appModel) moveCursor(step int) {
	k := m.router.current.String()
	m.cursor[k] = clampIndex(m.cursor[k]+step, m.rowCount())
}

func (m *appModel) cursorIndex() int {
	return m.cursor[m.router.current.String()]
}

// shutdown dismisses pending prompts and releases subscriptions.
func (m *appModel) shutdown() {
	for _, p := range m.prompts {
		p.cancel()
	}
	m.prompts = nil
	if m.panel != nil {
		m.closePanel()
	}
	m.scope.Close()
}

func (m *appModel) View() string {
	var body string
	switch {
	case m.showBuildInfo:
		body = renderBuildInfoWindow(m.buildInfo, m.tr)
	case m.panel != nil:
		body = m.panel.view(m.spinner.View())
	default:
		body = m.tabs() + "\n\n" + m.viewRoute()
	}

	var overlay string
	switch {
	case len(m.prompts) > 0:
		overlay = m.prompts[0].view(m.tr)
	case m.menu != nil:
		overlay = m.menu.view()
	}

	parts := []string{body}
	if overlay != "" {
		parts = append(parts, overlay)
	}
	if toasts := m.toasts.view(m.spinner.View()); toasts != "" {
		parts = append(parts, toasts)
	}
	return appStyle.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m *appModel) viewRoute() string {
	switch m.router.current.kind {
	case routeSyncDetail:
		return m.viewSyncDetail()
	case routeDrive:
		return m.viewDrive()
	case routeLinks:
		return m.viewLinks()
	default:
		return m.viewSyncs()
	}
}

func (m *appModel) tabs() string {
	labels := map[routeKind]string{
		routeSyncs: m.tr.T("nav.syncs"),
		routeDrive: m.tr.T("nav.drive"),
		routeLinks: m.tr.T("nav.links"),
	}

	tabs := make([]string, 0, len(sections))
	for _, s := range sections {
		label := labels[s]
		if s == m.router.current.section() {
			label = activeTabStyle.Render(label)
		} else {
			label = mutedStyle.Render(label)
		}
		tabs = append(tabs, label)
	}
	return strings.Join(tabs, "   ") + "\n" + helpStyle.Render(m.tr.T("nav.help"))
}

func formatSize(item models.DriveItem) string {
	if item.IsDir() {
		return "-"
	}
	return utils.FormatBytes(item.Size)
}
