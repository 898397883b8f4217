// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-drive-desk/internal/events"
	"github.com/MKhiriev/go-drive-desk/internal/feedback"
	"github.com/MKhiriev/go-drive-desk/internal/logger"
	"github.com/MKhiriev/go-drive-desk/internal/mock"
	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

// keyTranslator возвращает ключ вместо перевода.
type keyTranslator struct{}

func (keyTranslator) T(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return key + ":" + fmt.Sprint(args...)
}

type appFixture struct {
	api      *mock.MockWorkerAPI
	repo     *mock.MockSyncConfigRepository
	prompter *mock.MockPrompter
	bridge   *events.Bridge
	model    *appModel
}

func newAppFixture(t *testing.T) *appFixture {
	t.Helper()
	ctrl := gomock.NewController(t)

	f := &appFixture{
		api:      mock.NewMockWorkerAPI(ctrl),
		repo:     mock.NewMockSyncConfigRepository(ctrl),
		prompter: mock.NewMockPrompter(ctrl),
		bridge:   events.NewBridge(),
	}

	// Отключённый хост: тосты отбрасываются
	reporter := feedback.NewToaster(NewHost())
	log := logger.Nop()
	tr := keyTranslator{}

	services := &service.ClientServices{
		Syncs:    service.NewSyncActions(f.api, f.repo, f.prompter, mock.NewMockNavigator(ctrl), tr, reporter, log),
		Drive:    service.NewDriveActions(f.api, f.prompter, tr, reporter, log),
		Links:    service.NewLinkActions(f.api, mock.NewMockClipboard(ctrl), tr, reporter, "https://example.test/d", log),
		Reporter: reporter,
	}
	services.Syncs.Pairs().Set([]models.SyncPair{
		{UUID: "p1", Name: "Documents", LocalPath: "/home/u/Documents"},
		{UUID: "p2", Name: "Photos", LocalPath: "/home/u/Photos", Paused: true},
	})

	f.model = newAppModel(context.Background(), services, f.prompter, f.bridge, tr, models.BuildInfo{})
	return f
}

// press отправляет клавишу в модель и возвращает команду.
func (f *appFixture) press(k tea.KeyMsg) tea.Cmd {
	_, cmd := f.model.Update(k)
	return cmd
}

// collect выполняет команду, раскрывая пакеты, и возвращает сообщения.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func TestAppModel_PauseKeyRunsToggle(t *testing.T) {
	f := newAppFixture(t)
	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).Return(nil)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	msgs := collect(f.press(runes("p")))

	require.Contains(t, msgs, tea.Msg(actionDoneMsg{}))
	pair, ok := f.model.services.Syncs.Pairs().Find("p1")
	require.True(t, ok)
	assert.True(t, pair.Paused)
}

func TestAppModel_MenuEmitsEvent(t *testing.T) {
	f := newAppFixture(t)
	f.api.EXPECT().UpdateSyncPaused(gomock.Any(), "p1", true).Return(nil)
	f.repo.EXPECT().ReplaceAll(gomock.Any(), gomock.Any()).Return(nil)

	f.press(runes("m"))
	require.NotNil(t, f.model.menu)

	// Первый пункт меню — пауза
	msgs := collect(f.press(tea.KeyMsg{Type: tea.KeyEnter}))
	assert.Nil(t, f.model.menu)
	assert.Contains(t, msgs, tea.Msg(actionDoneMsg{}))
}

func TestAppModel_DetailSelectsPair(t *testing.T) {
	f := newAppFixture(t)
	syncs := f.model.services.Syncs

	f.press(tea.KeyMsg{Type: tea.KeyDown})
	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "/syncs/p2", f.model.router.current.String())
	assert.Equal(t, "p2", syncs.Selected().Get())

	f.press(tea.KeyMsg{Type: tea.KeyEsc})
	assert.Equal(t, "/syncs", f.model.router.current.String())
	assert.Empty(t, syncs.Selected().Get())
}

func TestAppModel_LeavingViewDropsSubscriptions(t *testing.T) {
	f := newAppFixture(t)
	f.api.EXPECT().ListDirectory(gomock.Any(), "").Return(nil, nil)

	assert.Equal(t, 1, f.bridge.Subscribers(events.SyncTogglePause))

	collect(f.press(tea.KeyMsg{Type: tea.KeyTab}))
	assert.Equal(t, routeDrive, f.model.router.current.kind)
	assert.Zero(t, f.bridge.Subscribers(events.SyncTogglePause))
	assert.Equal(t, 1, f.bridge.Subscribers(events.DriveCreateFolder))
}

func TestAppModel_CreateFolderInCurrentDirectory(t *testing.T) {
	f := newAppFixture(t)
	f.api.EXPECT().ListDirectory(gomock.Any(), "").Return(nil, nil)
	collect(f.press(tea.KeyMsg{Type: tea.KeyTab}))

	f.prompter.EXPECT().Input(gomock.Any(), gomock.Any()).Return("Reports", nil)
	f.api.EXPECT().CreateDirectory(gomock.Any(), "Reports", "").Return("d1", nil)

	msgs := collect(f.press(runes("n")))
	assert.Contains(t, msgs, tea.Msg(actionDoneMsg{}))

	items := f.model.services.Drive.Items().Snapshot()
	require.Len(t, items, 1)
	assert.Equal(t, "Reports", items[0].Name)

	// Событие для другого каталога не обрабатывается
	f.bridge.Emit(events.DriveCreateFolder, "other")
	assert.Nil(t, f.model.inbox.drain())
}

func TestAppModel_Redirect(t *testing.T) {
	f := newAppFixture(t)
	f.press(tea.KeyMsg{Type: tea.KeyEnter})
	f.model.cursor["/syncs"] = 1

	f.model.Update(redirectMsg{redirect: models.Redirect{Route: "/syncs", Replace: true, ResetScroll: true}})

	assert.Equal(t, "/syncs", f.model.router.current.String())
	assert.Zero(t, f.model.cursorIndex())
	assert.Len(t, f.model.router.history, 1)
}

func TestAppModel_PromptFlow(t *testing.T) {
	f := newAppFixture(t)
	reply := make(chan promptReply, 1)

	f.model.Update(promptMsg{kind: promptConfirm, prompt: models.Prompt{Title: "Delete?"}, reply: reply})
	require.Len(t, f.model.prompts, 1)

	// Пока открыт запрос, клавиши действий не срабатывают
	f.press(runes("y"))
	assert.Empty(t, f.model.prompts)
	assert.Equal(t, promptReply{ok: true}, <-reply)
}

func TestAppModel_QuitCancelsPrompts(t *testing.T) {
	f := newAppFixture(t)
	reply := make(chan promptReply, 1)
	f.model.Update(promptMsg{kind: promptInput, reply: reply})

	cmd := f.press(tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Equal(t, promptReply{}, <-reply)
	assert.Zero(t, f.bridge.Subscribers(events.SyncTogglePause))
}

func TestAppModel_ToastLifecycle(t *testing.T) {
	f := newAppFixture(t)

	f.model.Update(toastShowMsg{toast: feedback.Toast{ID: "t1", Kind: feedback.KindLoading, Text: "Loading"}})
	assert.True(t, f.model.toasts.loading())

	f.model.Update(toastDismissMsg{id: "t1"})
	assert.False(t, f.model.toasts.loading())
}

func TestAppModel_ViewRenders(t *testing.T) {
	f := newAppFixture(t)

	v := f.model.View()
	assert.Contains(t, v, "Documents")
	assert.Contains(t, v, "Photos")
}

func TestAppModel_DisableLinkFromLinksView(t *testing.T) {
	f := newAppFixture(t)
	dir := models.DriveItem{UUID: "d1", Name: "Shared", Type: models.ItemTypeDirectory}

	f.api.EXPECT().ListDirectory(gomock.Any(), "").Return(nil, nil)
	f.api.EXPECT().PublicLinks(gomock.Any()).Return([]models.DriveItem{dir}, nil)
	collect(f.press(tea.KeyMsg{Type: tea.KeyTab}))
	collect(f.press(tea.KeyMsg{Type: tea.KeyTab}))
	require.Equal(t, routeLinks, f.model.router.current.kind)
	require.Equal(t, 1, f.model.services.Links.Links().Len())

	f.api.EXPECT().DirectoryPublicLinkStatus(gomock.Any(), "d1").
		Return(models.PublicLinkStatus{Exists: true, UUID: "l1", Key: "enc", Expiration: models.ExpirationNever}, nil)
	f.api.EXPECT().DecryptDirectoryLinkKey(gomock.Any(), "enc").Return("plain", nil)

	// Загрузка статуса, затем расшифровка ключа
	for _, msg := range collect(f.press(tea.KeyMsg{Type: tea.KeyEnter})) {
		_, cmd := f.model.Update(msg)
		for _, next := range collect(cmd) {
			f.model.Update(next)
		}
	}
	require.NotNil(t, f.model.panel)
	assert.Equal(t, "https://example.test/d/l1#plain", f.model.panel.panel.Link())

	f.api.EXPECT().DisablePublicLink(gomock.Any(), models.DisablePublicLinkRequest{ItemUUID: "d1", LinkUUID: "l1"}).Return(nil)
	for _, msg := range collect(f.press(runes("x"))) {
		f.model.Update(msg)
	}

	assert.Nil(t, f.model.panel, "panel closes after the link is removed")
	assert.Zero(t, f.model.services.Links.Links().Len())
	assert.Zero(t, f.bridge.Subscribers(events.LinkSave))
}

func TestAppModel_PanelKeysShadowGlobalBindings(t *testing.T) {
	f := newAppFixture(t)
	f.model.openPanel(models.DriveItem{UUID: "d1", Name: "Shared", Type: models.ItemTypeDirectory}, false)
	require.NotNil(t, f.model.panel)

	// Клавиша панели не уходит в глобальные привязки
	ev := &keyPress{KeyMsg: runes("v")}
	f.model.panel.update(f.model, ev)
	assert.True(t, ev.prevented)

	ev = &keyPress{KeyMsg: runes("q")}
	f.model.panel.update(f.model, ev)
	assert.False(t, ev.prevented)

	cmd := f.press(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
