// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package linkstate

import (
	"testing"

	"github.com/MKhiriev/go-drive-desk/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var enabledStatus = models.PublicLinkStatus{
	Exists:      true,
	UUID:        "link-1",
	Key:         "enc-key",
	Password:    true,
	Expiration:  models.Expiration7d,
	DownloadBtn: true,
}

func TestMachine_Lifecycle(t *testing.T) {
	m := New()
	assert.Equal(t, Unloaded, m.State())
	assert.Empty(t, m.Link("https://drive.example.com/d"))

	needsKey := m.Loaded(models.PublicLinkStatus{Exists: false})
	assert.False(t, needsKey)
	assert.Equal(t, Disabled, m.State())

	m.Invalidate()
	assert.Equal(t, Unloaded, m.State())

	needsKey = m.Loaded(enabledStatus)
	assert.True(t, needsKey)
	assert.Equal(t, Enabled, m.State())

	m.Remove()
	assert.Equal(t, Removed, m.State())
	assert.Empty(t, m.Status().UUID)

	// Removed is terminal.
	assert.False(t, m.Loaded(enabledStatus))
	m.Invalidate()
	assert.Equal(t, Removed, m.State())
}

func TestMachine_Link(t *testing.T) {
	m := New()
	m.Loaded(enabledStatus)

	assert.Equal(t, "https://drive.example.com/d/link-1", m.Link("https://drive.example.com/d/"))
	assert.False(t, m.KeyReady())

	assert.False(t, m.KeyDecrypted("stale-key", "nope"), "result for another key is dropped")
	assert.Equal(t, "https://drive.example.com/d/link-1", m.Link("https://drive.example.com/d"))

	require.True(t, m.KeyDecrypted("enc-key", "plain"))
	assert.Equal(t, "https://drive.example.com/d/link-1#plain", m.Link("https://drive.example.com/d"))

	// Reloading the same status keeps the decrypted key.
	assert.False(t, m.Loaded(enabledStatus))
	assert.True(t, m.KeyReady())

	// A rotated key must be decrypted again.
	rotated := enabledStatus
	rotated.Key = "enc-key-2"
	assert.True(t, m.Loaded(rotated))
	assert.Equal(t, "https://drive.example.com/d/link-1", m.Link("https://drive.example.com/d"))
}

func TestMachine_DraftRequiresEnabled(t *testing.T) {
	m := New()

	assert.ErrorIs(t, m.SetPassword("secret"), ErrNotEnabled)
	assert.ErrorIs(t, m.SetExpiration(models.Expiration1d), ErrNotEnabled)
	assert.ErrorIs(t, m.SetDownloadBtn(false), ErrNotEnabled)
	assert.ErrorIs(t, m.ClearPassword(), ErrNotEnabled)

	_, err := m.EditRequest("dir-1")
	assert.ErrorIs(t, err, ErrNotEnabled)

	m.Loaded(models.PublicLinkStatus{Exists: false})
	assert.ErrorIs(t, m.SetPassword("secret"), ErrNotEnabled)
	assert.False(t, m.Dirty())
}

func TestMachine_DraftDefaultsFromStatus(t *testing.T) {
	m := New()
	m.Loaded(enabledStatus)

	d := m.Draft()
	assert.Equal(t, models.Expiration7d, d.Expiration)
	assert.True(t, d.DownloadBtn)
	assert.Empty(t, d.Password)
	assert.False(t, m.Dirty())

	noExpiration := enabledStatus
	noExpiration.Expiration = ""
	m.Loaded(noExpiration)
	assert.Equal(t, models.ExpirationNever, m.Draft().Expiration)
}

func TestMachine_SetExpirationValidates(t *testing.T) {
	m := New()
	m.Loaded(enabledStatus)

	assert.Error(t, m.SetExpiration("2w"))
	assert.False(t, m.Dirty())

	require.NoError(t, m.SetExpiration(models.Expiration1h))
	assert.True(t, m.Dirty())
	assert.Equal(t, models.Expiration1h, m.Draft().Expiration)
}

func TestMachine_EditRequest(t *testing.T) {
	tests := []struct {
		name            string
		edit            func(m *Machine)
		wantPassword    string
		wantHasPassword bool
		wantDownload    bool
		wantExpiration  models.Expiration
	}{
		{
			name:            "untouched keeps existing password",
			edit:            func(m *Machine) {},
			wantHasPassword: true,
			wantDownload:    true,
			wantExpiration:  models.Expiration7d,
		},
		{
			name: "new password",
			edit: func(m *Machine) {
				_ = m.SetPassword("secret")
			},
			wantPassword:    "secret",
			wantHasPassword: true,
			wantDownload:    true,
			wantExpiration:  models.Expiration7d,
		},
		{
			name: "cleared password",
			edit: func(m *Machine) {
				_ = m.ClearPassword()
				_ = m.SetDownloadBtn(false)
				_ = m.SetExpiration(models.ExpirationNever)
			},
			wantHasPassword: false,
			wantDownload:    false,
			wantExpiration:  models.ExpirationNever,
		},
		{
			name: "password set after clear",
			edit: func(m *Machine) {
				_ = m.ClearPassword()
				_ = m.SetPassword("again")
			},
			wantPassword:    "again",
			wantHasPassword: true,
			wantDownload:    true,
			wantExpiration:  models.Expiration7d,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := New()
			m.Loaded(enabledStatus)
			tt.edit(m)

			req, err := m.EditRequest("dir-1")
			require.NoError(t, err)
			assert.Equal(t, "dir-1", req.ItemUUID)
			assert.Equal(t, "link-1", req.LinkUUID)
			assert.Equal(t, tt.wantPassword, req.Password)
			assert.Equal(t, tt.wantHasPassword, req.HasPassword)
			assert.Equal(t, tt.wantDownload, req.DownloadBtn)
			assert.Equal(t, tt.wantExpiration, req.Expiration)
		})
	}
}

func TestMachine_DiscardAndReloadDropDraft(t *testing.T) {
	m := New()
	m.Loaded(enabledStatus)

	require.NoError(t, m.SetPassword("secret"))
	assert.True(t, m.TogglePasswordVisibility())
	m.Discard()
	assert.False(t, m.Dirty())
	assert.Empty(t, m.Draft().Password)
	assert.False(t, m.PasswordVisible())

	require.NoError(t, m.SetDownloadBtn(false))
	m.Loaded(enabledStatus)
	assert.False(t, m.Dirty())
	assert.True(t, m.Draft().DownloadBtn)
}

func TestMachine_TogglePasswordVisibility(t *testing.T) {
	m := New()
	assert.False(t, m.PasswordVisible())
	assert.True(t, m.TogglePasswordVisibility())
	assert.False(t, m.TogglePasswordVisibility())
}

func TestState_String(t *testing.T) {
	assert.Equal(t, "unloaded", Unloaded.String())
	assert.Equal(t, "loaded-disabled", Disabled.String())
	assert.Equal(t, "loaded-enabled", Enabled.String())
	assert.Equal(t, "removed", Removed.String())
	assert.Equal(t, "State(9)", State(9).String())
}
