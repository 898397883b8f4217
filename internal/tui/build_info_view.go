// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-drive-desk/internal/service"
	"github.com/MKhiriev/go-drive-desk/models"
)

func renderBuildInfoWindow(info models.BuildInfo, tr service.Translator) string {
	var b strings.Builder

	b.WriteString(tr.T("app.title"))
	b.WriteString("\n")
	b.WriteString(tr.T("about.version"))
	b.WriteString(": ")
	b.WriteString(info.Version)
	b.WriteString("\n")
	b.WriteString(tr.T("about.date"))
	b.WriteString(": ")
	b.WriteString(info.Date)
	b.WriteString("\n")
	b.WriteString(tr.T("about.commit"))
	b.WriteString(": ")
	b.WriteString(info.Commit)

	return renderPage(tr.T("about.title"), b.String(), "esc")
}
