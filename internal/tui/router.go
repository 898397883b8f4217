// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "strings"

type routeKind int

const (
	routeSyncs routeKind = iota
	routeSyncDetail
	routeDrive
	routeLinks
)

// sections are the views tab cycles through.
var sections = []routeKind{routeSyncs, routeDrive, routeLinks}

type route struct {
	kind routeKind
	id   string
}

// parseRoute understands /syncs, /syncs/<uuid>, /drive, /drive/<uuid> and
// /links. Anything else opens the sync list.
func parseRoute(s string) route {
	parts := strings.Split(strings.Trim(s, "/"), "/")
	id := ""
	if len(parts) > 1 {
		id = parts[1]
	}

	switch parts[0] {
	case "syncs":
		if id != "" {
			return route{kind: routeSyncDetail, id: id}
		}
		return route{kind: routeSyncs}
	case "drive":
		return route{kind: routeDrive, id: id}
	case "links":
		return route{kind: routeLinks}
	default:
		return route{kind: routeSyncs}
	}
}

func (r route) String() string {
	switch r.kind {
	case routeSyncDetail:
		return "/syncs/" + r.id
	case routeDrive:
		if r.id == "" {
			return "/drive"
		}
		return "/drive/" + r.id
	case routeLinks:
		return "/links"
	default:
		return "/syncs"
	}
}

// section returns the tab the route belongs to.
func (r route) section() routeKind {
	if r.kind == routeSyncDetail {
		return routeSyncs
	}
	return r.kind
}

// router keeps the current route and the back stack.
type router struct {
	current route
	history []route
}

func (r *router) navigate(to route, replace bool) {
	if to == r.current {
		return
	}
	if !replace {
		r.history = append(r.history, r.current)
	}
	r.current = to
}

// back returns to the previous route and reports whether there was one.
func (r *router) back() bool {
	if len(r.history) == 0 {
		return false
	}
	r.current = r.history[len(r.history)-1]
	r.history = r.history[:len(r.history)-1]
	return true
}

// nextSection moves to the neighbouring tab, dropping the back stack.
func (r *router) nextSection(step int) {
	idx := 0
	for i, s := range sections {
		if s == r.current.section() {
			idx = i
		}
	}
	idx = (idx + step + len(sections)) % len(sections)
	r.current = route{kind: sections[idx]}
	r.history = nil
}
