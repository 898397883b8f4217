// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package state holds the client's local mirrors of remote entities.
//
// A [Container] owns an immutable slice snapshot. Every change is a pure
// transform from the current snapshot to a new one ([ReplaceByID],
// [RemoveByID], [InsertDistinct]); slices handed out by Snapshot are never
// modified afterwards, so readers need no locking.
package state

import (
	"slices"
	"strings"
)

// Entity is anything mirrored by id.
type Entity interface {
	ID() string
}

// Named is an entity whose name must stay unique within its parent,
// compared case-insensitively.
type Named interface {
	Entity
	ParentID() string
	DisplayName() string
}

// ReplaceByID returns a copy of items where the element with the same id as
// item is replaced by item. Order is kept. The second result is false and
// items is returned unchanged when no element matches.
func ReplaceByID[T Entity](items []T, item T) ([]T, bool) {
	idx := slices.IndexFunc(items, func(v T) bool { return v.ID() == item.ID() })
	if idx < 0 {
		return items, false
	}

	out := slices.Clone(items)
	out[idx] = item
	return out, true
}

// RemoveByID returns a copy of items without the elements whose id is id.
// The second result reports whether anything was removed.
func RemoveByID[T Entity](items []T, id string) ([]T, bool) {
	if !slices.ContainsFunc(items, func(v T) bool { return v.ID() == id }) {
		return items, false
	}

	out := make([]T, 0, len(items)-1)
	for _, v := range items {
		if v.ID() != id {
			out = append(out, v)
		}
	}
	return out, true
}

// InsertDistinct appends item to a copy of items after dropping every
// element that has the same id, or the same parent and a name equal to
// item's ignoring case.
func InsertDistinct[T Named](items []T, item T) []T {
	out := make([]T, 0, len(items)+1)
	for _, v := range items {
		if collides(v, item) {
			continue
		}
		out = append(out, v)
	}
	return append(out, item)
}

func collides[T Named](a, b T) bool {
	if a.ID() == b.ID() {
		return true
	}
	return a.ParentID() == b.ParentID() && strings.EqualFold(a.DisplayName(), b.DisplayName())
}

// Find returns the element with the given id.
func Find[T Entity](items []T, id string) (T, bool) {
	for _, v := range items {
		if v.ID() == id {
			return v, true
		}
	}

	var zero T
	return zero, false
}
