// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import "reflect"

// DefaultPreventer is implemented by input events whose default handling
// can be suppressed.
type DefaultPreventer interface {
	PreventDefault()
}

// PreventDefault suppresses the default handling of ev when ev supports it.
// Any other value is ignored, nil and typed nil pointers included.
func PreventDefault(ev any) {
	p, ok := ev.(DefaultPreventer)
	if !ok {
		return
	}
	if v := reflect.ValueOf(p); v.Kind() == reflect.Pointer && v.IsNil() {
		return
	}
	p.PreventDefault()
}
