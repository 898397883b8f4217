// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"fmt"
	"sync/atomic"

	"github.com/MKhiriev/go-drive-desk/internal/mock"
)

// keyTranslator возвращает ключ каталога, чтобы тесты не зависели от текстов.
type keyTranslator struct{}

func (keyTranslator) T(key string, args ...any) string {
	if len(args) == 0 {
		return key
	}
	return key + ":" + fmt.Sprint(args...)
}

// expectLoading ожидает ровно один индикатор с текстом text и считает его
// освобождения.
func expectLoading(rep *mock.MockReporter, text string) *atomic.Int64 {
	released := &atomic.Int64{}
	rep.EXPECT().Loading(text).Return(func() { released.Add(1) })
	return released
}
