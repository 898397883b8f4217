// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"
	"strconv"
	"strings"
)

const defaultByteDecimals = 2

var byteUnits = []string{"Bytes", "KB", "MB", "GB", "TB", "PB", "EB", "ZB", "YB"}

// FormatBytes renders a byte count using 1024-based units, e.g. "1.5 KB".
//
// decimals sets the maximum number of fractional digits (2 by default);
// trailing zeros are trimmed. Zero is always "0 Bytes".
func FormatBytes(bytes int64, decimals ...int) string {
	if bytes == 0 {
		return "0 Bytes"
	}

	dm := defaultByteDecimals
	if len(decimals) > 0 {
		dm = max(decimals[0], 0)
	}

	sign := ""
	value := float64(bytes)
	if value < 0 {
		sign = "-"
		value = -value
	}

	i := int(math.Floor(math.Log(value) / math.Log(1024)))
	i = min(max(i, 0), len(byteUnits)-1)

	mantissa := value / math.Pow(1024, float64(i))
	text := strconv.FormatFloat(mantissa, 'f', dm, 64)
	if strings.Contains(text, ".") {
		text = strings.TrimRight(strings.TrimRight(text, "0"), ".")
	}

	return sign + text + " " + byteUnits[i]
}
