// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"math"
	"time"
)

// ConvertTimestampToMs normalises a timestamp of unknown unit to Unix
// milliseconds. Both readings (as milliseconds, and as seconds scaled by 1000)
// are compared against the current time and the closer one wins; on a tie the
// value is kept as is. NaN, infinities and values outside the int64 range
// yield the current time.
func ConvertTimestampToMs(ts float64) int64 {
	return convertTimestampToMs(ts, time.Now())
}

func convertTimestampToMs(ts float64, now time.Time) int64 {
	nowMs := now.UnixMilli()
	if math.IsNaN(ts) || math.IsInf(ts, 0) {
		return nowMs
	}

	asMs := ts
	asSec := ts * 1000
	picked := asMs
	if !math.IsInf(asSec, 0) && math.Abs(float64(nowMs)-asSec) < math.Abs(float64(nowMs)-asMs) {
		picked = asSec
	}

	picked = math.Round(picked)
	// float64(math.MaxInt64) rounds up to 2^63, which int64 cannot hold.
	if picked >= math.MaxInt64 || picked < math.MinInt64 {
		return nowMs
	}
	return int64(picked)
}

// FormatTimestamp renders a timestamp of unknown unit as local time using
// the given layout.
func FormatTimestamp(ts float64, layout string) string {
	return time.UnixMilli(ConvertTimestampToMs(ts)).Local().Format(layout)
}
