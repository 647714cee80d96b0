// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar_test

import (
	"errors"
	"testing"

	"cloudeng.io/literals/calendar"
)

func TestParseOffset(t *testing.T) {
	for _, tc := range []struct {
		val    string
		offset calendar.Offset
	}{
		{"P5Y3M8D", calendar.NewOffset(8, 3, 5)},
		{"P8D", calendar.Days(8)},
		{"P3M", calendar.Months(3)},
		{"P5Y", calendar.Years(5)},
		{"P0D", calendar.Offset{}},
		{"P1W", calendar.Days(7)},
		{"P2W3D", calendar.Days(17)},
		{"P1Y1W", calendar.NewOffset(7, 0, 1)},
		{"-P1Y2D", calendar.NewOffset(-2, 0, -1)},
		{"P-1Y2M", calendar.NewOffset(0, 2, -1)},
		{"-P-1Y2M", calendar.NewOffset(0, -2, 1)},
		{"P10000D", calendar.Days(10000)},
	} {
		offset, err := calendar.ParseOffset(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := offset, tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []string{
		"",
		"P",
		"-P",
		"5Y",
		"P1H",
		"PT1H",
		"P1.5D",
		"PY",
		"P-D",
		"P1",
		"P1D1Y",
		"P1Y1Y",
		"P1Y--2D",
	} {
		_, err := calendar.ParseOffset(tc)
		if err == nil {
			t.Errorf("%v: failed to return an error", tc)
			continue
		}
		if !errors.Is(err, calendar.ErrInvalidOffset) {
			t.Errorf("%v: unexpected error: %v", tc, err)
		}
	}
}

func TestOffsetString(t *testing.T) {
	for _, tc := range []struct {
		offset calendar.Offset
		val    string
	}{
		{calendar.NewOffset(8, 3, 5), "P5Y3M8D"},
		{calendar.Offset{}, "P0D"},
		{calendar.Days(8), "P8D"},
		{calendar.Months(-3), "P-3M"},
		{calendar.NewOffset(-2, 0, -1), "P-1Y-2D"},
		{calendar.NewOffset(0, 2, -1), "P-1Y2M"},
	} {
		if got, want := tc.offset.String(), tc.val; got != want {
			t.Errorf("%#v: got %v, want %v", tc.offset, got, want)
		}
		if got, want := calendar.MustParseOffset(tc.val), tc.offset; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}
}
