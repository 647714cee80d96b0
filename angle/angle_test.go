// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package angle_test

import (
	"errors"
	"math"
	"testing"

	"cloudeng.io/literals/angle"
)

func TestConversions(t *testing.T) {
	rad := angle.Radians(3.14159265)
	deg := angle.Degrees(360)
	if got, want := rad.Degrees(), float32(180); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := deg.Radians(), float32(math.Pi*2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := deg.Degrees(), float32(360); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := angle.Degrees(90).Radians(), float32(math.Pi/2); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
	if got, want := angle.Radians(0), (angle.Angle{}); got != want {
		t.Errorf("got %v, want %v", got, want)
	}
}

func TestParse(t *testing.T) {
	for _, tc := range []struct {
		val     string
		degrees float32
	}{
		{"360deg", 360},
		{"-90deg", -90},
		{"0.5deg", 0.5},
		{"3.14159265rad", 180},
		{"0rad", 0},
	} {
		a, err := angle.Parse(tc.val)
		if err != nil {
			t.Errorf("%v: %v", tc.val, err)
			continue
		}
		if got, want := a.Degrees(), tc.degrees; got != want {
			t.Errorf("%v: got %v, want %v", tc.val, got, want)
		}
	}

	for _, tc := range []string{
		"",
		"360",
		"deg",
		"xdeg",
		"1.0.0rad",
		"360grad",
	} {
		_, err := angle.Parse(tc)
		if err == nil {
			t.Errorf("%v: failed to return an error", tc)
			continue
		}
		if !errors.Is(err, angle.ErrInvalidAngle) {
			t.Errorf("%v: unexpected error: %v", tc, err)
		}
	}
}

func TestString(t *testing.T) {
	for _, tc := range []struct {
		a   angle.Angle
		val string
	}{
		{angle.Degrees(360), "360deg"},
		{angle.Degrees(0.5), "0.5deg"},
		{angle.Radians(3.14159265), "180deg"},
	} {
		if got, want := tc.a.String(), tc.val; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
		a, err := angle.Parse(tc.val)
		if err != nil {
			t.Fatal(err)
		}
		if got, want := a, tc.a; got != want {
			t.Errorf("got %v, want %v", got, want)
		}
	}
}
