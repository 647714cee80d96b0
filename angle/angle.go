// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package angle provides an angle type that can be created from, and
// converted to, either degrees or radians.
package angle

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Angle is stored as single precision degrees. The zero value is an
// angle of 0 degrees.
type Angle struct {
	deg float32
}

// Degrees returns an Angle of deg degrees.
func Degrees(deg float32) Angle {
	return Angle{deg: deg}
}

// Radians returns an Angle of rad radians. The conversion is performed
// in double precision.
func Radians(rad float32) Angle {
	return Angle{deg: float32(float64(rad) * 180 / math.Pi)}
}

// Degrees returns the angle in degrees.
func (a Angle) Degrees() float32 {
	return a.deg
}

// Radians returns the angle in radians.
func (a Angle) Radians() float32 {
	return float32(float64(a.deg) * math.Pi / 180)
}

// String returns the angle in degrees with the DegreesSuffix, eg. 90deg.
func (a Angle) String() string {
	return strconv.FormatFloat(float64(a.deg), 'g', -1, 32) + DegreesSuffix
}

// Suffixes accepted by Parse.
const (
	DegreesSuffix = "deg"
	RadiansSuffix = "rad"
)

// ErrInvalidAngle is wrapped by all errors returned by Parse.
var ErrInvalidAngle = errors.New("invalid angle")

// Parse parses a number followed by one of the deg or rad suffixes,
// eg. 360deg or 3.14159265rad.
func Parse(val string) (Angle, error) {
	var fn func(float32) Angle
	var num string
	switch {
	case strings.HasSuffix(val, DegreesSuffix):
		fn, num = Degrees, strings.TrimSuffix(val, DegreesSuffix)
	case strings.HasSuffix(val, RadiansSuffix):
		fn, num = Radians, strings.TrimSuffix(val, RadiansSuffix)
	default:
		return Angle{}, fmt.Errorf("missing %v or %v suffix: %q: %w", DegreesSuffix, RadiansSuffix, val, ErrInvalidAngle)
	}
	n, err := strconv.ParseFloat(num, 32)
	if err != nil {
		return Angle{}, fmt.Errorf("invalid number: %q: %w", val, ErrInvalidAngle)
	}
	return fn(float32(n)), nil
}
