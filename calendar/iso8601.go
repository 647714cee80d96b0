// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidOffset is wrapped by all errors returned by ParseOffset.
var ErrInvalidOffset = errors.New("invalid ISO8601 date offset")

// consumeN returns the signed integer and designator at the start of
// dur and the number of bytes consumed.
func consumeN(dur string) (int, byte, int, error) {
	for i := range dur {
		c := dur[i]
		if (c >= '0' && c <= '9') || (i == 0 && c == '-') {
			continue
		}
		switch c {
		case 'Y', 'M', 'W', 'D':
			n, err := strconv.Atoi(dur[:i])
			if err != nil {
				return 0, 0, 0, fmt.Errorf("invalid number: %q: %q: %w", dur[:i], dur, ErrInvalidOffset)
			}
			return n, c, i + 1, nil
		}
		break
	}
	return 0, 0, 0, fmt.Errorf("invalid number or offset designator: %s: %w", dur, ErrInvalidOffset)
}

// ParseOffset parses the date portion of an ISO8601 duration, ie.
// [-]PnYnMnWnD, into an Offset. Only integer counts are supported,
// each count may be signed and weeks are converted to 7 days. The
// designators must appear in the order Y, M, W, D and at most once.
// A leading - negates the entire offset.
func ParseOffset(val string) (Offset, error) {
	nl := len(val)
	hasP, hasNP := (nl > 0 && val[0] == 'P'), (nl > 1 && val[0] == '-' && val[1] == 'P')
	if !hasP && !hasNP {
		return Offset{}, fmt.Errorf("offset must start with P or -P: %s: %w", val, ErrInvalidOffset)
	}
	dur := val[1:]
	if hasNP {
		dur = dur[1:]
	}
	if len(dur) == 0 {
		return Offset{}, fmt.Errorf("offset has no components: %s: %w", val, ErrInvalidOffset)
	}
	var result Offset
	last := -1
	for len(dur) > 0 {
		n, designator, idx, err := consumeN(dur)
		if err != nil {
			return Offset{}, err
		}
		dur = dur[idx:]
		var pos int
		switch designator {
		case 'Y':
			result.Years += n
			pos = 0
		case 'M':
			result.Months += n
			pos = 1
		case 'W':
			result.Days += 7 * n
			pos = 2
		case 'D':
			result.Days += n
			pos = 3
		}
		if pos <= last {
			return Offset{}, fmt.Errorf("out of order or repeated designator: %c: %s: %w", designator, val, ErrInvalidOffset)
		}
		last = pos
	}
	if hasNP {
		result = result.Neg()
	}
	return result, nil
}

// MustParseOffset is like ParseOffset but panics on error.
func MustParseOffset(val string) Offset {
	o, err := ParseOffset(val)
	if err != nil {
		panic(err)
	}
	return o
}
