// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import (
	"strconv"
	"strings"
)

// Offset represents a signed number of days, months and years. Any
// values are allowed and arithmetic on them wraps on overflow.
type Offset struct {
	Days   int
	Months int
	Years  int
}

// NewOffset returns an Offset with the specified days, months and years.
func NewOffset(days, months, years int) Offset {
	return Offset{Days: days, Months: months, Years: years}
}

// Days returns an Offset of n days.
func Days(n int) Offset {
	return Offset{Days: n}
}

// Months returns an Offset of n months.
func Months(n int) Offset {
	return Offset{Months: n}
}

// Years returns an Offset of n years.
func Years(n int) Offset {
	return Offset{Years: n}
}

// Add returns the component-wise sum of o and p.
func (o Offset) Add(p Offset) Offset {
	return Offset{
		Days:   o.Days + p.Days,
		Months: o.Months + p.Months,
		Years:  o.Years + p.Years,
	}
}

// Neg returns o with each component negated.
func (o Offset) Neg() Offset {
	return Offset{Days: -o.Days, Months: -o.Months, Years: -o.Years}
}

// Sub returns o.Add(p.Neg()).
func (o Offset) Sub(p Offset) Offset {
	return o.Add(p.Neg())
}

// IsZero returns true if all of the components of o are zero.
func (o Offset) IsZero() bool {
	return o == Offset{}
}

// Sum returns the sum of all of the supplied offsets.
func Sum(offsets ...Offset) Offset {
	var total Offset
	for _, o := range offsets {
		total = total.Add(o)
	}
	return total
}

// String returns o in ISO8601 duration form, eg. P5Y3M8D. Zero
// components are omitted and negative components carry their own sign,
// eg. P-1Y2M. The zero Offset is P0D.
func (o Offset) String() string {
	if o.IsZero() {
		return "P0D"
	}
	var out strings.Builder
	out.WriteByte('P')
	for _, c := range []struct {
		n          int
		designator byte
	}{
		{o.Years, 'Y'},
		{o.Months, 'M'},
		{o.Days, 'D'},
	} {
		if c.n == 0 {
			continue
		}
		out.WriteString(strconv.Itoa(c.n))
		out.WriteByte(c.designator)
	}
	return out.String()
}
