// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package calendar provides a calendar date that is always normalized
// and a date offset of days, months and years that can be applied to it.
//
// Offsets are built from single unit constructors and summed, much
// as one would write 8_d + 3_m + 5_y with user defined literals:
//
//	d := calendar.NewDate(23, 8, 2020)
//	d = d.Add(calendar.Days(8).Add(calendar.Months(3)).Add(calendar.Years(5)))
//
// All types are immutable values and all operations are pure.
package calendar

import (
	"fmt"
	"time"
)

// Date represents a day, month and year. A Date is normalized on
// creation so that its month is in the range 1-12 and its day is
// valid for that month and year. The zero value is not a valid
// Date, use NewDate.
type Date struct {
	day, month, year int
}

// NewDate returns the Date for day, month and year. Values outside
// of their valid ranges are carried into, or borrowed from, the
// adjacent month or year, e.g. NewDate(31, 11, 2020) is 1 Dec 2020.
func NewDate(day, month, year int) Date {
	return defaultRules.date(day, month, year)
}

// Day returns the day of the month, 1-31.
func (d Date) Day() int { return d.day }

// Month returns the month, 1-12.
func (d Date) Month() int { return d.month }

// Year returns the year.
func (d Date) Year() int { return d.year }

// Offset returns the date obtained by applying o to d. The years
// are applied first, then the months and finally the days, with
// the date being normalized after each step. The order matters,
// for example 31 Oct + 1 month + 1 day is 2 Dec whereas
// 31 Oct + 1 day + 1 month is 1 Dec.
func (d Date) Offset(o Offset) Date {
	return defaultRules.offset(d, o)
}

// Add is the same as Offset.
func (d Date) Add(o Offset) Date {
	return d.Offset(o)
}

// String returns the date as YYYY-MM-DD.
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}

// Format returns the date as 'day / month / year'.
func (d Date) Format() string {
	return fmt.Sprintf("%d / %d / %d", d.day, d.month, d.year)
}

// MonthName returns the english name of the date's month.
func (d Date) MonthName() string {
	return time.Month(d.month).String()
}
