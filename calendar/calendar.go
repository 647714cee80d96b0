// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

// Option represents an option to NewCalendar.
type Option func(*rules)

// WithMonthWrap selects month+12, rather than the default of 12-month,
// as the value of a month that has underflowed. The default treats a
// month of -1 as 13 (and hence January of the original year), whereas
// with this option it is treated as November of the previous year.
func WithMonthWrap() Option {
	return func(r *rules) {
		r.monthWrap = true
	}
}

// WithGregorianLeapYears selects the Gregorian leap year rule, with
// its exceptions for centuries not divisible by 400, instead of the
// default rule that every year divisible by 4 is a leap year.
func WithGregorianLeapYears() Option {
	return func(r *rules) {
		r.gregorian = true
	}
}

// Calendar creates and offsets dates using a specific set of
// normalization rules. The zero value uses the same rules as NewDate
// and Date.Offset.
type Calendar struct {
	rules rules
}

// NewCalendar returns a Calendar configured with the supplied options.
func NewCalendar(opts ...Option) Calendar {
	var c Calendar
	for _, fn := range opts {
		fn(&c.rules)
	}
	return c
}

// Date is like NewDate but uses the calendar's rules.
func (c Calendar) Date(day, month, year int) Date {
	return c.rules.date(day, month, year)
}

// Offset is like Date.Offset but uses the calendar's rules.
func (c Calendar) Offset(d Date, o Offset) Date {
	return c.rules.offset(d, o)
}

// DaysInMonth is like the package level DaysInMonth but uses the
// calendar's leap year rule.
func (c Calendar) DaysInMonth(month, year int) int {
	days, _ := c.rules.monthLengths(month, year)
	return days
}

// IsLeap is like the package level IsLeap but uses the calendar's
// leap year rule.
func (c Calendar) IsLeap(year int) bool {
	return c.rules.isLeap(year)
}
