// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package calendar

import "cloudeng.io/datetime"

// rules determines how out of range days and months are carried
// and borrowed. The zero value is the default, naive, rule set.
type rules struct {
	monthWrap bool // month+12 rather than 12-month on underflow.
	gregorian bool // century exceptions to the leap year rule.
}

func (r rules) isLeap(year int) bool {
	if r.gregorian {
		return datetime.IsLeap(year)
	}
	return year%4 == 0
}

// isLongMonth returns true for 31 day months. Months outside of
// 1-12 are classified by the same odd/even rule.
func isLongMonth(month int) bool {
	return month <= 7 && month%2 != 0 || month >= 8 && month%2 == 0
}

// monthLengths returns the number of days in month and the number
// of days to borrow from the month that precedes it.
func (r rules) monthLengths(month, year int) (days, prev int) {
	prev = 31
	switch {
	case r.gregorian && month >= 1 && month <= 12:
		days = int(datetime.DaysInMonth(year, datetime.Month(month)))
		if isLongMonth(month) && month != 8 {
			prev = 30
		}
	case month == 2:
		days = 28
		if r.isLeap(year) {
			days = 29
		}
	case isLongMonth(month):
		days = 31
		if month != 8 {
			prev = 30
		}
	default:
		days = 30
	}
	return
}

func (r rules) underflow(month int) int {
	if r.monthWrap {
		return month + 12
	}
	return 12 - month
}

// normalize carries and borrows days and months until the date
// reaches a fixed point. The number of passes is not bounded and grows
// with the magnitude of day, roughly one pass per month carried.
func (r rules) normalize(day, month, year int) (int, int, int) {
	for {
		changed := false
		days, prev := r.monthLengths(month, year)
		switch {
		case day > days:
			day -= days
			month++
			changed = true
		case day < 1:
			day += prev
			month--
			changed = true
		}
		switch {
		case month > 12:
			month = 1
			year++
			changed = true
		case month < 1:
			month = r.underflow(month)
			year--
			changed = true
		}
		if !changed {
			return day, month, year
		}
	}
}

// offset applies years, then months and finally days, normalizing
// after each step.
func (r rules) offset(d Date, o Offset) Date {
	afterYears := r.date(d.day, d.month, d.year+o.Years)
	afterMonths := r.date(d.day, d.month+o.Months, afterYears.year)
	return r.date(afterMonths.day+o.Days, afterMonths.month, afterMonths.year)
}

func (r rules) date(day, month, year int) Date {
	day, month, year = r.normalize(day, month, year)
	return Date{day: day, month: month, year: year}
}

var defaultRules rules

// IsLeap reports whether year is a leap year under the naive rule
// used for normalization: any year divisible by 4.
func IsLeap(year int) bool {
	return defaultRules.isLeap(year)
}

// DaysInMonth returns the number of days in the given month, 1-12,
// for the given year using the naive leap year rule.
func DaysInMonth(month, year int) int {
	days, _ := defaultRules.monthLengths(month, year)
	return days
}
