// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/literals/calendar"
	"cloudeng.io/logging/ctxlog"
)

type dateFlags struct {
	cmdutil.LoggingFlags
	Day       int    `subcmd:"day,23,day of the month"`
	Month     int    `subcmd:"month,8,month of the year"`
	Year      int    `subcmd:"year,2020,year"`
	Offset    string `subcmd:"offset,P5Y3M8D,'offset to apply in ISO8601 form, eg. P5Y3M8D or -P1W'"`
	Days      int    `subcmd:"days,0,additional days to add to the offset"`
	Months    int    `subcmd:"months,0,additional months to add to the offset"`
	Years     int    `subcmd:"years,0,additional years to add to the offset"`
	MonthWrap bool   `subcmd:"month-wrap,false,'treat an underflowing month as month+12 rather than 12-month'"`
	Gregorian bool   `subcmd:"gregorian,false,'use the gregorian rule for leap years'"`
}

func (fv *dateFlags) calendar() calendar.Calendar {
	var opts []calendar.Option
	if fv.MonthWrap {
		opts = append(opts, calendar.WithMonthWrap())
	}
	if fv.Gregorian {
		opts = append(opts, calendar.WithGregorianLeapYears())
	}
	return calendar.NewCalendar(opts...)
}

func (fv *dateFlags) offset() (calendar.Offset, error) {
	o, err := calendar.ParseOffset(fv.Offset)
	if err != nil {
		return calendar.Offset{}, err
	}
	return calendar.Sum(o, calendar.Days(fv.Days), calendar.Months(fv.Months), calendar.Years(fv.Years)), nil
}

func (c *commands) date(ctx context.Context, values any, _ []string) error {
	fv := values.(*dateFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	o, err := fv.offset()
	if err != nil {
		return err
	}
	cal := fv.calendar()
	start := cal.Date(fv.Day, fv.Month, fv.Year)
	result := cal.Offset(start, o)
	ctxlog.Logger(ctx).Info("offset", "date", start.String(), "offset", o.String(), "result", result.String())
	fmt.Fprintln(c.out, result.Format())
	return nil
}
