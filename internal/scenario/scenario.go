// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package scenario provides support for describing, in yaml, dates and
// the offsets to be applied to them together with the expected results.
// For example:
//
//	rules:
//	  month_wrap: false
//	  gregorian: false
//	scenarios:
//	  - name: reference
//	    date: {day: 23, month: 8, year: 2020}
//	    offset: P5Y3M8D
//	    want: {day: 1, month: 12, year: 2025}
package scenario

import (
	"context"
	"embed"
	"fmt"

	"cloudeng.io/cmdutil/cmdyaml"
	"cloudeng.io/errors"
	"cloudeng.io/literals/calendar"
	"cloudeng.io/logging/ctxlog"
)

// Embedded contains DefaultFile.
//
//go:embed defaults.yaml
var Embedded embed.FS

// DefaultFile is the name of the default set of scenarios in Embedded.
const DefaultFile = "defaults.yaml"

// Rules selects the normalization rules used by all of the scenarios
// in a Config.
type Rules struct {
	MonthWrap bool `yaml:"month_wrap"`
	Gregorian bool `yaml:"gregorian"`
}

// Scenario represents a single date, the offset to apply to it and,
// optionally, the expected result.
type Scenario struct {
	Name   string `yaml:"name"`
	Date   Date   `yaml:"date"`
	Offset Offset `yaml:"offset"`
	Want   Date   `yaml:"want"`
}

// Config represents a set of scenarios.
type Config struct {
	Rules     Rules      `yaml:"rules"`
	Scenarios []Scenario `yaml:"scenarios"`
}

// Result is the outcome of running a single Scenario.
type Result struct {
	Scenario
	Start calendar.Date
	Got   calendar.Date
	// Checked is true if the scenario specifies an expected result.
	Checked bool
	OK      bool
}

// Parse parses a yaml scenario specification, unknown fields are
// reported as errors.
func Parse(spec []byte) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigStrict(spec, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// ParseFile is like Parse but reads the specification from the named
// file using file.FSReadFile, so any fs.ReadFileFS stored in the
// context, such as Embedded, is consulted before the local filesystem.
func ParseFile(ctx context.Context, name string) (Config, error) {
	var cfg Config
	if err := cmdyaml.ParseConfigFileStrict(ctx, name, &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Calendar returns the calendar.Calendar specified by the config's rules.
func (c Config) Calendar() calendar.Calendar {
	var opts []calendar.Option
	if c.Rules.MonthWrap {
		opts = append(opts, calendar.WithMonthWrap())
	}
	if c.Rules.Gregorian {
		opts = append(opts, calendar.WithGregorianLeapYears())
	}
	return calendar.NewCalendar(opts...)
}

// Run applies the offset in each scenario to its date. All of the
// scenarios are run and an error is returned for every scenario whose
// result does not match its expected value.
func (c Config) Run(ctx context.Context) ([]Result, error) {
	cal := c.Calendar()
	logger := ctxlog.Logger(ctx)
	results := make([]Result, 0, len(c.Scenarios))
	errs := &errors.M{}
	for _, s := range c.Scenarios {
		r := Result{Scenario: s}
		r.Start = cal.Date(s.Date.Day, s.Date.Month, s.Date.Year)
		r.Got = cal.Offset(r.Start, calendar.Offset(s.Offset))
		r.Checked = s.Want.IsSet()
		r.OK = !r.Checked || s.Want.Matches(r.Got)
		results = append(results, r)
		logger.Debug("scenario", "name", s.Name, "date", r.Start.String(), "offset", s.Offset.String(), "result", r.Got.String(), "ok", r.OK)
		if !r.OK {
			errs.Append(fmt.Errorf("%v: %v + %v: got %v, want %04d-%02d-%02d",
				s.Name, r.Start, s.Offset, r.Got, s.Want.Year, s.Want.Month, s.Want.Day))
		}
	}
	return results, errs.Err()
}
