// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package scenario

import (
	"cloudeng.io/literals/calendar"
	"gopkg.in/yaml.v3"
)

// Offset is a calendar.Offset that marshals to and from its ISO8601
// form, eg. P5Y3M8D.
type Offset calendar.Offset

func (o Offset) MarshalYAML() (any, error) {
	return calendar.Offset(o).String(), nil
}

func (o *Offset) UnmarshalYAML(value *yaml.Node) error {
	co, err := calendar.ParseOffset(value.Value)
	if err != nil {
		return err
	}
	*o = Offset(co)
	return nil
}

func (o Offset) String() string {
	return calendar.Offset(o).String()
}

// Date is the yaml representation of a day, month and year. It is not
// normalized.
type Date struct {
	Day   int `yaml:"day"`
	Month int `yaml:"month"`
	Year  int `yaml:"year"`
}

// IsSet returns true if any of the date's fields are non-zero.
func (d Date) IsSet() bool {
	return d != Date{}
}

// Matches returns true if cd has the same day, month and year as d.
func (d Date) Matches(cd calendar.Date) bool {
	return d.Day == cd.Day() && d.Month == cd.Month() && d.Year == cd.Year()
}
