// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command literals demonstrates values built from unit constructors:
// dates offset by days, months and years, angles in degrees or radians
// and delays built from time.Duration units.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloudeng.io/cmdutil"
	"cloudeng.io/cmdutil/subcmd"
	"cloudeng.io/logging/ctxlog"
)

type commands struct {
	out io.Writer
}

func newCommandSet(out io.Writer) *subcmd.CommandSet {
	c := &commands{out: out}

	dateCmd := subcmd.NewCommand("date",
		subcmd.MustRegisterFlagStruct(&dateFlags{}, nil, nil),
		c.date, subcmd.WithoutArguments())
	dateCmd.Document(`apply an offset to a date and print the result as day / month / year.`)

	angleCmd := subcmd.NewCommand("angle",
		subcmd.MustRegisterFlagStruct(&angleFlags{}, nil, nil),
		c.angle, subcmd.AtLeastNArguments(0))
	angleCmd.Document(`print angles, specified with a deg or rad suffix, in degrees and radians.`, "[<angle>...]")

	durationCmd := subcmd.NewCommand("duration",
		subcmd.MustRegisterFlagStruct(&durationFlags{}, nil, nil),
		c.duration, subcmd.WithoutArguments())
	durationCmd.Document(`accumulate a series of delays and print the total in seconds.`)

	scenariosCmd := subcmd.NewCommand("scenarios",
		subcmd.MustRegisterFlagStruct(&scenarioFlags{}, nil, nil),
		c.scenarios, subcmd.WithoutArguments())
	scenariosCmd.Document(`run the date offset scenarios in a yaml file, the built in scenarios are used by default.`)

	cmdSet := subcmd.NewCommandSet(dateCmd, angleCmd, durationCmd, scenariosCmd)
	cmdSet.Document(`demonstrate values created from unit constructors.

Dates are normalized on creation and offsets of days, months and years
are applied in the order years, months and then days.`)
	return cmdSet
}

func main() {
	newCommandSet(os.Stdout).MustDispatch(context.Background())
}

// withLogger returns a context containing the logger specified by
// flags and a function that must be called to close it.
func withLogger(ctx context.Context, flags cmdutil.LoggingFlags) (context.Context, func(), error) {
	logger, err := flags.LoggingConfig().NewLogger()
	if err != nil {
		return ctx, func() {}, fmt.Errorf("failed to create logger: %w", err)
	}
	return ctxlog.WithLogger(ctx, logger.Logger), func() { logger.Close() }, nil
}
