// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"strconv"

	"cloudeng.io/cmdutil"
	"cloudeng.io/errors"
	"cloudeng.io/literals/angle"
)

type angleFlags struct {
	cmdutil.LoggingFlags
}

var defaultAngles = []string{"3.14159265rad", "360deg"}

func formatFloat32(v float32) string {
	return strconv.FormatFloat(float64(v), 'g', -1, 32)
}

func (c *commands) angle(ctx context.Context, values any, args []string) error {
	fv := values.(*angleFlags)
	_, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	if len(args) == 0 {
		args = defaultAngles
	}
	errs := &errors.M{}
	for _, arg := range args {
		a, err := angle.Parse(arg)
		if err != nil {
			errs.Append(err)
			continue
		}
		fmt.Fprintf(c.out, "%v: %v degrees, %v radians\n", arg, formatFloat32(a.Degrees()), formatFloat32(a.Radians()))
	}
	return errs.Err()
}
