// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"
	"time"

	"cloudeng.io/cmdutil"
	"cloudeng.io/literals/delay"
)

type durationFlags struct {
	cmdutil.LoggingFlags
	Initial  string `subcmd:"initial,1001ns,initial delay"`
	Increase string `subcmd:"increase,1s,increased delay"`
	Wait     string `subcmd:"wait,3m,time to wait"`
}

func parseDurations(vals ...string) ([]time.Duration, error) {
	ds := make([]time.Duration, len(vals))
	for i, v := range vals {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, err
		}
		ds[i] = d
	}
	return ds, nil
}

func (c *commands) duration(ctx context.Context, values any, _ []string) error {
	fv := values.(*durationFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	ds, err := parseDurations(fv.Initial, fv.Increase, fv.Wait)
	if err != nil {
		return err
	}
	var rec delay.Recorder
	for _, d := range ds {
		rec.Delay(ctx, d)
	}
	fmt.Fprintf(c.out, "Total delay: %v seconds.\n", delay.Seconds(rec.Total()))
	return nil
}
