// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"fmt"

	"cloudeng.io/cmdutil"
	"cloudeng.io/file"
	"cloudeng.io/literals/internal/scenario"
)

type scenarioFlags struct {
	cmdutil.LoggingFlags
	Config string `subcmd:"config,defaults.yaml,'yaml file containing the scenarios to run, defaults.yaml refers to the built in scenarios'"`
}

func status(r scenario.Result) string {
	switch {
	case !r.Checked:
		return "-"
	case r.OK:
		return "ok"
	default:
		return "FAIL"
	}
}

func (c *commands) scenarios(ctx context.Context, values any, _ []string) error {
	fv := values.(*scenarioFlags)
	ctx, closer, err := withLogger(ctx, fv.LoggingFlags)
	if err != nil {
		return err
	}
	defer closer()
	ctx = file.ContextWithFS(ctx, scenario.Embedded)
	cfg, err := scenario.ParseFile(ctx, fv.Config)
	if err != nil {
		return err
	}
	results, err := cfg.Run(ctx)
	for _, r := range results {
		fmt.Fprintf(c.out, "%-20v %v + %v = %v %v\n", r.Name, r.Start, r.Offset, r.Got, status(r))
	}
	return err
}
