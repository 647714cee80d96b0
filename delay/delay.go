// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package delay accumulates requested delays expressed as time.Duration
// values built from the time package's unit constants.
package delay

import (
	"context"
	"slices"
	"time"

	"cloudeng.io/logging/ctxlog"
)

// Total returns the sum of the supplied durations.
func Total(ds ...time.Duration) time.Duration {
	var total time.Duration
	for _, d := range ds {
		total += d
	}
	return total
}

// Seconds returns d as a whole number of seconds, truncated towards zero.
func Seconds(d time.Duration) int64 {
	return int64(d / time.Second)
}

// Delay records a request to delay for d with the context's logger.
// It does not sleep.
func Delay(ctx context.Context, d time.Duration) {
	ctxlog.Logger(ctx).Info("delay", "duration", d, "nanoseconds", d.Nanoseconds())
}

// Recorder tracks the delays passed to it.
type Recorder struct {
	delays []time.Duration
}

// Delay records d and then calls the package level Delay.
func (r *Recorder) Delay(ctx context.Context, d time.Duration) {
	r.delays = append(r.delays, d)
	Delay(ctx, d)
}

// Delays returns a copy of the delays recorded so far.
func (r *Recorder) Delays() []time.Duration {
	return slices.Clone(r.delays)
}

// Total returns the sum of the recorded delays.
func (r *Recorder) Total() time.Duration {
	return Total(r.delays...)
}
