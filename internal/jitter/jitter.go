// Package jitter implements the optional timing-jitter sleep helper
// (spec.md §4.7 apply_timing_jitter). The mutex-guarded-timestamp shape is
// grounded on the teacher's internal/httpclient/timing.go tracker, adapted
// here from "record observed timings" to "sleep for a sampled duration."
package jitter

import (
	"context"
	"time"

	"github.com/parrotls/parrotls/internal/model"
)

// Config configures apply_timing_jitter (spec.md §6 "timing_jitter").
type Config struct {
	MinMicros   int64
	MaxMicros   int64
	Probability float64
}

// Apply sleeps for a uniformly random duration in [MinMicros, MaxMicros]
// microseconds with probability cfg.Probability. It is a no-op when
// cfg.Probability <= 0 or when ctx is already done. The sleep respects ctx
// cancellation: Apply returns as soon as either the timer fires or ctx is
// done, whichever comes first.
//
// Per spec.md §5, the host stack must call this outside of any lock; Apply
// itself takes no lock and touches no shared state beyond rng, which the
// caller owns for the duration of the call.
func Apply(ctx context.Context, cfg Config, rng model.RNG) {
	if cfg.Probability <= 0 || ctx.Err() != nil {
		return
	}
	if model.Float64(rng) >= cfg.Probability {
		return
	}

	lo, hi := cfg.MinMicros, cfg.MaxMicros
	if hi < lo {
		lo, hi = hi, lo
	}
	span := hi - lo + 1
	if span <= 0 {
		return
	}
	d := time.Duration(lo+int64(model.Intn(rng, int(span)))) * time.Microsecond

	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
