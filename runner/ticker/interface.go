/*
 * MIT License
 *
 * Copyright (c) 2022 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

// Package ticker provides a periodic-callback primitive built on time.Ticker. The
// scheduler (1s tick loop) and the monitor health-check loop are both instances of
// a Ticker; neither hand-rolls its own "for { select { case <-t.C: ... } }" loop.
package ticker

import (
	"context"
	"time"
)

// minDuration is the smallest period accepted; smaller values fall back to it so a
// misconfigured cadence cannot spin the process.
const minDuration = 100 * time.Millisecond

// FuncTick is invoked on every tick. It receives the underlying *time.Ticker so it
// may Reset the period, e.g. to implement jitter or back off after an error.
type FuncTick func(ctx context.Context, tck *time.Ticker) error

// Ticker runs FuncTick every period until stopped or its context is cancelled.
type Ticker interface {
	// Start begins ticking in a background goroutine. Calling Start while already
	// running restarts the ticker.
	Start(ctx context.Context) error

	// Stop halts the ticker and waits for the current tick (if any) to finish.
	Stop(ctx context.Context) error

	// Restart is Stop followed by Start.
	Restart(ctx context.Context) error

	// IsRunning reports whether the ticker goroutine is active.
	IsRunning() bool

	// Uptime returns the duration since the last Start, or zero when not running.
	Uptime() time.Duration
}

// New returns a Ticker with the given period and callback. A period below
// minDuration is raised to minDuration. A nil callback is legal and simply ticks
// without effect.
func New(d time.Duration, fct FuncTick) Ticker {
	if d < minDuration {
		d = minDuration
	}

	return &model{
		period: d,
		fct:    fct,
	}
}
