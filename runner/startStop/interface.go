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

// Package startStop provides a generic start/stop lifecycle runner used by every
// long-running goroutine in this module: the pipe receiver loop, the scheduler tick
// loop, the service runner pool and the monitor health-check loop all wrap a
// (start, stop) pair of functions behind the same Runner contract instead of hand
// rolling their own goroutine/atomic-bool bookkeeping.
package startStop

import (
	"context"
	"time"
)

// FuncStart is called once per Start, in its own goroutine. It is expected to block
// until ctx is done (a service loop) or to return immediately (a one-shot action).
type FuncStart func(ctx context.Context) error

// FuncStop is called once per Stop, with a fresh, short-lived context; it must
// release whatever FuncStart acquired and return promptly.
type FuncStop func(ctx context.Context) error

// Runner is a cooperative start/stop lifecycle: Start launches FuncStart in a new
// goroutine and returns immediately; Stop cancels the internal context, invokes
// FuncStop and waits for the FuncStart goroutine to return.
type Runner interface {
	// Start launches the start function asynchronously. A second call to Start
	// stops any previous instance before starting a new one. Start itself never
	// blocks on the start function and returns nil unless the runner is nil.
	Start(ctx context.Context) error

	// Stop cancels the running instance, invokes the stop function and joins the
	// start-function goroutine. Safe to call when not running.
	Stop(ctx context.Context) error

	// Restart is Stop followed by Start using the same context.
	Restart(ctx context.Context) error

	// IsRunning reports whether a start-function goroutine is currently active.
	IsRunning() bool

	// Uptime returns the duration since the last successful Start, or zero when
	// not running.
	Uptime() time.Duration

	// ErrorsLast returns the most recent error returned by the start or stop
	// function, or nil if none occurred since the last Start.
	ErrorsLast() error

	// ErrorsList returns every error observed since the last Start, oldest first.
	ErrorsList() []error
}

// New returns a Runner wrapping the given start/stop pair. Either may be nil; a nil
// FuncStart reports an error on Start instead of panicking, a nil FuncStop is a no-op.
func New(start FuncStart, stop FuncStop) Runner {
	return &runner{
		fctStart: start,
		fctStop:  stop,
	}
}
