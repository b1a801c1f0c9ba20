/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

// Package semaphore wraps golang.org/x/sync/semaphore.Weighted with worker-count
// bookkeeping and optional vbauerster/mpb progress bars. The scheduler's bounded
// pool of service runners (spec 4.I, "a fixed-size pool of worker threads") is one
// Semaphore; each runner acquires one worker slot for the duration of a service run.
package semaphore

import (
	"context"

	"github.com/vbauerster/mpb/v8"
)

// Bar is a progress indicator tied to a Semaphore. When the Semaphore was created
// without progress support, a Bar is still returned but all operations are no-ops
// and Total/Current report 0, so callers never need a nil check.
type Bar interface {
	Total() int64
	Current() int64
	Inc(n int)
	Inc64(n int64)
	Dec(n int)
	Dec64(n int64)
	Complete()
	Completed() bool
}

// Semaphore bounds concurrent work to a fixed weight and optionally renders progress
// for each unit of work through a shared mpb.Progress container.
type Semaphore interface {
	// NewWorker blocks until a slot is free or ctx is done.
	NewWorker() error
	// NewWorkerTry acquires a slot without blocking; false means none were free.
	NewWorkerTry() bool
	// DeferWorker releases one previously acquired slot.
	DeferWorker()
	// WaitAll blocks until every acquired slot has been released.
	WaitAll() error
	// DeferMain releases the semaphore's own bookkeeping; call once, typically
	// deferred right after New.
	DeferMain()
	// Weighted returns the configured concurrency limit.
	Weighted() int64

	// BarBytes creates a byte-count progress bar (downloads, file scans). If after
	// is non-nil the bar queues behind it instead of rendering immediately.
	BarBytes(title, message string, total int64, drop bool, after Bar) Bar
	// BarTime creates a unit-count progress bar intended for time-bounded work.
	BarTime(title, message string, total int64, drop bool, after Bar) Bar
	// BarNumber creates a plain unit-count progress bar (record counts, URL counts).
	BarNumber(title, message string, total int64, drop bool, after Bar) Bar
	// BarOpts creates a bar with only a total and a drop-on-complete flag, for
	// callers that render their own title/message.
	BarOpts(total int64, drop bool) Bar

	// GetMPB returns the underlying mpb.Progress container, or nil when the
	// Semaphore was created without progress support.
	GetMPB() *mpb.Progress
}

// New returns a Semaphore bounding concurrency to n. When withProgress is true, a
// mpb.Progress container is created lazily and every Bar renders into it.
func New(ctx context.Context, n int64, withProgress bool) Semaphore {
	return newSemaphore(ctx, n, withProgress)
}
