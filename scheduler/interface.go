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

// Package scheduler drives the set of per-site services (backup, sitemap
// builders, blog-ping, file scanner, log parser): a roughly 1-second tick
// checks every registered Service's wait_time(), pushes due services onto a
// bounded FIFO, and a fixed-size worker pool drains it.
package scheduler

import (
	"context"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
)

// Service is anything the scheduler can run on a cadence.
type Service interface {
	// Name identifies the service for logging and the "never enqueued
	// twice" guarantee.
	Name() string
	// WaitTime returns how long until this service is next due; a value
	// <= 0 means it is due now.
	WaitTime(now time.Time) time.Duration
	// RunningPeriod is this service's configured cadence, used only for
	// introspection/reporting.
	RunningPeriod() time.Duration
	// Run performs one execution. Errors are logged; they do not stop the
	// scheduler or other services.
	Run(ctx context.Context) error
}

// Scheduler periodically evaluates every registered Service and runs the due
// ones on a bounded worker pool.
type Scheduler interface {
	// Register adds a service. Registering a duplicate name is an error.
	Register(svc Service) error
	// Start begins the ~1s tick loop and the worker pool.
	Start(ctx context.Context) error
	// Stop cooperatively stops the tick loop and joins every worker.
	Stop(ctx context.Context) error
	// Services lists the names of every registered service.
	Services() []string
}

// Config configures a Scheduler.
type Config struct {
	// Workers bounds the worker pool size. Defaults to 4.
	Workers int
	// TickPeriod is how often due services are evaluated. Defaults to 1s.
	TickPeriod time.Duration
	// QueueSize bounds the pending-work FIFO. Defaults to 64.
	QueueSize int
	// Log is the logger a service's Run error is reported through. Nil
	// falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// New returns an empty Scheduler.
func New(cfg Config) Scheduler {
	return newScheduler(cfg)
}
