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

// Package pool keeps the process-wide registry of every Monitor, so the admin
// console can render one aggregated health view across every site and service.
package pool

import (
	"context"

	montps "github.com/sabouaram/sitemapgen/monitor/types"
)

// New returns an empty, process-wide Pool.
func New() montps.Pool {
	return &pool{}
}

// Func returns a montps.FuncPool closing over an already-built Pool, the shape
// every Component's RegisterMonitorPool expects.
func Func(p montps.Pool) montps.FuncPool {
	return func() montps.Pool {
		return p
	}
}

// StopAll stops every registered Monitor, used on process shutdown.
func StopAll(ctx context.Context, p montps.Pool) {
	p.Walk(func(key string, mon montps.Monitor) bool {
		if mon != nil && mon.IsRunning() {
			mon.Stop()
		}
		return true
	})
}
