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

// Package monitor is the concrete montps.Monitor: a named health check run on a
// cadence by a runner/ticker.Ticker, remembering the last status and error for
// the admin console and the per-component component.ComponentMonitor wiring.
package monitor

import (
	"context"

	moninf "github.com/sabouaram/sitemapgen/monitor/info"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
)

// New returns a Monitor named by inf.Name() that is idle until SetHealthCheck and
// Start are both called.
func New(ctx context.Context, inf moninf.Info) (montps.Monitor, error) {
	if inf == nil {
		return nil, moninf.ErrEmptyName
	}

	name, err := inf.Name()
	if err != nil {
		return nil, err
	}

	return &model{
		ctx:  ctx,
		name: name,
		inf:  inf,
	}, nil
}
