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

// Package runtimeinfo is the per-site registry the admin console reads from:
// one montps.Monitor per configured site, backed by a libctx.Config[string]
// map, surfacing the counters and last-merge status spec 4.H's Manager
// exposes through a health-check cadence instead of one-off polling.
package runtimeinfo

import (
	"context"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

// SiteInfo is the registered runtime view of one site.
type SiteInfo interface {
	SiteID() string
	Data() sd.Manager
	Monitor() montps.Monitor
	// LastUpdate returns the wall-clock time of the last successful
	// UpdateDatabase call recorded via RecordUpdate.
	LastUpdate() time.Time
	// RecordUpdate is called by the scheduler's sitemap/provider services
	// after a successful UpdateDatabase, so the health check and admin
	// console can report freshness without re-touching disk.
	RecordUpdate(t time.Time)
}

// Registry tracks the SiteInfo of every configured site and the montps.Pool
// the admin console reads an aggregated view from.
type Registry interface {
	// Register creates, configures and starts a Monitor for siteID wrapping
	// data, then stores the resulting SiteInfo. Registering an existing
	// siteID fails.
	Register(ctx context.Context, siteID string, data sd.Manager, cfg montps.Config) (SiteInfo, error)
	// Unregister stops and removes a site's Monitor.
	Unregister(siteID string)
	// Get returns the SiteInfo registered under siteID.
	Get(siteID string) (SiteInfo, bool)
	// List returns every registered site id.
	List() []string
	// Pool returns the process-wide montps.Pool every Monitor is also
	// registered into, for the admin console's aggregated health view.
	Pool() montps.Pool
}

// New returns an empty Registry. log is used to report Register/health-check
// failures; nil falls back to a standalone logger.New.
func New(log liblog.FuncLog) Registry {
	return newRegistry(log)
}
