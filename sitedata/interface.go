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

// Package sitedata owns everything a single configured site accumulates
// between sitemap builds: its in-memory visiting table, its on-disk
// base/temp files, its host-popularity counter, and the URL validation
// pipeline (replacer chain, robots.txt filter, query whitelist) that every
// incoming record passes through before being recorded.
package sitedata

import (
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	rec "github.com/sabouaram/sitemapgen/record"
	rbt "github.com/sabouaram/sitemapgen/sitemap/robots"
)

// Record is one observed URL visit, as handed off by the URL pipe reader or
// an in-process provider.
type Record struct {
	URL           string
	Host          string
	Status        int
	ContentHash   rec.Fingerprint
	LastModified  int64
	LastFileWrite int64
}

// Config configures one site's Manager.
type Config struct {
	Dir              string
	HostURL          string
	MaxURLInMemory   int
	MaxURLInDisk     int
	MaxURLLife       time.Duration
	MaxObsoleted     int
	MaxTempBytes     int64
	Replacers        []Replacer
	Robots           rbt.Filter
	QueryWhitelist   map[string]struct{}
	// Log is the logger this site's pipeline reports merge/save failures
	// through. Nil falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// Manager is the per-site data pipeline of spec 4.H.
type Manager interface {
	// ProcessRecord validates and routes one incoming visit. It returns
	// needsFlush=true when the in-memory table has reached MaxURLInMemory
	// and a flush should be scheduled.
	ProcessRecord(r Record, now time.Time) (needsFlush bool, err error)

	// SaveMemoryData saves the host counter and the in-memory table to
	// "current". If flush is true, it also seals current into a new temp
	// file and clears the table. block=false makes the memory lock
	// acquisition non-blocking.
	SaveMemoryData(flush bool, block bool, now time.Time) error

	// UpdateDatabase snapshots and clears the obsoleted set, then folds
	// base + temps into a new base under the disk lock.
	UpdateDatabase(now time.Time) error

	// GetHostName returns the configured host, or the most-visited
	// observed host if none was configured.
	GetHostName() string

	// Size returns the number of records currently held in memory.
	Size() int

	// LockDiskRead acquires the disk lock read-style, so a base-file scan
	// (e.g. a sitemap rebuild) never interleaves with UpdateDatabase's
	// merge/swap of the same files. The returned func releases the lock.
	LockDiskRead() func()
}

// New returns a Manager rooted at cfg.Dir.
func New(cfg Config) (Manager, error) {
	return newManager(cfg)
}
