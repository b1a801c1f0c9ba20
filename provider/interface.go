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

// Package provider synthesizes URL visit records from a source other than
// the webserver pipe, per spec 4.K: a file-system scanner and a log-line
// parser. Both keep a persistent per-site "last access limit" timestamp and
// only emit records observed after it, advancing the limit to the maximum
// timestamp seen on a successful run.
package provider

import (
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

// Source synthesizes zero or more records observed after since (a Unix
// timestamp), returning the maximum timestamp it observed so the caller can
// advance the persisted limit.
type Source interface {
	Name() string
	Scan(since int64) (records []sd.Record, maxObserved int64, err error)
}

// Config configures a Service wrapping one Source.
type Config struct {
	Name      string
	Period    time.Duration
	LimitPath string
	Source    Source
	Data      sd.Manager
	// Log is the logger a failed scan/limit update is reported through.
	// Nil falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// New returns a scheduler.Service that runs Source on a cadence, feeding
// every synthesized record to Data and persisting the advancing limit at
// LimitPath.
func New(cfg Config) *Service {
	return newService(cfg)
}
