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

// Package sitemap implements the per-flavor sitemap-building services of
// spec 4.J: each reads a site's base file through sitedata, filters and
// converts records to UrlElements, and feeds a SitemapWriter that emits one
// or more bounded XML files plus, when there is more than one, an index.
package sitemap

import (
	"context"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

// ChangeFreq is the <changefreq> bucket derived from a record's access and
// change history, per spec 4.J.2.
type ChangeFreq string

const (
	ChangeHourly  ChangeFreq = "hourly"
	ChangeDaily   ChangeFreq = "daily"
	ChangeWeekly  ChangeFreq = "weekly"
	ChangeMonthly ChangeFreq = "monthly"
	ChangeYearly  ChangeFreq = "yearly"
	ChangeNever   ChangeFreq = "never"
)

// ChangeFreqFromAge buckets the duration since a record's last change into
// a ChangeFreq, per the ratio thresholds of spec 4.J.2.
func ChangeFreqFromAge(age time.Duration) ChangeFreq {
	switch {
	case age <= time.Hour:
		return ChangeHourly
	case age <= 24*time.Hour:
		return ChangeDaily
	case age <= 7*24*time.Hour:
		return ChangeWeekly
	case age <= 30*24*time.Hour:
		return ChangeMonthly
	case age <= 365*24*time.Hour:
		return ChangeYearly
	default:
		return ChangeNever
	}
}

// UrlElement is the abstract record fed to a SitemapWriter, independent of
// the on-disk VisitingRecord layout.
type UrlElement struct {
	Loc          string
	LastModified time.Time
	ChangeFreq   ChangeFreq
	Priority     float64
	// PublicationDate and Title are only populated for the news flavor.
	PublicationDate time.Time
	Title           string
}

// Filter decides whether a URL path should be included in a sitemap.
type Filter interface {
	Match(path string) bool
}

// Informer notifies one search engine that a sitemap was (re)published.
type Informer interface {
	Inform(ctx context.Context, publicSitemapURL string) error
}

// SitemapWriter accumulates UrlElements and emits one or more XML files
// under a byte and URL-count budget, plus a sitemap index when more than
// one file was produced.
type SitemapWriter interface {
	// Add feeds one element. It returns false if this element did not fit
	// the current file and the caller should re-submit after Rotate.
	Add(e UrlElement) bool
	// Rotate closes the current output file and starts a new one.
	Rotate() error
	// Finish closes the last output file, writes the index when more than
	// one file was produced, and returns the public URL of the result
	// (the index if present, else the single file).
	Finish() (string, error)
}

// WriterConfig configures a SitemapWriter.
type WriterConfig struct {
	OutputDir  string
	PublicBase string
	Stem       string
	MaxBytes   int64
	MaxURLs    int
	Compress   bool
}

// NewWriter returns a SitemapWriter for the "web" family of flavors
// (everything but news).
func NewWriter(cfg WriterConfig) SitemapWriter {
	return newXMLWriter(cfg)
}

// Config configures a BaseSitemapService.
type Config struct {
	Name          string
	Period        time.Duration
	Include       Filter
	Exclude       Filter
	Informers     []Informer
	Writer        func() SitemapWriter
	Data          sd.Manager
	BasePath      func() string
	// BaseCount returns the surviving record count from the last merge,
	// the denominator <priority> is computed against (spec 4.J.2).
	BaseCount func() int
	// Log is the logger a failed rebuild run is reported through. Nil
	// falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// New returns a plain (non-news) BaseSitemapService implementing
// scheduler.Service.
func New(cfg Config) *BaseSitemapService {
	return newBaseService(cfg)
}
