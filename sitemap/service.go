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

package sitemap

import (
	"context"
	"sync"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	rec "github.com/sabouaram/sitemapgen/record"
	tbl "github.com/sabouaram/sitemapgen/record/table"
)

func (s *BaseSitemapService) logger() liblog.Logger {
	if s.cfg.Log != nil {
		return s.cfg.Log()
	}
	return liblog.New(context.Background())
}

// BaseSitemapService is a scheduler.Service that rebuilds one sitemap flavor
// from a site's base file, per spec 4.J.1-4.
type BaseSitemapService struct {
	cfg Config

	mu      sync.Mutex
	lastRun time.Time
}

func newBaseService(cfg Config) *BaseSitemapService {
	if cfg.Include == nil {
		cfg.Include = matchAll{}
	}

	return &BaseSitemapService{cfg: cfg}
}

type matchAll struct{}

func (matchAll) Match(string) bool { return true }

func (s *BaseSitemapService) Name() string { return s.cfg.Name }

func (s *BaseSitemapService) RunningPeriod() time.Duration { return s.cfg.Period }

func (s *BaseSitemapService) WaitTime(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRun.IsZero() {
		return 0
	}

	return s.cfg.Period - now.Sub(s.lastRun)
}

// Run performs one rebuild cycle: merge the pending temp files into the
// base, scan the base in ascending-fingerprint order applying the
// include/exclude filters, feed every surviving record to the writer, close
// it out, and notify every configured Informer of the published location.
func (s *BaseSitemapService) Run(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.lastRun = time.Now()
		s.mu.Unlock()
	}()

	if err := s.cfg.Data.UpdateDatabase(time.Now()); err != nil {
		return err
	}

	unlockDisk := s.cfg.Data.LockDiskRead()
	table := tbl.New()
	err := table.Load(s.cfg.BasePath())
	unlockDisk()
	if err != nil {
		return ErrorOpenBase.Error(err)
	}

	total := table.Size()
	if s.cfg.BaseCount != nil {
		if c := s.cfg.BaseCount(); c > 0 {
			total = c
		}
	}

	w := s.cfg.Writer()

	var runErr error
	table.Walk(func(r rec.VisitingRecord) bool {
		if ctx.Err() != nil {
			runErr = ctx.Err()
			return false
		}

		if !s.cfg.Include.Match(r.URL) {
			return true
		}
		if s.cfg.Exclude != nil && s.cfg.Exclude.Match(r.URL) {
			return true
		}

		elem := toURLElement(r, total)

		if !w.Add(elem) {
			if err := w.Rotate(); err != nil {
				runErr = err
				return false
			}
			if !w.Add(elem) {
				runErr = ErrorWriteOutput.Error()
				return false
			}
		}

		return true
	})

	if runErr != nil {
		return runErr
	}

	publicURL, err := w.Finish()
	if err != nil {
		return err
	}

	for _, informer := range s.cfg.Informers {
		if err = informer.Inform(ctx, publicURL); err != nil {
			s.logger().Entry(loglvl.ErrorLevel, "informer notification failed").ErrorAdd(true, err).Log()
			return ErrorInform.Error(err)
		}
	}

	return nil
}

// toURLElement converts one VisitingRecord into the abstract form a
// SitemapWriter consumes, deriving <priority> from its share of access
// counts against the base's total record count and <changefreq> from the
// age of its last recorded change, per spec 4.J.2.
func toURLElement(r rec.VisitingRecord, total int) UrlElement {
	lastMod := time.Unix(r.LastChange, 0).UTC()

	priority := 0.5
	if total > 0 {
		priority = float64(r.CountAccess) / float64(total)
		if priority > 1 {
			priority = 1
		}
	}

	return UrlElement{
		Loc:          r.URL,
		LastModified: lastMod,
		ChangeFreq:   ChangeFreqFromAge(time.Since(lastMod)),
		Priority:     priority,
	}
}
