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

package provider

import (
	"context"
	"sync"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

// Service is a scheduler.Service that runs a Source on a cadence and feeds
// every synthesized record into a site's Manager, per spec 4.K.
type Service struct {
	cfg Config

	mu      sync.Mutex
	lastRun time.Time
}

func newService(cfg Config) *Service {
	return &Service{cfg: cfg}
}

func (s *Service) logger() liblog.Logger {
	if s.cfg.Log != nil {
		return s.cfg.Log()
	}
	return liblog.New(context.Background())
}

func (s *Service) Name() string { return s.cfg.Name }

func (s *Service) RunningPeriod() time.Duration { return s.cfg.Period }

func (s *Service) WaitTime(now time.Time) time.Duration {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.lastRun.IsZero() {
		return 0
	}

	return s.cfg.Period - now.Sub(s.lastRun)
}

// Run scans the source for records observed after the persisted limit,
// routes each through Data.ProcessRecord, and on success advances the
// persisted limit to the maximum timestamp observed.
func (s *Service) Run(ctx context.Context) error {
	defer func() {
		s.mu.Lock()
		s.lastRun = time.Now()
		s.mu.Unlock()
	}()

	since, err := readLimit(s.cfg.LimitPath)
	if err != nil {
		return err
	}

	records, maxObserved, err := s.cfg.Source.Scan(since)
	if err != nil {
		s.logger().Entry(loglvl.ErrorLevel, "source scan failed").ErrorAdd(true, err).Log()
		return err
	}

	now := time.Now()
	for _, r := range records {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if _, err = s.cfg.Data.ProcessRecord(r, now); err != nil {
			return err
		}
	}

	if maxObserved > since {
		return writeLimit(s.cfg.LimitPath, maxObserved)
	}

	return nil
}
