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

package scheduler

import (
	"context"
	"sort"
	"sync"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	rntick "github.com/sabouaram/sitemapgen/runner/ticker"
	libsem "github.com/sabouaram/sitemapgen/semaphore"
)

type scheduler struct {
	cfg Config

	mu       sync.Mutex
	services map[string]Service
	inflight map[string]bool

	queue chan Service
	tick  rntick.Ticker
	sem   libsem.Semaphore
	wg    sync.WaitGroup

	workerCtx    context.Context
	workerCancel context.CancelFunc
}

func newScheduler(cfg Config) *scheduler {
	if cfg.Workers <= 0 {
		cfg.Workers = 4
	}
	if cfg.TickPeriod <= 0 {
		cfg.TickPeriod = time.Second
	}
	if cfg.QueueSize <= 0 {
		cfg.QueueSize = 64
	}

	s := &scheduler{
		cfg:      cfg,
		services: make(map[string]Service),
		inflight: make(map[string]bool),
		queue:    make(chan Service, cfg.QueueSize),
	}

	s.tick = rntick.New(cfg.TickPeriod, s.onTick)

	return s
}

func (s *scheduler) logger() liblog.Logger {
	if s.cfg.Log != nil {
		return s.cfg.Log()
	}
	return liblog.New(context.Background())
}

func (s *scheduler) Register(svc Service) error {
	if svc.Name() == "" {
		return ErrorNameEmpty.Error(nil)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.services[svc.Name()]; exists {
		return ErrorAlreadyRegistered.Error(nil)
	}

	s.services[svc.Name()] = svc

	return nil
}

func (s *scheduler) Services() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]string, 0, len(s.services))
	for name := range s.services {
		out = append(out, name)
	}
	sort.Strings(out)

	return out
}

// onTick evaluates every registered service's wait time and enqueues the
// ones that are due, skipping any already in flight.
func (s *scheduler) onTick(_ context.Context, _ *time.Ticker) error {
	now := time.Now()

	s.mu.Lock()
	var due []Service
	for name, svc := range s.services {
		if s.inflight[name] {
			continue
		}
		if svc.WaitTime(now) <= 0 {
			due = append(due, svc)
			s.inflight[name] = true
		}
	}
	s.mu.Unlock()

	for _, svc := range due {
		select {
		case s.queue <- svc:
		default:
			// Queue is saturated; drop this tick's attempt and retry
			// next tick since the service stays marked in-flight only
			// until it is actually popped below.
			s.mu.Lock()
			delete(s.inflight, svc.Name())
			s.mu.Unlock()
		}
	}

	return nil
}

// dispatch pops due services off the queue and runs each one on a worker
// slot borrowed from the bounded Semaphore, so at most cfg.Workers services
// ever run concurrently.
func (s *scheduler) dispatch(ctx context.Context) {
	defer s.wg.Done()

	for {
		select {
		case <-ctx.Done():
			return
		case svc, ok := <-s.queue:
			if !ok {
				return
			}

			if err := s.sem.NewWorker(); err != nil {
				s.mu.Lock()
				delete(s.inflight, svc.Name())
				s.mu.Unlock()
				continue
			}

			s.wg.Add(1)
			go func(svc Service) {
				defer s.wg.Done()
				defer s.sem.DeferWorker()

				if err := svc.Run(ctx); err != nil {
					s.logger().Entry(loglvl.ErrorLevel, "service run failed: "+svc.Name()).ErrorAdd(true, err).Log()
				}

				s.mu.Lock()
				delete(s.inflight, svc.Name())
				s.mu.Unlock()
			}(svc)
		}
	}
}

func (s *scheduler) Start(ctx context.Context) error {
	s.workerCtx, s.workerCancel = context.WithCancel(ctx)
	s.sem = libsem.New(s.workerCtx, int64(s.cfg.Workers), false)

	s.wg.Add(1)
	go s.dispatch(s.workerCtx)

	return s.tick.Start(ctx)
}

func (s *scheduler) Stop(ctx context.Context) error {
	if err := s.tick.Stop(ctx); err != nil {
		return err
	}

	if s.workerCancel != nil {
		s.workerCancel()
	}
	s.wg.Wait()
	_ = s.sem.WaitAll()
	s.sem.DeferMain()

	return nil
}
