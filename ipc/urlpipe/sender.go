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

package urlpipe

import (
	"context"
	"sync"
	"time"

	mtxset "github.com/sabouaram/sitemapgen/ipc/mutexset"
	ring "github.com/sabouaram/sitemapgen/ipc/ringbuffer"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

type sender struct {
	cfg Config

	mu         sync.Mutex
	mtx        mtxset.Set
	rw         mtxset.Mutex
	ntf        mtxset.Mutex
	buf        *ring.Buffer
	seg        *sharedSegment
	attached   bool
	lastRetry  time.Time
}

// attach opens the receiver's resources. Failure is recorded and retried at
// most once per RetrievePeriod, per spec 4.D.
func (s *sender) attach() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.attached {
		return true
	}
	if !s.lastRetry.IsZero() && time.Since(s.lastRetry) < RetrievePeriod {
		return false
	}
	s.lastRetry = time.Now()

	set, err := mtxset.New(mtxset.Config{AnchorDir: s.cfg.anchorDir(), Server: false})
	if err != nil {
		return false
	}
	if err = set.Load(context.Background()); err != nil {
		return false
	}

	rw, err := set.Get("RW", 0, true)
	if err != nil {
		return false
	}
	ntf, err := set.Get("NOTIFY", 0, true)
	if err != nil {
		return false
	}

	seg, err := openSharedSegment(s.cfg.segmentPath(), s.cfg.segmentSize(), false)
	if err != nil {
		return false
	}

	buf, err := ring.Attach(seg.Bytes(), s.cfg.Capacity)
	if err != nil {
		_ = seg.Close()
		return false
	}

	s.mtx, s.rw, s.ntf, s.seg, s.buf = set, rw, ntf, seg, buf
	s.attached = true

	return true
}

func (s *sender) Send(ctx context.Context, records []ring.UrlRecord, timeoutMs int) int {
	if !s.attach() {
		return 0
	}

	res := s.rw.Wait(ctx, timeoutMs)
	switch res {
	case mtxset.WaitTimeout:
		return 0
	case mtxset.WaitInvalid:
		s.mu.Lock()
		s.attached = false
		s.mu.Unlock()
		return 0
	case mtxset.WaitError:
		return -1
	}

	n := s.buf.Write(records, len(records))
	if n < len(records) {
		s.cfg.logger().Entry(loglvl.DebugLevel, "ring buffer dropped records on send").Log()
	}

	if err := s.rw.Post(); err != nil {
		return -1
	}
	if err := s.ntf.Post(); err != nil {
		return -1
	}

	return n
}

func (s *sender) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.seg != nil {
		_ = s.seg.Close()
	}
	s.attached = false

	return nil
}
