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

// Package urlpipe composes ipc/ringbuffer, ipc/mutexset and ipc/filelock into
// the one-way, blocking URL-visit transport from webserver plugin (sender,
// possibly multi-process) to the daemon (receiver, unique), per spec 4.D.
package urlpipe

import (
	"context"
	"path/filepath"
	"time"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
	ring "github.com/sabouaram/sitemapgen/ipc/ringbuffer"
	liblog "github.com/sabouaram/sitemapgen/logger"
)

// RetrievePeriod bounds how often a detached Sender retries attaching to the
// receiver, per spec 4.D's "at most once per RETRIEVE_PERIOD seconds".
const RetrievePeriod = 5 * time.Second

// Config locates every resource a pipe needs: all names are derived from Dir
// so a receiver and its senders agree on paths without further coordination.
type Config struct {
	// Dir is the directory holding the anchor file, semaphore files and
	// shared segment file for this pipe. One per configured site.
	Dir string
	// Capacity is the ring buffer's fixed slot count (shared by both sides).
	Capacity int
	// GroupReadable grants group-read on the anchor/segment files so a
	// different-UID webserver process can attach.
	GroupReadable bool
	// Perm is applied to files this pipe creates.
	Perm libprm.Perm
	// Log is the logger setup failures and dropped records are reported
	// through. Nil falls back to a standalone logger.New.
	Log liblog.FuncLog
}

func (c Config) logger() liblog.Logger {
	if c.Log != nil {
		return c.Log()
	}
	return liblog.New(context.Background())
}

func (c Config) anchorDir() string   { return filepath.Join(c.Dir, "mutex") }
func (c Config) segmentPath() string { return filepath.Join(c.Dir, "ring.seg") }
func (c Config) lockPath() string    { return filepath.Join(c.Dir, "setup.lock") }

func (c Config) segmentSize() int {
	return 8 + c.Capacity*ring.Size()
}

// Receiver is the daemon side of a pipe: unique, long-lived, responsible for
// resource creation and teardown.
type Receiver interface {
	// Setup creates the mutex set, shared segment and sets RW=1, NOTIFY=0.
	Setup(ctx context.Context) error
	// Receive blocks until at least one record is available, then returns
	// every available record. The returned slice is owned by the pipe and is
	// only valid until the next call to Receive.
	Receive(ctx context.Context) ([]ring.UrlRecord, error)
	// Teardown destroys the mutex set and removes the shared segment.
	Teardown() error
}

// Sender is the webserver-plugin side of a pipe: may run in multiple
// processes concurrently, attaches lazily and retries on failure.
type Sender interface {
	// Send attempts to attach (if not already) and write up to len(records)
	// records, returning the number actually written, 0 on timeout/detached,
	// or -1 on unexpected error.
	Send(ctx context.Context, records []ring.UrlRecord, timeoutMs int) int
	// Close detaches without affecting the receiver's resources.
	Close() error
}

// NewReceiver returns a Receiver bound to cfg. Call Setup before Receive.
func NewReceiver(cfg Config) (Receiver, error) {
	if cfg.Dir == "" {
		return nil, ErrorNameEmpty.Error(nil)
	}
	if cfg.Capacity < 2 {
		cfg.Capacity = 1000
	}
	return &receiver{cfg: cfg}, nil
}

// NewSender returns a Sender bound to cfg. It attaches lazily on the first
// Send call.
func NewSender(cfg Config) (Sender, error) {
	if cfg.Dir == "" {
		return nil, ErrorNameEmpty.Error(nil)
	}
	if cfg.Capacity < 2 {
		cfg.Capacity = 1000
	}
	return &sender{cfg: cfg}, nil
}
