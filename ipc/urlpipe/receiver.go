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
	"os"

	filock "github.com/sabouaram/sitemapgen/ipc/filelock"
	mtxset "github.com/sabouaram/sitemapgen/ipc/mutexset"
	ring "github.com/sabouaram/sitemapgen/ipc/ringbuffer"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

type receiver struct {
	cfg Config

	mtx mtxset.Set
	rw  mtxset.Mutex
	ntf mtxset.Mutex

	seg *sharedSegment
	buf *ring.Buffer

	scratch []ring.UrlRecord
}

func (r *receiver) Setup(ctx context.Context) error {
	if err := os.MkdirAll(r.cfg.Dir, 0o750); err != nil {
		r.cfg.logger().Entry(loglvl.ErrorLevel, "pipe setup failed").ErrorAdd(true, err).Log()
		return ErrorSetupError.Error(err)
	}

	lock, err := filock.New(r.cfg.lockPath(), r.cfg.Perm, r.cfg.GroupReadable)
	if err != nil {
		return ErrorSetupError.Error(err)
	}
	if err = lock.LockWait(5000); err != nil {
		return ErrorSetupError.Error(err)
	}
	defer lock.Unlock()

	set, err := mtxset.New(mtxset.Config{
		AnchorDir:     r.cfg.anchorDir(),
		Server:        true,
		GroupReadable: r.cfg.GroupReadable,
	})
	if err != nil {
		return ErrorSetupError.Error(err)
	}
	if _, err = set.Register("RW"); err != nil {
		return ErrorSetupError.Error(err)
	}
	if _, err = set.Register("NOTIFY"); err != nil {
		return ErrorSetupError.Error(err)
	}
	if err = set.Load(ctx); err != nil {
		return ErrorSetupError.Error(err)
	}

	rw, err := set.Get("RW", 1, true)
	if err != nil {
		return ErrorSetupError.Error(err)
	}
	ntf, err := set.Get("NOTIFY", 0, true)
	if err != nil {
		return ErrorSetupError.Error(err)
	}

	seg, err := openSharedSegment(r.cfg.segmentPath(), r.cfg.segmentSize(), true)
	if err != nil {
		return ErrorSetupError.Error(err)
	}

	buf, err := ring.Attach(seg.Bytes(), r.cfg.Capacity)
	if err != nil {
		return ErrorSetupError.Error(err)
	}

	r.mtx = set
	r.rw = rw
	r.ntf = ntf
	r.seg = seg
	r.buf = buf

	return nil
}

func (r *receiver) Receive(ctx context.Context) ([]ring.UrlRecord, error) {
	if r.buf == nil {
		return nil, ErrorNotAttached.Error(nil)
	}

	if res := r.ntf.Wait(ctx, -1); res != mtxset.WaitOK {
		return nil, ErrorSendError.Error(nil)
	}

	if res := r.rw.Wait(ctx, -1); res != mtxset.WaitOK {
		return nil, ErrorSendError.Error(nil)
	}

	r.scratch = r.buf.ReadAll(r.scratch)
	n := len(r.scratch)
	r.buf.Consume(n)

	if err := r.rw.Post(); err != nil {
		return nil, ErrorSendError.Error(err)
	}

	return r.scratch, nil
}

func (r *receiver) Teardown() error {
	if r.seg != nil {
		_ = r.seg.Close()
		_ = r.seg.Remove(r.cfg.segmentPath())
	}
	if r.mtx != nil {
		return r.mtx.Destroy()
	}
	return nil
}
