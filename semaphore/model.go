/*
 * MIT License
 *
 * Copyright (c) 2019 Nicolas JUHEL
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

package semaphore

import (
	"context"
	"sync"

	"github.com/vbauerster/mpb/v8"
	"golang.org/x/sync/semaphore"
)

type model struct {
	ctx context.Context
	n   int64
	w   *semaphore.Weighted
	wg  sync.WaitGroup

	mpbMu sync.Mutex
	mpb   *mpb.Progress
}

func newSemaphore(ctx context.Context, n int64, withProgress bool) *model {
	if n < 1 {
		n = 1
	}

	m := &model{
		ctx: ctx,
		n:   n,
		w:   semaphore.NewWeighted(n),
	}

	if withProgress {
		m.mpb = mpb.NewWithContext(ctx)
	}

	return m
}

func (m *model) NewWorker() error {
	if e := m.w.Acquire(m.ctx, 1); e != nil {
		return e
	}
	m.wg.Add(1)
	return nil
}

func (m *model) NewWorkerTry() bool {
	if !m.w.TryAcquire(1) {
		return false
	}
	m.wg.Add(1)
	return true
}

func (m *model) DeferWorker() {
	m.w.Release(1)
	m.wg.Done()
}

func (m *model) WaitAll() error {
	m.wg.Wait()
	return nil
}

func (m *model) DeferMain() {
	if m.mpb != nil {
		m.mpb.Wait()
	}
}

func (m *model) Weighted() int64 {
	return m.n
}

func (m *model) GetMPB() *mpb.Progress {
	return m.mpb
}
