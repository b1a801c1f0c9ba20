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

package startStop

import (
	"context"
	"errors"
	"sync"
	"time"
)

var errInvalidStartFunc = errors.New("invalid start function")

type runner struct {
	mu sync.Mutex

	fctStart FuncStart
	fctStop  FuncStop

	cnl     context.CancelFunc
	done    chan struct{}
	running bool
	started time.Time

	errMu sync.Mutex
	errs  []error
}

func (r *runner) Start(ctx context.Context) error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	if r.running {
		r.mu.Unlock()
		_ = r.Stop(ctx)
		r.mu.Lock()
	}

	c, cnl := context.WithCancel(ctx)
	done := make(chan struct{})

	r.cnl = cnl
	r.done = done
	r.running = true
	r.started = time.Now()
	r.errMu.Lock()
	r.errs = nil
	r.errMu.Unlock()

	fct := r.fctStart
	r.mu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			r.mu.Lock()
			r.running = false
			r.mu.Unlock()
		}()

		if fct == nil {
			r.addErr(errInvalidStartFunc)
			return
		}

		if e := fct(c); e != nil {
			r.addErr(e)
		}
	}()

	return nil
}

func (r *runner) Stop(ctx context.Context) error {
	if r == nil {
		return nil
	}

	r.mu.Lock()
	cnl := r.cnl
	done := r.done
	fct := r.fctStop
	r.mu.Unlock()

	if cnl != nil {
		cnl()
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}

	if fct != nil {
		if e := fct(ctx); e != nil {
			r.addErr(e)
			return e
		}
	}

	return nil
}

func (r *runner) Restart(ctx context.Context) error {
	if e := r.Stop(ctx); e != nil {
		return e
	}
	return r.Start(ctx)
}

func (r *runner) IsRunning() bool {
	if r == nil {
		return false
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *runner) Uptime() time.Duration {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.running {
		return 0
	}
	return time.Since(r.started)
}

func (r *runner) addErr(e error) {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	r.errs = append(r.errs, e)
}

func (r *runner) ErrorsLast() error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	if len(r.errs) == 0 {
		return nil
	}
	return r.errs[len(r.errs)-1]
}

func (r *runner) ErrorsList() []error {
	r.errMu.Lock()
	defer r.errMu.Unlock()
	out := make([]error, len(r.errs))
	copy(out, r.errs)
	return out
}
