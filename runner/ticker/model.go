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

package ticker

import (
	"context"
	"sync"
	"time"
)

type model struct {
	mu sync.Mutex

	period time.Duration
	fct    FuncTick

	cnl     context.CancelFunc
	done    chan struct{}
	running bool
	started time.Time
}

func (m *model) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.running {
		m.mu.Unlock()
		_ = m.Stop(ctx)
		m.mu.Lock()
	}

	c, cnl := context.WithCancel(ctx)
	done := make(chan struct{})

	m.cnl = cnl
	m.done = done
	m.running = true
	m.started = time.Now()

	period := m.period
	fct := m.fct
	m.mu.Unlock()

	go func() {
		defer close(done)
		defer func() {
			m.mu.Lock()
			m.running = false
			m.mu.Unlock()
		}()

		tck := time.NewTicker(period)
		defer tck.Stop()

		for {
			select {
			case <-c.Done():
				return
			case <-tck.C:
				if fct != nil {
					_ = fct(c, tck)
				}
			}
		}
	}()

	return nil
}

func (m *model) Stop(ctx context.Context) error {
	m.mu.Lock()
	cnl := m.cnl
	done := m.done
	m.mu.Unlock()

	if cnl != nil {
		cnl()
	}

	if done != nil {
		select {
		case <-done:
		case <-ctx.Done():
		}
	}

	return nil
}

func (m *model) Restart(ctx context.Context) error {
	if e := m.Stop(ctx); e != nil {
		return e
	}
	return m.Start(ctx)
}

func (m *model) IsRunning() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.running
}

func (m *model) Uptime() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	if !m.running {
		return 0
	}
	return time.Since(m.started)
}
