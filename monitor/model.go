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

package monitor

import (
	"context"
	"sync"
	"time"

	moninf "github.com/sabouaram/sitemapgen/monitor/info"
	monsts "github.com/sabouaram/sitemapgen/monitor/status"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	rnstck "github.com/sabouaram/sitemapgen/runner/ticker"
)

type model struct {
	ctx context.Context

	mu   sync.RWMutex
	name string
	inf  moninf.Info
	cfg  montps.Config
	fct  montps.FuncHealthCheck

	tck rnstck.Ticker

	lastCheck time.Time
	lastErr   error
	status    monsts.Status
}

func (m *model) Name() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.name
}

func (m *model) Status() montps.Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *model) LastCheck() time.Time {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastCheck
}

func (m *model) LastError() error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.lastErr
}

func (m *model) Infos() map[string]interface{} {
	i, e := m.inf.Infos()
	if e != nil {
		return map[string]interface{}{"error": e.Error()}
	}
	return i
}

func (m *model) SetConfig(_ context.Context, cfg montps.Config) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.cfg = cfg

	if m.tck != nil && m.tck.IsRunning() {
		m.buildTicker()
		return m.tck.Restart(m.ctx)
	}

	m.buildTicker()
	return nil
}

func (m *model) SetHealthCheck(fct montps.FuncHealthCheck) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fct = fct
}

// buildTicker must be called with m.mu held.
func (m *model) buildTicker() {
	m.tck = rnstck.New(m.cfg.Interval, func(ctx context.Context, _ *time.Ticker) error {
		m.runCheck(ctx)
		return nil
	})
}

func (m *model) runCheck(ctx context.Context) {
	m.mu.RLock()
	fct := m.fct
	fall := m.cfg.FallCount
	rise := m.cfg.RiseCount
	cur := m.status
	m.mu.RUnlock()

	if fct == nil {
		return
	}

	err := fct(ctx)

	m.mu.Lock()
	m.lastCheck = time.Now()
	m.lastErr = err

	switch {
	case err != nil && cur != monsts.KO:
		if fall <= 1 {
			m.status = monsts.KO
		} else {
			m.status = monsts.Warn
		}
	case err != nil:
		m.status = monsts.KO
	case err == nil && cur != monsts.OK:
		if rise <= 1 {
			m.status = monsts.OK
		} else {
			m.status = monsts.Warn
		}
	default:
		m.status = monsts.OK
	}
	m.mu.Unlock()
}

func (m *model) Start(ctx context.Context) error {
	m.mu.Lock()
	if m.tck == nil {
		m.buildTicker()
	}
	tck := m.tck
	m.mu.Unlock()

	return tck.Start(ctx)
}

func (m *model) Stop() {
	m.mu.RLock()
	tck := m.tck
	m.mu.RUnlock()

	if tck != nil {
		_ = tck.Stop(m.ctx)
	}
}

func (m *model) IsRunning() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.tck != nil && m.tck.IsRunning()
}
