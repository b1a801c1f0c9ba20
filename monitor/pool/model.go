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

package pool

import (
	"sort"
	"sync"

	montps "github.com/sabouaram/sitemapgen/monitor/types"
)

type pool struct {
	mu sync.RWMutex
	m  map[string]montps.Monitor
}

func (p *pool) MonitorSet(mon montps.Monitor) error {
	if mon == nil {
		return nil
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.m == nil {
		p.m = make(map[string]montps.Monitor)
	}

	p.m[mon.Name()] = mon
	return nil
}

func (p *pool) MonitorGet(key string) montps.Monitor {
	p.mu.RLock()
	defer p.mu.RUnlock()

	if p.m == nil {
		return nil
	}

	return p.m[key]
}

func (p *pool) MonitorDel(key string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	delete(p.m, key)
}

func (p *pool) MonitorList() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()

	l := make([]string, 0, len(p.m))
	for k := range p.m {
		l = append(l, k)
	}

	sort.Strings(l)
	return l
}

func (p *pool) Walk(fct func(key string, mon montps.Monitor) bool) {
	if fct == nil {
		return
	}

	p.mu.RLock()
	cp := make(map[string]montps.Monitor, len(p.m))
	for k, v := range p.m {
		cp[k] = v
	}
	p.mu.RUnlock()

	keys := make([]string, 0, len(cp))
	for k := range cp {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		if !fct(k, cp[k]) {
			return
		}
	}
}
