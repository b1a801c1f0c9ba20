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

package runtimeinfo

import (
	"context"
	"fmt"
	"sync"
	"time"

	libctx "github.com/sabouaram/sitemapgen/context"
	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	libmon "github.com/sabouaram/sitemapgen/monitor"
	moninf "github.com/sabouaram/sitemapgen/monitor/info"
	monpool "github.com/sabouaram/sitemapgen/monitor/pool"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

type siteInfo struct {
	siteID string
	data   sd.Manager
	mon    montps.Monitor

	mu         sync.RWMutex
	lastUpdate time.Time
}

func (s *siteInfo) SiteID() string          { return s.siteID }
func (s *siteInfo) Data() sd.Manager        { return s.data }
func (s *siteInfo) Monitor() montps.Monitor { return s.mon }

func (s *siteInfo) LastUpdate() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lastUpdate
}

func (s *siteInfo) RecordUpdate(t time.Time) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lastUpdate = t
}

type registry struct {
	m    libctx.Config[string]
	pool montps.Pool
	log  liblog.FuncLog
}

func newRegistry(log liblog.FuncLog) Registry {
	return &registry{
		m:    libctx.New[string](context.Background()),
		pool: monpool.New(),
		log:  log,
	}
}

func (r *registry) logger() liblog.Logger {
	if r.log != nil {
		return r.log()
	}
	return liblog.New(context.Background())
}

func (r *registry) Register(ctx context.Context, siteID string, data sd.Manager, cfg montps.Config) (SiteInfo, error) {
	if siteID == "" {
		return nil, ErrorSiteIDEmpty.Error()
	}

	if _, ok := r.m.Load(siteID); ok {
		return nil, ErrorAlreadyRegistered.Error()
	}

	info := &siteInfo{siteID: siteID, data: data}

	moni, err := moninf.New(siteID)
	if err != nil {
		return nil, err
	}
	moni.RegisterName(func() (string, error) {
		if h := data.GetHostName(); h != "" {
			return h, nil
		}
		return siteID, nil
	})
	moni.RegisterInfo(func() (map[string]interface{}, error) {
		return map[string]interface{}{
			"site_id":             siteID,
			"records_in_memory":   data.Size(),
			"host_name":           data.GetHostName(),
			"last_database_update": info.LastUpdate(),
		}, nil
	})

	mon, err := libmon.New(ctx, moni)
	if err != nil {
		return nil, err
	}
	mon.SetHealthCheck(func(_ context.Context) (healthErr error) {
		// Manager exposes no dedicated probe, so the check touches the same
		// memory-lock path ProcessRecord and Size use; a stuck or corrupted
		// table surfaces as a panic here rather than hanging the scheduler.
		defer func() {
			if p := recover(); p != nil {
				healthErr = fmt.Errorf("runtimeinfo: site %q data manager panicked: %v", siteID, p)
				r.logger().Entry(loglvl.ErrorLevel, "health check panicked").ErrorAdd(true, healthErr).Log()
			}
		}()
		data.Size()
		return nil
	})
	if err = mon.SetConfig(ctx, cfg); err != nil {
		return nil, err
	}
	if err = mon.Start(ctx); err != nil {
		return nil, err
	}

	info.mon = mon

	if err = r.pool.MonitorSet(mon); err != nil {
		return nil, err
	}

	r.m.Store(siteID, info)

	return info, nil
}

func (r *registry) Unregister(siteID string) {
	if v, ok := r.m.Load(siteID); ok {
		if si, ok2 := v.(*siteInfo); ok2 && si.mon != nil {
			si.mon.Stop()
		}
		r.pool.MonitorDel(siteID)
	}
	r.m.Delete(siteID)
}

func (r *registry) Get(siteID string) (SiteInfo, bool) {
	v, ok := r.m.Load(siteID)
	if !ok {
		return nil, false
	}
	si, ok := v.(*siteInfo)
	return si, ok
}

func (r *registry) List() []string {
	var out []string
	r.m.Walk(func(key string, _ interface{}) bool {
		out = append(out, key)
		return true
	})
	return out
}

func (r *registry) Pool() montps.Pool { return r.pool }
