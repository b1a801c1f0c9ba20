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

package sitedata

import (
	"context"
	"strings"
	"sync"
	"time"

	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	mrg "github.com/sabouaram/sitemapgen/merge"
	rec "github.com/sabouaram/sitemapgen/record"
	tbl "github.com/sabouaram/sitemapgen/record/table"
	rf "github.com/sabouaram/sitemapgen/recordfile"
	rbt "github.com/sabouaram/sitemapgen/sitemap/robots"
)

type manager struct {
	cfg Config
	rfm rf.Manager

	memoryLock sync.Mutex
	diskLock   sync.RWMutex

	table     tbl.Table
	hosts     *hostCounter
	obsoleted map[rec.Fingerprint]struct{}
}

func newManager(cfg Config) (Manager, error) {
	rfm, err := rf.New(rf.Config{Dir: cfg.Dir, Log: cfg.Log})
	if err != nil {
		return nil, err
	}

	if cfg.Robots == nil {
		cfg.Robots = rbt.AllowAll
	}
	if cfg.MaxObsoleted <= 0 {
		cfg.MaxObsoleted = 10000
	}

	m := &manager{
		cfg:       cfg,
		rfm:       rfm,
		table:     tbl.New(),
		hosts:     newHostCounter(),
		obsoleted: make(map[rec.Fingerprint]struct{}),
	}

	_ = m.hosts.load(rfm.HostPath())

	return m, nil
}

// validateURL rejects non-ASCII control characters and requires a leading
// '/', per spec 4.H.1.
func validateURL(u string) bool {
	if !strings.HasPrefix(u, "/") {
		return false
	}
	for _, r := range u {
		if r < 0x20 || r == 0x7f {
			return false
		}
	}
	return true
}

func (m *manager) ProcessRecord(r Record, now time.Time) (bool, error) {
	if !validateURL(r.URL) {
		return false, ErrorInvalidURL.Error(nil)
	}

	if !m.cfg.Robots.Allowed(r.URL) {
		return false, ErrorDisallowedByRobots.Error(nil)
	}

	u := applyReplacers(r.URL, m.cfg.Replacers)
	u = filterQuery(u, m.cfg.QueryWhitelist)

	switch r.Status {
	case 200:
		m.memoryLock.Lock()
		_, err := m.table.Add(u, r.ContentHash, r.LastModified, r.LastFileWrite, now.Unix())
		m.hosts.bump(r.Host)
		size := m.table.Size()
		m.memoryLock.Unlock()

		if err != nil {
			return false, err
		}

		needsFlush := m.cfg.MaxURLInMemory > 0 && size >= m.cfg.MaxURLInMemory
		return needsFlush, nil

	case 301, 302, 307, 404:
		fp := rec.NewFingerprint(u)

		m.memoryLock.Lock()
		if len(m.obsoleted) < m.cfg.MaxObsoleted {
			m.obsoleted[fp] = struct{}{}
		}
		m.memoryLock.Unlock()

		return false, nil

	default:
		return false, nil
	}
}

func (m *manager) SaveMemoryData(flush bool, block bool, now time.Time) error {
	if block {
		m.memoryLock.Lock()
	} else if !m.memoryLock.TryLock() {
		return ErrorMemoryLocked.Error(nil)
	}

	var sealedPath string
	err := func() error {
		defer m.memoryLock.Unlock()

		if err := m.hosts.save(m.rfm.HostPath()); err != nil {
			return ErrorSaveMemory.Error(err)
		}
		if err := m.table.Save(m.rfm.CurrentPath()); err != nil {
			return ErrorSaveMemory.Error(err)
		}

		if flush {
			p, err := m.rfm.CompleteCurrent(now)
			if err != nil {
				return ErrorSaveMemory.Error(err)
			}
			sealedPath = p
			m.table.Clear()
		}

		return nil
	}()
	if err != nil {
		m.logger().Entry(loglvl.ErrorLevel, "memory save failed").ErrorAdd(true, err).Log()
		return err
	}

	if sealedPath != "" {
		total, err := m.rfm.TempsTotalSize()
		if err == nil && m.cfg.MaxTempBytes > 0 && total > m.cfg.MaxTempBytes {
			m.diskLock.Lock()
			_ = m.rfm.CleanupTemps(m.cfg.MaxTempBytes)
			m.diskLock.Unlock()
		}
	}

	return nil
}

func (m *manager) UpdateDatabase(now time.Time) error {
	m.memoryLock.Lock()
	obsoleted := m.obsoleted
	m.obsoleted = make(map[rec.Fingerprint]struct{})
	m.memoryLock.Unlock()

	m.diskLock.Lock()
	defer m.diskLock.Unlock()

	temps, err := m.rfm.Temps()
	if err != nil {
		return ErrorMerge.Error(err)
	}

	cutoff := int64(0)
	if m.cfg.MaxURLLife > 0 {
		cutoff = now.Add(-m.cfg.MaxURLLife).Unix()
	}

	maxDisk := m.cfg.MaxURLInDisk
	if maxDisk <= 0 {
		maxDisk = 1 << 30
	}

	_, err = mrg.Merge(m.rfm, mrg.Input{
		BasePath:    m.rfm.BasePath(),
		TempPaths:   temps,
		Obsoleted:   obsoleted,
		MaxURLCount: maxDisk,
		Cutoff:      cutoff,
		Log:         m.cfg.Log,
	})
	if err != nil {
		m.logger().Entry(loglvl.ErrorLevel, "database update failed").ErrorAdd(true, err).Log()
		return ErrorMerge.Error(err)
	}

	return nil
}

func (m *manager) logger() liblog.Logger {
	if m.cfg.Log != nil {
		return m.cfg.Log()
	}
	return liblog.New(context.Background())
}

func (m *manager) GetHostName() string {
	if m.cfg.HostURL != "" {
		return m.cfg.HostURL
	}

	m.memoryLock.Lock()
	defer m.memoryLock.Unlock()

	return m.hosts.top()
}

func (m *manager) Size() int {
	return m.table.Size()
}

func (m *manager) LockDiskRead() func() {
	m.diskLock.RLock()
	return m.diskLock.RUnlock
}
