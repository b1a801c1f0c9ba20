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

package siteconfig

import (
	"context"
	"sync"

	libctx "github.com/sabouaram/sitemapgen/context"
	perm "github.com/sabouaram/sitemapgen/file/perm"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	libvpr "github.com/sabouaram/sitemapgen/viper"

	libmap "github.com/go-viper/mapstructure/v2"
)

type siteEntry struct {
	cfg  SiteSetting
	path string
}

type mgr struct {
	ctx context.Context

	mu         sync.Mutex
	daemon     DaemonSetting
	daemonPath string
	hasDaemon  bool

	sites libctx.Config[string]
}

func newManager(ctx context.Context) Manager {
	if ctx == nil {
		ctx = context.Background()
	}

	return &mgr{
		ctx:   ctx,
		sites: libctx.New[string](ctx),
	}
}

func (m *mgr) readFile(path string, out interface{}) error {
	if path == "" {
		return ErrorPathEmpty.Error(nil)
	}

	v := libvpr.New(m.ctx, nil)
	v.HookRegister(perm.ViperDecoderHook())

	if err := v.SetConfigFile(path); err != nil {
		return ErrorLoadConfig.Error(err)
	}

	if err := v.Config(loglvl.ErrorLevel, loglvl.NilLevel); err != nil {
		return ErrorLoadConfig.Error(err)
	}

	if err := v.Unmarshal(out); err != nil {
		return ErrorDecodeConfig.Error(err)
	}

	return nil
}

func (m *mgr) writeFile(path string, in interface{}) error {
	if path == "" {
		return ErrorPathEmpty.Error(nil)
	}

	flat := map[string]interface{}{}
	if err := libmap.Decode(in, &flat); err != nil {
		return ErrorDecodeConfig.Error(err)
	}

	v := libvpr.New(m.ctx, nil)
	raw := v.Viper()
	for k, val := range flat {
		raw.Set(k, val)
	}

	if err := raw.WriteConfigAs(path); err != nil {
		return ErrorSaveConfig.Error(err)
	}

	return nil
}

func (m *mgr) LoadDaemonConfig(path string) (DaemonSetting, error) {
	var cfg DaemonSetting
	if err := m.readFile(path, &cfg); err != nil {
		return DaemonSetting{}, err
	}

	m.mu.Lock()
	m.daemon = cfg
	m.daemonPath = path
	m.hasDaemon = true
	m.mu.Unlock()

	return cfg, nil
}

func (m *mgr) SaveDaemonConfig(path string, cfg DaemonSetting) error {
	if err := m.writeFile(path, cfg); err != nil {
		return err
	}

	m.mu.Lock()
	m.daemon = cfg
	m.daemonPath = path
	m.hasDaemon = true
	m.mu.Unlock()

	return nil
}

func (m *mgr) DaemonConfig() (DaemonSetting, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()

	return m.daemon, m.hasDaemon
}

func (m *mgr) LoadSiteConfig(siteID, path string) (SiteSetting, error) {
	if siteID == "" {
		return SiteSetting{}, ErrorSiteIDEmpty.Error(nil)
	}

	var cfg SiteSetting
	if err := m.readFile(path, &cfg); err != nil {
		return SiteSetting{}, err
	}
	if cfg.SiteID == "" {
		cfg.SiteID = siteID
	}

	m.sites.Store(siteID, &siteEntry{cfg: cfg, path: path})

	return cfg, nil
}

func (m *mgr) SaveSiteConfig(siteID, path string, cfg SiteSetting) error {
	if siteID == "" {
		return ErrorSiteIDEmpty.Error(nil)
	}

	if cfg.SiteID == "" {
		cfg.SiteID = siteID
	}

	if err := m.writeFile(path, cfg); err != nil {
		return err
	}

	m.sites.Store(siteID, &siteEntry{cfg: cfg, path: path})

	return nil
}

func (m *mgr) SiteConfig(siteID string) (SiteSetting, bool) {
	val, ok := m.sites.Load(siteID)
	if !ok {
		return SiteSetting{}, false
	}

	e, ok := val.(*siteEntry)
	if !ok || e == nil {
		return SiteSetting{}, false
	}

	return e.cfg, true
}

func (m *mgr) SetSiteConfig(siteID string, cfg SiteSetting) {
	if siteID == "" {
		return
	}

	path := ""
	if val, ok := m.sites.Load(siteID); ok {
		if e, ok := val.(*siteEntry); ok && e != nil {
			path = e.path
		}
	}

	if cfg.SiteID == "" {
		cfg.SiteID = siteID
	}

	m.sites.Store(siteID, &siteEntry{cfg: cfg, path: path})
}

func (m *mgr) Sites() []string {
	var out []string
	m.sites.Walk(func(key string, val interface{}) bool {
		out = append(out, key)
		return true
	})
	return out
}

func (m *mgr) ReloadSetting() error {
	m.mu.Lock()
	daemonPath := m.daemonPath
	hasDaemon := m.hasDaemon
	m.mu.Unlock()

	if hasDaemon {
		if _, err := m.LoadDaemonConfig(daemonPath); err != nil {
			return err
		}
	}

	for _, siteID := range m.Sites() {
		val, ok := m.sites.Load(siteID)
		if !ok {
			continue
		}
		e, ok := val.(*siteEntry)
		if !ok || e == nil || e.path == "" {
			continue
		}

		if _, err := m.LoadSiteConfig(siteID, e.path); err != nil {
			return err
		}
	}

	return nil
}

func (m *mgr) UpdateSetting() error {
	m.mu.Lock()
	daemon := m.daemon
	daemonPath := m.daemonPath
	hasDaemon := m.hasDaemon
	m.mu.Unlock()

	if hasDaemon {
		if daemonPath == "" {
			return ErrorNoPriorLoad.Error(nil)
		}
		if err := m.writeFile(daemonPath, daemon); err != nil {
			return err
		}
	}

	for _, siteID := range m.Sites() {
		val, ok := m.sites.Load(siteID)
		if !ok {
			continue
		}
		e, ok := val.(*siteEntry)
		if !ok || e == nil {
			continue
		}
		if e.path == "" {
			return ErrorNoPriorLoad.Error(nil)
		}
		if err := m.writeFile(e.path, e.cfg); err != nil {
			return err
		}
	}

	return nil
}
