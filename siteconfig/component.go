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

	cfgtps "github.com/sabouaram/sitemapgen/config/types"
	liblog "github.com/sabouaram/sitemapgen/logger"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	libver "github.com/sabouaram/sitemapgen/version"
	libvpr "github.com/sabouaram/sitemapgen/viper"
	spfcbr "github.com/spf13/cobra"
)

// ComponentType is the key config.Component registers this package's
// component under.
const ComponentType = "siteconfig"

// SiteFile is one site's id paired with the path its setting is loaded
// from/saved to.
type SiteFile struct {
	SiteID string
	Path   string
}

type componentSiteConfig struct {
	mu sync.RWMutex

	log liblog.FuncLog
	key string
	dep []string

	daemonPath string
	siteFiles  []SiteFile

	fsBef, fsAft cfgtps.FuncCptEvent
	frBef, frAft cfgtps.FuncCptEvent

	mgr     Manager
	started bool
}

// New returns a config.Component wrapping a Manager: Start/Reload load the
// daemon setting and every site setting named in siteFiles; Stop just drops
// the in-memory state, the underlying files are left untouched.
func New(daemonPath string, siteFiles []SiteFile) cfgtps.Component {
	return &componentSiteConfig{
		daemonPath: daemonPath,
		siteFiles:  siteFiles,
	}
}

// Manager exposes the underlying Manager so the daemon's CLI commands
// (get_site_setting, set_site_setting, reload_setting, update_setting) can
// reach it once the component has started.
func (c *componentSiteConfig) Manager() Manager {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.mgr
}

func (c *componentSiteConfig) Type() string {
	return ComponentType
}

func (c *componentSiteConfig) Init(key string, ctx context.Context, get cfgtps.FuncCptGet, vpr libvpr.FuncViper, vrs libver.Version, log liblog.FuncLog) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.key = key
	c.log = log
	c.mgr = newManager(ctx)
}

func (c *componentSiteConfig) RegisterFuncStart(before, after cfgtps.FuncCptEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.fsBef, c.fsAft = before, after
}

func (c *componentSiteConfig) RegisterFuncReload(before, after cfgtps.FuncCptEvent) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.frBef, c.frAft = before, after
}

func (c *componentSiteConfig) IsStarted() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.started
}

func (c *componentSiteConfig) IsRunning() bool {
	return c.IsStarted()
}

func (c *componentSiteConfig) load() error {
	c.mu.RLock()
	mgr := c.mgr
	daemonPath := c.daemonPath
	siteFiles := c.siteFiles
	c.mu.RUnlock()

	if mgr == nil {
		return ErrorUnknownSite.Error(nil)
	}

	if daemonPath != "" {
		if _, err := mgr.LoadDaemonConfig(daemonPath); err != nil {
			return err
		}
	}

	for _, sf := range siteFiles {
		if _, err := mgr.LoadSiteConfig(sf.SiteID, sf.Path); err != nil {
			return err
		}
	}

	return nil
}

func (c *componentSiteConfig) Start() error {
	c.mu.RLock()
	before, after := c.fsBef, c.fsAft
	c.mu.RUnlock()

	if before != nil {
		if err := before(c); err != nil {
			return err
		}
	}

	if err := c.load(); err != nil {
		return err
	}

	c.mu.Lock()
	c.started = true
	c.mu.Unlock()

	if after != nil {
		return after(c)
	}

	return nil
}

func (c *componentSiteConfig) Reload() error {
	c.mu.RLock()
	before, after, mgr := c.frBef, c.frAft, c.mgr
	c.mu.RUnlock()

	if before != nil {
		if err := before(c); err != nil {
			return err
		}
	}

	var err error
	if mgr != nil {
		err = mgr.ReloadSetting()
	} else {
		err = c.load()
	}
	if err != nil {
		return err
	}

	if after != nil {
		return after(c)
	}

	return nil
}

func (c *componentSiteConfig) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.started = false
}

func (c *componentSiteConfig) Dependencies() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if c.dep == nil {
		return []string{}
	}

	return c.dep
}

func (c *componentSiteConfig) SetDependencies(d []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.dep = d
	return nil
}

func (c *componentSiteConfig) DefaultConfig(indent string) []byte {
	return []byte("{}")
}

func (c *componentSiteConfig) RegisterFlag(Command *spfcbr.Command) error {
	return nil
}

func (c *componentSiteConfig) RegisterMonitorPool(p montps.FuncPool) {
}
