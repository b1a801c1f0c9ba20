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

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	cfgtps "github.com/sabouaram/sitemapgen/config/types"
	libprm "github.com/sabouaram/sitemapgen/file/perm"
	urlpipe "github.com/sabouaram/sitemapgen/ipc/urlpipe"
	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	montps "github.com/sabouaram/sitemapgen/monitor/types"
	"github.com/sabouaram/sitemapgen/provider"
	"github.com/sabouaram/sitemapgen/runtimeinfo"
	"github.com/sabouaram/sitemapgen/scheduler"
	sd "github.com/sabouaram/sitemapgen/sitedata"
	"github.com/sabouaram/sitemapgen/siteconfig"
	"github.com/sabouaram/sitemapgen/sitemap"
	rbt "github.com/sabouaram/sitemapgen/sitemap/robots"
	libver "github.com/sabouaram/sitemapgen/version"
	libvpr "github.com/sabouaram/sitemapgen/viper"
	spfcbr "github.com/spf13/cobra"
)

// daemonComponentType is the config.Component key the sitemap daemon's
// per-site pipeline registers under. It depends on siteconfig.ComponentType
// for the setting it builds every site's pipeline from.
const daemonComponentType = "daemon"

// sitePipeline is the set of long-lived resources one configured site owns:
// the in-memory/on-disk data manager (component H), the urlpipe receiver
// feeding it (component D) and the cancel func stopping the receive loop.
type sitePipeline struct {
	data     sd.Manager
	receiver urlpipe.Receiver
	cancel   context.CancelFunc
}

// daemon is the config.Component that turns a siteconfig.Manager's settings
// into a running scheduler plus one pipeline per configured site. Reload
// tears every site pipeline down and rebuilds it from the freshly reloaded
// settings, which is also how reload_setting/update_setting take effect.
type daemon struct {
	mu sync.RWMutex

	ctx context.Context
	log liblog.FuncLog
	get cfgtps.FuncCptGet

	sched   scheduler.Scheduler
	runtime runtimeinfo.Registry
	sites   map[string]*sitePipeline

	fsBef, fsAft cfgtps.FuncCptEvent
	frBef, frAft cfgtps.FuncCptEvent

	dep     []string
	started bool
}

// newDaemon returns the daemon component, not yet Init-ed.
func newDaemon() cfgtps.Component {
	return &daemon{
		sites: make(map[string]*sitePipeline),
		dep:   []string{siteconfig.ComponentType},
	}
}

func (d *daemon) Type() string { return daemonComponentType }

func (d *daemon) Init(key string, ctx context.Context, get cfgtps.FuncCptGet, vpr libvpr.FuncViper, vrs libver.Version, log liblog.FuncLog) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.ctx = ctx
	d.get = get
	d.log = log
	d.runtime = runtimeinfo.New(log)
}

func (d *daemon) logger() liblog.Logger {
	if d.log != nil {
		return d.log()
	}
	return liblog.New(context.Background())
}

// Runtime exposes the site registry so the admin console and the debug CLI
// sub-command can report per-site health without reaching into the
// scheduler directly.
func (d *daemon) Runtime() runtimeinfo.Registry {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.runtime
}

// Scheduler exposes the running Scheduler for introspection (the debug
// sub-command lists every registered service's name and cadence).
func (d *daemon) Scheduler() scheduler.Scheduler {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.sched
}

func (d *daemon) RegisterFuncStart(before, after cfgtps.FuncCptEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.fsBef, d.fsAft = before, after
}

func (d *daemon) RegisterFuncReload(before, after cfgtps.FuncCptEvent) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.frBef, d.frAft = before, after
}

func (d *daemon) IsStarted() bool {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.started
}

func (d *daemon) IsRunning() bool {
	return d.IsStarted()
}

func (d *daemon) siteconfigManager() (siteconfig.Manager, error) {
	cpt := d.get(siteconfig.ComponentType)
	if cpt == nil {
		return nil, fmt.Errorf("daemon: siteconfig component not registered")
	}

	sc, ok := cpt.(interface{ Manager() siteconfig.Manager })
	if !ok {
		return nil, fmt.Errorf("daemon: siteconfig component has no Manager accessor")
	}

	return sc.Manager(), nil
}

func (d *daemon) Start() error {
	d.mu.RLock()
	before, after := d.fsBef, d.fsAft
	d.mu.RUnlock()

	if before != nil {
		if err := before(d); err != nil {
			return err
		}
	}

	if err := d.rebuild(); err != nil {
		return err
	}

	d.mu.Lock()
	d.started = true
	d.mu.Unlock()

	if after != nil {
		return after(d)
	}

	return nil
}

func (d *daemon) Reload() error {
	d.mu.RLock()
	before, after := d.frBef, d.frAft
	d.mu.RUnlock()

	if before != nil {
		if err := before(d); err != nil {
			return err
		}
	}

	d.teardown()

	if err := d.rebuild(); err != nil {
		return err
	}

	if after != nil {
		return after(d)
	}

	return nil
}

func (d *daemon) Stop() {
	d.teardown()

	d.mu.Lock()
	d.started = false
	d.mu.Unlock()
}

func (d *daemon) teardown() {
	d.mu.Lock()
	sched := d.sched
	sites := d.sites
	d.sched = nil
	d.sites = make(map[string]*sitePipeline)
	d.mu.Unlock()

	if sched != nil {
		_ = sched.Stop(d.ctx)
	}

	for id, sp := range sites {
		if sp.cancel != nil {
			sp.cancel()
		}
		if sp.receiver != nil {
			if err := sp.receiver.Teardown(); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "pipe teardown failed: "+id).ErrorAdd(true, err).Log()
			}
		}
		d.runtime.Unregister(id)
	}
}

// rebuild reads the current siteconfig settings and constructs a fresh
// scheduler plus one pipeline per site, per spec 4.I/4.H/4.D.
func (d *daemon) rebuild() error {
	mgr, err := d.siteconfigManager()
	if err != nil {
		return err
	}

	dmnCfg, _ := mgr.DaemonConfig()

	sched := scheduler.New(scheduler.Config{
		Workers:    orInt(dmnCfg.SchedulerWorkers, 4),
		TickPeriod: orDuration(dmnCfg.SchedulerTickPeriod, time.Second),
		QueueSize:  orInt(dmnCfg.SchedulerQueueSize, 64),
		Log:        d.log,
	})

	sites := make(map[string]*sitePipeline, len(mgr.Sites()))

	for _, siteID := range mgr.Sites() {
		site, ok := mgr.SiteConfig(siteID)
		if !ok {
			continue
		}

		data, err := sd.New(sd.Config{
			Dir:            site.DataDir,
			HostURL:        site.HostURL,
			MaxURLInMemory: orInt(site.MaxURLInMemory, 10000),
			MaxURLInDisk:   orInt(site.MaxURLInDisk, 100000),
			MaxURLLife:     site.MaxURLLife,
			MaxObsoleted:   site.MaxObsoleted,
			MaxTempBytes:   site.MaxTempBytes,
			Robots:         siteRobots(site.RobotsEnabled, robotsCachePath(site.DataDir)),
			QueryWhitelist: toSet(site.QueryWhitelist),
			Log:            d.log,
		})
		if err != nil {
			d.teardownPartial(sites)
			return fmt.Errorf("daemon: site %s: data manager: %w", siteID, err)
		}

		pctx, cancel := context.WithCancel(d.ctx)

		recv, err := urlpipe.NewReceiver(urlpipe.Config{
			Dir:      filepath.Join(site.DataDir, "pipe"),
			Capacity: 4096,
			Perm:     orPerm(site.DataDirPerm),
			Log:      d.log,
		})
		if err != nil {
			cancel()
			d.teardownPartial(sites)
			return fmt.Errorf("daemon: site %s: receiver: %w", siteID, err)
		}

		if err := recv.Setup(pctx); err != nil {
			cancel()
			d.teardownPartial(sites)
			return fmt.Errorf("daemon: site %s: receiver setup: %w", siteID, err)
		}

		go d.receiveLoop(pctx, siteID, recv, data)

		if _, err := d.runtime.Register(pctx, siteID, data, montps.Config{
			Enable:    true,
			Interval:  10 * time.Second,
			FallCount: 3,
			RiseCount: 1,
		}); err != nil {
			d.logger().Entry(loglvl.WarnLevel, "runtimeinfo register failed: "+siteID).ErrorAdd(true, err).Log()
		}

		d.registerSiteServices(sched, siteID, site, data)

		sites[siteID] = &sitePipeline{data: data, receiver: recv, cancel: cancel}
	}

	d.mu.Lock()
	d.sched = sched
	d.sites = sites
	d.mu.Unlock()

	return sched.Start(d.ctx)
}

func (d *daemon) teardownPartial(sites map[string]*sitePipeline) {
	for id, sp := range sites {
		if sp.cancel != nil {
			sp.cancel()
		}
		if sp.receiver != nil {
			_ = sp.receiver.Teardown()
		}
		d.runtime.Unregister(id)
	}
}

// receiveLoop drains the site's urlpipe receiver into its data manager until
// ctx is cancelled, per spec 4.D/4.H's producer/consumer split.
func (d *daemon) receiveLoop(ctx context.Context, siteID string, recv urlpipe.Receiver, data sd.Manager) {
	for {
		recs, err := recv.Receive(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			d.logger().Entry(loglvl.ErrorLevel, "receive failed: "+siteID).ErrorAdd(true, err).Log()
			continue
		}

		now := time.Now()
		for _, r := range recs {
			rec := sd.Record{
				URL:           r.URL,
				Host:          r.Host,
				Status:        int(r.Status),
				LastModified:  r.LastModified,
				LastFileWrite: r.LastFileWrite,
			}

			if _, err := data.ProcessRecord(rec, now); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "process record failed: "+siteID).ErrorAdd(true, err).Log()
			}
		}

		if err := data.SaveMemoryData(false, false, now); err != nil {
			d.logger().Entry(loglvl.WarnLevel, "save memory data failed: "+siteID).ErrorAdd(true, err).Log()
		}
	}
}

// registerSiteServices wires every scheduler.Service a site runs: the
// sitemap rebuild services and the filesystem-scan/log-parse providers, one
// per enabled entry in site.Services (spec 4.I/4.J/4.K).
func (d *daemon) registerSiteServices(sched scheduler.Scheduler, siteID string, site siteconfig.SiteSetting, data sd.Manager) {
	for name, svc := range site.Services {
		if !svc.Enabled {
			continue
		}

		period := svc.Period
		if period <= 0 {
			period = time.Hour
		}

		switch name {
		case "web", "news", "video", "mobile", "code":
			outDir := filepath.Join(site.DataDir, "sitemap", name)

			writer := func() sitemap.SitemapWriter {
				return sitemap.NewWriter(sitemap.WriterConfig{
					OutputDir:  outDir,
					PublicBase: site.HostURL,
					Stem:       name,
					MaxBytes:   50 * 1024 * 1024,
					MaxURLs:    50000,
					Compress:   true,
				})
			}

			var informers []sitemap.Informer
			for _, tmpl := range site.PingURLs {
				informers = append(informers, sitemap.NewPingInformer(tmpl))
			}

			svcObj := sitemap.New(sitemap.Config{
				Name:      siteID + "." + name,
				Period:    period,
				Informers: informers,
				Writer:    writer,
				Data:      data,
				BasePath:  func() string { return filepath.Join(site.DataDir, "base.dat") },
				BaseCount: func() int { return data.Size() },
				Log:       d.log,
			})

			if err := sched.Register(svcObj); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "register sitemap service failed: "+siteID+"."+name).ErrorAdd(true, err).Log()
			}

		case "blogping":
			var informers []sitemap.Informer
			for _, tmpl := range site.PingURLs {
				informers = append(informers, sitemap.NewBlogPingInformer(tmpl))
			}

			svcObj := sitemap.New(sitemap.Config{
				Name:      siteID + ".blogping",
				Period:    period,
				Informers: informers,
				Writer: func() sitemap.SitemapWriter {
					return sitemap.NewWriter(sitemap.WriterConfig{
						OutputDir:  filepath.Join(site.DataDir, "sitemap", "blogping"),
						PublicBase: site.HostURL,
						Stem:       "blogping",
						MaxBytes:   50 * 1024 * 1024,
						MaxURLs:    50000,
						Compress:   true,
					})
				},
				Data:      data,
				BasePath:  func() string { return filepath.Join(site.DataDir, "base.dat") },
				BaseCount: func() int { return data.Size() },
				Log:       d.log,
			})

			if err := sched.Register(svcObj); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "register blogping service failed: "+siteID).ErrorAdd(true, err).Log()
			}

		case "filescan":
			svcObj := provider.New(provider.Config{
				Name:      siteID + ".filescan",
				Period:    period,
				LimitPath: filepath.Join(site.DataDir, "filescan.limit"),
				Source:    &provider.FileScanner{DocRoot: site.DocRoot},
				Data:      data,
				Log:       d.log,
			})

			if err := sched.Register(svcObj); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "register filescan service failed: "+siteID).ErrorAdd(true, err).Log()
			}

		case "logparse":
			svcObj := provider.New(provider.Config{
				Name:      siteID + ".logparse",
				Period:    period,
				LimitPath: filepath.Join(site.DataDir, "logparse.limit"),
				Source:    &provider.LogParser{LogPath: site.DocRoot},
				Data:      data,
				Log:       d.log,
			})

			if err := sched.Register(svcObj); err != nil {
				d.logger().Entry(loglvl.WarnLevel, "register logparse service failed: "+siteID).ErrorAdd(true, err).Log()
			}
		}
	}
}

func (d *daemon) Dependencies() []string {
	d.mu.RLock()
	defer d.mu.RUnlock()

	return d.dep
}

func (d *daemon) SetDependencies(dep []string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.dep = dep
	return nil
}

func (d *daemon) DefaultConfig(indent string) []byte {
	return []byte("{}")
}

func (d *daemon) RegisterFlag(Command *spfcbr.Command) error {
	return nil
}

func (d *daemon) RegisterMonitorPool(p montps.FuncPool) {
}

func orInt(v, def int) int {
	if v <= 0 {
		return def
	}
	return v
}

func orDuration(v, def time.Duration) time.Duration {
	if v <= 0 {
		return def
	}
	return v
}

func orPerm(p libprm.Perm) libprm.Perm {
	return p
}

func toSet(list []string) map[string]struct{} {
	if len(list) == 0 {
		return nil
	}

	set := make(map[string]struct{}, len(list))
	for _, v := range list {
		set[v] = struct{}{}
	}
	return set
}

// robotsCachePath is where a fetched robots.txt body for a site is cached;
// the clean_robots CLI sub-command removes this file to force the next
// Start/Reload to go back to an allow-all filter until it is re-populated.
func robotsCachePath(dataDir string) string {
	return filepath.Join(dataDir, "robots.cache")
}

// siteRobots parses the cached robots.txt body at cachePath when robots
// filtering is enabled for the site and a cache file exists, falling back
// to an allow-all filter otherwise (no robots.txt fetched yet, or filtering
// disabled in the site setting).
func siteRobots(enabled bool, cachePath string) rbt.Filter {
	if !enabled {
		return rbt.AllowAll
	}

	body, err := os.ReadFile(cachePath)
	if err != nil {
		return rbt.AllowAll
	}

	return rbt.Parse(string(body), "")
}
