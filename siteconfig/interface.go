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

// Package siteconfig is the viper-backed setting glue behind the CLI's
// reload_setting/update_setting/get_site_setting/set_site_setting surface:
// it loads daemon-wide and per-site settings through the viper package into
// typed structs, keeps the file path each setting was loaded from so a later
// ReloadSetting/UpdateSetting round-trips without the caller repeating it,
// and decodes the sitemap-service cadence/enabled table the scheduler and
// sitemap services are configured from. The setting file's own format is out
// of scope, as is everything HTTP about the admin console; this package is
// only the load/save glue underneath both.
package siteconfig

import (
	"context"
	"time"

	perm "github.com/sabouaram/sitemapgen/file/perm"
)

// ServiceSetting configures one scheduler service (web/news/video/mobile/
// code/blogping/backup/filescan/logparse): whether it runs at all and at
// what cadence.
type ServiceSetting struct {
	Enabled bool          `mapstructure:"enabled"`
	Period  time.Duration `mapstructure:"period"`
}

// SiteSetting is one site's configuration: the sitedata.Manager knobs, the
// robots.txt/ping glue and the per-service schedule.
type SiteSetting struct {
	SiteID  string `mapstructure:"site_id"`
	DocRoot string `mapstructure:"doc_root"`
	HostURL string `mapstructure:"host_url"`
	DataDir string `mapstructure:"data_dir"`

	MaxURLInMemory int           `mapstructure:"max_url_in_memory"`
	MaxURLInDisk   int           `mapstructure:"max_url_in_disk"`
	MaxURLLife     time.Duration `mapstructure:"max_url_life"`
	MaxObsoleted   int           `mapstructure:"max_obsoleted"`
	MaxTempBytes   int64         `mapstructure:"max_temp_bytes"`

	DataDirPerm perm.Perm `mapstructure:"data_dir_perm"`

	RobotsEnabled bool   `mapstructure:"robots_enabled"`
	GeneratorTag  string `mapstructure:"generator_tag"`
	PingURLs      []string `mapstructure:"ping_urls"`

	QueryWhitelist []string `mapstructure:"query_whitelist"`

	Services map[string]ServiceSetting `mapstructure:"services"`
}

// DaemonSetting is the daemon-wide configuration: admin console exposure,
// scheduler pool sizing and the stored admin password hash.
type DaemonSetting struct {
	AdminRemote       bool   `mapstructure:"admin_remote"`
	AdminBindAddr     string `mapstructure:"admin_bind_addr"`
	AdminPasswordHash string `mapstructure:"admin_password_hash"`

	SchedulerWorkers    int           `mapstructure:"scheduler_workers"`
	SchedulerTickPeriod time.Duration `mapstructure:"scheduler_tick_period"`
	SchedulerQueueSize  int           `mapstructure:"scheduler_queue_size"`

	LogLevel string `mapstructure:"log_level"`
}

// Manager loads, caches and persists daemon and per-site settings.
type Manager interface {
	// LoadDaemonConfig reads path into the daemon setting and remembers
	// path for later ReloadSetting/UpdateSetting calls.
	LoadDaemonConfig(path string) (DaemonSetting, error)
	// SaveDaemonConfig writes the given setting to path and remembers path.
	SaveDaemonConfig(path string, cfg DaemonSetting) error
	// DaemonConfig returns the last loaded/saved daemon setting.
	DaemonConfig() (DaemonSetting, bool)

	// LoadSiteConfig reads path into siteID's setting and remembers path.
	LoadSiteConfig(siteID, path string) (SiteSetting, error)
	// SaveSiteConfig writes siteID's setting to path and remembers path.
	SaveSiteConfig(siteID, path string, cfg SiteSetting) error
	// SiteConfig returns siteID's last loaded/saved setting.
	SiteConfig(siteID string) (SiteSetting, bool)
	// SetSiteConfig updates siteID's in-memory setting without touching
	// disk; a later UpdateSetting call persists it.
	SetSiteConfig(siteID string, cfg SiteSetting)
	// Sites lists every site id with a loaded setting.
	Sites() []string

	// ReloadSetting re-reads the daemon setting and every site setting from
	// the paths they were last loaded/saved with.
	ReloadSetting() error
	// UpdateSetting writes the daemon setting and every site setting back
	// to the paths they were last loaded/saved with.
	UpdateSetting() error
}

// New returns an empty Manager.
func New(ctx context.Context) Manager {
	return newManager(ctx)
}
