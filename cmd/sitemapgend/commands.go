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
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/sabouaram/sitemapgen/config"
	"github.com/sabouaram/sitemapgen/console"
	"github.com/sabouaram/sitemapgen/siteconfig"
	spfcbr "github.com/spf13/cobra"
	"golang.org/x/crypto/bcrypt"
)

// ensureFunc registers the siteconfig component from the parsed CLI flags.
// Every sub-command below calls it in PreRunE, on top of the root command's
// own PersistentPreRunE, so it also behaves when cobra dispatches a command
// that skips persistent hooks under test.
type ensureFunc func()

func getDaemon(cfg config.Config) (*daemon, error) {
	cpt := cfg.ComponentGet(daemonComponentType)
	if cpt == nil {
		return nil, fmt.Errorf("daemon component not registered")
	}

	d, ok := cpt.(*daemon)
	if !ok {
		return nil, fmt.Errorf("daemon component has unexpected type")
	}

	return d, nil
}

func getSiteManager(cfg config.Config) (siteconfig.Manager, error) {
	cpt := cfg.ComponentGet(siteconfig.ComponentType)
	if cpt == nil {
		return nil, fmt.Errorf("siteconfig component not registered")
	}

	sc, ok := cpt.(interface{ Manager() siteconfig.Manager })
	if !ok {
		return nil, fmt.Errorf("siteconfig component has no Manager accessor")
	}

	return sc.Manager(), nil
}

// newServiceCommand is the daemon's run surface: start loads every site's
// setting, brings the scheduler and urlpipe receivers up and blocks until a
// signal arrives; stop/restart drive the same config.Config lifecycle the
// interactive shell's "service" command uses (config/shell.go).
func newServiceCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	cmd := &spfcbr.Command{
		Use:   "service",
		Short: "Manage the sitemap daemon process",
	}

	cmd.AddCommand(&spfcbr.Command{
		Use:   "start",
		Short: "Load site settings and run until terminated",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			if err := cfg.Start(); err != nil {
				return err
			}

			config.WaitNotify()
			cfg.Stop()
			return nil
		},
	})

	cmd.AddCommand(&spfcbr.Command{
		Use:   "stop",
		Short: "Stop a running daemon's components in this process",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()
			cfg.Stop()
			return nil
		},
	})

	cmd.AddCommand(&spfcbr.Command{
		Use:   "restart",
		Short: "Stop then start the daemon's components in this process",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()
			cfg.Stop()
			return cfg.Start()
		},
	})

	return cmd
}

// newReloadSettingCommand re-reads the daemon and every site setting from
// the files they were last loaded from, then rebuilds the running pipelines
// (siteconfig.Manager.ReloadSetting + daemon.Reload, per spec 4.L).
func newReloadSettingCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "reload_setting",
		Short: "Reload daemon and site settings from disk",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			if err := mgr.ReloadSetting(); err != nil {
				return err
			}

			return cfg.Reload()
		},
	}
}

// newUpdateSettingCommand persists the in-memory daemon and site settings
// back to the files they were loaded from, without touching the running
// pipelines.
func newUpdateSettingCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "update_setting",
		Short: "Write daemon and site settings back to disk",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			return mgr.UpdateSetting()
		},
	}
}

// newGetSiteSettingCommand prints one site's currently loaded setting.
func newGetSiteSettingCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "get_site_setting <site_id>",
		Short: "Print a site's currently loaded setting",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			site, ok := mgr.SiteConfig(args[0])
			if !ok {
				return fmt.Errorf("site %q is not configured", args[0])
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%+v\n", site)
			return nil
		},
	}
}

// newSetSiteSettingCommand flips one service's enabled flag for a site in
// memory; update_setting persists the change afterward.
func newSetSiteSettingCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	var service string
	var enable bool

	cmd := &spfcbr.Command{
		Use:   "set_site_setting <site_id>",
		Short: "Enable/disable one scheduler service for a site",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			site, ok := mgr.SiteConfig(args[0])
			if !ok {
				return fmt.Errorf("site %q is not configured", args[0])
			}

			if service != "" {
				svc := site.Services[service]
				svc.Enabled = enable
				if site.Services == nil {
					site.Services = map[string]siteconfig.ServiceSetting{}
				}
				site.Services[service] = svc
			}

			mgr.SetSiteConfig(args[0], site)
			return nil
		},
	}

	cmd.Flags().StringVar(&service, "service", "", "service name to enable/disable (web, news, blogping, filescan, logparse, ...)")
	cmd.Flags().BoolVar(&enable, "enable", true, "enabled state to set")

	return cmd
}

// newResetPasswordCommand prompts for a new admin console password and
// stores its bcrypt hash in the daemon setting, per the sha256 package's own
// guidance that password hashing wants bcrypt/argon2 rather than a plain
// content hash.
func newResetPasswordCommand(cfg config.Config, ensure ensureFunc, daemonConfigPath *string) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "reset_password",
		Short: "Set a new admin console password",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()
			return setAdminPassword(cfg, *daemonConfigPath)
		},
	}
}

// newChangePasswordCommand verifies the current admin console password
// before accepting a new one.
func newChangePasswordCommand(cfg config.Config, ensure ensureFunc, daemonConfigPath *string) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "change_password",
		Short: "Change the admin console password",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			dmn, _ := mgr.DaemonConfig()

			current, err := console.PromptPassword("current password")
			if err != nil {
				return err
			}

			if dmn.AdminPasswordHash != "" {
				if err := bcrypt.CompareHashAndPassword([]byte(dmn.AdminPasswordHash), []byte(current)); err != nil {
					return fmt.Errorf("current password does not match")
				}
			}

			return setAdminPassword(cfg, *daemonConfigPath)
		},
	}
}

func setAdminPassword(cfg config.Config, daemonConfigPath string) error {
	mgr, err := getSiteManager(cfg)
	if err != nil {
		return err
	}

	pass, err := console.PromptPassword("new password")
	if err != nil {
		return err
	}

	confirm, err := console.PromptPassword("confirm new password")
	if err != nil {
		return err
	}

	if pass != confirm {
		return fmt.Errorf("passwords do not match")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(pass), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	dmn, _ := mgr.DaemonConfig()
	dmn.AdminPasswordHash = string(hash)

	return mgr.SaveDaemonConfig(daemonConfigPath, dmn)
}

// newRemoteAdminCommand toggles whether the admin console binds to a remote
// address (DaemonSetting.AdminRemote) versus loopback-only.
func newRemoteAdminCommand(cfg config.Config, ensure ensureFunc, daemonConfigPath *string) *spfcbr.Command {
	cmd := &spfcbr.Command{
		Use:   "remote_admin <enable|disable>",
		Short: "Enable or disable remote access to the admin console",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			dmn, _ := mgr.DaemonConfig()

			switch args[0] {
			case "enable":
				dmn.AdminRemote = true
			case "disable":
				dmn.AdminRemote = false
			default:
				return fmt.Errorf("expected \"enable\" or \"disable\", got %q", args[0])
			}

			return mgr.SaveDaemonConfig(*daemonConfigPath, dmn)
		},
	}

	return cmd
}

// newCleanRobotsCommand deletes a site's cached robots.txt body so the next
// Start/Reload falls back to an allow-all filter until it is re-fetched
// (daemon.go's siteRobots/robotsCachePath).
func newCleanRobotsCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "clean_robots <site_id>",
		Short: "Remove a site's cached robots.txt body",
		Args:  spfcbr.ExactArgs(1),
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			mgr, err := getSiteManager(cfg)
			if err != nil {
				return err
			}

			site, ok := mgr.SiteConfig(args[0])
			if !ok {
				return fmt.Errorf("site %q is not configured", args[0])
			}

			path := robotsCachePath(site.DataDir)
			if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
				return err
			}

			return nil
		},
	}
}

// newDebugCommand prints every registered scheduler service and every
// registered site's runtime status, for operators diagnosing a stuck pipeline.
func newDebugCommand(cfg config.Config, ensure ensureFunc) *spfcbr.Command {
	return &spfcbr.Command{
		Use:   "debug",
		Short: "Print scheduler services and site runtime status",
		RunE: func(cmd *spfcbr.Command, args []string) error {
			ensure()

			d, err := getDaemon(cfg)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			if sched := d.Scheduler(); sched != nil {
				fmt.Fprintln(out, "services:")
				for _, name := range sched.Services() {
					fmt.Fprintf(out, "  %s\n", name)
				}
			}

			if rt := d.Runtime(); rt != nil {
				fmt.Fprintln(out, "sites:")
				for _, id := range rt.List() {
					info, ok := rt.Get(id)
					if !ok {
						continue
					}
					fmt.Fprintf(out, "  %s: size=%d last_update=%s\n", id, info.Data().Size(), info.LastUpdate())
				}
			}

			return nil
		},
	}
}

// defaultDaemonConfig is the template the "conf" sub-command writes when an
// operator asks for a fresh daemon-wide setting file.
func defaultDaemonConfig() io.Reader {
	const tpl = `{
  "admin_remote": false,
  "admin_bind_addr": "127.0.0.1:8443",
  "admin_password_hash": "",
  "scheduler_workers": 4,
  "scheduler_tick_period": "1s",
  "scheduler_queue_size": 64,
  "log_level": "info"
}
`
	return bytes.NewBufferString(tpl)
}
