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

// Command sitemapgend is the sitemap generation daemon: it hosts the
// per-site data pipelines (urlpipe receiver -> sitedata manager), the
// scheduler driving sitemap/backup/filescan/logparse/blog-ping services, the
// admin console transport, and the CLI/shell surface operators use to
// control all of it.
package main

import (
	"fmt"
	"os"
	"strings"
	"sync"

	libcbr "github.com/sabouaram/sitemapgen/cobra"
	"github.com/sabouaram/sitemapgen/config"
	"github.com/sabouaram/sitemapgen/siteconfig"
	libver "github.com/sabouaram/sitemapgen/version"
	spfcbr "github.com/spf13/cobra"
)

// buildDate/buildCommit/buildRelease are set via -ldflags at build time.
var (
	buildDate    = "2026-07-31T00:00:00Z"
	buildCommit  = "dev"
	buildRelease = "0.0.0-dev"
)

func newAppVersion() libver.Version {
	return libver.NewVersion(
		libver.License_MIT,
		"sitemapgend",
		"sitemap generation engine daemon",
		buildDate,
		buildCommit,
		buildRelease,
		"sabouaram",
		"SITEMAPGEND",
		daemon{},
		1,
	)
}

func main() {
	vrs := newAppVersion()
	cfg := config.New(vrs)

	cfg.ComponentSet(daemonComponentType, newDaemon())

	app := libcbr.New()
	app.SetVersion(vrs)
	app.Init()

	var cfgFile string
	if err := app.SetFlagConfig(true, &cfgFile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var verbose int
	app.SetFlagVerbose(true, &verbose)

	var daemonConfigPath string
	app.AddFlagString(true, &daemonConfigPath, "daemon-config", "d", "/etc/sitemapgend/daemon.json", "path to the daemon-wide setting file")

	siteFiles := map[string]string{}
	app.AddFlagStringToString(true, &siteFiles, "site", "s", map[string]string{}, "site_id=path/to/site-setting.json, repeatable")

	var once sync.Once
	registerSiteConfig := func() {
		once.Do(func() {
			files := make([]siteconfig.SiteFile, 0, len(siteFiles))
			for id, path := range siteFiles {
				files = append(files, siteconfig.SiteFile{SiteID: id, Path: path})
			}
			cfg.ComponentSet(siteconfig.ComponentType, siteconfig.New(daemonConfigPath, files))
		})
	}

	app.AddCommand(
		newServiceCommand(cfg, registerSiteConfig),
		newReloadSettingCommand(cfg, registerSiteConfig),
		newUpdateSettingCommand(cfg, registerSiteConfig),
		newGetSiteSettingCommand(cfg, registerSiteConfig),
		newSetSiteSettingCommand(cfg, registerSiteConfig),
		newResetPasswordCommand(cfg, registerSiteConfig, &daemonConfigPath),
		newChangePasswordCommand(cfg, registerSiteConfig, &daemonConfigPath),
		newRemoteAdminCommand(cfg, registerSiteConfig, &daemonConfigPath),
		newCleanRobotsCommand(cfg, registerSiteConfig),
		newDebugCommand(cfg, registerSiteConfig),
	)

	app.AddCommandCompletion()
	app.AddCommandConfigure("conf", "sitemapgend", defaultDaemonConfig)
	app.AddCommandPrintErrorCode(func(item, value string) {
		fmt.Fprintf(os.Stdout, "%s: %s\n", item, value) // nolint
	})

	app.Cobra().PersistentPreRunE = func(cmd *spfcbr.Command, args []string) error {
		registerSiteConfig()
		return nil
	}

	if err := app.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, strings.TrimSpace(err.Error()))
		os.Exit(1)
	}
}
