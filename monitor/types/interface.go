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

// Package types is the shared contract between a Component (config.Component,
// database.Database, ...) and the monitor/pool it registers itself into: it is
// kept separate from package monitor to avoid an import cycle between monitor and
// config.
package types

import (
	"context"
	"time"

	monsts "github.com/sabouaram/sitemapgen/monitor/status"
)

// FuncHealthCheck reports the current health of the monitored component.
type FuncHealthCheck func(ctx context.Context) error

// Config is the health-check cadence, decoded from viper the same way every other
// *Config struct in this module is.
type Config struct {
	Enable    bool          `mapstructure:"enable" json:"enable" yaml:"enable"`
	Interval  time.Duration `mapstructure:"interval" json:"interval" yaml:"interval"`
	FallCount uint8         `mapstructure:"fall_count" json:"fall_count" yaml:"fall_count"`
	RiseCount uint8         `mapstructure:"rise_count" json:"rise_count" yaml:"rise_count"`
}

// Monitor runs a FuncHealthCheck on a cadence and remembers the outcome.
type Monitor interface {
	// Name returns the monitor's current display name.
	Name() string
	// Status returns the last computed health status.
	Status() Status
	// LastCheck returns when the health check last ran.
	LastCheck() time.Time
	// LastError returns the error from the last failed check, or nil.
	LastError() error
	// Infos returns the monitor's current detail map.
	Infos() map[string]interface{}

	// SetConfig applies the health-check cadence; it may be called again to
	// reconfigure a running Monitor.
	SetConfig(ctx context.Context, cfg Config) error
	// SetHealthCheck installs the function invoked on every cadence tick.
	SetHealthCheck(fct FuncHealthCheck)

	// Start begins the health-check loop.
	Start(ctx context.Context) error
	// Stop halts the health-check loop.
	Stop()
	// IsRunning reports whether the loop is active.
	IsRunning() bool
}

// Status is re-exported from monitor/status so callers only need one import when
// they hold a Monitor.
type Status = monsts.Status

// Pool tracks every Monitor registered by every Component in the process, keyed by
// component key, for the admin console's aggregated health view.
type Pool interface {
	// MonitorSet registers or replaces a Monitor.
	MonitorSet(mon Monitor) error
	// MonitorGet returns the Monitor registered under key, or nil.
	MonitorGet(key string) Monitor
	// MonitorDel removes a Monitor.
	MonitorDel(key string)
	// MonitorList returns every registered key.
	MonitorList() []string
	// Walk iterates every Monitor; returning false from fct stops the iteration.
	Walk(fct func(key string, mon Monitor) bool)
}

// FuncPool resolves the process-wide monitor Pool. Components receive it through
// RegisterMonitorPool and call it lazily once their own Monitor is ready to
// register.
type FuncPool func() Pool
