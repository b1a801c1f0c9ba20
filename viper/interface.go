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

// Package viper wraps github.com/spf13/viper with the home/base-name config
// path resolution, decode-hook composition and structured-logging glue every
// config.Component in this module expects from the vpr libvpr.FuncViper it is
// Init'd with.
package viper

import (
	"context"
	"io"
	"time"

	libmap "github.com/go-viper/mapstructure/v2"
	spfvpr "github.com/spf13/viper"

	liberr "github.com/sabouaram/sitemapgen/errors"
	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

// FuncViper returns the shared Viper instance; config.Component implementations
// are handed this instead of a concrete pointer so they cannot outlive a reload.
type FuncViper func() Viper

// Viper is the per-process configuration source: one underlying spf13/viper
// instance plus the home-directory/base-name resolution, remote-provider
// setup and decode-hook registration every component configures it through.
type Viper interface {
	// Viper returns the underlying spf13/viper instance for direct access.
	Viper() *spfvpr.Viper

	// SetConfigFile sets an explicit config file path. An empty path falls
	// back to "$HOME/.<base-name>" (or "$HOME/.<base-name>/config" when the
	// base name alone resolves to a directory), which requires
	// SetHomeBaseName to have been called first.
	SetConfigFile(path string) error
	// SetHomeBaseName sets the base file/dir name used to resolve the
	// default config path and the environment variable prefix fallback.
	SetHomeBaseName(name string)
	// SetEnvVarsPrefix sets the prefix viper expects on environment
	// variables (e.g. "MYAPP" for MYAPP_SECTION_KEY).
	SetEnvVarsPrefix(prefix string)
	// SetDefaultConfig registers a fallback config reader used by Config
	// when no config file can be read.
	SetDefaultConfig(fct func() io.Reader)

	// SetRemoteProvider sets the remote config backend (e.g. "etcd",
	// "consul").
	SetRemoteProvider(provider string)
	// SetRemoteEndpoint sets the remote backend's endpoint address.
	SetRemoteEndpoint(endpoint string)
	// SetRemotePath sets the key path read from the remote backend.
	SetRemotePath(path string)
	// SetRemoteSecureKey enables envelope decryption with the given key for
	// secure remote providers.
	SetRemoteSecureKey(key string)
	// SetRemoteModel registers the struct instance remote config is
	// unmarshalled into after every successful remote read.
	SetRemoteModel(model interface{})
	// SetRemoteReloadFunc registers a callback invoked after a remote
	// config watch delivers a new revision.
	SetRemoteReloadFunc(fct func())

	// Config loads the configuration: file-based first, then the default
	// reader if no file could be read, then (if configured) the remote
	// provider. lvlKO/lvlOK drive the CheckError-style logging of the
	// outcome.
	Config(lvlKO, lvlOK loglvl.Level) liberr.Error

	// HookRegister adds a mapstructure decode hook applied by Unmarshal/
	// UnmarshalKey/UnmarshalExact.
	HookRegister(hook libmap.DecodeHookFunc)
	// HookReset clears every registered decode hook.
	HookReset()

	// Unmarshal decodes the whole config tree into rawVal.
	Unmarshal(rawVal interface{}) error
	// UnmarshalKey decodes the subtree at key into rawVal.
	UnmarshalKey(key string, rawVal interface{}) error
	// UnmarshalExact is like Unmarshal but fails on unused config keys.
	UnmarshalExact(rawVal interface{}) error

	// Unset clears the given keys (and their subtrees) from the live
	// config tree; with no keys it is a no-op.
	Unset(keys ...string) error

	GetBool(key string) bool
	GetString(key string) string
	GetInt(key string) int
	GetInt32(key string) int32
	GetInt64(key string) int64
	GetUint(key string) uint
	GetUint16(key string) uint16
	GetUint32(key string) uint32
	GetUint64(key string) uint64
	GetFloat64(key string) float64
	GetDuration(key string) time.Duration
	GetTime(key string) time.Time
	GetIntSlice(key string) []int
	GetStringSlice(key string) []string
	GetStringMap(key string) map[string]interface{}
	GetStringMapString(key string) map[string]string
	GetStringMapStringSlice(key string) map[string][]string
}

// New returns a Viper backed by a fresh spf13/viper instance. log may be nil,
// in which case Config logs through a throwaway default Logger.
func New(ctx context.Context, log liblog.FuncLog) Viper {
	if log == nil {
		log = func() liblog.Logger {
			return liblog.New(ctx)
		}
	}

	return &model{
		ctx: ctx,
		log: log,
		vpr: spfvpr.New(),
	}
}
