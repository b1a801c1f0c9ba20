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

package viper

import (
	"context"
	"io"
	"sync"
	"time"

	libmap "github.com/go-viper/mapstructure/v2"
	spfvpr "github.com/spf13/viper"

	liblog "github.com/sabouaram/sitemapgen/logger"
)

type model struct {
	ctx context.Context
	log liblog.FuncLog

	mu  sync.Mutex
	vpr *spfvpr.Viper

	baseName   string
	envPrefix  string
	defCfg     func() io.Reader
	hooks      []libmap.DecodeHookFunc

	remProvider string
	remEndpoint string
	remPath     string
	remSecure   string
	remModel    interface{}
	remReload   func()
}

func (m *model) Viper() *spfvpr.Viper {
	return m.vpr
}

func (m *model) GetBool(key string) bool                      { return m.vpr.GetBool(key) }
func (m *model) GetString(key string) string                  { return m.vpr.GetString(key) }
func (m *model) GetInt(key string) int                        { return m.vpr.GetInt(key) }
func (m *model) GetInt32(key string) int32                    { return m.vpr.GetInt32(key) }
func (m *model) GetInt64(key string) int64                    { return m.vpr.GetInt64(key) }
func (m *model) GetUint(key string) uint                      { return m.vpr.GetUint(key) }
func (m *model) GetUint16(key string) uint16                  { return m.vpr.GetUint16(key) }
func (m *model) GetUint32(key string) uint32                  { return m.vpr.GetUint32(key) }
func (m *model) GetUint64(key string) uint64                  { return m.vpr.GetUint64(key) }
func (m *model) GetFloat64(key string) float64                { return m.vpr.GetFloat64(key) }
func (m *model) GetDuration(key string) time.Duration         { return m.vpr.GetDuration(key) }
func (m *model) GetTime(key string) time.Time                 { return m.vpr.GetTime(key) }
func (m *model) GetIntSlice(key string) []int                 { return m.vpr.GetIntSlice(key) }
func (m *model) GetStringSlice(key string) []string           { return m.vpr.GetStringSlice(key) }
func (m *model) GetStringMap(key string) map[string]interface{} {
	return m.vpr.GetStringMap(key)
}
func (m *model) GetStringMapString(key string) map[string]string {
	return m.vpr.GetStringMapString(key)
}
func (m *model) GetStringMapStringSlice(key string) map[string][]string {
	return m.vpr.GetStringMapStringSlice(key)
}

func (m *model) SetHomeBaseName(name string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.baseName = name
}

func (m *model) SetEnvVarsPrefix(prefix string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.envPrefix = prefix
	m.vpr.SetEnvPrefix(prefix)
	m.vpr.AutomaticEnv()
}

func (m *model) SetDefaultConfig(fct func() io.Reader) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.defCfg = fct
}

func (m *model) SetRemoteProvider(provider string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remProvider = provider
}

func (m *model) SetRemoteEndpoint(endpoint string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remEndpoint = endpoint
}

func (m *model) SetRemotePath(path string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remPath = path
}

func (m *model) SetRemoteSecureKey(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remSecure = key
}

func (m *model) SetRemoteModel(mdl interface{}) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remModel = mdl
}

func (m *model) SetRemoteReloadFunc(fct func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.remReload = fct
}
