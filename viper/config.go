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
	"path/filepath"

	homedir "github.com/mitchellh/go-homedir"

	liberr "github.com/sabouaram/sitemapgen/errors"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

// SetConfigFile sets path as the explicit config file. An empty path resolves
// to "$HOME/.<base-name>" using the name registered through SetHomeBaseName.
func (m *model) SetConfigFile(path string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if path != "" {
		m.vpr.SetConfigFile(path)
		return nil
	}

	if m.baseName == "" {
		return ErrorBasePathNotFound.Error()
	}

	home, err := homedir.Dir()
	if err != nil {
		return ErrorHomePathNotFound.Error(err)
	}

	m.vpr.SetConfigFile(filepath.Join(home, "."+m.baseName))
	return nil
}

// Config loads the config tree: the explicit/home config file first, falling
// back to the registered default reader, then the remote provider if one was
// configured. lvlKO/lvlOK are the CheckError levels the outcome is logged at.
func (m *model) Config(lvlKO, lvlOK loglvl.Level) liberr.Error {
	m.mu.Lock()
	defCfg := m.defCfg
	m.mu.Unlock()

	err := m.vpr.ReadInConfig()
	if err == nil {
		if e := m.readRemote(); e != nil {
			return e
		}

		m.log().CheckError(lvlKO, lvlOK, "read config file", nil)
		return nil
	}

	if defCfg != nil {
		if e := m.vpr.ReadConfig(defCfg()); e != nil {
			m.log().CheckError(lvlKO, loglvl.NilLevel, "read default config", e)
			return ErrorConfigReadDefault.Error(e)
		}

		m.log().CheckError(lvlKO, lvlOK, "read default config", nil)
		return ErrorConfigIsDefault.Error(err)
	}

	m.log().CheckError(lvlKO, loglvl.NilLevel, "read config file", err)
	return ErrorConfigRead.Error(err)
}

func (m *model) readRemote() liberr.Error {
	m.mu.Lock()
	provider, endpoint, path, secure, mdl := m.remProvider, m.remEndpoint, m.remPath, m.remSecure, m.remModel
	m.mu.Unlock()

	if provider == "" || endpoint == "" || path == "" {
		return nil
	}

	if secure != "" {
		if err := m.vpr.AddSecureRemoteProvider(provider, endpoint, path, secure); err != nil {
			return ErrorRemoteProviderSecure.Error(err)
		}
	} else if err := m.vpr.AddRemoteProvider(provider, endpoint, path); err != nil {
		return ErrorRemoteProvider.Error(err)
	}

	if err := m.vpr.ReadRemoteConfig(); err != nil {
		return ErrorRemoteProviderRead.Error(err)
	}

	if mdl != nil {
		if err := m.vpr.Unmarshal(mdl); err != nil {
			return ErrorRemoteProviderMarshall.Error(err)
		}
	}

	m.mu.Lock()
	reload := m.remReload
	m.mu.Unlock()
	if reload != nil {
		reload()
	}

	return nil
}
