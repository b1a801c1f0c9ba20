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
	spfvpr "github.com/spf13/viper"
)

// Unset removes each given key (and its subtree, for a non-leaf key) from the
// live config. spf13/viper has no native delete, and MergeConfigMap only ever
// adds: the surviving tree is replaced into a fresh instance via Set, which
// sits on viper's highest-priority override layer, so every Get* call after
// Unset reflects the removal.
func (m *model) Unset(keys ...string) error {
	if len(keys) == 0 {
		return nil
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	all := m.vpr.AllSettings()
	for _, k := range keys {
		unsetPath(all, splitKey(k))
	}

	fresh := spfvpr.New()
	if m.envPrefix != "" {
		fresh.SetEnvPrefix(m.envPrefix)
		fresh.AutomaticEnv()
	}
	setAll(fresh, "", all)

	m.vpr = fresh
	return nil
}

func splitKey(key string) []string {
	var parts []string
	start := 0
	for i := 0; i < len(key); i++ {
		if key[i] == '.' {
			parts = append(parts, key[start:i])
			start = i + 1
		}
	}
	return append(parts, key[start:])
}

func unsetPath(m map[string]interface{}, path []string) {
	if len(path) == 0 {
		return
	}

	if len(path) == 1 {
		delete(m, path[0])
		return
	}

	sub, ok := m[path[0]].(map[string]interface{})
	if !ok {
		return
	}
	unsetPath(sub, path[1:])
}

func setAll(v *spfvpr.Viper, prefix string, m map[string]interface{}) {
	for k, val := range m {
		full := k
		if prefix != "" {
			full = prefix + "." + k
		}

		if sub, ok := val.(map[string]interface{}); ok {
			setAll(v, full, sub)
		} else {
			v.Set(full, val)
		}
	}
}
