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

// Package info carries the display name and free-form detail map a Monitor exposes
// to the admin console, decoupled from the health-check logic itself.
package info

import "errors"

// ErrEmptyName is returned by New when the default name is blank.
var ErrEmptyName = errors.New("monitor info: default name must not be empty")

// FuncName resolves the current display name, e.g. from a site's configured host.
type FuncName func() (string, error)

// FuncInfo resolves the current detail map surfaced to the admin console, e.g.
// {"urls_count": 1532, "last_update": "..."}.
type FuncInfo func() (map[string]interface{}, error)

// Info is the static identity and dynamic detail of a monitored component.
type Info interface {
	// Name returns the current display name: the registered FuncName if any, the
	// default name otherwise.
	Name() (string, error)
	// Infos returns the current detail map, or an empty map if none was registered.
	Infos() (map[string]interface{}, error)
	// RegisterName overrides the name resolution.
	RegisterName(fct FuncName)
	// RegisterInfo overrides the detail resolution.
	RegisterInfo(fct FuncInfo)
}

// New returns an Info defaulting Name() to defaultName until RegisterName is
// called.
func New(defaultName string) (Info, error) {
	if defaultName == "" {
		return nil, ErrEmptyName
	}

	return &model{
		defaultName: defaultName,
	}, nil
}
