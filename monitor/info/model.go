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

package info

import "sync"

type model struct {
	mu          sync.RWMutex
	defaultName string
	fctName     FuncName
	fctInfo     FuncInfo
}

func (m *model) Name() (string, error) {
	m.mu.RLock()
	fct := m.fctName
	def := m.defaultName
	m.mu.RUnlock()

	if fct == nil {
		return def, nil
	}

	return fct()
}

func (m *model) Infos() (map[string]interface{}, error) {
	m.mu.RLock()
	fct := m.fctInfo
	m.mu.RUnlock()

	if fct == nil {
		return map[string]interface{}{}, nil
	}

	return fct()
}

func (m *model) RegisterName(fct FuncName) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fctName = fct
}

func (m *model) RegisterInfo(fct FuncInfo) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fctInfo = fct
}
