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

func (m *model) decoderOpt() spfvpr.DecoderConfigOption {
	hook := m.decodeHook()
	return func(c *spfvpr.DecoderConfig) {
		c.DecodeHook = hook
	}
}

// Unmarshal decodes the whole config tree into rawVal, applying every
// registered decode hook.
func (m *model) Unmarshal(rawVal interface{}) error {
	return m.vpr.Unmarshal(rawVal, m.decoderOpt())
}

// UnmarshalKey decodes the subtree at key into rawVal, applying every
// registered decode hook.
func (m *model) UnmarshalKey(key string, rawVal interface{}) error {
	return m.vpr.UnmarshalKey(key, rawVal, m.decoderOpt())
}

// UnmarshalExact is like Unmarshal but fails if the config tree has keys
// rawVal's type does not declare.
func (m *model) UnmarshalExact(rawVal interface{}) error {
	return m.vpr.UnmarshalExact(rawVal, m.decoderOpt())
}
