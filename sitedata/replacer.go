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

package sitedata

import (
	"net/url"
	"strings"

	rec "github.com/sabouaram/sitemapgen/record"
)

// Replacer rewrites a URL. Apply returns the rewritten URL and whether it
// matched; the replacer chain stops at the first match.
type Replacer interface {
	Apply(u string) (string, bool)
}

// NewStringReplacer builds a Replacer that substitutes from the first
// occurrence of old, matching only when old is present.
func NewStringReplacer(old, new string) Replacer {
	return stringReplacer{old: old, new: new}
}

type stringReplacer struct {
	old, new string
}

func (r stringReplacer) Apply(u string) (string, bool) {
	if !strings.Contains(u, r.old) {
		return u, false
	}
	return strings.Replace(u, r.old, r.new, 1), true
}

// applyReplacers runs the chain in order, stopping at the first match, and
// truncates the result to rec.MaxURLLen.
func applyReplacers(u string, chain []Replacer) string {
	for _, r := range chain {
		if out, ok := r.Apply(u); ok {
			u = out
			break
		}
	}

	if len(u) > rec.MaxURLLen {
		u = u[:rec.MaxURLLen]
	}

	return u
}

// filterQuery drops query key=value pairs whose key is not in whitelist.
// An empty whitelist leaves the query string untouched.
func filterQuery(u string, whitelist map[string]struct{}) string {
	if len(whitelist) == 0 {
		return u
	}

	parsed, err := url.Parse(u)
	if err != nil || parsed.RawQuery == "" {
		return u
	}

	values := parsed.Query()
	for key := range values {
		if _, ok := whitelist[key]; !ok {
			values.Del(key)
		}
	}

	parsed.RawQuery = values.Encode()

	return parsed.String()
}
