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

// Package robots parses a site's robots.txt and answers whether a given URL
// path is allowed, for the "User-agent: *" group plus any group matching a
// configured agent name.
package robots

import (
	"bufio"
	"strings"
)

// Filter answers Allowed(path) for a parsed robots.txt.
type Filter interface {
	Allowed(path string) bool
}

type rule struct {
	prefix string
	allow  bool
}

type filter struct {
	rules []rule
}

// Parse reads a robots.txt body and keeps directives from the "*" group and
// any group matching agent (case-insensitive). Groups are separated by
// "User-agent:" lines; Allow/Disallow lines within a matching group are
// kept in file order, longest-prefix-wins is resolved at query time.
func Parse(body string, agent string) Filter {
	f := &filter{}

	var inGroup bool
	scanner := bufio.NewScanner(strings.NewReader(body))

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, val, ok := splitDirective(line)
		if !ok {
			continue
		}

		switch strings.ToLower(key) {
		case "user-agent":
			inGroup = val == "*" || (agent != "" && strings.EqualFold(val, agent))
		case "allow":
			if inGroup && val != "" {
				f.rules = append(f.rules, rule{prefix: val, allow: true})
			}
		case "disallow":
			if inGroup && val != "" {
				f.rules = append(f.rules, rule{prefix: val, allow: false})
			}
		}
	}

	return f
}

func splitDirective(line string) (key, val string, ok bool) {
	idx := strings.IndexByte(line, ':')
	if idx < 0 {
		return "", "", false
	}

	return strings.TrimSpace(line[:idx]), strings.TrimSpace(line[idx+1:]), true
}

// Allowed reports whether path is permitted, per the longest matching
// Allow/Disallow prefix; ties favor Allow. No matching rule means allowed.
func (f *filter) Allowed(path string) bool {
	best := -1
	allow := true

	for _, r := range f.rules {
		if !strings.HasPrefix(path, r.prefix) {
			continue
		}
		if len(r.prefix) > best || (len(r.prefix) == best && r.allow) {
			best = len(r.prefix)
			allow = r.allow
		}
	}

	return allow
}

// AllowAll is a Filter that permits every path, used when a site has no
// robots.txt configured.
var AllowAll Filter = allowAll{}

type allowAll struct{}

func (allowAll) Allowed(string) bool { return true }
