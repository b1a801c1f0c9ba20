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
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"
)

// hostCounter tracks how often each host has been observed, so a site
// without a configured host URL can fall back to the most popular one.
type hostCounter struct {
	counts map[string]int64
}

func newHostCounter() *hostCounter {
	return &hostCounter{counts: make(map[string]int64)}
}

func (h *hostCounter) bump(host string) {
	if host == "" {
		return
	}
	h.counts[host]++
}

func (h *hostCounter) top() string {
	var best string
	var bestCount int64 = -1

	for host, count := range h.counts {
		if count > bestCount {
			best = host
			bestCount = count
		}
	}

	return best
}

func (h *hostCounter) save(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for host, count := range h.counts {
		if _, err = fmt.Fprintf(w, "%s\t%d\n", host, count); err != nil {
			return err
		}
	}

	return w.Flush()
}

func (h *hostCounter) load(path string) error {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return err
	}

	h.counts = make(map[string]int64)
	for _, line := range strings.Split(string(data), "\n") {
		if line == "" {
			continue
		}
		parts := strings.SplitN(line, "\t", 2)
		if len(parts) != 2 {
			continue
		}
		n, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			continue
		}
		h.counts[parts[0]] = n
	}

	return nil
}
