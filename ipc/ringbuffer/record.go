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

// Package ringbuffer is the shared-memory carrier for UrlRecord: a fixed-size,
// pointer-free wire struct that webserver plugins write and the daemon reads
// across a process boundary. The on-wire layout never changes shape, so it can
// sit directly inside a shared memory segment or an mmap'd anchor file.
package ringbuffer

import (
	"encoding/binary"
)

const (
	// MaxURLLen is the fixed on-wire size of UrlRecord.URL, including the
	// terminating NUL.
	MaxURLLen = 1024
	// MaxHostLen is the fixed on-wire size of UrlRecord.Host, including scheme
	// and optional port.
	MaxHostLen = 256
	// MaxSiteIDLen is the fixed on-wire size of UrlRecord.SiteID.
	MaxSiteIDLen = 128

	// recordSize is the total byte footprint of one UrlRecord slot: the three
	// fixed strings plus five 8-byte integer fields (status is widened to
	// int64 on the wire so every field is 8-byte aligned).
	recordSize = MaxURLLen + MaxHostLen + MaxSiteIDLen + 8*5
)

// UrlRecord is the fixed-size URL-visit record carried by the ring buffer, one
// per webserver hit observed by the plugin.
type UrlRecord struct {
	URL           string
	Host          string
	SiteID        string
	Status        int64
	ContentHash   int64
	LastModified  int64
	LastFileWrite int64
	LastAccess    int64
}

// Size returns the fixed on-wire size of one record slot.
func Size() int {
	return recordSize
}

func putFixedString(b []byte, s string, n int) {
	clear(b[:n])
	if len(s) >= n {
		s = s[:n-1]
	}
	copy(b, s)
}

func getFixedString(b []byte) string {
	i := 0
	for i < len(b) && b[i] != 0 {
		i++
	}
	return string(b[:i])
}

// encode serializes r into b, which must be at least Size() bytes.
func (r UrlRecord) encode(b []byte) {
	off := 0

	putFixedString(b[off:off+MaxURLLen], r.URL, MaxURLLen)
	off += MaxURLLen

	putFixedString(b[off:off+MaxHostLen], r.Host, MaxHostLen)
	off += MaxHostLen

	putFixedString(b[off:off+MaxSiteIDLen], r.SiteID, MaxSiteIDLen)
	off += MaxSiteIDLen

	binary.LittleEndian.PutUint64(b[off:], uint64(r.Status))
	off += 8
	binary.LittleEndian.PutUint64(b[off:], uint64(r.ContentHash))
	off += 8
	binary.LittleEndian.PutUint64(b[off:], uint64(r.LastModified))
	off += 8
	binary.LittleEndian.PutUint64(b[off:], uint64(r.LastFileWrite))
	off += 8
	binary.LittleEndian.PutUint64(b[off:], uint64(r.LastAccess))
}

// decode deserializes a record from b, which must be at least Size() bytes.
func decode(b []byte) UrlRecord {
	var r UrlRecord
	off := 0

	r.URL = getFixedString(b[off : off+MaxURLLen])
	off += MaxURLLen

	r.Host = getFixedString(b[off : off+MaxHostLen])
	off += MaxHostLen

	r.SiteID = getFixedString(b[off : off+MaxSiteIDLen])
	off += MaxSiteIDLen

	r.Status = int64(binary.LittleEndian.Uint64(b[off:]))
	off += 8
	r.ContentHash = int64(binary.LittleEndian.Uint64(b[off:]))
	off += 8
	r.LastModified = int64(binary.LittleEndian.Uint64(b[off:]))
	off += 8
	r.LastFileWrite = int64(binary.LittleEndian.Uint64(b[off:]))
	off += 8
	r.LastAccess = int64(binary.LittleEndian.Uint64(b[off:]))

	return r
}

// fits reports whether r's variable-length fields fit in the fixed slot sizes.
func (r UrlRecord) fits() bool {
	return len(r.URL) < MaxURLLen && len(r.Host) < MaxHostLen && len(r.SiteID) < MaxSiteIDLen
}
