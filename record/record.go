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

// Package record holds the per-URL visiting history tracked by a site's
// table: how many times a URL has been seen, when its content last changed,
// and the fingerprint used to key it in the base/temp files.
package record

import (
	"encoding/binary"
)

// MaxURLLen bounds the URL stored inline in a VisitingRecord. Longer URLs
// are rejected by add(), per the fixed-width on-disk layout.
const MaxURLLen = 2048

// wireSize is the encoded length of one VisitingRecord: fingerprint (16) +
// url (MaxURLLen, length-prefixed) + 6 int64 timers/counters (48) + content
// hash (16).
const wireSize = 16 + 2 + MaxURLLen + 8*6 + 16

// VisitingRecord is one URL's tracked history within a site.
type VisitingRecord struct {
	Fingerprint   Fingerprint
	URL           string
	FirstAppear   int64
	LastAccess    int64
	LastChange    int64
	CountAccess   int64
	CountChange   int64
	LastModified  int64
	LastFileWrite int64
	ContentHash   Fingerprint
}

// Size returns the fixed encoded length of a VisitingRecord.
func Size() int {
	return wireSize
}

// Encode writes the fixed-width wire representation of r into b.
func (r VisitingRecord) Encode(b []byte) error {
	return r.encode(b)
}

// Decode reads a VisitingRecord from its fixed-width wire representation.
func Decode(b []byte) (VisitingRecord, error) {
	return decode(b)
}

func (r VisitingRecord) encode(b []byte) error {
	if len(b) < wireSize {
		return ErrorTruncatedRecord.Error(nil)
	}
	if len(r.URL) > MaxURLLen {
		return ErrorURLTooLong.Error(nil)
	}

	off := 0
	copy(b[off:off+16], r.Fingerprint[:])
	off += 16

	binary.LittleEndian.PutUint16(b[off:off+2], uint16(len(r.URL)))
	off += 2
	copy(b[off:off+MaxURLLen], r.URL)
	off += MaxURLLen

	for _, v := range []int64{
		r.FirstAppear, r.LastAccess, r.LastChange,
		r.CountAccess, r.CountChange, r.LastModified,
	} {
		binary.LittleEndian.PutUint64(b[off:off+8], uint64(v))
		off += 8
	}

	binary.LittleEndian.PutUint64(b[off:off+8], uint64(r.LastFileWrite))
	off += 8

	copy(b[off:off+16], r.ContentHash[:])

	return nil
}

func decode(b []byte) (VisitingRecord, error) {
	if len(b) < wireSize {
		return VisitingRecord{}, ErrorTruncatedRecord.Error(nil)
	}

	var r VisitingRecord
	off := 0

	copy(r.Fingerprint[:], b[off:off+16])
	off += 16

	n := binary.LittleEndian.Uint16(b[off : off+2])
	off += 2
	r.URL = string(b[off : off+int(n)])
	off += MaxURLLen

	vals := make([]*int64, 6)
	vals[0], vals[1], vals[2] = &r.FirstAppear, &r.LastAccess, &r.LastChange
	vals[3], vals[4], vals[5] = &r.CountAccess, &r.CountChange, &r.LastModified
	for _, v := range vals {
		*v = int64(binary.LittleEndian.Uint64(b[off : off+8]))
		off += 8
	}

	r.LastFileWrite = int64(binary.LittleEndian.Uint64(b[off : off+8]))
	off += 8

	copy(r.ContentHash[:], b[off:off+16])

	return r, nil
}

// Changed reports whether any of the fields Table.Add treats as a content
// signature differ from the stored record, per spec 4.E.
func (r VisitingRecord) Changed(contentHash Fingerprint, lastModified, lastFileWrite int64) bool {
	return r.ContentHash != contentHash ||
		r.LastModified != lastModified ||
		r.LastFileWrite != lastFileWrite
}
