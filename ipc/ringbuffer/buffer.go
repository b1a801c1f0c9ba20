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

package ringbuffer

import (
	"encoding/binary"

	libatm "github.com/sabouaram/sitemapgen/atomic"
)

// headerSize is the byte footprint of the begin/end indices that precede the
// record slots in the backing buffer.
const headerSize = 8

// Buffer is a fixed-capacity circular array of UrlRecord laid out over a flat
// byte slice so it can live inside a shared memory segment. Buffer itself does
// not synchronize access: callers (ipc/urlpipe) hold the RW mutex around every
// call, exactly as spec'd.
type Buffer struct {
	capacity int32
	raw      []byte

	wrapCount libatm.Value[uint64]
}

// New allocates an in-process Buffer with room for capacity records. At most
// capacity-1 records are ever simultaneously live; one slot is always the
// tombstone between end and begin.
func New(capacity int) (*Buffer, error) {
	if capacity < 2 {
		return nil, ErrorCapacityInvalid.Error(nil)
	}

	b := &Buffer{
		capacity: int32(capacity),
		raw:      make([]byte, headerSize+capacity*recordSize),
	}
	b.wrapCount = libatm.NewValueDefault[uint64](0, 0)

	return b, nil
}

// Attach wraps an existing byte slice (e.g. a shared memory mapping) of at
// least headerSize+capacity*Size() bytes as a Buffer without zeroing it, the
// sender side's view of a receiver-initialized segment.
func Attach(raw []byte, capacity int) (*Buffer, error) {
	if capacity < 2 {
		return nil, ErrorCapacityInvalid.Error(nil)
	}
	need := headerSize + capacity*recordSize
	if len(raw) < need {
		raw = append(raw, make([]byte, need-len(raw))...)
	}

	b := &Buffer{capacity: int32(capacity), raw: raw}
	b.wrapCount = libatm.NewValueDefault[uint64](0, 0)
	return b, nil
}

// Bytes returns the backing storage, for callers that need to place it behind
// an actual shared memory mapping.
func (b *Buffer) Bytes() []byte {
	return b.raw
}

// Capacity returns the fixed slot count.
func (b *Buffer) Capacity() int {
	return int(b.capacity)
}

func (b *Buffer) begin() int32 {
	return int32(binary.LittleEndian.Uint32(b.raw[0:4]))
}

func (b *Buffer) end() int32 {
	return int32(binary.LittleEndian.Uint32(b.raw[4:8]))
}

func (b *Buffer) setBegin(v int32) {
	binary.LittleEndian.PutUint32(b.raw[0:4], uint32(v))
}

func (b *Buffer) setEnd(v int32) {
	binary.LittleEndian.PutUint32(b.raw[4:8], uint32(v))
}

func (b *Buffer) slot(i int32) []byte {
	off := headerSize + int(i)*recordSize
	return b.raw[off : off+recordSize]
}

// Count computes the number of available records from begin/end. The caller
// must hold the RW mutex.
func (b *Buffer) Count() int {
	beg, end := b.begin(), b.end()
	return int((end - beg + b.capacity) % b.capacity)
}

// Write copies up to n records starting at end, advancing end modulo capacity
// and stopping one slot short of begin. It never blocks and never fails;
// fewer than n records may be written if the buffer is nearly full. The
// caller must hold the RW mutex.
func (b *Buffer) Write(records []UrlRecord, n int) int {
	if n > len(records) {
		n = len(records)
	}

	beg, end := b.begin(), b.end()
	written := 0

	for i := 0; i < n; i++ {
		if !records[i].fits() {
			// malformed/oversized record: drop it, it is never counted as written
			continue
		}

		next := (end + 1) % b.capacity
		if next == beg {
			// full: one slot must always remain the tombstone
			break
		}

		records[i].encode(b.slot(end))
		end = next
		written++
	}

	if end != b.end() {
		b.wrapCount.Store(b.wrapCount.Load() + 1)
	}
	b.setEnd(end)

	return written
}

// ReadAll copies every available record into dst (reusing its backing array
// when large enough) without advancing begin. The caller must hold the RW
// mutex and must Consume afterward.
func (b *Buffer) ReadAll(dst []UrlRecord) []UrlRecord {
	n := b.Count()
	if cap(dst) < n {
		dst = make([]UrlRecord, n)
	} else {
		dst = dst[:n]
	}

	beg := b.begin()
	for i := 0; i < n; i++ {
		dst[i] = decode(b.slot((beg + int32(i)) % b.capacity))
	}

	return dst
}

// Consume advances begin by n modulo capacity. Only the reader may call this,
// and only while holding the RW mutex.
func (b *Buffer) Consume(n int) {
	if n <= 0 {
		return
	}
	if n > b.Count() {
		n = b.Count()
	}

	beg := (b.begin() + int32(n)) % b.capacity
	b.setBegin(beg)
}

// WrapCount returns how many times Write has had to advance end across the
// zero boundary, a crude pressure indicator surfaced by runtimeinfo.
func (b *Buffer) WrapCount() uint64 {
	return b.wrapCount.Load()
}
