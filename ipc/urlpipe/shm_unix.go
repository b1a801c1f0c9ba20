//go:build !windows

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

import (
	"os"

	"golang.org/x/sys/unix"
)

// sharedSegment mmaps a regular file as the ring buffer's backing storage,
// the closest pure-Go equivalent of POSIX shared memory available without
// cgo: any process that mmaps the same path sees the same bytes.
type sharedSegment struct {
	f    *os.File
	data []byte
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

	data, err := unix.Mmap(int(f.Fd()), 0, size, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		f.Close()
		return nil, err
	}

	return &sharedSegment{f: f, data: data}, nil
}

func (s *sharedSegment) Bytes() []byte {
	return s.data
}

func (s *sharedSegment) Close() error {
	err := unix.Munmap(s.data)
	if cerr := s.f.Close(); err == nil {
		err = cerr
	}
	return err
}

func (s *sharedSegment) Remove(path string) error {
	return os.Remove(path)
}
