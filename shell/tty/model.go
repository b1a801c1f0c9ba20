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

package tty

import (
	"io"
	"os"
	"sync"

	"golang.org/x/term"
)

// fdReader is implemented by *os.File; any other io.Reader is treated as a
// non-terminal, matching what New's tests expect for a plain reader.
type fdReader interface {
	Fd() uintptr
}

type saver struct {
	mu    sync.Mutex
	fd    int
	isTTY bool
	state *term.State
}

func newSaver(r io.Reader) (*saver, error) {
	if r == nil {
		r = os.Stdin
	}

	s := &saver{fd: -1}

	f, ok := r.(fdReader)
	if !ok {
		return s, nil
	}

	s.fd = int(f.Fd())
	s.isTTY = term.IsTerminal(s.fd)

	if s.isTTY {
		st, err := term.GetState(s.fd)
		if err != nil {
			return nil, ErrorTTYFailed
		}
		s.state = st
	}

	return s, nil
}

func (s *saver) IsTerminal() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.isTTY
}

func (s *saver) Restore() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isTTY || s.state == nil {
		return nil
	}

	return term.Restore(s.fd, s.state)
}

func (s *saver) Signal() error {
	return s.Restore()
}
