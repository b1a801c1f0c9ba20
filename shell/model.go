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

package shell

import (
	"io"
	"sync"

	"github.com/sabouaram/sitemapgen/shell/command"
	"github.com/sabouaram/sitemapgen/shell/tty"
)

type shell struct {
	mu  sync.RWMutex
	ts  tty.TTYSaver
	cmd map[string]command.Command
}

func (s *shell) Add(prefix string, cmds ...command.Command) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, c := range cmds {
		if c == nil {
			continue
		}

		s.cmd[prefix+c.Name()] = c
	}
}

func (s *shell) Get(name string) (command.Command, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cmd[name]
	return c, ok
}

func (s *shell) Desc(name string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.cmd[name]
	if !ok {
		return ""
	}

	return c.Describe()
}

func (s *shell) Walk(fct WalkFunc) {
	if fct == nil {
		return
	}

	s.mu.RLock()
	snap := make(map[string]command.Command, len(s.cmd))
	for k, v := range s.cmd {
		snap[k] = v
	}
	s.mu.RUnlock()

	for k, v := range snap {
		if !fct(k, v) {
			return
		}
	}
}

func (s *shell) Run(out, err io.Writer, args []string) {
	if len(args) < 1 {
		return
	}

	c, ok := s.Get(args[0])
	if !ok {
		return
	}

	c.Run(out, err, args[1:])
}
