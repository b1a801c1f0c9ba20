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

package mutexset

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

const anchorFileName = ".anchor"

type set struct {
	cfg Config

	mu     sync.Mutex
	names  []string
	ids    map[string]int
	loaded bool
}

func newSet(cfg Config) (Set, error) {
	if cfg.AnchorDir == "" {
		return nil, ErrorAnchorDirInvalid.Error(nil)
	}
	if st, err := os.Stat(cfg.AnchorDir); err != nil || !st.IsDir() {
		if cfg.Server {
			if err := os.MkdirAll(cfg.AnchorDir, 0o750); err != nil {
				return nil, ErrorAnchorDirInvalid.Error(err)
			}
		} else {
			return nil, ErrorAnchorDirInvalid.Error(err)
		}
	}

	return &set{cfg: cfg, ids: make(map[string]int)}, nil
}

func (s *set) anchorPath() string {
	return filepath.Join(s.cfg.AnchorDir, anchorFileName)
}

func (s *set) semaphorePath(name string) string {
	return filepath.Join(s.cfg.AnchorDir, "sem-"+name)
}

func (s *set) Register(name string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return 0, ErrorAlreadyLoaded.Error(nil)
	}

	if id, ok := s.ids[name]; ok {
		return id, nil
	}

	id := len(s.names)
	s.names = append(s.names, name)
	s.ids[name] = id

	return id, nil
}

func (s *set) Load(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loaded {
		return ErrorAlreadyLoaded.Error(nil)
	}

	if s.cfg.Server {
		if err := s.writeAnchor(); err != nil {
			return err
		}
		for _, n := range s.names {
			if err := s.initSemaphoreFile(n, 0); err != nil {
				return err
			}
		}
	} else {
		names, err := s.readAnchor()
		if err != nil {
			return err
		}
		s.names = names
		s.ids = make(map[string]int, len(names))
		for i, n := range names {
			s.ids[n] = i
		}
	}

	s.loaded = true
	return nil
}

func (s *set) writeAnchor() error {
	perm := os.FileMode(0o640)
	if s.cfg.GroupReadable {
		perm = 0o660
	}

	f, err := os.OpenFile(s.anchorPath(), os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return ErrorAnchorWrite.Error(err)
	}
	defer f.Close()

	w := bufio.NewWriter(f)
	for _, n := range s.names {
		if _, err = fmt.Fprintln(w, n); err != nil {
			return ErrorAnchorWrite.Error(err)
		}
	}

	return ErrorAnchorWrite.IfError(w.Flush())
}

func (s *set) readAnchor() ([]string, error) {
	b, err := os.ReadFile(s.anchorPath())
	if err != nil {
		return nil, ErrorAnchorRead.Error(err)
	}

	var out []string
	for _, line := range strings.Split(string(b), "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			out = append(out, line)
		}
	}

	return out, nil
}

func (s *set) initSemaphoreFile(name string, value uint32) error {
	perm := os.FileMode(0o640)
	if s.cfg.GroupReadable {
		perm = 0o660
	}

	return ErrorAnchorWrite.IfError(os.WriteFile(s.semaphorePath(name), encodeValue(value), perm))
}

func (s *set) Get(name string, initial uint32, allowMultiPost bool) (Mutex, error) {
	s.mu.Lock()
	loaded := s.loaded
	id, ok := s.ids[name]
	server := s.cfg.Server
	s.mu.Unlock()

	if !loaded {
		return nil, ErrorNotLoaded.Error(nil)
	}
	if !ok {
		return nil, ErrorUnknownName.Error(nil)
	}

	if server {
		if err := s.initSemaphoreFile(name, initial); err != nil {
			return nil, err
		}
	}

	_ = id
	return &mutex{s: s, name: name, allowMultiPost: allowMultiPost}, nil
}

func (s *set) Destroy() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.cfg.Server {
		return ErrorNotServer.Error(nil)
	}

	for _, n := range s.names {
		_ = os.Remove(s.semaphorePath(n))
	}
	_ = os.Remove(s.anchorPath())

	s.loaded = false
	return nil
}
