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

// Package filelock is a named exclusive advisory lock backed by a file at a
// known path, polling at a small fixed interval until acquired or a deadline
// passes, per the cross-process setup/teardown serialization spec'd for
// ipc/urlpipe.
package filelock

import (
	"os"
	"time"

	"github.com/gofrs/flock"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
)

// pollInterval is the fixed polling cadence spec'd at ~100ms.
const pollInterval = 100 * time.Millisecond

// Lock is a named, process-wide exclusive lock.
type Lock interface {
	// LockWait polls every pollInterval until the lock is obtained or waitMs
	// elapses. waitMs < 0 blocks forever.
	LockWait(waitMs int) error
	// Unlock releases the lock. If Shared was configured, the backing file is
	// kept (with group-read permission) so webserver-side code can also take
	// it; otherwise the file is removed.
	Unlock() error
}

type model struct {
	path   string
	flock  *flock.Flock
	shared bool
	perm   libprm.Perm
}

// New returns a Lock backed by a file at path. perm is applied when the file
// is first created. When shared is true, Unlock leaves the file in place with
// group-read permission instead of removing it, per spec 4.C's "shared with
// webserver" mode.
func New(path string, perm libprm.Perm, shared bool) (Lock, error) {
	if path == "" {
		return nil, ErrorPathInvalid.Error(nil)
	}

	return &model{
		path:   path,
		flock:  flock.New(path),
		shared: shared,
		perm:   perm,
	}, nil
}

func (m *model) LockWait(waitMs int) error {
	var deadline time.Time
	if waitMs >= 0 {
		deadline = time.Now().Add(time.Duration(waitMs) * time.Millisecond)
	}

	for {
		ok, err := m.flock.TryLock()
		if err != nil {
			return ErrorLockIO.Error(err)
		}
		if ok {
			if m.shared {
				_ = os.Chmod(m.path, m.perm.FileMode()|0o040)
			}
			return nil
		}

		if waitMs >= 0 && time.Now().After(deadline) {
			return ErrorTimeout.Error(nil)
		}

		time.Sleep(pollInterval)
	}
}

func (m *model) Unlock() error {
	if err := m.flock.Unlock(); err != nil {
		return ErrorLockIO.Error(err)
	}

	if !m.shared {
		_ = os.Remove(m.path)
	}

	return nil
}
