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

// Package mutexset abstracts a named group of binary semaphores addressable by
// name, with a server/client asymmetric lifecycle: the receiver side of a pipe
// (ipc/urlpipe) creates the set and publishes its identifiers to an anchor
// file; sender processes open the same anchor file and bind to the same
// semaphores by name.
//
// There is no portable way to reach a real OS-native named semaphore (POSIX
// sem_open, Windows CreateEvent) from pure Go without cgo or per-platform
// syscalls absent from this module's dependency set, so each named mutex is
// backed by a small file under the anchor directory, polled the same way
// ipc/filelock polls its own lock file. This keeps the cross-process contract
// genuinely cross-process (not merely in-process channels) at the cost of
// wait() latency bounded by pollInterval instead of being wake-immediate.
package mutexset

import (
	"context"
	"time"
)

// pollInterval is how often Wait re-checks a semaphore file, mirroring
// ipc/filelock's own polling cadence.
const pollInterval = 20 * time.Millisecond

// WaitResult is the outcome of Mutex.Wait.
type WaitResult uint8

const (
	// OK means the mutex was acquired (its value was posted and is now
	// consumed).
	WaitOK WaitResult = iota
	// WaitTimeout means the deadline passed with no post.
	WaitTimeout
	// WaitInvalid means the underlying resource is gone (e.g. the server
	// recreated or destroyed the set); the caller should re-initialize.
	WaitInvalid
	// WaitError means an unexpected I/O error occurred.
	WaitError
)

// Mutex is one named binary semaphore within a Set.
type Mutex interface {
	// Wait blocks until posted or timeoutMs elapses. timeoutMs < 0 blocks
	// forever (bounded by ctx).
	Wait(ctx context.Context, timeoutMs int) WaitResult
	// Post signals the mutex: sets it to 1 if AllowMultiPost, increments
	// otherwise.
	Post() error
	// Reset forces the binary value; only legal when the mutex was created
	// with AllowMultiPost.
	Reset(value uint32) error
}

// Set is a named group of Mutex handles with a server/client asymmetric
// lifecycle.
type Set interface {
	// Register adds a logical mutex name, returning its dense integer id.
	// Idempotent. Must be called before Load.
	Register(name string) (int, error)
	// Load allocates (server) or attaches to (client) the underlying
	// resources and identifier anchor file.
	Load(ctx context.Context) error
	// Get returns the Mutex handle for name. On the server, initial sets the
	// starting value and allowMultiPost governs Post/Reset semantics; on the
	// client these are ignored (the server's choices apply).
	Get(name string, initial uint32, allowMultiPost bool) (Mutex, error)
	// Destroy removes the underlying resources. Server-only: it deletes the
	// anchor file and every semaphore file. Clients should simply stop using
	// the Set instead of calling Destroy.
	Destroy() error
}

// Config is how a Set locates its anchor directory and chooses its role.
type Config struct {
	// AnchorDir is the directory holding the anchor file and one file per
	// named mutex. Must exist and be writable by the server.
	AnchorDir string
	// Server selects the server role (create/own the set) vs. the client
	// role (attach to an existing set).
	Server bool
	// GroupReadable grants group-read on the anchor file and semaphore files
	// so a different-UID webserver process can attach, per spec 4.D.
	GroupReadable bool
}

// New returns a Set in the given role. Call Register for every named mutex
// before Load.
func New(cfg Config) (Set, error) {
	return newSet(cfg)
}
