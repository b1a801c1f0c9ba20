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
	"context"
	"encoding/binary"
	"os"
	"time"
)

func encodeValue(v uint32) []byte {
	b := make([]byte, 4)
	binary.LittleEndian.PutUint32(b, v)
	return b
}

func decodeValue(b []byte) (uint32, bool) {
	if len(b) < 4 {
		return 0, false
	}
	return binary.LittleEndian.Uint32(b), true
}

type mutex struct {
	s              *set
	name           string
	allowMultiPost bool
}

func (m *mutex) path() string {
	return m.s.semaphorePath(m.name)
}

func (m *mutex) load() (uint32, error) {
	b, err := os.ReadFile(m.path())
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}

	v, ok := decodeValue(b)
	if !ok {
		return 0, nil
	}
	return v, nil
}

func (m *mutex) store(v uint32) error {
	return os.WriteFile(m.path(), encodeValue(v), 0o640)
}

// Wait polls the semaphore file until its value is non-zero, then consumes it
// (decrements, or clears to zero when allowMultiPost), or until timeoutMs
// elapses / ctx is cancelled.
func (m *mutex) Wait(ctx context.Context, timeoutMs int) WaitResult {
	var deadline time.Time
	if timeoutMs >= 0 {
		deadline = time.Now().Add(time.Duration(timeoutMs) * time.Millisecond)
	}

	for {
		v, err := m.load()
		if err != nil {
			return WaitError
		}

		if v > 0 {
			next := v - 1
			if m.allowMultiPost {
				next = 0
			}
			if err = m.store(next); err != nil {
				return WaitError
			}
			return WaitOK
		}

		select {
		case <-ctx.Done():
			return WaitInvalid
		default:
		}

		if timeoutMs >= 0 && time.Now().After(deadline) {
			return WaitTimeout
		}

		select {
		case <-ctx.Done():
			return WaitInvalid
		case <-time.After(pollInterval):
		}
	}
}

// Post signals the mutex: sets it to 1 when allowMultiPost, otherwise
// increments the counter.
func (m *mutex) Post() error {
	v, err := m.load()
	if err != nil {
		return ErrorAnchorWrite.Error(err)
	}

	if m.allowMultiPost {
		v = 1
	} else {
		v++
	}

	return ErrorAnchorWrite.IfError(m.store(v))
}

// Reset forces the binary value; only legal when allowMultiPost.
func (m *mutex) Reset(value uint32) error {
	if !m.allowMultiPost {
		return ErrorResetNotAllowed.Error(nil)
	}
	return ErrorAnchorWrite.IfError(m.store(value))
}
