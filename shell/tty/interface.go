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

// Package tty saves and restores terminal state around the interactive
// shell's raw-mode line reading, the way a REPL needs to leave the user's
// terminal exactly as it found it on exit or on an interrupt signal.
package tty

import (
	"errors"
	"io"
)

var (
	ErrorNotTTY     = errors.New("not a terminal")
	ErrorTTYFailed  = errors.New("failed to get terminal state")
	ErrorDevTTYFail = errors.New("failed to open /dev/tty")
)

// TTYSaver remembers a terminal's state at construction time and can put it
// back, whether on normal shutdown or from a signal handler.
type TTYSaver interface {
	// IsTerminal reports whether the saved file descriptor is a terminal.
	IsTerminal() bool

	// Restore puts the terminal back into the state captured by New.
	Restore() error

	// Signal is called by SignalHandler when an interrupt is received; the
	// default implementation just calls Restore.
	Signal() error
}

// New captures the terminal state of r (os.Stdin if nil). withSignalHandling
// additionally registers a SIGINT/SIGTERM handler that restores the terminal
// before the process exits.
func New(r io.Reader, withSignalHandling bool) (TTYSaver, error) {
	s, err := newSaver(r)
	if err != nil {
		return nil, err
	}

	if withSignalHandling {
		SignalHandler(s)
	}

	return s, nil
}

// Restore calls s.Restore(), tolerating a nil saver.
func Restore(s TTYSaver) {
	if s == nil {
		return
	}

	_ = s.Restore()
}
