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

// Package shell is the interactive mirror of the daemon's cobra CLI: every
// command registered through config.Config.GetShellCommand() also becomes
// reachable by name from a line-reading prompt, sharing the exact same
// command.Command.Run.
package shell

import (
	"io"

	"github.com/sabouaram/sitemapgen/shell/command"
	"github.com/sabouaram/sitemapgen/shell/tty"
)

// WalkFunc is called for every registered command; returning false stops
// the walk early.
type WalkFunc func(name string, item command.Command) bool

// Shell is a concurrency-safe name -> command.Command registry, addressable
// by a prefixed name (e.g. "sys:info") to let several sources register
// commands without colliding.
type Shell interface {
	// Add registers cmds under prefix+cmd.Name(). Nil commands are skipped.
	Add(prefix string, cmds ...command.Command)

	// Get returns the command registered under name, if any.
	Get(name string) (command.Command, bool)

	// Desc returns the description of the command registered under name,
	// or an empty string if none is registered.
	Desc(name string) string

	// Walk calls fct for every registered command until fct returns false
	// or every command has been visited. Tolerates a nil fct.
	Walk(fct WalkFunc)

	// Run looks up args[0] and, if found, runs it with args[1:], writing to
	// out/err. A missing command is a silent no-op, matching a REPL's
	// "command not found" being reported by the caller, not a panic.
	Run(out, err io.Writer, args []string)
}

// New returns an empty Shell. ts, when non-nil, is restored whenever the
// shell's interactive prompt loop (run by the caller, not by Shell itself)
// exits or is interrupted.
func New(ts tty.TTYSaver) Shell {
	return &shell{
		ts:  ts,
		cmd: make(map[string]command.Command),
	}
}
