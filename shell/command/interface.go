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

// Package command describes a single named, runnable action exposed both as
// a cobra sub-command and as an entry in the daemon's interactive shell.
package command

import (
	"io"
)

// FuncRun is the body of a Command: it reads args and writes its result (or
// failure) to out/err, the same split cobra.Command.Run uses.
type FuncRun func(out, err io.Writer, args []string)

// CommandInfo is the read-only identity of a Command: enough to list it in
// a help screen without being able to run it.
type CommandInfo interface {
	Name() string
	Describe() string
}

// Command is a named action the shell or CLI can run.
type Command interface {
	CommandInfo

	Run(out, err io.Writer, args []string)
}

// New returns a Command backed by fct. A nil fct makes Run a no-op.
func New(name, describe string, fct FuncRun) Command {
	return &command{
		name: name,
		desc: describe,
		fct:  fct,
	}
}

// Info returns a CommandInfo with no backing action, for listing purposes.
func Info(name, describe string) CommandInfo {
	return &command{
		name: name,
		desc: describe,
	}
}
