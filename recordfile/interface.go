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

// Package recordfile owns the on-disk layout of one site's record files:
// the in-flight "current" dump, sealed "temp-<timestamp>" files, the merged
// "base"/"fprint" pair, and the "host" popularity table.
package recordfile

import (
	"time"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
	liblog "github.com/sabouaram/sitemapgen/logger"
)

const (
	CurrentName = "current"
	BaseName    = "base"
	FprintName  = "fprint"
	HostName    = "host"
	tempPrefix  = "temp-"
)

// Manager names and rotates the files of a single site's data directory.
type Manager interface {
	// Dir is the site's data directory.
	Dir() string

	CurrentPath() string
	BasePath() string
	FprintPath() string
	HostPath() string

	// CompleteCurrent atomically seals CurrentPath() by renaming it to a
	// new temp-<now> file, and returns that file's path. If CurrentPath()
	// does not exist, it returns "", nil — there was nothing to seal.
	CompleteCurrent(now time.Time) (string, error)

	// Temps lists every temp-* file path, oldest first.
	Temps() ([]string, error)
	// TempsIn returns every temp-* file whose mtime falls within [from, to].
	TempsIn(from, to time.Time) ([]string, error)
	// TempsTotalSize sums the size in bytes of every temp-* file.
	TempsTotalSize() (int64, error)
	// CleanupTemps removes the oldest temp-* files while the total temp
	// size exceeds capBytes.
	CleanupTemps(capBytes int64) error

	// SwapBase atomically replaces base/fprint with newBase/newFprint.
	SwapBase(newBase, newFprint string) error
}

// Config configures a Manager.
type Config struct {
	Dir  string
	Perm libprm.Perm
	// Log is the logger temp-file cleanup/seal failures are reported
	// through. Nil falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// New returns a Manager rooted at cfg.Dir, creating the directory if needed.
func New(cfg Config) (Manager, error) {
	return newManager(cfg)
}
