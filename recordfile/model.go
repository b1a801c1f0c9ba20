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

package recordfile

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"time"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
)

type manager struct {
	dir  string
	perm libprm.Perm
	log  liblog.FuncLog
}

func (m *manager) logger() liblog.Logger {
	if m.log != nil {
		return m.log()
	}
	return liblog.New(context.Background())
}

func newManager(cfg Config) (Manager, error) {
	if cfg.Dir == "" {
		return nil, ErrorDirInvalid.Error(nil)
	}

	perm := cfg.Perm
	if perm == 0 {
		perm = libprm.Perm(0o750)
	}

	if err := os.MkdirAll(cfg.Dir, perm.FileMode()); err != nil {
		return nil, ErrorDirInvalid.Error(err)
	}

	return &manager{dir: cfg.Dir, perm: perm, log: cfg.Log}, nil
}

func (m *manager) Dir() string { return m.dir }

func (m *manager) CurrentPath() string { return filepath.Join(m.dir, CurrentName) }
func (m *manager) BasePath() string    { return filepath.Join(m.dir, BaseName) }
func (m *manager) FprintPath() string  { return filepath.Join(m.dir, FprintName) }
func (m *manager) HostPath() string    { return filepath.Join(m.dir, HostName) }

func (m *manager) tempName(now time.Time) string {
	return tempPrefix + strconv.FormatInt(now.UnixNano(), 10)
}

func (m *manager) CompleteCurrent(now time.Time) (string, error) {
	cur := m.CurrentPath()

	if _, err := os.Stat(cur); os.IsNotExist(err) {
		return "", nil
	}

	dst := filepath.Join(m.dir, m.tempName(now))
	if err := os.Rename(cur, dst); err != nil {
		return "", ErrorSeal.Error(err)
	}

	return dst, nil
}

type tempEntry struct {
	path  string
	mtime time.Time
	size  int64
}

func (m *manager) listTemps() ([]tempEntry, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		return nil, ErrorListTemps.Error(err)
	}

	out := make([]tempEntry, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || !strings.HasPrefix(e.Name(), tempPrefix) {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		out = append(out, tempEntry{
			path:  filepath.Join(m.dir, e.Name()),
			mtime: info.ModTime(),
			size:  info.Size(),
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].mtime.Before(out[j].mtime) })

	return out, nil
}

func (m *manager) Temps() ([]string, error) {
	entries, err := m.listTemps()
	if err != nil {
		return nil, err
	}

	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.path
	}

	return out, nil
}

func (m *manager) TempsIn(from, to time.Time) ([]string, error) {
	entries, err := m.listTemps()
	if err != nil {
		return nil, err
	}

	var out []string
	for _, e := range entries {
		if (e.mtime.Equal(from) || e.mtime.After(from)) && (e.mtime.Equal(to) || e.mtime.Before(to)) {
			out = append(out, e.path)
		}
	}

	return out, nil
}

func (m *manager) TempsTotalSize() (int64, error) {
	entries, err := m.listTemps()
	if err != nil {
		return 0, err
	}

	var total int64
	for _, e := range entries {
		total += e.size
	}

	return total, nil
}

func (m *manager) CleanupTemps(capBytes int64) error {
	entries, err := m.listTemps()
	if err != nil {
		return err
	}

	var total int64
	for _, e := range entries {
		total += e.size
	}

	for _, e := range entries {
		if total <= capBytes {
			break
		}
		if err = os.Remove(e.path); err != nil && !os.IsNotExist(err) {
			m.logger().Entry(loglvl.ErrorLevel, "temp file cleanup failed").ErrorAdd(true, err).Log()
			return ErrorCleanup.Error(err)
		}
		total -= e.size
	}

	return nil
}

func (m *manager) SwapBase(newBase, newFprint string) error {
	if err := os.Rename(newBase, m.BasePath()); err != nil {
		return ErrorSeal.Error(err)
	}
	if err := os.Rename(newFprint, m.FprintPath()); err != nil {
		return ErrorSeal.Error(err)
	}

	return nil
}
