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

package merge

import (
	"container/heap"
	"context"
	"os"
	"path/filepath"
	"sort"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
	liblog "github.com/sabouaram/sitemapgen/logger"
	loglvl "github.com/sabouaram/sitemapgen/logger/level"
	rec "github.com/sabouaram/sitemapgen/record"
	rf "github.com/sabouaram/sitemapgen/recordfile"
)

func inputLogger(log liblog.FuncLog) liblog.Logger {
	if log != nil {
		return log()
	}
	return liblog.New(context.Background())
}

// srcHeap orders source indices by their current record's fingerprint.
type srcHeap struct {
	idx     []int
	sources []*sourceReader
}

func (h *srcHeap) Len() int { return len(h.idx) }
func (h *srcHeap) Less(i, j int) bool {
	return h.sources[h.idx[i]].current.Fingerprint.Less(h.sources[h.idx[j]].current.Fingerprint)
}
func (h *srcHeap) Swap(i, j int) { h.idx[i], h.idx[j] = h.idx[j], h.idx[i] }
func (h *srcHeap) Push(x any)    { h.idx = append(h.idx, x.(int)) }
func (h *srcHeap) Pop() any {
	n := len(h.idx)
	v := h.idx[n-1]
	h.idx = h.idx[:n-1]
	return v
}

// fieldMerge combines every input record sharing one fingerprint into a
// single record, per spec 4.G.2.
func fieldMerge(group []rec.VisitingRecord) rec.VisitingRecord {
	out := group[0]

	for _, g := range group[1:] {
		if g.FirstAppear < out.FirstAppear {
			out.FirstAppear = g.FirstAppear
		}
		if g.LastAccess > out.LastAccess {
			out.LastAccess = g.LastAccess
		}
		if g.LastChange > out.LastChange {
			out.LastChange = g.LastChange
		}
		out.CountAccess += g.CountAccess
		out.CountChange += g.CountChange

		// Most recent wins for the content signature; ties keep the
		// earlier-seen value, which is deterministic given a stable
		// input order (base, then temps oldest to newest).
		if g.LastModified > out.LastModified {
			out.LastModified = g.LastModified
			out.LastFileWrite = g.LastFileWrite
			out.ContentHash = g.ContentHash
			out.URL = g.URL
		}
	}

	return out
}

func runMerge(mgr rf.Manager, in Input) (Stat, error) {
	paths := make([]string, 0, 1+len(in.TempPaths))
	paths = append(paths, in.BasePath)
	paths = append(paths, in.TempPaths...)

	sources := make([]*sourceReader, len(paths))
	for i, p := range paths {
		s, err := openSource(p)
		if err != nil {
			for _, opened := range sources[:i] {
				if opened != nil {
					opened.close()
				}
			}
			return Stat{}, err
		}
		sources[i] = s
	}
	defer func() {
		for _, s := range sources {
			if s != nil {
				s.close()
			}
		}
	}()

	h := &srcHeap{sources: sources}
	for i, s := range sources {
		if s.ok {
			h.idx = append(h.idx, i)
		}
	}
	heap.Init(h)

	var stat Stat
	var survivors []rec.VisitingRecord

	for h.Len() > 0 {
		min := sources[h.idx[0]].current.Fingerprint

		var group []rec.VisitingRecord
		for h.Len() > 0 && sources[h.idx[0]].current.Fingerprint == min {
			top := heap.Pop(h).(int)
			group = append(group, sources[top].current)
			stat.InputRecords++

			if err := sources[top].advance(); err != nil {
				return Stat{}, err
			}
			if sources[top].ok {
				heap.Push(h, top)
			}
		}

		merged := fieldMerge(group)

		if _, obsolete := in.Obsoleted[merged.Fingerprint]; obsolete {
			stat.Obsoleted++
			continue
		}
		if merged.LastAccess < in.Cutoff {
			stat.Expired++
			continue
		}

		survivors = append(survivors, merged)
	}

	if in.MaxURLCount > 0 && len(survivors) > in.MaxURLCount {
		byPriority := make([]rec.VisitingRecord, len(survivors))
		copy(byPriority, survivors)

		sort.Slice(byPriority, func(i, j int) bool {
			a, b := byPriority[i], byPriority[j]
			if a.CountAccess != b.CountAccess {
				return a.CountAccess < b.CountAccess
			}
			if a.LastAccess != b.LastAccess {
				return a.LastAccess < b.LastAccess
			}
			return a.Fingerprint.Less(b.Fingerprint)
		})

		evictCount := len(survivors) - in.MaxURLCount
		evicted := make(map[rec.Fingerprint]struct{}, evictCount)
		for _, r := range byPriority[:evictCount] {
			evicted[r.Fingerprint] = struct{}{}
		}

		kept := survivors[:0]
		for _, r := range survivors {
			if _, gone := evicted[r.Fingerprint]; !gone {
				kept = append(kept, r)
			}
		}
		survivors = kept
		stat.Evicted = evictCount
	}

	stat.SurvivingCount = len(survivors)

	dir := mgr.Dir()
	newBase := filepath.Join(dir, "base.new")
	newFprint := filepath.Join(dir, "fprint.new")

	if err := writeOutputs(newBase, newFprint, survivors); err != nil {
		return Stat{}, err
	}

	if err := mgr.SwapBase(newBase, newFprint); err != nil {
		inputLogger(in.Log).Entry(loglvl.ErrorLevel, "base swap failed").ErrorAdd(true, err).Log()
		return Stat{}, err
	}

	return stat, nil
}

func writeOutputs(basePath, fprintPath string, records []rec.VisitingRecord) error {
	perm := libprm.Perm(0o640).FileMode()

	baseF, err := os.OpenFile(basePath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return ErrorWriteOutput.Error(err)
	}
	defer baseF.Close()

	fprintF, err := os.OpenFile(fprintPath, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, perm)
	if err != nil {
		return ErrorWriteOutput.Error(err)
	}
	defer fprintF.Close()

	buf := make([]byte, rec.Size())
	for _, r := range records {
		if err = r.Encode(buf); err != nil {
			return ErrorWriteOutput.Error(err)
		}
		if _, err = baseF.Write(buf); err != nil {
			return ErrorWriteOutput.Error(err)
		}
		if _, err = fprintF.Write(r.Fingerprint[:]); err != nil {
			return ErrorWriteOutput.Error(err)
		}
	}

	return nil
}
