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

// Package merge folds a site's base file and its sealed temp files into a
// new, canonical base file: a k-way priority-queue merge over the base
// reader and every temp reader, keyed by fingerprint, honoring an obsoleted
// set, a last-access cutoff, and a maximum surviving URL count.
package merge

import (
	liblog "github.com/sabouaram/sitemapgen/logger"
	rec "github.com/sabouaram/sitemapgen/record"
	rf "github.com/sabouaram/sitemapgen/recordfile"
)

// Stat summarizes one merge pass, later consulted by sitemap writers when
// computing a record's <priority>.
type Stat struct {
	InputRecords   int
	SurvivingCount int
	Obsoleted      int
	Expired        int
	Evicted        int
}

// Input describes one merge invocation.
type Input struct {
	BasePath    string
	TempPaths   []string
	Obsoleted   map[rec.Fingerprint]struct{}
	MaxURLCount int
	Cutoff      int64
	// Log is the logger a failed base/fprint swap is reported through. Nil
	// falls back to a standalone logger.New.
	Log liblog.FuncLog
}

// Merge folds in.BasePath and in.TempPaths into a new base/fprint pair and
// atomically swaps them into place via mgr.SwapBase. The pre-swap files are
// written alongside the final base file as "base.new"/"fprint.new" so a
// crash mid-merge leaves the previous base/fprint untouched.
func Merge(mgr rf.Manager, in Input) (Stat, error) {
	return runMerge(mgr, in)
}
