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

package table

import (
	"os"
	"sort"
	"sync"

	libprm "github.com/sabouaram/sitemapgen/file/perm"
	rec "github.com/sabouaram/sitemapgen/record"
)

type table struct {
	mu      sync.RWMutex
	records map[rec.Fingerprint]rec.VisitingRecord
}

func (t *table) Add(url string, contentHash rec.Fingerprint, lastModified, lastFileWrite, now int64) (rec.VisitingRecord, error) {
	fp := rec.NewFingerprint(url)

	t.mu.Lock()
	defer t.mu.Unlock()

	cur, ok := t.records[fp]
	if !ok {
		cur = rec.VisitingRecord{
			Fingerprint:   fp,
			URL:           url,
			FirstAppear:   now,
			LastAccess:    now,
			LastChange:    now,
			CountAccess:   1,
			CountChange:   1,
			LastModified:  lastModified,
			LastFileWrite: lastFileWrite,
			ContentHash:   contentHash,
		}
		t.records[fp] = cur
		return cur, nil
	}

	cur.CountAccess++
	cur.LastAccess = now

	if cur.Changed(contentHash, lastModified, lastFileWrite) {
		cur.CountChange++
		cur.LastChange = now
		cur.ContentHash = contentHash
		cur.LastModified = lastModified
		cur.LastFileWrite = lastFileWrite
	}

	t.records[fp] = cur

	return cur, nil
}

func (t *table) Get(fp rec.Fingerprint) (rec.VisitingRecord, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.records[fp]
	return r, ok
}

func (t *table) Del(fp rec.Fingerprint) {
	t.mu.Lock()
	defer t.mu.Unlock()

	delete(t.records, fp)
}

func (t *table) sorted() []rec.VisitingRecord {
	out := make([]rec.VisitingRecord, 0, len(t.records))
	for _, r := range t.records {
		out = append(out, r)
	}

	sort.Slice(out, func(i, j int) bool {
		return out[i].Fingerprint.Less(out[j].Fingerprint)
	})

	return out
}

func (t *table) List() []rec.VisitingRecord {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.sorted()
}

func (t *table) Walk(fct FuncWalk) {
	t.mu.RLock()
	list := t.sorted()
	t.mu.RUnlock()

	for _, r := range list {
		if !fct(r) {
			return
		}
	}
}

func (t *table) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.records)
}

func (t *table) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.records = make(map[rec.Fingerprint]rec.VisitingRecord)
}

func (t *table) Save(path string) error {
	t.mu.RLock()
	list := t.sorted()
	t.mu.RUnlock()

	tmp := path + ".writing"

	f, err := os.OpenFile(tmp, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, libprm.Perm(0o640).FileMode())
	if err != nil {
		return ErrorOpenFile.Error(err)
	}

	buf := make([]byte, rec.Size())
	for _, r := range list {
		if err = r.Encode(buf); err != nil {
			_ = f.Close()
			return ErrorEncodeRecord.Error(err)
		}
		if _, err = f.Write(buf); err != nil {
			_ = f.Close()
			return ErrorWriteFile.Error(err)
		}
	}

	if err = f.Close(); err != nil {
		return ErrorWriteFile.Error(err)
	}

	return os.Rename(tmp, path)
}

func (t *table) Load(path string) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		return ErrorReadFile.Error(err)
	}

	size := rec.Size()
	if len(raw)%size != 0 {
		return ErrorDecodeRecord.Error(nil)
	}

	records := make(map[rec.Fingerprint]rec.VisitingRecord, len(raw)/size)
	for off := 0; off < len(raw); off += size {
		r, err := rec.Decode(raw[off : off+size])
		if err != nil {
			return ErrorDecodeRecord.Error(err)
		}
		records[r.Fingerprint] = r
	}

	t.mu.Lock()
	t.records = records
	t.mu.Unlock()

	return nil
}
