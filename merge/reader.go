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
	"io"
	"os"

	rec "github.com/sabouaram/sitemapgen/record"
)

// sourceReader streams VisitingRecords out of one sorted base/temp file.
type sourceReader struct {
	f       *os.File
	buf     []byte
	current rec.VisitingRecord
	ok      bool
}

func openSource(path string) (*sourceReader, error) {
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return &sourceReader{}, nil
	}
	if err != nil {
		return nil, ErrorOpenInput.Error(err)
	}

	r := &sourceReader{f: f, buf: make([]byte, rec.Size())}
	if err = r.advance(); err != nil {
		_ = f.Close()
		return nil, err
	}

	return r, nil
}

// advance loads the next record into current. ok is false once exhausted.
func (r *sourceReader) advance() error {
	if r.f == nil {
		r.ok = false
		return nil
	}

	_, err := io.ReadFull(r.f, r.buf)
	if err == io.EOF {
		r.ok = false
		return nil
	}
	if err != nil {
		return ErrorReadInput.Error(err)
	}

	v, err := rec.Decode(r.buf)
	if err != nil {
		return ErrorReadInput.Error(err)
	}

	r.current = v
	r.ok = true

	return nil
}

func (r *sourceReader) close() {
	if r.f != nil {
		_ = r.f.Close()
	}
}
