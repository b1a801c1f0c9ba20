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

package provider

import (
	"io/fs"
	"net/url"
	"path/filepath"
	"strings"
	"unicode/utf8"

	rec "github.com/sabouaram/sitemapgen/record"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

// FileScanner walks a site's document root and synthesizes a status-200
// record for every regular file whose modification time is after the
// persisted limit, per spec 4.K.
type FileScanner struct {
	DocRoot string
}

func (f *FileScanner) Name() string { return "file-scanner" }

func (f *FileScanner) Scan(since int64) ([]sd.Record, int64, error) {
	var (
		records []sd.Record
		maxTime int64
	)

	err := filepath.WalkDir(f.DocRoot, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}

		mtime := info.ModTime().Unix()
		if mtime <= since {
			return nil
		}

		rel, err := filepath.Rel(f.DocRoot, path)
		if err != nil {
			return nil
		}

		u := pathToURL(rel)
		if mtime > maxTime {
			maxTime = mtime
		}

		records = append(records, sd.Record{
			URL:           u,
			Status:        200,
			ContentHash:   rec.NewFingerprint(u + ":" + info.ModTime().String()),
			LastModified:  mtime,
			LastFileWrite: mtime,
		})

		return nil
	})
	if err != nil {
		return nil, since, ErrorWalkRoot.Error(err)
	}

	if maxTime == 0 {
		maxTime = since
	}

	return records, maxTime, nil
}

// pathToURL converts a filesystem-relative path into a URL path component,
// percent-escaping each segment and normalizing to forward slashes so a
// document root walked on any OS yields the same sitemap URLs.
func pathToURL(rel string) string {
	segments := strings.Split(filepath.ToSlash(rel), "/")
	for i, seg := range segments {
		if !utf8.ValidString(seg) {
			seg = strings.ToValidUTF8(seg, "")
		}
		segments[i] = url.PathEscape(seg)
	}

	return "/" + strings.Join(segments, "/")
}
