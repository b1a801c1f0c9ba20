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

package sitemap

import (
	"encoding/xml"
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	libgzip "github.com/sabouaram/sitemapgen/archive/gzip"
)

type xmlURL struct {
	Loc        string `xml:"loc"`
	LastMod    string `xml:"lastmod,omitempty"`
	ChangeFreq string `xml:"changefreq,omitempty"`
	Priority   string `xml:"priority,omitempty"`
}

type xmlURLSet struct {
	XMLName xml.Name `xml:"urlset"`
	XMLNS   string   `xml:"xmlns,attr"`
	URLs    []xmlURL `xml:"url"`
}

type xmlSitemapEntry struct {
	Loc string `xml:"loc"`
}

type xmlSitemapIndex struct {
	XMLName  xml.Name          `xml:"sitemapindex"`
	XMLNS    string            `xml:"xmlns,attr"`
	Sitemaps []xmlSitemapEntry `xml:"sitemap"`
}

const sitemapXMLNS = "http://www.sitemaps.org/schemas/sitemap/0.9"

type xmlWriter struct {
	cfg WriterConfig

	fileIdx    int
	current    []xmlURL
	currentLen int64
	files      []string
}

func newXMLWriter(cfg WriterConfig) *xmlWriter {
	if cfg.MaxURLs <= 0 {
		cfg.MaxURLs = 50000
	}
	if cfg.MaxBytes <= 0 {
		cfg.MaxBytes = 10 << 20
	}

	return &xmlWriter{cfg: cfg}
}

// elementByteCost estimates the serialized XML size of one <url> entry, so
// Add can respect the byte budget without re-marshalling on every call.
func elementByteCost(e UrlElement) int64 {
	return int64(len(e.Loc)) + 64
}

func (w *xmlWriter) Add(e UrlElement) bool {
	cost := elementByteCost(e)

	if len(w.current) > 0 && (int64(len(w.current)) >= int64(w.cfg.MaxURLs) || w.currentLen+cost > w.cfg.MaxBytes) {
		return false
	}

	w.current = append(w.current, xmlURL{
		Loc:        e.Loc,
		LastMod:    formatLastMod(e),
		ChangeFreq: string(e.ChangeFreq),
		Priority:   formatPriority(e.Priority),
	})
	w.currentLen += cost

	return true
}

func formatLastMod(e UrlElement) string {
	if e.LastModified.IsZero() {
		return ""
	}
	return e.LastModified.UTC().Format("2006-01-02")
}

func formatPriority(p float64) string {
	if p <= 0 {
		return ""
	}
	return strconv.FormatFloat(p, 'f', 1, 64)
}

// fileName returns the rotated-part name; Finish renames to the bare stem
// when exactly one part was produced.
func (w *xmlWriter) fileName(idx int) string {
	return fmt.Sprintf("%s_%03d.xml", w.cfg.Stem, idx)
}

func (w *xmlWriter) flush() (string, error) {
	set := xmlURLSet{XMLNS: sitemapXMLNS, URLs: w.current}

	body, err := xml.MarshalIndent(set, "", "  ")
	if err != nil {
		return "", ErrorWriteOutput.Error(err)
	}
	body = append([]byte(xml.Header), body...)

	name := w.fileName(w.fileIdx)
	path := filepath.Join(w.cfg.OutputDir, name)

	if err = os.WriteFile(path, body, 0o644); err != nil {
		return "", ErrorWriteOutput.Error(err)
	}

	if w.cfg.Compress {
		gzPath := path + ".gz"
		f, err := os.Create(gzPath)
		if err != nil {
			return "", ErrorCompress.Error(err)
		}
		_, err = libgzip.Create(f, path)
		_ = f.Close()
		if err != nil {
			return "", ErrorCompress.Error(err)
		}
		_ = os.Remove(path)
		path = gzPath
	}

	w.fileIdx++
	w.current = nil
	w.currentLen = 0

	return path, nil
}

func (w *xmlWriter) Rotate() error {
	if len(w.current) == 0 {
		return nil
	}

	path, err := w.flush()
	if err != nil {
		return err
	}

	w.files = append(w.files, path)

	return nil
}

func (w *xmlWriter) Finish() (string, error) {
	if len(w.current) > 0 || len(w.files) == 0 {
		path, err := w.flush()
		if err != nil {
			return "", err
		}
		w.files = append(w.files, path)
	}

	if len(w.files) == 1 {
		return w.publicURL(w.files[0]), nil
	}

	return w.writeIndex()
}

func (w *xmlWriter) publicURL(path string) string {
	return w.cfg.PublicBase + filepath.Base(path)
}

func (w *xmlWriter) writeIndex() (string, error) {
	idx := xmlSitemapIndex{XMLNS: sitemapXMLNS}
	for _, f := range w.files {
		idx.Sitemaps = append(idx.Sitemaps, xmlSitemapEntry{Loc: w.publicURL(f)})
	}

	body, err := xml.MarshalIndent(idx, "", "  ")
	if err != nil {
		return "", ErrorWriteOutput.Error(err)
	}
	body = append([]byte(xml.Header), body...)

	path := filepath.Join(w.cfg.OutputDir, w.cfg.Stem+".xml")
	if err = os.WriteFile(path, body, 0o644); err != nil {
		return "", ErrorWriteOutput.Error(err)
	}

	return w.publicURL(path), nil
}
