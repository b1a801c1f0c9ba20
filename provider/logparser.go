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
	"bufio"
	"os"
	"regexp"
	"strconv"
	"sync"
	"time"

	rec "github.com/sabouaram/sitemapgen/record"
	sd "github.com/sabouaram/sitemapgen/sitedata"
)

// logLineFormat is one candidate strategy for parsing an access-log line
// into (url, status, timestamp).
type logLineFormat struct {
	name string
	re   *regexp.Regexp
	// timeLayout parses the timestamp capture group; group index 2.
	timeLayout string
}

// logLineFormats are tried in order against the first non-empty line of a
// log file; the first one that matches is cached and reused for every
// subsequent line, per spec 4.K.
var logLineFormats = []logLineFormat{
	{
		// Combined/NCSA: 127.0.0.1 - - [10/Oct/2023:13:55:36 +0000] "GET /a/b HTTP/1.1" 200 1234
		name:       "ncsa",
		re:         regexp.MustCompile(`^\S+ \S+ \S+ \[([^\]]+)] "(?:GET|HEAD|POST) (\S+)[^"]*" (\d{3})`),
		timeLayout: "02/Jan/2006:15:04:05 -0700",
	},
	{
		// Tab-separated: <unix-seconds>\t<status>\t<url>
		name:       "tsv",
		re:         regexp.MustCompile(`^(\d+)\t(\d{3})\t(\S+)$`),
		timeLayout: "",
	},
}

// LogParser tries each logLineFormats strategy against the first non-empty
// line of a log file; the first that parses is cached and reused, per spec
// 4.K. Parsed lines always yield status-200 records.
type LogParser struct {
	LogPath string

	mu      sync.Mutex
	matched *logLineFormat
}

func (l *LogParser) Name() string { return "log-parser" }

func (l *LogParser) Scan(since int64) ([]sd.Record, int64, error) {
	f, err := os.Open(l.LogPath)
	if err != nil {
		return nil, since, ErrorOpenLog.Error(err)
	}
	defer f.Close()

	var (
		records []sd.Record
		maxTime = since
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		format, err := l.formatFor(line)
		if err != nil {
			return records, maxTime, err
		}

		u, ts, ok := parseLine(format, line)
		if !ok || ts <= since {
			continue
		}

		if ts > maxTime {
			maxTime = ts
		}

		records = append(records, sd.Record{
			URL:           u,
			Status:        200,
			ContentHash:   rec.NewFingerprint(line),
			LastModified:  ts,
			LastFileWrite: ts,
		})
	}

	if err = scanner.Err(); err != nil {
		return records, maxTime, ErrorOpenLog.Error(err)
	}

	return records, maxTime, nil
}

// formatFor returns the cached format if one was already matched, else
// tries every candidate against line and caches the first success.
func (l *LogParser) formatFor(line string) (logLineFormat, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.matched != nil {
		return *l.matched, nil
	}

	for _, f := range logLineFormats {
		if f.re.MatchString(line) {
			l.matched = &f
			return f, nil
		}
	}

	return logLineFormat{}, ErrorNoFormat.Error()
}

func parseLine(f logLineFormat, line string) (string, int64, bool) {
	m := f.re.FindStringSubmatch(line)
	if m == nil {
		return "", 0, false
	}

	switch f.name {
	case "ncsa":
		t, err := time.Parse(f.timeLayout, m[1])
		if err != nil {
			return "", 0, false
		}
		return m[2], t.Unix(), true
	case "tsv":
		ts, err := strconv.ParseInt(m[1], 10, 64)
		if err != nil {
			return "", 0, false
		}
		return m[3], ts, true
	default:
		return "", 0, false
	}
}
