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
	"os"
	"strconv"
	"strings"
)

// readLimit returns the persisted last-access limit at path, or 0 if it
// does not exist yet.
func readLimit(path string) (int64, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return 0, nil
	}
	if err != nil {
		return 0, ErrorReadLimit.Error(err)
	}

	v, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		return 0, ErrorReadLimit.Error(err)
	}

	return v, nil
}

// writeLimit persists limit to path atomically (write-temp-then-rename),
// matching the teacher's temp-suffix pattern used throughout recordfile.
func writeLimit(path string, limit int64) error {
	tmp := path + ".writing"

	if err := os.WriteFile(tmp, []byte(strconv.FormatInt(limit, 10)), 0o640); err != nil {
		return ErrorWriteLimit.Error(err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return ErrorWriteLimit.Error(err)
	}

	return nil
}
