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

package record

import (
	"bytes"
	"encoding/hex"

	libenc "github.com/sabouaram/sitemapgen/encoding"
	libsha "github.com/sabouaram/sitemapgen/encoding/sha256"
)

// Fingerprint is the 128-bit identity of a URL: the first 16 bytes of its
// SHA-256 digest. Truncating to 16 bytes keeps the on-disk record layout
// fixed-width while still making collisions practically impossible for the
// URL counts a single site accumulates.
type Fingerprint [16]byte

var zeroFingerprint Fingerprint

func (f Fingerprint) IsZero() bool {
	return f == zeroFingerprint
}

func (f Fingerprint) String() string {
	return hex.EncodeToString(f[:])
}

// Less orders fingerprints for the ascending on-disk sort spec 4.E/4.F rely on.
func (f Fingerprint) Less(other Fingerprint) bool {
	return bytes.Compare(f[:], other[:]) < 0
}

func newCoder() libenc.Coder {
	return libsha.New()
}

// NewFingerprint derives the fingerprint of a URL.
func NewFingerprint(url string) Fingerprint {
	sum := newCoder().Encode([]byte(url))

	var fp Fingerprint
	copy(fp[:], sum)

	return fp
}
