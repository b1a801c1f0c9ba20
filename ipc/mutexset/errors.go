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

package mutexset

import "github.com/sabouaram/sitemapgen/errors"

const (
	ErrorAnchorDirInvalid errors.CodeError = iota + errors.MinPkgMutexSet
	ErrorAlreadyLoaded
	ErrorNotLoaded
	ErrorUnknownName
	ErrorAnchorRead
	ErrorAnchorWrite
	ErrorNotServer
	ErrorResetNotAllowed
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorAnchorDirInvalid)
	errors.RegisterIdFctMessage(ErrorAnchorDirInvalid, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorAnchorDirInvalid:
		return "mutex set: anchor directory must be an existing, writable directory"
	case ErrorAlreadyLoaded:
		return "mutex set: Load called twice"
	case ErrorNotLoaded:
		return "mutex set: Load must be called before Get"
	case ErrorUnknownName:
		return "mutex set: name was never registered"
	case ErrorAnchorRead:
		return "mutex set: cannot read anchor file"
	case ErrorAnchorWrite:
		return "mutex set: cannot write anchor file"
	case ErrorNotServer:
		return "mutex set: operation requires the server role"
	case ErrorResetNotAllowed:
		return "mutex set: reset requires allow_multi_post"
	}

	return ""
}
