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

package siteconfig

import "github.com/sabouaram/sitemapgen/errors"

const (
	ErrorSiteIDEmpty errors.CodeError = iota + errors.MinPkgSiteConfig
	ErrorPathEmpty
	ErrorUnknownSite
	ErrorLoadConfig
	ErrorDecodeConfig
	ErrorSaveConfig
	ErrorNoPriorLoad
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorSiteIDEmpty)
	errors.RegisterIdFctMessage(ErrorSiteIDEmpty, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorSiteIDEmpty:
		return "siteconfig: site id must not be empty"
	case ErrorPathEmpty:
		return "siteconfig: config file path must not be empty"
	case ErrorUnknownSite:
		return "siteconfig: unknown site id"
	case ErrorLoadConfig:
		return "siteconfig: failed loading config file"
	case ErrorDecodeConfig:
		return "siteconfig: failed decoding config into target struct"
	case ErrorSaveConfig:
		return "siteconfig: failed writing config file"
	case ErrorNoPriorLoad:
		return "siteconfig: setting was never loaded from a file, nothing to reload/update"
	}

	return ""
}
