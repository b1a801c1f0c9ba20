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

package viper

import "github.com/sabouaram/sitemapgen/errors"

const (
	ErrorParamEmpty errors.CodeError = iota + errors.MinPkgViper
	ErrorParamMissing
	ErrorHomePathNotFound
	ErrorBasePathNotFound
	ErrorRemoteProvider
	ErrorRemoteProviderSecure
	ErrorRemoteProviderRead
	ErrorRemoteProviderMarshall
	ErrorConfigRead
	ErrorConfigReadDefault
	ErrorConfigIsDefault
)

var isCodeError = false

func IsCodeError() bool {
	return isCodeError
}

func init() {
	isCodeError = errors.ExistInMapMessage(ErrorParamEmpty)
	errors.RegisterIdFctMessage(ErrorParamEmpty, getMessage)
}

func getMessage(code errors.CodeError) string {
	switch code {
	case errors.UNK_ERROR:
		return ""
	case ErrorParamEmpty:
		return "viper: required parameter is empty"
	case ErrorParamMissing:
		return "viper: required parameter is missing"
	case ErrorHomePathNotFound:
		return "viper: cannot retrieve home directory path"
	case ErrorBasePathNotFound:
		return "viper: cannot retrieve base config path"
	case ErrorRemoteProvider:
		return "viper: remote provider configuration failed"
	case ErrorRemoteProviderSecure:
		return "viper: secure remote provider configuration failed"
	case ErrorRemoteProviderRead:
		return "viper: reading remote provider config failed"
	case ErrorRemoteProviderMarshall:
		return "viper: unmarshalling remote provider model failed"
	case ErrorConfigRead:
		return "viper: reading config file failed"
	case ErrorConfigReadDefault:
		return "viper: reading default config failed"
	case ErrorConfigIsDefault:
		return "viper: config loaded from default content, no config file was found"
	}

	return ""
}
