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

// Package version carries the package/build/release identity every binary
// built from this module reports through --version, the header printed at
// startup (unless ForceNoInfo is set, see cobra/model.go) and the license
// text printed by a configure/completion command. It also wraps
// hashicorp/go-version so a caller can refuse to run under a Go runtime
// older than what the module requires.
package version

import (
	"time"

	liberr "github.com/sabouaram/sitemapgen/errors"
)

// License identifies one of the license bodies GetLicense* can render.
type License uint8

const (
	License_MIT License = iota
	License_GNU_GPL_v3
	License_GNU_Lesser_GPL_v3
	License_GNU_Affero_GPL_v3
	License_Apache_v2
	License_Mozilla_PL_v2
	License_Unlicense
	License_Creative_Common_Zero_v1
	License_Creative_Common_Attribution_v4_int
	License_Creative_Common_Attribution_Share_Alike_v4_int
	License_SIL_Open_Font_1_1
)

// Version exposes the build identity of a binary: the package name,
// description, author, release/build stamps and the license(s) it ships
// under, plus a Go-runtime compatibility check.
type Version interface {
	// GetPackage returns the package name, derived from the caller's
	// reflected type when pkg is empty or "noname".
	GetPackage() string
	// GetDescription returns the free-form description given to NewVersion.
	GetDescription() string
	// GetAuthor returns the author string, suffixed with a "(source: ...)"
	// hint pointing at the root package path.
	GetAuthor() string
	// GetPrefix returns the upper-cased prefix given to NewVersion, used by
	// callers to namespace env vars / flag names.
	GetPrefix() string
	// GetBuild returns the build/commit stamp given to NewVersion.
	GetBuild() string
	// GetRelease returns the release/tag stamp given to NewVersion.
	GetRelease() string
	// GetDate returns the build date, formatted RFC1123.
	GetDate() string
	// GetTime returns the build date as a time.Time.
	GetTime() time.Time
	// GetAppId returns a one-line runtime identity string (release, OS/arch,
	// Go runtime version).
	GetAppId() string
	// GetRootPackagePath returns the reflected package path of the struct
	// given to NewVersion, trimmed by numSubPackage path segments from the
	// right (0 keeps the full path).
	GetRootPackagePath() string

	// GetHeader returns the one-line banner printed at startup.
	GetHeader() string
	// GetInfo returns a multi-line block of Release/Build/Date/Author.
	GetInfo() string
	// PrintInfo writes GetHeader to stderr.
	PrintInfo()

	// GetLicenseName returns the display name of the primary license.
	GetLicenseName() string
	// GetLicenseLegal returns the primary license's full legal text,
	// followed by the full legal text of every additional license given,
	// each preceded by an 80-character '*' separator line.
	GetLicenseLegal(additional ...License) string
	// GetLicenseBoiler returns the short copyright/notice block meant to be
	// stamped atop a source file: package, description, "Copyright (c)
	// <year> <author>" and the primary license's short notice, followed by
	// the same for every additional license.
	GetLicenseBoiler(additional ...License) string
	// GetLicenseFull returns GetLicenseBoiler followed by GetLicenseLegal,
	// separated by an 80-character '*' line.
	GetLicenseFull(additional ...License) string
	// PrintLicense writes GetLicenseBoiler to stderr.
	PrintLicense(additional ...License)

	// CheckGo validates the runtime's Go version against a
	// hashicorp/go-version constraint ("requiredVersion" combined with
	// "operator", e.g. CheckGo("1.18", ">=")). Returns nil when satisfied.
	CheckGo(requiredVersion string, operator string) liberr.Error
}

// NewVersion returns a Version. pkg, when empty or "noname", is derived by
// reflecting ref's package path. numSubPackage trims that many trailing
// path segments off GetRootPackagePath's result (0 keeps the full path).
// date is parsed as RFC3339; an unparsable date falls back to time.Now().
func NewVersion(lic License, pkg, description, date, build, release, author, prefix string, ref interface{}, numSubPackage int) Version {
	return newVersion(lic, pkg, description, date, build, release, author, prefix, ref, numSubPackage)
}
