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

package version

import (
	"fmt"
	"os"
	"reflect"
	"runtime"
	"strings"
	"time"

	liberr "github.com/sabouaram/sitemapgen/errors"
	hcversion "github.com/hashicorp/go-version"
)

type version struct {
	lic     License
	pkg     string
	desc    string
	date    time.Time
	build   string
	release string
	author  string
	prefix  string
	root    string
}

func newVersion(lic License, pkg, description, date, build, release, author, prefix string, ref interface{}, numSubPackage int) Version {
	t, err := time.Parse(time.RFC3339, date)
	if err != nil {
		t = time.Now()
	}

	root := reflect.TypeOf(ref).PkgPath()

	if numSubPackage > 0 {
		parts := strings.Split(root, "/")
		if numSubPackage < len(parts) {
			parts = parts[:len(parts)-numSubPackage]
		} else {
			parts = parts[:0]
		}
		root = strings.Join(parts, "/")
	}

	if pkg == "" || strings.EqualFold(pkg, "noname") {
		pkg = root[strings.LastIndex(root, "/")+1:]
	}

	return &version{
		lic:     lic,
		pkg:     pkg,
		desc:    description,
		date:    t,
		build:   build,
		release: release,
		author:  author,
		prefix:  prefix,
		root:    root,
	}
}

func (v *version) GetPackage() string     { return v.pkg }
func (v *version) GetDescription() string { return v.desc }
func (v *version) GetAuthor() string {
	return fmt.Sprintf("%s (source: %s)", v.author, v.root)
}
func (v *version) GetPrefix() string  { return strings.ToUpper(v.prefix) }
func (v *version) GetBuild() string   { return v.build }
func (v *version) GetRelease() string { return v.release }
func (v *version) GetDate() string    { return v.date.Format(time.RFC1123) }
func (v *version) GetTime() time.Time { return v.date }

func (v *version) GetAppId() string {
	return fmt.Sprintf("%s (Runtime: %s/%s, %s)", v.release, runtime.GOOS, runtime.GOARCH, runtime.Version())
}

func (v *version) GetRootPackagePath() string {
	return v.root
}

func (v *version) GetHeader() string {
	return fmt.Sprintf("%s - %s (release %s, build %s)", v.pkg, v.desc, v.release, v.build)
}

func (v *version) GetInfo() string {
	return fmt.Sprintf("Release: %s\nBuild: %s\nDate: %s\nAuthor: %s\n", v.release, v.build, v.GetDate(), v.GetAuthor())
}

func (v *version) PrintInfo() {
	_, _ = fmt.Fprintln(os.Stderr, v.GetHeader())
}

func (v *version) GetLicenseName() string {
	return licenseName(v.lic)
}

func (v *version) GetLicenseLegal(additional ...License) string {
	var sb strings.Builder

	for _, lic := range append([]License{v.lic}, additional...) {
		sb.WriteString(strings.Repeat("*", 80))
		sb.WriteString("\n")
		sb.WriteString(licenseLegal(lic, v.date.Year(), v.author))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (v *version) GetLicenseBoiler(additional ...License) string {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("%s - %s\n", v.pkg, v.desc))

	for _, lic := range append([]License{v.lic}, additional...) {
		sb.WriteString(licenseBoiler(lic, v.date.Year(), v.author))
		sb.WriteString("\n")
	}

	return sb.String()
}

func (v *version) GetLicenseFull(additional ...License) string {
	return v.GetLicenseBoiler(additional...) + strings.Repeat("*", 80) + "\n" + v.GetLicenseLegal(additional...)
}

func (v *version) PrintLicense(additional ...License) {
	_, _ = fmt.Fprintln(os.Stderr, v.GetLicenseBoiler(additional...))
}

func (v *version) CheckGo(requiredVersion string, operator string) liberr.Error {
	if requiredVersion == "" || operator == "" {
		return ErrorParamEmpty.Error(nil)
	}

	runV, err := hcversion.NewVersion(strings.TrimPrefix(runtime.Version(), "go"))
	if err != nil {
		return ErrorGoVersionInit.Error(err)
	}

	cst, err := hcversion.NewConstraint(operator + " " + requiredVersion)
	if err != nil {
		return ErrorGoVersionRuntime.Error(err)
	}

	if !cst.Check(runV) {
		return ErrorGoVersionConstraint.Error(nil)
	}

	return nil
}
