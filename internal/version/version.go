// Copyright (c) 2013-2014 The btcsuite developers
// Copyright (c) 2015-2021 The Decred developers
// Copyright (c) 2026 The Zcents developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package version houses the version information of zcentsparams.
package version

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// semanticAlphabet defines the allowed characters for the pre-release and
// build metadata portions of a semantic version string.
const semanticAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz-."

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)` +
	`(?:-((?:0|[1-9]\d*|\d*[a-zA-Z-][0-9a-zA-Z-]*)(?:\.(?:0|[1-9]\d*|\d*` +
	`[a-zA-Z-][0-9a-zA-Z-]*))*))?(?:\+([0-9a-zA-Z-]+(?:\.[0-9a-zA-Z-]+)*))?$`)

// Version is the application version per the semantic versioning 2.0.0 spec
// (https://semver.org/).  It may be overridden at build time with:
// '-ldflags "-X github.com/The1Anubis/Zcents/internal/version.Version=fullsemver"'
//
// It MUST be a full semantic version or the package will panic at init.
var Version = "0.1.0-pre"

// SemVer holds the components of a semantic version.
type SemVer struct {
	Major         uint
	Minor         uint
	Patch         uint
	PreRelease    string
	BuildMetadata string
}

// String returns the semantic version in its canonical form.
func (v SemVer) String() string {
	s := fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
	if v.PreRelease != "" {
		s += "-" + v.PreRelease
	}
	if v.BuildMetadata != "" {
		s += "+" + v.BuildMetadata
	}
	return s
}

// current is the parsed form of Version.
var current SemVer

// ParseSemVer parses a semantic version string into its components.
func ParseSemVer(s string) (SemVer, error) {
	m := semverRE.FindStringSubmatch(s)
	if m == nil {
		return SemVer{}, fmt.Errorf("malformed version string %q: does not "+
			"conform to semver specification", s)
	}

	var v SemVer
	fields := []struct {
		dst  *uint
		name string
	}{{&v.Major, "major"}, {&v.Minor, "minor"}, {&v.Patch, "patch"}}
	for i, f := range fields {
		n, err := strconv.ParseUint(m[i+1], 10, 0)
		if err != nil {
			return SemVer{}, fmt.Errorf("malformed semver %s: %w", f.name, err)
		}
		*f.dst = uint(n)
	}
	v.PreRelease, v.BuildMetadata = m[4], m[5]
	return v, nil
}

func init() {
	v, err := ParseSemVer(Version)
	if err != nil {
		panic(err)
	}
	current = v
}

// Parsed returns the components of the application version.
func Parsed() SemVer {
	return current
}

// String returns the application version as a properly formed string per the
// semantic versioning 2.0.0 spec (https://semver.org/).
func String() string {
	return Version
}

// Full returns the application version with the abbreviated VCS revision the
// binary was built from appended as build metadata when it is known.
func Full() string {
	rev := NormalizeString(vcsCommitID())
	if rev == "" {
		return Version
	}
	v := current
	if v.BuildMetadata == "" {
		v.BuildMetadata = rev
	} else {
		v.BuildMetadata += "." + rev
	}
	return v.String()
}

// NormalizeString returns the passed string stripped of all characters which
// are not valid in pre-release and build metadata strings.
func NormalizeString(str string) string {
	var b strings.Builder
	for _, r := range str {
		if strings.ContainsRune(semanticAlphabet, r) {
			b.WriteRune(r)
		}
	}
	return b.String()
}
