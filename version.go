package lats

import (
	"strconv"
	"strings"

	"github.com/woozymasta/semver"
)

// version is a parsed tag: the structural core plus the prerelease
// ordinal layer the suffix grammar adds on top of plain SemVer.
type version struct {
	raw string        // original input tag
	ver semver.Semver // MAJOR.MINOR.PATCH core
	ord int           // prerelease ordinal N (0 when absent)
	idx int           // input position, tie-breaker
	pre bool          // carries the prerelease suffix
}

// parseVersion strips the prefix and applies the tag grammar:
// PREFIX MAJOR.MINOR.PATCH[-SUFFIX[.N]]. Returns false for anything else.
func parseVersion(raw string, opt Options) (version, bool) {
	rest, ok := strings.CutPrefix(raw, opt.Prefix)
	if !ok {
		return version{}, false
	}

	// After prefix stripping the grammar starts with a digit; "v1.2.3"
	// only matches when the "v" is part of the configured prefix.
	if hasLeadingV(rest) {
		return version{}, false
	}

	v, ok := semver.Parse(rest)
	if !ok || !v.IsValid() {
		return version{}, false
	}

	// Full X.Y.Z only: no X / X.Y shorthand, no +build metadata.
	if !v.HasPatch() || has(v.Flags, semver.FlagHasBuild) {
		return version{}, false
	}

	out := version{raw: raw, ver: v}
	if !v.HasPre() {
		return out, true
	}

	ord, ok := parseOrdinal(v.Prerelease, opt.PrereleaseSuffix)
	if !ok {
		return version{}, false
	}

	out.pre = true
	out.ord = ord

	return out, true
}

// parseOrdinal matches a prerelease segment against SUFFIX or SUFFIX.N.
// A bare SUFFIX means ordinal 0.
func parseOrdinal(pre, suffix string) (int, bool) {
	if suffix == "" {
		return 0, false
	}

	if pre == suffix {
		return 0, true
	}

	num, ok := strings.CutPrefix(pre, suffix+".")
	if !ok {
		return 0, false
	}

	n, err := strconv.Atoi(num)
	if err != nil || n < 0 {
		return 0, false
	}

	return n, true
}

// compare orders versions: numeric core first, then release over
// prerelease, then the prerelease ordinal. Input position is not part of
// the order; callers break full ties by earliest idx.
func (a version) compare(b version) int {
	if c := compareCore(a.ver, b.ver); c != 0 {
		return c
	}

	// Equal core: a release outranks any prerelease.
	switch {
	case !a.pre && b.pre:
		return 1
	case a.pre && !b.pre:
		return -1
	}

	return cmpInt(a.ord, b.ord)
}

// compareCore compares only the MAJOR.MINOR.PATCH triple.
func compareCore(a, b semver.Semver) int {
	if a.Major != b.Major {
		return cmpInt(a.Major, b.Major)
	}

	if a.Minor != b.Minor {
		return cmpInt(a.Minor, b.Minor)
	}

	return cmpInt(a.Patch, b.Patch)
}

func cmpInt(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}
