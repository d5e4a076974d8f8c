package lats

import "testing"

func TestParseVersion(t *testing.T) {
	t.Parallel()

	opt := Options{Prefix: "v", PrereleaseSuffix: "prerelease"}

	cases := []struct {
		in   string
		ok   bool
		pre  bool
		ord  int
		name string
	}{
		{"v1.2.3", true, false, 0, "plain release"},
		{"v0.0.0", true, false, 0, "zero release"},
		{"v1.2.3-prerelease", true, true, 0, "bare suffix means ordinal 0"},
		{"v1.2.3-prerelease.7", true, true, 7, "suffix with ordinal"},
		{"v1.2.3-prerelease.10", true, true, 10, "multi-digit ordinal"},

		{"1.2.3", false, false, 0, "missing prefix"},
		{"release-1.2.3", false, false, 0, "foreign prefix"},
		{"vv1.2.3", false, false, 0, "leading v after prefix"},
		{"v1.2", false, false, 0, "shorthand X.Y"},
		{"v1", false, false, 0, "shorthand X"},
		{"v1.2.3.4", false, false, 0, "four segments"},
		{"va.b.c", false, false, 0, "non-numeric core"},
		{"v1.2.3+build.1", false, false, 0, "build metadata"},
		{"v1.2.3-beta.1", false, false, 0, "foreign prerelease identifier"},
		{"v1.2.3-prerelease.x", false, false, 0, "non-numeric ordinal"},
		{"v1.2.3-prerelease.1.2", false, false, 0, "extra ordinal segment"},
		{"", false, false, 0, "empty tag"},
	}

	for _, tc := range cases {
		got, ok := parseVersion(tc.in, opt)
		if ok != tc.ok {
			t.Fatalf("%s: parseVersion(%q) ok = %v; want %v", tc.name, tc.in, ok, tc.ok)
		}

		if !ok {
			continue
		}

		if got.raw != tc.in {
			t.Fatalf("%s: raw = %q; want %q", tc.name, got.raw, tc.in)
		}

		if got.pre != tc.pre || got.ord != tc.ord {
			t.Fatalf("%s: parseVersion(%q) = (pre=%v ord=%d); want (pre=%v ord=%d)",
				tc.name, tc.in, got.pre, got.ord, tc.pre, tc.ord)
		}
	}
}

func TestParseVersion_EmptyPrefixMatchesAll(t *testing.T) {
	t.Parallel()

	opt := Options{PrereleaseSuffix: "prerelease"}

	if _, ok := parseVersion("1.2.3", opt); !ok {
		t.Fatalf("want 1.2.3 accepted with empty prefix")
	}

	// "v1.2.3" only matches when "v" is part of the prefix.
	if _, ok := parseVersion("v1.2.3", opt); ok {
		t.Fatalf("want v1.2.3 rejected with empty prefix")
	}
}

func TestParseOrdinal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		pre    string
		suffix string
		ord    int
		ok     bool
	}{
		{"prerelease", "prerelease", 0, true},
		{"prerelease.0", "prerelease", 0, true},
		{"prerelease.42", "prerelease", 42, true},
		{"beta.1", "beta", 1, true},

		{"beta.1", "prerelease", 0, false},
		{"prerelease.", "prerelease", 0, false},
		{"prerelease.-1", "prerelease", 0, false},
		{"prerelease.1x", "prerelease", 0, false},
		{"prereleases.1", "prerelease", 0, false},
		{"prerelease.1", "", 0, false}, // empty token never matches
	}

	for _, tc := range cases {
		ord, ok := parseOrdinal(tc.pre, tc.suffix)
		if ok != tc.ok || ord != tc.ord {
			t.Fatalf("parseOrdinal(%q, %q) = (%d, %v); want (%d, %v)",
				tc.pre, tc.suffix, ord, ok, tc.ord, tc.ok)
		}
	}
}

func TestVersionCompare(t *testing.T) {
	t.Parallel()

	opt := Options{PrereleaseSuffix: "prerelease"}
	parse := func(s string) version {
		v, ok := parseVersion(s, opt)
		if !ok {
			t.Fatalf("bad fixture %q", s)
		}
		return v
	}

	cases := []struct {
		a, b string
		want int
	}{
		{"2.0.0", "1.9.9", 1},
		{"1.3.0", "1.2.9", 1},
		{"1.2.4", "1.2.3", 1},
		{"1.2.3", "1.2.3", 0},

		// Release outranks prerelease of the same core version.
		{"1.0.0", "1.0.0-prerelease.9", 1},
		{"1.0.0-prerelease.9", "1.0.0", -1},

		// Higher ordinal wins among equal cores.
		{"1.0.0-prerelease.5", "1.0.0-prerelease.2", 1},
		{"1.0.0-prerelease.10", "1.0.0-prerelease.2", 1}, // numeric, not lexical

		// Bare suffix equals explicit .0 for ranking.
		{"1.0.0-prerelease", "1.0.0-prerelease.0", 0},

		// Core version dominates the prerelease flag.
		{"1.0.1-prerelease.0", "1.0.0", 1},
	}

	for _, tc := range cases {
		if got := parse(tc.a).compare(parse(tc.b)); got != tc.want {
			t.Fatalf("compare(%q, %q) = %d; want %d", tc.a, tc.b, got, tc.want)
		}

		if got := parse(tc.b).compare(parse(tc.a)); got != -tc.want {
			t.Fatalf("compare(%q, %q) = %d; want %d", tc.b, tc.a, got, -tc.want)
		}
	}
}
