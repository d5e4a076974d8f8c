package lats

import "regexp"

// DefaultSuffix is the prerelease token assumed when Options leaves
// PrereleaseSuffix empty.
const DefaultSuffix = "prerelease"

// Options configures tag resolution behavior.
type Options struct {
	// Prefix is stripped from the start of each tag before version
	// parsing. Tags that do not start with it are discarded.
	// Empty matches every tag.
	Prefix string

	// PrereleaseSuffix is the token that marks a prerelease segment
	// (e.g. "prerelease", "beta", "rc"). Tags whose prerelease segment
	// carries any other identifier are discarded.
	PrereleaseSuffix string

	// IncludePrerelease keeps prerelease tags in the running alongside
	// releases. When false, only release tags are considered.
	IncludePrerelease bool

	// Include positive regex filter applied to the raw tag; keep only tags that match.
	Include *regexp.Regexp

	// Exclude negative regex filter applied to the raw tag; drop tags that match.
	Exclude *regexp.Regexp

	// Limit caps Candidates output (<=0 = unlimited). Resolve ignores it.
	Limit int
}

// DefaultOptions returns the stock preset: no prefix, "prerelease"
// suffix, releases only.
func DefaultOptions() Options {
	return Options{
		PrereleaseSuffix: DefaultSuffix,
	}
}

// normalized returns a copy with implicit defaults applied.
func (o Options) normalized() Options {
	out := o

	if out.PrereleaseSuffix == "" {
		out.PrereleaseSuffix = DefaultSuffix
	}

	return out
}
