package lats

import "sort"

// Resolve returns the most recent tag under the configured policy, or
// ("", false) when no tag matches. Malformed and non-matching tags are
// filtered out, never reported: the only failure mode is an empty result.
//
// Pure function over its inputs; identical inputs yield identical output.
func Resolve(tags []string, opt Options) (string, bool) {
	opt = opt.normalized()

	vs := retain(tags, opt)
	if len(vs) == 0 {
		return "", false
	}

	// Strict > keeps the earliest input position on full ties.
	best := vs[0]
	for _, v := range vs[1:] {
		if v.compare(best) > 0 {
			best = v
		}
	}

	return best.raw, true
}

// Candidates returns every retained tag ordered best-first, capped by
// opt.Limit. Resolve is equivalent to taking the first element.
func Candidates(tags []string, opt Options) []string {
	opt = opt.normalized()

	vs := retain(tags, opt)
	sortVersions(vs)

	out := make([]string, 0, len(vs))
	for _, v := range vs {
		out = append(out, v.raw)
	}

	return capStrings(out, opt.Limit)
}

// Latest resolves with an ad-hoc Options value, in one call.
func Latest(tags []string, prefix, prereleaseSuffix string, includePrerelease bool) (string, bool) {
	return Resolve(tags, Options{
		Prefix:            prefix,
		PrereleaseSuffix:  prereleaseSuffix,
		IncludePrerelease: includePrerelease,
	})
}

// retain runs the pipeline up to selection: cheap raw prefilter, parse
// once, apply the prerelease policy. Input order is preserved.
func retain(tags []string, opt Options) []version {
	vs := make([]version, 0, len(tags))

	for idx, raw := range tags {
		if !prefilterTag(raw, opt) {
			continue
		}

		v, ok := parseVersion(raw, opt)
		if !ok {
			continue
		}

		if v.pre && !opt.IncludePrerelease {
			continue
		}

		v.idx = idx
		vs = append(vs, v)
	}

	return vs
}

// prefilterTag: cheap string-only checks before parsing (user regexes).
func prefilterTag(t string, opt Options) bool {
	if opt.Include != nil && !opt.Include.MatchString(t) {
		return false
	}

	if opt.Exclude != nil && opt.Exclude.MatchString(t) {
		return false
	}

	return true
}

// sortVersions orders descending; full ties keep input order.
func sortVersions(vs []version) {
	if len(vs) < 2 {
		return
	}

	sort.SliceStable(vs, func(i, j int) bool {
		c := vs[i].compare(vs[j])
		if c == 0 {
			return vs[i].idx < vs[j].idx
		}

		return c > 0
	})
}
