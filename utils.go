package lats

import "github.com/woozymasta/semver"

// capStrings returns out[:min(limit, len(out))] if limit>0; otherwise out.
func capStrings(out []string, limit int) []string {
	if limit > 0 && limit < len(out) {
		return out[:limit]
	}

	return out
}

// hasLeadingV reports a leading 'v'/'V' on the string.
func hasLeadingV(s string) bool {
	return len(s) > 0 && (s[0] == 'v' || s[0] == 'V')
}

func has(f, bit semver.Flags) bool {
	return (f & bit) != 0
}
