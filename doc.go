/*
Package lats (Latest App Tag Selector) resolves the most recent release or
prerelease tag from a list of git tag names.

The package is repository-agnostic: it operates purely on a slice of tag
strings. Typical flow:

 1. List raw tags elsewhere (e.g., `git tag` output or a hosting API).
 2. Call Resolve with desired Options (prefix, prerelease policy, filters).
 3. Use the resulting tag, or handle the explicit "none" result.

Tag grammar:
  - Each tag must start with the configured Prefix (empty matches all).
  - The remainder must be MAJOR.MINOR.PATCH, optionally followed by
    -SUFFIX or -SUFFIX.N where SUFFIX equals the configured
    PrereleaseSuffix and N is a decimal ordinal (absent means 0).
  - Anything else — shorthand forms, build metadata, foreign prerelease
    identifiers — is silently filtered out, never an error.

Ordering:
  - MAJOR, MINOR, PATCH compare numerically.
  - A release outranks any prerelease of the same core version.
  - Among prereleases of the same core version, the higher ordinal wins.
  - Full ties keep the earliest input position.

Additional filters:
  - Include / Exclude: optional regex prefilters on raw tag strings
    (before version parsing).

Usage example:

	raw := []string{
		"v1.0.0", "v1.2.0", "v1.1.5", "v2.0.0-prerelease.1",
		"v2.0.0-prerelease.4", "nightly-2024-01-01", "v1.2",
	}

	tag, ok := lats.Resolve(raw, lats.Options{
		Prefix:            "v",
		PrereleaseSuffix:  "prerelease",
		IncludePrerelease: true,
	})

	fmt.Println(tag, ok) // v2.0.0-prerelease.4 true
*/
package lats
