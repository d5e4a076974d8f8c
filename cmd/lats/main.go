/*
Package main is the LATS cli tool (Latest App Tag Selector):
resolves the most recent release or prerelease tag from a tag list.
*/
package main

import (
	"bufio"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/woozymasta/lats"

	"github.com/jessevdk/go-flags"
)

type Options struct {
	// Resolution policy
	OptionsPolicy OptionsPolicy `group:"Resolution policy"`
	// Input filters
	OptionsFilter OptionsFilter `group:"Input filters"`
	// Output format
	OptionsOutput OptionsOutput `group:"Output"`
}

type OptionsPolicy struct {
	TagPrefix        string `short:"t" long:"tag-prefix"        description:"Prefix stripped from tags before version parsing" default:""`
	PrereleaseSuffix string `short:"p" long:"prerelease-suffix" description:"Prerelease token (e.g. beta, rc)" default:"prerelease"`
	ReleaseBranch    string `short:"r" long:"release-branch"    description:"Branch whose checkout means release-only resolution"`
	Branch           string `short:"b" long:"branch"            description:"Currently checked-out branch, compared against --release-branch"`
	Prerelease       bool   `short:"P" long:"prerelease"        description:"Include prerelease tags (overrides the branch pair)"`
}

type OptionsFilter struct {
	Include string `short:"i" long:"include" description:"Regexp to keep tags (applied before parsing)"`
	Exclude string `short:"e" long:"exclude" description:"Regexp to drop tags (applied before parsing)"`
}

type OptionsOutput struct {
	All   bool `short:"a" long:"all"   description:"Print every matching tag, best first"`
	Limit int  `short:"n" long:"limit" description:"Max number of tags with --all (<=0 = unlimited)" default:"0"`
	Quiet bool `short:"q" long:"quiet" description:"Suppress the no-matching-tag diagnostic"`
}

func main() {
	var opt Options
	parser := flags.NewParser(&opt, flags.Default|flags.AllowBoolValues)
	parser.LongDescription = `LATS — Latest App Tag Selector.
A CLI tool that picks the most recent tag from a tag list:
strips a configurable prefix, keeps MAJOR.MINOR.PATCH[-suffix.N] tags,
and resolves the maximum under SemVer ordering. Tags are read from stdin,
one per line.`
	if _, err := parser.Parse(); err != nil {
		if flagErr, ok := err.(*flags.Error); ok && flagErr.Type == flags.ErrHelp {
			os.Exit(0)
		}
		os.Exit(2)
	}

	// Read stdin line by line, skip blanks
	in := make([]string, 0, 1024)
	sc := bufio.NewScanner(os.Stdin)
	const maxLine = 10 * 1024 * 1024
	buf := make([]byte, 0, 64*1024)
	sc.Buffer(buf, maxLine)
	for sc.Scan() {
		if s := strings.TrimSpace(sc.Text()); s != "" {
			in = append(in, s)
		}
	}
	if err := sc.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "read stdin: %v\n", err)
		os.Exit(2)
	}

	// Compile regexes (when set)
	var incRe, excRe *regexp.Regexp
	if s := strings.TrimSpace(opt.OptionsFilter.Include); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "include regexp: %v\n", err)
			os.Exit(2)
		}
		incRe = re
	}
	if s := strings.TrimSpace(opt.OptionsFilter.Exclude); s != "" {
		re, err := regexp.Compile(s)
		if err != nil {
			fmt.Fprintf(os.Stderr, "exclude regexp: %v\n", err)
			os.Exit(2)
		}
		excRe = re
	}

	// Prerelease policy: explicit flag wins, otherwise derived from the
	// branch pair (prereleases included off the release branch).
	includePre := opt.OptionsPolicy.Prerelease
	if !includePre && opt.OptionsPolicy.ReleaseBranch != "" && opt.OptionsPolicy.Branch != "" {
		includePre = opt.OptionsPolicy.Branch != opt.OptionsPolicy.ReleaseBranch
	}

	rOpt := lats.DefaultOptions()
	rOpt.Prefix = opt.OptionsPolicy.TagPrefix
	rOpt.PrereleaseSuffix = opt.OptionsPolicy.PrereleaseSuffix
	rOpt.IncludePrerelease = includePre
	rOpt.Include = incRe
	rOpt.Exclude = excRe
	rOpt.Limit = opt.OptionsOutput.Limit

	if opt.OptionsOutput.All {
		out := lats.Candidates(in, rOpt)
		if len(out) == 0 {
			noTag(opt.OptionsOutput.Quiet)
		}
		for _, t := range out {
			fmt.Println(t)
		}
		return
	}

	tag, ok := lats.Resolve(in, rOpt)
	if !ok {
		noTag(opt.OptionsOutput.Quiet)
	}
	fmt.Println(tag)
}

// noTag reports the empty result and exits; an empty stdout line is never
// printed so "no tag" cannot be mistaken for a real tag.
func noTag(quiet bool) {
	if !quiet {
		fmt.Fprintln(os.Stderr, "no matching tags found")
	}
	os.Exit(1)
}
