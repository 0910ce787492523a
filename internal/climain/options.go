// Package climain is the runner behind cmd/dregex: flag parsing and the
// compile-then-evaluate loop spec.md §6 describes for the external CLI
// front end. Grounded on projectdiscovery-alterx's internal/runner package
// (goflags.NewFlagSet + CreateGroup for flags, gologger for every
// user-facing message) — the shape that pack repo uses for exactly this
// "parse flags, hand an Options struct to the library" split, which the
// teacher itself never needed since it ships no CLI.
package climain

import (
	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
)

// Options holds the parsed command-line flags for cmd/dregex.
type Options struct {
	// All finds every non-overlapping match instead of stopping at the first.
	All bool
	// NoGreedy takes the shortest matching prefix instead of the longest.
	NoGreedy bool
	// Pattern is the textual pattern to compile.
	Pattern string
	// Target is either a literal string to fullmatch, or the path to a file
	// to search and print with matches highlighted.
	Target string
}

// ParseFlags parses argv into an Options, exiting the process via
// gologger.Fatal on a flag-parsing failure or missing required flag — flag
// parsing itself is not part of the InvalidPattern/exit-1 contract spec.md
// §7 defines for Compile, so it is not routed through Run's return code.
func ParseFlags() *Options {
	opts := &Options{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("dregex: a Brzozowski-derivative regular expression engine.")

	flagSet.CreateGroup("search", "Search",
		flagSet.BoolVar(&opts.All, "all", false, "find every non-overlapping match instead of only the first"),
		flagSet.BoolVar(&opts.NoGreedy, "no-greedy", false, "take the shortest matching prefix instead of the longest"),
	)
	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Pattern, "pattern", "p", "", "pattern to compile"),
		flagSet.StringVarP(&opts.Target, "target", "t", "", "literal string to fullmatch, or a file path to search"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("dregex: could not read flags: %s", err)
	}
	if opts.Pattern == "" {
		gologger.Fatal().Msgf("dregex: -pattern is required")
	}
	if opts.Target == "" {
		gologger.Fatal().Msgf("dregex: -target is required")
	}
	return opts
}
