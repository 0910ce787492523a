package climain

import (
	"fmt"
	"os"

	"github.com/coregx/dregex"
	"github.com/coregx/dregex/internal/highlight"
	"github.com/coregx/dregex/term"
	"github.com/projectdiscovery/gologger"
)

// Run compiles opts.Pattern and evaluates opts.Target against it, matching
// spec.md §6's CLI contract: a target that names an existing file is
// searched (printed back with matches highlighted), anything else is
// fullmatched. Returns the process exit code — 0 on success, 1 on
// InvalidPattern — so main can os.Exit without duplicating this logic, and
// so tests can exercise exit codes without the process actually exiting.
func Run(opts *Options) int {
	cp, err := dregex.Compile(opts.Pattern)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 1
	}

	if info, statErr := os.Stat(opts.Target); statErr == nil && !info.IsDir() {
		return runFile(cp, opts)
	}
	return runLiteral(cp, opts)
}

func runLiteral(cp *dregex.CompiledPattern, opts *Options) int {
	gm := cp.FullMatchString(opts.Target)
	if gm == nil {
		gologger.Info().Msgf("no match")
		return 0
	}
	printGroups(gm)
	return 0
}

func runFile(cp *dregex.CompiledPattern, opts *Options) int {
	data, err := os.ReadFile(opts.Target)
	if err != nil {
		gologger.Error().Msgf("%v", err)
		return 1
	}

	gm := cp.Search(data, !opts.NoGreedy, opts.All)
	if gm == nil {
		gologger.Info().Msgf("no match")
		fmt.Println(string(data))
		return 0
	}

	spans := term.MergeIntervals(gm[0], false)
	fmt.Println(highlight.Highlight(data, spans))
	printGroups(gm)
	return 0
}

func printGroups(gm dregex.GroupMap) {
	for gid, spans := range gm {
		for _, sp := range spans {
			gologger.Info().Msgf("group %d: [%d,%d)", gid, sp[0], sp[1])
		}
	}
}
