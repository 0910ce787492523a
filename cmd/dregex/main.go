// Command dregex is the CLI front end spec.md §6 describes: compile a
// pattern and either fullmatch a literal string or search-and-highlight a
// file.
package main

import (
	"os"

	"github.com/coregx/dregex/internal/climain"
)

func main() {
	opts := climain.ParseFlags()
	os.Exit(climain.Run(opts))
}
