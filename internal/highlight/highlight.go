// Package highlight marks matched spans in a block of text for terminal
// display. It is the one helper spec.md §1 names as an out-of-core
// "external collaborator" alongside the parser and CLI.
package highlight

import (
	"strings"

	"github.com/logrusorgru/aurora"
)

// Highlight renders src as a string with every [start,end) byte span in
// spans wrapped in a terminal highlight (black text on a yellow
// background), leaving the bytes outside any span untouched. spans must be
// sorted and non-overlapping; a span that starts before the end of the
// previous one, or lies outside src, is skipped. The CLI merges search
// results through term.MergeIntervals before calling this.
//
// Grounded on original_source/cli.py's file-walking loop, which prints
// file[i:begin], the highlighted span, then advances i to end; aurora (an
// indirect dependency of gologger already present in go.mod) supplies the
// ANSI styling so no bespoke escape-code table is hand-rolled here.
func Highlight(src []byte, spans [][2]int) string {
	var b strings.Builder
	i := 0
	for _, span := range spans {
		start, end := span[0], span[1]
		if start < i || start > len(src) || end > len(src) || end < start {
			continue
		}
		b.Write(src[i:start])
		b.WriteString(aurora.BgYellow(string(src[start:end])).Black().String())
		i = end
	}
	b.Write(src[i:])
	return b.String()
}
