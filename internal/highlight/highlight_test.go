package highlight

import (
	"regexp"
	"testing"
)

var ansiRE = regexp.MustCompile("\x1b\\[[0-9;]*m")

func stripANSI(s string) string {
	return ansiRE.ReplaceAllString(s, "")
}

func TestHighlightPreservesContent(t *testing.T) {
	src := []byte("xxabxxabxx")
	spans := [][2]int{{2, 4}, {6, 8}}
	got := Highlight(src, spans)
	if stripANSI(got) != string(src) {
		t.Errorf("stripANSI(Highlight(...)) = %q, want %q", stripANSI(got), src)
	}
}

func TestHighlightWrapsEachSpan(t *testing.T) {
	src := []byte("abcdef")
	got := Highlight(src, [][2]int{{1, 3}})
	if !regexp.MustCompile(`\x1b\[.*bc.*\x1b\[0m`).MatchString(got) {
		t.Errorf("Highlight(%q) = %q, want the span %q wrapped in ANSI codes", src, got, "bc")
	}
}

func TestHighlightNoSpans(t *testing.T) {
	src := []byte("unchanged")
	if got := Highlight(src, nil); got != string(src) {
		t.Errorf("Highlight with no spans = %q, want %q unchanged", got, src)
	}
}
