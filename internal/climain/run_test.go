package climain

import (
	"os"
	"path/filepath"
	"testing"
)

func TestRunFullMatchExitCode(t *testing.T) {
	got := Run(&Options{Pattern: "a*", Target: "aaa"})
	if got != 0 {
		t.Errorf("Run(literal target) = %d, want 0", got)
	}
}

func TestRunInvalidPatternExitCode(t *testing.T) {
	got := Run(&Options{Pattern: "(a", Target: "aaa"})
	if got != 1 {
		t.Errorf("Run(invalid pattern) = %d, want 1", got)
	}
}

func TestRunFileTargetExitCode(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "input.txt")
	if err := os.WriteFile(path, []byte("xxabxx"), 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	got := Run(&Options{Pattern: "(ab)", Target: path, All: true})
	if got != 0 {
		t.Errorf("Run(file target) = %d, want 0", got)
	}
}
