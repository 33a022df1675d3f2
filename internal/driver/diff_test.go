package driver

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDiff(t *testing.T) {
	got := Diff("pyproject.toml", []byte("a\nb\nc\n"), []byte("a\nB\nc\n"), false)
	want := "--- pyproject.toml\n+++ pyproject.toml\n@@ -1,3 +1,3 @@\n a\n-b\n+B\n c\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

func TestDiffEqual(t *testing.T) {
	if got := Diff("p", []byte("same\n"), []byte("same\n"), false); got != "" {
		t.Fatalf("Diff of equal inputs = %q", got)
	}
}

func TestDiffSplitsDistantHunks(t *testing.T) {
	var before, after []string
	for i := range 20 {
		line := strings.Repeat("x", i+1)
		before = append(before, line)
		if i == 1 || i == 17 {
			line += "!"
		}
		after = append(after, line)
	}
	got := Diff("p", []byte(strings.Join(before, "\n")+"\n"), []byte(strings.Join(after, "\n")+"\n"), false)
	if n := strings.Count(got, "@@ -"); n != 2 {
		t.Fatalf("hunks = %d, want 2:\n%s", n, got)
	}
	if !strings.Contains(got, "@@ -1,5 +1,5 @@") || !strings.Contains(got, "@@ -15,6 +15,6 @@") {
		t.Fatalf("unexpected hunk headers:\n%s", got)
	}
}

func TestDiffMissingFinalNewline(t *testing.T) {
	got := Diff("p", []byte("a = 1"), []byte("a = 1\n"), false)
	if !strings.Contains(got, "-a = 1\n\\ No newline at end of file\n+a = 1\n") {
		t.Fatalf("got:\n%s", got)
	}
}

func TestDiffColored(t *testing.T) {
	got := Diff("p", []byte("a\n"), []byte("b\n"), true)
	if !strings.Contains(got, "\x1b[31m-a") || !strings.Contains(got, "\x1b[32m+b") {
		t.Fatalf("colours missing: %q", got)
	}
}

func TestDiffSummary(t *testing.T) {
	if got := DiffSummary("p", []byte("a\nb\n"), []byte("a\nc\nd\n")); got != "p: +2 -1 lines" {
		t.Fatalf("got %q", got)
	}
}
