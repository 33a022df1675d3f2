package version

import (
	"testing"

	"github.com/fatih/color"
)

func TestVersion_DefaultValues(t *testing.T) {
	if Version == "" {
		t.Error("Version should have a default value")
	}
}

func TestColoredPlain(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()
	color.NoColor = true

	tests := []struct {
		in, want string
	}{
		{"1.2.3", "1.2.3"},
		{"0.1.0-dev", "0.1.0-dev"},
		{"1.2.3-rc.1+build.123", "1.2.3-rc.1+build.123"},
		{"nightly", "nightly"},
	}
	for _, tt := range tests {
		Version = tt.in
		if got := Colored(); got != tt.want {
			t.Errorf("Colored() for %q = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestColoredHighlightsParts(t *testing.T) {
	orig, origNoColor := Version, color.NoColor
	defer func() { Version, color.NoColor = orig, origNoColor }()
	color.NoColor = false

	Version = "1.2.3"
	if got := Colored(); got == "1.2.3" {
		t.Fatalf("Colored() = %q, expected escape sequences", got)
	}
}

func TestString(t *testing.T) {
	orig, origCommit, origDate, origNoColor := Version, GitCommit, BuildDate, color.NoColor
	defer func() { Version, GitCommit, BuildDate, color.NoColor = orig, origCommit, origDate, origNoColor }()
	color.NoColor = true

	Version, GitCommit, BuildDate = "1.0.0", "", ""
	if got := String(); got != "pyproject-fmt 1.0.0" {
		t.Errorf("String() = %q", got)
	}
	GitCommit, BuildDate = "abc123", "2024-01-15"
	if got, want := String(), "pyproject-fmt 1.0.0 (abc123) built 2024-01-15"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
