package pep508

import (
	"errors"
	"testing"
)

func TestCanonicalForm(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"requests", "requests"},
		{"requests >= 2.0", "requests>=2.0"},
		{"requests[socks , security] >=2.0.0, <3", "requests[security,socks]>=2.0.0,<3"},
		{"django (>=4.2)", "django>=4.2"},
		{"tomli>=1.1 ; python_version<'3.11'", `tomli>=1.1; python_version < "3.11"`},
		{`pywin32; (sys_platform=="win32" and python_version>="3.8")`, `pywin32; (sys_platform == "win32" and python_version >= "3.8")`},
		{"pkg @ https://example.org/pkg.whl", "pkg @ https://example.org/pkg.whl"},
		{"pkg@https://example.org/pkg.whl ; os_name == 'nt'", `pkg @ https://example.org/pkg.whl ; os_name == "nt"`},
		{"  black  ", "black"},
		{"pkg ; extra == 'test' or (os_name != 'nt' and '3.9' <= python_version)", `pkg; extra == "test" or (os_name != "nt" and "3.9" <= python_version)`},
		{"pkg ; 'linux' not in sys_platform", `pkg; "linux" not in sys_platform`},
		{"pkg @ file:///tmp/pkg.tar.gz", "pkg @ file:///tmp/pkg.tar.gz"},
	}
	for _, tt := range tests {
		r, err := Parse(tt.in)
		if err != nil {
			t.Fatalf("Parse(%q): %v", tt.in, err)
		}
		if got := r.String(); got != tt.want {
			t.Errorf("Parse(%q).String() = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestTrimVersions(t *testing.T) {
	r, err := Parse("numpy >=1.20.0, !=1.22.0, ~=1.21.0, <2.0.0")
	if err != nil {
		t.Fatal(err)
	}
	if got, want := r.TrimVersions().String(), "numpy>=1.20,!=1.22,~=1.21.0,<2.0"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	if got := r.String(); got != "numpy>=1.20.0,!=1.22.0,~=1.21.0,<2.0.0" {
		t.Fatalf("TrimVersions mutated the receiver: %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{
		"",
		">=1.0",
		"pkg[extra",
		"pkg >= banana",
		"pkg ; ",
		"pkg ; python_version < '3.11",
		"pkg ; (os_name == 'nt'",
		"pkg @ ",
		"pkg @ https://x y",
		"pkg (>=1.0",
		"bad-dep @@@",
		"pkg @",
		"pkg @ ./local/path",
		"pkg>=1.0.0 ; python_version <",
		"pkg ; and",
		"pkg ; os_name ==",
		"pkg ; python_version < '3.11' and",
		"pkg ; '3.11'",
		"pkg ; python_version '3.11'",
		"pkg ; os_name not '1'",
		"pkg ; colour == 'red'",
		"pkg ; (os_name == 'nt') or",
		"pkg ; os_name == 'nt')",
	} {
		if _, err := Parse(in); !errors.Is(err, ErrInvalidRequirement) {
			t.Errorf("Parse(%q) err = %v", in, err)
		}
	}
}

func TestCanonicalName(t *testing.T) {
	tests := map[string]string{
		"Django":            "django",
		"zope.interface":    "zope-interface",
		"typing_extensions": "typing-extensions",
		"A-_.B":             "a-b",
	}
	for in, want := range tests {
		if got := CanonicalName(in); got != want {
			t.Errorf("CanonicalName(%q) = %q, want %q", in, got, want)
		}
	}
}
