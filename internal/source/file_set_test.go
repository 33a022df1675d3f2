package source

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileSetVersioning(t *testing.T) {
	fs := NewFileSet()

	id1 := fs.Add("pyproject.toml", []byte("a = 1\n"), 0)
	id2 := fs.Add("pyproject.toml", []byte("a = 2\n"), 0)
	if id1 == id2 {
		t.Fatalf("expected distinct ids, got %d twice", id1)
	}
	latest, ok := fs.GetLatest("pyproject.toml")
	if !ok || latest != id2 {
		t.Fatalf("GetLatest = %d,%v; want %d,true", latest, ok, id2)
	}
	if got := string(fs.Get(id1).Content); got != "a = 1\n" {
		t.Fatalf("old version lost: %q", got)
	}
}

func TestResolvePositions(t *testing.T) {
	fs := NewFileSet()
	id := fs.AddVirtual("x.toml", []byte("a = 1\nbb = 2\n\nccc"))

	tests := []struct {
		off  uint32
		want LineCol
	}{
		{0, LineCol{Line: 1, Col: 1}},
		{5, LineCol{Line: 1, Col: 6}}, // the '\n' itself
		{6, LineCol{Line: 2, Col: 1}},
		{9, LineCol{Line: 2, Col: 4}},
		{13, LineCol{Line: 3, Col: 1}},
		{14, LineCol{Line: 4, Col: 1}},
		{16, LineCol{Line: 4, Col: 3}},
	}
	for _, tt := range tests {
		start, _ := fs.Resolve(Span{File: id, Start: tt.off, End: tt.off})
		if start != tt.want {
			t.Errorf("offset %d: got %+v, want %+v", tt.off, start, tt.want)
		}
	}
}

func TestGetLine(t *testing.T) {
	fs := NewFileSet()
	f := fs.Get(fs.AddVirtual("x.toml", []byte("first\nsecond\nthird")))
	for i, want := range []string{"first", "second", "third", ""} {
		if got := f.GetLine(uint32(i + 1)); got != want {
			t.Errorf("line %d: got %q, want %q", i+1, got, want)
		}
	}
	if got := f.GetLine(0); got != "" {
		t.Errorf("line 0: got %q", got)
	}
}

func TestLoadNormalizesAndRestores(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pyproject.toml")
	raw := []byte("\xEF\xBB\xBF[project]\r\nname = \"x\"\r\n")
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	fs := NewFileSet()
	id, err := fs.Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	f := fs.Get(id)
	if got, want := string(f.Content), "[project]\nname = \"x\"\n"; got != want {
		t.Fatalf("content = %q, want %q", got, want)
	}
	if f.Flags&FileHadBOM == 0 || f.Flags&FileNormalizedCRLF == 0 {
		t.Fatalf("flags not recorded: %08b", f.Flags)
	}
	if got := f.Restore(append([]byte(nil), f.Content...)); string(got) != string(raw) {
		t.Fatalf("Restore = %q, want %q", got, raw)
	}
}

func TestLoneCarriageReturnKept(t *testing.T) {
	out, changed := normalizeCRLF([]byte("a\rb\r\n"))
	if !changed || string(out) != "a\rb\n" {
		t.Fatalf("got %q changed=%v", out, changed)
	}
}

func TestSpanCover(t *testing.T) {
	a := Span{File: 1, Start: 4, End: 8}
	b := Span{File: 1, Start: 2, End: 6}
	if got := a.Cover(b); got != (Span{File: 1, Start: 2, End: 8}) {
		t.Fatalf("Cover = %v", got)
	}
	if got := a.Cover(Span{File: 2, Start: 0, End: 20}); got != a {
		t.Fatalf("cross-file Cover changed span: %v", got)
	}
}
