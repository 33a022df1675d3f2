package parser

import (
	"errors"
	"testing"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
)

func parse(t *testing.T, src string) (*cst.Document, error) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("pyproject.toml", []byte(src))
	return Parse(fs.Get(id))
}

func mustParse(t *testing.T, src string) *cst.Document {
	t.Helper()
	doc, err := parse(t, src)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	return doc
}

const sample = `# leading comment

[build-system]
requires = [ "setuptools >= 61.0.0", # pinned
  'wheel',
]
build-backend = "setuptools.build_meta"

[project]
name    = "demo"   # the name
version = "1.0.0"
classifiers = [
    # license
    "License :: OSI Approved :: MIT License",
    "Programming Language :: Python :: 3.9"
]
urls.homepage = "https://example.org"
urls . docs = "https://example.org/docs"
optional-dependencies = { test = ["pytest"], docs = [] }
description = """
multi
line"""

[[tool.demo.item]]
a = 1_000
b = 0xff_00
c = -inf
d = 1979-05-27 07:32:00Z
e = 07:32:00
f = true
g = 6.626e-34

[[tool.demo.item]]
a = 2
`

func TestRoundTrip(t *testing.T) {
	inputs := []string{
		"",
		"\n",
		"# only\n# comments",
		"a = 1",
		sample,
		"a = 1\r\nb = [\r\n  1,\r\n]\r\n",
		"x = [ [1, 2], [ 'a' , \"b\" ] , ]\n\n\n",
		"x = [\n  1, # one\n  2 # two\n  # dangling\n]\n",
		"t = {}\nu = { a.b = 1, c = { d = [] } }\n",
		"[ a . b ]   # spaced\nk = 'v'\n",
	}
	for _, src := range inputs {
		doc := mustParse(t, src)
		if got := string(cst.Render(doc)); got != src {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
		}
		if got := string(cst.Render(doc.Clone())); got != src {
			t.Errorf("clone round trip mismatch for %q", src)
		}
	}
}

func TestTriviaSplitting(t *testing.T) {
	doc := mustParse(t, "a = 1 # one\n\n# about b\nb = 2\n")
	a, b := doc.Root.Entries[0], doc.Root.Entries[1]
	if got := cst.TriviaText(a.Trailing); got != " # one\n" {
		t.Errorf("a.Trailing = %q", got)
	}
	if got := cst.TriviaText(b.Leading); got != "\n# about b\n" {
		t.Errorf("b.Leading = %q", got)
	}
	if got := cst.TriviaText(b.Trailing); got != "\n" {
		t.Errorf("b.Trailing = %q", got)
	}
}

func TestArrayTrivia(t *testing.T) {
	doc := mustParse(t, "x = [ # open\n  1, # one\n  # own\n  2\n]\n")
	arr := doc.Root.Entries[0].Value.(*cst.Array)
	if got := cst.TriviaText(arr.OpenTrailing); got != " # open\n" {
		t.Errorf("OpenTrailing = %q", got)
	}
	if len(arr.Items) != 2 {
		t.Fatalf("items = %d", len(arr.Items))
	}
	if got := cst.TriviaText(arr.Items[0].Trailing); got != " # one\n" {
		t.Errorf("item 0 trailing = %q", got)
	}
	if got := cst.TriviaText(arr.Items[1].Leading); got != "  # own\n  " {
		t.Errorf("item 1 leading = %q", got)
	}
	if got := cst.TriviaText(arr.Items[1].Trailing); got != "\n" {
		t.Errorf("item 1 trailing = %q", got)
	}
	if !arr.HasComment() {
		t.Error("HasComment = false")
	}
}

func TestScalarKinds(t *testing.T) {
	doc := mustParse(t, sample)
	want := map[string]cst.ScalarKind{
		"a": cst.Integer, "b": cst.Integer, "c": cst.Float, "d": cst.DateTime,
		"e": cst.DateTime, "f": cst.Bool, "g": cst.Float,
	}
	tbl := doc.Tables[len(doc.Tables)-2]
	for _, kv := range tbl.Entries {
		sc, ok := kv.Value.(*cst.Scalar)
		if !ok {
			t.Fatalf("%s: not a scalar", kv.Key)
		}
		if sc.Kind != want[kv.Key.String()] {
			t.Errorf("%s: kind %v, want %v", kv.Key, sc.Kind, want[kv.Key.String()])
		}
	}
}

func TestHeadersAndKeys(t *testing.T) {
	doc := mustParse(t, sample)
	if len(doc.Tables) != 4 {
		t.Fatalf("tables = %d, want 4", len(doc.Tables))
	}
	h := doc.Tables[2].Header
	if !h.Array || h.Open.Text != "[[" || h.Close.Text != "]]" {
		t.Errorf("array header = %+v", h)
	}
	if got := h.Key.String(); got != "tool.demo.item" {
		t.Errorf("header key = %q", got)
	}
	project := doc.Table("project")
	if project == nil {
		t.Fatal("no [project]")
	}
	if kv := project.Entry("urls", "docs"); kv == nil {
		t.Error("urls.docs not found")
	}
	var paths []string
	cst.Walk(doc, func(path []string, kv *cst.KeyValue) {
		if len(path) == 3 && path[1] == "optional-dependencies" {
			paths = append(paths, path[2])
		}
	})
	if len(paths) != 2 || paths[0] != "test" || paths[1] != "docs" {
		t.Errorf("inline entries = %v", paths)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		src  string
		code diag.Code
		line uint32
	}{
		{"unterminated string", "a = \"x\n", diag.LexNewlineInString, 1},
		{"missing equals", "a 1\n", diag.SynExpectEquals, 1},
		{"missing value", "a =\n", diag.SynExpectValue, 1},
		{"two values on a line", "a = 1 b = 2\n", diag.SynExpectNewline, 1},
		{"unclosed array", "a = [1, 2\n", diag.SynUnclosedBracket, 1},
		{"missing comma", "a = [1 2]\n", diag.SynUnexpectedToken, 1},
		{"unclosed inline", "a = { b = 1", diag.SynUnclosedBrace, 1},
		{"newline in inline", "a = { b = 1,\n c = 2 }\n", diag.SynNewlineInInline, 2},
		{"trailing comma inline", "a = { b = 1, }\n", diag.SynTrailingCommaInline, 1},
		{"bad header", "[a\n", diag.SynExpectHeaderClose, 2},
		{"bad value", "a = 1.2.3\n", diag.LexBadBareValue, 1},
		{"bad date", "a = 2024-13-01\n", diag.LexBadBareValue, 1},
		{"leading zero", "a = 012\n", diag.LexBadBareValue, 1},
		{"duplicate key", "a = 1\nb = 2\na = 3\n", diag.SemDuplicateKey, 3},
		{"duplicate inline key", "a = { b = 1, b = 2 }\n", diag.SemDuplicateKey, 1},
		{"table redefined", "[a]\n[b]\n[a]\n", diag.SemTableRedefined, 3},
		{"dotted then header", "[a]\nb.c = 1\n[a.b]\n", diag.SemTableRedefined, 3},
		{"dotted into header", "[a.b]\n[a]\nb.c = 1\n", diag.SemDottedIntoHeader, 3},
		{"key not table", "a = 1\n[a.b]\n", diag.SemKeyNotTable, 2},
		{"static array", "a = []\n[[a]]\n", diag.SemStaticArrayExtended, 2},
		{"inline is sealed", "a = {}\n[a.b]\n", diag.SemKeyNotTable, 2},
		{"control char in comment", "a = 1 # \x07\n", diag.LexControlChar, 1},
		{"garbage", "= 1\n", diag.SynExpectKey, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc, err := parse(t, tt.src)
			if err == nil {
				t.Fatalf("expected error, got document %q", cst.Render(doc))
			}
			var perr *Error
			if !errors.As(err, &perr) {
				t.Fatalf("error %T is not *Error", err)
			}
			if perr.Code != tt.code {
				t.Errorf("code = %v, want %v (%v)", perr.Code, tt.code, err)
			}
			if perr.Pos.Line != tt.line {
				t.Errorf("line = %d, want %d (%v)", perr.Pos.Line, tt.line, err)
			}
		})
	}
}

func TestValidRedefinitions(t *testing.T) {
	inputs := []string{
		"[a.b]\n[a]\nc = 1\n",
		"[a]\nb.c = 1\n[a.b.d]\ne = 1\n",
		"[[a]]\nx = 1\n[[a]]\nx = 2\n[a.sub]\ny = 1\n",
		"a.b = 1\na.c = 2\n",
	}
	for _, src := range inputs {
		if _, err := parse(t, src); err != nil {
			t.Errorf("%q: unexpected error %v", src, err)
		}
	}
}

func TestErrorMessageHasPosition(t *testing.T) {
	_, err := parse(t, "a = 1\n  b = [\n")
	if err == nil {
		t.Fatal("expected error")
	}
	var perr *Error
	if !errors.As(err, &perr) {
		t.Fatalf("unexpected error type %T", err)
	}
	if perr.Pos != (source.LineCol{Line: 2, Col: 7}) || perr.Offset != 12 {
		t.Errorf("pos = %+v offset %d", perr.Pos, perr.Offset)
	}
	if got, want := err.Error(), "pyproject.toml:2:7: SYN2006: unclosed '['"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}
}
