package cst

import (
	"testing"

	"pyprojectfmt/internal/token"
)

func TestNewKeyQuotesNonBareNames(t *testing.T) {
	k := NewKey("tool", "pyproject-fmt", "a b")
	if got, want := RenderKey(k), `tool.pyproject-fmt."a b"`; got != want {
		t.Fatalf("RenderKey = %q, want %q", got, want)
	}
	if got := k.Names(); len(got) != 3 || got[2] != "a b" {
		t.Fatalf("Names = %q", got)
	}
	if !k.Dotted() || k.First() != "tool" {
		t.Fatalf("Dotted/First wrong for %q", k)
	}
}

func TestSyntheticKeyValue(t *testing.T) {
	arr := NewArray(NewString("a"), NewString(`b"c`))
	kv := NewKeyValue(NewKey("classifiers"), arr)
	if got, want := RenderKeyValue(kv), "classifiers = [\"a\",\"b\\\"c\"]\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
	strs, ok := arr.Strings()
	if !ok || len(strs) != 2 || strs[1] != `b"c` {
		t.Fatalf("Strings = %q, %v", strs, ok)
	}
}

func TestCloneIsDeep(t *testing.T) {
	kv := NewKeyValue(NewKey("a"), NewArray(NewString("x")))
	doc := &Document{Root: &Table{Entries: []*KeyValue{kv}}}
	cp := doc.Clone()

	arr := cp.Root.Entries[0].Value.(*Array)
	arr.Items[0].Value.(*Scalar).Tok.Text = `"y"`
	arr.Open.Leading[0] = token.Newline

	if got := string(Render(doc)); got != "a = [\"x\"]\n" {
		t.Fatalf("original changed: %q", got)
	}
	if got := string(Render(cp)); got != "a =\n[\"y\"]\n" {
		t.Fatalf("clone = %q", got)
	}
}

func TestHasMultiLineString(t *testing.T) {
	ml := &Scalar{Kind: String, Tok: token.New(token.MultiLineBasicString, `"""x"""`)}
	if !HasMultiLineString(NewArray(NewString("a"), ml)) {
		t.Fatal("nested multi-line string not found")
	}
	if HasMultiLineString(NewArray(NewString("a"))) {
		t.Fatal("false positive")
	}
}
