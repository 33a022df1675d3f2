package lexer

import (
	"strings"
	"testing"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

func lexAll(t *testing.T, src string, modes func(prev token.Kind) Mode) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.toml", []byte(src))
	bag := diag.NewBag(100)
	lx := New(fs.Get(id), Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	prev := token.Invalid
	for range len(src) + 2 {
		tok := lx.Next(modes(prev))
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, bag
		}
		prev = tok.Kind
	}
	t.Fatalf("lexer did not reach EOF")
	return nil, nil
}

// simpleModes switches to value mode after '=' and back after a newline-bearing token.
func simpleModes(prev token.Kind) Mode {
	if prev == token.Equals || prev == token.Comma || prev == token.LBracket {
		return ModeValue
	}
	return ModeKey
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, tok := range toks {
		out[i] = tok.Kind
	}
	return out
}

func render(toks []token.Token) string {
	var b strings.Builder
	for _, tok := range toks {
		tok.Render(&b)
	}
	return b.String()
}

func TestRoundTripConcatenation(t *testing.T) {
	inputs := []string{
		"",
		"\n\n",
		"# only a comment",
		"a = 1\n",
		"[project]\nname = \"demo\"  # trailing\n\n\n",
		"a.b . c = 'x'\r\nd = [ 1, 2 ,3 ]\r\n",
		"t = { x = 1, y = \"\"\"\nmulti\n\"\"\" }\n",
		"dt = 1979-05-27 07:32:00Z\n",
		"\t  key\t=\t-inf\n",
	}
	for _, src := range inputs {
		toks, bag := lexAll(t, src, simpleModes)
		if bag.HasErrors() {
			t.Errorf("%q: unexpected errors %v", src, bag.Items())
		}
		if got := render(toks); got != src {
			t.Errorf("round trip mismatch:\n got %q\nwant %q", got, src)
		}
	}
}

func TestModesSplitDottedKeysButNotFloats(t *testing.T) {
	toks, _ := lexAll(t, "a.b = 3.14", simpleModes)
	want := []token.Kind{token.BareKey, token.Dot, token.BareKey, token.Equals, token.Bare, token.EOF}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("kinds = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("kinds = %v, want %v", got, want)
		}
	}
	if toks[4].Text != "3.14" {
		t.Errorf("value text = %q", toks[4].Text)
	}
}

func TestDateTimeWithSpace(t *testing.T) {
	toks, _ := lexAll(t, "d = 1979-05-27 07:32:00\ne = 1979-05-27 # day\n", simpleModes)
	if toks[2].Text != "1979-05-27 07:32:00" {
		t.Errorf("datetime = %q", toks[2].Text)
	}
	if toks[5].Text != "1979-05-27" {
		t.Errorf("date = %q", toks[5].Text)
	}
	if !token.HasComment(toks[6].Leading) {
		t.Errorf("comment lost after date: %+v", toks[6].Leading)
	}
}

func TestNewlinesAreNotCoalesced(t *testing.T) {
	toks, _ := lexAll(t, "a = 1\n\r\n\nb = 2", simpleModes)
	var n int
	for _, tv := range toks[3].Leading {
		if tv.Kind == token.TriviaNewline {
			n++
		}
	}
	if n != 3 {
		t.Fatalf("newline trivia = %d, want 3 (%+v)", n, toks[3].Leading)
	}
}

func TestStrings(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{`"plain"`, token.BasicString},
		{`'raw\'`, token.LiteralString},
		{"\"\"\"\nline\n\"\"\"", token.MultiLineBasicString},
		{"'''a''''", token.MultiLineLiteralString},
		{`"""quote "" inside"""`, token.MultiLineBasicString},
		{`""""""`, token.MultiLineBasicString},
	}
	for _, tt := range tests {
		toks, bag := lexAll(t, "k = "+tt.src, simpleModes)
		if bag.HasErrors() {
			t.Errorf("%s: unexpected errors %v", tt.src, bag.Items())
			continue
		}
		if toks[2].Kind != tt.kind || toks[2].Text != tt.src {
			t.Errorf("%s: got %v %q", tt.src, toks[2].Kind, toks[2].Text)
		}
	}
}

func TestLexErrors(t *testing.T) {
	tests := []struct {
		src  string
		code diag.Code
	}{
		{`k = "open`, diag.LexUnterminatedString},
		{"k = \"a\nb\"", diag.LexNewlineInString},
		{`k = "\q"`, diag.LexBadEscape},
		{"k = '''never", diag.LexUnterminatedMultiLine},
		{"k = 1\rb = 2", diag.LexBareCarriageReturn},
		{"k = @", diag.LexUnknownChar},
		{"k = \"a\x01\"", diag.LexControlChar},
		{"k = 1 # bad\x00", diag.LexControlChar},
		{"k = \"\xff\"", diag.LexInvalidUTF8},
	}
	for _, tt := range tests {
		_, bag := lexAll(t, tt.src, simpleModes)
		d, ok := bag.FirstError()
		if !ok {
			t.Errorf("%q: expected %v, got no error", tt.src, tt.code)
			continue
		}
		if d.Code != tt.code {
			t.Errorf("%q: got %v, want %v", tt.src, d.Code, tt.code)
		}
	}
}

func TestErrorTokensStillRoundTrip(t *testing.T) {
	src := "k = \"open\nnext = @\n"
	toks, bag := lexAll(t, src, simpleModes)
	if !bag.HasErrors() {
		t.Fatal("expected errors")
	}
	if got := render(toks); got != src {
		t.Fatalf("got %q, want %q", got, src)
	}
}
