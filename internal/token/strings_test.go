package token_test

import (
	"testing"

	"pyprojectfmt/internal/token"
)

func TestUnquote(t *testing.T) {
	tests := []struct {
		kind token.Kind
		text string
		want string
	}{
		{token.BasicString, `"plain"`, "plain"},
		{token.BasicString, `"tab\there"`, "tab\there"},
		{token.BasicString, `"quote \" and \\"`, `quote " and \`},
		{token.BasicString, `"\u00e9\U0001F600"`, "é😀"},
		{token.LiteralString, `'C:\path'`, `C:\path`},
		{token.MultiLineLiteralString, "'''\nraw\\n'''", `raw\n`},
		{token.MultiLineBasicString, "\"\"\"\nfirst \\\n   second\"\"\"", "first second"},
	}
	for _, tt := range tests {
		got, err := token.Unquote(tt.kind, tt.text)
		if err != nil {
			t.Fatalf("Unquote(%s) error: %v", tt.text, err)
		}
		if got != tt.want {
			t.Errorf("Unquote(%s) = %q, want %q", tt.text, got, tt.want)
		}
	}
}

func TestUnquoteRejectsBadEscapes(t *testing.T) {
	for _, text := range []string{`"\x41"`, `"\u12"`, `"\uD800"`, `"a\ b"`} {
		if _, err := token.Unquote(token.BasicString, text); err == nil {
			t.Errorf("Unquote(%s) accepted an invalid escape", text)
		}
	}
	if _, err := token.Unquote(token.Bare, "12"); err == nil {
		t.Errorf("Unquote accepted a bare value")
	}
}

func TestQuoteRoundTrip(t *testing.T) {
	for _, s := range []string{"", "simple", `a "b" c`, `back\slash`, "ctl\x01", "line\nbreak"} {
		q := token.Quote(s)
		got, err := token.Unquote(token.BasicString, q)
		if err != nil {
			t.Fatalf("Quote(%q) produced undecodable %s: %v", s, q, err)
		}
		if got != s {
			t.Errorf("Quote round trip: %q -> %s -> %q", s, q, got)
		}
	}
}

func TestSplitLine(t *testing.T) {
	ts := []token.Trivia{
		token.Space,
		token.Comment("# c"),
		token.Newline,
		token.Newline,
		token.Comment("# d"),
	}
	head, rest := token.SplitLine(ts)
	if len(head) != 3 || len(rest) != 2 {
		t.Fatalf("SplitLine sizes = %d/%d, want 3/2", len(head), len(rest))
	}
	head = append(head, token.Space)
	if rest[0].Kind != token.TriviaNewline {
		t.Fatalf("append to head clobbered rest: %+v", rest[0])
	}

	head, rest = token.SplitLine([]token.Trivia{token.Space})
	if len(head) != 1 || rest != nil {
		t.Fatalf("no newline: head=%v rest=%v", head, rest)
	}
}
