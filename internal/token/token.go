package token

import (
	"strings"

	"pyprojectfmt/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// New builds a synthetic token (no source position) for text produced by a pass.
func New(kind Kind, text string) Token {
	return Token{Kind: kind, Text: text}
}

// IsKey reports whether the token can start or continue a key.
func (t Token) IsKey() bool {
	switch t.Kind {
	case BareKey, BasicString, LiteralString:
		return true
	default:
		return false
	}
}

// Render appends leading trivia and the token text to b.
func (t Token) Render(b *strings.Builder) {
	for _, tv := range t.Leading {
		b.WriteString(tv.Text)
	}
	b.WriteString(t.Text)
}

// HasComment reports whether any leading trivia is a comment.
func (t Token) HasComment() bool {
	return HasComment(t.Leading)
}
