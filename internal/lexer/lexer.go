package lexer

import (
	"unicode/utf8"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

// Mode selects how unquoted text is lexed. TOML keys and values share no
// delimiter, so the parser tells the lexer which one it expects next.
type Mode uint8

const (
	// ModeKey lexes bare keys; '.' is a separator.
	ModeKey Mode = iota
	// ModeValue lexes bare values; '.', ':', '+' are part of numbers and dates.
	ModeValue
)

type Lexer struct {
	file   *source.File
	cursor Cursor
	opts   Options
	hold   []token.Trivia // накопленные leading trivia
}

func New(file *source.File, opts Options) *Lexer {
	return &Lexer{
		file:   file,
		cursor: NewCursor(file),
		opts:   opts,
	}
}

// Next returns the next significant token with its Leading trivia attached.
// At end of input it returns EOF carrying the trailing trivia; after that it
// keeps returning an empty EOF.
func (lx *Lexer) Next(mode Mode) token.Token {
	lx.collectLeadingTrivia()

	if lx.cursor.EOF() {
		tok := token.Token{Kind: token.EOF, Span: lx.cursor.SpanFrom(lx.cursor.Mark()), Leading: lx.hold}
		lx.hold = nil
		return tok
	}

	var tok token.Token
	ch := lx.cursor.Peek()
	switch {
	case ch == '"':
		tok = lx.scanBasicString()
	case ch == '\'':
		tok = lx.scanLiteralString()
	case isPunct(ch):
		tok = lx.scanPunct()
	case mode == ModeKey && isBareKeyByte(ch):
		tok = lx.scanRun(token.BareKey, isBareKeyByte)
	case mode == ModeValue && isBareValueByte(ch):
		tok = lx.scanBareValue()
	default:
		tok = lx.scanUnknown()
	}

	tok.Leading = lx.hold
	lx.hold = nil
	return tok
}

func (lx *Lexer) text(sp source.Span) string {
	return string(lx.file.Content[sp.Start:sp.End])
}

func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	var kind token.Kind
	switch lx.cursor.Bump() {
	case '[':
		kind = token.LBracket
	case ']':
		kind = token.RBracket
	case '{':
		kind = token.LBrace
	case '}':
		kind = token.RBrace
	case '=':
		kind = token.Equals
	case ',':
		kind = token.Comma
	case '.':
		kind = token.Dot
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

func (lx *Lexer) scanRun(kind token.Kind, accept func(byte) bool) token.Token {
	start := lx.cursor.Mark()
	for !lx.cursor.EOF() && accept(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	return token.Token{Kind: kind, Span: sp, Text: lx.text(sp)}
}

// scanBareValue reads numbers, booleans and date-times. A local date followed by a
// single space and a time ("1979-05-27 07:32:00") is one value.
func (lx *Lexer) scanBareValue() token.Token {
	tok := lx.scanRun(token.Bare, isBareValueByte)
	if isDateOnly(tok.Text) && lx.cursor.Peek() == ' ' &&
		isDec(lx.cursor.PeekAt(1)) && isDec(lx.cursor.PeekAt(2)) && lx.cursor.PeekAt(3) == ':' {
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isBareValueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		tok.Span = lx.cursor.SpanFrom(Mark(tok.Span.Start))
		tok.Text = lx.text(tok.Span)
	}
	return tok
}

func (lx *Lexer) scanUnknown() token.Token {
	start := lx.cursor.Mark()
	r, size := utf8.DecodeRune(lx.file.Content[lx.cursor.Off:lx.cursor.Limit])
	lx.cursor.BumpN(uint32(size))
	sp := lx.cursor.SpanFrom(start)
	if r == utf8.RuneError && size == 1 {
		lx.errLex(diag.LexInvalidUTF8, sp, "invalid UTF-8 byte")
	} else {
		lx.errLex(diag.LexUnknownChar, sp, "unexpected character "+quoteRune(r))
	}
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}
