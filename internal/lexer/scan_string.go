package lexer

import (
	"unicode/utf8"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/token"
)

// scanBasicString reads "..." or """...""" and validates escapes.
func (lx *Lexer) scanBasicString() token.Token {
	if lx.cursor.HasPrefix(`"""`) {
		return lx.scanMultiLine('"', token.MultiLineBasicString)
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump() // opening '"'
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		switch {
		case b == '"':
			lx.cursor.Bump()
			return lx.finishString(start, token.BasicString)
		case b == '\\':
			lx.cursor.Bump()
			if !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case b == '\n' || b == '\r':
			return lx.unterminated(start, diag.LexNewlineInString, "newline in single-line string")
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminated(start, diag.LexUnterminatedString, "unterminated string")
}

// scanLiteralString reads '...' or '''...'''. Literal strings have no escapes.
func (lx *Lexer) scanLiteralString() token.Token {
	if lx.cursor.HasPrefix(`'''`) {
		return lx.scanMultiLine('\'', token.MultiLineLiteralString)
	}
	start := lx.cursor.Mark()
	lx.cursor.Bump()
	for !lx.cursor.EOF() {
		switch b := lx.cursor.Peek(); b {
		case '\'':
			lx.cursor.Bump()
			return lx.finishString(start, token.LiteralString)
		case '\n', '\r':
			return lx.unterminated(start, diag.LexNewlineInString, "newline in single-line string")
		default:
			lx.cursor.Bump()
		}
	}
	return lx.unterminated(start, diag.LexUnterminatedString, "unterminated string")
}

// scanMultiLine reads a triple-quoted string. Up to two extra quote characters
// right before the closing delimiter belong to the content.
func (lx *Lexer) scanMultiLine(q byte, kind token.Kind) token.Token {
	start := lx.cursor.Mark()
	lx.cursor.BumpN(3)
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\\' && q == '"' {
			lx.cursor.BumpN(2)
			continue
		}
		if b != q {
			lx.cursor.Bump()
			continue
		}
		run := uint32(0)
		for lx.cursor.PeekAt(run) == q {
			run++
		}
		if run < 3 {
			lx.cursor.BumpN(run)
			continue
		}
		if run > 5 {
			lx.cursor.BumpN(run)
			sp := lx.cursor.SpanFrom(start)
			lx.errLex(diag.LexUnterminatedMultiLine, sp, "too many quotes closing multi-line string")
			return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
		}
		lx.cursor.BumpN(run)
		return lx.finishString(start, kind)
	}
	return lx.unterminated(start, diag.LexUnterminatedMultiLine, "unterminated multi-line string")
}

func (lx *Lexer) unterminated(start Mark, code diag.Code, msg string) token.Token {
	sp := lx.cursor.SpanFrom(start)
	lx.errLex(code, sp, msg)
	return token.Token{Kind: token.Invalid, Span: sp, Text: lx.text(sp)}
}

// finishString validates the scanned string and builds its token.
func (lx *Lexer) finishString(start Mark, kind token.Kind) token.Token {
	sp := lx.cursor.SpanFrom(start)
	text := lx.text(sp)
	tok := token.Token{Kind: kind, Span: sp, Text: text}
	if !utf8.ValidString(text) {
		lx.errLex(diag.LexInvalidUTF8, sp, "invalid UTF-8 in string")
		tok.Kind = token.Invalid
		return tok
	}
	for i := 0; i < len(text); i++ {
		c := text[i]
		if !isControl(c) || c == '\t' {
			continue
		}
		if kind.IsMultiLine() && (c == '\n' || (c == '\r' && i+1 < len(text) && text[i+1] == '\n')) {
			continue
		}
		lx.errLex(diag.LexControlChar, sp, "control character in string")
		tok.Kind = token.Invalid
		return tok
	}
	if _, err := token.Unquote(kind, text); err != nil {
		lx.errLex(diag.LexBadEscape, sp, err.Error())
		tok.Kind = token.Invalid
	}
	return tok
}
