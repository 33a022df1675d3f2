package lexer

import (
	"unicode/utf8"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/token"
)

// collectLeadingTrivia собирает подряд идущие trivia перед значимым токеном.
//   - ' ' и '\t' коалесцируются в один TriviaSpace
//   - каждый "\n" или "\r\n" даёт отдельный TriviaNewline
//   - '#' до конца строки -> TriviaComment (без перевода строки)
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		switch b := lx.cursor.Peek(); {
		case b == ' ' || b == '\t':
			for c := lx.cursor.Peek(); c == ' ' || c == '\t'; c = lx.cursor.Peek() {
				lx.cursor.Bump()
			}
			lx.push(token.TriviaSpace, start)
		case b == '\n':
			lx.cursor.Bump()
			lx.push(token.TriviaNewline, start)
		case b == '\r' && lx.cursor.PeekAt(1) == '\n':
			lx.cursor.BumpN(2)
			lx.push(token.TriviaNewline, start)
		case b == '\r':
			lx.cursor.Bump()
			lx.errLex(diag.LexBareCarriageReturn, lx.cursor.SpanFrom(start), "carriage return must be followed by a line feed")
			lx.push(token.TriviaSpace, start)
		case b == '#':
			lx.scanComment(start)
		default:
			return
		}
	}
}

func (lx *Lexer) push(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: lx.text(sp)})
}

func (lx *Lexer) scanComment(start Mark) {
	for !lx.cursor.EOF() {
		b := lx.cursor.Peek()
		if b == '\n' || (b == '\r' && lx.cursor.PeekAt(1) == '\n') {
			break
		}
		if isControl(b) && b != '\t' {
			at := lx.cursor.Mark()
			lx.cursor.Bump()
			lx.errLex(diag.LexControlChar, lx.cursor.SpanFrom(at), "control character in comment")
			continue
		}
		lx.cursor.Bump()
	}
	sp := lx.cursor.SpanFrom(start)
	if !utf8.Valid(lx.file.Content[sp.Start:sp.End]) {
		lx.errLex(diag.LexInvalidUTF8, sp, "invalid UTF-8 in comment")
	}
	lx.push(token.TriviaComment, start)
}
