package parser

import (
	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/token"
)

// parseValue parses the value starting at the current token and leaves the
// parser on the token after it.
func (p *Parser) parseValue() cst.Value {
	switch tok := p.tok; {
	case tok.Kind.IsString():
		p.advance(lexer.ModeKey)
		return &cst.Scalar{Kind: cst.String, Tok: tok}
	case tok.Kind == token.Bare:
		kind, ok := classify(tok.Text)
		if !ok {
			p.errorf(diag.LexBadBareValue, tok.Span, "invalid value '"+tok.Text+"'")
			return nil
		}
		p.advance(lexer.ModeKey)
		return &cst.Scalar{Kind: kind, Tok: tok}
	case tok.Kind == token.LBracket:
		return p.parseArray()
	case tok.Kind == token.LBrace:
		return p.parseInlineTable()
	case tok.Kind == token.Invalid:
		// already reported by the lexer
		return nil
	default:
		p.unexpected(diag.SynExpectValue, "value")
		return nil
	}
}

func (p *Parser) parseArray() *cst.Array {
	arr := &cst.Array{Open: p.tok}
	p.advance(lexer.ModeValue)
	arr.OpenTrailing, p.tok.Leading = splitInner(p.tok.Leading)
	for !p.failed() {
		switch p.tok.Kind {
		case token.RBracket:
			arr.Close = p.tok
			p.advance(lexer.ModeKey)
			return arr
		case token.EOF:
			p.errorf(diag.SynUnclosedBracket, arr.Open.Span, "unclosed '['")
			return nil
		}
		item := &cst.ArrayItem{Leading: p.takeLeading()}
		item.Value = p.parseValue()
		if item.Value == nil {
			return nil
		}
		arr.Items = append(arr.Items, item)
		switch p.tok.Kind {
		case token.Comma:
			c := p.tok
			item.Comma = &c
			p.advance(lexer.ModeValue)
			item.Trailing, p.tok.Leading = splitInner(p.tok.Leading)
		case token.RBracket:
			item.Trailing, p.tok.Leading = splitInner(p.tok.Leading)
		case token.EOF:
			p.errorf(diag.SynUnclosedBracket, arr.Open.Span, "unclosed '['")
			return nil
		default:
			p.unexpected(diag.SynUnexpectedToken, "',' or ']'")
			return nil
		}
	}
	return nil
}

func (p *Parser) parseInlineTable() *cst.InlineTable {
	it := &cst.InlineTable{Open: p.tok}
	p.advance(lexer.ModeKey)
	scope := newDefNode(defTable)
	for !p.failed() {
		if token.HasNewline(p.tok.Leading) {
			p.errorf(diag.SynNewlineInInline, p.tok.Span, "newline inside inline table")
			return nil
		}
		switch p.tok.Kind {
		case token.RBrace:
			if n := len(it.Entries); n > 0 && it.Entries[n-1].Comma != nil {
				p.errorf(diag.SynTrailingCommaInline, it.Entries[n-1].Comma.Span, "trailing comma in inline table")
				return nil
			}
			it.Close = p.tok
			p.advance(lexer.ModeKey)
			return it
		case token.EOF:
			p.errorf(diag.SynUnclosedBrace, it.Open.Span, "unclosed '{'")
			return nil
		}
		if n := len(it.Entries); n > 0 && it.Entries[n-1].Comma == nil {
			p.unexpected(diag.SynUnexpectedToken, "',' or '}'")
			return nil
		}
		kv := p.parseKeyValue(p.takeLeading(), scope)
		if kv == nil {
			return nil
		}
		it.Entries = append(it.Entries, kv)
		if p.tok.Kind == token.Comma && !token.HasNewline(p.tok.Leading) {
			c := p.tok
			kv.Comma = &c
			p.advance(lexer.ModeKey)
		}
	}
	return nil
}
