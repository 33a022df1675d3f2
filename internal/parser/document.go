package parser

import (
	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/token"
)

func (p *Parser) parseDocument() *cst.Document {
	doc := &cst.Document{Root: &cst.Table{}}
	cur := doc.Root
	curDef := p.defs
	p.advance(lexer.ModeKey)
	for !p.failed() {
		switch {
		case p.tok.Kind == token.EOF:
			doc.Tail = p.tok.Leading
			return doc
		case p.tok.Kind == token.LBracket:
			lead := p.takeLeading()
			tbl, node := p.parseTable(lead)
			if tbl == nil {
				return doc
			}
			doc.Tables = append(doc.Tables, tbl)
			cur, curDef = tbl, node
		case p.tok.IsKey():
			lead := p.takeLeading()
			kv := p.parseKeyValue(lead, curDef)
			if kv == nil {
				return doc
			}
			kv.Trailing = p.endLine()
			cur.Entries = append(cur.Entries, kv)
		default:
			p.unexpected(diag.SynExpectKey, "key or table header")
		}
	}
	return doc
}

func (p *Parser) parseTable(lead []token.Trivia) (*cst.Table, *defNode) {
	h := &cst.Header{Open: p.tok}
	p.advance(lexer.ModeKey)
	if p.tok.Kind == token.LBracket && len(p.tok.Leading) == 0 {
		h.Array = true
		h.Open.Text = "[["
		h.Open.Span = h.Open.Span.Cover(p.tok.Span)
		p.advance(lexer.ModeKey)
	}
	h.Key = p.parseKey()
	if h.Key == nil {
		return nil, nil
	}
	if p.tok.Kind != token.RBracket || token.HasNewline(p.tok.Leading) {
		p.unexpected(diag.SynExpectHeaderClose, "']'")
		return nil, nil
	}
	h.Close = p.tok
	p.advance(lexer.ModeKey)
	if h.Array {
		if p.tok.Kind != token.RBracket || len(p.tok.Leading) != 0 {
			p.unexpected(diag.SynExpectHeaderClose, "']]'")
			return nil, nil
		}
		h.Close.Text = "]]"
		h.Close.Span = h.Close.Span.Cover(p.tok.Span)
		p.advance(lexer.ModeKey)
	}
	node := p.defineTable(h)
	if node == nil {
		return nil, nil
	}
	h.Trailing = p.endLine()
	return &cst.Table{Leading: lead, Header: h}, node
}

// parseKey reads key ('.' key)*. The current token must be a key token.
func (p *Parser) parseKey() *cst.Key {
	if !p.tok.IsKey() || token.HasNewline(p.tok.Leading) {
		p.unexpected(diag.SynExpectKey, "key")
		return nil
	}
	k := &cst.Key{Parts: []token.Token{p.tok}}
	p.advance(lexer.ModeKey)
	for p.tok.Kind == token.Dot && !token.HasNewline(p.tok.Leading) {
		k.Parts = append(k.Parts, p.tok)
		p.advance(lexer.ModeKey)
		if !p.tok.IsKey() || token.HasNewline(p.tok.Leading) {
			p.unexpected(diag.SynExpectKey, "key after '.'")
			return nil
		}
		k.Parts = append(k.Parts, p.tok)
		p.advance(lexer.ModeKey)
	}
	return k
}

// parseKeyValue reads key '=' value and registers the key in scope.
func (p *Parser) parseKeyValue(lead []token.Trivia, scope *defNode) *cst.KeyValue {
	kv := &cst.KeyValue{Leading: lead}
	kv.Key = p.parseKey()
	if kv.Key == nil {
		return nil
	}
	if p.tok.Kind != token.Equals || token.HasNewline(p.tok.Leading) {
		p.unexpected(diag.SynExpectEquals, "'='")
		return nil
	}
	kv.Eq = p.tok
	p.advance(lexer.ModeValue)
	if token.HasNewline(p.tok.Leading) {
		p.errorf(diag.SynExpectValue, kv.Eq.Span, "expected value after '=' on the same line")
		return nil
	}
	kv.Value = p.parseValue()
	if kv.Value == nil {
		return nil
	}
	if !p.defineKey(scope, kv) {
		return nil
	}
	return kv
}
