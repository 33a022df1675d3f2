package parser

import (
	"strings"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
)

type defKind uint8

const (
	defTable       defKind = iota // table created by a header or a dotted key
	defArrayTables                // [[x]]
	defValue                      // leaf value, inline table or static array
)

// defNode tracks what the document has defined so far, for TOML's
// "define once" rules.
type defNode struct {
	kind     defKind
	explicit bool // [x] seen for this table
	dotted   bool // created by a dotted key
	array    bool // defValue holding an array
	children map[string]*defNode
	last     *defNode // current element of an array of tables
}

func newDefNode(kind defKind) *defNode {
	return &defNode{kind: kind, children: make(map[string]*defNode)}
}

// scope returns the node new keys go into: itself, or the last element of an
// array of tables.
func (n *defNode) scope() *defNode {
	if n.kind == defArrayTables {
		return n.last
	}
	return n
}

func (p *Parser) defineTable(h *cst.Header) *defNode {
	names := h.Key.Names()
	span := h.Open.Span.Cover(h.Close.Span)
	cur := p.defs
	for _, name := range names[:len(names)-1] {
		child, ok := cur.children[name]
		if !ok {
			child = newDefNode(defTable)
			cur.children[name] = child
		}
		if child.kind == defValue {
			p.errorf(diag.SemKeyNotTable, span, "key '"+name+"' is not a table")
			return nil
		}
		cur = child.scope()
	}
	name := names[len(names)-1]
	full := strings.Join(names, ".")
	existing, ok := cur.children[name]
	if h.Array {
		switch {
		case !ok:
			existing = newDefNode(defArrayTables)
			cur.children[name] = existing
		case existing.kind == defValue && existing.array:
			p.errorf(diag.SemStaticArrayExtended, span, "cannot append to static array '"+full+"'")
			return nil
		case existing.kind != defArrayTables:
			p.errorf(diag.SemTableRedefined, span, "'"+full+"' is already defined and is not an array of tables")
			return nil
		}
		existing.last = newDefNode(defTable)
		existing.last.explicit = true
		return existing.last
	}
	if !ok {
		node := newDefNode(defTable)
		node.explicit = true
		cur.children[name] = node
		return node
	}
	if existing.kind != defTable || existing.explicit || existing.dotted {
		p.errorf(diag.SemTableRedefined, span, "table '"+full+"' is defined more than once")
		return nil
	}
	existing.explicit = true
	return existing
}

// defineKey registers kv in scope and reports duplicate or conflicting keys.
func (p *Parser) defineKey(scope *defNode, kv *cst.KeyValue) bool {
	names := kv.Key.Names()
	span := kv.Key.Parts[0].Span.Cover(kv.Key.Parts[len(kv.Key.Parts)-1].Span)
	cur := scope
	for _, name := range names[:len(names)-1] {
		child, ok := cur.children[name]
		switch {
		case !ok:
			child = newDefNode(defTable)
			child.dotted = true
			cur.children[name] = child
		case child.kind != defTable:
			p.errorf(diag.SemKeyNotTable, span, "key '"+name+"' is not a table")
			return false
		case !child.dotted:
			p.errorf(diag.SemDottedIntoHeader, span, "dotted key '"+kv.Key.String()+"' extends table '"+name+"' defined by a header")
			return false
		}
		cur = child
	}
	name := names[len(names)-1]
	if _, ok := cur.children[name]; ok {
		p.errorf(diag.SemDuplicateKey, span, "duplicate key '"+kv.Key.String()+"'")
		return false
	}
	leaf := newDefNode(defValue)
	_, leaf.array = kv.Value.(*cst.Array)
	cur.children[name] = leaf
	return true
}
