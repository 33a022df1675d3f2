package cst

import (
	"slices"

	"pyprojectfmt/internal/token"
)

// Path returns the header names of t, or nil for the root table.
func (t *Table) Path() []string {
	if t.Header == nil {
		return nil
	}
	return t.Header.Key.Names()
}

// Table returns the first non-array table whose header path equals path.
func (doc *Document) Table(path ...string) *Table {
	for _, t := range doc.Tables {
		if t.Header != nil && !t.Header.Array && slices.Equal(t.Path(), path) {
			return t
		}
	}
	return nil
}

// Entry returns the entry of t whose key names equal names.
func (t *Table) Entry(names ...string) *KeyValue {
	if t == nil {
		return nil
	}
	for _, kv := range t.Entries {
		if slices.Equal(kv.Key.Names(), names) {
			return kv
		}
	}
	return nil
}

// AllTables returns Root followed by every headed table.
func (doc *Document) AllTables() []*Table {
	out := make([]*Table, 0, len(doc.Tables)+1)
	if doc.Root != nil {
		out = append(out, doc.Root)
	}
	return append(out, doc.Tables...)
}

// Visitor is called for every key/value with the full dotted path of its key.
// Entries of inline tables are visited after their parent.
type Visitor func(path []string, kv *KeyValue)

// Walk visits every key/value of the document in source order.
func Walk(doc *Document, fn Visitor) {
	for _, t := range doc.AllTables() {
		base := t.Path()
		for _, kv := range t.Entries {
			walkEntry(base, kv, fn)
		}
	}
}

func walkEntry(base []string, kv *KeyValue, fn Visitor) {
	path := append(slices.Clip(base), kv.Key.Names()...)
	fn(path, kv)
	if it, ok := kv.Value.(*InlineTable); ok {
		for _, e := range it.Entries {
			walkEntry(path, e, fn)
		}
	}
}

// VisitTrivia calls fn for every trivia slice and every token of the document,
// so a pass can rewrite them in place.
func VisitTrivia(doc *Document, onTrivia func(ts *[]token.Trivia), onToken func(t *token.Token)) {
	for _, t := range doc.AllTables() {
		onTrivia(&t.Leading)
		if h := t.Header; h != nil {
			onToken(&h.Open)
			visitKey(h.Key, onToken)
			onToken(&h.Close)
			onTrivia(&h.Trailing)
		}
		for _, kv := range t.Entries {
			visitEntry(kv, onTrivia, onToken)
		}
	}
	onTrivia(&doc.Tail)
}

func visitKey(k *Key, onToken func(t *token.Token)) {
	for i := range k.Parts {
		onToken(&k.Parts[i])
	}
}

func visitEntry(kv *KeyValue, onTrivia func(ts *[]token.Trivia), onToken func(t *token.Token)) {
	onTrivia(&kv.Leading)
	visitKey(kv.Key, onToken)
	onToken(&kv.Eq)
	visitValue(kv.Value, onTrivia, onToken)
	if kv.Comma != nil {
		onToken(kv.Comma)
	}
	onTrivia(&kv.Trailing)
}

func visitValue(v Value, onTrivia func(ts *[]token.Trivia), onToken func(t *token.Token)) {
	switch v := v.(type) {
	case *Scalar:
		onToken(&v.Tok)
	case *Array:
		onToken(&v.Open)
		onTrivia(&v.OpenTrailing)
		for _, it := range v.Items {
			onTrivia(&it.Leading)
			visitValue(it.Value, onTrivia, onToken)
			if it.Comma != nil {
				onToken(it.Comma)
			}
			onTrivia(&it.Trailing)
		}
		onToken(&v.Close)
	case *InlineTable:
		onToken(&v.Open)
		for _, kv := range v.Entries {
			visitEntry(kv, onTrivia, onToken)
		}
		onToken(&v.Close)
	}
}
