package cst

import (
	"slices"

	"pyprojectfmt/internal/token"
)

// Clone returns a deep copy of the document.
func (doc *Document) Clone() *Document {
	out := &Document{Tail: slices.Clone(doc.Tail)}
	if doc.Root != nil {
		out.Root = doc.Root.Clone()
	}
	out.Tables = make([]*Table, len(doc.Tables))
	for i, t := range doc.Tables {
		out.Tables[i] = t.Clone()
	}
	return out
}

func (t *Table) Clone() *Table {
	out := &Table{Leading: slices.Clone(t.Leading)}
	if t.Header != nil {
		h := *t.Header
		h.Open = cloneTok(h.Open)
		h.Close = cloneTok(h.Close)
		h.Key = h.Key.Clone()
		h.Trailing = slices.Clone(h.Trailing)
		out.Header = &h
	}
	out.Entries = make([]*KeyValue, len(t.Entries))
	for i, kv := range t.Entries {
		out.Entries[i] = kv.Clone()
	}
	return out
}

func (kv *KeyValue) Clone() *KeyValue {
	return &KeyValue{
		Leading:  slices.Clone(kv.Leading),
		Key:      kv.Key.Clone(),
		Eq:       cloneTok(kv.Eq),
		Value:    CloneValue(kv.Value),
		Comma:    cloneTokPtr(kv.Comma),
		Trailing: slices.Clone(kv.Trailing),
	}
}

func (k *Key) Clone() *Key {
	if k == nil {
		return nil
	}
	out := &Key{Parts: make([]token.Token, len(k.Parts))}
	for i, p := range k.Parts {
		out.Parts[i] = cloneTok(p)
	}
	return out
}

// CloneValue deep-copies any value node.
func CloneValue(v Value) Value {
	switch v := v.(type) {
	case *Scalar:
		return &Scalar{Kind: v.Kind, Tok: cloneTok(v.Tok)}
	case *Array:
		out := &Array{
			Open:         cloneTok(v.Open),
			OpenTrailing: slices.Clone(v.OpenTrailing),
			Items:        make([]*ArrayItem, len(v.Items)),
			Close:        cloneTok(v.Close),
		}
		for i, it := range v.Items {
			out.Items[i] = &ArrayItem{
				Leading:  slices.Clone(it.Leading),
				Value:    CloneValue(it.Value),
				Comma:    cloneTokPtr(it.Comma),
				Trailing: slices.Clone(it.Trailing),
			}
		}
		return out
	case *InlineTable:
		out := &InlineTable{Open: cloneTok(v.Open), Close: cloneTok(v.Close)}
		out.Entries = make([]*KeyValue, len(v.Entries))
		for i, kv := range v.Entries {
			out.Entries[i] = kv.Clone()
		}
		return out
	}
	return nil
}

func cloneTok(t token.Token) token.Token {
	t.Leading = slices.Clone(t.Leading)
	return t
}

func cloneTokPtr(t *token.Token) *token.Token {
	if t == nil {
		return nil
	}
	c := cloneTok(*t)
	return &c
}
