package cst

import "pyprojectfmt/internal/token"

// Document is the root node. Root holds the entries before the first header.
type Document struct {
	Root   *Table
	Tables []*Table
	Tail   []token.Trivia
}

// Table is a header with its entries, or the header-less root table.
type Table struct {
	Leading []token.Trivia
	Header  *Header
	Entries []*KeyValue
}

// Header is "[a.b]" or "[[a.b]]".
type Header struct {
	Open     token.Token // "[" or "[["
	Key      *Key
	Close    token.Token // "]" or "]]"
	Array    bool
	Trailing []token.Trivia
}

// KeyValue is one "key = value" line, or one entry of an inline table.
type KeyValue struct {
	Leading  []token.Trivia
	Key      *Key
	Eq       token.Token
	Value    Value
	Comma    *token.Token // separator inside inline tables
	Trailing []token.Trivia
}

// Value is implemented by *Scalar, *Array and *InlineTable.
type Value interface {
	// First returns the first token of the value; its Leading is the trivia
	// between '=' (or the opening bracket) and the value.
	First() *token.Token
	value()
}

// ScalarKind classifies a single-token value.
type ScalarKind uint8

const (
	String ScalarKind = iota
	Integer
	Float
	Bool
	DateTime
)

func (k ScalarKind) String() string {
	switch k {
	case String:
		return "String"
	case Integer:
		return "Integer"
	case Float:
		return "Float"
	case Bool:
		return "Bool"
	case DateTime:
		return "DateTime"
	}
	return "ScalarKind(?)"
}

type Scalar struct {
	Kind ScalarKind
	Tok  token.Token
}

// Array is "[ ... ]". OpenTrailing holds the trivia after '[' through the first
// line break; Close.Leading holds what sits between the last item and ']'.
type Array struct {
	Open         token.Token
	OpenTrailing []token.Trivia
	Items        []*ArrayItem
	Close        token.Token
}

type ArrayItem struct {
	Leading  []token.Trivia
	Value    Value
	Comma    *token.Token
	Trailing []token.Trivia
}

// InlineTable is "{ k = v, ... }". Entries never carry Trailing.
type InlineTable struct {
	Open    token.Token
	Entries []*KeyValue
	Close   token.Token
}

func (s *Scalar) First() *token.Token      { return &s.Tok }
func (a *Array) First() *token.Token       { return &a.Open }
func (t *InlineTable) First() *token.Token { return &t.Open }

func (*Scalar) value()      {}
func (*Array) value()       {}
func (*InlineTable) value() {}

// Text returns the decoded string of a String scalar.
func (s *Scalar) Text() (string, bool) {
	if s == nil || s.Kind != String {
		return "", false
	}
	v, err := token.Unquote(s.Tok.Kind, s.Tok.Text)
	if err != nil {
		return "", false
	}
	return v, true
}

// Strings returns the decoded items of an array holding only string scalars.
func (a *Array) Strings() ([]string, bool) {
	out := make([]string, 0, len(a.Items))
	for _, it := range a.Items {
		sc, ok := it.Value.(*Scalar)
		if !ok {
			return nil, false
		}
		s, ok := sc.Text()
		if !ok {
			return nil, false
		}
		out = append(out, s)
	}
	return out, true
}

// HasComment reports whether any trivia inside the array, including nested
// values, is a comment.
func (a *Array) HasComment() bool {
	if token.HasComment(a.OpenTrailing) || a.Close.HasComment() {
		return true
	}
	for _, it := range a.Items {
		if token.HasComment(it.Leading) || token.HasComment(it.Trailing) {
			return true
		}
		if it.Comma != nil && it.Comma.HasComment() {
			return true
		}
		if valueHasComment(it.Value) {
			return true
		}
	}
	return false
}

func valueHasComment(v Value) bool {
	switch v := v.(type) {
	case *Array:
		return v.HasComment()
	case *InlineTable:
		for _, kv := range v.Entries {
			if valueHasComment(kv.Value) {
				return true
			}
		}
	}
	return false
}

// HasMultiLineString reports whether v is or contains a triple-quoted string.
func HasMultiLineString(v Value) bool {
	switch v := v.(type) {
	case *Scalar:
		return v.Tok.Kind.IsMultiLine()
	case *Array:
		for _, it := range v.Items {
			if HasMultiLineString(it.Value) {
				return true
			}
		}
	case *InlineTable:
		for _, kv := range v.Entries {
			if HasMultiLineString(kv.Value) {
				return true
			}
		}
	}
	return false
}
