package cst

import (
	"strings"

	"pyprojectfmt/internal/token"
)

// Render serializes the document. For a tree fresh from the parser the output is
// byte-identical to the input.
func Render(doc *Document) []byte {
	var b strings.Builder
	if doc.Root != nil {
		renderTable(&b, doc.Root)
	}
	for _, t := range doc.Tables {
		renderTable(&b, t)
	}
	writeTrivia(&b, doc.Tail)
	return []byte(b.String())
}

func renderTable(b *strings.Builder, t *Table) {
	writeTrivia(b, t.Leading)
	if h := t.Header; h != nil {
		h.Open.Render(b)
		renderKey(b, h.Key)
		h.Close.Render(b)
		writeTrivia(b, h.Trailing)
	}
	for _, kv := range t.Entries {
		renderKeyValue(b, kv)
	}
}

func renderKeyValue(b *strings.Builder, kv *KeyValue) {
	writeTrivia(b, kv.Leading)
	renderKey(b, kv.Key)
	kv.Eq.Render(b)
	renderValue(b, kv.Value)
	if kv.Comma != nil {
		kv.Comma.Render(b)
	}
	writeTrivia(b, kv.Trailing)
}

func renderKey(b *strings.Builder, k *Key) {
	if k == nil {
		return
	}
	for _, p := range k.Parts {
		p.Render(b)
	}
}

func renderValue(b *strings.Builder, v Value) {
	switch v := v.(type) {
	case *Scalar:
		v.Tok.Render(b)
	case *Array:
		v.Open.Render(b)
		writeTrivia(b, v.OpenTrailing)
		for _, it := range v.Items {
			writeTrivia(b, it.Leading)
			renderValue(b, it.Value)
			if it.Comma != nil {
				it.Comma.Render(b)
			}
			writeTrivia(b, it.Trailing)
		}
		v.Close.Render(b)
	case *InlineTable:
		v.Open.Render(b)
		for _, kv := range v.Entries {
			renderKeyValue(b, kv)
		}
		v.Close.Render(b)
	}
}

func writeTrivia(b *strings.Builder, ts []token.Trivia) {
	for _, tv := range ts {
		b.WriteString(tv.Text)
	}
}

// RenderValue returns the text of v including its first token's leading trivia.
func RenderValue(v Value) string {
	var b strings.Builder
	renderValue(&b, v)
	return b.String()
}

// RenderKey returns the text of k.
func RenderKey(k *Key) string {
	var b strings.Builder
	renderKey(&b, k)
	return b.String()
}

// RenderKeyValue returns the text of one entry including its trivia.
func RenderKeyValue(kv *KeyValue) string {
	var b strings.Builder
	renderKeyValue(&b, kv)
	return b.String()
}

// TriviaText concatenates the text of ts.
func TriviaText(ts []token.Trivia) string {
	var b strings.Builder
	writeTrivia(&b, ts)
	return b.String()
}
