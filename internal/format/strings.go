package format

import (
	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

// NormalizeStrings turns single-line literal strings into basic strings when the
// content needs no escaping: 'x' -> "x".
func NormalizeStrings(doc *cst.Document) *cst.Document {
	cst.Walk(doc, func(_ []string, kv *cst.KeyValue) {
		normalizeStringValue(kv.Value)
	})
	return doc
}

func normalizeStringValue(v cst.Value) {
	switch v := v.(type) {
	case *cst.Scalar:
		if v.Tok.Kind != token.LiteralString {
			return
		}
		s, err := token.Unquote(v.Tok.Kind, v.Tok.Text)
		if err != nil || token.NeedsEscape(s) {
			return
		}
		v.Tok.Kind = token.BasicString
		v.Tok.Text = `"` + s + `"`
		v.Tok.Span = source.Span{}
	case *cst.Array:
		for _, it := range v.Items {
			normalizeStringValue(it.Value)
		}
	}
}
