package format

import (
	"strings"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/token"
)

// NormalizeLayout decides the horizontal shape of every line: indentation by
// table nesting depth, "key = value" spacing, and single-line versus one
// element per line for arrays. Element order and values never change.
func NormalizeLayout(doc *cst.Document, s Settings) *cst.Document {
	l := &layout{width: s.ColumnWidth, unit: s.Indent}
	depths := headerDepths(doc)
	last := 0
	for _, t := range doc.AllTables() {
		indent := depths[t] * l.unit
		if h := t.Header; h != nil {
			t.Leading = relayoutLines(t.Leading, indent, true, true)
			h.Open.Leading = nil
			h.Key.Compact()
			h.Close.Leading = nil
			h.Trailing = lineEnd(h.Trailing)
		}
		for _, kv := range t.Entries {
			l.entry(kv, indent)
		}
		last = indent
	}
	doc.Tail = relayoutLines(doc.Tail, last, true, false)
	return doc
}

// headerDepths counts, for every headed table, the declared tables whose path
// is a proper prefix of its own.
func headerDepths(doc *cst.Document) map[*cst.Table]int {
	declared := make(map[string]bool)
	for _, t := range doc.Tables {
		declared[pathKey(t.Path())] = true
	}
	out := make(map[*cst.Table]int, len(doc.Tables))
	for _, t := range doc.Tables {
		path := t.Path()
		depth := 0
		for n := 1; n < len(path); n++ {
			if declared[pathKey(path[:n])] {
				depth++
			}
		}
		out[t] = depth
	}
	return out
}

func pathKey(path []string) string {
	return strings.Join(path, "\x00")
}

type layout struct {
	width int
	unit  int
}

func (l *layout) entry(kv *cst.KeyValue, indent int) {
	kv.Leading = relayoutLines(kv.Leading, indent, true, true)
	kv.Key.Compact()
	kv.Eq.Leading = []token.Trivia{token.Space}
	kv.Value.First().Leading = []token.Trivia{token.Space}

	w := NewWriter(indent)
	w.Key(kv.Key)
	l.value(kv.Value, indent, w, "")
	kv.Trailing = lineEnd(kv.Trailing)
}

// value shapes v. line holds the text that precedes v on its line; suffix is
// what follows it ("," inside a multi-line array).
func (l *layout) value(v cst.Value, indent int, line *Writer, suffix string) {
	switch v := v.(type) {
	case *cst.Array:
		if l.fits(v, line, suffix) {
			l.flatArray(v, indent)
		} else {
			l.multiArray(v, indent)
		}
	case *cst.InlineTable:
		// TOML 1.0 has no multi-line inline tables; an over-wide one stays on
		// one line like an over-wide string.
		l.flatInline(v, indent)
	}
}

func (l *layout) fits(a *cst.Array, line *Writer, suffix string) bool {
	if a.HasComment() || cst.HasMultiLineString(a) {
		return false
	}
	w := &Writer{}
	w.WriteString(line.String())
	w.Value(a)
	w.WriteString(suffix)
	return w.Width() <= l.width
}

func (l *layout) flatArray(a *cst.Array, indent int) {
	a.OpenTrailing = nil
	for i, it := range a.Items {
		it.Leading = nil
		it.Trailing = nil
		it.Value.First().Leading = []token.Trivia{token.Space}
		l.flatValue(it.Value, indent)
		if i == len(a.Items)-1 {
			it.Comma = nil
			continue
		}
		if it.Comma == nil {
			c := token.New(token.Comma, ",")
			it.Comma = &c
		}
		it.Comma.Leading = nil
	}
	a.Close.Leading = nil
	if len(a.Items) > 0 {
		a.Close.Leading = []token.Trivia{token.Space}
	}
}

func (l *layout) flatValue(v cst.Value, indent int) {
	switch v := v.(type) {
	case *cst.Array:
		if v.HasComment() {
			l.multiArray(v, indent)
			return
		}
		l.flatArray(v, indent)
	case *cst.InlineTable:
		l.flatInline(v, indent)
	}
}

func (l *layout) flatInline(t *cst.InlineTable, indent int) {
	for _, kv := range t.Entries {
		kv.Leading = []token.Trivia{token.Space}
		kv.Key.Compact()
		kv.Eq.Leading = []token.Trivia{token.Space}
		kv.Value.First().Leading = []token.Trivia{token.Space}
		l.flatValue(kv.Value, indent)
		if kv.Comma != nil {
			kv.Comma.Leading = nil
		}
		kv.Trailing = nil
	}
	t.Close.Leading = nil
	if len(t.Entries) > 0 {
		t.Close.Leading = []token.Trivia{token.Space}
	}
}

// multiArray puts one element per line at indent+unit with a comma after each,
// and the closing bracket at indent. Own-line comments stay above their element;
// same-line comments follow its comma.
func (l *layout) multiArray(a *cst.Array, indent int) {
	inner := indent + l.unit
	a.OpenTrailing = lineEnd(append(a.OpenTrailing, token.Newline))
	for _, it := range a.Items {
		it.Leading = relayoutLines(it.Leading, inner, false, true)
		var after []token.Trivia
		if it.Comma != nil {
			after = token.Comments(it.Comma.Leading)
		} else {
			c := token.New(token.Comma, ",")
			it.Comma = &c
		}
		it.Comma.Leading = nil
		after = append(after, token.Comments(it.Trailing)...)

		it.Value.First().Leading = nil
		l.value(it.Value, inner, NewWriter(inner), ",")
		it.Trailing = afterComments(after, inner)
	}
	a.Close.Leading = relayoutLines(a.Close.Leading, inner, false, false)
	a.Close.Leading = append(a.Close.Leading, token.Indent(indent)...)
}

// afterComments keeps the first comment on the element's line and moves the
// rest to their own lines below it.
func afterComments(cs []token.Trivia, indent int) []token.Trivia {
	if len(cs) == 0 {
		return []token.Trivia{token.Newline}
	}
	out := []token.Trivia{token.Space, cs[0], token.Newline}
	for _, c := range cs[1:] {
		out = append(out, token.Indent(indent)...)
		out = append(out, c, token.Newline)
	}
	return out
}
