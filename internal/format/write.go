package format

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"pyprojectfmt/internal/cst"
)

// Writer builds the single-line rendering of a value so the layout pass can
// measure it against the column budget.
type Writer struct {
	buf    strings.Builder
	indent int
}

// NewWriter creates a writer whose line starts with indent spaces.
func NewWriter(indent int) *Writer {
	w := &Writer{indent: indent}
	w.buf.WriteString(strings.Repeat(" ", indent))
	return w
}

// WriteString appends s.
func (w *Writer) WriteString(s string) {
	w.buf.WriteString(s)
}

// Key writes "key = ".
func (w *Writer) Key(k *cst.Key) {
	for _, part := range k.Parts {
		w.buf.WriteString(part.Text)
	}
	w.buf.WriteString(" = ")
}

// Value writes v in its single-line form: "[ a, b ]", "{ k = v }".
func (w *Writer) Value(v cst.Value) {
	switch v := v.(type) {
	case *cst.Scalar:
		w.buf.WriteString(v.Tok.Text)
	case *cst.Array:
		if len(v.Items) == 0 {
			w.buf.WriteString("[]")
			return
		}
		w.buf.WriteString("[ ")
		for i, it := range v.Items {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			w.Value(it.Value)
		}
		w.buf.WriteString(" ]")
	case *cst.InlineTable:
		if len(v.Entries) == 0 {
			w.buf.WriteString("{}")
			return
		}
		w.buf.WriteString("{ ")
		for i, kv := range v.Entries {
			if i > 0 {
				w.buf.WriteString(", ")
			}
			w.Key(kv.Key)
			w.Value(kv.Value)
		}
		w.buf.WriteString(" }")
	}
}

func (w *Writer) String() string {
	return w.buf.String()
}

// Width is the display width of the line, counting East Asian wide runes as two.
func (w *Writer) Width() int {
	return runewidth.StringWidth(w.buf.String())
}
