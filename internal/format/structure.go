package format

import (
	"strings"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/token"
)

// NormalizeStructure fixes vertical whitespace: at most one blank line between
// entries, none at the start of the document or right after a header, exactly
// one before every header that is not first, a single final newline, and LF
// line breaks everywhere. Comments are kept.
func NormalizeStructure(doc *cst.Document) *cst.Document {
	cst.VisitTrivia(doc, normalizeNewlines, func(t *token.Token) {
		normalizeNewlines(&t.Leading)
		if t.Kind.IsMultiLine() && strings.Contains(t.Text, "\r\n") {
			t.Text = strings.ReplaceAll(t.Text, "\r\n", "\n")
		}
	})

	first := true
	leading := func(ts []token.Trivia, policy blankPolicy) []token.Trivia {
		if first {
			policy = blankNone
			first = false
		}
		lines, rest := splitLines(ts)
		return joinLines(squeezeBlank(lines, policy), rest)
	}
	for _, t := range doc.AllTables() {
		if t.Header != nil {
			t.Leading = leading(t.Leading, blankOne)
			t.Header.Trailing = ensureNewline(t.Header.Trailing)
		}
		for i, kv := range t.Entries {
			policy := blankKeep
			if i == 0 && t.Header != nil {
				policy = blankNone
			}
			kv.Leading = leading(kv.Leading, policy)
			kv.Trailing = ensureNewline(kv.Trailing)
		}
	}
	doc.Tail = normalizeTail(doc.Tail, first)
	return doc
}

func normalizeNewlines(ts *[]token.Trivia) {
	for i := range *ts {
		if tv := &(*ts)[i]; tv.Kind == token.TriviaNewline && tv.Text != "\n" {
			tv.Text = "\n"
		}
	}
}

// normalizeTail keeps trailing comments, drops trailing blank lines and makes
// the last comment end with a newline. empty is set when no item precedes it.
func normalizeTail(ts []token.Trivia, empty bool) []token.Trivia {
	lines, _ := splitLines(ts)
	policy := blankKeep
	if empty {
		policy = blankNone
	}
	lines = squeezeBlank(lines, policy)
	for len(lines) > 0 && lines[len(lines)-1].blank() {
		lines = lines[:len(lines)-1]
	}
	if n := len(lines); n > 0 {
		lines[n-1].nl = true
	}
	return joinLines(lines, nil)
}
