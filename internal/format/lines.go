package format

import "pyprojectfmt/internal/token"

// triviaLine is one source line inside a trivia run: optional blanks, an
// optional comment, and the line break (absent only at end of input).
type triviaLine struct {
	pre     []token.Trivia
	comment *token.Trivia
	nl      bool
}

func (l triviaLine) blank() bool { return l.comment == nil }

// splitLines cuts ts into whole lines. rest is the blank run after the last
// line break (the indentation of whatever follows).
func splitLines(ts []token.Trivia) (lines []triviaLine, rest []token.Trivia) {
	var cur triviaLine
	for i := range ts {
		tv := ts[i]
		switch tv.Kind {
		case token.TriviaSpace:
			cur.pre = append(cur.pre, tv)
		case token.TriviaComment:
			cur.comment = &tv
		case token.TriviaNewline:
			cur.nl = true
			lines = append(lines, cur)
			cur = triviaLine{}
		}
	}
	if cur.comment != nil {
		lines = append(lines, cur)
		return lines, nil
	}
	return lines, cur.pre
}

func joinLines(lines []triviaLine, rest []token.Trivia) []token.Trivia {
	var out []token.Trivia
	for _, l := range lines {
		if l.comment != nil {
			out = append(out, l.pre...)
			out = append(out, *l.comment)
		}
		if l.nl {
			out = append(out, token.Newline)
		}
	}
	return append(out, rest...)
}

// blankPolicy says what to do with blank lines at the start of a trivia run.
type blankPolicy uint8

const (
	blankKeep blankPolicy = iota // at most one
	blankNone
	blankOne // exactly one
)

// squeezeBlank collapses blank runs to one line and applies policy to the head.
func squeezeBlank(lines []triviaLine, policy blankPolicy) []triviaLine {
	out := make([]triviaLine, 0, len(lines)+1)
	head := true
	for _, l := range lines {
		if l.blank() {
			if head && policy == blankNone {
				continue
			}
			if n := len(out); n > 0 && out[n-1].blank() {
				continue
			}
			out = append(out, triviaLine{nl: true})
			continue
		}
		if head && policy == blankOne && len(out) == 0 {
			out = append(out, triviaLine{nl: true})
		}
		head = false
		out = append(out, l)
	}
	if head && policy == blankOne && len(out) == 0 {
		out = append(out, triviaLine{nl: true})
	}
	return out
}

// relayoutLines re-indents comment lines to indent spaces. Blank lines are kept
// when keepBlank is set, dropped otherwise. The result ends with indent spaces
// when tail is set, ready for the item that follows.
func relayoutLines(ts []token.Trivia, indent int, keepBlank, tail bool) []token.Trivia {
	lines, _ := splitLines(ts)
	var out []token.Trivia
	for _, l := range lines {
		if l.comment == nil {
			if keepBlank && l.nl {
				out = append(out, token.Newline)
			}
			continue
		}
		out = append(out, token.Indent(indent)...)
		out = append(out, *l.comment)
		if l.nl {
			out = append(out, token.Newline)
		}
	}
	if tail {
		out = append(out, token.Indent(indent)...)
	}
	return out
}

// lineEnd rewrites a same-line trailing run to " # comment\n" or "\n".
func lineEnd(ts []token.Trivia) []token.Trivia {
	var out []token.Trivia
	if cs := token.Comments(ts); len(cs) > 0 {
		out = append(out, token.Space, cs[0])
	}
	if token.HasNewline(ts) {
		out = append(out, token.Newline)
	}
	return out
}

// ensureNewline appends a line break when ts has none.
func ensureNewline(ts []token.Trivia) []token.Trivia {
	if token.HasNewline(ts) {
		return ts
	}
	return append(ts, token.Newline)
}
