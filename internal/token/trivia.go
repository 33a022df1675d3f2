package token

import "pyprojectfmt/internal/source"

// TriviaKind classifies non-semantic text.
type TriviaKind uint8

const (
	TriviaSpace TriviaKind = iota
	TriviaNewline
	TriviaComment
)

func (k TriviaKind) String() string {
	switch k {
	case TriviaSpace:
		return "Space"
	case TriviaNewline:
		return "Newline"
	case TriviaComment:
		return "Comment"
	}
	return "TriviaKind(?)"
}

// Trivia is a run of whitespace, a single line break or a comment (without its line break).
type Trivia struct {
	Kind TriviaKind
	Span source.Span
	Text string
}

var (
	// Space is a synthetic single blank.
	Space = Trivia{Kind: TriviaSpace, Text: " "}
	// Newline is a synthetic LF.
	Newline = Trivia{Kind: TriviaNewline, Text: "\n"}
)

// Indent returns a synthetic whitespace trivia of n spaces, or nil when n is zero.
func Indent(n int) []Trivia {
	if n <= 0 {
		return nil
	}
	buf := make([]byte, n)
	for i := range buf {
		buf[i] = ' '
	}
	return []Trivia{{Kind: TriviaSpace, Text: string(buf)}}
}

// Comment builds a synthetic comment trivia.
func Comment(text string) Trivia {
	return Trivia{Kind: TriviaComment, Text: text}
}

// HasComment reports whether ts contains a comment.
func HasComment(ts []Trivia) bool {
	for _, tv := range ts {
		if tv.Kind == TriviaComment {
			return true
		}
	}
	return false
}

// HasNewline reports whether ts contains a line break.
func HasNewline(ts []Trivia) bool {
	for _, tv := range ts {
		if tv.Kind == TriviaNewline {
			return true
		}
	}
	return false
}

// Comments returns the comment trivia of ts in order.
func Comments(ts []Trivia) []Trivia {
	var out []Trivia
	for _, tv := range ts {
		if tv.Kind == TriviaComment {
			out = append(out, tv)
		}
	}
	return out
}

// SplitLine splits ts after its first line break. head holds everything up to and
// including that break; rest holds the remainder. Without a break head is ts.
func SplitLine(ts []Trivia) (head, rest []Trivia) {
	for i, tv := range ts {
		if tv.Kind == TriviaNewline {
			return ts[:i+1:i+1], ts[i+1:]
		}
	}
	return ts, nil
}
