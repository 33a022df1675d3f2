package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// ErrNotString is returned by Unquote for tokens that are not strings.
var ErrNotString = errors.New("token is not a string")

// Value decodes the semantic value of a key or string token.
// Bare keys decode to themselves.
func (t Token) Value() (string, error) {
	if t.Kind == BareKey {
		return t.Text, nil
	}
	return Unquote(t.Kind, t.Text)
}

// Unquote decodes the text of a string token of the given kind.
func Unquote(kind Kind, text string) (string, error) {
	switch kind {
	case LiteralString:
		if len(text) < 2 {
			return "", fmt.Errorf("truncated literal string %q", text)
		}
		return text[1 : len(text)-1], nil
	case MultiLineLiteralString:
		if len(text) < 6 {
			return "", fmt.Errorf("truncated multi-line literal string %q", text)
		}
		return trimFirstNewline(text[3 : len(text)-3]), nil
	case BasicString:
		if len(text) < 2 {
			return "", fmt.Errorf("truncated basic string %q", text)
		}
		return unescape(text[1:len(text)-1], false)
	case MultiLineBasicString:
		if len(text) < 6 {
			return "", fmt.Errorf("truncated multi-line basic string %q", text)
		}
		return unescape(trimFirstNewline(text[3:len(text)-3]), true)
	default:
		return "", ErrNotString
	}
}

func trimFirstNewline(s string) string {
	if strings.HasPrefix(s, "\r\n") {
		return s[2:]
	}
	return strings.TrimPrefix(s, "\n")
}

// unescape decodes TOML basic-string escapes. In multi-line mode a backslash at the
// end of a line swallows the line break and all following whitespace.
func unescape(s string, multiLine bool) (string, error) {
	if !strings.Contains(s, `\`) {
		return s, nil
	}
	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c != '\\' {
			b.WriteByte(c)
			continue
		}
		i++
		if i >= len(s) {
			return "", errors.New("trailing backslash")
		}
		switch e := s[i]; e {
		case 'b':
			b.WriteByte('\b')
		case 't':
			b.WriteByte('\t')
		case 'n':
			b.WriteByte('\n')
		case 'f':
			b.WriteByte('\f')
		case 'r':
			b.WriteByte('\r')
		case '"':
			b.WriteByte('"')
		case '\\':
			b.WriteByte('\\')
		case 'u', 'U':
			n := 4
			if e == 'U' {
				n = 8
			}
			if i+1+n > len(s) {
				return "", fmt.Errorf("short \\%c escape", e)
			}
			code, err := strconv.ParseUint(s[i+1:i+1+n], 16, 32)
			if err != nil {
				return "", fmt.Errorf("invalid \\%c escape: %w", e, err)
			}
			r := rune(code)
			if !utf8.ValidRune(r) {
				return "", fmt.Errorf("escape \\%c%s is not a unicode scalar value", e, s[i+1:i+1+n])
			}
			b.WriteRune(r)
			i += n
		case ' ', '\t', '\n', '\r':
			if !multiLine {
				return "", fmt.Errorf("invalid escape \\%q", e)
			}
			j := i
			for j < len(s) && (s[j] == ' ' || s[j] == '\t') {
				j++
			}
			if j >= len(s) || (s[j] != '\n' && s[j] != '\r') {
				return "", errors.New("line-ending backslash must be followed by a newline")
			}
			for j < len(s) && (s[j] == ' ' || s[j] == '\t' || s[j] == '\n' || s[j] == '\r') {
				j++
			}
			i = j - 1
		default:
			return "", fmt.Errorf("invalid escape \\%c", e)
		}
	}
	return b.String(), nil
}

// Quote renders s as a TOML basic string.
func Quote(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\b':
			b.WriteString(`\b`)
		case '\t':
			b.WriteString(`\t`)
		case '\n':
			b.WriteString(`\n`)
		case '\f':
			b.WriteString(`\f`)
		case '\r':
			b.WriteString(`\r`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	b.WriteByte('"')
	return b.String()
}

// NeedsEscape reports whether s cannot be written as a basic string without escapes.
func NeedsEscape(s string) bool {
	for _, r := range s {
		if r == '"' || r == '\\' || r < 0x20 || r == 0x7f {
			return true
		}
	}
	return false
}
