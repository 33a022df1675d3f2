package cst

import (
	"strings"

	"pyprojectfmt/internal/token"
)

// Key is a possibly dotted key. Parts alternates key tokens and Dot tokens.
type Key struct {
	Parts []token.Token
}

// NewKey builds a synthetic key from plain names, quoting those that are not bare.
func NewKey(names ...string) *Key {
	k := &Key{}
	for i, n := range names {
		if i > 0 {
			k.Parts = append(k.Parts, token.New(token.Dot, "."))
		}
		if isBare(n) {
			k.Parts = append(k.Parts, token.New(token.BareKey, n))
		} else {
			k.Parts = append(k.Parts, token.New(token.BasicString, token.Quote(n)))
		}
	}
	return k
}

func isBare(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		c := s[i]
		if !(c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '-') {
			return false
		}
	}
	return true
}

// Names returns the decoded key segments.
func (k *Key) Names() []string {
	if k == nil {
		return nil
	}
	out := make([]string, 0, (len(k.Parts)+1)/2)
	for _, p := range k.Parts {
		if p.Kind == token.Dot {
			continue
		}
		v, err := p.Value()
		if err != nil {
			v = p.Text
		}
		out = append(out, v)
	}
	return out
}

// First returns the first decoded segment ("urls" for urls.homepage).
func (k *Key) First() string {
	names := k.Names()
	if len(names) == 0 {
		return ""
	}
	return names[0]
}

// String joins the segments with dots, without quoting.
func (k *Key) String() string {
	return strings.Join(k.Names(), ".")
}

// Dotted reports whether the key has more than one segment.
func (k *Key) Dotted() bool {
	return k != nil && len(k.Parts) > 1
}

// Compact drops the trivia between the key's tokens ("a . b" -> "a.b").
func (k *Key) Compact() {
	for i := range k.Parts {
		k.Parts[i].Leading = nil
	}
}
