package pep440

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidSpecifier is wrapped by every specifier parse failure.
var ErrInvalidSpecifier = errors.New("invalid version specifier")

// Operator is a PEP 440 comparison operator.
type Operator string

const (
	Compatible Operator = "~="
	Equal      Operator = "=="
	NotEqual   Operator = "!="
	LessEq     Operator = "<="
	GreaterEq  Operator = ">="
	Less       Operator = "<"
	Greater    Operator = ">"
	Arbitrary  Operator = "==="
)

// longest first so "===" wins over "==" and "<=" over "<"
var operators = []Operator{Arbitrary, Compatible, Equal, NotEqual, LessEq, GreaterEq, Less, Greater}

// Trimmable reports whether zero-padding makes "X.Y.0" and "X.Y" equivalent
// under op. Compatible release changes its upper bound with the number of
// components and arbitrary equality compares strings.
func (op Operator) Trimmable() bool {
	switch op {
	case Equal, NotEqual, LessEq, GreaterEq, Less, Greater:
		return true
	}
	return false
}

// Specifier is one clause such as ">=1.0".
type Specifier struct {
	Op      Operator
	Version Version
	// Raw is the version text for "===", which is not parsed.
	Raw string
}

// ParseSpecifier parses one clause. Whitespace around and inside is ignored.
func ParseSpecifier(s string) (Specifier, error) {
	s = strings.TrimSpace(s)
	for _, op := range operators {
		rest, ok := strings.CutPrefix(s, string(op))
		if !ok {
			continue
		}
		rest = strings.TrimSpace(rest)
		if rest == "" {
			return Specifier{}, fmt.Errorf("%w: %q has no version", ErrInvalidSpecifier, s)
		}
		if op == Arbitrary {
			if strings.ContainsAny(rest, " \t,;") {
				return Specifier{}, fmt.Errorf("%w: %q", ErrInvalidSpecifier, s)
			}
			return Specifier{Op: op, Raw: rest}, nil
		}
		v, err := Parse(rest)
		if err != nil {
			return Specifier{}, fmt.Errorf("%w: %w", ErrInvalidSpecifier, err)
		}
		if v.Wildcard && op != Equal && op != NotEqual {
			return Specifier{}, fmt.Errorf("%w: wildcard not allowed with %s", ErrInvalidSpecifier, op)
		}
		if op == Compatible && len(v.Release) < 2 {
			return Specifier{}, fmt.Errorf("%w: %s needs at least two release components", ErrInvalidSpecifier, op)
		}
		return Specifier{Op: op, Version: v}, nil
	}
	return Specifier{}, fmt.Errorf("%w: %q has no operator", ErrInvalidSpecifier, s)
}

// ParseSpecifiers parses a comma separated specifier set. An empty string is an
// empty set.
func ParseSpecifiers(s string) ([]Specifier, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	parts := strings.Split(s, ",")
	out := make([]Specifier, 0, len(parts))
	for _, part := range parts {
		sp, err := ParseSpecifier(part)
		if err != nil {
			return nil, err
		}
		out = append(out, sp)
	}
	return out, nil
}

// Trim returns sp with trailing zeros removed when the operator allows it.
func (sp Specifier) Trim() Specifier {
	if !sp.Op.Trimmable() {
		return sp
	}
	sp.Version = sp.Version.TrimTrailingZeros()
	return sp
}

func (sp Specifier) String() string {
	if sp.Op == Arbitrary {
		return string(sp.Op) + sp.Raw
	}
	return string(sp.Op) + sp.Version.Text
}

// Join renders specifiers separated by commas, without spaces.
func Join(specs []Specifier) string {
	parts := make([]string, len(specs))
	for i, sp := range specs {
		parts[i] = sp.String()
	}
	return strings.Join(parts, ",")
}
