package pep508

import (
	"errors"
	"fmt"
	"strings"
)

var errBadMarker = errors.New("malformed marker")

// normalizeMarker re-spaces an environment marker: single spaces between
// tokens, none inside parentheses, double-quoted strings.
func normalizeMarker(s string) (string, error) {
	toks, err := markerTokens(s)
	if err != nil {
		return "", err
	}
	if err := checkMarker(toks); err != nil {
		return "", err
	}
	var b strings.Builder
	depth := 0
	for i, t := range toks {
		switch t {
		case "(":
			depth++
		case ")":
			depth--
			if depth < 0 {
				return "", errBadMarker
			}
		}
		if i > 0 && toks[i-1] != "(" && t != ")" {
			b.WriteByte(' ')
		}
		b.WriteString(t)
	}
	if depth != 0 {
		return "", errBadMarker
	}
	return b.String(), nil
}

func markerTokens(s string) ([]string, error) {
	var toks []string
	for i := 0; i < len(s); {
		c := s[i]
		switch {
		case c == ' ' || c == '\t':
			i++
		case c == '(' || c == ')':
			toks = append(toks, string(c))
			i++
		case c == '"' || c == '\'':
			end := strings.IndexByte(s[i+1:], c)
			if end < 0 {
				return nil, errBadMarker
			}
			body := s[i+1 : i+1+end]
			if strings.ContainsRune(body, '"') {
				toks = append(toks, "'"+body+"'")
			} else {
				toks = append(toks, `"`+body+`"`)
			}
			i += end + 2
		case strings.IndexByte("<>=!~", c) >= 0:
			j := i
			for j < len(s) && strings.IndexByte("<>=!~", s[j]) >= 0 {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		case isWordByte(c):
			j := i
			for j < len(s) && isWordByte(s[j]) {
				j++
			}
			toks = append(toks, s[i:j])
			i = j
		default:
			return nil, errBadMarker
		}
	}
	return toks, nil
}

func isWordByte(c byte) bool {
	return c >= 'a' && c <= 'z' || c >= 'A' && c <= 'Z' || c >= '0' && c <= '9' || c == '_' || c == '.' || c == '-'
}

// markerVars are the environment names a marker may compare, including the
// dotted spellings older tools still emit.
var markerVars = map[string]bool{
	"python_version": true, "python_full_version": true, "os_name": true,
	"sys_platform": true, "platform_release": true, "platform_system": true,
	"platform_version": true, "platform_machine": true,
	"platform_python_implementation": true, "implementation_name": true,
	"implementation_version": true, "extra": true, "extras": true,
	"dependency_groups": true,
	"os.name": true, "sys.platform": true, "platform.version": true,
	"platform.machine": true, "platform.python_implementation": true,
	"python_implementation": true,
}

var markerOps = map[string]bool{
	"<": true, "<=": true, ">": true, ">=": true, "==": true, "!=": true,
	"~=": true, "===": true, "in": true,
}

// checkMarker accepts
//
//	expr := and ("or" and)*
//	and  := atom ("and" atom)*
//	atom := "(" expr ")" | operand op operand
func checkMarker(toks []string) error {
	m := markerChecker{toks: toks}
	if err := m.expr(); err != nil {
		return err
	}
	if m.pos != len(toks) {
		return fmt.Errorf("%w: unexpected %q", errBadMarker, toks[m.pos])
	}
	return nil
}

type markerChecker struct {
	toks []string
	pos  int
}

func (m *markerChecker) peek() string {
	if m.pos < len(m.toks) {
		return m.toks[m.pos]
	}
	return ""
}

func (m *markerChecker) expr() error {
	if err := m.and(); err != nil {
		return err
	}
	for m.peek() == "or" {
		m.pos++
		if err := m.and(); err != nil {
			return err
		}
	}
	return nil
}

func (m *markerChecker) and() error {
	if err := m.atom(); err != nil {
		return err
	}
	for m.peek() == "and" {
		m.pos++
		if err := m.atom(); err != nil {
			return err
		}
	}
	return nil
}

func (m *markerChecker) atom() error {
	if m.peek() == "(" {
		m.pos++
		if err := m.expr(); err != nil {
			return err
		}
		if m.peek() != ")" {
			return fmt.Errorf("%w: unclosed '('", errBadMarker)
		}
		m.pos++
		return nil
	}
	if err := m.operand(); err != nil {
		return err
	}
	switch op := m.peek(); {
	case op == "not":
		m.pos++
		if m.peek() != "in" {
			return fmt.Errorf("%w: expected 'in' after 'not'", errBadMarker)
		}
		m.pos++
	case markerOps[op]:
		m.pos++
	default:
		return fmt.Errorf("%w: expected comparison, got %q", errBadMarker, op)
	}
	return m.operand()
}

func (m *markerChecker) operand() error {
	t := m.peek()
	switch {
	case t == "":
		return fmt.Errorf("%w: missing operand", errBadMarker)
	case t[0] == '"' || t[0] == '\'':
	case markerVars[t]:
	default:
		return fmt.Errorf("%w: %q is not a marker variable or string", errBadMarker, t)
	}
	m.pos++
	return nil
}
