// Package pep508 parses and re-emits dependency specifiers such as
// `requests[socks] >= 2.0 ; python_version < "3.11"`.
package pep508

import (
	"errors"
	"fmt"
	"regexp"
	"slices"
	"strings"

	"pyprojectfmt/internal/pep440"
)

// ErrInvalidRequirement is wrapped by every parse failure.
var ErrInvalidRequirement = errors.New("invalid requirement")

var (
	reName   = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?`)
	reExtra  = regexp.MustCompile(`^[A-Za-z0-9](?:[A-Za-z0-9._-]*[A-Za-z0-9])?$`)
	reSep    = regexp.MustCompile(`[-_.]+`)
	// URI scheme per RFC 3986; relative paths are not direct references
	reScheme = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9+.-]*:`)
)

// Requirement is one parsed dependency specifier.
type Requirement struct {
	Name       string
	Extras     []string
	Specifiers []pep440.Specifier
	URL        string
	Marker     string
}

// Parse parses s. Whitespace between the parts is insignificant.
func Parse(s string) (Requirement, error) {
	var r Requirement
	rest := strings.TrimSpace(s)

	name := reName.FindString(rest)
	if name == "" {
		return r, fmt.Errorf("%w: %q: missing project name", ErrInvalidRequirement, s)
	}
	r.Name = name
	rest = strings.TrimSpace(rest[len(name):])

	if strings.HasPrefix(rest, "[") {
		end := strings.IndexByte(rest, ']')
		if end < 0 {
			return r, fmt.Errorf("%w: %q: unclosed extras", ErrInvalidRequirement, s)
		}
		for _, e := range strings.Split(rest[1:end], ",") {
			e = strings.TrimSpace(e)
			if e == "" {
				continue
			}
			if !reExtra.MatchString(e) {
				return r, fmt.Errorf("%w: %q: bad extra %q", ErrInvalidRequirement, s, e)
			}
			r.Extras = append(r.Extras, e)
		}
		slices.Sort(r.Extras)
		r.Extras = slices.Compact(r.Extras)
		rest = strings.TrimSpace(rest[end+1:])
	}

	if url, ok := strings.CutPrefix(rest, "@"); ok {
		url = strings.TrimLeft(url, " \t")
		end := strings.IndexAny(url, " \t")
		if end < 0 {
			end = len(url)
		}
		r.URL = url[:end]
		if r.URL == "" {
			return r, fmt.Errorf("%w: %q: empty URL", ErrInvalidRequirement, s)
		}
		if !reScheme.MatchString(r.URL) {
			return r, fmt.Errorf("%w: %q: URL %q has no scheme", ErrInvalidRequirement, s, r.URL)
		}
		rest = strings.TrimSpace(url[end:])
		if rest != "" && !strings.HasPrefix(rest, ";") {
			return r, fmt.Errorf("%w: %q: unexpected %q after URL", ErrInvalidRequirement, s, rest)
		}
	} else {
		spec, marker, hasMarker := strings.Cut(rest, ";")
		rest = ""
		if hasMarker {
			rest = ";" + marker
		}
		spec = strings.TrimSpace(spec)
		if strings.HasPrefix(spec, "(") {
			if !strings.HasSuffix(spec, ")") {
				return r, fmt.Errorf("%w: %q: unclosed '('", ErrInvalidRequirement, s)
			}
			spec = spec[1 : len(spec)-1]
		}
		specs, err := pep440.ParseSpecifiers(spec)
		if err != nil {
			return r, fmt.Errorf("%w: %q: %w", ErrInvalidRequirement, s, err)
		}
		r.Specifiers = specs
	}

	if m, ok := strings.CutPrefix(rest, ";"); ok {
		marker, err := normalizeMarker(m)
		if err != nil {
			return r, fmt.Errorf("%w: %q: %w", ErrInvalidRequirement, s, err)
		}
		r.Marker = marker
	}
	return r, nil
}

// TrimVersions returns a copy with trailing zeros removed from every
// specifier whose operator allows it.
func (r Requirement) TrimVersions() Requirement {
	out := r
	out.Specifiers = make([]pep440.Specifier, len(r.Specifiers))
	for i, sp := range r.Specifiers {
		out.Specifiers[i] = sp.Trim()
	}
	return out
}

// String renders the canonical form: no spaces before the marker separator,
// "name @ url" for direct references.
func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.Name)
	if len(r.Extras) > 0 {
		b.WriteByte('[')
		b.WriteString(strings.Join(r.Extras, ","))
		b.WriteByte(']')
	}
	if r.URL != "" {
		b.WriteString(" @ ")
		b.WriteString(r.URL)
		if r.Marker != "" {
			b.WriteString(" ; ")
			b.WriteString(r.Marker)
		}
		return b.String()
	}
	b.WriteString(pep440.Join(r.Specifiers))
	if r.Marker != "" {
		b.WriteString("; ")
		b.WriteString(r.Marker)
	}
	return b.String()
}

// CanonicalName normalizes a project name per PEP 503.
func CanonicalName(name string) string {
	return strings.ToLower(reSep.ReplaceAllString(name, "-"))
}
