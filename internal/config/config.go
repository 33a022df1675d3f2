// Package config resolves formatter settings from three tiers: command-line
// flags the user actually set, the document's own [tool.pyproject-fmt] table,
// and built-in defaults, in that order of precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/BurntSushi/toml"

	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/pep440"
)

// Section is the table name read from the document.
const Section = "pyproject-fmt"

// Setting names, shared by the document table and error messages.
const (
	ColumnWidth        = "column_width"
	Indent             = "indent"
	KeepFullVersion    = "keep_full_version"
	MaxSupportedPython = "max_supported_python"
	MinSupportedPython = "min_supported_python"
)

// Source tells where a resolved value came from.
type Source uint8

const (
	SourceDefault Source = iota
	SourceDocument
	SourceFlag
)

func (s Source) String() string {
	switch s {
	case SourceDocument:
		return "document"
	case SourceFlag:
		return "flag"
	default:
		return "default"
	}
}

// Overrides holds the flags the user set explicitly. A nil field falls through
// to the document and then to the default.
type Overrides struct {
	ColumnWidth        *int
	Indent             *int
	KeepFullVersion    *bool
	MaxSupportedPython *pep440.MinorVersion
	MinSupportedPython *pep440.MinorVersion
}

// Resolved is the final settings plus the origin of every field.
type Resolved struct {
	Settings format.Settings
	Sources  map[string]Source
}

type document struct {
	Tool struct {
		Fmt map[string]any `toml:"pyproject-fmt"`
	} `toml:"tool"`
}

// Resolve computes the settings for one document. Syntax errors in src are not
// reported here: the formatter reports them with a position. A setting of the
// wrong type is a *format.ConfigError. The result is validated.
func Resolve(src []byte, o Overrides) (Resolved, error) {
	var doc document
	meta, err := toml.Decode(string(src), &doc)
	if err != nil {
		var perr toml.ParseError
		if !errors.As(err, &perr) {
			return Resolved{}, &format.ConfigError{Field: "tool." + Section, Msg: err.Error()}
		}
		doc, meta = document{}, toml.MetaData{}
	}
	sec := table{values: doc.Tool.Fmt, meta: meta}

	width, hasWidth, err := sec.integer(ColumnWidth)
	if err != nil {
		return Resolved{}, err
	}
	indent, hasIndent, err := sec.integer(Indent)
	if err != nil {
		return Resolved{}, err
	}
	keep, hasKeep, err := sec.boolean(KeepFullVersion)
	if err != nil {
		return Resolved{}, err
	}
	maxPy, hasMax, err := sec.minor(MaxSupportedPython)
	if err != nil {
		return Resolved{}, err
	}
	minPy, hasMin, err := sec.minor(MinSupportedPython)
	if err != nil {
		return Resolved{}, err
	}

	def := format.DefaultSettings()
	r := Resolved{Sources: make(map[string]Source, 5)}
	s := format.Settings{
		ColumnWidth:        pick(r.Sources, ColumnWidth, o.ColumnWidth, width, hasWidth, def.ColumnWidth),
		Indent:             pick(r.Sources, Indent, o.Indent, indent, hasIndent, def.Indent),
		KeepFullVersion:    pick(r.Sources, KeepFullVersion, o.KeepFullVersion, keep, hasKeep, def.KeepFullVersion),
		MaxSupportedPython: pick(r.Sources, MaxSupportedPython, o.MaxSupportedPython, maxPy, hasMax, def.MaxSupportedPython),
		MinSupportedPython: pick(r.Sources, MinSupportedPython, o.MinSupportedPython, minPy, hasMin, def.MinSupportedPython),
	}
	r.Settings = s

	if err := s.Validate(); err != nil {
		var cerr *format.ConfigError
		if errors.As(err, &cerr) {
			cerr.Msg = fmt.Sprintf("%s (from %s)", cerr.Msg, r.Sources[cerr.Field])
		}
		return Resolved{}, err
	}
	return r, nil
}

func pick[T any](sources map[string]Source, name string, flag *T, doc T, inDoc bool, def T) T {
	switch {
	case flag != nil:
		sources[name] = SourceFlag
		return *flag
	case inDoc:
		sources[name] = SourceDocument
		return doc
	default:
		sources[name] = SourceDefault
		return def
	}
}
