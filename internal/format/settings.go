package format

import (
	"fmt"

	"pyprojectfmt/internal/pep440"
)

// Settings is the immutable configuration threaded through the passes.
type Settings struct {
	ColumnWidth        int
	Indent             int
	KeepFullVersion    bool
	MaxSupportedPython pep440.MinorVersion
	MinSupportedPython pep440.MinorVersion
}

// Default values used when neither a flag nor the document sets a field.
const (
	DefaultColumnWidth = 120
	DefaultIndent      = 2
)

var (
	DefaultMaxSupportedPython = pep440.MinorVersion{Major: 3, Minor: 13}
	DefaultMinSupportedPython = pep440.MinorVersion{Major: 3, Minor: 9}
)

// DefaultSettings returns the built-in defaults.
func DefaultSettings() Settings {
	return Settings{
		ColumnWidth:        DefaultColumnWidth,
		Indent:             DefaultIndent,
		MaxSupportedPython: DefaultMaxSupportedPython,
		MinSupportedPython: DefaultMinSupportedPython,
	}
}

// ConfigError reports an invalid settings combination. It is raised before any
// pass runs.
type ConfigError struct {
	Field string
	Msg   string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Msg)
}

// Validate checks ranges and the min <= max invariant.
func (s Settings) Validate() error {
	if s.ColumnWidth <= 0 {
		return &ConfigError{Field: "column_width", Msg: fmt.Sprintf("must be positive, got %d", s.ColumnWidth)}
	}
	if s.Indent <= 0 {
		return &ConfigError{Field: "indent", Msg: fmt.Sprintf("must be positive, got %d", s.Indent)}
	}
	if s.MaxSupportedPython.Less(s.MinSupportedPython) {
		return &ConfigError{
			Field: "max_supported_python",
			Msg:   fmt.Sprintf("%s is lower than min_supported_python %s", s.MaxSupportedPython, s.MinSupportedPython),
		}
	}
	return nil
}
