package config

import (
	"fmt"

	"fortio.org/safecast"
	"github.com/BurntSushi/toml"

	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/pep440"
)

// table reads typed values out of the decoded [tool.pyproject-fmt] table.
// Presence comes from the decoder's metadata so that an explicit zero value
// still counts as set.
type table struct {
	values map[string]any
	meta   toml.MetaData
}

func (t table) lookup(key string) (any, bool) {
	if !t.meta.IsDefined("tool", Section, key) {
		return nil, false
	}
	v, ok := t.values[key]
	return v, ok
}

func typeError(key, want string, got any) error {
	return &format.ConfigError{Field: key, Msg: fmt.Sprintf("want %s, got %v (%T)", want, got, got)}
}

func (t table) integer(key string) (int, bool, error) {
	raw, ok := t.lookup(key)
	if !ok {
		return 0, false, nil
	}
	n, isInt := raw.(int64)
	if !isInt {
		return 0, false, typeError(key, "an integer", raw)
	}
	v, err := safecast.Conv[int](n)
	if err != nil {
		return 0, false, &format.ConfigError{Field: key, Msg: err.Error()}
	}
	return v, true, nil
}

func (t table) boolean(key string) (bool, bool, error) {
	raw, ok := t.lookup(key)
	if !ok {
		return false, false, nil
	}
	b, isBool := raw.(bool)
	if !isBool {
		return false, false, typeError(key, "a boolean", raw)
	}
	return b, true, nil
}

// minor accepts "3.13" strings only; a float would lose "3.10".
func (t table) minor(key string) (pep440.MinorVersion, bool, error) {
	raw, ok := t.lookup(key)
	if !ok {
		return pep440.MinorVersion{}, false, nil
	}
	s, isString := raw.(string)
	if !isString {
		return pep440.MinorVersion{}, false, typeError(key, `a "MAJOR.MINOR" string`, raw)
	}
	v, err := pep440.ParseMinor(s)
	if err != nil {
		return pep440.MinorVersion{}, false, &format.ConfigError{Field: key, Msg: err.Error()}
	}
	return v, true, nil
}
