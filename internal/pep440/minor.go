package pep440

import (
	"cmp"
	"fmt"
	"strconv"
	"strings"
)

// MinorVersion is a MAJOR.MINOR interpreter version such as 3.13.
type MinorVersion struct {
	Major int
	Minor int
}

// ParseMinor parses "3.13". Surrounding whitespace is ignored.
func ParseMinor(s string) (MinorVersion, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return MinorVersion{}, fmt.Errorf("%w: %q is not MAJOR.MINOR", ErrInvalidVersion, s)
	}
	ma, err := strconv.Atoi(major)
	if err != nil || ma < 0 {
		return MinorVersion{}, fmt.Errorf("%w: major in %q", ErrInvalidVersion, s)
	}
	mi, err := strconv.Atoi(minor)
	if err != nil || mi < 0 {
		return MinorVersion{}, fmt.Errorf("%w: minor in %q", ErrInvalidVersion, s)
	}
	return MinorVersion{Major: ma, Minor: mi}, nil
}

// MustParseMinor is ParseMinor for constants; it panics on error.
func MustParseMinor(s string) MinorVersion {
	v, err := ParseMinor(s)
	if err != nil {
		panic(err)
	}
	return v
}

func (v MinorVersion) String() string {
	return strconv.Itoa(v.Major) + "." + strconv.Itoa(v.Minor)
}

// Compare orders by major, then minor.
func (v MinorVersion) Compare(o MinorVersion) int {
	if c := cmp.Compare(v.Major, o.Major); c != 0 {
		return c
	}
	return cmp.Compare(v.Minor, o.Minor)
}

func (v MinorVersion) Less(o MinorVersion) bool {
	return v.Compare(o) < 0
}

// Next returns the following minor of the same major.
func (v MinorVersion) Next() MinorVersion {
	return MinorVersion{Major: v.Major, Minor: v.Minor + 1}
}

// IsZero reports whether v is unset.
func (v MinorVersion) IsZero() bool {
	return v == MinorVersion{}
}

// MarshalText lets settings and caches encode the version as "3.13".
func (v MinorVersion) MarshalText() ([]byte, error) {
	return []byte(v.String()), nil
}

func (v *MinorVersion) UnmarshalText(b []byte) error {
	parsed, err := ParseMinor(string(b))
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
