package pep440

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidVersion is wrapped by every version parse failure.
var ErrInvalidVersion = errors.New("invalid version")

// Mirrors the reference regular expression from PEP 440, appendix B,
// plus an optional ".*" suffix for wildcard matching.
var reVersion = regexp.MustCompile(`(?i)^v?` +
	`(?:(?P<epoch>[0-9]+)!)?` +
	`(?P<release>[0-9]+(?:\.[0-9]+)*)` +
	`(?P<wild>\.\*)?` +
	`(?P<pre>[-_.]?(?:a|b|c|rc|alpha|beta|pre|preview)[-_.]?[0-9]*)?` +
	`(?P<post>(?:-[0-9]+)|(?:[-_.]?(?:post|rev|r)[-_.]?[0-9]*))?` +
	`(?P<dev>[-_.]?dev[-_.]?[0-9]*)?` +
	`(?:\+(?P<local>[a-z0-9]+(?:[-_.][a-z0-9]+)*))?$`)

// Version is a parsed version. Text keeps the spelling it was parsed from.
type Version struct {
	Text     string
	Epoch    int
	Release  []int
	Wildcard bool
	Pre      string
	Post     string
	Dev      string
	Local    string
}

// Parse parses s as a PEP 440 version, optionally ending in ".*".
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	m := reVersion.FindStringSubmatch(s)
	if m == nil {
		return Version{}, fmt.Errorf("%w: %q", ErrInvalidVersion, s)
	}
	group := func(name string) string { return m[reVersion.SubexpIndex(name)] }

	v := Version{
		Text:     s,
		Wildcard: group("wild") != "",
		Pre:      group("pre"),
		Post:     group("post"),
		Dev:      group("dev"),
		Local:    group("local"),
	}
	if e := group("epoch"); e != "" {
		n, err := strconv.Atoi(e)
		if err != nil {
			return Version{}, fmt.Errorf("%w: epoch %q: %w", ErrInvalidVersion, e, err)
		}
		v.Epoch = n
	}
	for _, part := range strings.Split(group("release"), ".") {
		n, err := strconv.Atoi(part)
		if err != nil {
			return Version{}, fmt.Errorf("%w: release %q: %w", ErrInvalidVersion, part, err)
		}
		v.Release = append(v.Release, n)
	}
	if v.Wildcard && (v.Pre != "" || v.Post != "" || v.Dev != "" || v.Local != "") {
		return Version{}, fmt.Errorf("%w: wildcard must end the version: %q", ErrInvalidVersion, s)
	}
	return v, nil
}

// IsPlain reports whether the version is only a release number: no epoch,
// wildcard, pre, post, dev or local segment.
func (v Version) IsPlain() bool {
	return v.Epoch == 0 && !v.Wildcard && v.Pre == "" && v.Post == "" && v.Dev == "" && v.Local == ""
}

// TrimTrailingZeros drops zero release components beyond the second
// ("1.2.0" -> "1.2", "1.0.0" -> "1.0"). Only plain versions are touched;
// anything else is returned unchanged.
func (v Version) TrimTrailingZeros() Version {
	if !v.IsPlain() {
		return v
	}
	n := len(v.Release)
	for n > 2 && v.Release[n-1] == 0 {
		n--
	}
	if n == len(v.Release) {
		return v
	}
	out := v
	out.Release = v.Release[:n:n]
	parts := make([]string, n)
	for i, r := range out.Release {
		parts[i] = strconv.Itoa(r)
	}
	out.Text = strings.Join(parts, ".")
	return out
}

func (v Version) String() string {
	return v.Text
}

// Minor returns the first two release components; a missing minor is zero.
func (v Version) Minor() MinorVersion {
	mv := MinorVersion{Major: v.Release[0]}
	if len(v.Release) > 1 {
		mv.Minor = v.Release[1]
	}
	return mv
}
