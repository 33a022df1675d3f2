package driver

import (
	"crypto/sha256"
	"fmt"

	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/version"
)

// Digest is a SHA-256 sum.
type Digest [sha256.Size]byte

// CacheKey: H(version || settings || content). Any change to the tool, the
// settings or the bytes gives a new key.
func CacheKey(content []byte, s format.Settings) Digest {
	h := sha256.New()
	_, _ = fmt.Fprintf(h, "%s\x00%d\x00%d\x00%t\x00%s\x00%s\x00",
		version.Version, s.ColumnWidth, s.Indent, s.KeepFullVersion, s.MaxSupportedPython, s.MinSupportedPython)
	_, _ = h.Write(content)
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
