package source

type (
	// FileID uniquely identifies a source file within a FileSet.
	FileID uint32
	// FileFlags records what was normalized when the file was loaded.
	FileFlags uint8
)

const (
	// FileVirtual marks files that did not come from disk (stdin, tests).
	FileVirtual FileFlags = 1 << iota
	// FileHadBOM is set when a UTF-8 byte order mark was stripped on load.
	FileHadBOM
	// FileNormalizedCRLF is set when CRLF line endings were rewritten to LF on load.
	FileNormalizedCRLF
)

// File holds the content of one document plus its line index.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32
	Hash    [32]byte
	Flags   FileFlags
}

// LineCol is a human-readable position. Both fields are 1-based; Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
