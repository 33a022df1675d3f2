package parser

import (
	"fmt"

	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/source"
)

// Error is a positioned, fatal parse failure.
type Error struct {
	Code   diag.Code
	Path   string
	Pos    source.LineCol
	Offset uint32
	Msg    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("%s:%d:%d: %s: %s", e.Path, e.Pos.Line, e.Pos.Col, e.Code.ID(), e.Msg)
}

func newError(f *source.File, d diag.Diagnostic) *Error {
	return &Error{
		Code:   d.Code,
		Path:   f.Path,
		Pos:    f.Position(d.Primary.Start),
		Offset: d.Primary.Start,
		Msg:    d.Message,
	}
}
