package diag

import (
	"fmt"

	"pyprojectfmt/internal/source"
)

// Severity ranks a diagnostic. The parser stops at the first SevError.
type Severity uint8

const (
	SevWarning Severity = iota + 1
	SevError
)

func (s Severity) String() string {
	switch s {
	case SevWarning:
		return "warning"
	case SevError:
		return "error"
	default:
		return fmt.Sprintf("severity(%d)", uint8(s))
	}
}

// Diagnostic is one finding of the lexer or parser, anchored at a byte span.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
}

// String renders "CODE severity: message", without position.
func (d Diagnostic) String() string {
	return fmt.Sprintf("%s %s: %s", d.Code.ID(), d.Severity, d.Message)
}
