package diag

import (
	"fmt"
)

type Code uint16

const (
	UnknownCode Code = 0

	// Лексические
	LexUnknownChar           Code = 1001
	LexUnterminatedString    Code = 1002
	LexNewlineInString       Code = 1003
	LexBadEscape             Code = 1004
	LexControlChar           Code = 1005
	LexBadBareValue          Code = 1006
	LexInvalidUTF8           Code = 1007
	LexBareCarriageReturn    Code = 1009
	LexUnterminatedMultiLine Code = 1010

	// Синтаксические
	SynUnexpectedToken     Code = 2001
	SynExpectKey           Code = 2002
	SynExpectEquals        Code = 2003
	SynExpectValue         Code = 2004
	SynExpectNewline       Code = 2005
	SynUnclosedBracket     Code = 2006
	SynUnclosedBrace       Code = 2007
	SynNewlineInInline     Code = 2008
	SynExpectHeaderClose   Code = 2009
	SynTrailingCommaInline Code = 2010

	// Семантические
	SemDuplicateKey        Code = 3001
	SemTableRedefined      Code = 3002
	SemKeyNotTable         Code = 3003
	SemStaticArrayExtended Code = 3004
	SemDottedIntoHeader    Code = 3005

	// Normalization (never fatal)
	NormUnparseableRequirement Code = 6001
	NormUnparseableVersion     Code = 6002
	NormUnparseableRequires    Code = 6003
	NormUnexpectedValue        Code = 6004
)

var codeDescription = map[Code]string{
	UnknownCode:                "Unknown error",
	LexUnknownChar:             "Unknown character",
	LexUnterminatedString:      "Unterminated string",
	LexNewlineInString:         "Newline in single-line string",
	LexBadEscape:               "Invalid escape sequence",
	LexControlChar:             "Control character not allowed",
	LexBadBareValue:            "Invalid bare value",
	LexInvalidUTF8:             "Invalid UTF-8",
	LexBareCarriageReturn:      "Carriage return without line feed",
	LexUnterminatedMultiLine:   "Unterminated multi-line string",
	SynUnexpectedToken:         "Unexpected token",
	SynExpectKey:               "Expected a key",
	SynExpectEquals:            "Expected '='",
	SynExpectValue:             "Expected a value",
	SynExpectNewline:           "Expected a newline",
	SynUnclosedBracket:         "Unclosed '['",
	SynUnclosedBrace:           "Unclosed '{'",
	SynNewlineInInline:         "Newline inside inline table",
	SynExpectHeaderClose:       "Expected ']' to close table header",
	SynTrailingCommaInline:     "Trailing comma in inline table",
	SemDuplicateKey:            "Duplicate key",
	SemTableRedefined:          "Table defined more than once",
	SemKeyNotTable:             "Key is not a table",
	SemStaticArrayExtended:     "Static array extended as array of tables",
	SemDottedIntoHeader:        "Dotted key extends a table defined by a header",
	NormUnparseableRequirement: "Unparseable dependency specifier",
	NormUnparseableVersion:     "Unparseable version",
	NormUnparseableRequires:    "Unparseable requires-python",
	NormUnexpectedValue:        "Unexpected value type",
}

// ID returns the stable short identifier, e.g. SYN2003.
func (c Code) ID() string {
	switch ic := int(c); {
	case ic >= 1000 && ic < 2000:
		return fmt.Sprintf("LEX%04d", ic)
	case ic >= 2000 && ic < 3000:
		return fmt.Sprintf("SYN%04d", ic)
	case ic >= 3000 && ic < 4000:
		return fmt.Sprintf("SEM%04d", ic)
	case ic >= 6000 && ic < 7000:
		return fmt.Sprintf("NRM%04d", ic)
	default:
		return fmt.Sprintf("E%04d", ic)
	}
}

// Title returns the human description of the code.
func (c Code) Title() string {
	desc, ok := codeDescription[c]
	if !ok {
		return codeDescription[UnknownCode]
	}
	return desc
}

func (c Code) String() string {
	return fmt.Sprintf("[%s]: %s", c.ID(), c.Title())
}
