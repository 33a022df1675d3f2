package token

// Kind represents the category of a token.
type Kind uint8

const (
	// Invalid marks a token the lexer could not finish (unterminated string, stray byte).
	Invalid Kind = iota
	// EOF marks the end of input. It carries the trailing trivia of the document.
	EOF

	// BareKey is an unquoted key segment: [A-Za-z0-9_-]+.
	BareKey
	// Bare is an unquoted value: integer, float, boolean or date-time.
	Bare

	// BasicString is "...".
	BasicString
	// LiteralString is '...'.
	LiteralString
	// MultiLineBasicString is """...""".
	MultiLineBasicString
	// MultiLineLiteralString is '''...'''.
	MultiLineLiteralString

	LBracket // [
	RBracket // ]
	LBrace   // {
	RBrace   // }
	Equals   // =
	Comma    // ,
	Dot      // .
)

var kindNames = [...]string{
	Invalid:                "Invalid",
	EOF:                    "EOF",
	BareKey:                "BareKey",
	Bare:                   "Bare",
	BasicString:            "BasicString",
	LiteralString:          "LiteralString",
	MultiLineBasicString:   "MultiLineBasicString",
	MultiLineLiteralString: "MultiLineLiteralString",
	LBracket:               "LBracket",
	RBracket:               "RBracket",
	LBrace:                 "LBrace",
	RBrace:                 "RBrace",
	Equals:                 "Equals",
	Comma:                  "Comma",
	Dot:                    "Dot",
}

func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(?)"
}

// IsString reports whether k is one of the four string forms.
func (k Kind) IsString() bool {
	switch k {
	case BasicString, LiteralString, MultiLineBasicString, MultiLineLiteralString:
		return true
	default:
		return false
	}
}

// IsMultiLine reports whether k is a triple-quoted string.
func (k Kind) IsMultiLine() bool {
	return k == MultiLineBasicString || k == MultiLineLiteralString
}
