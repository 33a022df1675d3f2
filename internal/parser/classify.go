package parser

import (
	"regexp"

	"pyprojectfmt/internal/cst"
)

var (
	reDecInt = regexp.MustCompile(`^[+-]?(0|[1-9](_?[0-9])*)$`)
	reHexInt = regexp.MustCompile(`^0x[0-9A-Fa-f](_?[0-9A-Fa-f])*$`)
	reOctInt = regexp.MustCompile(`^0o[0-7](_?[0-7])*$`)
	reBinInt = regexp.MustCompile(`^0b[01](_?[01])*$`)

	reFloat    = regexp.MustCompile(`^[+-]?(0|[1-9](_?[0-9])*)(\.[0-9](_?[0-9])*)?([eE][+-]?[0-9](_?[0-9])*)?$`)
	reSpecialF = regexp.MustCompile(`^[+-]?(inf|nan)$`)

	reDateTime  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}([Tt ]\d{2}:\d{2}:\d{2}(\.\d+)?([Zz]|[+-]\d{2}:\d{2})?)?$`)
	reLocalTime = regexp.MustCompile(`^\d{2}:\d{2}:\d{2}(\.\d+)?$`)
)

// classify maps the text of a bare value to its scalar kind.
func classify(text string) (cst.ScalarKind, bool) {
	switch {
	case text == "true" || text == "false":
		return cst.Bool, true
	case reDecInt.MatchString(text), reHexInt.MatchString(text),
		reOctInt.MatchString(text), reBinInt.MatchString(text):
		return cst.Integer, true
	case reSpecialF.MatchString(text):
		return cst.Float, true
	case reFloat.MatchString(text):
		// reDecInt already took the forms without fraction and exponent
		return cst.Float, true
	case reDateTime.MatchString(text) && validDate(text), reLocalTime.MatchString(text) && validTime(text):
		return cst.DateTime, true
	}
	return 0, false
}

func twoDigits(s string) int {
	return int(s[0]-'0')*10 + int(s[1]-'0')
}

func validDate(s string) bool {
	month, day := twoDigits(s[5:7]), twoDigits(s[8:10])
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return false
	}
	if len(s) > 10 {
		return validTime(s[11:])
	}
	return true
}

func validTime(s string) bool {
	return twoDigits(s[0:2]) < 24 && twoDigits(s[3:5]) < 60 && twoDigits(s[6:8]) <= 60
}
