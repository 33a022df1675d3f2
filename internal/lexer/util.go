package lexer

import "strconv"

func isPunct(b byte) bool {
	switch b {
	case '[', ']', '{', '}', '=', ',', '.':
		return true
	}
	return false
}

func isDec(b byte) bool { return b >= '0' && b <= '9' }

func isAlpha(b byte) bool { return (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') }

func isBareKeyByte(b byte) bool {
	return isAlpha(b) || isDec(b) || b == '_' || b == '-'
}

// isBareValueByte also accepts '.', ':' and '+' (floats, times, offsets).
func isBareValueByte(b byte) bool {
	return isBareKeyByte(b) || b == '.' || b == ':' || b == '+'
}

func isControl(b byte) bool {
	return b < 0x20 || b == 0x7f
}

// isDateOnly matches YYYY-MM-DD.
func isDateOnly(s string) bool {
	if len(s) != 10 || s[4] != '-' || s[7] != '-' {
		return false
	}
	for i, c := range []byte(s) {
		if i == 4 || i == 7 {
			continue
		}
		if !isDec(c) {
			return false
		}
	}
	return true
}

func quoteRune(r rune) string {
	return strconv.QuoteRune(r)
}
