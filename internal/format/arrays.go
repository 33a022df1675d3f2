package format

import (
	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/token"
)

// fixCommas restores the separator invariant after items were reordered,
// inserted or removed: every item but the last has a comma, and the last has
// one only when trailing is set. Comments that sat before a dropped comma move
// to the item's trailing trivia.
func fixCommas(a *cst.Array, trailing bool) {
	for i, it := range a.Items {
		last := i == len(a.Items)-1
		switch {
		case !last || trailing:
			if it.Comma == nil {
				c := token.New(token.Comma, ",")
				it.Comma = &c
			}
		case it.Comma != nil:
			it.Trailing = append(it.Comma.Leading[:len(it.Comma.Leading):len(it.Comma.Leading)], it.Trailing...)
			it.Comma = nil
		}
	}
}

// hasTrailingComma reports whether the last item carries a comma.
func hasTrailingComma(a *cst.Array) bool {
	n := len(a.Items)
	return n > 0 && a.Items[n-1].Comma != nil
}
