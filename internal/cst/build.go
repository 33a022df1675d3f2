package cst

import "pyprojectfmt/internal/token"

// NewString returns a synthetic basic-string scalar holding s.
func NewString(s string) *Scalar {
	return &Scalar{Kind: String, Tok: token.New(token.BasicString, token.Quote(s))}
}

// NewArray returns a synthetic array of values. Layout decides its final shape.
func NewArray(values ...Value) *Array {
	a := &Array{
		Open:  token.New(token.LBracket, "["),
		Close: token.New(token.RBracket, "]"),
	}
	for _, v := range values {
		a.Append(v)
	}
	return a
}

// Append adds v as the last item, giving the previous last item a comma.
func (a *Array) Append(v Value) {
	if n := len(a.Items); n > 0 && a.Items[n-1].Comma == nil {
		c := token.New(token.Comma, ",")
		a.Items[n-1].Comma = &c
	}
	a.Items = append(a.Items, &ArrayItem{Value: v})
}

// NewKeyValue returns a synthetic "key = value" line ending in a newline.
func NewKeyValue(key *Key, v Value) *KeyValue {
	eq := token.New(token.Equals, "=")
	eq.Leading = []token.Trivia{token.Space}
	v.First().Leading = []token.Trivia{token.Space}
	return &KeyValue{
		Key:      key,
		Eq:       eq,
		Value:    v,
		Trailing: []token.Trivia{token.Newline},
	}
}
