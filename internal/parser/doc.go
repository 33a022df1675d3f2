// Package parser builds a lossless cst.Document from TOML source.
//
// The parser has no lookahead: it pulls one token at a time from the lexer and
// tells it whether a key or a value is expected next. Trivia is redistributed
// onto nodes as described in package cst. The first error aborts parsing and is
// returned as *Error.
package parser
