// Package token defines the lexical tokens and trivia of pyproject.toml documents.
// Invariants:
//   - Token.Text is the exact source slice covered by Token.Span.
//   - Every byte between two tokens is owned by exactly one Trivia of the later
//     token's Leading slice, so concatenating Leading and Text for all tokens
//     reproduces the input.
//   - Newline trivia are never coalesced: one Trivia per line break ("\n" or "\r\n").
//   - Bare values (numbers, booleans, dates) are a single Bare token; the parser
//     classifies them.
package token
