// Package diag defines the diagnostic model shared by the lexer, the parser and
// the normalization passes.
//
// # Purpose
//
//   - Provide small, deterministic records for findings (Diagnostic) and a
//     bounded collector for them (Bag).
//   - Decouple producers from storage through the Reporter interface, so the
//     lexer and the parser can report without knowing who listens.
//
// # Severity
//
// Errors are fatal for a document: the parser turns the first error in its bag
// into a positioned parse error and no output is produced. Warnings are used by
// the normalization passes for values they could not interpret and left alone
// (see format.Skip); they never stop a run.
//
// Package diag performs no formatting of its own beyond Code.ID and no IO.
package diag
