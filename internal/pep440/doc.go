// Package pep440 parses Python package versions and version specifiers
// (PEP 440) as far as the formatter needs them: canonical spelling,
// trailing-zero trimming and MAJOR.MINOR interpreter windows.
package pep440
