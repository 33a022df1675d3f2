// Package format is the pyproject.toml formatting engine.
//
// Назначение: parse -> content passes -> layout -> render, as a pure function of
// (text, Settings). Passes take ownership of a *cst.Document and return it; the
// pipeline is the explicit DefaultPasses slice so tests can run any subset.
// Не делает: IO, логирование, разбор флагов (internal/driver, internal/config).
// Зависимости: internal/cst, internal/parser, internal/pep440, internal/pep508.
package format
