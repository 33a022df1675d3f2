// Package cst defines the concrete syntax tree of a pyproject.toml document.
//
// Назначение: дерево, которое хранит каждый байт исходника (пробелы, комментарии,
// пустые строки) рядом с семантическими узлами, чтобы Render(Parse(t)) == t.
// Не делает: разбор текста (internal/parser) и нормализацию (internal/format).
//
// Trivia ownership:
//   - Node Leading holds the trivia before the node's first token; that token's own
//     Leading is empty.
//   - Trailing holds the trivia after the node's last token up to and including the
//     first line break.
//   - Trivia inside a node (around '=', dots, commas) stays on the inner tokens.
package cst
