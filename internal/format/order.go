package format

import (
	"slices"
	"strings"

	"pyprojectfmt/internal/cst"
)

// KnownOrder is the canonical ordering policy: which tables come first and, per
// table, which keys come first. Anything not listed keeps its relative order
// after the listed entries.
type KnownOrder struct {
	Tables []string
	Tools  []string
	Keys   map[string][]string
}

// DefaultOrder follows the layout most pyproject.toml files already use.
var DefaultOrder = KnownOrder{
	Tables: []string{"build-system", "project", "dependency-groups", "tool"},
	Tools: []string{
		"poetry", "pdm", "setuptools", "distutils", "setuptools_scm", "hatch", "flit", "scikit-build",
		"meson-python", "maturin", "black", "ruff", "isort", "flake8", "pycln", "nbqa", "pylint",
		"repo-review", "codespell", "docformatter", "pydoclint", "tomlsort", "check-manifest",
		"check-sdist", "check-wheel-contents", "deptry", "pyproject-fmt", "pytest", "pytest_env",
		"pytest-enabler", "coverage", "doc8", "sphinx-autodoc-typehints", "typos", "mypy", "pyright",
		"basedpyright", "pylsp-mypy", "uv", "cibuildwheel", "tox",
	},
	Keys: map[string][]string{
		"build-system": {"build-backend", "requires", "backend-path"},
		"project": {
			"name", "version", "description", "readme", "keywords", "license", "license-files",
			"maintainers", "authors", "requires-python", "classifiers", "dynamic", "dependencies",
			"optional-dependencies", "urls", "scripts", "gui-scripts", "entry-points",
		},
	},
}

// rank returns the position of name in list, or len(list) when absent.
func rank(list []string, name string) int {
	if i := slices.Index(list, name); i >= 0 {
		return i
	}
	return len(list)
}

func (o KnownOrder) tableRank(path []string) (int, int) {
	if len(path) == 0 {
		return -1, 0
	}
	top := rank(o.Tables, path[0])
	if path[0] != "tool" || len(path) < 2 {
		return top, 0
	}
	return top, rank(o.Tools, path[1])
}

// Reorder sorts tables and the keys of known tables. Sorting is stable, so
// unknown entries keep their relative order and [[array]] elements stay with
// their sub-tables. Nodes move with their trivia; the one exception is the
// comment block opening a document without root entries, which stays on top.
func Reorder(doc *cst.Document, order KnownOrder) *cst.Document {
	var head *cst.Table
	if len(doc.Tables) > 0 && (doc.Root == nil || len(doc.Root.Entries) == 0) {
		head = doc.Tables[0]
	}
	slices.SortStableFunc(doc.Tables, func(a, b *cst.Table) int {
		ta, sa := order.tableRank(a.Path())
		tb, sb := order.tableRank(b.Path())
		if ta != tb {
			return ta - tb
		}
		return sa - sb
	})
	if head != nil && doc.Tables[0] != head {
		top := doc.Tables[0]
		top.Leading = append(head.Leading, top.Leading...)
		head.Leading = nil
	}
	for _, t := range doc.Tables {
		if t.Header.Array {
			continue
		}
		keys, ok := order.Keys[strings.Join(t.Path(), ".")]
		if !ok {
			continue
		}
		slices.SortStableFunc(t.Entries, func(a, b *cst.KeyValue) int {
			return rank(keys, a.Key.First()) - rank(keys, b.Key.First())
		})
	}
	return doc
}
