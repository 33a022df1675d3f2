package format

import (
	"errors"
	"slices"
	"strings"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/pep440"
	"pyprojectfmt/internal/pep508"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

const passDependencies = "dependencies"

// isDependencyPath reports whether the array at path holds PEP 508 strings.
func isDependencyPath(path []string) bool {
	switch {
	case slices.Equal(path, []string{"build-system", "requires"}),
		slices.Equal(path, []string{"project", "dependencies"}):
		return true
	case len(path) == 3 && path[0] == "project" && path[1] == "optional-dependencies":
		return true
	case len(path) == 2 && path[0] == "dependency-groups":
		return true
	}
	return false
}

// NormalizeVersions rewrites every dependency string into canonical PEP 508
// form, trims trailing zero version components unless s.KeepFullVersion, and
// sorts all-string dependency arrays by canonical project name. Entries that do
// not parse are reported to rep and left byte-identical.
func NormalizeVersions(doc *cst.Document, s Settings, rep *Report) *cst.Document {
	cst.Walk(doc, func(path []string, kv *cst.KeyValue) {
		if !isDependencyPath(path) {
			return
		}
		arr, ok := kv.Value.(*cst.Array)
		if !ok {
			rep.skip(diag.NormUnexpectedValue, passDependencies, path, cst.RenderValue(kv.Value), "dependency list is not an array")
			return
		}
		normalizeDependencyArray(arr, path, s, rep)
	})
	return doc
}

// requirementCode tells a bad version specifier apart from a bad requirement.
func requirementCode(err error) diag.Code {
	if errors.Is(err, pep440.ErrInvalidSpecifier) || errors.Is(err, pep440.ErrInvalidVersion) {
		return diag.NormUnparseableVersion
	}
	return diag.NormUnparseableRequirement
}

func normalizeDependencyArray(arr *cst.Array, path []string, s Settings, rep *Report) {
	keys := make([]string, len(arr.Items))
	sortable := true
	for i, it := range arr.Items {
		sc, ok := it.Value.(*cst.Scalar)
		if !ok || sc.Kind != cst.String {
			sortable = false
			continue
		}
		raw, _ := sc.Text()
		keys[i] = pep508.CanonicalName(raw)
		req, err := pep508.Parse(raw)
		if err != nil {
			rep.skip(requirementCode(err), passDependencies, path, raw, err.Error())
			continue
		}
		keys[i] = pep508.CanonicalName(req.Name)
		if !s.KeepFullVersion {
			req = req.TrimVersions()
		}
		if canon := req.String(); canon != raw {
			setString(sc, canon)
		}
	}
	if !sortable || len(arr.Items) < 2 {
		return
	}
	sortItems(arr, keys)
}

// sortItems orders arr.Items stably by keys, keeping each item's trivia.
func sortItems(arr *cst.Array, keys []string) {
	type keyed struct {
		key  string
		item *cst.ArrayItem
	}
	pairs := make([]keyed, len(arr.Items))
	for i, it := range arr.Items {
		pairs[i] = keyed{key: keys[i], item: it}
	}
	if slices.IsSortedFunc(pairs, func(a, b keyed) int { return strings.Compare(a.key, b.key) }) {
		return
	}
	trailing := hasTrailingComma(arr)
	slices.SortStableFunc(pairs, func(a, b keyed) int { return strings.Compare(a.key, b.key) })
	for i, p := range pairs {
		arr.Items[i] = p.item
	}
	fixCommas(arr, trailing)
}

// setString replaces the scalar's text with a basic string holding s.
func setString(sc *cst.Scalar, s string) {
	sc.Tok.Kind = token.BasicString
	sc.Tok.Text = token.Quote(s)
	sc.Tok.Span = source.Span{}
}
