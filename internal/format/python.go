package format

import (
	"fmt"
	"regexp"
	"slices"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/pep440"
	"pyprojectfmt/internal/token"
)

const passPython = "python"

// Window is the inclusive range of supported interpreter minors.
type Window struct {
	Min      pep440.MinorVersion
	Max      pep440.MinorVersion
	Excluded []pep440.MinorVersion
	// OnlyMajor is set when every version in the window shares one major.
	OnlyMajor bool
}

// Minors lists every non-excluded minor from Min to Max.
func (w Window) Minors() []pep440.MinorVersion {
	var out []pep440.MinorVersion
	if w.Min.Major != w.Max.Major {
		return nil
	}
	for v := w.Min; !w.Max.Less(v); v = v.Next() {
		if !slices.Contains(w.Excluded, v) {
			out = append(out, v)
		}
	}
	return out
}

// ResolveWindow derives the window from project.requires-python and s.
// The minimum is the largest lower bound requires-python declares, falling
// back to s.MinSupportedPython; the maximum is always s.MaxSupportedPython.
func ResolveWindow(doc *cst.Document, s Settings) (Window, error) {
	w := Window{Min: s.MinSupportedPython, Max: s.MaxSupportedPython, OnlyMajor: true}
	if specs, ok := requiresPython(doc); ok {
		if lower, found := lowerBound(specs); found {
			w.Min = lower
		}
		w.Excluded = excludedMinors(specs)
	}
	if w.Min.Major < w.Max.Major {
		// 2.7 .. 3.13: only the newest major gets per-minor markers, starting
		// at the configured floor rather than x.0
		w.Min = pep440.MinorVersion{Major: w.Max.Major}
		if s.MinSupportedPython.Major == w.Max.Major {
			w.Min = s.MinSupportedPython
		}
		w.OnlyMajor = false
	}
	if w.Max.Less(w.Min) {
		return Window{}, &ConfigError{
			Field: "requires-python",
			Msg:   fmt.Sprintf("minimum supported python %s is above max_supported_python %s", w.Min, w.Max),
		}
	}
	return w, nil
}

func requiresPython(doc *cst.Document) ([]pep440.Specifier, bool) {
	kv := projectEntry(doc, "requires-python")
	if kv == nil {
		return nil, false
	}
	sc, ok := kv.Value.(*cst.Scalar)
	if !ok {
		return nil, false
	}
	text, ok := sc.Text()
	if !ok {
		return nil, false
	}
	specs, err := pep440.ParseSpecifiers(text)
	if err != nil {
		return nil, false
	}
	return specs, true
}

func projectEntry(doc *cst.Document, key string) *cst.KeyValue {
	if kv := doc.Table("project").Entry(key); kv != nil {
		return kv
	}
	return doc.Root.Entry("project", key)
}

func lowerBound(specs []pep440.Specifier) (pep440.MinorVersion, bool) {
	var best pep440.MinorVersion
	found := false
	for _, sp := range specs {
		var v pep440.MinorVersion
		switch sp.Op {
		case pep440.GreaterEq, pep440.Compatible, pep440.Equal:
			v = sp.Version.Minor()
		case pep440.Greater:
			v = sp.Version.Minor()
			if len(sp.Version.Release) <= 2 {
				v = v.Next()
			}
		default:
			continue
		}
		if !found || best.Less(v) {
			best, found = v, true
		}
	}
	return best, found
}

// excludedMinors collects "!=X.Y" and "!=X.Y.*" clauses.
func excludedMinors(specs []pep440.Specifier) []pep440.MinorVersion {
	var out []pep440.MinorVersion
	for _, sp := range specs {
		if sp.Op == pep440.NotEqual && len(sp.Version.Release) == 2 && sp.Version.Epoch == 0 {
			out = append(out, sp.Version.Minor())
		}
	}
	return out
}

const (
	classifierPrefix = "Programming Language :: Python :: "
	onlySuffix       = " :: Only"
)

var reVersionMarker = regexp.MustCompile(`^Programming Language :: Python :: (\d+\.\d+|\d+ :: Only)$`)

// Markers returns the canonical classifier block for w.
func (w Window) Markers() []string {
	var out []string
	if w.OnlyMajor {
		out = append(out, fmt.Sprintf("%s%d%s", classifierPrefix, w.Max.Major, onlySuffix))
	}
	for _, v := range w.Minors() {
		out = append(out, classifierPrefix+v.String())
	}
	return out
}

// SynthesizePythonConstraints keeps project.classifiers in sync with w: stale
// version markers are removed, missing ones added, and the block is written
// contiguously where the first marker was (or appended). Other classifiers keep
// their order. It also respaces requires-python.
func SynthesizePythonConstraints(doc *cst.Document, w Window, rep *Report) *cst.Document {
	project := doc.Table("project")
	if project == nil {
		return doc
	}
	normalizeRequiresPython(project, rep)
	if isDynamic(project, "classifiers") {
		return doc
	}
	kv := project.Entry("classifiers")
	if kv == nil {
		kv = cst.NewKeyValue(cst.NewKey("classifiers"), cst.NewArray())
		project.Entries = append(project.Entries, kv)
	}
	arr, ok := kv.Value.(*cst.Array)
	if !ok {
		rep.skip(diag.NormUnexpectedValue, passPython, []string{"project", "classifiers"}, cst.RenderValue(kv.Value), "classifiers is not an array")
		return doc
	}
	syncMarkers(arr, w.Markers())
	return doc
}

func normalizeRequiresPython(project *cst.Table, rep *Report) {
	kv := project.Entry("requires-python")
	if kv == nil {
		return
	}
	sc, ok := kv.Value.(*cst.Scalar)
	if !ok || sc.Kind != cst.String {
		rep.skip(diag.NormUnexpectedValue, passPython, []string{"project", "requires-python"}, cst.RenderValue(kv.Value), "requires-python is not a string")
		return
	}
	text, _ := sc.Text()
	specs, err := pep440.ParseSpecifiers(text)
	if err != nil {
		rep.skip(diag.NormUnparseableRequires, passPython, []string{"project", "requires-python"}, text, err.Error())
		return
	}
	if canon := pep440.Join(specs); canon != text && canon != "" {
		setString(sc, canon)
	}
}

func isDynamic(project *cst.Table, field string) bool {
	kv := project.Entry("dynamic")
	if kv == nil {
		return false
	}
	arr, ok := kv.Value.(*cst.Array)
	if !ok {
		return false
	}
	names, _ := arr.Strings()
	return slices.Contains(names, field)
}

func markerText(it *cst.ArrayItem) (string, bool) {
	sc, ok := it.Value.(*cst.Scalar)
	if !ok {
		return "", false
	}
	s, ok := sc.Text()
	if !ok || !reVersionMarker.MatchString(s) {
		return "", false
	}
	return s, true
}

func syncMarkers(arr *cst.Array, want []string) {
	existing := make(map[string]*cst.ArrayItem)
	var current []string
	at := -1
	var kept []*cst.ArrayItem
	var orphaned []token.Trivia
	for _, it := range arr.Items {
		text, ok := markerText(it)
		if !ok {
			kept = append(kept, it)
			continue
		}
		current = append(current, text)
		if at < 0 {
			at = len(kept)
		}
		if _, dup := existing[text]; dup || !slices.Contains(want, text) {
			orphaned = append(orphaned, commentLines(it)...)
			continue
		}
		existing[text] = it
	}
	if slices.Equal(current, want) && (at < 0 || contiguous(arr, at, len(want))) {
		return
	}
	if at < 0 {
		at = len(kept)
	}
	block := make([]*cst.ArrayItem, 0, len(want))
	for _, text := range want {
		it, ok := existing[text]
		if !ok {
			it = &cst.ArrayItem{Value: cst.NewString(text)}
		}
		block = append(block, it)
	}
	if len(orphaned) > 0 && len(block) > 0 {
		block[0].Leading = append(orphaned, block[0].Leading...)
	}
	trailing := hasTrailingComma(arr)
	items := make([]*cst.ArrayItem, 0, len(kept)+len(block))
	items = append(items, kept[:at]...)
	items = append(items, block...)
	items = append(items, kept[at:]...)
	arr.Items = items
	fixCommas(arr, trailing)
}

// contiguous reports whether the n items starting at at are all markers.
func contiguous(arr *cst.Array, at, n int) bool {
	if at+n > len(arr.Items) {
		return false
	}
	for _, it := range arr.Items[at : at+n] {
		if _, ok := markerText(it); !ok {
			return false
		}
	}
	return true
}

// commentLines returns the comments attached to a removed item as own lines.
func commentLines(it *cst.ArrayItem) []token.Trivia {
	var out []token.Trivia
	cs := token.Comments(it.Leading)
	cs = append(cs, token.Comments(it.Trailing)...)
	for _, c := range cs {
		out = append(out, c, token.Newline)
	}
	return out
}
