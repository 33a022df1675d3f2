package format

import (
	"strings"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/observ"
)

// Pass is one step of the pipeline.
type Pass struct {
	Name string
	Run  func(doc *cst.Document, env *Env) *cst.Document
}

// Env is what a pass may read besides the document, plus where it reports skips.
type Env struct {
	Settings Settings
	Window   Window
	Report   *Report
}

// Skip is a non-fatal condition: one value a pass could not interpret and left
// unchanged.
type Skip struct {
	Code   diag.Code
	Pass   string
	Path   string
	Value  string
	Reason string
}

// Report is the result of one formatting run.
type Report struct {
	Output  []byte
	Skips   []Skip
	Timings observ.Report
}

func (r *Report) skip(code diag.Code, pass string, path []string, value, reason string) {
	if r == nil {
		return
	}
	r.Skips = append(r.Skips, Skip{Code: code, Pass: pass, Path: strings.Join(path, "."), Value: value, Reason: reason})
}

// DefaultPasses is the pipeline order. Layout runs last: every content pass
// changes widths, so only a final layout can guarantee the column budget.
var DefaultPasses = []Pass{
	{Name: "strings", Run: func(doc *cst.Document, _ *Env) *cst.Document { return NormalizeStrings(doc) }},
	{Name: "dependencies", Run: func(doc *cst.Document, env *Env) *cst.Document {
		return NormalizeVersions(doc, env.Settings, env.Report)
	}},
	{Name: "python", Run: func(doc *cst.Document, env *Env) *cst.Document {
		return SynthesizePythonConstraints(doc, env.Window, env.Report)
	}},
	{Name: "reorder", Run: func(doc *cst.Document, _ *Env) *cst.Document { return Reorder(doc, DefaultOrder) }},
	{Name: "structure", Run: func(doc *cst.Document, _ *Env) *cst.Document { return NormalizeStructure(doc) }},
	{Name: "layout", Run: func(doc *cst.Document, env *Env) *cst.Document { return NormalizeLayout(doc, env.Settings) }},
}

// Passes returns the default passes with the given names, in pipeline order.
func Passes(names ...string) []Pass {
	var out []Pass
	for _, p := range DefaultPasses {
		for _, n := range names {
			if p.Name == n {
				out = append(out, p)
				break
			}
		}
	}
	return out
}
