package format

import (
	"fmt"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/observ"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/source"
)

// Format formats src with s. It returns *parser.Error for malformed input and
// *ConfigError for invalid settings; output is all-or-nothing.
func Format(src []byte, s Settings) ([]byte, error) {
	rep, err := FormatReport(src, s)
	if err != nil {
		return nil, err
	}
	return rep.Output, nil
}

// FormatReport is Format plus the skipped values and per-phase timings.
func FormatReport(src []byte, s Settings) (*Report, error) {
	fs := source.NewFileSet()
	id := fs.AddVirtual("pyproject.toml", src)
	return FormatFile(fs.Get(id), s, DefaultPasses)
}

// FormatFile runs passes over an already loaded file. Parse errors carry the
// file's path.
func FormatFile(f *source.File, s Settings, passes []Pass) (*Report, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}
	timer := observ.NewTimer()

	stop := timer.Start("parse")
	doc, err := parser.Parse(f)
	if err != nil {
		return nil, err
	}
	stop(fmt.Sprintf("%d tables", len(doc.Tables)))

	window, err := ResolveWindow(doc, s)
	if err != nil {
		return nil, err
	}

	rep := &Report{}
	env := &Env{Settings: s, Window: window, Report: rep}
	for _, p := range passes {
		stop := timer.Start(p.Name)
		skipped := len(rep.Skips)
		doc = p.Run(doc, env)
		note := ""
		if n := len(rep.Skips) - skipped; n > 0 {
			note = fmt.Sprintf("%d skipped", n)
		}
		stop(note)
	}

	stop = timer.Start("render")
	rep.Output = cst.Render(doc)
	stop(fmt.Sprintf("%d bytes", len(rep.Output)))
	rep.Timings = timer.Report()
	return rep, nil
}
