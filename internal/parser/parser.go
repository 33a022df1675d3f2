package parser

import (
	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/diag"
	"pyprojectfmt/internal/lexer"
	"pyprojectfmt/internal/source"
	"pyprojectfmt/internal/token"
)

// Parse parses file into a CST. On failure it returns a nil document and *Error.
func Parse(file *source.File) (*cst.Document, error) {
	bag := diag.NewBag(8)
	doc := ParseWithReporter(file, diag.BagReporter{Bag: bag})
	if d, ok := bag.FirstError(); ok {
		return nil, newError(file, d)
	}
	return doc, nil
}

// ParseWithReporter parses file and sends diagnostics to r. The returned document
// is partial when an error was reported.
func ParseWithReporter(file *source.File, r diag.Reporter) *cst.Document {
	p := &Parser{
		file: file,
		rep:  &failReporter{next: r},
		defs: newDefNode(defTable),
	}
	p.lx = lexer.New(file, lexer.Options{Reporter: p.rep})
	return p.parseDocument()
}

// failReporter remembers whether any error went through it.
type failReporter struct {
	next   diag.Reporter
	failed bool
}

func (r *failReporter) Report(code diag.Code, sev diag.Severity, primary source.Span, msg string) {
	if sev >= diag.SevError {
		r.failed = true
	}
	if r.next != nil {
		r.next.Report(code, sev, primary, msg)
	}
}

type Parser struct {
	file *source.File
	lx   *lexer.Lexer
	rep  *failReporter
	tok  token.Token
	defs *defNode
}

func (p *Parser) advance(mode lexer.Mode) {
	p.tok = p.lx.Next(mode)
}

func (p *Parser) failed() bool {
	return p.rep.failed
}

func (p *Parser) errorf(code diag.Code, sp source.Span, msg string) {
	if p.failed() {
		return
	}
	diag.ReportError(p.rep, code, sp, msg)
}

func (p *Parser) unexpected(code diag.Code, want string) {
	if p.tok.Kind == token.EOF {
		p.errorf(code, p.tok.Span, "expected "+want+", got end of file")
		return
	}
	p.errorf(code, p.tok.Span, "expected "+want+", got "+describe(p.tok))
}

func describe(t token.Token) string {
	if t.Text == "" {
		return t.Kind.String()
	}
	return "'" + t.Text + "'"
}

// takeLeading detaches the current token's leading trivia.
func (p *Parser) takeLeading() []token.Trivia {
	lead := p.tok.Leading
	p.tok.Leading = nil
	return lead
}

// endLine requires the current token to start a new line (or be EOF) and
// splits its leading trivia into the finished item's trailing part.
func (p *Parser) endLine() []token.Trivia {
	if p.tok.Kind != token.EOF && !token.HasNewline(p.tok.Leading) {
		p.unexpected(diag.SynExpectNewline, "newline")
		return nil
	}
	head, rest := token.SplitLine(p.tok.Leading)
	p.tok.Leading = rest
	return head
}

// splitInner is SplitLine for positions inside brackets: without a line break
// everything belongs to what follows.
func splitInner(ts []token.Trivia) (head, rest []token.Trivia) {
	if !token.HasNewline(ts) {
		return nil, ts
	}
	return token.SplitLine(ts)
}
