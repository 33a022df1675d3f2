package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"pyprojectfmt/internal/cst"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/source"
)

func TestLayout(t *testing.T) {
	tests := []struct {
		name  string
		width int
		in    string
		want  string
	}{
		{
			name:  "fits on one line",
			width: 120,
			in:    "deps = [\"aaaaaaaaaa\",\n  \"bbbbbbbbbb\",\"cccccccccc\",]\n",
			want:  "deps = [ \"aaaaaaaaaa\", \"bbbbbbbbbb\", \"cccccccccc\" ]\n",
		},
		{
			name:  "exactly at the limit",
			width: 51,
			in:    "deps = [\"aaaaaaaaaa\", \"bbbbbbbbbb\", \"cccccccccc\"]\n",
			want:  "deps = [ \"aaaaaaaaaa\", \"bbbbbbbbbb\", \"cccccccccc\" ]\n",
		},
		{
			name:  "one column over",
			width: 50,
			in:    "deps = [\"aaaaaaaaaa\", \"bbbbbbbbbb\", \"cccccccccc\"]\n",
			want:  "deps = [\n  \"aaaaaaaaaa\",\n  \"bbbbbbbbbb\",\n  \"cccccccccc\",\n]\n",
		},
		{
			name:  "empty array",
			width: 120,
			in:    "a = [   ]\n",
			want:  "a = []\n",
		},
		{
			name:  "comments force one element per line",
			width: 120,
			in:    "a = [\n    1,   # one\n    # before two\n    2,\n    3 # three\n]\n",
			want:  "a = [\n  1, # one\n  # before two\n  2,\n  3, # three\n]\n",
		},
		{
			name:  "inline tables stay flat",
			width: 10,
			in:    "t = {a=1,b=[1,2],c={}}\n",
			want:  "t = { a = 1, b = [ 1, 2 ], c = {} }\n",
		},
		{
			name:  "key spacing",
			width: 120,
			in:    "  a  .  b   =   1    # note\n",
			want:  "a.b = 1 # note\n",
		},
		{
			name:  "nested tables are indented",
			width: 120,
			in:    "[tool.ruff]\nline-length = 120\n[tool.ruff.lint]\nselect = [\"E\"]\n",
			want:  "[tool.ruff]\nline-length = 120\n  [tool.ruff.lint]\n  select = [ \"E\" ]\n",
		},
		{
			name:  "multi-line strings force one element per line",
			width: 120,
			in:    "a = [\"\"\"x\ny\"\"\", 'z']\n",
			want:  "a = [\n  \"\"\"x\ny\"\"\",\n  'z',\n]\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := DefaultSettings()
			s.ColumnWidth = tt.width
			got := mustRun(t, tt.in, s, "layout")
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Fatalf("layout mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLayoutIndentUnit(t *testing.T) {
	s := DefaultSettings()
	s.Indent = 4
	s.ColumnWidth = 10
	got := mustRun(t, "[a]\n[a.b]\nx = [1, 2, 3]\n", s, "layout")
	want := "[a]\n    [a.b]\n    x = [\n        1,\n        2,\n        3,\n    ]\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("(-want +got):\n%s", diff)
	}
}

// TestWidthInvariant checks every single-line array in formatted output against
// the column budget.
func TestWidthInvariant(t *testing.T) {
	for _, width := range []int{20, 40, 80, 120} {
		s := DefaultSettings()
		s.ColumnWidth = width
		for _, src := range corpus {
			out, err := Format([]byte(src), s)
			if err != nil {
				t.Fatal(err)
			}
			fs := source.NewFileSet()
			doc, err := parser.Parse(fs.Get(fs.AddVirtual("out.toml", out)))
			if err != nil {
				t.Fatalf("formatted output does not parse: %v\n%s", err, out)
			}
			cst.Walk(doc, func(_ []string, kv *cst.KeyValue) {
				arr, ok := kv.Value.(*cst.Array)
				if !ok || strings.Contains(cst.RenderValue(arr), "\n") {
					return
				}
				cp := *kv
				cp.Trailing = nil
				text := cst.RenderKeyValue(&cp)
				line := text[strings.LastIndex(text, "\n")+1:]
				w := &Writer{}
				w.WriteString(line)
				if w.Width() > width {
					t.Errorf("width %d: %q is over budget", width, line)
				}
			})
		}
	}
}
