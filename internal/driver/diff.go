package driver

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// diffContext is the number of unchanged lines shown around a change.
const diffContext = 3

type diffLine struct {
	op   byte // ' ', '-', '+'
	text string
}

// lineDiff compares a and b line by line.
func lineDiff(a, b string) []diffLine {
	dmp := diffpatch.New()
	ca, cb, lines := dmp.DiffLinesToChars(a, b)
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(ca, cb, false), lines)

	var out []diffLine
	for _, d := range diffs {
		op := byte(' ')
		switch d.Type {
		case diffpatch.DiffDelete:
			op = '-'
		case diffpatch.DiffInsert:
			op = '+'
		}
		for _, l := range strings.SplitAfter(d.Text, "\n") {
			if l != "" {
				out = append(out, diffLine{op: op, text: l})
			}
		}
	}
	return out
}

// Diff renders a unified diff from before to after, or "" when they are equal.
// colored switches ANSI colours on regardless of the terminal.
func Diff(path string, before, after []byte, colored bool) string {
	lines := lineDiff(string(before), string(after))
	changed := false
	for _, l := range lines {
		if l.op != ' ' {
			changed = true
			break
		}
	}
	if !changed {
		return ""
	}

	del := color.New(color.FgRed)
	ins := color.New(color.FgGreen)
	hdr := color.New(color.FgCyan)
	bold := color.New(color.Bold)
	for _, c := range []*color.Color{del, ins, hdr, bold} {
		if colored {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}

	var b strings.Builder
	b.WriteString(bold.Sprintf("--- %s", path) + "\n")
	b.WriteString(bold.Sprintf("+++ %s", path) + "\n")

	// номера строк (1-based) перед каждой строкой диффа
	oldNo := make([]int, len(lines)+1)
	newNo := make([]int, len(lines)+1)
	oldNo[0], newNo[0] = 1, 1
	for i, l := range lines {
		oldNo[i+1], newNo[i+1] = oldNo[i], newNo[i]
		if l.op != '+' {
			oldNo[i+1]++
		}
		if l.op != '-' {
			newNo[i+1]++
		}
	}

	for i := 0; i < len(lines); {
		if lines[i].op == ' ' {
			i++
			continue
		}
		start := max(0, i-diffContext)
		end := i
		for j := i; j < len(lines); j++ {
			if lines[j].op != ' ' {
				end = j
			} else if j-end > 2*diffContext {
				break
			}
		}
		end = min(len(lines), end+diffContext+1)

		oldCount := oldNo[end] - oldNo[start]
		newCount := newNo[end] - newNo[start]
		b.WriteString(hdr.Sprintf("@@ -%d,%d +%d,%d @@", oldNo[start], oldCount, newNo[start], newCount) + "\n")
		for _, l := range lines[start:end] {
			text := strings.TrimSuffix(l.text, "\n")
			switch l.op {
			case '-':
				b.WriteString(del.Sprint("-"+text) + "\n")
			case '+':
				b.WriteString(ins.Sprint("+"+text) + "\n")
			default:
				b.WriteString(" " + text + "\n")
			}
			if !strings.HasSuffix(l.text, "\n") {
				b.WriteString("\\ No newline at end of file\n")
			}
		}
		i = end
	}
	return b.String()
}

// DiffSummary is the one-line form used when diffs are turned off.
func DiffSummary(path string, before, after []byte) string {
	var added, removed int
	for _, l := range lineDiff(string(before), string(after)) {
		switch l.op {
		case '+':
			added++
		case '-':
			removed++
		}
	}
	return fmt.Sprintf("%s: +%d -%d lines", path, added, removed)
}
