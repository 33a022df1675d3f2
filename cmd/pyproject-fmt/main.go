package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"pyprojectfmt/internal/version"
)

// Exit codes.
const (
	exitOK     = 0
	exitFailed = 1 // check found changes, or a file could not be formatted
	exitParse  = 2
	exitConfig = 3
)

// exitError carries the process exit code out of RunE.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pyproject-fmt [flags] <path|-> [path...]",
		Short: "Format pyproject.toml files",
		Long: `pyproject-fmt rewrites pyproject.toml files into a canonical layout: ordered
tables and keys, normalized dependency specifiers, Python version classifiers
kept in sync with requires-python, and consistent indentation and wrapping.

A directory argument stands for the pyproject.toml inside it; "-" reads
standard input and writes the result to standard output.`,
		Version:       version.String(),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE:          runFmt,
	}
	cmd.SetVersionTemplate("{{.Version}}\n")

	f := cmd.Flags()
	f.BoolP("stdout", "s", false, "print formatted output instead of rewriting files")
	f.Bool("check", false, "report files that would change and exit 1 if any would")
	f.BoolP("no-print-diff", "n", false, "in check mode, print a summary line instead of a diff")
	f.Int("column-width", 0, "maximum line width before arrays are split (default 120)")
	f.Int("indent", 0, "spaces per indentation level (default 2)")
	f.Bool("keep-full-version", false, "keep trailing zero version components in dependency specifiers")
	f.String("max-supported-python", "", "newest Python minor to generate classifiers for (default 3.13)")
	f.String("min-supported-python", "", "oldest Python minor when requires-python sets none (default 3.9)")
	f.Int("jobs", 0, "files formatted in parallel (default GOMAXPROCS)")
	f.Bool("cache", false, "skip files already formatted with the same settings")
	f.Bool("verify", false, "re-parse and re-format changed output before writing it")
	f.String("format", "text", "output format (text|json)")
	f.String("ui", "auto", "progress view for multi-file runs (auto|on|off)")

	pf := cmd.PersistentFlags()
	pf.String("color", "auto", "colorize output (auto|on|off)")
	pf.BoolP("quiet", "q", false, "suppress non-essential output")
	pf.BoolP("verbose", "v", false, "log settings and per-file details")
	pf.Bool("timings", false, "show timing information")
	return cmd
}

// main executes the root command and maps its error to an exit code.
func main() {
	err := newRootCmd().Execute()
	if err == nil {
		os.Exit(exitOK)
	}
	var ee *exitError
	if errors.As(err, &ee) {
		if ee.err != nil && ee.err.Error() != "" {
			fmt.Fprintln(os.Stderr, "pyproject-fmt:", ee.err)
		}
		os.Exit(ee.code)
	}
	fmt.Fprintln(os.Stderr, "pyproject-fmt:", err)
	os.Exit(exitFailed)
}
