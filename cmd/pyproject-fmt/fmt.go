package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"pyprojectfmt/internal/config"
	"pyprojectfmt/internal/driver"
	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/parser"
	"pyprojectfmt/internal/pep440"
)

const appName = "pyproject-fmt"

func runFmt(cmd *cobra.Command, args []string) error {
	flags := cmd.Flags()

	check, err := flags.GetBool("check")
	if err != nil {
		return err
	}
	writeToStdout, err := flags.GetBool("stdout")
	if err != nil {
		return err
	}
	noDiff, err := flags.GetBool("no-print-diff")
	if err != nil {
		return err
	}
	outputFormat, err := flags.GetString("format")
	if err != nil {
		return err
	}
	jobs, err := flags.GetInt("jobs")
	if err != nil {
		return err
	}
	useCache, err := flags.GetBool("cache")
	if err != nil {
		return err
	}
	verify, err := flags.GetBool("verify")
	if err != nil {
		return err
	}
	quiet, err := flags.GetBool("quiet")
	if err != nil {
		return err
	}
	verbose, err := flags.GetBool("verbose")
	if err != nil {
		return err
	}
	timings, err := flags.GetBool("timings")
	if err != nil {
		return err
	}
	colorFlag, err := flags.GetString("color")
	if err != nil {
		return err
	}
	uiFlag, err := flags.GetString("ui")
	if err != nil {
		return err
	}
	uiValue, err := readUIMode(uiFlag)
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}
	mode, err := readColorMode(colorFlag)
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}
	useColor := shouldColor(mode, os.Stdout)
	color.NoColor = !useColor

	if len(args) == 0 {
		if isTerminal(os.Stdin) {
			return &exitError{code: exitFailed, err: errors.New("no input: pass a path, a directory or \"-\"")}
		}
		args = []string{driver.StdinPath}
	}
	for _, a := range args {
		if a == driver.StdinPath {
			writeToStdout = true
		}
	}

	if writeToStdout && check {
		return &exitError{code: exitFailed, err: errors.New("--stdout cannot be used with --check")}
	}
	if writeToStdout && outputFormat != "text" {
		return &exitError{code: exitFailed, err: errors.New("--stdout is only supported with text output")}
	}
	if outputFormat != "text" && outputFormat != "json" {
		return &exitError{code: exitFailed, err: fmt.Errorf("unsupported output format %q", outputFormat)}
	}

	overrides, err := readOverrides(flags)
	if err != nil {
		return &exitError{code: exitConfig, err: err}
	}

	logger := newLogger(cmd.ErrOrStderr(), quiet, verbose)

	opts := driver.FormatOptions{
		Mode:      driver.ModeWrite,
		Overrides: overrides,
		Jobs:      jobs,
		Logger:    logger,
		Stdin:     cmd.InOrStdin(),
		Verify:    verify,
	}
	switch {
	case check:
		opts.Mode = driver.ModeCheck
	case writeToStdout:
		opts.Mode = driver.ModeStdout
	}
	if useCache {
		cache, err := driver.OpenCache(appName)
		if err != nil {
			logger.Warn("cache disabled", "err", err)
		} else {
			opts.Cache = cache
			logger.Debug("cache", "dir", cache.Dir())
		}
	}

	var results []driver.FormatResult
	if opts.Mode != driver.ModeStdout && outputFormat == "text" && !quiet && shouldUseTUI(uiValue, len(args)) {
		results, err = runFormatWithUI(cmd.Context(), cmd.OutOrStdout(), args, opts)
	} else {
		results, err = driver.FormatPaths(cmd.Context(), args, opts)
	}
	if err != nil {
		return &exitError{code: exitFailed, err: err}
	}

	out := cmd.OutOrStdout()
	switch {
	case outputFormat == "json":
		if err := renderJSON(out, results, check, timings); err != nil {
			return err
		}
	case opts.Mode == driver.ModeStdout:
		renderStdout(out, results)
	default:
		renderText(out, results, check, quiet, !noDiff, useColor)
	}
	for _, res := range results {
		if res.Err != nil {
			logger.Error(res.Err.Error())
		}
	}
	if timings && outputFormat == "text" {
		renderTimings(cmd.ErrOrStderr(), results)
	}

	return exitFor(results, check)
}

// exitFor picks the exit code of a run: a configuration error beats a parse
// error, which beats any other failure or a pending change in check mode.
func exitFor(results []driver.FormatResult, check bool) error {
	code := exitOK
	for _, res := range results {
		var cerr *format.ConfigError
		var perr *parser.Error
		switch {
		case res.Err == nil:
			if check && res.Changed {
				code = max(code, exitFailed)
			}
		case errors.As(res.Err, &cerr):
			code = max(code, exitConfig)
		case errors.As(res.Err, &perr):
			code = max(code, exitParse)
		default:
			code = max(code, exitFailed)
		}
	}
	if code == exitOK {
		return nil
	}
	// failures are already logged per file
	return &exitError{code: code, err: errors.New("")}
}

func readOverrides(flags *pflag.FlagSet) (config.Overrides, error) {
	var o config.Overrides
	if flags.Changed("column-width") {
		v, err := flags.GetInt("column-width")
		if err != nil {
			return o, err
		}
		o.ColumnWidth = &v
	}
	if flags.Changed("indent") {
		v, err := flags.GetInt("indent")
		if err != nil {
			return o, err
		}
		o.Indent = &v
	}
	if flags.Changed("keep-full-version") {
		v, err := flags.GetBool("keep-full-version")
		if err != nil {
			return o, err
		}
		o.KeepFullVersion = &v
	}
	for name, dst := range map[string]**pep440.MinorVersion{
		"max-supported-python": &o.MaxSupportedPython,
		"min-supported-python": &o.MinSupportedPython,
	} {
		if !flags.Changed(name) {
			continue
		}
		raw, err := flags.GetString(name)
		if err != nil {
			return o, err
		}
		v, err := pep440.ParseMinor(raw)
		if err != nil {
			return o, &format.ConfigError{Field: strings.ReplaceAll(name, "-", "_"), Msg: err.Error()}
		}
		*dst = &v
	}
	return o, nil
}

func newLogger(w io.Writer, quiet, verbose bool) *log.Logger {
	level := log.InfoLevel
	switch {
	case verbose:
		level = log.DebugLevel
	case quiet:
		level = log.ErrorLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: appName,
		Level:  level,
	})
}
