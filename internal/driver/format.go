package driver

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/charmbracelet/log"

	"pyprojectfmt/internal/config"
	"pyprojectfmt/internal/format"
	"pyprojectfmt/internal/observ"
	"pyprojectfmt/internal/source"
)

// StdinPath is the argument that reads the document from standard input.
const StdinPath = "-"

// Mode says what to do with formatted output.
type Mode uint8

const (
	// ModeWrite rewrites changed files in place.
	ModeWrite Mode = iota
	// ModeCheck only reports whether files would change.
	ModeCheck
	// ModeStdout returns formatted content without touching files.
	ModeStdout
)

// FormatOptions configures a formatting run.
type FormatOptions struct {
	Mode      Mode
	Overrides config.Overrides
	Jobs      int
	Cache     *Cache
	Logger    *log.Logger
	Stdin     io.Reader
	Progress  ProgressSink
	// Verify re-checks changed output with an independent TOML decoder and
	// a second formatting pass before anything is written.
	Verify bool
}

// FormatResult captures the result of formatting a single file.
type FormatResult struct {
	Path      string
	Changed   bool
	Cached    bool
	Err       error
	Original  []byte
	Formatted []byte
	Skips     []format.Skip
	Timings   observ.Report
	Sources   map[string]config.Source
}

// FormatPaths formats the given pyproject.toml files. A directory stands for the
// pyproject.toml inside it; "-" reads standard input, which is never written
// back. Results keep argument order. Per-file failures are reported in
// FormatResult.Err; the returned error is for the run as a whole.
func FormatPaths(ctx context.Context, paths []string, opts FormatOptions) ([]FormatResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}

	files, err := collectFiles(paths)
	if err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, errors.New("format: no pyproject.toml files given")
	}

	for _, path := range files {
		emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusQueued})
	}
	return runParallel(ctx, files, opts.Jobs, func(path string) FormatResult {
		res := formatSingleFile(path, opts)
		logResult(opts.Logger, opts.Mode, res)
		emitResult(opts.Progress, res)
		return res
	})
}

func formatSingleFile(path string, opts FormatOptions) FormatResult {
	result := FormatResult{Path: path}

	emit(opts.Progress, Event{File: path, Stage: StageRead, Status: StatusWorking})
	raw, err := readInput(path, opts.Stdin)
	if err != nil {
		result.Err = err
		return result
	}
	result.Original = raw

	fileSet := source.NewFileSet()
	var flags source.FileFlags
	if path == StdinPath {
		flags = source.FileVirtual
	}
	sf := fileSet.Get(fileSet.AddNormalized(path, raw, flags))

	resolved, err := config.Resolve(sf.Content, opts.Overrides)
	if err != nil {
		result.Err = err
		return result
	}
	result.Sources = resolved.Sources

	key := CacheKey(raw, resolved.Settings)
	if hit, _ := opts.Cache.Has(key); hit {
		result.Cached = true
		result.Formatted = raw
		return result
	}

	emit(opts.Progress, Event{File: path, Stage: StageFormat, Status: StatusWorking})
	rep, err := format.FormatFile(sf, resolved.Settings, format.DefaultPasses)
	if err != nil {
		result.Err = err
		return result
	}
	formatted := sf.Restore(rep.Output)
	result.Formatted = formatted
	result.Skips = rep.Skips
	result.Timings = rep.Timings
	result.Changed = !bytes.Equal(raw, formatted)

	if opts.Verify && result.Changed {
		if ok, msg := format.CheckRoundTrip(sf.Content, resolved.Settings); !ok {
			result.Err = fmt.Errorf("verify %s: %s", path, msg)
			return result
		}
	}
	if opts.Mode == ModeWrite && result.Changed && path != StdinPath {
		emit(opts.Progress, Event{File: path, Stage: StageWrite, Status: StatusWorking})
		if err := writeFile(path, formatted); err != nil {
			result.Err = err
			return result
		}
	}
	if !result.Changed || opts.Mode == ModeWrite {
		if err := opts.Cache.Put(CacheKey(formatted, resolved.Settings), path); err != nil {
			opts.Logger.Warn("cache write failed", "path", path, "err", err)
		}
	}
	return result
}

func readInput(path string, stdin io.Reader) ([]byte, error) {
	if path != StdinPath {
		// #nosec G304 -- path is provided by the caller
		return os.ReadFile(path)
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}

func writeFile(path string, data []byte) error {
	mode := os.FileMode(0o644)
	if info, statErr := os.Stat(path); statErr == nil {
		mode = info.Mode()
	}
	return os.WriteFile(path, data, mode.Perm())
}

// collectFiles resolves directories to their pyproject.toml and drops
// duplicates, keeping the first occurrence.
func collectFiles(paths []string) ([]string, error) {
	var files []string
	seen := make(map[string]struct{})
	for _, p := range paths {
		if p != StdinPath {
			info, err := os.Stat(p)
			if err != nil {
				return nil, err
			}
			if info.IsDir() {
				p = filepath.Join(p, "pyproject.toml")
				if _, err := os.Stat(p); err != nil {
					return nil, err
				}
			}
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		files = append(files, p)
	}
	return files, nil
}

func logResult(logger *log.Logger, mode Mode, res FormatResult) {
	for _, sk := range res.Skips {
		logger.Warn("left unchanged", "path", res.Path, "code", sk.Code.ID(), "pass", sk.Pass, "key", sk.Path, "value", sk.Value, "reason", sk.Reason)
	}
	switch {
	case res.Err != nil:
		logger.Debug("failed", "path", res.Path, "err", res.Err)
	case res.Cached:
		logger.Debug("cache hit", "path", res.Path)
	default:
		for _, field := range slices.Sorted(maps.Keys(res.Sources)) {
			if src := res.Sources[field]; src != config.SourceDefault {
				logger.Debug("setting", "path", res.Path, "field", field, "from", src)
			}
		}
		logger.Debug("formatted", "path", res.Path, "changed", res.Changed, "mode", mode, "total_ms", res.Timings.TotalMS)
	}
}

func (m Mode) String() string {
	switch m {
	case ModeCheck:
		return "check"
	case ModeStdout:
		return "stdout"
	default:
		return "write"
	}
}
