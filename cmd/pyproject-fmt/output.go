package main

import (
	"encoding/json"
	"fmt"
	"io"

	"pyprojectfmt/internal/driver"
	"pyprojectfmt/internal/observ"
)

func renderStdout(out io.Writer, results []driver.FormatResult) {
	for _, res := range results {
		if res.Err != nil {
			continue
		}
		_, _ = out.Write(res.Formatted)
	}
}

func renderText(out io.Writer, results []driver.FormatResult, check, quiet, diff, colored bool) {
	if quiet {
		return
	}
	for _, res := range results {
		if res.Err != nil || !res.Changed {
			continue
		}
		switch {
		case !check:
			fmt.Fprintf(out, "reformatted %s\n", res.Path)
		case diff:
			fmt.Fprint(out, driver.Diff(res.Path, res.Original, res.Formatted, colored))
		default:
			fmt.Fprintln(out, driver.DiffSummary(res.Path, res.Original, res.Formatted))
		}
	}
}

type jsonSkip struct {
	Code   string `json:"code"`
	Pass   string `json:"pass"`
	Key    string `json:"key"`
	Value  string `json:"value"`
	Reason string `json:"reason"`
}

type jsonResult struct {
	Path     string     `json:"path"`
	Changed  bool       `json:"changed"`
	Cached   bool       `json:"cached,omitempty"`
	Error    string     `json:"error,omitempty"`
	CheckRun bool       `json:"check"`
	Skips    []jsonSkip `json:"skips,omitempty"`
}

type jsonPayload struct {
	Results []jsonResult           `json:"results"`
	Timings []driver.TimingPayload `json:"timings,omitempty"`
}

func renderJSON(out io.Writer, results []driver.FormatResult, check, timings bool) error {
	payload := jsonPayload{Results: make([]jsonResult, 0, len(results))}
	for _, res := range results {
		jr := jsonResult{Path: res.Path, Changed: res.Changed, Cached: res.Cached, CheckRun: check}
		if res.Err != nil {
			jr.Error = res.Err.Error()
		}
		for _, sk := range res.Skips {
			jr.Skips = append(jr.Skips, jsonSkip{Code: sk.Code.ID(), Pass: sk.Pass, Key: sk.Path, Value: sk.Value, Reason: sk.Reason})
		}
		payload.Results = append(payload.Results, jr)
	}
	if timings {
		payload.Timings = driver.Timings(results)
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}

func renderTimings(w io.Writer, results []driver.FormatResult) {
	for _, p := range driver.Timings(results) {
		title := p.Path
		if p.Kind == "total" {
			title = "all files"
		}
		rep := observ.Report{TotalMS: p.TotalMS, Phases: p.Phases}
		fmt.Fprint(w, rep.Summary(title))
	}
}
