package driver

import (
	"pyprojectfmt/internal/observ"
)

// TimingPayload is the machine-readable form of one file's phase timings.
type TimingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// Timings returns one payload per formatted file plus a "total" payload that
// sums them. Failed and cached files are left out.
func Timings(results []FormatResult) []TimingPayload {
	var total observ.Report
	out := make([]TimingPayload, 0, len(results)+1)
	for _, res := range results {
		if res.Err != nil || res.Cached {
			continue
		}
		out = append(out, TimingPayload{Kind: "file", Path: res.Path, TotalMS: res.Timings.TotalMS, Phases: res.Timings.Phases})
		total.Add(res.Timings)
	}
	out = append(out, TimingPayload{Kind: "total", TotalMS: total.TotalMS, Phases: total.Phases})
	return out
}
