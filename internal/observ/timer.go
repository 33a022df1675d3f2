// Package observ measures the phases of a formatting run.
package observ

import (
	"fmt"
	"strings"
	"time"
)

// Timer records consecutive phases of one run. It is not safe for concurrent
// use; every file gets its own.
type Timer struct {
	now    func() time.Time
	phases []phase
}

type phase struct {
	name string
	dur  time.Duration
	note string
}

// NewTimer returns a Timer reading the wall clock.
func NewTimer() *Timer { return newTimer(time.Now) }

func newTimer(now func() time.Time) *Timer {
	return &Timer{now: now, phases: make([]phase, 0, 8)}
}

// Start opens a phase. The returned func closes it with an optional note;
// a phase that is never closed is reported with zero duration.
func (t *Timer) Start(name string) func(note string) {
	begin := t.now()
	i := len(t.phases)
	t.phases = append(t.phases, phase{name: name})
	return func(note string) {
		t.phases[i].dur = t.now().Sub(begin)
		t.phases[i].note = note
	}
}

// PhaseReport представляет сжатую информацию о фазе для сериализации.
type PhaseReport struct {
	Name       string  `json:"name"`
	DurationMS float64 `json:"duration_ms"`
	Note       string  `json:"note,omitempty"`
}

// Report описывает агрегированные данные таймера.
type Report struct {
	TotalMS float64       `json:"total_ms"`
	Phases  []PhaseReport `json:"phases"`
}

// Report snapshots the phases recorded so far.
func (t *Timer) Report() Report {
	var r Report
	for _, p := range t.phases {
		ms := millis(p.dur)
		r.Phases = append(r.Phases, PhaseReport{Name: p.name, DurationMS: ms, Note: p.note})
		r.TotalMS += ms
	}
	return r
}

// Add folds other into r, summing phases with the same name. Phases first seen
// in other are appended in its order. Notes are dropped.
func (r *Report) Add(other Report) {
	pos := make(map[string]int, len(r.Phases))
	for i, p := range r.Phases {
		pos[p.Name] = i
	}
	for _, p := range other.Phases {
		if i, ok := pos[p.Name]; ok {
			r.Phases[i].DurationMS += p.DurationMS
			continue
		}
		pos[p.Name] = len(r.Phases)
		r.Phases = append(r.Phases, PhaseReport{Name: p.Name, DurationMS: p.DurationMS})
	}
	r.TotalMS += other.TotalMS
}

// Summary returns a human-readable table of the phases in r.
func (r Report) Summary(title string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "timings (%s):\n", title)
	for _, p := range r.Phases {
		fmt.Fprintf(&b, "  %-14s %8.2f ms", p.Name, p.DurationMS)
		if p.Note != "" {
			b.WriteString("  // " + p.Note)
		}
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "  %-14s %8.2f ms\n", "total", r.TotalMS)
	return b.String()
}

func millis(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
