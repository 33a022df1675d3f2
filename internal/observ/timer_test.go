package observ

import (
	"strings"
	"testing"
	"time"
)

// stepClock advances by step on every read.
func stepClock(step time.Duration) func() time.Time {
	now := time.Unix(0, 0)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestTimerRecordsPhasesInOrder(t *testing.T) {
	tm := newTimer(stepClock(time.Millisecond))
	stop := tm.Start("parse")
	stop("")
	stop = tm.Start("layout")
	stop("4 arrays")
	tm.Start("render")

	rep := tm.Report()
	want := []PhaseReport{
		{Name: "parse", DurationMS: 1},
		{Name: "layout", DurationMS: 1, Note: "4 arrays"},
		{Name: "render"},
	}
	if len(rep.Phases) != len(want) {
		t.Fatalf("phases = %+v", rep.Phases)
	}
	for i := range want {
		if rep.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, rep.Phases[i], want[i])
		}
	}
	if rep.TotalMS != 2 {
		t.Errorf("total = %v, want 2", rep.TotalMS)
	}
	if empty := NewTimer().Report(); empty.Phases != nil || empty.TotalMS != 0 {
		t.Fatalf("empty report = %+v", empty)
	}
}

func TestReportAdd(t *testing.T) {
	var sum Report
	sum.Add(Report{TotalMS: 3, Phases: []PhaseReport{{Name: "parse", DurationMS: 1}, {Name: "render", DurationMS: 2, Note: "x"}}})
	sum.Add(Report{TotalMS: 5, Phases: []PhaseReport{{Name: "layout", DurationMS: 1}, {Name: "parse", DurationMS: 4}}})

	want := []PhaseReport{{Name: "parse", DurationMS: 5}, {Name: "render", DurationMS: 2}, {Name: "layout", DurationMS: 1}}
	if len(sum.Phases) != len(want) {
		t.Fatalf("phases = %+v", sum.Phases)
	}
	for i := range want {
		if sum.Phases[i] != want[i] {
			t.Errorf("phase %d = %+v, want %+v", i, sum.Phases[i], want[i])
		}
	}
	if sum.TotalMS != 8 {
		t.Errorf("total = %v, want 8", sum.TotalMS)
	}
}

func TestSummary(t *testing.T) {
	r := Report{TotalMS: 1.5, Phases: []PhaseReport{{Name: "parse", DurationMS: 1.5, Note: "ok"}}}
	got := r.Summary("pyproject.toml")
	for _, want := range []string{"timings (pyproject.toml):", "parse", "1.50 ms  // ok", "total"} {
		if !strings.Contains(got, want) {
			t.Errorf("summary %q lacks %q", got, want)
		}
	}
}
